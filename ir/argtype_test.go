package ir

import "testing"

func TestArgKind_String(t *testing.T) {
	tests := []struct {
		kind ArgKind
		want string
	}{
		{ArgInteger, "Integer"},
		{ArgLong, "Long"},
		{ArgFloat, "Float"},
		{ArgBoolean, "Boolean"},
		{ArgString, "String"},
		{ArgEnum, "Enum"},
		{ArgCustomObject, "CustomObject"},
		{ArgKind(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ArgKind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestArgKind_Valid(t *testing.T) {
	for k := ArgInteger; k <= ArgCustomObject; k++ {
		if !k.Valid() {
			t.Errorf("ArgKind(%d).Valid() = false, want true", int(k))
		}
	}
	if ArgKind(-1).Valid() {
		t.Error("ArgKind(-1).Valid() = true, want false")
	}
	if ArgKind(99).Valid() {
		t.Error("ArgKind(99).Valid() = true, want false")
	}
}

func TestArgType_Representation(t *testing.T) {
	tests := []struct {
		name string
		typ  ArgType
		want string
	}{
		{"int", IntType(), "int"},
		{"long", LongType(), "long"},
		{"float", FloatType(), "float"},
		{"boolean", BoolType(), "boolean"},
		{"string", StringType(), "String"},
		{"enum", EnumType("com.example.Mode"), "com.example.Mode"},
		{"object", ObjectType("com.example.User"), "com.example.User"},
		{"int array", ArrayOf(IntType()), "int[]"},
		{"string array", ArrayOf(StringType()), "String[]"},
		{"object array", ArrayOf(ObjectType("com.example.User")), "com.example.User[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.Representation(); got != tt.want {
				t.Errorf("Representation() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArgType_PutOperation(t *testing.T) {
	tests := []struct {
		name string
		typ  ArgType
		want string
	}{
		{"int", IntType(), "putInt"},
		{"int array", ArrayOf(IntType()), "putIntArray"},
		{"long", LongType(), "putLong"},
		{"long array", ArrayOf(LongType()), "putLongArray"},
		{"float", FloatType(), "putFloat"},
		{"float array", ArrayOf(FloatType()), "putFloatArray"},
		{"boolean", BoolType(), "putBoolean"},
		{"boolean array", ArrayOf(BoolType()), "putBooleanArray"},
		{"string", StringType(), "putString"},
		{"string array", ArrayOf(StringType()), "putStringArray"},
		{"enum", EnumType("com.example.Mode"), "putSerializable"},
		{"enum array", ArrayOf(EnumType("com.example.Mode")), "putSerializable"},
		{"object", ObjectType("com.example.User"), "putParcelable"},
		{"object array", ArrayOf(ObjectType("com.example.User")), "putParcelableArray"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.PutOperation(); got != tt.want {
				t.Errorf("PutOperation() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArgType_Literal(t *testing.T) {
	tests := []struct {
		name    string
		typ     ArgType
		raw     string
		want    string
		wantErr bool
	}{
		{name: "int", typ: IntType(), raw: "42", want: "42"},
		{name: "int negative", typ: IntType(), raw: "-7", want: "-7"},
		{name: "int hex", typ: IntType(), raw: "0x2a", want: "0x2a"},
		{name: "int resource reference", typ: IntType(), raw: "R.id.some_dest", want: "R.id.some_dest"},
		{name: "int bad reference", typ: IntType(), raw: "R.id.", wantErr: true},
		{name: "int reference bad segment", typ: IntType(), raw: "R.id.1bad", wantErr: true},
		{name: "int junk", typ: IntType(), raw: "forty", wantErr: true},
		{name: "int null", typ: IntType(), raw: "null", wantErr: true},
		{name: "long", typ: LongType(), raw: "42", want: "42L"},
		{name: "long suffixed", typ: LongType(), raw: "42L", want: "42L"},
		{name: "long junk", typ: LongType(), raw: "x", wantErr: true},
		{name: "float", typ: FloatType(), raw: "1.5", want: "1.5F"},
		{name: "float suffixed", typ: FloatType(), raw: "1.5f", want: "1.5F"},
		{name: "float junk", typ: FloatType(), raw: "fast", wantErr: true},
		{name: "float NaN", typ: FloatType(), raw: "NaN", wantErr: true},
		{name: "float Inf", typ: FloatType(), raw: "Inf", wantErr: true},
		{name: "float negative Inf", typ: FloatType(), raw: "-Inf", wantErr: true},
		{name: "boolean true", typ: BoolType(), raw: "true", want: "true"},
		{name: "boolean false", typ: BoolType(), raw: "false", want: "false"},
		{name: "boolean junk", typ: BoolType(), raw: "yes", wantErr: true},
		{name: "string", typ: StringType(), raw: "x", want: `"x"`},
		{name: "string with quotes", typ: StringType(), raw: `a"b`, want: `"a\"b"`},
		{name: "string newline", typ: StringType(), raw: "a\nb", want: `"a\nb"`},
		{name: "string backslash", typ: StringType(), raw: `a\b`, want: `"a\\b"`},
		{name: "string control char", typ: StringType(), raw: "a\x07b", want: `"ab"`},
		{name: "string astral char", typ: StringType(), raw: "\U0001F600", want: `"😀"`},
		{name: "string null", typ: StringType(), raw: "null", want: "null"},
		{name: "enum", typ: EnumType("com.example.Mode"), raw: "FAST", want: "com.example.Mode.FAST"},
		{name: "enum null", typ: EnumType("com.example.Mode"), raw: "null", want: "null"},
		{name: "enum bad constant", typ: EnumType("com.example.Mode"), raw: "1ST", wantErr: true},
		{name: "enum reserved constant", typ: EnumType("com.example.Mode"), raw: "new", wantErr: true},
		{name: "object null", typ: ObjectType("com.example.User"), raw: "null", want: "null"},
		{name: "object value", typ: ObjectType("com.example.User"), raw: "x", wantErr: true},
		{name: "array null", typ: ArrayOf(IntType()), raw: "null", want: "null"},
		{name: "array value", typ: ArrayOf(IntType()), raw: "1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.typ.Literal(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Literal(%q) = %q, want error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Literal(%q) returned error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("Literal(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
