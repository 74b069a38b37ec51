package ir

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
)

// ArgKind identifies the category of an argument type. The set is closed:
// every kind has exactly one Bundle put operation, one Java representation,
// and one default-literal renderer. A kind outside this set is a graph
// construction bug and is rejected by Graph.Validate before any emission.
type ArgKind int

const (
	ArgInteger ArgKind = iota
	ArgLong
	ArgFloat
	ArgBoolean
	ArgString
	ArgEnum         // Java enum; ClassName names the enum type
	ArgCustomObject // Parcelable object; ClassName names the type
)

// String returns the string representation of the argument kind.
func (k ArgKind) String() string {
	switch k {
	case ArgInteger:
		return "Integer"
	case ArgLong:
		return "Long"
	case ArgFloat:
		return "Float"
	case ArgBoolean:
		return "Boolean"
	case ArgString:
		return "String"
	case ArgEnum:
		return "Enum"
	case ArgCustomObject:
		return "CustomObject"
	default:
		return "Unknown"
	}
}

// Valid reports whether the kind is a member of the closed set.
func (k ArgKind) Valid() bool {
	return k >= ArgInteger && k <= ArgCustomObject
}

// ArgType describes an argument's type: a kind, an optional array wrapper,
// and, for Enum and CustomObject kinds, the fully qualified target class.
type ArgType struct {
	Kind  ArgKind
	Array bool

	// ClassName is the fully qualified Java class for Enum and CustomObject
	// kinds. Empty (and ignored) for the primitive kinds.
	ClassName string
}

// Convenience constructors for common argument types.

// IntType returns the integer argument type.
func IntType() ArgType { return ArgType{Kind: ArgInteger} }

// LongType returns the long argument type.
func LongType() ArgType { return ArgType{Kind: ArgLong} }

// FloatType returns the float argument type.
func FloatType() ArgType { return ArgType{Kind: ArgFloat} }

// BoolType returns the boolean argument type.
func BoolType() ArgType { return ArgType{Kind: ArgBoolean} }

// StringType returns the string argument type.
func StringType() ArgType { return ArgType{Kind: ArgString} }

// EnumType returns an enum argument type for the given class.
func EnumType(className string) ArgType {
	return ArgType{Kind: ArgEnum, ClassName: className}
}

// ObjectType returns a custom-object argument type for the given class.
func ObjectType(className string) ArgType {
	return ArgType{Kind: ArgCustomObject, ClassName: className}
}

// ArrayOf wraps t in an array.
func ArrayOf(t ArgType) ArgType {
	t.Array = true
	return t
}

// Representation returns the Java type used for fields, constructor
// parameters, and setter parameters.
func (t ArgType) Representation() string {
	var base string
	switch t.Kind {
	case ArgInteger:
		base = "int"
	case ArgLong:
		base = "long"
	case ArgFloat:
		base = "float"
	case ArgBoolean:
		base = "boolean"
	case ArgString:
		base = "String"
	case ArgEnum, ArgCustomObject:
		base = t.ClassName
	default:
		// Guarded by Graph.Validate; kept total for direct callers.
		base = "Object"
	}
	if t.Array {
		return base + "[]"
	}
	return base
}

// PutOperation returns the Bundle method that stores a value of this type.
func (t ArgType) PutOperation() string {
	switch t.Kind {
	case ArgInteger:
		if t.Array {
			return "putIntArray"
		}
		return "putInt"
	case ArgLong:
		if t.Array {
			return "putLongArray"
		}
		return "putLong"
	case ArgFloat:
		if t.Array {
			return "putFloatArray"
		}
		return "putFloat"
	case ArgBoolean:
		if t.Array {
			return "putBooleanArray"
		}
		return "putBoolean"
	case ArgString:
		if t.Array {
			return "putStringArray"
		}
		return "putString"
	case ArgEnum:
		// Enums (and enum arrays) travel as Serializable.
		return "putSerializable"
	case ArgCustomObject:
		if t.Array {
			return "putParcelableArray"
		}
		return "putParcelable"
	default:
		return "putSerializable"
	}
}

// Literal renders a default value as a Java literal for this type. It returns
// an error when raw is not representable, which callers surface as a model
// error carrying the owning destination and action.
func (t ArgType) Literal(raw string) (string, error) {
	if raw == "null" {
		// null is a valid default for every reference type.
		switch {
		case t.Array, t.Kind == ArgString, t.Kind == ArgEnum, t.Kind == ArgCustomObject:
			return "null", nil
		}
		return "", fmt.Errorf("null is not assignable to %s", t.Representation())
	}
	if t.Array {
		return "", fmt.Errorf("array defaults other than null are not supported: %q", raw)
	}

	switch t.Kind {
	case ArgInteger:
		// Resource references (R.id.some_dest) resolve to ints at the
		// host platform's compile time and pass through verbatim.
		if isResourceReference(raw) {
			return raw, nil
		}
		if _, err := strconv.ParseInt(raw, 0, 32); err != nil {
			return "", fmt.Errorf("invalid int literal %q", raw)
		}
		return raw, nil
	case ArgLong:
		trimmed := strings.TrimSuffix(strings.TrimSuffix(raw, "L"), "l")
		if _, err := strconv.ParseInt(trimmed, 0, 64); err != nil {
			return "", fmt.Errorf("invalid long literal %q", raw)
		}
		return trimmed + "L", nil
	case ArgFloat:
		trimmed := strings.TrimSuffix(strings.TrimSuffix(raw, "F"), "f")
		f, err := strconv.ParseFloat(trimmed, 32)
		if err != nil {
			return "", fmt.Errorf("invalid float literal %q", raw)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("non-finite float literal %q", raw)
		}
		return trimmed + "F", nil
	case ArgBoolean:
		if raw != "true" && raw != "false" {
			return "", fmt.Errorf("invalid boolean literal %q", raw)
		}
		return raw, nil
	case ArgString:
		return javaStringLiteral(raw), nil
	case ArgEnum:
		if !IsJavaIdentifier(raw) || IsJavaReservedWord(raw) {
			return "", fmt.Errorf("invalid enum constant %q", raw)
		}
		return t.ClassName + "." + raw, nil
	case ArgCustomObject:
		return "", fmt.Errorf("custom object defaults other than null are not supported: %q", raw)
	default:
		return "", fmt.Errorf("unsupported argument kind %d", int(t.Kind))
	}
}

// isResourceReference matches R.-prefixed dotted references such as
// R.id.some_dest: every dot-separated segment must be a Java identifier.
func isResourceReference(s string) bool {
	if !strings.HasPrefix(s, "R.") {
		return false
	}
	for _, seg := range strings.Split(s, ".") {
		if !IsJavaIdentifier(seg) {
			return false
		}
	}
	return true
}

// javaStringLiteral renders s as a Java string literal. Control characters
// and characters outside the basic multilingual plane use \uXXXX escapes
// (surrogate pairs for the latter); Go-only escape forms never appear.
func javaStringLiteral(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			switch {
			case r < 0x20 || r == 0x7f:
				fmt.Fprintf(&b, `\u%04x`, r)
			case r > 0xffff:
				hi, lo := utf16.EncodeRune(r)
				fmt.Fprintf(&b, `\u%04x\u%04x`, hi, lo)
			default:
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
