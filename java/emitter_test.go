package java

import (
	"bytes"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/navgen/safeargs/directions"
	"github.com/navgen/safeargs/ir"
)

// goldenDestinations are the inputs whose emitted output is pinned in
// testdata/directions.txtar, keyed by the file path they generate.
var goldenDestinations = []ir.Destination{
	{
		Name: "com.example.MainFragment",
		Actions: []ir.Action{
			{
				ID:          ir.ResourceID{Package: "com.example", Name: "next"},
				Destination: &ir.ResourceID{Package: "com.example", Name: "next_fragment"},
				Args: []ir.Argument{
					{Name: "main", Type: ir.StringType()},
					{Name: "optionalArg", Type: ir.IntType(), Optional: true, Default: "1"},
				},
			},
		},
	},
	{
		Name: "com.example.SettingsFragment",
		Actions: []ir.Action{
			{
				// Nil target: getDestinationId() returns 0. The argument
				// name is a Java reserved word and must be escaped.
				ID:   ir.ResourceID{Package: "com.example", Name: "open"},
				Args: []ir.Argument{{Name: "class", Type: ir.StringType()}},
			},
		},
	},
}

func TestEmitFile_Golden(t *testing.T) {
	archive, err := txtar.ParseFile("testdata/directions.txtar")
	if err != nil {
		t.Fatalf("failed to parse golden archive: %v", err)
	}
	want := make(map[string][]byte, len(archive.Files))
	for _, f := range archive.Files {
		want[f.Name] = f.Data
	}

	emitter := NewEmitter(Config{})
	for i := range goldenDestinations {
		dest := &goldenDestinations[i]
		file, err := directions.BuildFile(dest, "")
		if err != nil {
			t.Fatalf("BuildFile(%s) returned error: %v", dest.Name, err)
		}

		path := FilePath(file)
		expected, ok := want[path]
		if !ok {
			t.Fatalf("no golden entry for %s", path)
		}
		got := emitter.EmitFile(file)
		if !bytes.Equal(got, expected) {
			t.Errorf("output mismatch for %s:\n--- got ---\n%s\n--- want ---\n%s", path, got, expected)
		}
	}
}

func TestEmitFile_Deterministic(t *testing.T) {
	dest := &goldenDestinations[0]
	file, err := directions.BuildFile(dest, "")
	if err != nil {
		t.Fatalf("BuildFile() returned error: %v", err)
	}

	emitter := NewEmitter(Config{})
	first := emitter.EmitFile(file)
	second := emitter.EmitFile(file)
	if !bytes.Equal(first, second) {
		t.Error("emitting the same file twice produced different output")
	}
}

func TestEmitFile_DefaultPackage(t *testing.T) {
	dest := &ir.Destination{
		Name:    "Foo",
		Actions: []ir.Action{{ID: ir.ResourceID{Name: "go"}}},
	}
	file, err := directions.BuildFile(dest, "")
	if err != nil {
		t.Fatalf("BuildFile() returned error: %v", err)
	}

	out := NewEmitter(Config{}).EmitFile(file)
	if bytes.Contains(out, []byte("package ;")) || bytes.Contains(out, []byte("package \n")) {
		t.Errorf("default-package file should have no package statement:\n%s", out)
	}
}

func TestEmitFile_CustomHeader(t *testing.T) {
	dest := &goldenDestinations[0]
	file, err := directions.BuildFile(dest, "")
	if err != nil {
		t.Fatalf("BuildFile() returned error: %v", err)
	}

	out := NewEmitter(Config{Header: "custom marker"}).EmitFile(file)
	if !bytes.HasPrefix(out, []byte("// custom marker\n")) {
		t.Errorf("output should start with the custom header:\n%s", out[:60])
	}
}

func TestFilePath(t *testing.T) {
	tests := []struct {
		name string
		file directions.File
		want string
	}{
		{
			name: "qualified package",
			file: directions.File{
				Package:    "com.example",
				Directions: directions.DirectionsShape{Name: directions.ClassName{Package: "com.example", Name: "FooDirections"}},
			},
			want: "com/example/FooDirections.java",
		},
		{
			name: "default package",
			file: directions.File{
				Directions: directions.DirectionsShape{Name: directions.ClassName{Name: "FooDirections"}},
			},
			want: "FooDirections.java",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilePath(&tt.file); got != tt.want {
				t.Errorf("FilePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEscapeReservedWord(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"class", "class_"},
		{"int", "int_"},
		{"main", "main"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := escapeReservedWord(tt.in); got != tt.want {
			t.Errorf("escapeReservedWord(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
