// Package java renders directions shape descriptions to Java source text.
// The class shapes themselves are the contract; this package only fixes the
// concrete syntax: one compilation unit per Directions holding class, with
// deterministic formatting so unchanged models regenerate byte-identical
// files.
package java

import (
	"bytes"
	"strings"

	"github.com/navgen/safeargs/directions"
)

// Config controls formatting of emitted Java source.
type Config struct {
	// Indent is one indentation level. Default: four spaces.
	Indent string

	// Header is emitted as a line comment at the top of every file.
	// Default: a generated-code marker.
	Header string
}

func (c Config) withDefaults() Config {
	if c.Indent == "" {
		c.Indent = "    "
	}
	if c.Header == "" {
		c.Header = "Generated by safeargs. Do not edit."
	}
	return c
}

// Emitter renders directions files as Java compilation units.
type Emitter struct {
	cfg Config
}

// NewEmitter returns an Emitter with defaults applied.
func NewEmitter(cfg Config) *Emitter {
	return &Emitter{cfg: cfg.withDefaults()}
}

// FilePath returns the sink-relative path for a generated file,
// e.g. com/example/FooDirections.java.
func FilePath(f *directions.File) string {
	dir := strings.ReplaceAll(f.Package, ".", "/")
	if dir == "" {
		return f.Directions.Name.Name + ".java"
	}
	return dir + "/" + f.Directions.Name.Name + ".java"
}

// EmitFile renders one Directions holding class as a complete Java
// compilation unit.
func (e *Emitter) EmitFile(f *directions.File) []byte {
	var buf bytes.Buffer
	buf.WriteString("// " + e.cfg.Header + "\n")
	if f.Package != "" {
		buf.WriteString("package " + f.Package + ";\n")
	}
	buf.WriteString("\n")
	buf.WriteString("import android.os.Bundle;\n")
	buf.WriteString("import androidx.navigation.NavDirections;\n")
	buf.WriteString("import androidx.navigation.NavOptions;\n")
	buf.WriteString("\n")

	d := &f.Directions
	buf.WriteString("public class " + d.Name.Name + " {\n")
	for i := range d.Actions {
		if i > 0 {
			buf.WriteString("\n")
		}
		e.emitActionClass(&buf, &d.Actions[i])
	}
	for i := range d.Actions {
		buf.WriteString("\n")
		e.emitFactory(&buf, &d.Actions[i])
	}
	buf.WriteString("}\n")
	return buf.Bytes()
}

// emitActionClass renders one nested action class.
func (e *Emitter) emitActionClass(buf *bytes.Buffer, act *directions.ActionShape) {
	in := e.cfg.Indent
	s := &act.Shape

	buf.WriteString(in + "public static class " + s.Name.Name + " implements NavDirections {\n")

	// Fields: required are final, optional carry their default initializer.
	for _, fld := range s.Fields {
		buf.WriteString(in + in + "private ")
		if fld.Final {
			buf.WriteString("final ")
		}
		buf.WriteString(fld.Type + " " + escapeReservedWord(fld.Name))
		if fld.Initializer != "" {
			buf.WriteString(" = " + fld.Initializer)
		}
		buf.WriteString(";\n")
	}

	// Constructor over the required arguments, in declaration order.
	if len(s.Fields) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString(in + in + "public " + s.Name.Name + "(" + paramList(s.Ctor) + ") {\n")
	for _, p := range s.Ctor {
		name := escapeReservedWord(p.Name)
		buf.WriteString(in + in + in + "this." + name + " = " + name + ";\n")
	}
	buf.WriteString(in + in + "}\n")

	// Fluent setters for the optional arguments.
	for _, set := range s.Setters {
		name := escapeReservedWord(set.Param.Name)
		buf.WriteString("\n" + in + in + "public " + s.Name.Name + " " + set.Name + "(" + set.Param.Type + " " + name + ") {\n")
		buf.WriteString(in + in + in + "this." + name + " = " + name + ";\n")
		buf.WriteString(in + in + in + "return this;\n")
		buf.WriteString(in + in + "}\n")
	}

	// Serialization: every argument, declaration order, via its put operation.
	buf.WriteString("\n" + in + in + "@Override\n")
	buf.WriteString(in + in + "public Bundle getArguments() {\n")
	buf.WriteString(in + in + in + "Bundle bundle = new Bundle();\n")
	for _, w := range s.Writes {
		buf.WriteString(in + in + in + "bundle." + w.Operation + "(\"" + w.Key + "\", " + escapeReservedWord(w.Field) + ");\n")
	}
	buf.WriteString(in + in + in + "return bundle;\n")
	buf.WriteString(in + in + "}\n")

	buf.WriteString("\n" + in + in + "@Override\n")
	buf.WriteString(in + in + "public int getDestinationId() {\n")
	buf.WriteString(in + in + in + "return " + act.DestinationID + ";\n")
	buf.WriteString(in + in + "}\n")

	buf.WriteString("\n" + in + in + "@Override\n")
	buf.WriteString(in + in + "public NavOptions getOptions() {\n")
	buf.WriteString(in + in + in + "return null;\n")
	buf.WriteString(in + in + "}\n")

	buf.WriteString(in + "}\n")
}

// emitFactory renders the holding class's static factory for one action.
func (e *Emitter) emitFactory(buf *bytes.Buffer, act *directions.ActionShape) {
	in := e.cfg.Indent
	s := &act.Shape
	buf.WriteString(in + "public static " + s.Name.Name + " " + act.FactoryName + "(" + paramList(s.Ctor) + ") {\n")
	args := make([]string, len(s.Ctor))
	for i, p := range s.Ctor {
		args[i] = escapeReservedWord(p.Name)
	}
	buf.WriteString(in + in + "return new " + s.Name.Name + "(" + strings.Join(args, ", ") + ");\n")
	buf.WriteString(in + "}\n")
}

func paramList(params []directions.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Type + " " + escapeReservedWord(p.Name)
	}
	return strings.Join(parts, ", ")
}
