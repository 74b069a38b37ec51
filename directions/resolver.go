package directions

import (
	"strings"

	"github.com/navgen/safeargs/ir"
)

// ClassName is a package-qualified Java class name.
type ClassName struct {
	// Package is the Java package, empty for the default package.
	Package string

	// Name is the simple class name.
	Name string
}

// String returns the fully qualified name.
func (c ClassName) String() string {
	if c.Package == "" {
		return c.Name
	}
	return c.Package + "." + c.Name
}

// IDAccessor renders the runtime expression that resolves a resource id.
// A nil id resolves to the literal 0, meaning a self/no-op target.
func IDAccessor(id *ir.ResourceID) string {
	if id == nil {
		return "0"
	}
	if id.Package == "" {
		return "R.id." + id.Name
	}
	return id.Package + ".R.id." + id.Name
}

// ClassNameFor derives the holding-class name for a destination. The
// three-tier fallback is part of the tool's observable contract: it fixes
// generated file placement and the names downstream code links against.
//
//  1. A non-empty symbolic name is split at its last dot into package and
//     short name; a leading dot makes the name relative to defaultPkg.
//  2. Otherwise the destination id supplies the package and, capitalized,
//     the short name.
//  3. A destination with actions but neither is a model error.
//
// The short name is always suffixed with "Directions".
func ClassNameFor(dest *ir.Destination, defaultPkg string) (ClassName, error) {
	if dest.Name != "" {
		name := dest.Name
		if strings.HasPrefix(name, ".") && defaultPkg != "" {
			name = defaultPkg + name
		}
		pkg := ""
		short := name
		if i := strings.LastIndex(name, "."); i >= 0 {
			pkg = name[:i]
			short = name[i+1:]
		}
		return ClassName{Package: pkg, Name: short + "Directions"}, nil
	}
	if dest.ID != nil {
		return ClassName{
			Package: dest.ID.Package,
			Name:    Capitalize(dest.ID.Name) + "Directions",
		}, nil
	}
	return ClassName{}, &ir.ModelError{
		Code:    ir.CodeMissingIdentity,
		Message: "destination with actions has neither a name nor an id",
	}
}
