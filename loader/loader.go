// Package loader reads a navigation graph from its YAML document form and
// produces the validated ir model the generator consumes.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/navgen/safeargs/ir"
)

var validate = validator.New()

// document is the YAML wire form of a navigation graph.
type document struct {
	Destinations []destinationDoc `yaml:"destinations" validate:"required,min=1,dive"`
}

type idDoc struct {
	Package string `yaml:"package"`
	Name    string `yaml:"name" validate:"required"`
}

type destinationDoc struct {
	Name    string      `yaml:"name"`
	ID      *idDoc      `yaml:"id"`
	Actions []actionDoc `yaml:"actions" validate:"dive"`
}

type actionDoc struct {
	ID          idDoc    `yaml:"id"`
	Destination *idDoc   `yaml:"destination"`
	Args        []argDoc `yaml:"args" validate:"dive"`
}

type argDoc struct {
	Name string `yaml:"name" validate:"required"`
	Type string `yaml:"type" validate:"required"`

	// Class is the fully qualified Java class for enum and object types.
	Class string `yaml:"class"`

	Optional bool   `yaml:"optional"`
	Default  string `yaml:"default"`
}

// Load parses a navigation graph document and converts it to the ir model.
// The returned graph has already passed ir.Graph.Validate.
func Load(r io.Reader) (*ir.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph document: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse graph document: %w", err)
	}
	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("invalid graph document: %w", err)
	}

	graph, err := doc.toGraph()
	if err != nil {
		return nil, err
	}
	if errs := graph.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid navigation graph: %w", errors.Join(errs...))
	}
	return graph, nil
}

// LoadFile loads a navigation graph from a YAML file.
func LoadFile(path string) (*ir.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open graph document: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func (d *document) toGraph() (*ir.Graph, error) {
	graph := &ir.Graph{}
	for _, dd := range d.Destinations {
		dest := ir.Destination{Name: dd.Name}
		if dd.ID != nil {
			dest.ID = &ir.ResourceID{Package: dd.ID.Package, Name: dd.ID.Name}
		}
		for _, ad := range dd.Actions {
			act := ir.Action{
				ID: ir.ResourceID{Package: ad.ID.Package, Name: ad.ID.Name},
			}
			if ad.Destination != nil {
				act.Destination = &ir.ResourceID{Package: ad.Destination.Package, Name: ad.Destination.Name}
			}
			for _, gd := range ad.Args {
				typ, err := ParseType(gd.Type, gd.Class)
				if err != nil {
					return nil, fmt.Errorf("argument %s of action %s: %w", gd.Name, ad.ID.Name, err)
				}
				act.Args = append(act.Args, ir.Argument{
					Name:     gd.Name,
					Type:     typ,
					Optional: gd.Optional || gd.Default != "",
					Default:  gd.Default,
				})
			}
			dest.Actions = append(dest.Actions, act)
		}
		graph.Destinations = append(graph.Destinations, dest)
	}
	return graph, nil
}

// ParseType parses a document type name ("int", "string[]", "enum", ...) into
// an ArgType. Enum and object types take the target class from class.
func ParseType(name, class string) (ir.ArgType, error) {
	array := strings.HasSuffix(name, "[]")
	base := strings.TrimSuffix(name, "[]")

	var t ir.ArgType
	switch base {
	case "integer", "int":
		t = ir.IntType()
	case "long":
		t = ir.LongType()
	case "float":
		t = ir.FloatType()
	case "boolean", "bool":
		t = ir.BoolType()
	case "string":
		t = ir.StringType()
	case "enum":
		if class == "" {
			return ir.ArgType{}, fmt.Errorf("enum type requires a class")
		}
		t = ir.EnumType(class)
	case "object", "parcelable":
		if class == "" {
			return ir.ArgType{}, fmt.Errorf("object type requires a class")
		}
		t = ir.ObjectType(class)
	default:
		return ir.ArgType{}, fmt.Errorf("unknown argument type %q", name)
	}
	if array {
		t = ir.ArrayOf(t)
	}
	return t, nil
}
