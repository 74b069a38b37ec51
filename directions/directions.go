package directions

import (
	"github.com/navgen/safeargs/ir"
)

// ActionShape describes one nested action class inside a Directions holding
// class, plus the static factory that constructs it.
type ActionShape struct {
	// Shape is the nested class: fields, constructor, setters, Bundle writes.
	Shape ClassShape

	// FactoryName is the holding class's static factory method name,
	// the action's id name verbatim.
	FactoryName string

	// DestinationID is the rendered accessor expression for the action's
	// target destination id; "0" for a self/no-op target.
	DestinationID string
}

// DirectionsShape is the generated holding class for one destination: one
// nested action class and one static factory per outgoing action. The nested
// classes additionally expose getArguments() returning the populated Bundle,
// getDestinationId() returning DestinationID, and getOptions() returning
// null (navigation options are deliberately not configurable here).
type DirectionsShape struct {
	Name    ClassName
	Actions []ActionShape
}

// File is one generated-file description: a Directions holding class keyed
// by its package and simple name.
type File struct {
	Package    string
	Directions DirectionsShape
}

// BuildDirections aggregates a destination's actions into its Directions
// holding-class shape. Errors carry the destination's identity so callers
// can locate the offending graph node.
func BuildDirections(dest *ir.Destination, defaultPkg string) (*DirectionsShape, error) {
	name, err := ClassNameFor(dest, defaultPkg)
	if err != nil {
		return nil, err
	}

	shape := &DirectionsShape{Name: name}
	for i := range dest.Actions {
		act := &dest.Actions[i]
		nested := ClassName{Package: name.Package, Name: Capitalize(act.ID.Name)}
		cls, err := BuildClassShape(nested, act.Args)
		if err != nil {
			if me, ok := err.(*ir.ModelError); ok {
				me.Destination = dest.Identity()
				me.Action = act.ID.Name
			}
			return nil, err
		}
		shape.Actions = append(shape.Actions, ActionShape{
			Shape:         *cls,
			FactoryName:   act.ID.Name,
			DestinationID: IDAccessor(act.Destination),
		})
	}
	return shape, nil
}

// BuildFile packages a destination's Directions shape as one generated-file
// description. Destinations without actions produce no file and return nil.
func BuildFile(dest *ir.Destination, defaultPkg string) (*File, error) {
	if len(dest.Actions) == 0 {
		return nil, nil
	}
	shape, err := BuildDirections(dest, defaultPkg)
	if err != nil {
		return nil, err
	}
	return &File{Package: shape.Name.Package, Directions: *shape}, nil
}
