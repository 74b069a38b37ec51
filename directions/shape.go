package directions

import (
	"github.com/navgen/safeargs/ir"
)

// Field is a generated instance field.
type Field struct {
	// Name is the field name, identical to the argument name.
	Name string

	// Type is the Java type representation.
	Type string

	// Final marks required arguments' fields, immutable after construction.
	Final bool

	// Initializer is the rendered default literal for optional arguments.
	// Empty for required arguments.
	Initializer string
}

// Param is a constructor or setter parameter.
type Param struct {
	Name string
	Type string
}

// Setter is a fluent setter for one optional argument. It assigns the field
// and returns the enclosing instance so calls chain.
type Setter struct {
	// Name is "set" + the capitalized argument name.
	Name string

	Param Param
}

// ContainerWrite records one Bundle put call in the serialization method.
type ContainerWrite struct {
	// Key is the Bundle key, identical to the argument name.
	Key string

	// Operation is the type's put method, e.g. "putString".
	Operation string

	// Field is the field whose current value is written.
	Field string
}

// ClassShape is the complete, immutable description of one generated action
// class: its fields, its constructor over the required arguments, its fluent
// setters over the optional ones, and the ordered Bundle writes covering
// every argument. Two structurally equal argument lists always produce
// structurally equal shapes.
type ClassShape struct {
	Name    ClassName
	Fields  []Field
	Ctor    []Param
	Setters []Setter
	Writes  []ContainerWrite
}

// BuildClassShape derives the class shape for an ordered argument list.
// Constructor parameters and Bundle writes both follow the arguments'
// declaration order; optional arguments drop out of the constructor and
// carry their rendered default as a field initializer instead. Arguments
// whose type or default cannot be rendered reject the whole shape so no
// partial class is ever emitted.
func BuildClassShape(name ClassName, args []ir.Argument) (*ClassShape, error) {
	shape := &ClassShape{Name: name}
	for _, arg := range args {
		if !arg.Type.Kind.Valid() {
			return nil, &ir.ModelError{
				Code:    ir.CodeUnsupportedType,
				Message: "argument " + arg.Name + " has an unsupported type kind",
			}
		}
		rep := arg.Type.Representation()
		field := Field{Name: arg.Name, Type: rep, Final: !arg.Optional}
		if arg.Optional {
			lit, err := arg.DefaultLiteral()
			if err != nil {
				return nil, &ir.ModelError{
					Code:    ir.CodeBadDefaultValue,
					Message: "argument " + arg.Name + ": " + err.Error(),
				}
			}
			field.Initializer = lit
			shape.Setters = append(shape.Setters, Setter{
				Name:  SetterName(arg.Name),
				Param: Param{Name: arg.Name, Type: rep},
			})
		} else {
			shape.Ctor = append(shape.Ctor, Param{Name: arg.Name, Type: rep})
		}
		shape.Fields = append(shape.Fields, field)
		shape.Writes = append(shape.Writes, ContainerWrite{
			Key:       arg.Name,
			Operation: arg.Type.PutOperation(),
			Field:     arg.Name,
		})
	}
	return shape, nil
}
