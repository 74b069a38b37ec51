package ir

// Argument is a named, typed value attached to an action.
type Argument struct {
	// Name is the argument name. It is the Bundle key and, capitalized,
	// the setter method suffix. Non-empty and unique within its action.
	Name string

	// Type is the argument's type from the closed catalog.
	Type ArgType

	// Optional arguments are excluded from the generated constructor and
	// initialized to their rendered default instead.
	Optional bool

	// Default is the raw default value. Present iff Optional; rendered
	// through Type.Literal at generation time.
	Default string
}

// DefaultLiteral renders the argument's default value as a Java literal.
// Only meaningful for optional arguments.
func (a Argument) DefaultLiteral() (string, error) {
	return a.Type.Literal(a.Default)
}
