package ir

// ErrorCode is a machine-readable model error code.
type ErrorCode string

const (
	CodeMissingIdentity        ErrorCode = "missing_identity"
	CodeUnsupportedType        ErrorCode = "unsupported_type"
	CodeBadDefaultValue        ErrorCode = "bad_default_value"
	CodeDuplicateArgument      ErrorCode = "duplicate_argument"
	CodeEmptyArgumentName      ErrorCode = "empty_argument_name"
	CodeDefaultWithoutOptional ErrorCode = "default_without_optional"
	CodeMissingDefaultValue    ErrorCode = "missing_default_value"
	CodeMissingClassName       ErrorCode = "missing_class_name"
	CodeEmptyActionName        ErrorCode = "empty_action_name"
	CodeInvalidActionName      ErrorCode = "invalid_action_name"
	CodeInvalidArgumentName    ErrorCode = "invalid_argument_name"
)

// ModelError reports an invalid graph node with enough identity to locate it.
type ModelError struct {
	Code        ErrorCode
	Destination string // destination name or id, best available
	Action      string // action id name, empty for destination-level errors
	Message     string
}

func (e *ModelError) Error() string {
	loc := e.Destination
	if e.Action != "" {
		loc += " action " + e.Action
	}
	if loc == "" {
		loc = "<unnamed destination>"
	}
	return string(e.Code) + ": " + loc + ": " + e.Message
}

// Identity returns the best human-readable handle for a destination:
// its symbolic name, its id name, or a placeholder.
func (d *Destination) Identity() string {
	if d.Name != "" {
		return d.Name
	}
	if d.ID != nil {
		return d.ID.Name
	}
	return "<unnamed destination>"
}

// Validate checks the graph for structural issues and returns all model
// errors found, not just the first. A nil return means the graph is safe
// to generate from.
func (g *Graph) Validate() []error {
	var errs []error
	for i := range g.Destinations {
		dest := &g.Destinations[i]
		if len(dest.Actions) == 0 {
			// Never generated for; identity is not required.
			continue
		}
		if dest.Name == "" && dest.ID == nil {
			errs = append(errs, &ModelError{
				Code:    CodeMissingIdentity,
				Message: "destination with actions has neither a name nor an id",
			})
		}
		for j := range dest.Actions {
			errs = append(errs, validateAction(dest, &dest.Actions[j])...)
		}
	}
	return errs
}

func validateAction(dest *Destination, act *Action) []error {
	var errs []error
	fail := func(code ErrorCode, msg string) {
		errs = append(errs, &ModelError{
			Code:        code,
			Destination: dest.Identity(),
			Action:      act.ID.Name,
			Message:     msg,
		})
	}

	// The action id becomes a factory method name and, capitalized, a class
	// name; both are contractual and cannot be escaped, so unusable names
	// are rejected here.
	if act.ID.Name == "" {
		fail(CodeEmptyActionName, "action has no id name")
	} else if !IsJavaIdentifier(act.ID.Name) || IsJavaReservedWord(act.ID.Name) {
		fail(CodeInvalidActionName, "action id "+act.ID.Name+" is not usable as a Java method name")
	}

	seen := make(map[string]bool, len(act.Args))
	for _, arg := range act.Args {
		if arg.Name == "" {
			fail(CodeEmptyArgumentName, "argument has an empty name")
			continue
		}
		// Reserved words are fine as argument names (field and parameter
		// uses are escaped at emission), but the name must be lexically an
		// identifier.
		if !IsJavaIdentifier(arg.Name) {
			fail(CodeInvalidArgumentName, "argument name "+arg.Name+" is not a valid Java identifier")
		}
		if seen[arg.Name] {
			fail(CodeDuplicateArgument, "duplicate argument "+arg.Name)
		}
		seen[arg.Name] = true

		if !arg.Type.Kind.Valid() {
			fail(CodeUnsupportedType, "argument "+arg.Name+" has an unsupported type kind")
			continue
		}
		if (arg.Type.Kind == ArgEnum || arg.Type.Kind == ArgCustomObject) && arg.Type.ClassName == "" {
			fail(CodeMissingClassName, "argument "+arg.Name+" needs a class name for kind "+arg.Type.Kind.String())
		}

		switch {
		case arg.Optional && arg.Default == "":
			fail(CodeMissingDefaultValue, "optional argument "+arg.Name+" has no default value")
		case !arg.Optional && arg.Default != "":
			fail(CodeDefaultWithoutOptional, "required argument "+arg.Name+" declares a default value")
		case arg.Optional:
			if _, err := arg.DefaultLiteral(); err != nil {
				fail(CodeBadDefaultValue, "argument "+arg.Name+": "+err.Error())
			}
		}
	}
	return errs
}
