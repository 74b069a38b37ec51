package java

import "github.com/navgen/safeargs/ir"

// escapeReservedWord escapes a Java reserved word by appending an underscore.
// Bundle keys are never escaped; only field, parameter, and variable names.
// Method and class names never reach this path: ir.Graph.Validate rejects
// action ids that are not usable bare identifiers.
func escapeReservedWord(name string) string {
	if ir.IsJavaReservedWord(name) {
		return name + "_"
	}
	return name
}
