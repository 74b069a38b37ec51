// Package directions builds immutable class-shape descriptions for the
// generated Directions API: one holding class per destination, one nested
// action class per outgoing action. Shapes are pure values derived from the
// ir model; rendering them to Java source lives in the java package.
package directions

import "unicode"

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
// Empty input stays empty. Downstream consumers reference generated classes
// and setters by these exact names, so the transform must never change.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// SetterName derives the fluent setter name for an argument.
func SetterName(argName string) string {
	return "set" + Capitalize(argName)
}
