// Package ir defines the in-memory model of a navigation graph: destinations,
// the actions between them, and the typed arguments actions carry. Loaders
// produce an immutable ir.Graph snapshot; the directions builder and the Java
// emitter consume it without mutation.
package ir

// ResourceID is a package-qualified symbolic identifier, resolved to a numeric
// resource id (R.id.<Name>) at runtime by the host platform.
type ResourceID struct {
	// Package is the application package hosting the R class.
	Package string

	// Name is the resource entry name. Non-empty for any present ResourceID.
	Name string
}

// IsZero reports whether the identifier is empty.
func (id ResourceID) IsZero() bool {
	return id.Package == "" && id.Name == ""
}

// Destination is a node in the navigation graph.
type Destination struct {
	// Name is the destination's symbolic class name, dotted and possibly
	// package-relative (leading "."). May be empty when ID is set.
	Name string

	// ID is the destination's resource id. Nil when the graph declares none.
	ID *ResourceID

	// Actions are the destination's outgoing transitions, in declaration order.
	Actions []Action
}

// Action is a directed transition from its owning destination.
type Action struct {
	// ID names the action. Its Name field becomes the generated factory
	// method name and, capitalized, the nested class name.
	ID ResourceID

	// Destination is the transition target. Nil means a self/no-op target,
	// which resolves to the literal 0 at generation time.
	Destination *ResourceID

	// Args are the action's arguments, in declaration order. Order is
	// significant: it fixes both constructor parameter order and the order
	// of Bundle writes.
	Args []Argument
}

// Graph is a complete, validated navigation graph snapshot.
type Graph struct {
	// Destinations in declaration order. Generation output order follows
	// this order.
	Destinations []Destination
}
