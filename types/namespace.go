package types

import "strings"

const separator = "::"

// Namespace is an ordered path of module segments locating a declaration in
// both the foreign namespace hierarchy and the host module tree. The zero
// value is the root (top-level) namespace. Namespace is a comparable value
// type and is safe to use as a map key.
type Namespace struct {
	path string
}

// NewNamespace returns the root namespace.
func NewNamespace() Namespace {
	return Namespace{}
}

// NamespaceOf builds a namespace from the given segments.
func NamespaceOf(segments ...string) Namespace {
	return Namespace{path: strings.Join(segments, separator)}
}

// Push returns a copy of n with one more segment appended.
func (n Namespace) Push(segment string) Namespace {
	if n.path == "" {
		return Namespace{path: segment}
	}

	return Namespace{path: n.path + separator + segment}
}

// Segments returns the ordered path segments. The root namespace has none.
func (n Namespace) Segments() []string {
	if n.path == "" {
		return nil
	}

	return strings.Split(n.path, separator)
}

// IsRoot reports whether n is the root namespace.
func (n Namespace) IsRoot() bool {
	return n.path == ""
}

// Depth returns the number of segments.
func (n Namespace) Depth() int {
	return len(n.Segments())
}

// String returns the segments joined with "::", empty for the root.
func (n Namespace) String() string {
	return n.path
}

// DisplaySuffix renders a location suffix for error messages,
// e.g. " in namespace a::b". Empty for the root namespace.
func (n Namespace) DisplaySuffix() string {
	if n.path == "" {
		return ""
	}

	return " in namespace " + n.path
}
