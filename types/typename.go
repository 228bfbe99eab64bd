package types

// TypeName identifies one foreign type: a namespace plus its final
// identifier. Like Namespace it is a comparable value type, which lets
// dependency sets be plain map[TypeName]struct{} values.
type TypeName struct {
	ns Namespace
	id string
}

// NewTypeName builds a TypeName from a namespace and an identifier.
func NewTypeName(ns Namespace, id string) TypeName {
	return TypeName{ns: ns, id: id}
}

// Name returns the final identifier.
func (t TypeName) Name() string {
	return t.id
}

// Namespace returns the namespace the type lives in.
func (t TypeName) Namespace() Namespace {
	return t.ns
}

// String returns the fully qualified name, e.g. "a::b::Foo".
func (t TypeName) String() string {
	if t.ns.IsRoot() {
		return t.id
	}

	return t.ns.String() + separator + t.id
}
