package convert

// NamespaceEntries groups a flat API description list into the recursive
// namespace structure both output traversals walk: the descriptions that
// terminate at this path, plus one child node per next segment. Within a
// node the input order is preserved, and children are kept in
// first-encounter order, so every traversal over the grouping is
// deterministic. Nodes only exist along paths that actually carry content.
type NamespaceEntries struct {
	entries  []*API
	order    []string
	children map[string]*NamespaceEntries
}

// OrganizeByNamespace groups apis by their namespace path in one pass.
func OrganizeByNamespace(apis []*API) *NamespaceEntries {
	root := newNamespaceEntries()
	for _, api := range apis {
		node := root
		for _, segment := range api.Namespace.Segments() {
			node = node.child(segment)
		}
		node.entries = append(node.entries, api)
	}

	return root
}

func newNamespaceEntries() *NamespaceEntries {
	return &NamespaceEntries{children: make(map[string]*NamespaceEntries)}
}

func (ne *NamespaceEntries) child(name string) *NamespaceEntries {
	c, ok := ne.children[name]
	if !ok {
		c = newNamespaceEntries()
		ne.children[name] = c
		ne.order = append(ne.order, name)
	}

	return c
}

// Entries returns the descriptions terminating at this node, in input order.
func (ne *NamespaceEntries) Entries() []*API {
	return ne.entries
}

// Child is one named sub-namespace of a node.
type Child struct {
	Name string
	Node *NamespaceEntries
}

// Children returns the sub-namespaces in first-encounter order.
func (ne *NamespaceEntries) Children() []Child {
	out := make([]Child, 0, len(ne.order))
	for _, name := range ne.order {
		out = append(out, Child{Name: name, Node: ne.children[name]})
	}

	return out
}
