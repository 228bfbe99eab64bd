package syntax

import "strings"

// Mod is a public host-language module holding nested items.
type Mod struct {
	Name string
	// Attrs are attribute names rendered above the module, e.g. "bridge".
	Attrs []string
	Items []Item
}

// Render writes the module and its contents.
func (m *Mod) Render(b *strings.Builder, indent int) {
	for _, attr := range m.Attrs {
		writeIndent(b, indent)
		b.WriteString("#[")
		b.WriteString(attr)
		b.WriteString("]\n")
	}

	writeIndent(b, indent)
	b.WriteString("pub mod ")
	b.WriteString(m.Name)

	if len(m.Items) == 0 {
		b.WriteString(" {}\n")
		return
	}

	b.WriteString(" {\n")
	for _, item := range m.Items {
		item.Render(b, indent+1)
	}
	writeIndent(b, indent)
	b.WriteString("}\n")
}

// Use is an import or re-export of a path, optionally bound to an alias.
type Use struct {
	// Pub re-exports the name instead of merely importing it.
	Pub   bool
	Path  []string
	Alias string
}

// Render writes e.g. "pub use bridge::Foo as Bar;".
func (u *Use) Render(b *strings.Builder, indent int) {
	writeIndent(b, indent)
	if u.Pub {
		b.WriteString("pub ")
	}
	b.WriteString("use ")
	b.WriteString(strings.Join(u.Path, "::"))
	if u.Alias != "" {
		b.WriteString(" as ")
		b.WriteString(u.Alias)
	}
	b.WriteString(";\n")
}

// ImplBlock is one method block attached to a type, holding the merged
// method-impl fragments for that type.
type ImplBlock struct {
	Type    string
	Methods []Item
}

// Render writes the block with its methods in order.
func (i *ImplBlock) Render(b *strings.Builder, indent int) {
	writeIndent(b, indent)
	b.WriteString("impl ")
	b.WriteString(i.Type)

	if len(i.Methods) == 0 {
		b.WriteString(" {}\n")
		return
	}

	b.WriteString(" {\n")
	for _, m := range i.Methods {
		m.Render(b, indent+1)
	}
	writeIndent(b, indent)
	b.WriteString("}\n")
}
