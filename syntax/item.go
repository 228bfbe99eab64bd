// Package syntax models the host-language items the assembly stage stitches
// together. The extraction phase hands most content over as opaque verbatim
// fragments; the assembler only synthesizes the small closed set of shapes
// defined here (modules, re-exports, foreign blocks, type aliases, include
// directives, method blocks) around them. Every item renders to
// deterministic source text.
package syntax

import "strings"

const indentUnit = "    "

// Item is one host-language item, either produced by the extraction phase
// or synthesized by the assembler.
type Item interface {
	// Render writes the item's source text, terminated by a newline,
	// at the given indentation depth.
	Render(b *strings.Builder, indent int)
}

// ForeignItem is an item permitted inside a foreign linkage block.
type ForeignItem interface {
	Item
	foreignItem()
}

// Render concatenates the source text of all items at the top level.
func Render(items []Item) string {
	var b strings.Builder
	for _, item := range items {
		item.Render(&b, 0)
	}

	return b.String()
}

func writeIndent(b *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		b.WriteString(indentUnit)
	}
}

// Verbatim is an opaque fragment carried through unchanged. Multi-line
// fragments are re-indented line by line so they sit correctly inside
// nested modules.
type Verbatim struct {
	Text string
}

// Render writes the fragment, one line at a time, at the given depth.
func (v *Verbatim) Render(b *strings.Builder, indent int) {
	for _, line := range strings.Split(strings.TrimRight(v.Text, "\n"), "\n") {
		if line != "" {
			writeIndent(b, indent)
			b.WriteString(line)
		}
		b.WriteByte('\n')
	}
}

func (v *Verbatim) foreignItem() {}
