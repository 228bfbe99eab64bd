package syntax

import "strings"

// ForeignMod is a block of foreign-linkage declarations. The assembler
// always marks the bridge block unsafe: its contents are native-linkage
// symbols whose safety was vetted during conversion, and the host compiler
// must be told to take them on trust.
type ForeignMod struct {
	ABI    string
	Unsafe bool
	Items  []ForeignItem
}

// Render writes e.g. `unsafe extern "C++" { ... }`.
func (f *ForeignMod) Render(b *strings.Builder, indent int) {
	writeIndent(b, indent)
	if f.Unsafe {
		b.WriteString("unsafe ")
	}
	b.WriteString("extern \"")
	b.WriteString(f.ABI)
	b.WriteString("\"")

	if len(f.Items) == 0 {
		b.WriteString(" {}\n")
		return
	}

	b.WriteString(" {\n")
	for _, item := range f.Items {
		item.Render(b, indent+1)
	}
	writeIndent(b, indent)
	b.WriteString("}\n")
}

// Include is an inclusion directive for one foreign header.
type Include struct {
	Header string
}

// Render writes `include!("foo.h");`.
func (i *Include) Render(b *strings.Builder, indent int) {
	writeIndent(b, indent)
	b.WriteString("include!(\"")
	b.WriteString(i.Header)
	b.WriteString("\");\n")
}

func (i *Include) foreignItem() {}

// TypeAlias binds a local name inside a foreign block to a host-provided
// equivalent, e.g. `type c_int = bridgert::c_int;`.
type TypeAlias struct {
	Name   string
	Target string
}

// Render writes the alias declaration.
func (t *TypeAlias) Render(b *strings.Builder, indent int) {
	writeIndent(b, indent)
	b.WriteString("type ")
	b.WriteString(t.Name)
	b.WriteString(" = ")
	b.WriteString(t.Target)
	b.WriteString(";\n")
}

func (t *TypeAlias) foreignItem() {}
