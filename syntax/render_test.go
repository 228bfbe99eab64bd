package syntax_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"bridgegen/syntax"
)

func render(item syntax.Item) string {
	var b strings.Builder
	item.Render(&b, 0)

	return b.String()
}

func TestVerbatimRender(t *testing.T) {
	t.Parallel()

	v := &syntax.Verbatim{Text: "pub struct Foo;"}
	assert.Equal(t, "pub struct Foo;\n", render(v))
}

func TestVerbatimReindentsMultilineFragments(t *testing.T) {
	t.Parallel()

	m := &syntax.Mod{
		Name:  "outer",
		Items: []syntax.Item{&syntax.Verbatim{Text: "fn a() {\n}\n"}},
	}

	assert.Equal(t, "pub mod outer {\n    fn a() {\n    }\n}\n", render(m))
}

func TestModRender(t *testing.T) {
	t.Parallel()

	empty := &syntax.Mod{Name: "a"}
	assert.Equal(t, "pub mod a {}\n", render(empty))

	attributed := &syntax.Mod{
		Name:  "bridge",
		Attrs: []string{"bridge"},
		Items: []syntax.Item{&syntax.Verbatim{Text: "struct S;"}},
	}
	assert.Equal(t, "#[bridge]\npub mod bridge {\n    struct S;\n}\n", render(attributed))
}

func TestNestedModIndentation(t *testing.T) {
	t.Parallel()

	inner := &syntax.Mod{Name: "b", Items: []syntax.Item{&syntax.Verbatim{Text: "struct S;"}}}
	outer := &syntax.Mod{Name: "a", Items: []syntax.Item{inner}}

	assert.Equal(t, "pub mod a {\n    pub mod b {\n        struct S;\n    }\n}\n", render(outer))
}

func TestUseRender(t *testing.T) {
	t.Parallel()

	plain := &syntax.Use{Path: []string{"super", "bridge"}}
	assert.Equal(t, "use super::bridge;\n", render(plain))

	pub := &syntax.Use{Pub: true, Path: []string{"bridge", "Foo"}}
	assert.Equal(t, "pub use bridge::Foo;\n", render(pub))

	aliased := &syntax.Use{Pub: true, Path: []string{"bridge", "Foo"}, Alias: "Bar"}
	assert.Equal(t, "pub use bridge::Foo as Bar;\n", render(aliased))
}

func TestImplBlockRender(t *testing.T) {
	t.Parallel()

	empty := &syntax.ImplBlock{Type: "Widget"}
	assert.Equal(t, "impl Widget {}\n", render(empty))

	block := &syntax.ImplBlock{
		Type: "Widget",
		Methods: []syntax.Item{
			&syntax.Verbatim{Text: "fn a();"},
			&syntax.Verbatim{Text: "fn b();"},
		},
	}
	assert.Equal(t, "impl Widget {\n    fn a();\n    fn b();\n}\n", render(block))
}

func TestForeignModRender(t *testing.T) {
	t.Parallel()

	empty := &syntax.ForeignMod{ABI: "C++", Unsafe: true}
	assert.Equal(t, "unsafe extern \"C++\" {}\n", render(empty))

	full := &syntax.ForeignMod{
		ABI:    "C++",
		Unsafe: true,
		Items: []syntax.ForeignItem{
			&syntax.TypeAlias{Name: "c_int", Target: "bridgert::c_int"},
			&syntax.Include{Header: "foo.h"},
		},
	}
	assert.Equal(t,
		"unsafe extern \"C++\" {\n    type c_int = bridgert::c_int;\n    include!(\"foo.h\");\n}\n",
		render(full))
}

func TestRenderConcatenatesTopLevelItems(t *testing.T) {
	t.Parallel()

	out := syntax.Render([]syntax.Item{
		&syntax.Verbatim{Text: "struct A;"},
		&syntax.Verbatim{Text: "struct B;"},
	})

	assert.Equal(t, "struct A;\nstruct B;\n", out)
}
