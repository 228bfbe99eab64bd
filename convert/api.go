// Package convert holds the assembly stage of the bridge compiler: the API
// description records produced by the extraction phase, the conversion
// failure taxonomy, and the single-shot assembler that merges a flat record
// list into the final host output tree, the bridge-interface block, and the
// list of supplementary native-side generation requests.
package convert

import (
	"bridgegen/diagnostic"
	"bridgegen/syntax"
	"bridgegen/types"
)

// DispositionKind states whether a declaration is re-exported at all.
type DispositionKind int

const (
	DispositionUnused DispositionKind = iota
	DispositionUsed
	DispositionUsedWithAlias
)

// String returns a human-readable disposition name.
func (k DispositionKind) String() string {
	switch k {
	case DispositionUnused:
		return "unused"
	case DispositionUsed:
		return "used"
	case DispositionUsedWithAlias:
		return "used-with-alias"
	default:
		return "unknown"
	}
}

// Disposition controls whether and under which name a declaration is
// re-exported from the flat bridge scope into the nested host module tree.
type Disposition struct {
	Kind DispositionKind
	// Alias is the binding name, set only for DispositionUsedWithAlias.
	Alias string
}

// Unused emits no re-export.
func Unused() Disposition {
	return Disposition{Kind: DispositionUnused}
}

// Used re-exports the declaration under its own identifier.
func Used() Disposition {
	return Disposition{Kind: DispositionUsed}
}

// UsedWithAlias re-exports the declaration bound to alias.
func UsedWithAlias(alias string) Disposition {
	return Disposition{Kind: DispositionUsedWithAlias, Alias: alias}
}

// API is one convertible unit of foreign API surface, annotated with its
// namespace, re-export disposition, and output-surface fragments. The
// fragments are mostly opaque snippets the extraction phase already shaped;
// assembly consists of placing them on the right output surface rather than
// rewriting them. Normally at most one primary fragment is populated, and
// any subset may be absent.
type API struct {
	// Namespace positions the declaration in both the host module tree
	// and the foreign namespace hierarchy.
	Namespace types.Namespace
	// ID is the declaration's identifier in the host language.
	ID string
	// Disposition controls re-export emission.
	Disposition Disposition
	// Deps are opaque type references this declaration depends on. They
	// are used only to detect sized-type shim needs, never dereferenced
	// and never used for ordering.
	Deps map[types.TypeName]struct{}

	// ForeignDecl goes into the bridge interface's foreign block.
	ForeignDecl syntax.ForeignItem
	// BridgeItems go into the bridge module outside the foreign block.
	BridgeItems []syntax.Item
	// GlobalItems go at the top level of the final output.
	GlobalItems []syntax.Item
	// Decl is regenerated into the declaration tree at Namespace.
	Decl syntax.Item
	// MethodImpl is merged into the per-type method block at Namespace.
	MethodImpl syntax.Item

	// Need is an optional supplementary request to the external
	// native-code generator.
	Need *AdditionalNeed
	// AllowlistID overrides the name under which the declaration is
	// referenced externally, when that differs from ID.
	AllowlistID string
}

// TypeName returns the declaration's own qualified name.
func (a *API) TypeName() types.TypeName {
	return types.NewTypeName(a.Namespace, a.ID)
}

// AllowlistName returns the qualified name the declaration is referenced by
// externally: the allow-list override if present, else the re-export alias,
// else the identifier itself.
func (a *API) AllowlistName() types.TypeName {
	id := a.AllowlistID
	if id == "" {
		if a.Disposition.Kind == DispositionUsedWithAlias {
			id = a.Disposition.Alias
		} else {
			id = a.ID
		}
	}

	return types.NewTypeName(a.Namespace, id)
}

// ParseResults is the bundle the conversion phase hands to the assembler:
// every converted record plus the per-namespace use-fragments extracted
// alongside them. It is owned by the conversion phase until passed to
// GenerateCode, which drains the use-fragment map.
type ParseResults struct {
	APIs         []*API
	UseStmtsByNS map[types.Namespace][]syntax.Item
}

// Collect records the outcome of one conversion attempt, implementing the
// skip-or-abort boundary: a nil failure appends the record, an ignorable
// failure drops the one candidate and reports it to rep, and any other
// failure aborts the invocation with a single descriptive error.
func (p *ParseResults) Collect(api *API, convErr *ConvertError, rep *diagnostic.Reporter) error {
	if convErr == nil {
		p.APIs = append(p.APIs, api)
		return nil
	}

	if convErr.Ignorable() {
		rep.Skip(convErr.Namespace, convErr.Subject(), convErr)
		return nil
	}

	return convErr.Fatal()
}

// Check returns the fatal no-content error when the whole run produced
// nothing convertible.
func (p *ParseResults) Check() error {
	if len(p.APIs) == 0 {
		return (&ConvertError{Kind: FailureNoContent}).Fatal()
	}

	return nil
}
