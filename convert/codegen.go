package convert

import (
	"sort"

	"github.com/cockroachdb/errors"

	"bridgegen/internal/common"
	"bridgegen/known"
	"bridgegen/syntax"
	"bridgegen/types"
)

const (
	// BridgeModName is the flat scope that holds every bridge-interface
	// item; re-exports pull identifiers out of it into the nested tree.
	BridgeModName = "bridge"
	// GeneratedHeaderName is the supplementary header, included only
	// when the native-code generator has something to emit.
	GeneratedHeaderName = "bridgegen.h"

	// bridgeAttr marks the bridge module for the host's interop macro.
	bridgeAttr  = "bridge"
	rootModName = "root"
	foreignABI  = "C++"
)

// Results is everything the assembly stage produces: the final host output
// items and the requests handed to the external native-code generator.
type Results struct {
	Items           []syntax.Item
	AdditionalNeeds []AdditionalNeed
}

// assembler carries the per-invocation inputs through the pipeline. It is
// created and discarded inside GenerateCode, so an instance can never be
// reused across invocations.
type assembler struct {
	includeList   []string
	useStmtsByNS  map[types.Namespace][]syntax.Item
	extractionMod *syntax.Mod
}

// GenerateCode merges a flat list of API descriptions into the final output
// artifacts. The pipeline runs in fixed order: the re-export tree, the
// regenerated declaration tree, the flat partition of the remaining
// fragments, sized-type shim injection, include directives, bridge block
// assembly, and final ordering. All per-item failure was already filtered
// out before records reach this stage, so there is no error surface here.
//
// GenerateCode consumes its inputs: the use-fragment map is drained as
// namespaces are finalized, and the extraction container is rewritten to
// hold the declaration tree.
func GenerateCode(apis []*API, includeList []string, useStmtsByNS map[types.Namespace][]syntax.Item, extractionMod *syntax.Mod) Results {
	a := &assembler{
		includeList:   includeList,
		useStmtsByNS:  useStmtsByNS,
		extractionMod: extractionMod,
	}

	return a.generate(apis)
}

func (a *assembler) generate(apis []*API) Results {
	// The namespace-nested surfaces first: the re-export tree exposed to
	// end users, then the regenerated declaration tree. From here on
	// everything is flat.
	useStatements := generateReexportTree(apis)
	rootItems := a.generateDeclarationTree(apis)

	var (
		foreignItems []syntax.ForeignItem
		bridgeItems  []syntax.Item
		globalItems  []syntax.Item
		needs        []AdditionalNeed
		deps         []map[types.TypeName]struct{}
	)

	for _, api := range apis {
		if api.ForeignDecl != nil {
			foreignItems = append(foreignItems, api.ForeignDecl)
		}
		bridgeItems = append(bridgeItems, api.BridgeItems...)
		globalItems = append(globalItems, api.GlobalItems...)
		if api.Need != nil {
			needs = append(needs, *api.Need)
		}
		deps = append(deps, api.Deps)
	}

	foreignItems, needs = appendSizedTypeShims(deps, foreignItems, needs)
	foreignItems = append(foreignItems, a.includeDirectives(!common.IsEmpty(needs))...)

	// A foreign block is emitted even when the extraction phase produced
	// only types: the interop macro still has to learn about them.
	bridgeItems = append(bridgeItems, &syntax.ForeignMod{
		ABI:    foreignABI,
		Unsafe: true,
		Items:  foreignItems,
	})

	allItems := globalItems
	if !common.IsEmpty(rootItems) {
		if a.extractionMod == nil {
			panic(errors.AssertionFailedf(
				"declaration tree produced %d items but no extraction container was supplied", len(rootItems)))
		}
		a.extractionMod.Items = []syntax.Item{&syntax.Mod{Name: rootModName, Items: rootItems}}
		allItems = append(allItems, a.extractionMod)
	}

	// Order matters from here: the re-exports reference identifiers
	// defined in the bridge module, so the bridge module precedes them.
	allItems = append(allItems, &syntax.Mod{
		Name:  BridgeModName,
		Attrs: []string{bridgeAttr},
		Items: bridgeItems,
	})
	allItems = append(allItems, useStatements...)

	return Results{Items: allItems, AdditionalNeeds: needs}
}

// generateReexportTree walks the namespace grouping and emits the hierarchy
// of modules whose re-exports make up the user-facing API surface.
func generateReexportTree(apis []*API) []syntax.Item {
	var out []syntax.Item
	appendReexportsForNode(OrganizeByNamespace(apis), &out)

	return out
}

func appendReexportsForNode(ne *NamespaceEntries, out *[]syntax.Item) {
	for _, api := range ne.Entries() {
		switch api.Disposition.Kind {
		case DispositionUsed:
			*out = append(*out, &syntax.Use{Pub: true, Path: []string{BridgeModName, api.ID}})
		case DispositionUsedWithAlias:
			*out = append(*out, &syntax.Use{Pub: true, Path: []string{BridgeModName, api.ID}, Alias: api.Disposition.Alias})
		case DispositionUnused:
		}
	}

	for _, child := range ne.Children() {
		var inner []syntax.Item
		appendReexportsForNode(child.Node, &inner)
		if common.IsEmpty(inner) {
			// No re-exports anywhere below: the module is omitted.
			continue
		}

		items := append([]syntax.Item{&syntax.Use{Path: []string{"super", BridgeModName}}}, inner...)
		*out = append(*out, &syntax.Mod{Name: child.Name, Items: items})
	}
}

// generateDeclarationTree walks the grouping a second time and rebuilds the
// namespace-nested declaration modules from the per-record fragments.
func (a *assembler) generateDeclarationTree(apis []*API) []syntax.Item {
	ns := types.NewNamespace()

	var out []syntax.Item
	a.appendDeclarationsForNode(OrganizeByNamespace(apis), &out, ns)

	return a.appendUsesForNS(out, ns)
}

func (a *assembler) appendDeclarationsForNode(ne *NamespaceEntries, out *[]syntax.Item, ns types.Namespace) {
	// Method-impl fragments sharing a target identifier merge into one
	// block per type; identifier collisions within a namespace are
	// expected here, not an error.
	var implOrder []string
	implsByType := make(map[string][]syntax.Item)

	for _, api := range ne.Entries() {
		if api.Decl != nil {
			*out = append(*out, api.Decl)
		}
		if api.MethodImpl != nil {
			if _, ok := implsByType[api.ID]; !ok {
				implOrder = append(implOrder, api.ID)
			}
			implsByType[api.ID] = append(implsByType[api.ID], api.MethodImpl)
		}
	}

	for _, ty := range implOrder {
		*out = append(*out, &syntax.ImplBlock{Type: ty, Methods: implsByType[ty]})
	}

	for _, child := range ne.Children() {
		childNS := ns.Push(child.Name)

		var inner []syntax.Item
		a.appendDeclarationsForNode(child.Node, &inner, childNS)
		if common.IsEmpty(inner) {
			// Empty modules are pruned, never emitted. Use-fragments
			// for a pruned namespace stay unconsumed.
			continue
		}

		inner = a.appendUsesForNS(inner, childNS)
		*out = append(*out, &syntax.Mod{Name: child.Name, Items: inner})
	}
}

// appendUsesForNS appends the namespace's pre-extracted use-fragments after
// its own content, consuming them from the map.
func (a *assembler) appendUsesForNS(items []syntax.Item, ns types.Namespace) []syntax.Item {
	uses := a.useStmtsByNS[ns]
	delete(a.useStmtsByNS, ns)

	return append(items, uses...)
}

// appendSizedTypeShims scans the union of all dependency sets for type
// references that need a platform-sized typedef shim. Each distinct type
// yields exactly one host-side alias in the foreign block and one matching
// request to the native-code generator, however many records depend on it.
func appendSizedTypeShims(deps []map[types.TypeName]struct{}, foreignItems []syntax.ForeignItem, needs []AdditionalNeed) ([]syntax.ForeignItem, []AdditionalNeed) {
	seen := make(map[types.TypeName]struct{})
	for _, set := range deps {
		for tn := range set {
			if known.IsSizedType(tn) {
				seen[tn] = struct{}{}
			}
		}
	}

	// Sorted iteration to ensure deterministic output
	sized := make([]types.TypeName, 0, len(seen))
	for tn := range seen {
		sized = append(sized, tn)
	}
	sort.Slice(sized, func(i, j int) bool { return sized[i].String() < sized[j].String() })

	for _, tn := range sized {
		foreignItems = append(foreignItems, &syntax.TypeAlias{
			Name:   tn.Name(),
			Target: known.HostEquivalent(tn),
		})
		needs = append(needs, AdditionalNeed{Kind: NeedCTypeTypedef, Type: tn})
	}

	return foreignItems, needs
}

// includeDirectives builds one inclusion directive per configured header,
// plus one for the generated supplementary header when it will exist.
func (a *assembler) includeDirectives(hasNeeds bool) []syntax.ForeignItem {
	headers := a.includeList
	if hasNeeds {
		headers = append(append([]string(nil), headers...), GeneratedHeaderName)
	}

	out := make([]syntax.ForeignItem, 0, len(headers))
	for _, h := range headers {
		out = append(out, &syntax.Include{Header: h})
	}

	return out
}
