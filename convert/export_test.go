package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"bridgegen/convert"
	"bridgegen/types"
)

func TestExportSummary(t *testing.T) {
	t.Parallel()

	apis := []*convert.API{
		{Namespace: types.NamespaceOf("ns"), ID: "Foo", Disposition: convert.Used()},
		{Namespace: types.NewNamespace(), ID: "Hidden", Disposition: convert.Unused()},
		{Namespace: types.NamespaceOf("ns"), ID: "Old", Disposition: convert.UsedWithAlias("New")},
	}
	res := convert.Results{
		AdditionalNeeds: []convert.AdditionalNeed{{
			Kind: convert.NeedCTypeTypedef,
			Type: types.NewTypeName(types.NewNamespace(), "c_int"),
		}},
	}

	out, err := convert.ExportSummary(apis, res)
	require.NoError(t, err)

	var sum convert.Summary
	require.NoError(t, yaml.Unmarshal(out, &sum))

	require.Len(t, sum.Declarations, 3)
	assert.Equal(t, "ns", sum.Declarations[0].Namespace)
	assert.Equal(t, "Foo", sum.Declarations[0].Name)
	assert.Equal(t, "Foo", sum.Declarations[0].ReExport)

	assert.Empty(t, sum.Declarations[1].Namespace)
	assert.Empty(t, sum.Declarations[1].ReExport)

	assert.Equal(t, "New", sum.Declarations[2].ReExport)
	assert.Equal(t, "New", sum.Declarations[2].External)

	require.Len(t, sum.Needs, 1)
	assert.Equal(t, "native typedef for sized type c_int", sum.Needs[0])
}

func TestExportSummaryReflectsAllowlistOverride(t *testing.T) {
	t.Parallel()

	apis := []*convert.API{
		{Namespace: types.NewNamespace(), ID: "Foo", Disposition: convert.Used(), AllowlistID: "RealFoo"},
	}

	out, err := convert.ExportSummary(apis, convert.Results{})
	require.NoError(t, err)

	var sum convert.Summary
	require.NoError(t, yaml.Unmarshal(out, &sum))

	require.Len(t, sum.Declarations, 1)
	assert.Equal(t, "RealFoo", sum.Declarations[0].External)
}
