package convert

import (
	"errors"
	"testing"

	crdberrors "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridgegen/types"
)

func TestIgnorableIsExactlyTheTwoSkippableKinds(t *testing.T) {
	t.Parallel()

	ignorable := map[FailureKind]bool{
		FailureVirtualThisType:        true,
		FailureUnsupportedBuiltInType: true,
	}

	for k := FailureKind(1); int(k) < failureKindCount; k++ {
		e := &ConvertError{Kind: k}
		assert.Equal(t, ignorable[k], e.Ignorable(), k.String())
	}
}

func TestClassifyMatchesIgnorable(t *testing.T) {
	t.Parallel()

	for k := FailureKind(1); int(k) < failureKindCount; k++ {
		e := &ConvertError{Kind: k}

		want := OutcomeAbort
		if e.Ignorable() {
			want = OutcomeSkip
		}

		assert.Equal(t, want, Classify(e), k.String())
	}
}

func TestErrorMessagesIdentifyTheConstruct(t *testing.T) {
	t.Parallel()

	ns := types.NamespaceOf("widgets")

	e := &ConvertError{Kind: FailureUnexpectedThisType, Namespace: ns, Function: "resize"}
	assert.Contains(t, e.Error(), "resize")
	assert.Contains(t, e.Error(), "in namespace widgets")

	e = &ConvertError{Kind: FailureUnsupportedBuiltInType, Type: types.NewTypeName(types.NewNamespace(), "__int128")}
	assert.Contains(t, e.Error(), "__int128")

	e = &ConvertError{Kind: FailureUnsafePODType, Detail: "holds a self-referential pointer"}
	assert.Contains(t, e.Error(), "self-referential pointer")

	e = &ConvertError{Kind: FailureComplexTypedefTarget, Detail: "std::function<void()>"}
	assert.Contains(t, e.Error(), "std::function<void()>")
}

func TestEveryKindHasADistinctMessage(t *testing.T) {
	t.Parallel()

	seen := make(map[string]FailureKind)
	for k := FailureKind(1); int(k) < failureKindCount; k++ {
		msg := (&ConvertError{Kind: k}).Error()
		require.NotEmpty(t, msg, k.String())

		prev, dup := seen[msg]
		assert.False(t, dup, "%s and %s share a message", prev, k)
		seen[msg] = k
	}
}

func TestFatalCarriesTheReportHint(t *testing.T) {
	t.Parallel()

	e := &ConvertError{Kind: FailureUnexpectedOuterItem}
	err := e.Fatal()
	require.Error(t, err)

	hints := crdberrors.GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, reportHint, hints[0])

	var ce *ConvertError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, FailureUnexpectedOuterItem, ce.Kind)
}

func TestSubject(t *testing.T) {
	t.Parallel()

	withFn := &ConvertError{Kind: FailureVirtualThisType, Function: "resize"}
	assert.Equal(t, "resize", withFn.Subject())

	withType := &ConvertError{
		Kind: FailureUnsupportedBuiltInType,
		Type: types.NewTypeName(types.NamespaceOf("a"), "__int128"),
	}
	assert.Equal(t, "__int128", withType.Subject())

	withDetail := &ConvertError{Kind: FailureUnsafePODType, Detail: "Foo"}
	assert.Equal(t, "Foo", withDetail.Subject())
}

func TestFailureKindStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "FailureNoContent", FailureNoContent.String())
	assert.Equal(t, "FailureConflictingTemplatedArgsWithTypedef", FailureConflictingTemplatedArgsWithTypedef.String())
	assert.Equal(t, "NeedCTypeTypedef", NeedCTypeTypedef.String())
}
