package convert

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"bridgegen/types"
)

//go:generate go tool stringer -type=FailureKind -output=failurekind_string.go

// FailureKind classifies why one candidate declaration failed conversion.
type FailureKind int

const (
	_ FailureKind = iota // skip zero value, use it as a default (invalid) value

	// FailureNoContent: the whole run produced nothing convertible.
	FailureNoContent
	// FailureUnsafePODType: a type requested as pass-by-value is unsafe
	// to hold by value in the host language.
	FailureUnsafePODType
	// FailureUnexpectedForeignItem: unrecognized extraction output inside
	// a foreign block.
	FailureUnexpectedForeignItem
	// FailureUnexpectedOuterItem: unrecognized extraction output at the
	// outermost level.
	FailureUnexpectedOuterItem
	// FailureUnexpectedItemInMod: unrecognized extraction output inside a
	// namespace module.
	FailureUnexpectedItemInMod
	// FailureComplexTypedefTarget: an alias target too structurally
	// complex to re-express.
	FailureComplexTypedefTarget
	// FailureUnexpectedThisType: a member function's implicit receiver
	// type could not be resolved.
	FailureUnexpectedThisType
	// FailureVirtualThisType: the receiver is an untyped pointer with no
	// resolvable type.
	FailureVirtualThisType
	// FailureUnsupportedBuiltInType: a built-in foreign type with no
	// known mapping.
	FailureUnsupportedBuiltInType
	// FailureConflictingTemplatedArgsWithTypedef: a type and its typedef
	// target both carry template arguments, which is ambiguous.
	FailureConflictingTemplatedArgsWithTypedef

	failureKindCount = int(iota)
)

// ConvertError describes why one candidate declaration failed conversion.
// Which of the location fields are set depends on the kind.
type ConvertError struct {
	Kind FailureKind
	// Detail is free-form context for UnsafePODType and
	// ComplexTypedefTarget failures.
	Detail string
	// Type is the offending type reference for type-shaped failures.
	Type types.TypeName
	// Namespace and Function locate the member function for
	// receiver-shaped failures.
	Namespace types.Namespace
	Function  string
}

// Error returns one descriptive message identifying the offending construct.
func (e *ConvertError) Error() string {
	switch e.Kind {
	case FailureNoContent:
		return "the extraction pass did not produce any convertible content; none of the requested declarations could be converted"
	case FailureUnsafePODType:
		return fmt.Sprintf("a type was requested as pass-by-value but is not safe to hold by value in the host language: %s", e.Detail)
	case FailureUnexpectedForeignItem:
		return "the extraction pass produced an unrecognized item inside a foreign block"
	case FailureUnexpectedOuterItem:
		return "the extraction pass produced an unrecognized item at its outermost level"
	case FailureUnexpectedItemInMod:
		return "the extraction pass produced an unrecognized item inside a namespace module"
	case FailureComplexTypedefTarget:
		return fmt.Sprintf("unable to produce a typedef pointing to the complex type %s", e.Detail)
	case FailureUnexpectedThisType:
		return fmt.Sprintf("unexpected receiver type for the member function %s%s", e.Function, e.Namespace.DisplaySuffix())
	case FailureVirtualThisType:
		return fmt.Sprintf("the member function %s%s has an untyped pointer receiver whose type could not be recognized", e.Function, e.Namespace.DisplaySuffix())
	case FailureUnsupportedBuiltInType:
		return fmt.Sprintf("no known mapping for the built-in foreign type %s", e.Type)
	case FailureConflictingTemplatedArgsWithTypedef:
		return fmt.Sprintf("the type %s has templated arguments and so does the typedef it points to", e.Type)
	default:
		return fmt.Sprintf("conversion failure %s", e.Kind)
	}
}

// Ignorable reports whether the failure should silently drop just the one
// candidate instead of aborting the whole invocation.
func (e *ConvertError) Ignorable() bool {
	return e.Kind == FailureVirtualThisType || e.Kind == FailureUnsupportedBuiltInType
}

// Subject names the construct the failure is about, best effort.
func (e *ConvertError) Subject() string {
	switch {
	case e.Function != "":
		return e.Function
	case e.Type != (types.TypeName{}):
		return e.Type.Name()
	default:
		return e.Detail
	}
}

// reportHint is attached to every fatal conversion error.
const reportHint = "if your headers use a pattern this tool does not support yet, please file an issue describing the offending declaration"

// Fatal wraps e as the single user-visible error that aborts the invocation.
func (e *ConvertError) Fatal() error {
	return errors.WithHint(e, reportHint)
}

// Outcome classifies one failed conversion attempt for the driving loop.
type Outcome int

const (
	// OutcomeSkip drops the one candidate and continues.
	OutcomeSkip Outcome = iota + 1
	// OutcomeAbort stops the whole invocation.
	OutcomeAbort
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeSkip:
		return "skip"
	case OutcomeAbort:
		return "abort"
	default:
		return "unknown"
	}
}

// Classify maps a conversion failure onto the skip-or-abort boundary.
func Classify(e *ConvertError) Outcome {
	if e.Ignorable() {
		return OutcomeSkip
	}

	return OutcomeAbort
}
