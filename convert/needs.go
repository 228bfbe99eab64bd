package convert

import "bridgegen/types"

//go:generate go tool stringer -type=NeedKind -output=needkind_string.go

// NeedKind discriminates supplementary native-side generation requests.
type NeedKind int

const (
	_ NeedKind = iota // skip zero value, use it as a default (invalid) value

	// NeedCTypeTypedef requests a native typedef for a platform-sized
	// built-in type, matching the host-side alias the assembler emits.
	NeedCTypeTypedef

	needKindCount = int(iota)
)

// AdditionalNeed is one request to the external native-code generator. It
// carries enough context to emit the native source on its own.
type AdditionalNeed struct {
	Kind NeedKind
	Type types.TypeName
}

// Description renders the need for logs and the summary export.
func (n AdditionalNeed) Description() string {
	switch n.Kind {
	case NeedCTypeTypedef:
		return "native typedef for sized type " + n.Type.String()
	default:
		return "unknown need for " + n.Type.String()
	}
}
