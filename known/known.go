// Package known holds the registry of foreign built-in types the assembler
// has to treat specially. The only classification the assembly stage needs
// is "platform-sized": built-ins such as int or long whose width is not
// fixed by the foreign language standard, and which therefore need an
// explicit typedef shim on both sides of the bridge.
package known

import "bridgegen/types"

// hostRuntimePrefix is the support library that provides the host-side
// definitions of all platform-sized built-ins.
const hostRuntimePrefix = "bridgert::"

// sizedTypes maps the host-side identifier of every platform-sized foreign
// built-in to its foreign spelling. The fixed-width family (int8_t and
// friends) needs no shim and is deliberately absent.
var sizedTypes = map[string]string{
	"c_char":      "char",
	"c_schar":     "signed char",
	"c_uchar":     "unsigned char",
	"c_short":     "short",
	"c_ushort":    "unsigned short",
	"c_int":       "int",
	"c_uint":      "unsigned int",
	"c_long":      "long",
	"c_ulong":     "unsigned long",
	"c_longlong":  "long long",
	"c_ulonglong": "unsigned long long",
}

// IsSizedType reports whether tn refers to a foreign built-in whose width is
// platform-defined. Only root-namespace names qualify; a user type that
// happens to be called c_int inside a namespace is not a built-in.
func IsSizedType(tn types.TypeName) bool {
	if !tn.Namespace().IsRoot() {
		return false
	}

	_, ok := sizedTypes[tn.Name()]

	return ok
}

// ForeignSpelling returns the native spelling of a sized built-in,
// e.g. "unsigned long long" for c_ulonglong.
func ForeignSpelling(tn types.TypeName) (string, bool) {
	if !tn.Namespace().IsRoot() {
		return "", false
	}

	spelling, ok := sizedTypes[tn.Name()]

	return spelling, ok
}

// HostEquivalent names the canonical host-provided alias target for a sized
// built-in, e.g. "bridgert::c_int".
func HostEquivalent(tn types.TypeName) string {
	return hostRuntimePrefix + tn.Name()
}
