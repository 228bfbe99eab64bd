// Package diagnostic records declarations the conversion phase dropped
// instead of converting.
//
// An ignorable conversion failure silently drops the one offending
// candidate; nothing else is affected. The Reporter is the hook that makes
// those drops observable: it keeps a record per skipped declaration and logs
// each one at debug level, so an embedding driver can surface warnings
// without changing the silent-drop baseline.
package diagnostic
