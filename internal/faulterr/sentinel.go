package faulterr

// Sentinel errors for common failure cases. These exist so callers can
// match on a stable error identity with errors.Is instead of string
// comparison.
var (
	// ErrSymbolNotFound indicates a required libc symbol was missing.
	ErrSymbolNotFound = &Error{Kind: KindResolution, Detail: "libc symbol not found"}
)
