// Command libfaultinj is a shared library, built with
// -buildmode=c-shared and loaded via LD_PRELOAD, that intercepts a fixed
// set of libc entry points and injects delays and/or errors on a
// per-file-descriptor basis under environment-variable control.
//
// Build:
//
//	go build -buildmode=c-shared -o libfaultinj.so ./cmd/libfaultinj
//	LD_PRELOAD=./libfaultinj.so your-program
//
// See the package-level LIBFAULTINJ_* variables documented in
// internal/policy for the configuration surface. This package itself
// carries no logic beyond ABI marshaling: every decision is made in
// internal/fault, internal/policy, and internal/registry.
//
// Scenarios that require a real preloaded process — observing an actual
// sleep before a read(2) returns, or a live connect(2) failing with an
// injected ECONNREFUSED — are not exercised by this module's unit
// tests; they require an out-of-process harness that starts a target
// binary under LD_PRELOAD, which is outside this repository's scope.
// internal/fault, internal/policy and internal/registry carry the
// automated coverage for the decision logic those scenarios would
// drive.
package main

// main is required by Go's build tooling for -buildmode=c-shared but is
// never invoked: the dynamic loader calls into the exported functions
// in the intercept_*.go files directly after dlopen/LD_PRELOAD, never
// this entry point.
func main() {}
