// Package fault decides, for a given file descriptor and libc call name,
// whether to delay and/or fail the call. It consults the taint sets in
// internal/registry and the environment policy in internal/policy; it
// never touches libc or cgo directly except through errno.go.
package fault

import (
	"math/rand"
	"time"

	"libfaultinj/internal/policy"
	"libfaultinj/internal/registry"
)

// randPct and sleepFor are package variables so tests can substitute
// deterministic implementations without touching global state outside
// this package.
var (
	randPct = func() float64 { return rand.Float64() * 100 }
	sleepFor = time.Sleep
)

// Inject runs the fault-injection decision for a single libc call: if fd
// carries delay taint it may sleep for the configured duration, then if
// fd carries error taint it may report an errno to inject. The delay
// check always runs before the error check, and each draws its own
// independent likelihood roll, so a call can be delayed, failed, both,
// or neither, with no ordering surprise between the two checks.
//
// Inject never performs the real libc call itself; callers must skip it
// when ok is true and use errno as the value to set via SetErrno.
func Inject(reg *registry.Registry, fd int, call string) (errno int, ok bool) {
	if reg == nil {
		return 0, false
	}

	if reg.DelayFDs.Contains(fd) && randPct() < policy.LikelihoodPct() {
		sleepFor(time.Duration(policy.DelayMillis(call)) * time.Millisecond)
	}

	if reg.ErrFDs.Contains(fd) && randPct() < policy.LikelihoodPct() {
		if e, has := policy.ErrnoFor(call); has {
			return e, true
		}
	}

	return 0, false
}
