package registry

import "sync"

// Registry pairs the two taint sets an interceptor needs to consult:
// DelayFDs (descriptors that should sleep) and ErrFDs (descriptors that
// should fail). It is a process-global singleton created lazily on first
// use and lives until process exit; it is never torn down.
type Registry struct {
	DelayFDs *TaintSet
	ErrFDs   *TaintSet
}

var (
	global     *Registry
	globalOnce sync.Once
)

// New returns a fresh, empty Registry. Exported for tests; production
// code should use Global().
func New() *Registry {
	return &Registry{
		DelayFDs: NewTaintSet(),
		ErrFDs:   NewTaintSet(),
	}
}

// Global returns the process-wide Registry, creating it on first call.
// Safe to call from any thread, including reentrantly from within an
// interceptor during process startup.
func Global() *Registry {
	globalOnce.Do(func() {
		global = New()
	})
	return global
}

// CopyTaint propagates oldfd's membership in each set to newfd, as
// dup2/dup3 require. This is a pure union: if newfd was already tainted
// for a reason unrelated to oldfd, that taint is preserved, not cleared.
// A dup'd descriptor should behave at least as faulty as the one it was
// duplicated from, never less, so membership can only ever be added here.
func (r *Registry) CopyTaint(oldfd, newfd int) {
	if r.DelayFDs.Contains(oldfd) {
		r.DelayFDs.Insert(newfd)
	}
	if r.ErrFDs.Contains(oldfd) {
		r.ErrFDs.Insert(newfd)
	}
}

// Forget removes fd from both sets unconditionally, as close(2) requires.
// Removing a descriptor that was never tainted, or removing it twice, is
// not an error.
func (r *Registry) Forget(fd int) {
	r.DelayFDs.Remove(fd)
	r.ErrFDs.Remove(fd)
}
