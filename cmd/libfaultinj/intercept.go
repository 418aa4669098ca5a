package main

import (
	"libfaultinj/internal/fault"
	"libfaultinj/internal/libc"
	"libfaultinj/internal/policy"
	"libfaultinj/internal/registry"
)

// applyPathTaint taints fd in the registry's ERR_FDS and/or DELAY_FDS if
// path matches the configured ERROR_PATH / DELAY_PATH prefixes. Called
// once, right after a successful open/open64/creat, before the fd is
// ever handed back to the caller.
func applyPathTaint(path string, fd int32) {
	reg := registry.Global()

	if prefix, ok := policy.ErrorPathPrefix(); ok && policy.MatchesPath(path, prefix) {
		reg.ErrFDs.Insert(int(fd))
	}
	if prefix, ok := policy.DelayPathPrefix(); ok && policy.MatchesPath(path, prefix) {
		reg.DelayFDs.Insert(int(fd))
	}
}

// runEngine runs the fault engine for fd/call. If it decides to inject
// an error, it sets errno, optionally closes and untaints fd (for
// open/open64/creat, which must not leak the real fd they just opened),
// and reports the
// sentinel value the caller should return instead of proceeding.
func runEngine(fd int32, call string, sentinel int64, closeOnError bool) (proceed bool, ret int64) {
	errno, hit := fault.Inject(registry.Global(), int(fd), call)
	if !hit {
		return true, 0
	}

	if closeOnError {
		libc.Close(fd)
		untaint(fd)
	}
	fault.SetErrno(errno)
	return false, sentinel
}

// untaint removes fd from both taint sets unconditionally, once it has
// been closed and its number may be reused by the kernel.
func untaint(fd int32) {
	registry.Global().Forget(int(fd))
}

// copyTaint propagates oldfd's taint to newfd, additively, before
// forwarding to the real dup2/dup3: the new descriptor must already
// carry the taint by the time the duplicated fd becomes visible to the
// caller.
func copyTaint(oldfd, newfd int32) {
	registry.Global().CopyTaint(int(oldfd), int(newfd))
}
