//go:build faultinj_mmap

package main

/*
#include <sys/types.h>
*/
import "C"

import (
	"unsafe"

	"libfaultinj/internal/fault"
	"libfaultinj/internal/registry"
	"libfaultinj/internal/resolver"
)

// mmap/ioctl interception is opt-in (build tag faultinj_mmap) because on
// systems using jemalloc-style allocators, the very first mmap() can
// happen during dynamic-library initialization, before anything in this
// package has run — which deadlocks the resolver's one-shot libc handle
// setup against itself. This is a real, documented failure mode on such
// systems, not a hypothetical one, so the intercept ships in source but
// is compiled out unless that tag is set.
var (
	mmapFn  = resolver.NewFunc[func(addr unsafe.Pointer, length uintptr, prot, flags, fd int32, offset int64) unsafe.Pointer]("mmap")
	ioctlFn = resolver.NewFunc[func(fd int32, request uint64, arg unsafe.Pointer) int32]("ioctl")
)

// mapFailed mirrors libc's MAP_FAILED, ((void *) -1).
var mapFailed = unsafe.Pointer(^uintptr(0))

//export mmap
func mmap(addr unsafe.Pointer, length C.size_t, prot, flags, fd C.int, offset C.off_t) unsafe.Pointer {
	if errno, hit := fault.Inject(registry.Global(), int(fd), "mmap"); hit {
		fault.SetErrno(errno)
		return mapFailed
	}
	return mmapFn.Get()(addr, uintptr(length), int32(prot), int32(flags), int32(fd), int64(offset))
}

//export ioctl
func ioctl(fd C.int, request C.ulong, arg unsafe.Pointer) C.int {
	if errno, hit := fault.Inject(registry.Global(), int(fd), "ioctl"); hit {
		fault.SetErrno(errno)
		return -1
	}
	return C.int(ioctlFn.Get()(int32(fd), uint64(request), arg))
}
