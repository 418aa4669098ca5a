package main

/*
#include <fcntl.h>
#include <sys/types.h>
*/
import "C"

import (
	"unsafe"

	"libfaultinj/internal/libc"
)

// open, open64 and creat all share one call name ("open") in the
// environment-variable policy: there is a single LIBFAULTINJ_ERROR_PATH /
// LIBFAULTINJ_DELAY_PATH pair, not one per open variant, and a single
// LIBFAULTINJ_ERROR_OPEN_ERRNO governs all three.
const openCall = "open"

//export open
func open(path *C.char, flags C.int, mode C.mode_t) C.int {
	return doOpen(path, flags, mode, false)
}

//export open64
func open64(path *C.char, flags C.int, mode C.mode_t) C.int {
	return doOpen(path, flags, mode, true)
}

//export creat
func creat(path *C.char, mode C.mode_t) C.int {
	const flags = C.O_CREAT | C.O_WRONLY | C.O_TRUNC
	return doOpen(path, C.int(flags), mode, false)
}

func doOpen(path *C.char, flags C.int, mode C.mode_t, large bool) C.int {
	ptr := uintptr(unsafe.Pointer(path))

	var fd int32
	if large {
		fd = libc.Open64(ptr, int32(flags), uint32(mode))
	} else {
		fd = libc.Open(ptr, int32(flags), uint32(mode))
	}
	if fd < 0 {
		return C.int(fd)
	}

	applyPathTaint(libc.GoString(ptr), fd)

	if proceed, ret := runEngine(fd, openCall, -1, true); !proceed {
		return C.int(ret)
	}
	return C.int(fd)
}
