//go:build faultinj_mmap

package main

/*
#include <sys/types.h>
#include <sys/stat.h>
*/
import "C"

import (
	"unsafe"

	"libfaultinj/internal/resolver"
)

// lseek64, stat, fstat, send and recv round out the interposed ABI
// surface but have no LIBFAULTINJ_* variable family of their own and no
// fault-engine hookup; they are forwarded straight to the real symbol.
// Grouped behind the same faultinj_mmap tag as mmap/ioctl for symmetry,
// not because they share mmap's deadlock risk.
var (
	lseek64Fn = resolver.NewFunc[func(fd int32, offset int64, whence int32) int64]("lseek64")
	statFn    = resolver.NewFunc[func(path uintptr, buf unsafe.Pointer) int32]("stat")
	fstatFn   = resolver.NewFunc[func(fd int32, buf unsafe.Pointer) int32]("fstat")
	sendFn    = resolver.NewFunc[func(fd int32, buf unsafe.Pointer, n uintptr, flags int32) int64]("send")
	recvFn    = resolver.NewFunc[func(fd int32, buf unsafe.Pointer, n uintptr, flags int32) int64]("recv")
)

//export lseek64
func lseek64(fd C.int, offset C.off_t, whence C.int) C.off_t {
	return C.off_t(lseek64Fn.Get()(int32(fd), int64(offset), int32(whence)))
}

//export stat
func stat(path *C.char, buf *C.struct_stat) C.int {
	return C.int(statFn.Get()(uintptr(unsafe.Pointer(path)), unsafe.Pointer(buf)))
}

//export fstat
func fstat(fd C.int, buf *C.struct_stat) C.int {
	return C.int(fstatFn.Get()(int32(fd), unsafe.Pointer(buf)))
}

//export send
func send(fd C.int, buf unsafe.Pointer, n C.size_t, flags C.int) C.ssize_t {
	return C.ssize_t(sendFn.Get()(int32(fd), buf, uintptr(n), int32(flags)))
}

//export recv
func recv(fd C.int, buf unsafe.Pointer, n C.size_t, flags C.int) C.ssize_t {
	return C.ssize_t(recvFn.Get()(int32(fd), buf, uintptr(n), int32(flags)))
}
