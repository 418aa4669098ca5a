package main

/*
#include <sys/types.h>
*/
import "C"

import (
	"unsafe"

	"libfaultinj/internal/libc"
)

//export read
func read(fd C.int, buf unsafe.Pointer, count C.size_t) C.ssize_t {
	if proceed, ret := runEngine(int32(fd), "read", -1, false); !proceed {
		return C.ssize_t(ret)
	}
	n := libc.Read(int32(fd), uintptr(buf), uintptr(count))
	return C.ssize_t(n)
}

//export write
func write(fd C.int, buf unsafe.Pointer, count C.size_t) C.ssize_t {
	if proceed, ret := runEngine(int32(fd), "write", -1, false); !proceed {
		return C.ssize_t(ret)
	}
	n := libc.Write(int32(fd), uintptr(buf), uintptr(count))
	return C.ssize_t(n)
}

//export lseek
func lseek(fd C.int, offset C.off_t, whence C.int) C.off_t {
	if proceed, ret := runEngine(int32(fd), "lseek", -1, false); !proceed {
		return C.off_t(ret)
	}
	off := libc.Lseek(int32(fd), int64(offset), int32(whence))
	return C.off_t(off)
}
