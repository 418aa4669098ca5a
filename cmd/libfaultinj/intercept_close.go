package main

import "C"

import (
	"libfaultinj/internal/libc"
)

//export close
func close(fd C.int) C.int {
	rc := libc.Close(int32(fd))
	untaint(int32(fd))
	return C.int(rc)
}

//export dup2
func dup2(oldfd, newfd C.int) C.int {
	copyTaint(int32(oldfd), int32(newfd))
	return C.int(libc.Dup2(int32(oldfd), int32(newfd)))
}

//export dup3
func dup3(oldfd, newfd, flags C.int) C.int {
	copyTaint(int32(oldfd), int32(newfd))
	return C.int(libc.Dup3(int32(oldfd), int32(newfd), int32(flags)))
}
