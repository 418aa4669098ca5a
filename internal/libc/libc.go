// Package libc exposes the small, fixed set of real libc entry points
// libfaultinj intercepts, resolved through internal/resolver. Every
// function here takes and returns plain Go values (ints, uintptrs for
// C pointers) — no cgo in this package, so it can be shared between the
// cgo-only interceptor surface (cmd/libfaultinj) and anything that wants
// to call the real libc without paying for a second resolver.
package libc

import "libfaultinj/internal/resolver"

var (
	openFn    = resolver.NewFunc[func(path uintptr, flags int32, mode uint32) int32]("open")
	open64Fn  = resolver.NewFunc[func(path uintptr, flags int32, mode uint32) int32]("open64")
	creatFn   = resolver.NewFunc[func(path uintptr, mode uint32) int32]("creat")
	readFn    = resolver.NewFunc[func(fd int32, buf uintptr, count uintptr) int64]("read")
	writeFn   = resolver.NewFunc[func(fd int32, buf uintptr, count uintptr) int64]("write")
	lseekFn   = resolver.NewFunc[func(fd int32, offset int64, whence int32) int64]("lseek")
	closeFn   = resolver.NewFunc[func(fd int32) int32]("close")
	dup2Fn    = resolver.NewFunc[func(oldfd, newfd int32) int32]("dup2")
	dup3Fn    = resolver.NewFunc[func(oldfd, newfd, flags int32) int32]("dup3")
	socketFn  = resolver.NewFunc[func(domain, typ, protocol int32) int32]("socket")
	bindFn    = resolver.NewFunc[func(fd int32, addr uintptr, addrlen uint32) int32]("bind")
	connectFn = resolver.NewFunc[func(fd int32, addr uintptr, addrlen uint32) int32]("connect")
)

// Open calls the real open(2). path is a pointer to a NUL-terminated C
// string; the caller owns its lifetime.
func Open(path uintptr, flags int32, mode uint32) int32 {
	return openFn.Get()(path, flags, mode)
}

// Open64 calls the real open64(2).
func Open64(path uintptr, flags int32, mode uint32) int32 {
	return open64Fn.Get()(path, flags, mode)
}

// Creat calls the real creat(2).
func Creat(path uintptr, mode uint32) int32 {
	return creatFn.Get()(path, mode)
}

// Read calls the real read(2).
func Read(fd int32, buf uintptr, count uintptr) int64 {
	return readFn.Get()(fd, buf, count)
}

// Write calls the real write(2).
func Write(fd int32, buf uintptr, count uintptr) int64 {
	return writeFn.Get()(fd, buf, count)
}

// Lseek calls the real lseek(2).
func Lseek(fd int32, offset int64, whence int32) int64 {
	return lseekFn.Get()(fd, offset, whence)
}

// Close calls the real close(2).
func Close(fd int32) int32 {
	return closeFn.Get()(fd)
}

// Dup2 calls the real dup2(2).
func Dup2(oldfd, newfd int32) int32 {
	return dup2Fn.Get()(oldfd, newfd)
}

// Dup3 calls the real dup3(2).
func Dup3(oldfd, newfd, flags int32) int32 {
	return dup3Fn.Get()(oldfd, newfd, flags)
}

// Socket calls the real socket(2).
func Socket(domain, typ, protocol int32) int32 {
	return socketFn.Get()(domain, typ, protocol)
}

// Bind calls the real bind(2). addr points at addrlen bytes of a raw
// struct sockaddr.
func Bind(fd int32, addr uintptr, addrlen uint32) int32 {
	return bindFn.Get()(fd, addr, addrlen)
}

// Connect calls the real connect(2). addr points at addrlen bytes of a
// raw struct sockaddr.
func Connect(fd int32, addr uintptr, addrlen uint32) int32 {
	return connectFn.Get()(fd, addr, addrlen)
}
