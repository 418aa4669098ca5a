package main

/*
#include <sys/socket.h>
*/
import "C"

import (
	"unsafe"

	"libfaultinj/internal/libc"
	"libfaultinj/internal/policy"
	"libfaultinj/internal/registry"
)

const afInet = C.AF_INET

//export socket
func socket(domain, typ, protocol C.int) C.int {
	// The fd doesn't exist until the real call returns, and its address
	// isn't known until bind/connect, so socket() itself is never
	// tainted and always forwards.
	return C.int(libc.Socket(int32(domain), int32(typ), int32(protocol)))
}

//export bind
func bind(fd C.int, addr *C.struct_sockaddr, addrlen C.socklen_t) C.int {
	taintForAddr(int32(fd), addr, addrlen)

	if proceed, ret := runEngine(int32(fd), "bind", -1, false); !proceed {
		return C.int(ret)
	}
	return C.int(libc.Bind(int32(fd), uintptr(unsafe.Pointer(addr)), uint32(addrlen)))
}

//export connect
func connect(fd C.int, addr *C.struct_sockaddr, addrlen C.socklen_t) C.int {
	taintForAddr(int32(fd), addr, addrlen)

	if proceed, ret := runEngine(int32(fd), "connect", -1, false); !proceed {
		return C.int(ret)
	}
	return C.int(libc.Connect(int32(fd), uintptr(unsafe.Pointer(addr)), uint32(addrlen)))
}

// taintForAddr inserts fd into ERR_FDS if the sockaddr's IPv4 address
// matches LIBFAULTINJ_ERROR_ADDR. IPv6 addresses are never tainted
// (out of scope).
func taintForAddr(fd int32, addr *C.struct_sockaddr, addrlen C.socklen_t) {
	host, ok := policy.ErrorAddrHost()
	if !ok {
		return
	}

	raw := libc.Bytes(uintptr(unsafe.Pointer(addr)), int(addrlen))
	ip, _, ok := policy.DecodeSockaddrIn4(raw, uint16(afInet))
	if !ok {
		return
	}

	if policy.MatchesAddr(ip, host) {
		registry.Global().ErrFDs.Insert(int(fd))
	}
}
