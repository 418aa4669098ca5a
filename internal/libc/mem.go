package libc

import "unsafe"

// GoString copies a NUL-terminated C string at ptr into a Go string. It
// does not take ownership of or free the underlying buffer. A nil
// pointer yields "".
func GoString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}

	n := 0
	for {
		b := *(*byte)(unsafe.Pointer(ptr + uintptr(n)))
		if b == 0 {
			break
		}
		n++
	}

	bytes := unsafe.Slice((*byte)(unsafe.Pointer(ptr)), n)
	return string(bytes)
}

// Bytes returns a []byte view over n bytes starting at ptr, without
// copying. Used to read a struct sockaddr passed in by the caller.
func Bytes(ptr uintptr, n int) []byte {
	if ptr == 0 || n <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(ptr)), n)
}
