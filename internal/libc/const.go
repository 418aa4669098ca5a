package libc

import "golang.org/x/sys/unix"

// Flag and family constants re-exported from golang.org/x/sys/unix for
// callers that build open()/socket() arguments without cgo (tests, and
// internal/resolver-based callers outside cmd/libfaultinj, which gets
// these directly from its own C preamble).
const (
	ORdwr  = unix.O_RDWR
	OCreat = unix.O_CREAT
	OTrunc = unix.O_TRUNC

	AFInet     = unix.AF_INET
	SockStream = unix.SOCK_STREAM
)
