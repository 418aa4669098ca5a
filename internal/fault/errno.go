package fault

/*
#include <errno.h>

static void libfaultinj_set_errno(int e) {
	errno = e;
}
*/
import "C"

// SetErrno sets the C library's thread-local errno to e. This is the one
// spot in the package that needs cgo: Go's runtime keeps its own errno
// bookkeeping for calls made through package syscall, but callers of our
// exported C functions read libc's errno directly, so we have to write
// the real thing.
func SetErrno(e int) {
	C.libfaultinj_set_errno(C.int(e))
}
