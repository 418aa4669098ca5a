// Package resolver resolves real libc symbols at runtime via dlopen/dlsym,
// using github.com/ebitengine/purego instead of hand-written cgo
// trampolines. libc.so.6 is opened once, by name, into a dedicated
// handle — never RTLD_NEXT — so every intercepted symbol always
// resolves to the real libc implementation, not back into this
// library's own exported symbols of the same name.
package resolver

import (
	"sync"

	"github.com/ebitengine/purego"

	"libfaultinj/internal/diag"
	"libfaultinj/internal/faulterr"
)

const libcName = "libc.so.6"

var (
	handleOnce sync.Once
	handle     uintptr
)

// libcHandle returns the process-wide libc handle, opening it on first
// use. Failure to open libc leaves the preloaded library unable to do
// anything useful, so this aborts the process via diag.Fatal rather than
// returning an error every caller would have to thread through and
// likely ignore.
func libcHandle() uintptr {
	handleOnce.Do(func() {
		h, err := purego.Dlopen(libcName, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			diag.Fatal("could not open libc", "library", libcName, "error",
				faulterr.Wrap(err, faulterr.KindResolution, "resolver.libcHandle"))
			return
		}
		handle = h
	})
	return handle
}

// Bind resolves name against the libc handle and stores the resulting
// function pointer into fptr, which must be a pointer to a func value
// whose signature matches the C symbol (see purego.RegisterLibFunc).
// Resolution failure is fatal for the same reason libcHandle's is:
// purego.RegisterLibFunc panics on a missing symbol, so Bind recovers
// that panic and turns it into the same diag.Fatal abort path libcHandle
// uses, instead of letting a raw panic unwind through an exported C
// function back into the target process.
func Bind(fptr any, name string) {
	h := libcHandle()
	if h == 0 {
		return // libcHandle already called diag.Fatal; unreachable in practice
	}

	defer func() {
		if r := recover(); r != nil {
			diag.Fatal("could not resolve libc symbol", "symbol", name, "error",
				faulterr.Wrap(faulterr.ErrSymbolNotFound, faulterr.KindResolution, "resolver.Bind"))
			_ = r
		}
	}()
	purego.RegisterLibFunc(fptr, h, name)
}

// Func wraps a single libc symbol, resolving it at most once no matter
// how many goroutines call Get concurrently. T is the Go func type that
// mirrors the C symbol's signature.
type Func[T any] struct {
	name string
	once sync.Once
	fn   T
}

// NewFunc returns a Func bound to the given libc symbol name. Resolution
// is deferred until the first call to Get.
func NewFunc[T any](name string) *Func[T] {
	return &Func[T]{name: name}
}

// Get returns the resolved function, resolving it on the first call.
func (f *Func[T]) Get() T {
	f.once.Do(func() {
		Bind(&f.fn, f.name)
	})
	return f.fn
}
