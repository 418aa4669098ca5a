package libc

import (
	"path/filepath"
	"testing"
	"unsafe"
)

func cString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

func ptrOf(b []byte) uintptr {
	return uintptr(unsafe.Pointer(&b[0]))
}

func TestOpenWriteReadClose_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "libc_roundtrip")
	pathBuf := cString(path)

	fd := Open(ptrOf(pathBuf), ORdwr|OCreat|OTrunc, 0o644)
	if fd < 0 {
		t.Fatalf("Open() = %d, want >= 0", fd)
	}
	defer func() { Close(fd) }()

	payload := cString("hello")[:5] // no trailing NUL needed for write
	n := Write(fd, ptrOf(payload), uintptr(len(payload)))
	if n != int64(len(payload)) {
		t.Fatalf("Write() = %d, want %d", n, len(payload))
	}

	if off := Lseek(fd, 0, 0 /* SEEK_SET */); off != 0 {
		t.Fatalf("Lseek() = %d, want 0", off)
	}

	readBuf := make([]byte, 16)
	n = Read(fd, uintptr(unsafe.Pointer(&readBuf[0])), uintptr(len(readBuf)))
	if n != 5 {
		t.Fatalf("Read() = %d, want 5", n)
	}
	if string(readBuf[:5]) != "hello" {
		t.Fatalf("Read() content = %q, want %q", readBuf[:5], "hello")
	}

	if rc := Close(fd); rc != 0 {
		t.Fatalf("Close() = %d, want 0", rc)
	}
	// Mark closed so the deferred Close doesn't double-close; -1 is a
	// no-op for the real close(2) argument validation.
	fd = -1
}

func TestOpen_NonexistentWithoutCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist")
	pathBuf := cString(path)

	fd := Open(ptrOf(pathBuf), ORdwr, 0)
	if fd >= 0 {
		Close(fd)
		t.Fatalf("Open() = %d, want < 0 for nonexistent path without O_CREAT", fd)
	}
}

func TestSocket_CreatesAndCloses(t *testing.T) {
	fd := Socket(AFInet, SockStream, 0)
	if fd < 0 {
		t.Fatalf("Socket() = %d, want >= 0", fd)
	}
	if rc := Close(fd); rc != 0 {
		t.Fatalf("Close(socket) = %d, want 0", rc)
	}
}

func TestGoString(t *testing.T) {
	b := cString("abc")
	if got := GoString(ptrOf(b)); got != "abc" {
		t.Errorf("GoString() = %q, want %q", got, "abc")
	}
}

func TestGoString_Nil(t *testing.T) {
	if got := GoString(0); got != "" {
		t.Errorf("GoString(0) = %q, want empty", got)
	}
}

func TestBytes(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	got := Bytes(uintptr(unsafe.Pointer(&b[0])), len(b))
	if len(got) != 4 || got[0] != 1 || got[3] != 4 {
		t.Errorf("Bytes() = %v, want %v", got, b)
	}
}

func TestBytes_NilOrEmpty(t *testing.T) {
	if Bytes(0, 4) != nil {
		t.Error("Bytes(0, n) should be nil")
	}
	var dummy byte
	if Bytes(uintptr(unsafe.Pointer(&dummy)), 0) != nil {
		t.Error("Bytes(ptr, 0) should be nil")
	}
}
