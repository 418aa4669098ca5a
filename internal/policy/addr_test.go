package policy

import (
	"net"
	"testing"

	"golang.org/x/sys/unix"
)

func TestMatchesAddr_Loopback(t *testing.T) {
	ip := net.IPv4(127, 0, 0, 1)
	if !MatchesAddr(ip, "127.0.0.1") {
		t.Error("loopback IP should match its own literal")
	}
}

func TestMatchesAddr_NoMatch(t *testing.T) {
	ip := net.IPv4(10, 0, 0, 1)
	if MatchesAddr(ip, "127.0.0.1") {
		t.Error("unrelated IP should not match")
	}
}

func TestMatchesAddr_EmptyHost(t *testing.T) {
	ip := net.IPv4(127, 0, 0, 1)
	if MatchesAddr(ip, "") {
		t.Error("empty host should never match")
	}
}

func TestMatchesAddr_NilIP(t *testing.T) {
	if MatchesAddr(nil, "127.0.0.1") {
		t.Error("nil IP should never match")
	}
}

func TestDecodeSockaddrIn4(t *testing.T) {
	raw := []byte{
		byte(unix.AF_INET), 0, // sin_family (little endian on the wire here)
		0x1F, 0x90, // sin_port = 8080 big-endian
		127, 0, 0, 1, // sin_addr
		0, 0, 0, 0, 0, 0, 0, 0, // padding
	}

	ip, port, ok := DecodeSockaddrIn4(raw, uint16(unix.AF_INET))
	if !ok {
		t.Fatal("expected ok = true")
	}
	if port != 8080 {
		t.Errorf("port = %d, want 8080", port)
	}
	if !ip.Equal(net.IPv4(127, 0, 0, 1)) {
		t.Errorf("ip = %v, want 127.0.0.1", ip)
	}
}

func TestDecodeSockaddrIn4_TooShort(t *testing.T) {
	raw := []byte{2, 0, 0x1F}
	if _, _, ok := DecodeSockaddrIn4(raw, 2); ok {
		t.Error("expected ok = false for truncated input")
	}
}

func TestDecodeSockaddrIn4_WrongFamily(t *testing.T) {
	const afInet6 = 10
	raw := []byte{2, 0, 0x1F, 0x90, 127, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0}
	if _, _, ok := DecodeSockaddrIn4(raw, afInet6); ok {
		t.Error("expected ok = false when family does not match afInet")
	}
}
