package policy

import "net"

// MatchesAddr reports whether ip matches any address that host resolves
// to. host is the value of LIBFAULTINJ_ERROR_ADDR: a hostname or a
// literal IP. The interceptors only ever decode an IPv4 address out of
// a sockaddr before calling this; libfaultinjctl's match-addr passes
// whatever address it parsed, IPv6 included.
func MatchesAddr(ip net.IP, host string) bool {
	if host == "" || ip == nil {
		return false
	}

	addrs, err := net.LookupHost(host)
	if err != nil {
		return false
	}

	for _, a := range addrs {
		resolved := net.ParseIP(a)
		if resolved != nil && resolved.Equal(ip) {
			return true
		}
	}
	return false
}

// DecodeSockaddrIn4 parses the raw bytes of a struct sockaddr_in (as laid
// out on Linux: sin_family uint16, sin_port uint16 big-endian, sin_addr
// uint32 network order, zero-padding) into an IPv4 address. ok is false
// if raw is too short or does not describe an AF_INET address.
func DecodeSockaddrIn4(raw []byte, afInet uint16) (ip net.IP, port uint16, ok bool) {
	const minLen = 8 // family(2) + port(2) + addr(4)
	if len(raw) < minLen {
		return nil, 0, false
	}

	family := uint16(raw[0]) | uint16(raw[1])<<8
	if family != afInet {
		return nil, 0, false
	}

	port = uint16(raw[2])<<8 | uint16(raw[3])
	ip = net.IPv4(raw[4], raw[5], raw[6], raw[7])
	return ip, port, true
}
