// Package ipfmt encodes binary IP addresses into their canonical
// RFC 5952 text form. The encoders write through a Sink and never
// allocate; parsing text back into addresses is out of scope.
package ipfmt

import (
	"encoding/binary"
	"net/netip"

	"github.com/yanet-platform/iptext/xbuf"
)

const (
	// groupCount is the number of 16-bit groups in an IPv6 address.
	groupCount = 8
	// wordCount is the number of 32-bit words in an IPv6 address.
	wordCount = 4
)

// V4 is an IPv4 address held as four octets in network byte order.
type V4 [4]byte

// V4FromUint32 builds an address from its big-endian 32-bit value.
func V4FromUint32(v uint32) V4 {
	return V4{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

// Uint32 returns the address as a single big-endian 32-bit value.
func (a V4) Uint32() uint32 {
	return binary.BigEndian.Uint32(a[:])
}

// Addr converts the address to the standard library representation.
func (a V4) Addr() netip.Addr {
	return netip.AddrFrom4(a)
}

// String returns the dotted-decimal form.
func (a V4) String() string {
	buf := xbuf.New()
	// An unlimited buffer never refuses bytes.
	_ = EncodeV4(buf, a)
	return buf.String()
}

// V6 is an IPv6 address held as four 32-bit words, most significant
// first. Word i carries the 16-bit groups 2i (high half) and 2i+1 (low
// half) of the 8-group address, group 0 being the most significant.
type V6 [4]uint32

// V6From16 builds an address from its 16-byte network-order form.
func V6From16(b [16]byte) V6 {
	return V6{
		binary.BigEndian.Uint32(b[0:4]),
		binary.BigEndian.Uint32(b[4:8]),
		binary.BigEndian.Uint32(b[8:12]),
		binary.BigEndian.Uint32(b[12:16]),
	}
}

// V6FromAddr converts addr to the word form. IPv4 inputs take their
// usual 4-in-6 mapped layout, as returned by netip.Addr.As16.
func V6FromAddr(addr netip.Addr) V6 {
	return V6From16(addr.As16())
}

// As16 returns the address in 16-byte network order.
func (a V6) As16() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint32(b[0:4], a[0])
	binary.BigEndian.PutUint32(b[4:8], a[1])
	binary.BigEndian.PutUint32(b[8:12], a[2])
	binary.BigEndian.PutUint32(b[12:16], a[3])
	return b
}

// Addr converts the address to the standard library representation.
func (a V6) Addr() netip.Addr {
	return netip.AddrFrom16(a.As16())
}

// group returns 16-bit group idx, 0 being the most significant of the 8.
func (a V6) group(idx int) uint16 {
	w := a[idx/2]
	if idx%2 == 0 {
		return uint16(w >> 16)
	}
	return uint16(w)
}

// String returns the canonical RFC 5952 form.
func (a V6) String() string {
	buf := xbuf.New()
	_ = EncodeV6(buf, a)
	return buf.String()
}
