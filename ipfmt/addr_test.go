package ipfmt

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestV6GroupOrder(t *testing.T) {
	addr := V6{0x00010002, 0x00030004, 0x00050006, 0x00070008}
	for idx := 0; idx < groupCount; idx++ {
		require.Equal(t, uint16(idx+1), addr.group(idx), "group %d", idx)
	}
}

func TestV6From16(t *testing.T) {
	addr := V6FromAddr(netip.MustParseAddr("2001:db8::1"))
	require.Equal(t, V6{0x20010db8, 0, 0, 1}, addr)
	require.Equal(t, netip.MustParseAddr("2001:db8::1"), addr.Addr())

	var b [16]byte
	for idx := range b {
		b[idx] = byte(idx)
	}
	require.Equal(t, b, V6From16(b).As16())
}
