package ipfmt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanet-platform/iptext/xbuf"
)

func TestEncodeV4(t *testing.T) {
	tests := []struct {
		name string
		addr V4
		want string
	}{
		{"private", V4{192, 168, 1, 1}, "192.168.1.1"},
		{"zero", V4{0, 0, 0, 0}, "0.0.0.0"},
		{"broadcast", V4{255, 255, 255, 255}, "255.255.255.255"},
		{"no leading zeros", V4{0, 1, 2, 3}, "0.1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := xbuf.New()
			require.NoError(t, EncodeV4(buf, tt.addr))
			require.Equal(t, tt.want, buf.String())
			require.Equal(t, tt.want, tt.addr.String())
		})
	}
}

func TestV4Uint32(t *testing.T) {
	addr := V4FromUint32(0x01020304)
	require.Equal(t, V4{1, 2, 3, 4}, addr)
	require.Equal(t, uint32(0x01020304), addr.Uint32())
}

func TestEncodeV4SinkError(t *testing.T) {
	buf := xbuf.NewLimited(5)
	require.ErrorIs(t, EncodeV4(buf, V4{192, 168, 1, 1}), xbuf.ErrNoSpace)
	require.LessOrEqual(t, buf.Len(), 5)
}
