package main

import (
	"bytes"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopacket/gopacket"
	"github.com/gopacket/gopacket/layers"
	"github.com/gopacket/gopacket/pcapgo"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestPcapCommand(t *testing.T) {
	path := writeFixture(t)

	out := bytes.Buffer{}
	c := &cobra.Command{}
	c.SetOut(&out)

	require.NoError(t, runPcap(c, []string{path}))
	require.Equal(t,
		"192.168.2.1 -> 10.10.10.10\n"+
			"2a01:db8::aaaa:1 -> 2a01:db8::853a:0:3\n",
		out.String())
}

func TestPcapCommandMissingFile(t *testing.T) {
	err := runPcap(&cobra.Command{}, []string{"does-not-exist.pcap"})
	require.Error(t, err)
}

// writeFixture produces a capture with one IPv4 and one IPv6 packet.
func writeFixture(t *testing.T) string {
	t.Helper()

	eth := layers.Ethernet{
		SrcMAC:       mac(t, "00:00:00:00:00:01"),
		DstMAC:       mac(t, "00:11:22:33:44:55"),
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip4 := layers.IPv4{
		Version:  4,
		TTL:      64,
		Protocol: layers.IPProtocolUDP,
		SrcIP:    net.ParseIP("192.168.2.1"),
		DstIP:    net.ParseIP("10.10.10.10"),
	}
	udp4 := layers.UDP{SrcPort: 7777, DstPort: 443}
	require.NoError(t, udp4.SetNetworkLayerForChecksum(&ip4))
	v4pkt := serialize(t, &eth, &ip4, &udp4)

	eth.EthernetType = layers.EthernetTypeIPv6
	ip6 := layers.IPv6{
		Version:    6,
		NextHeader: layers.IPProtocolUDP,
		HopLimit:   64,
		SrcIP:      net.ParseIP("2a01:db8::aaaa:1"),
		DstIP:      net.ParseIP("2a01:db8::853a:0:3"),
	}
	udp6 := layers.UDP{SrcPort: 7777, DstPort: 443}
	require.NoError(t, udp6.SetNetworkLayerForChecksum(&ip6))
	v6pkt := serialize(t, &eth, &ip6, &udp6)

	path := filepath.Join(t.TempDir(), "addrs.pcap")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	writer := pcapgo.NewWriter(f)
	require.NoError(t, writer.WriteFileHeader(65536, layers.LinkTypeEthernet))
	for _, data := range [][]byte{v4pkt, v6pkt} {
		info := gopacket.CaptureInfo{CaptureLength: len(data), Length: len(data)}
		require.NoError(t, writer.WritePacket(info, data))
	}

	return path
}

func serialize(t *testing.T, lyrs ...gopacket.SerializableLayer) []byte {
	t.Helper()

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{
		FixLengths:       true,
		ComputeChecksums: true,
	}
	require.NoError(t, gopacket.SerializeLayers(buf, opts, lyrs...))
	return buf.Bytes()
}

func mac(t *testing.T, s string) net.HardwareAddr {
	t.Helper()

	hw, err := net.ParseMAC(s)
	require.NoError(t, err)
	return hw
}
