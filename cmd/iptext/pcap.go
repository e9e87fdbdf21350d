package main

import (
	"fmt"
	"net"
	"os"

	"github.com/gopacket/gopacket"
	"github.com/gopacket/gopacket/layers"
	"github.com/gopacket/gopacket/pcapgo"
	"github.com/spf13/cobra"

	"github.com/yanet-platform/iptext/ipfmt"
)

var pcapCmd = &cobra.Command{
	Use:   "pcap FILE",
	Short: "Print canonical source and destination addresses from a pcap file",
	Args:  cobra.ExactArgs(1),
	RunE:  runPcap,
}

func runPcap(rawCmd *cobra.Command, args []string) error {
	log, err := setupLogging()
	if err != nil {
		return err
	}
	defer log.Sync()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open capture: %w", err)
	}
	defer f.Close()

	reader, err := pcapgo.NewReader(f)
	if err != nil {
		return fmt.Errorf("failed to read pcap header: %w", err)
	}

	out := rawCmd.OutOrStdout()
	source := gopacket.NewPacketSource(reader, reader.LinkType())

	count := 0
	for packet := range source.Packets() {
		src, dst, ok := packetAddrs(packet)
		if !ok {
			continue
		}

		fmt.Fprintf(out, "%s -> %s\n", src, dst)
		count++
	}

	log.Debugf("printed %d address pairs", count)
	return nil
}

// packetAddrs renders the packet's network addresses canonically.
func packetAddrs(packet gopacket.Packet) (string, string, bool) {
	switch layer := packet.NetworkLayer().(type) {
	case *layers.IPv4:
		return v4Text(layer.SrcIP), v4Text(layer.DstIP), true
	case *layers.IPv6:
		return v6Text(layer.SrcIP), v6Text(layer.DstIP), true
	}
	return "", "", false
}

func v4Text(ip net.IP) string {
	return ipfmt.V4([4]byte(ip.To4())).String()
}

func v6Text(ip net.IP) string {
	return ipfmt.V6From16([16]byte(ip.To16())).String()
}
