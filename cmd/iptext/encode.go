package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/netip"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/yanet-platform/iptext/ipfmt"
	"github.com/yanet-platform/iptext/xbuf"
	"github.com/yanet-platform/iptext/xcmd"
)

var encodeCmd = &cobra.Command{
	Use:   "encode ADDR...",
	Short: "Print the canonical form of the given addresses",
	Long: `Print the canonical RFC 5952 form of the given addresses.

Addresses are accepted in any standard textual form, or as raw hex
digits with --hex. A single "-" reads one address per line from stdin.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().BoolVar(&cmd.RawHex, "hex", false, "Treat arguments as raw hex digits (8 for IPv4, 32 for IPv6)")
}

func runEncode(rawCmd *cobra.Command, args []string) error {
	log, err := setupLogging()
	if err != nil {
		return err
	}
	defer log.Sync()

	out := rawCmd.OutOrStdout()
	if len(args) == 1 && args[0] == "-" {
		return encodeStream(rawCmd.Context(), log, out)
	}

	for _, arg := range args {
		text, err := canonicalize(arg, cmd.RawHex)
		if err != nil {
			return fmt.Errorf("failed to encode %q: %w", arg, err)
		}
		fmt.Fprintln(out, text)
	}

	return nil
}

// canonicalize re-encodes one input token into its canonical form.
func canonicalize(arg string, rawHex bool) (string, error) {
	buf := xbuf.New()

	if rawHex {
		if err := encodeRawHex(buf, arg); err != nil {
			return "", err
		}
		return buf.String(), nil
	}

	addr, err := netip.ParseAddr(arg)
	if err != nil {
		return "", err
	}

	if addr.Is4() {
		err = ipfmt.EncodeV4(buf, ipfmt.V4(addr.As4()))
	} else {
		err = ipfmt.EncodeV6(buf, ipfmt.V6FromAddr(addr))
	}
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

// encodeRawHex handles the raw input forms: 8 hex digits for IPv4, 32
// for IPv6.
func encodeRawHex(buf *xbuf.Buffer, arg string) error {
	switch len(arg) {
	case 8:
		v, err := strconv.ParseUint(arg, 16, 32)
		if err != nil {
			return err
		}
		return ipfmt.EncodeV4(buf, ipfmt.V4FromUint32(uint32(v)))
	case 32:
		b, err := hex.DecodeString(arg)
		if err != nil {
			return err
		}
		return ipfmt.EncodeV6(buf, ipfmt.V6From16([16]byte(b)))
	default:
		return fmt.Errorf("want 8 or 32 hex digits, got %d", len(arg))
	}
}

// encodeStream reads one address per line from stdin until EOF or an
// interrupting signal. Lines that fail to parse are logged and skipped.
func encodeStream(ctx context.Context, log *zap.SugaredLogger, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	wg, ctx := errgroup.WithContext(ctx)
	wg.Go(func() error {
		defer cancel()

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			text, err := canonicalize(line, cmd.RawHex)
			if err != nil {
				log.Warnf("skipping %q: %v", line, err)
				continue
			}
			fmt.Fprintln(out, text)
		}

		if err := scanner.Err(); err != nil && !errors.Is(err, os.ErrClosed) {
			return err
		}
		return nil
	})
	wg.Go(func() error {
		err := xcmd.WaitSignal(ctx)

		var interrupted xcmd.Interrupted
		if errors.As(err, &interrupted) {
			log.Infof("caught signal: %v", interrupted.Signal)
			// Unblock the scanner goroutine.
			os.Stdin.Close()
		}
		return err
	})

	err := wg.Wait()
	var interrupted xcmd.Interrupted
	if errors.Is(err, context.Canceled) || errors.As(err, &interrupted) {
		return nil
	}
	return err
}
