// Package xcmd carries small process-level helpers shared by commands.
package xcmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Interrupted is the error reported when a watched signal arrives.
type Interrupted struct {
	os.Signal
}

func (m Interrupted) Error() string {
	return m.String()
}

// WaitSignal blocks until one of the given signals is received or the
// provided context is canceled. With no signals given it watches SIGINT
// and SIGTERM.
func WaitSignal(ctx context.Context, signals ...os.Signal) error {
	if len(signals) == 0 {
		signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, signals...)
	defer signal.Stop(ch)

	select {
	case v := <-ch:
		return Interrupted{Signal: v}
	case <-ctx.Done():
		return ctx.Err()
	}
}
