//go:build unix

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"
	"time"

	"golang.org/x/term"
)

const pollInterval = 5 * time.Millisecond

// pumpStdin polls a nonblocking stdin so it can stop as soon as ctx is
// done. A terminal is put in raw mode for the duration, where ^C arrives
// as a byte instead of a signal.
func pumpStdin(ctx context.Context, con *console) error {
	fd := int(os.Stdin.Fd())

	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("raw terminal: %w", err)
		}
		defer term.Restore(fd, oldState)
		con.raw.Store(true)
		defer con.raw.Store(false)
	}

	if err := syscall.SetNonblock(fd, true); err != nil {
		return fmt.Errorf("nonblocking stdin: %w", err)
	}
	defer syscall.SetNonblock(fd, false)

	buf := make([]byte, 1)
	for ctx.Err() == nil {
		n, err := syscall.Read(fd, buf)
		if n > 0 {
			if buf[0] == 0x03 && con.raw.Load() {
				return errInterrupted
			}
			if !con.Feed(ctx, buf[0]) {
				return nil
			}
			continue
		}
		if errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EWOULDBLOCK) {
			select {
			case <-ctx.Done():
			case <-time.After(pollInterval):
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		// EOF
		return nil
	}
	return nil
}
