//go:build !unix

package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"
)

// pumpStdin reads stdin on its own goroutine since it cannot be
// interrupted here; the reader is left behind when ctx ends.
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

	go readerPump(os.Stdin)(ctx, con)
	<-ctx.Done()
	return nil
}
