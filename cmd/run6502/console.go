package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/theinternetftw/cpugo/virt6502"
)

const inputQueueLen = 256

// console is the runner's bus: flat RAM with a character output port and a
// character input port mapped over it.
type console struct {
	*virt6502.RAM

	putc, getc uint16

	out    io.Writer
	outErr error

	// Set by the input pump when stdin is a raw terminal, read by the CPU.
	raw atomic.Bool

	in chan byte
}

func newConsole(mem *virt6502.RAM, putc, getc uint16, out io.Writer) *console {
	return &console{
		RAM:  mem,
		putc: putc,
		getc: getc,
		out:  out,
		in:   make(chan byte, inputQueueLen),
	}
}

// Read returns the next queued key at the input port, 0 when none is
// waiting. The port never blocks the CPU.
func (c *console) Read(addr uint16) byte {
	if addr == c.getc {
		select {
		case b := <-c.in:
			return b
		default:
			return 0
		}
	}
	return c.RAM.Read(addr)
}

func (c *console) Write(addr uint16, val byte) {
	if addr == c.putc {
		c.putChar(val)
		return
	}
	c.RAM.Write(addr, val)
}

func (c *console) putChar(val byte) {
	if c.outErr != nil {
		return
	}
	var err error
	if val == '\n' && c.raw.Load() {
		_, err = io.WriteString(c.out, "\r\n")
	} else {
		_, err = c.out.Write([]byte{val})
	}
	if err != nil {
		c.outErr = fmt.Errorf("console output: %w", err)
	}
}

// Err reports the first output failure.
func (c *console) Err() error {
	return c.outErr
}

// Feed queues a host keystroke for the input port, waiting for room.
// It reports false if ctx ended first.
func (c *console) Feed(ctx context.Context, b byte) bool {
	// Raw mode sends CR for Enter and DEL for Backspace.
	switch b {
	case '\r':
		b = '\n'
	case 0x7f:
		b = 0x08
	}
	select {
	case c.in <- b:
		return true
	case <-ctx.Done():
		return false
	}
}

// inputPump moves host input into the console until ctx is done.
type inputPump func(ctx context.Context, con *console) error

// readerPump feeds r to the console byte by byte. EOF ends the pump
// without error.
func readerPump(r io.Reader) inputPump {
	return func(ctx context.Context, con *console) error {
		br := bufio.NewReader(r)
		for {
			b, err := br.ReadByte()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			if !con.Feed(ctx, b) {
				return nil
			}
		}
	}
}
