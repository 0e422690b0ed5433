package main

import (
	"errors"
	"flag"
	"io"
	"testing"
	"time"

	"github.com/theinternetftw/cpugo/virt6502"
)

func TestParseOptionsDefaults(t *testing.T) {
	opts, err := parseOptions([]string{"-load", "rom.bin"}, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.cfg != virt6502.NMOSConfig() {
		t.Errorf("expected the NMOS preset, got %+v", opts.cfg)
	}
	if opts.putc.addr != 0xf001 || opts.getc.addr != 0xf004 {
		t.Errorf("expected console ports 0xF001/0xF004, got 0x%04X/0x%04X", opts.putc.addr, opts.getc.addr)
	}
	if opts.entry.set || opts.success.set {
		t.Errorf("entry or success set without flags")
	}
	if opts.slice != 10*time.Millisecond {
		t.Errorf("expected 10ms slice, got %v", opts.slice)
	}
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, opts *options)
	}{
		{
			name: "cmos",
			args: []string{"-cpu", "cmos", "-load", "rom.bin"},
			check: func(t *testing.T, opts *options) {
				if opts.cfg != virt6502.CMOSConfig() {
					t.Errorf("expected the CMOS preset, got %+v", opts.cfg)
				}
			},
		},
		{
			name: "nes",
			args: []string{"-nes", "-load", "rom.bin"},
			check: func(t *testing.T, opts *options) {
				if !opts.cfg.IgnoreDecimalMode {
					t.Errorf("expected decimal mode ignored")
				}
			},
		},
		{
			name: "explicit flags override preset",
			args: []string{"-undocumented=false", "-jmp-bug=false", "-load", "rom.bin"},
			check: func(t *testing.T, opts *options) {
				if opts.cfg.Undocumented || opts.cfg.IndirectJmpBug {
					t.Errorf("expected both quirks off, got %+v", opts.cfg)
				}
			},
		},
		{
			name: "hex addresses",
			args: []string{"-entry", "0x400", "-success", "0x3469", "-putc", "0xe000", "-load", "rom.bin"},
			check: func(t *testing.T, opts *options) {
				if !opts.entry.set || opts.entry.addr != 0x0400 {
					t.Errorf("entry = %+v", opts.entry)
				}
				if opts.success.addr != 0x3469 {
					t.Errorf("success = 0x%04X", opts.success.addr)
				}
				if opts.putc.addr != 0xe000 {
					t.Errorf("putc = 0x%04X", opts.putc.addr)
				}
			},
		},
		{
			name: "positional image",
			args: []string{"rom.bin"},
			check: func(t *testing.T, opts *options) {
				if opts.load != "rom.bin" {
					t.Errorf("load = %q", opts.load)
				}
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			opts, err := parseOptions(test.args, io.Discard)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			test.check(t, opts)
		})
	}
}

func TestParseOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no image", nil},
		{"unknown cpu", []string{"-cpu", "z80", "-load", "rom.bin"}},
		{"nes on cmos", []string{"-nes", "-cpu", "cmos", "-load", "rom.bin"}},
		{"address too wide", []string{"-entry", "0x10000", "-load", "rom.bin"}},
		{"bad slice", []string{"-hz", "1000", "-slice", "0s", "-load", "rom.bin"}},
		{"extra args", []string{"-load", "rom.bin", "other.bin"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := parseOptions(test.args, io.Discard); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestParseOptionsHelp(t *testing.T) {
	_, err := parseOptions([]string{"-h"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
}
