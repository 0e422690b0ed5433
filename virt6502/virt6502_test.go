package virt6502

import (
	"strings"
	"testing"
)

const testOrigin = 0x0200

// newTestCPU loads program at testOrigin, points the reset vector at it
// and resets.
func newTestCPU(cfg Config, program ...byte) (*Virt6502, *RAM) {
	mem := &RAM{}
	mem.Load(testOrigin, program)
	mem.SetVector(VectorReset, testOrigin)
	vc := New(cfg, mem)
	vc.Reset()
	return vc, mem
}

func TestReset(t *testing.T) {
	mem := &RAM{}
	mem[VectorReset] = 0x00
	mem[VectorReset+1] = 0x80
	vc := New(Config{}, mem)
	vc.A, vc.X, vc.Y, vc.S = 1, 2, 3, 4
	vc.Reset()

	if vc.PC != 0x8000 {
		t.Errorf("PC = 0x%04x, expected 0x8000", vc.PC)
	}
	if vc.S != 0xfd {
		t.Errorf("S = 0x%02x, expected 0xfd", vc.S)
	}
	if vc.A != 0 || vc.X != 0 || vc.Y != 0 {
		t.Errorf("A/X/Y = %02x/%02x/%02x, expected zeroes", vc.A, vc.X, vc.Y)
	}
	if !vc.Flag(FlagAlwaysSet) {
		t.Errorf("P = %s, constant bit clear", fmtFlags(vc.P))
	}
}

func TestStackWraps(t *testing.T) {
	vc, mem := newTestCPU(Config{})
	vc.S = 0x00
	vc.Push(0x42)
	if vc.S != 0xff {
		t.Errorf("S = 0x%02x after push at 0x00, expected 0xff", vc.S)
	}
	if mem[0x0100] != 0x42 {
		t.Errorf("push wrote 0x%02x to $0100, expected 0x42", mem[0x0100])
	}
	if got := vc.Pop(); got != 0x42 || vc.S != 0x00 {
		t.Errorf("pop = 0x%02x S=0x%02x, expected 0x42 S=0x00", got, vc.S)
	}
	if mem[0x0000] != 0 || mem[0x0200] != 0 {
		t.Errorf("stack escaped page one")
	}
}

func TestPush16RoundTrip(t *testing.T) {
	vc, mem := newTestCPU(Config{})
	vc.Push16(0xbeef)
	if mem[0x01fd] != 0xbe || mem[0x01fc] != 0xef {
		t.Errorf("got hi=0x%02x lo=0x%02x on stack, expected high byte pushed first", mem[0x01fd], mem[0x01fc])
	}
	if got := vc.Pop16(); got != 0xbeef {
		t.Errorf("Pop16 = 0x%04x, expected 0xbeef", got)
	}
	if vc.S != 0xfd {
		t.Errorf("S = 0x%02x, expected 0xfd", vc.S)
	}
}

func TestSetFlag(t *testing.T) {
	vc := New(Config{}, &RAM{})
	vc.SetFlag(FlagCarry|FlagZero, true)
	if !vc.Flag(FlagCarry | FlagZero) {
		t.Errorf("P = %s, expected C and Z", fmtFlags(vc.P))
	}
	vc.SetFlag(FlagZero, false)
	if vc.Flag(FlagZero) || !vc.Flag(FlagCarry) {
		t.Errorf("P = %s, expected only C cleared of the pair", fmtFlags(vc.P))
	}
}

func TestDebugStatusLine(t *testing.T) {
	vc, _ := newTestCPU(Config{}, 0xa9, 0x05)
	vc.Step()
	line := vc.DebugStatusLine()
	for _, want := range []string{"PC:0200", "LDA #$05", "A:05"} {
		if !strings.Contains(line, want) {
			t.Errorf("status line %q missing %q", line, want)
		}
	}
}
