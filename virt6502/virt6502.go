package virt6502

import "fmt"

const (
	FlagNeg         = 0x80
	FlagOverflow    = 0x40
	FlagAlwaysSet   = 0x20
	FlagBrk         = 0x10
	FlagDecimal     = 0x08
	FlagIrqDisabled = 0x04
	FlagZero        = 0x02
	FlagCarry       = 0x01
)

const (
	stackBase = 0x0100

	VectorNMI   = 0xfffa
	VectorReset = 0xfffc
	VectorIRQ   = 0xfffe
)

type Virt6502 struct {
	PC            uint16
	P, A, X, Y, S byte

	Config

	// Serviced before the next instruction fetch by Step and Run.
	PendingIRQ, PendingNMI, PendingReset bool
	LastStepsP                           byte

	Write func(uint16, byte) `json:"-"`
	Read  func(uint16) byte  `json:"-"`

	// Cycles is the total elapsed cycle count, Steps the executed instruction count.
	Cycles uint64
	Steps  uint64

	cycleGoal uint64
	hook      func()
	table     [256]instruction

	// per-instruction scratch
	opcode      byte
	mode        addrMode
	lastPC      uint16
	ea          uint16
	relAddr     uint16
	penaltyOp   bool
	penaltyAddr bool
	value       byte // last value putValue stored
	reuseValue  bool
	result      uint16
}

// New builds a CPU wired to bus. Registers are undefined until Reset.
func New(cfg Config, bus Bus) *Virt6502 {
	vc := &Virt6502{
		Config: cfg,
		P:      FlagAlwaysSet,
		Read:   bus.Read,
		Write:  bus.Write,
	}
	vc.table = buildTable(cfg)
	return vc
}

// Opcode is the opcode of the instruction executed last.
func (vc *Virt6502) Opcode() byte { return vc.opcode }

// Flag reports whether every bit of flag is set in P.
func (vc *Virt6502) Flag(flag byte) bool { return vc.P&flag == flag }

// SetFlag sets or clears flag in P.
func (vc *Virt6502) SetFlag(flag byte, on bool) { vc.setFlag(on, flag) }

func (vc *Virt6502) Push16(val uint16) {
	vc.Push(byte(val >> 8))
	vc.Push(byte(val))
}
func (vc *Virt6502) Push(val byte) {
	vc.Write(stackBase+uint16(vc.S), val)
	vc.S--
}

func (vc *Virt6502) Pop16() uint16 {
	val := uint16(vc.Pop())
	val |= uint16(vc.Pop()) << 8
	return val
}
func (vc *Virt6502) Pop() byte {
	vc.S++
	result := vc.Read(stackBase + uint16(vc.S))
	return result
}

func (vc *Virt6502) Read16(addr uint16) uint16 {
	low := uint16(vc.Read(addr))
	high := uint16(vc.Read(addr + 1))
	return (high << 8) | low
}

func (vc *Virt6502) Write16(addr uint16, val uint16) {
	vc.Write(addr, byte(val))
	vc.Write(addr+1, byte(val>>8))
}

// DebugStatusLine disassembles the last instruction through Read, so keep it
// away from read-sensitive I/O pages.
func (vc *Virt6502) DebugStatusLine() string {
	text, _ := vc.Disassemble(vc.lastPC)
	return fmt.Sprintf("Steps: %08d ", vc.Steps) +
		fmt.Sprintf("Cycles: %010d ", vc.Cycles) +
		fmt.Sprintf("PC:%04x ", vc.lastPC) +
		fmt.Sprintf("opcode:%-14s ", text) +
		fmt.Sprintf("A:%02x ", vc.A) +
		fmt.Sprintf("X:%02x ", vc.X) +
		fmt.Sprintf("Y:%02x ", vc.Y) +
		fmt.Sprintf("P:%02x ", vc.P) +
		fmt.Sprintf("S:%02x ", vc.S)
}

func (vc *Virt6502) setFlag(test bool, flag byte) {
	if test {
		vc.P |= flag
	} else {
		vc.P &^= flag
	}
}

func (vc *Virt6502) setOverflowFlag(test bool) {
	vc.setFlag(test, FlagOverflow)
}
func (vc *Virt6502) setCarryFlag(test bool) {
	vc.setFlag(test, FlagCarry)
}
func (vc *Virt6502) setZeroFlag(test bool) {
	vc.setFlag(test, FlagZero)
}
func (vc *Virt6502) setNegFlag(test bool) {
	vc.setFlag(test, FlagNeg)
}

func (vc *Virt6502) setZeroNeg(val byte) {
	vc.setFlag(val == 0, FlagZero)
	vc.setFlag(val&0x80 != 0, FlagNeg)
}
