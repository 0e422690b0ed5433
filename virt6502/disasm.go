package virt6502

import (
	"fmt"
	"strings"
)

// Mnemonic names the instruction the active table maps opcode to.
func (vc *Virt6502) Mnemonic(opcode byte) string {
	inst := vc.table[opcode]
	name := inst.op.String()
	switch inst.op {
	case opBBR, opBBS, opRMB, opSMB:
		name += string('0' + rune(opcode>>4&0x07))
	}
	return name
}

// Disassemble formats the instruction at addr and returns its length.
// Operands are read through the bus.
func (vc *Virt6502) Disassemble(addr uint16) (string, uint16) {
	opcode := vc.Read(addr)
	inst := vc.table[opcode]
	n := inst.mode.instLen()

	var b1, b2 byte
	if n > 1 {
		b1 = vc.Read(addr + 1)
	}
	if n > 2 {
		b2 = vc.Read(addr + 2)
	}
	word := uint16(b2)<<8 | uint16(b1)

	var operand string
	switch inst.mode {
	case acc:
		operand = "A"
	case imm:
		operand = fmt.Sprintf("#$%02X", b1)
	case zpg:
		operand = fmt.Sprintf("$%02X", b1)
	case zpx:
		operand = fmt.Sprintf("$%02X,X", b1)
	case zpy:
		operand = fmt.Sprintf("$%02X,Y", b1)
	case izp:
		operand = fmt.Sprintf("($%02X)", b1)
	case rel:
		operand = fmt.Sprintf("$%04X", addr+2+signExtend(b1))
	case rlb:
		operand = fmt.Sprintf("$%02X,$%04X", b1, addr+3+signExtend(b2))
	case abs:
		operand = fmt.Sprintf("$%04X", word)
	case abx:
		operand = fmt.Sprintf("$%04X,X", word)
	case aby:
		operand = fmt.Sprintf("$%04X,Y", word)
	case ind:
		operand = fmt.Sprintf("($%04X)", word)
	case iax:
		operand = fmt.Sprintf("($%04X,X)", word)
	case izx:
		operand = fmt.Sprintf("($%02X,X)", b1)
	case izy:
		operand = fmt.Sprintf("($%02X),Y", b1)
	}

	var sb strings.Builder
	sb.WriteString(vc.Mnemonic(opcode))
	if operand != "" {
		sb.WriteByte(' ')
		sb.WriteString(operand)
	}
	return sb.String(), n
}
