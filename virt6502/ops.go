package virt6502

type operation byte

const (
	opNOP operation = iota
	opADC
	opAND
	opASL
	opBCC
	opBCS
	opBEQ
	opBIT
	opBMI
	opBNE
	opBPL
	opBRA
	opBRK
	opBVC
	opBVS
	opCLC
	opCLD
	opCLI
	opCLV
	opCMP
	opCPX
	opCPY
	opDEC
	opDEX
	opDEY
	opEOR
	opINC
	opINX
	opINY
	opJMP
	opJSR
	opLDA
	opLDX
	opLDY
	opLSR
	opORA
	opPHA
	opPHP
	opPHX
	opPHY
	opPLA
	opPLP
	opPLX
	opPLY
	opROL
	opROR
	opRTI
	opRTS
	opSBC
	opSEC
	opSED
	opSEI
	opSTA
	opSTX
	opSTY
	opSTZ
	opTAX
	opTAY
	opTRB
	opTSB
	opTSX
	opTXA
	opTXS
	opTYA

	// 65C02 bit ops, bit number comes from the opcode
	opBBR
	opBBS
	opRMB
	opSMB

	// NMOS undocumented
	opLAX
	opSAX
	opDCP
	opISB
	opSLO
	opRLA
	opSRE
	opRRA
)

// LOWERCASE == undocumented
var opNames = [...]string{
	opNOP: "NOP", opADC: "ADC", opAND: "AND", opASL: "ASL", opBCC: "BCC", opBCS: "BCS",
	opBEQ: "BEQ", opBIT: "BIT", opBMI: "BMI", opBNE: "BNE", opBPL: "BPL", opBRA: "BRA",
	opBRK: "BRK", opBVC: "BVC", opBVS: "BVS", opCLC: "CLC", opCLD: "CLD", opCLI: "CLI",
	opCLV: "CLV", opCMP: "CMP", opCPX: "CPX", opCPY: "CPY", opDEC: "DEC", opDEX: "DEX",
	opDEY: "DEY", opEOR: "EOR", opINC: "INC", opINX: "INX", opINY: "INY", opJMP: "JMP",
	opJSR: "JSR", opLDA: "LDA", opLDX: "LDX", opLDY: "LDY", opLSR: "LSR", opORA: "ORA",
	opPHA: "PHA", opPHP: "PHP", opPHX: "PHX", opPHY: "PHY", opPLA: "PLA", opPLP: "PLP",
	opPLX: "PLX", opPLY: "PLY", opROL: "ROL", opROR: "ROR", opRTI: "RTI", opRTS: "RTS",
	opSBC: "SBC", opSEC: "SEC", opSED: "SED", opSEI: "SEI", opSTA: "STA", opSTX: "STX",
	opSTY: "STY", opSTZ: "STZ", opTAX: "TAX", opTAY: "TAY", opTRB: "TRB", opTSB: "TSB",
	opTSX: "TSX", opTXA: "TXA", opTXS: "TXS", opTYA: "TYA",
	opBBR: "BBR", opBBS: "BBS", opRMB: "RMB", opSMB: "SMB",
	opLAX: "lax", opSAX: "sax", opDCP: "dcp", opISB: "isb",
	opSLO: "slo", opRLA: "rla", opSRE: "sre", opRRA: "rra",
}

func (op operation) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "???"
}

func (op operation) undocumented() bool {
	return op >= opLAX
}

func (vc *Virt6502) execute(op operation) {
	switch op {
	case opNOP:
		if vc.Variant == NMOS {
			switch vc.opcode {
			case 0x1c, 0x3c, 0x5c, 0x7c, 0xdc, 0xfc:
				vc.penaltyOp = true
			}
		}

	case opADC:
		vc.penaltyOp = true
		vc.A = vc.adcAndSetFlags(vc.getValue())
	case opSBC:
		vc.penaltyOp = true
		vc.A = vc.sbcAndSetFlags(vc.getValue())
	case opAND:
		vc.penaltyOp = true
		vc.setRegOp(&vc.A, vc.A&vc.getValue())
	case opORA:
		vc.penaltyOp = true
		vc.setRegOp(&vc.A, vc.A|vc.getValue())
	case opEOR:
		vc.penaltyOp = true
		vc.setRegOp(&vc.A, vc.A^vc.getValue())

	case opASL:
		vc.putValue(vc.aslAndSetFlags(vc.getValue()))
	case opLSR:
		vc.putValue(vc.lsrAndSetFlags(vc.getValue()))
	case opROL:
		vc.putValue(vc.rolAndSetFlags(vc.getValue()))
	case opROR:
		vc.putValue(vc.rorAndSetFlags(vc.getValue()))

	case opCMP:
		vc.penaltyOp = true
		vc.cmpOp(vc.A, vc.getValue())
	case opCPX:
		vc.cmpOp(vc.X, vc.getValue())
	case opCPY:
		vc.cmpOp(vc.Y, vc.getValue())

	case opINC:
		vc.storeOp(vc.getValue() + 1)
	case opDEC:
		vc.storeOp(vc.getValue() - 1)
	case opINX:
		vc.setRegOp(&vc.X, vc.X+1)
	case opINY:
		vc.setRegOp(&vc.Y, vc.Y+1)
	case opDEX:
		vc.setRegOp(&vc.X, vc.X-1)
	case opDEY:
		vc.setRegOp(&vc.Y, vc.Y-1)

	case opLDA:
		vc.penaltyOp = true
		vc.setRegOp(&vc.A, vc.getValue())
	case opLDX:
		vc.penaltyOp = true
		vc.setRegOp(&vc.X, vc.getValue())
	case opLDY:
		vc.penaltyOp = true
		vc.setRegOp(&vc.Y, vc.getValue())
	case opSTA:
		vc.putValue(vc.A)
	case opSTX:
		vc.putValue(vc.X)
	case opSTY:
		vc.putValue(vc.Y)
	case opSTZ:
		vc.putValue(0)

	case opBCC:
		vc.branchOpRel(vc.P&FlagCarry == 0)
	case opBCS:
		vc.branchOpRel(vc.P&FlagCarry == FlagCarry)
	case opBEQ:
		vc.branchOpRel(vc.P&FlagZero == FlagZero)
	case opBNE:
		vc.branchOpRel(vc.P&FlagZero == 0)
	case opBMI:
		vc.branchOpRel(vc.P&FlagNeg == FlagNeg)
	case opBPL:
		vc.branchOpRel(vc.P&FlagNeg == 0)
	case opBVC:
		vc.branchOpRel(vc.P&FlagOverflow == 0)
	case opBVS:
		vc.branchOpRel(vc.P&FlagOverflow == FlagOverflow)
	case opBRA:
		vc.branchOpRel(true)

	case opBIT:
		vc.penaltyOp = true
		vc.bitAndSetFlags(vc.getValue())

	case opJMP:
		vc.PC = vc.ea
	case opJSR:
		vc.Push16(vc.PC - 1)
		vc.PC = vc.ea
	case opRTS:
		vc.PC = vc.Pop16() + 1
	case opRTI:
		vc.P = vc.Pop()&^FlagBrk | FlagAlwaysSet
		vc.LastStepsP = vc.P // no lag from RTI
		vc.PC = vc.Pop16()
	case opBRK:
		vc.PC++ // skip the signature byte
		vc.Push16(vc.PC)
		vc.Push(vc.P | FlagBrk | FlagAlwaysSet)
		vc.P |= FlagIrqDisabled
		if vc.Variant == CMOS {
			vc.P &^= FlagDecimal
		}
		vc.PC = vc.Read16(VectorIRQ)

	case opPHA:
		vc.Push(vc.A)
	case opPHX:
		vc.Push(vc.X)
	case opPHY:
		vc.Push(vc.Y)
	case opPHP:
		vc.Push(vc.P | FlagBrk | FlagAlwaysSet)
	case opPLA:
		vc.setRegOp(&vc.A, vc.Pop())
	case opPLX:
		vc.setRegOp(&vc.X, vc.Pop())
	case opPLY:
		vc.setRegOp(&vc.Y, vc.Pop())
	case opPLP:
		vc.P = vc.Pop()&^FlagBrk | FlagAlwaysSet

	case opTAX:
		vc.setRegOp(&vc.X, vc.A)
	case opTAY:
		vc.setRegOp(&vc.Y, vc.A)
	case opTXA:
		vc.setRegOp(&vc.A, vc.X)
	case opTYA:
		vc.setRegOp(&vc.A, vc.Y)
	case opTSX:
		vc.setRegOp(&vc.X, vc.S)
	case opTXS:
		vc.S = vc.X

	case opCLC:
		vc.P &^= FlagCarry
	case opSEC:
		vc.P |= FlagCarry
	case opCLD:
		vc.P &^= FlagDecimal
	case opSED:
		vc.P |= FlagDecimal
	case opCLI:
		vc.P &^= FlagIrqDisabled
	case opSEI:
		vc.P |= FlagIrqDisabled
	case opCLV:
		vc.P &^= FlagOverflow

	case opTRB:
		val := vc.getValue()
		vc.putValue(val &^ vc.A)
		vc.setZeroFlag(val&vc.A == 0)
	case opTSB:
		val := vc.getValue()
		vc.putValue(val | vc.A)
		vc.setZeroFlag(val&vc.A == 0)
	case opBBR:
		vc.bitBranchOp(false)
	case opBBS:
		vc.bitBranchOp(true)
	case opRMB:
		vc.putValue(vc.getValue() &^ vc.opcodeBit())
	case opSMB:
		vc.putValue(vc.getValue() | vc.opcodeBit())

	case opLAX:
		vc.penaltyOp = true
		vc.setRegOp(&vc.A, vc.getValue())
		vc.X = vc.A
	case opSAX:
		vc.putValue(vc.A & vc.X)
	case opDCP:
		vc.composite(opDEC, opCMP)
	case opISB:
		vc.composite(opINC, opSBC)
	case opSLO:
		vc.composite(opASL, opORA)
	case opRLA:
		vc.composite(opROL, opAND)
	case opSRE:
		vc.composite(opLSR, opEOR)
	case opRRA:
		vc.composite(opROR, opADC)
	}
}

// composite runs a read-modify-write op then an accumulator op on the value
// it wrote, without reading the bus again. The pair never takes the
// page-cross cycle.
func (vc *Virt6502) composite(rmw, accOp operation) {
	vc.execute(rmw)
	vc.reuseValue = true
	vc.execute(accOp)
	vc.reuseValue = false
	vc.penaltyOp = false
}

func (vc *Virt6502) setRegOp(dst *byte, src byte) {
	*dst = src
	vc.setZeroNeg(src)
}
func (vc *Virt6502) storeOp(val byte) {
	vc.putValue(val)
	vc.setZeroNeg(val)
}
func (vc *Virt6502) cmpOp(reg byte, val byte) {
	vc.setZeroNeg(reg - val)
	vc.setCarryFlag(reg >= val)
}

func (vc *Virt6502) branchOpRel(test bool) {
	if test {
		oldPC := vc.PC
		vc.PC += vc.relAddr
		if vc.PC&0xff00 != oldPC&0xff00 {
			vc.Cycles += 2
		} else {
			vc.Cycles++
		}
	}
}

func (vc *Virt6502) opcodeBit() byte {
	return 1 << (vc.opcode >> 4 & 0x07)
}

// zp operand first, then the displacement the resolver already read
func (vc *Virt6502) bitBranchOp(set bool) {
	val := vc.Read(uint16(vc.fetch()))
	vc.PC++
	vc.branchOpRel((val&vc.opcodeBit() != 0) == set)
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func (vc *Virt6502) inDecimalMode() bool {
	return !vc.IgnoreDecimalMode && vc.P&FlagDecimal == FlagDecimal
}

func (vc *Virt6502) adcAndSetFlags(val byte) byte {
	carry := uint16(vc.P & FlagCarry)
	vc.result = uint16(vc.A) + uint16(val) + carry

	if !vc.inDecimalMode() {
		result := byte(vc.result)
		vc.setCarryFlag(vc.result > 0xff)
		vc.setOverflowFlag((uint16(vc.A)^vc.result)&(uint16(val)^vc.result)&0x80 != 0)
		vc.setZeroNeg(result)
		return result
	}
	vc.Cycles++

	lo := uint16(vc.A&0x0f) + uint16(val&0x0f) + carry
	if lo > 0x09 {
		lo = ((lo + 0x06) & 0x0f) + 0x10
	}
	sum := uint16(vc.A&0xf0) + uint16(val&0xf0) + lo

	// V (and N on NMOS) come from the sum before the high nibble is corrected
	signed := int(int8(vc.A&0xf0)) + int(int8(val&0xf0)) + int(lo)
	vc.setOverflowFlag(signed < -128 || signed > 127)
	neg := sum&0x80 != 0

	if sum >= 0xa0 {
		sum += 0x60
	}
	vc.setCarryFlag(sum > 0xff)
	result := byte(sum)

	if vc.Variant == CMOS {
		vc.setZeroNeg(result)
	} else {
		vc.setNegFlag(neg)
		vc.setZeroFlag(byte(vc.result) == 0)
	}
	return result
}

func (vc *Virt6502) sbcAndSetFlags(val byte) byte {

	// NOTE: remember, carry is inverted for SBC
	borrow := int(boolByte(vc.P&FlagCarry == 0))
	diff := int(vc.A) - int(val) - borrow
	binResult := byte(diff)

	vc.setCarryFlag(diff >= 0)
	vc.setOverflowFlag((vc.A^val)&(vc.A^binResult)&0x80 != 0)
	vc.setZeroNeg(binResult)

	if !vc.inDecimalMode() {
		return binResult
	}
	vc.Cycles++

	lo := int(vc.A&0x0f) - int(val&0x0f) - borrow
	if vc.Variant == CMOS {
		if diff < 0 {
			diff -= 0x60
		}
		if lo < 0 {
			diff -= 0x06
		}
		result := byte(diff)
		vc.setZeroNeg(result)
		return result
	}

	// NMOS keeps the binary flags
	if lo < 0 {
		lo = ((lo - 0x06) & 0x0f) - 0x10
	}
	hi := int(vc.A&0xf0) - int(val&0xf0) + lo
	if hi < 0 {
		hi -= 0x60
	}
	return byte(hi)
}

func (vc *Virt6502) aslAndSetFlags(val byte) byte {
	result := val << 1
	vc.setCarryFlag(val&0x80 == 0x80)
	vc.setZeroNeg(result)
	return result
}

func (vc *Virt6502) lsrAndSetFlags(val byte) byte {
	result := val >> 1
	vc.setCarryFlag(val&0x01 == 0x01)
	vc.setZeroNeg(result)
	return result
}

func (vc *Virt6502) rorAndSetFlags(val byte) byte {
	result := val >> 1
	if vc.P&FlagCarry == FlagCarry {
		result |= 0x80
	}
	vc.setCarryFlag(val&0x01 == 0x01)
	vc.setZeroNeg(result)
	return result
}

func (vc *Virt6502) rolAndSetFlags(val byte) byte {
	result := val << 1
	if vc.P&FlagCarry == FlagCarry {
		result |= 0x01
	}
	vc.setCarryFlag(val&0x80 == 0x80)
	vc.setZeroNeg(result)
	return result
}

// immediate BIT (65C02) only touches Z
func (vc *Virt6502) bitAndSetFlags(val byte) {
	if vc.mode != imm {
		vc.P &^= 0xC0
		vc.P |= val & 0xC0
	}
	vc.setZeroFlag(vc.A&val == 0)
}
