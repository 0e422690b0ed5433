package virt6502

type addrMode byte

const (
	imp addrMode = iota // implied
	acc                 // accumulator
	imm                 // #nn
	zpg                 // nn
	zpx                 // nn,X
	zpy                 // nn,Y
	izp                 // (nn), 65C02
	rel                 // branch displacement
	rlb                 // zp operand then displacement, for BBR/BBS
	abs                 // nnnn
	abx                 // nnnn,X
	aby                 // nnnn,Y
	ind                 // (nnnn)
	iax                 // (nnnn,X), 65C02
	izx                 // (nn,X)
	izy                 // (nn),Y
)

// instLen is the full instruction length, opcode included.
func (m addrMode) instLen() uint16 {
	switch m {
	case imp, acc:
		return 1
	case abs, abx, aby, ind, iax, rlb:
		return 3
	}
	return 2
}

func (vc *Virt6502) fetch() byte {
	b := vc.Read(vc.PC)
	vc.PC++
	return b
}

func (vc *Virt6502) fetch16() uint16 {
	low := uint16(vc.fetch())
	return uint16(vc.fetch())<<8 | low
}

// zero page pointers wrap at 0xff
func (vc *Virt6502) readZeroPage16(zp byte) uint16 {
	return uint16(vc.Read(uint16(zp+1)))<<8 | uint16(vc.Read(uint16(zp)))
}

func (vc *Virt6502) indexed(base uint16, idx byte) uint16 {
	addr := base + uint16(idx)
	if base&0xff00 != addr&0xff00 { // if not same page, may take extra cycle
		vc.penaltyAddr = true
	}
	return addr
}

func signExtend(b byte) uint16 {
	return uint16(int16(int8(b)))
}

// resolve leaves the operand location in vc.ea (unless the mode is acc)
// and PC past everything the mode consumes.
func (vc *Virt6502) resolve(mode addrMode) {
	switch mode {
	case imp, acc:
	case imm:
		vc.ea = vc.PC
		vc.PC++
	case zpg:
		vc.ea = uint16(vc.fetch())
	case zpx:
		vc.ea = uint16(vc.fetch() + vc.X) // wraps at 0xff
	case zpy:
		vc.ea = uint16(vc.fetch() + vc.Y) // wraps at 0xff
	case izp:
		vc.ea = vc.readZeroPage16(vc.fetch())
	case rel:
		vc.relAddr = signExtend(vc.fetch())
	case rlb:
		// displacement sits after the zp byte; the op consumes both
		vc.relAddr = signExtend(vc.Read(vc.PC + 1))
	case abs:
		vc.ea = vc.fetch16()
	case abx:
		vc.ea = vc.indexed(vc.fetch16(), vc.X)
	case aby:
		vc.ea = vc.indexed(vc.fetch16(), vc.Y)
	case ind:
		ptr := vc.fetch16()
		highAddr := ptr + 1
		if vc.IndirectJmpBug {
			// hw bug! lo-byte of the pointer wraps at 0xff
			highAddr = (ptr & 0xff00) | ((ptr + 1) & 0xff)
		}
		vc.ea = uint16(vc.Read(highAddr))<<8 | uint16(vc.Read(ptr))
	case iax:
		ptr := vc.fetch16() + uint16(vc.X)
		vc.ea = uint16(vc.Read(ptr+1))<<8 | uint16(vc.Read(ptr))
	case izx:
		vc.ea = vc.readZeroPage16(vc.fetch() + vc.X)
	case izy:
		vc.ea = vc.indexed(vc.readZeroPage16(vc.fetch()), vc.Y)
	}
}

func (vc *Virt6502) getValue() byte {
	if vc.mode == acc {
		return vc.A
	}
	if vc.reuseValue {
		return vc.value
	}
	return vc.Read(vc.ea)
}

func (vc *Virt6502) putValue(val byte) {
	vc.value = val
	if vc.mode == acc {
		vc.A = val
		return
	}
	vc.Write(vc.ea, val)
}
