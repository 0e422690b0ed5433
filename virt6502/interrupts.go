package virt6502

const interruptCycles = 7

// Reset loads PC from the reset vector and puts the registers in their
// power-on state.
func (vc *Virt6502) Reset() {
	vc.PC = vc.Read16(VectorReset)
	vc.A, vc.X, vc.Y = 0, 0, 0
	vc.S = 0xfd
	vc.P |= FlagAlwaysSet
	vc.LastStepsP = vc.P
	vc.PendingIRQ, vc.PendingNMI, vc.PendingReset = false, false, false
}

// IRQ enters the IRQ handler now. It does not look at the interrupt
// disable flag; set PendingIRQ for a maskable request.
func (vc *Virt6502) IRQ() {
	vc.doInterruptPushJmp(VectorIRQ)
}

// NMI enters the NMI handler now.
func (vc *Virt6502) NMI() {
	vc.doInterruptPushJmp(VectorNMI)
}

func (vc *Virt6502) doInterruptPushJmp(vector uint16) {
	vc.Push16(vc.PC)
	vc.Push(vc.P&^FlagBrk | FlagAlwaysSet)
	vc.P |= FlagIrqDisabled
	if vc.Variant == CMOS {
		vc.P &^= FlagDecimal
	}
	vc.PC = vc.Read16(vector)
	vc.Cycles += interruptCycles
}

// interrupt info lags behind actual P flag,
// so we need the delay provided by having
// a LastStepsP
func (vc *Virt6502) InterruptsEnabled() bool {
	return vc.LastStepsP&FlagIrqDisabled == 0
}

// HandleInterrupts services the pending lines, highest priority first.
// A masked IRQ stays pending.
func (vc *Virt6502) HandleInterrupts() {
	if vc.PendingReset {
		vc.PendingReset = false
		vc.Reset()
	} else if vc.PendingNMI {
		vc.PendingNMI = false
		vc.NMI()
	} else if vc.PendingIRQ && vc.InterruptsEnabled() {
		vc.PendingIRQ = false
		vc.IRQ()
	}
	vc.LastStepsP = vc.P
}
