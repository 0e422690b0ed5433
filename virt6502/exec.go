package virt6502

// SetHook installs fn to be called after every executed instruction.
// A nil fn removes it.
func (vc *Virt6502) SetHook(fn func()) {
	vc.hook = fn
}

// Run executes instructions until the cycle count reaches a goal moved
// forward by cycles. Overshoot carries into the next call.
func (vc *Virt6502) Run(cycles uint64) {
	vc.cycleGoal += cycles
	for vc.Cycles < vc.cycleGoal {
		vc.HandleInterrupts()
		vc.stepOpcode()
	}
}

// Step executes exactly one instruction and resyncs the Run goal to it.
func (vc *Virt6502) Step() {
	vc.HandleInterrupts()
	vc.stepOpcode()
	vc.cycleGoal = vc.Cycles
}

func (vc *Virt6502) stepOpcode() {
	vc.lastPC = vc.PC
	vc.opcode = vc.fetch()
	vc.penaltyOp = false
	vc.penaltyAddr = false

	inst := &vc.table[vc.opcode]
	vc.mode = inst.mode
	vc.resolve(inst.mode)
	vc.execute(inst.op)

	vc.Cycles += uint64(inst.cycles)
	if vc.penaltyOp && vc.penaltyAddr {
		vc.Cycles++
	}
	vc.Steps++

	if vc.hook != nil {
		vc.hook()
	}
}
