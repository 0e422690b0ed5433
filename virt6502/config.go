package virt6502

// Variant selects the opcode map.
type Variant int

const (
	// NMOS is the original MOS 6502.
	NMOS Variant = iota
	// CMOS is the 65C02, with its extra addressing modes and opcodes.
	CMOS
)

func (v Variant) String() string {
	switch v {
	case NMOS:
		return "6502"
	case CMOS:
		return "65C02"
	}
	return "unknown"
}

// Config is read once by New and never consulted for dispatch again.
type Config struct {
	Variant Variant

	// IgnoreDecimalMode allows you to force the 6502 to behave like the NES version.
	IgnoreDecimalMode bool

	// Undocumented maps the NMOS illegal opcodes to their composite behaviors
	// (lax, sax, dcp, isb, slo, rla, sre, rra). Off, they are NOPs.
	// Ignored on CMOS.
	Undocumented bool

	// IndirectJmpBug makes JMP (addr) fetch the high byte from the start of
	// the pointer's page when the pointer sits at $xxFF.
	IndirectJmpBug bool
}

// NMOSConfig matches real NMOS silicon.
func NMOSConfig() Config {
	return Config{Variant: NMOS, Undocumented: true, IndirectJmpBug: true}
}

// CMOSConfig matches a 65C02, which fixed the indirect jump bug.
func CMOSConfig() Config {
	return Config{Variant: CMOS}
}

// NESConfig matches the Ricoh 2A03: an NMOS core with decimal mode wired off.
func NESConfig() Config {
	return Config{Variant: NMOS, IgnoreDecimalMode: true, Undocumented: true, IndirectJmpBug: true}
}
