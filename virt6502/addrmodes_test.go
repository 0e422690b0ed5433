package virt6502

import "testing"

type modeTest struct {
	name    string
	cfg     Config
	program []byte
	setup   func(vc *Virt6502, mem *RAM)
	check   func(t *testing.T, vc *Virt6502, mem *RAM)
}

func (m modeTest) run(t *testing.T) {
	t.Run(m.name, func(t *testing.T) {
		vc, mem := newTestCPU(m.cfg, m.program...)
		if m.setup != nil {
			m.setup(vc, mem)
		}
		vc.Step()
		m.check(t, vc, mem)
	})
}

func expectA(want byte) func(t *testing.T, vc *Virt6502, mem *RAM) {
	return func(t *testing.T, vc *Virt6502, mem *RAM) {
		t.Helper()
		if vc.A != want {
			t.Errorf("A = 0x%02x, expected 0x%02x", vc.A, want)
		}
	}
}

func expectPC(want uint16) func(t *testing.T, vc *Virt6502, mem *RAM) {
	return func(t *testing.T, vc *Virt6502, mem *RAM) {
		t.Helper()
		if vc.PC != want {
			t.Errorf("PC = 0x%04x, expected 0x%04x", vc.PC, want)
		}
	}
}

func TestAddressingModes(t *testing.T) {
	cmos := CMOSConfig()
	tests := []modeTest{
		{
			name:    "zp,X wraps in page zero",
			program: []byte{0xb5, 0xf8}, // LDA $F8,X
			setup: func(vc *Virt6502, mem *RAM) {
				vc.X = 0x10
				mem[0x0008] = 0x77
				mem[0x0108] = 0x11
			},
			check: expectA(0x77),
		},
		{
			name:    "zp,Y wraps in page zero",
			program: []byte{0xb6, 0xf0}, // LDX $F0,Y
			setup: func(vc *Virt6502, mem *RAM) {
				vc.Y = 0x20
				mem[0x0010] = 0x5a
			},
			check: func(t *testing.T, vc *Virt6502, mem *RAM) {
				if vc.X != 0x5a {
					t.Errorf("X = 0x%02x, expected 0x5a", vc.X)
				}
			},
		},
		{
			name:    "(zp,X) pointer wraps",
			program: []byte{0xa1, 0xfe}, // LDA ($FE,X)
			setup: func(vc *Virt6502, mem *RAM) {
				vc.X = 0x01
				mem[0x00ff] = 0x34
				mem[0x0000] = 0x12
				mem[0x1234] = 0x99
			},
			check: expectA(0x99),
		},
		{
			name:    "(zp),Y",
			program: []byte{0xb1, 0x20}, // LDA ($20),Y
			setup: func(vc *Virt6502, mem *RAM) {
				vc.Y = 0x05
				mem[0x0020] = 0x00
				mem[0x0021] = 0x30
				mem[0x3005] = 0x66
			},
			check: expectA(0x66),
		},
		{
			name:    "(zp) on 65C02",
			cfg:     cmos,
			program: []byte{0xb2, 0x20}, // LDA ($20)
			setup: func(vc *Virt6502, mem *RAM) {
				mem[0x0020] = 0x00
				mem[0x0021] = 0x30
				mem[0x3000] = 0x44
			},
			check: expectA(0x44),
		},
		{
			name:    "abs,Y",
			program: []byte{0xb9, 0xff, 0x30}, // LDA $30FF,Y
			setup: func(vc *Virt6502, mem *RAM) {
				vc.Y = 0x02
				mem[0x3101] = 0x21
			},
			check: expectA(0x21),
		},
		{
			name:    "abs,X wraps the address space",
			program: []byte{0xbd, 0xff, 0xff}, // LDA $FFFF,X
			setup: func(vc *Virt6502, mem *RAM) {
				vc.X = 0x01
				mem[0x0000] = 0x0e
			},
			check: expectA(0x0e),
		},
		{
			name:    "JMP ($10FF) with page wrap bug",
			cfg:     Config{IndirectJmpBug: true},
			program: []byte{0x6c, 0xff, 0x10},
			setup: func(vc *Virt6502, mem *RAM) {
				mem[0x10ff] = 0x00
				mem[0x1000] = 0x40
				mem[0x1100] = 0x50
			},
			check: expectPC(0x4000),
		},
		{
			name:    "JMP ($10FF) without page wrap bug",
			program: []byte{0x6c, 0xff, 0x10},
			setup: func(vc *Virt6502, mem *RAM) {
				mem[0x10ff] = 0x00
				mem[0x1000] = 0x40
				mem[0x1100] = 0x50
			},
			check: expectPC(0x5000),
		},
		{
			name:    "JMP (abs,X) on 65C02",
			cfg:     cmos,
			program: []byte{0x7c, 0x00, 0x30},
			setup: func(vc *Virt6502, mem *RAM) {
				vc.X = 0x02
				mem[0x3002] = 0x00
				mem[0x3003] = 0x60
			},
			check: expectPC(0x6000),
		},
		{
			name:    "accumulator",
			program: []byte{0x0a}, // ASL A
			setup: func(vc *Virt6502, mem *RAM) {
				vc.A = 0x41
			},
			check: func(t *testing.T, vc *Virt6502, mem *RAM) {
				if vc.A != 0x82 || vc.PC != testOrigin+1 {
					t.Errorf("A = 0x%02x PC = 0x%04x, expected 0x82 at 0x%04x", vc.A, vc.PC, testOrigin+1)
				}
			},
		},
		{
			name:    "zp read-modify-write",
			program: []byte{0xe6, 0x80}, // INC $80
			setup: func(vc *Virt6502, mem *RAM) {
				mem[0x0080] = 0xff
			},
			check: func(t *testing.T, vc *Virt6502, mem *RAM) {
				if mem[0x0080] != 0x00 || !vc.Flag(FlagZero) {
					t.Errorf("$80 = 0x%02x P = %s, expected 0x00 with Z", mem[0x0080], fmtFlags(vc.P))
				}
			},
		},
	}
	for _, test := range tests {
		test.run(t)
	}
}

func TestInstLen(t *testing.T) {
	for _, vc := range []*Virt6502{New(NMOSConfig(), &RAM{}), New(CMOSConfig(), &RAM{})} {
		for i, inst := range vc.table {
			n := inst.mode.instLen()
			if n < 1 || n > 3 {
				t.Errorf("%v opcode 0x%02x: length %d", vc.Variant, i, n)
			}
		}
	}
}
