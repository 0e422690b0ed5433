package virt6502

import "testing"

func TestDisassemble(t *testing.T) {
	tests := []struct {
		cfg     Config
		program []byte
		text    string
		length  uint16
	}{
		{Config{}, []byte{0xea}, "NOP", 1},
		{Config{}, []byte{0x0a}, "ASL A", 1},
		{Config{}, []byte{0xa9, 0x05}, "LDA #$05", 2},
		{Config{}, []byte{0xb5, 0x80}, "LDA $80,X", 2},
		{Config{}, []byte{0xb6, 0x80}, "LDX $80,Y", 2},
		{Config{}, []byte{0xa1, 0x80}, "LDA ($80,X)", 2},
		{Config{}, []byte{0x91, 0x80}, "STA ($80),Y", 2},
		{Config{}, []byte{0xd0, 0xfe}, "BNE $0200", 2},
		{Config{}, []byte{0x8d, 0x34, 0x12}, "STA $1234", 3},
		{Config{}, []byte{0x1d, 0x34, 0x12}, "ORA $1234,X", 3},
		{Config{}, []byte{0x6c, 0xff, 0x10}, "JMP ($10FF)", 3},
		{NMOSConfig(), []byte{0xa7, 0x10}, "lax $10", 2},
		{Config{}, []byte{0xa7, 0x10}, "NOP $10", 2},
		{CMOSConfig(), []byte{0xb2, 0x20}, "LDA ($20)", 2},
		{CMOSConfig(), []byte{0x7c, 0x00, 0x30}, "JMP ($3000,X)", 3},
		{CMOSConfig(), []byte{0x0f, 0x10, 0xfd}, "BBR0 $10,$0200", 3},
		{CMOSConfig(), []byte{0xf7, 0x10}, "SMB7 $10", 2},
		{CMOSConfig(), []byte{0x1a}, "INC A", 1},
	}
	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			vc, _ := newTestCPU(test.cfg, test.program...)
			text, n := vc.Disassemble(testOrigin)
			if text != test.text || n != test.length {
				t.Errorf("got %q (%d bytes), expected %q (%d bytes)", text, n, test.text, test.length)
			}
		})
	}
}

func TestDisassembleWalksProgram(t *testing.T) {
	vc, _ := newTestCPU(Config{}, selfCheck...)
	want := []string{"LDA #$05", "CLC", "ADC #$03", "CMP #$08", "BNE $020C", "JMP $0209", "JMP $020C"}
	addr := uint16(testOrigin)
	for _, w := range want {
		text, n := vc.Disassemble(addr)
		if text != w {
			t.Errorf("$%04X: got %q, expected %q", addr, text, w)
		}
		addr += n
	}
	if addr != testOrigin+uint16(len(selfCheck)) {
		t.Errorf("walked to $%04X, expected $%04X", addr, testOrigin+len(selfCheck))
	}
}
