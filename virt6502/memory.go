package virt6502

// Bus is the memory the CPU runs against. Anything behind an address
// (RAM, ROM, devices) is the bus's business; the CPU never range checks.
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, val byte)
}

// RAM is a flat 64K bus.
type RAM [0x10000]byte

func (m *RAM) Read(addr uint16) byte       { return m[addr] }
func (m *RAM) Write(addr uint16, val byte) { m[addr] = val }

// Load copies data in at addr, wrapping past 0xffff.
func (m *RAM) Load(addr uint16, data []byte) {
	for i, b := range data {
		m[addr+uint16(i)] = b
	}
}

// SetVector stores a little-endian address at one of the Vector* locations.
func (m *RAM) SetVector(vector, addr uint16) {
	m[vector] = byte(addr)
	m[vector+1] = byte(addr >> 8)
}
