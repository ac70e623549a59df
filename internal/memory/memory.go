// Package memory implements the CHIP-8 4KB address space.
package memory

import "fmt"

// Size is the total amount of addressable memory in bytes.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: Interpreter and font data (512 bytes)
//	0x200-0xFFF: User program space (3584 bytes)
const Size = 4096

// OutOfBoundsError is returned when an address or address range falls
// outside the addressable memory.
type OutOfBoundsError struct {
	Address uint16 // first offending address
	Length  int    // length of the access, 1 for single byte accesses
}

func (e *OutOfBoundsError) Error() string {
	if e.Length > 1 {
		return fmt.Sprintf("memory access of %d bytes at address %04X is out of bounds", e.Length, e.Address)
	}
	return fmt.Sprintf("memory access at address %04X is out of bounds", e.Address)
}

// Memory is a fixed 4096-byte address space, zero-initialized at creation
// and mutated only through bounds-checked writes.
type Memory struct {
	data [Size]byte
}

// New creates a new zeroed memory.
func New() *Memory {
	return &Memory{}
}

// ReadByte returns the byte stored at addr.
func (m *Memory) ReadByte(addr uint16) (byte, error) {
	if addr >= Size {
		return 0, &OutOfBoundsError{Address: addr, Length: 1}
	}
	return m.data[addr], nil
}

// WriteByte stores value at addr.
func (m *Memory) WriteByte(addr uint16, value byte) error {
	if addr >= Size {
		return &OutOfBoundsError{Address: addr, Length: 1}
	}
	m.data[addr] = value
	return nil
}

// ReadWord reads two consecutive bytes starting at addr as a big-endian
// 16-bit word. CHIP-8 instructions are stored most-significant-byte first.
func (m *Memory) ReadWord(addr uint16) (uint16, error) {
	if int(addr)+1 >= Size {
		return 0, &OutOfBoundsError{Address: addr, Length: 2}
	}
	return uint16(m.data[addr])<<8 | uint16(m.data[addr+1]), nil
}

// Load copies data into the address range [offset, offset+len(data)).
// It overwrites prior contents in that range and leaves the rest of memory
// untouched. If the range does not fit, no byte is written.
func (m *Memory) Load(offset uint16, data []byte) error {
	if int(offset)+len(data) > Size {
		return &OutOfBoundsError{Address: offset, Length: len(data)}
	}
	copy(m.data[offset:], data)
	return nil
}

// Bytes returns a value copy of the full address space for diagnostic use.
func (m *Memory) Bytes() [Size]byte {
	return m.data
}
