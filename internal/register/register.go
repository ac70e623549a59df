// Package register implements the CHIP-8 register file.
package register

import "fmt"

// Count is the number of general purpose registers.
const Count = 16

// InvalidRegisterError is returned when a register identifier falls outside
// the legal 0x0-0xF nibble range.
type InvalidRegisterError struct {
	Register uint8
}

func (e *InvalidRegisterError) Error() string {
	return fmt.Sprintf("register V%X does not exist", e.Register)
}

// File holds the 16 general purpose 8-bit registers V0-VF and the 16-bit
// address register I. All registers are zero at creation.
type File struct {
	v [Count]uint8
	i uint16
}

// New creates a new zeroed register file.
func New() *File {
	return &File{}
}

// Get returns the value of register Vid.
func (f *File) Get(id uint8) (uint8, error) {
	if id >= Count {
		return 0, &InvalidRegisterError{Register: id}
	}
	return f.v[id], nil
}

// Set stores value into register Vid.
func (f *File) Set(id uint8, value uint8) error {
	if id >= Count {
		return &InvalidRegisterError{Register: id}
	}
	f.v[id] = value
	return nil
}

// I returns the value of the address register.
func (f *File) I() uint16 {
	return f.i
}

// SetI sets the address register. The register holds the full 16-bit width,
// masking to 12-bit addresses is done by the instruction decoder.
func (f *File) SetI(value uint16) {
	f.i = value
}

// V returns a value copy of all general purpose registers for diagnostic use.
func (f *File) V() [Count]uint8 {
	return f.v
}
