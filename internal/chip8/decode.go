package chip8

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Decoded is the result of decoding a 16-bit instruction word into its
// operand fields. Decoding extracts fields only, validating that a field is
// a legal register id or address happens at the point of use.
type Decoded struct {
	Word uint16 // the full instruction word

	Family uint8  // top nibble, selects the opcode group
	X      uint8  // second nibble, register identifier
	Y      uint8  // third nibble, register identifier
	N      uint8  // fourth nibble
	KK     uint8  // low byte, 8-bit immediate
	NNN    uint16 // low 12 bits, address immediate
}

// Decode interprets a 16-bit instruction word. It is a pure function with
// no side effects on machine state.
func Decode(word uint16) Decoded {
	return Decoded{
		Word:   word,
		Family: uint8(word >> 12),
		X:      uint8(word >> 8 & 0xF),
		Y:      uint8(word >> 4 & 0xF),
		N:      uint8(word & 0xF),
		KK:     uint8(word & 0xFF),
		NNN:    word & 0xFFF,
	}
}

// Mnemonic returns the assembly name of the instruction by matching the
// word against the CHIP-8 opcode tables. It returns an empty string for
// words that match no known instruction. The name is diagnostic only,
// execution semantics are defined by the dispatch table.
func (d Decoded) Mnemonic() string {
	for _, op := range chip8.Opcodes[int(d.Family)] {
		if op.Info.Mask&d.Word == op.Info.Value {
			if op.Instruction == nil {
				return ""
			}
			return op.Instruction.Name
		}
	}
	return ""
}
