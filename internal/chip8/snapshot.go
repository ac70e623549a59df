package chip8

import (
	"fmt"
	"strings"

	"github.com/h-arry-smith/flake-8/internal/memory"
	"github.com/h-arry-smith/flake-8/internal/register"
)

// memoryDumpBytesPerLine is the number of memory bytes rendered per dump
// line, shown as 32 instruction-word pairs.
const memoryDumpBytesPerLine = 64

// Snapshot is a read-only value copy of the complete machine state, taken
// for diagnostic rendering. Mutating a snapshot has no effect on the CPU it
// was taken from.
type Snapshot struct {
	Memory [memory.Size]byte
	V      [register.Count]uint8
	I      uint16
	PC     uint16
	SP     uint8
	Stack  [stackDepth]uint16
	Halted bool
}

// Snapshot returns a copy of the full machine state: memory, registers,
// program counter, stack pointer and stack. In a concurrent host it must
// only be taken at a cycle boundary.
func (c *CPU) Snapshot() Snapshot {
	return Snapshot{
		Memory: c.mem.Bytes(),
		V:      c.regs.V(),
		I:      c.regs.I(),
		PC:     c.pc,
		SP:     c.sp,
		Stack:  c.stack,
		Halted: c.halted,
	}
}

// MemoryDump renders all of memory as a grid of hexadecimal
// instruction-word pairs.
func (s Snapshot) MemoryDump() string {
	var sb strings.Builder
	for line := 0; line < len(s.Memory); line += memoryDumpBytesPerLine {
		for offset := 0; offset < memoryDumpBytesPerLine; offset += 2 {
			fmt.Fprintf(&sb, "%02X%02X ", s.Memory[line+offset], s.Memory[line+offset+1])
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RegisterDump renders all general purpose registers and the address
// register.
func (s Snapshot) RegisterDump() string {
	var sb strings.Builder
	for id, value := range s.V {
		fmt.Fprintf(&sb, "v_%x: %02X ", id, value)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "i: %04X\n", s.I)
	return sb.String()
}

// StateDump renders the program counter, stack pointer and the raw stack
// contents.
func (s Snapshot) StateDump() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "pc: %04X\n", s.PC)
	fmt.Fprintf(&sb, "sp: %04X\n", s.SP)
	sb.WriteString("stack:")
	for _, addr := range s.Stack {
		fmt.Fprintf(&sb, " %04X", addr)
	}
	sb.WriteString("\n")
	return sb.String()
}

// String renders the full diagnostic dump. The exact format is a debugging
// aid, not a compatibility contract, but it always reports every memory
// cell, every register, the program counter, the stack pointer and the full
// stack.
func (s Snapshot) String() string {
	var sb strings.Builder
	sb.WriteString("=== MEMORY ===\n")
	sb.WriteString(s.MemoryDump())
	sb.WriteString("\n=== REGISTERS ===\n")
	sb.WriteString(s.RegisterDump())
	sb.WriteString("\n=== CPU STATE ===\n")
	sb.WriteString(s.StateDump())
	return sb.String()
}
