package chip8

import "fmt"

// UnknownOpcodeError reports an instruction word that matched no dispatch
// case. It is the sole graceful halt condition of the run loop, all other
// error types indicate a malformed program or an interpreter bug.
type UnknownOpcodeError struct {
	Word    uint16 // the full instruction word that could not be dispatched
	Address uint16 // address the program counter pointed at during the fetch
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unrecognized instruction %04X at address %04X", e.Word, e.Address)
}

// StackOverflowError reports a subroutine call with no free stack slot left.
type StackOverflowError struct {
	Address uint16 // address of the call instruction
}

func (e *StackOverflowError) Error() string {
	return fmt.Sprintf("call at address %04X exceeds %d levels of nested subroutines", e.Address, stackDepth)
}

// StackUnderflowError reports a subroutine return with an empty stack.
type StackUnderflowError struct {
	Address uint16 // address of the return instruction
}

func (e *StackUnderflowError) Error() string {
	return fmt.Sprintf("return at address %04X with empty call stack", e.Address)
}

// MisalignedPCError reports a program counter that does not point at an
// even address. Instructions are 2 bytes long and the first byte of each
// instruction has to be located at an even address.
type MisalignedPCError struct {
	PC uint16
}

func (e *MisalignedPCError) Error() string {
	return fmt.Sprintf("program counter %04X is not 2-byte aligned", e.PC)
}
