package chip8

// retWord is the full instruction word of RET, the only member of the 0x0
// family that operates on machine state alone. The remaining 0x0 words
// (SYS, CLS) target interpreter-native routines or the display and are not
// part of this core.
const retWord = 0x00EE

// opcodeHandler executes one decoded instruction against the machine state
// and returns the address of the next instruction to execute. Returning the
// next program counter explicitly keeps control flow instructions from
// fighting an implicit increment.
type opcodeHandler func(*CPU, Decoded) (uint16, error)

// opcodeHandlers dispatches on the opcode family, the top nibble of the
// instruction word. Families absent from the table halt the CPU as
// unrecognized. New instruction families extend the table with a handler
// using the same decoded field primitives.
var opcodeHandlers = map[uint8]opcodeHandler{
	0x0: execSystem,
	0x1: execJump,
	0x2: execCall,
	0x6: execLoadRegister,
	0xA: execLoadAddress,
}

// 00EE - RET: sets the program counter to the address on top of the stack.
func execSystem(c *CPU, ins Decoded) (uint16, error) {
	if ins.Word != retWord {
		return 0, &UnknownOpcodeError{Word: ins.Word, Address: c.pc}
	}
	if c.sp == 0 {
		return 0, &StackUnderflowError{Address: c.pc}
	}

	c.sp--
	return c.stack[c.sp], nil
}

// 1nnn - JP addr: sets the program counter to nnn.
func execJump(_ *CPU, ins Decoded) (uint16, error) {
	return ins.NNN, nil
}

// 2nnn - CALL addr: puts the address of the following instruction on top of
// the stack, then sets the program counter to nnn.
func execCall(c *CPU, ins Decoded) (uint16, error) {
	if c.sp >= stackDepth {
		return 0, &StackOverflowError{Address: c.pc}
	}

	c.stack[c.sp] = c.pc + 2
	c.sp++
	return ins.NNN, nil
}

// 6xkk - LD Vx, byte: puts the value kk into register Vx.
func execLoadRegister(c *CPU, ins Decoded) (uint16, error) {
	if err := c.regs.Set(ins.X, ins.KK); err != nil {
		return 0, err
	}
	return c.pc + 2, nil
}

// Annn - LD I, addr: the value of register I is set to nnn.
func execLoadAddress(c *CPU, ins Decoded) (uint16, error) {
	c.regs.SetI(ins.NNN)
	return c.pc + 2, nil
}
