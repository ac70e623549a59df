// Package chip8 implements the CHIP-8 interpreter core: the fetch, decode
// and execute cycle together with the machine state it operates on.
//
// Reference: http://devernay.free.fr/hacks/chip8/C8TECH10.HTM
package chip8

import (
	"context"
	"errors"
	"fmt"

	"github.com/h-arry-smith/flake-8/internal/memory"
	"github.com/h-arry-smith/flake-8/internal/register"
	"github.com/retroenv/retrogolib/log"
)

const (
	// ProgramStart is the default memory address where CHIP-8 programs begin
	// execution. Most programs start at 0x200.
	ProgramStart = 0x200

	// ProgramStartETI660 is the alternate start address used by programs
	// written for the ETI 660 computer.
	ProgramStartETI660 = 0x600

	// stackDepth is the number of nested subroutine levels the machine allows.
	stackDepth = 16
)

// CPU owns the complete machine state and runs the fetch, decode and execute
// cycle. Each instance owns its state exclusively, there is no shared state
// between instances.
type CPU struct {
	logger *log.Logger

	mem  *memory.Memory
	regs *register.File

	pc    uint16
	sp    uint8
	stack [stackDepth]uint16

	programStart uint16
	halted       bool
}

// Option configures a CPU during construction.
type Option func(*CPU)

// WithProgramStart sets the address programs are loaded at and executed
// from. The default is ProgramStart.
func WithProgramStart(offset uint16) Option {
	return func(c *CPU) {
		c.programStart = offset
	}
}

// New creates a new CPU with zeroed memory, registers, stack and counters.
func New(logger *log.Logger, opts ...Option) *CPU {
	c := &CPU{
		logger:       logger,
		mem:          memory.New(),
		regs:         register.New(),
		programStart: ProgramStart,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LoadROM copies a program image into memory at the configured program start
// address and points the program counter at it.
func (c *CPU) LoadROM(data []byte) error {
	if c.programStart%2 != 0 || c.programStart >= memory.Size {
		return fmt.Errorf("invalid program start address %04X", c.programStart)
	}
	if err := c.mem.Load(c.programStart, data); err != nil {
		return fmt.Errorf("loading program image: %w", err)
	}

	c.pc = c.programStart
	c.logger.Debug("Program image loaded",
		log.Int("bytes", len(data)),
		log.Hex("start", c.programStart))
	return nil
}

// Step executes a single fetch, decode and execute cycle.
//
// The program counter invariants are checked before the fetch on every
// cycle: instruction handlers set the next program counter to arbitrary
// addresses, not just pc+2. An unrecognized instruction halts the CPU and is
// reported as *UnknownOpcodeError with the program counter left at the
// fetch address. Stepping a halted CPU is a no-op.
func (c *CPU) Step() error {
	if c.halted {
		return nil
	}

	if c.pc%2 != 0 {
		return &MisalignedPCError{PC: c.pc}
	}
	word, err := c.mem.ReadWord(c.pc)
	if err != nil {
		return fmt.Errorf("fetching instruction: %w", err)
	}

	ins := Decode(word)
	handler, ok := opcodeHandlers[ins.Family]
	if !ok {
		c.halted = true
		return &UnknownOpcodeError{Word: ins.Word, Address: c.pc}
	}

	c.logger.Debug("Executing",
		log.Hex("address", c.pc),
		log.Hex("opcode", ins.Word),
		log.String("mnemonic", ins.Mnemonic()))

	next, err := handler(c, ins)
	if err != nil {
		var unknownErr *UnknownOpcodeError
		if errors.As(err, &unknownErr) {
			c.halted = true
		}
		return err
	}

	c.pc = next
	return nil
}

// Run executes cycles until the CPU halts or the context is cancelled.
// Cancellation is only observed between cycles, a host that needs its own
// pacing can drive Step directly instead.
func (c *CPU) Run(ctx context.Context) error {
	for !c.halted {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Halted returns whether the CPU has stopped on an unrecognized instruction.
func (c *CPU) Halted() bool {
	return c.halted
}
