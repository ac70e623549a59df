// Package runner orchestrates loading and executing a program image.
package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/h-arry-smith/flake-8/internal/chip8"
	"github.com/h-arry-smith/flake-8/internal/loader"
	"github.com/h-arry-smith/flake-8/internal/monitor"
	"github.com/h-arry-smith/flake-8/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// PrintBanner prints the application banner and version
func PrintBanner(opts options.Program, version, commit, date string) {
	if !opts.Quiet {
		fmt.Println("[------------------------------------]")
		fmt.Println("[ flake-8 - a CHIP-8 interpreter     ]")
		fmt.Println("[------------------------------------]")
		fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
	}
}

// Run loads the ROM file and executes it until the interpreter halts, the
// context is cancelled, or a machine invariant is violated. With the
// monitor option set it hands the stepping over to the interactive monitor
// instead of running to halt.
func Run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	rom, err := loader.New(logger).ReadROM(opts.Input, uint16(opts.Offset))
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	cpu := chip8.New(logger, chip8.WithProgramStart(uint16(opts.Offset)))
	if err := cpu.LoadROM(rom); err != nil {
		return fmt.Errorf("initializing interpreter: %w", err)
	}

	if opts.Monitor {
		if err := monitor.New(logger, cpu).Run(); err != nil {
			return fmt.Errorf("running monitor: %w", err)
		}
		return nil
	}

	if err := run(ctx, logger, cpu); err != nil {
		return err
	}

	if opts.Dump {
		fmt.Print(cpu.Snapshot())
	}
	return nil
}

// run executes until halt. An unrecognized instruction is the expected way
// for a program to end and is reported, not returned as a failure.
func run(ctx context.Context, logger *log.Logger, cpu *chip8.CPU) error {
	err := cpu.Run(ctx)

	var unknownErr *chip8.UnknownOpcodeError
	switch {
	case err == nil:
		return nil

	case errors.As(err, &unknownErr):
		logger.Info("Interpreter halted on unrecognized instruction",
			log.Hex("opcode", unknownErr.Word),
			log.Hex("address", unknownErr.Address))
		return nil

	default:
		return fmt.Errorf("executing program: %w", err)
	}
}
