// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/h-arry-smith/flake-8/internal/chip8"
	"github.com/h-arry-smith/flake-8/internal/memory"
	"github.com/h-arry-smith/flake-8/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	return parseFlags(os.Args)
}

func parseFlags(args []string) (options.Program, error) {
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(args[1:])
	positional := flags.Args()
	if err != nil || len(positional) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(positional); err != nil {
		return opts, err
	}
	if err := validateOffset(opts.Offset); err != nil {
		return opts, err
	}

	opts.Input = positional[0]
	return opts, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.UintVar(&opts.Offset, "offset", chip8.ProgramStart,
		"memory offset to load the program at (most programs use 512, ETI 660 programs use 1536)")
	flags.BoolVar(&opts.Dump, "dump", false, "print a memory, register and CPU state dump after the run")
	flags.BoolVar(&opts.Monitor, "monitor", false, "start the interactive monitor instead of running to halt")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.Quiet, "q", false, "quiet mode")
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: flake-8 [options] <ROM file to execute>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("potential argument %s found after the ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// validateOffset rejects load offsets the interpreter core cannot execute from
func validateOffset(offset uint) error {
	if offset%2 != 0 || offset >= memory.Size {
		return &UsageError{
			msg: fmt.Sprintf("load offset %d must be even and below %d", offset, memory.Size),
		}
	}
	return nil
}
