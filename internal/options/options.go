// Package options contains the program options.
package options

// Program options of the interpreter.
type Program struct {
	Input string // ROM file to execute

	Offset  uint // memory offset to load the program image at
	Dump    bool // print a machine state dump after the run
	Monitor bool // start the interactive monitor instead of running to halt
	Debug   bool // enable per-instruction debug logging
	Quiet   bool // only log errors
}
