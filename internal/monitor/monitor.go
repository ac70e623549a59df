// Package monitor implements an interactive text mode debugger that renders
// the interpreter's diagnostic snapshot and drives execution one cycle at a
// time.
package monitor

import (
	"errors"
	"fmt"

	"github.com/h-arry-smith/flake-8/internal/chip8"
	"github.com/jroimartin/gocui"
	"github.com/retroenv/retrogolib/log"
)

// runStepLimit is the maximum number of cycles executed per run command.
// It keeps the UI responsive when a program loops without halting.
const runStepLimit = 10000

// Monitor displays the machine state and binds single step and run keys.
// All stepping happens on the gui event goroutine, the CPU is only touched
// at cycle boundaries.
type Monitor struct {
	logger *log.Logger
	cpu    *chip8.CPU

	status string
}

// New creates a new monitor for the given CPU.
func New(logger *log.Logger, cpu *chip8.CPU) *Monitor {
	return &Monitor{
		logger: logger,
		cpu:    cpu,
		status: "space: step  r: run  q: quit",
	}
}

// Run takes over the terminal until the user quits.
func (m *Monitor) Run() error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return fmt.Errorf("creating gui: %w", err)
	}
	defer g.Close()

	g.SetManagerFunc(m.layout)

	if err := m.bindKeys(g); err != nil {
		return fmt.Errorf("binding keys: %w", err)
	}

	m.logger.Debug("Monitor started")

	if err := g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return fmt.Errorf("running gui loop: %w", err)
	}
	return nil
}

func (m *Monitor) bindKeys(g *gocui.Gui) error {
	if err := g.SetKeybinding("", gocui.KeySpace, gocui.ModNone, m.step); err != nil {
		return err
	}
	if err := g.SetKeybinding("", 'r', gocui.ModNone, m.runToHalt); err != nil {
		return err
	}
	if err := g.SetKeybinding("", 'q', gocui.ModNone, quit); err != nil {
		return err
	}
	return g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit)
}

// layout redraws all views from a fresh snapshot. gocui calls it after
// every event, so key handlers only mutate the CPU and the status line.
func (m *Monitor) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	snapshot := m.cpu.Snapshot()

	// up -> memory grid
	if err := m.drawView(g, "memory", 0, 0, maxX-1, maxY-9, snapshot.MemoryDump()); err != nil {
		return err
	}

	// middle -> register values
	if err := m.drawView(g, "registers", 0, maxY-8, maxX-1, maxY-5, snapshot.RegisterDump()); err != nil {
		return err
	}

	// down -> CPU state and status line
	state := snapshot.StateDump() + m.status
	return m.drawView(g, "status", 0, maxY-4, maxX-1, maxY-1, state)
}

func (m *Monitor) drawView(g *gocui.Gui, name string, x0, y0, x1, y1 int, content string) error {
	v, err := g.SetView(name, x0, y0, x1, y1)
	if err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = name
	}

	v.Clear()
	fmt.Fprint(v, content)
	return nil
}

// step executes a single cycle.
func (m *Monitor) step(_ *gocui.Gui, _ *gocui.View) error {
	m.reportStep(m.cpu.Step())
	return nil
}

// runToHalt executes cycles until the CPU halts, an invariant is violated
// or the step limit is reached.
func (m *Monitor) runToHalt(_ *gocui.Gui, _ *gocui.View) error {
	for i := 0; i < runStepLimit && !m.cpu.Halted(); i++ {
		if err := m.cpu.Step(); err != nil {
			m.reportStep(err)
			return nil
		}
	}
	m.reportStep(nil)
	return nil
}

func (m *Monitor) reportStep(err error) {
	switch {
	case err != nil:
		m.status = err.Error()
	case m.cpu.Halted():
		m.status = "halted"
	default:
		m.status = "space: step  r: run  q: quit"
	}
}

func quit(_ *gocui.Gui, _ *gocui.View) error {
	return gocui.ErrQuit
}
