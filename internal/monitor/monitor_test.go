package monitor

import (
	"testing"

	"github.com/h-arry-smith/flake-8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestReportStep(t *testing.T) {
	logger := log.NewTestLogger(t)

	cpu := chip8.New(logger)
	assert.NoError(t, cpu.LoadROM([]byte{0xA1, 0x23, 0xFF, 0xFF}))
	m := New(logger, cpu)

	m.reportStep(cpu.Step())
	assert.Contains(t, m.status, "space: step")

	// the second word is unrecognized and halts the CPU
	err := cpu.Step()
	assert.Error(t, err)
	m.reportStep(err)
	assert.Contains(t, m.status, "unrecognized instruction")

	m.reportStep(cpu.Step())
	assert.Equal(t, "halted", m.status)
}

func TestRunToHaltStopsAtLimit(t *testing.T) {
	logger := log.NewTestLogger(t)

	// JP to itself never halts, the run command has to give up on its own
	cpu := chip8.New(logger)
	assert.NoError(t, cpu.LoadROM([]byte{0x12, 0x00}))
	m := New(logger, cpu)

	assert.NoError(t, m.runToHalt(nil, nil))
	assert.False(t, cpu.Halted())
}
