package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/h-arry-smith/flake-8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func createTempROM(t *testing.T, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.ch8")
	assert.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestRunToHalt(t *testing.T) {
	// LD I, 0x123 then an unrecognized word, the regular way a program ends
	path := createTempROM(t, []byte{0xA1, 0x23, 0xFF, 0xFF})
	opts := options.Program{Input: path, Offset: 512}

	err := Run(context.Background(), log.NewTestLogger(t), opts)
	assert.NoError(t, err)
}

func TestRunAtAlternateOffset(t *testing.T) {
	path := createTempROM(t, []byte{0x6B, 0x77, 0xFF, 0xFF})
	opts := options.Program{Input: path, Offset: 1536}

	err := Run(context.Background(), log.NewTestLogger(t), opts)
	assert.NoError(t, err)
}

func TestRunMissingROM(t *testing.T) {
	opts := options.Program{Input: filepath.Join(t.TempDir(), "missing.ch8"), Offset: 512}

	err := Run(context.Background(), log.NewTestLogger(t), opts)
	assert.Error(t, err)
}

func TestRunInvariantViolation(t *testing.T) {
	// RET with an empty call stack is a fatal error, not a graceful halt
	path := createTempROM(t, []byte{0x00, 0xEE})
	opts := options.Program{Input: path, Offset: 512}

	err := Run(context.Background(), log.NewTestLogger(t), opts)
	assert.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	// JP to itself loops forever, only cancellation stops the run
	path := createTempROM(t, []byte{0x12, 0x00})
	opts := options.Program{Input: path, Offset: 512}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, log.NewTestLogger(t), opts)
	assert.Error(t, err)
}
