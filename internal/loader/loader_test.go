package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func createTempROM(t *testing.T, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.ch8")
	assert.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestReadROM(t *testing.T) {
	rom := []byte{0xA1, 0x23, 0x6B, 0x77}
	path := createTempROM(t, rom)

	data, err := New(log.NewTestLogger(t)).ReadROM(path, 0x200)

	assert.NoError(t, err)
	assert.Equal(t, rom, data)
}

func TestReadROMMissingFile(t *testing.T) {
	l := New(log.NewTestLogger(t))

	_, err := l.ReadROM(filepath.Join(t.TempDir(), "missing.ch8"), 0x200)
	assert.Error(t, err)
}

func TestReadROMSizeValidation(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		offset  uint16
		wantErr bool
	}{
		{name: "exact fit at default offset", size: 4096 - 0x200, offset: 0x200},
		{name: "one byte too large", size: 4096 - 0x200 + 1, offset: 0x200, wantErr: true},
		{name: "too large at ETI 660 offset", size: 4096 - 0x200, offset: 0x600, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createTempROM(t, make([]byte, tt.size))

			_, err := New(log.NewTestLogger(t)).ReadROM(path, tt.offset)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
