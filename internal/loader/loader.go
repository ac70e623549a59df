// Package loader handles program image file loading operations.
package loader

import (
	"fmt"
	"os"

	"github.com/h-arry-smith/flake-8/internal/memory"
	"github.com/retroenv/retrogolib/log"
)

// Loader reads program image files from disk. A program image is an opaque
// byte sequence that is copied verbatim into interpreter memory, there is
// no header or container format.
type Loader struct {
	logger *log.Logger
}

// New creates a new program image loader.
func New(logger *log.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// ReadROM reads the program image file and validates that it fits into
// memory at the given load offset. I/O failures are reported here, before
// the interpreter core is ever involved.
func (l *Loader) ReadROM(path string, offset uint16) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	if available := memory.Size - int(offset); len(data) > available {
		return nil, fmt.Errorf("ROM size of %d bytes exceeds the %d bytes available at offset %d",
			len(data), available, offset)
	}

	l.logger.Debug("Bytes loaded",
		log.String("file", path),
		log.Int("bytes", len(data)))
	return data, nil
}
