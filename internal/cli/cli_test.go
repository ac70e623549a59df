package cli

import (
	"errors"
	"testing"

	"github.com/h-arry-smith/flake-8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"prog", "test.ch8"},
			want: options.Program{Input: "test.ch8", Offset: 512},
		},
		{
			name: "alternate load offset",
			args: []string{"prog", "-offset", "1536", "test.ch8"},
			want: options.Program{Input: "test.ch8", Offset: 1536},
		},
		{
			name: "dump and debug flags",
			args: []string{"prog", "-dump", "-debug", "test.ch8"},
			want: options.Program{Input: "test.ch8", Offset: 512, Dump: true, Debug: true},
		},
		{
			name: "monitor and quiet flags",
			args: []string{"prog", "-monitor", "-q", "test.ch8"},
			want: options.Program{Input: "test.ch8", Offset: 512, Monitor: true, Quiet: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags(tt.args)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing ROM file", args: []string{"prog"}},
		{name: "flag after ROM file", args: []string{"prog", "test.ch8", "-dump"}},
		{name: "odd load offset", args: []string{"prog", "-offset", "513", "test.ch8"}},
		{name: "load offset beyond memory", args: []string{"prog", "-offset", "4096", "test.ch8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(tt.args)
			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))
		})
	}
}
