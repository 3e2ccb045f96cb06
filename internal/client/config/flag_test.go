package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd", "-a", "https://api.example", "-d", "s.db", "-t", "3", "-p", "20", "-l", "debug"},
			expected: &Config{APIBaseURL: "https://api.example", DBPath: "s.db", RequestTimeout: 3 * time.Second, PageSize: 20, LogLevel: "debug"}},
		{name: "unknown flags ignored", args: []string{"cmd", "-x", "1", "-a", "https://api.example", "-p", "1"},
			expected: &Config{APIBaseURL: "https://api.example", PageSize: 1}},
		{name: "incorrect timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true},
		{name: "zero page size", args: []string{"cmd", "-p", "0"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{PageSize: 10}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
