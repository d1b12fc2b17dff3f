package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags set", args: []string{"cmd", "-a", "https://alt.example.com", "-t", "20", "-i", "60", "-d", "alt.db"},
			expectPanic: false,
			expected: &Config{
				BaseURL:             "https://alt.example.com",
				RequestTimeout:      20 * time.Second,
				HealthCheckInterval: 60 * time.Second,
				SessionDBPath:       "alt.db",
			}},
		{name: "incorrect timeout value", args: []string{"cmd", "-a", "https://alt.example.com", "-t", "abc"},
			expectPanic: true, expected: &Config{}},
		{name: "incorrect interval value", args: []string{"cmd", "-i", "abc"},
			expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
