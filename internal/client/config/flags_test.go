package config

import (
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
		{
			name: "all flags",
			args: []string{"-a", "https://admin.example/api/v1", "-t", "2500", "-d", "/tmp/c.db", "-l", "debug"},
			expected: &Config{
				APIBaseURL:     "https://admin.example/api/v1",
				RequestTimeout: 2500 * time.Millisecond,
				DatabasePath:   "/tmp/c.db",
				LogLevel:       "debug",
			},
		},
		{
			name: "foreign flags are ignored",
			args: []string{"-c", "conf.json", "-e", "local.env", "-t=500"},
			expected: &Config{
				APIBaseURL:     "http://localhost:8080/api/v1",
				RequestTimeout: 500 * time.Millisecond,
				DatabasePath:   "data/console.db",
				LogLevel:       "info",
			},
		},
		{name: "bad timeout", args: []string{"-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withArgs(t, tt.args...)
			config := defaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
