package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expected    *Config
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-u", "u.txt", "-p", "p.txt", "-l", "audit.txt", "-m", "5", "-v", "debug"},
			expected: &Config{UsersFile: "u.txt", PeopleFile: "p.txt", AuditFile: "audit.txt",
				MaxLoginAttempts: 5, LogLevel: "debug"},
		},
		{
			name:     "unrelated flags are ignored",
			args:     []string{"-c", "cfg.json", "-x", "-u=only.txt"},
			expected: &Config{UsersFile: "only.txt"},
		},
		{
			name:        "non numeric attempts",
			args:        []string{"-m", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg, tt.args) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
