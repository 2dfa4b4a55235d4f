package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *Config
	}{
		{
			name:     "both flags",
			args:     []string{"-a", "http://example:9000", "-r", "7"},
			expected: &Config{ServerURL: "http://example:9000", RequestTimeout: 7 * time.Second},
		},
		{
			name:     "no flags keep values",
			args:     []string{"-c", "cfg.json"},
			expected: &Config{ServerURL: "http://start", RequestTimeout: 1500 * time.Millisecond},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{ServerURL: "http://start", RequestTimeout: 1500 * time.Millisecond}
			require.NoError(t, parseFlags(cfg, tt.args))
			if diff := cmp.Diff(tt.expected, cfg); diff != "" {
				t.Errorf("Config mismatch (-want +got):\n%s", diff)
			}
		})
	}

	require.Error(t, parseFlags(&Config{}, []string{"-r", "abc"}))
}
