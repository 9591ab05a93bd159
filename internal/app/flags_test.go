package app

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-sim", "eca-tape", "-rule", "110", "-w", "128", "-pattern", "random"}))

	assert.Equal(t, "eca-tape", cfg.Sim)
	assert.Equal(t, map[string]string{
		"w": "128", "h": "256", "rule": "110", "prune": "false", "pattern": "random",
	}, cfg.SimConfig())
}

func TestSimConfigOmitsEmptyPattern(t *testing.T) {
	_, ok := NewConfig().SimConfig()["pattern"]
	assert.False(t, ok)
}
