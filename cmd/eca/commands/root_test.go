package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--no-color"}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunRule255(t *testing.T) {
	out, _, err := execute(t, "run", "--rule", "255", "--generations", "3", "--on", "1", "--off", "0")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "   3 1111111", lines[3])
	assert.Equal(t, "   0    1", lines[0])
}

func TestRunTapeMatchesGraph(t *testing.T) {
	graph, _, err := execute(t, "run", "--rule", "110", "--generations", "12", "--pattern", "..#.#")
	require.NoError(t, err)
	tape, _, err := execute(t, "run", "--rule", "110", "--generations", "12", "--pattern", "..#.#", "--engine", "tape")
	require.NoError(t, err)
	assert.Equal(t, graph, tape)
}

func TestRunPrune(t *testing.T) {
	out, _, err := execute(t, "run", "--rule", "1", "--generations", "3", "--prune", "--on", "1", "--off", "0")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "   3    0", lines[3])
}

func TestRunMaxCells(t *testing.T) {
	out, _, err := execute(t, "run", "--rule", "255", "--generations", "50", "--max-cells", "5")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 4)
}

func TestRunRejectsInvalidInput(t *testing.T) {
	_, _, err := execute(t, "run", "--rule", "256")
	assert.ErrorContains(t, err, "invalid rule")

	_, _, err = execute(t, "run", "--engine", "tape", "--prune")
	assert.ErrorContains(t, err, "prune requires")

	_, _, err = execute(t, "run", "--log-level", "loud")
	assert.ErrorContains(t, err, "unknown log level")
}

func TestRunUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yml")
	require.NoError(t, os.WriteFile(path, []byte("run:\n  rule: 255\n  generations: 1\n  symbols:\n    on: \"X\"\n    off: \"-\"\n"), 0644))

	out, _, err := execute(t, "--config", path, "run")
	require.NoError(t, err)
	assert.Equal(t, "   0  X\n   1 XXX\n", out)

	out, _, err = execute(t, "--config", path, "run", "--rule", "0")
	require.NoError(t, err)
	assert.Equal(t, "   0  X\n   1  -\n", out)
}

func TestCenter(t *testing.T) {
	out, _, err := execute(t, "center", "--rule", "30", "-n", "8")
	require.NoError(t, err)
	assert.Equal(t, "11011100\n", out)

	out, _, err = execute(t, "center", "--rule", "255", "-n", "4", "--int")
	require.NoError(t, err)
	assert.Equal(t, "15\n", out)

	out, _, err = execute(t, "center", "--rule", "0", "-n", "4", "--int", "--engine", "tape")
	require.NoError(t, err)
	assert.Equal(t, "8\n", out)

	out, _, err = execute(t, "center", "--rule", "0", "-n", "4", "--int", "--pattern", "0")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	_, _, err = execute(t, "center", "-n", "65", "--int")
	assert.ErrorContains(t, err, "sample width")
}

func TestVerify(t *testing.T) {
	out, _, err := execute(t, "verify", "--rules", "30,90,110,1", "--generations", "24", "--windows", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "12 cases, 288 generations")

	_, _, err = execute(t, "verify", "--workers", "0")
	assert.ErrorContains(t, err, "workers must be >= 1")
}

func TestSims(t *testing.T) {
	out, _, err := execute(t, "sims")
	require.NoError(t, err)
	assert.Equal(t, "eca-graph\neca-tape\n", out)

	out, _, err = execute(t, "sims", "--describe")
	require.NoError(t, err)
	assert.Contains(t, out, "eca-tape:")
	assert.Contains(t, out, "key: rule")
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "--log-level", "debug", "run", "--generations", "1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "run_id=")
	assert.Contains(t, stderr, "run finished")
}
