package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	SetColor(false)
	m.Run()
}

func TestRowsAlignCenter(t *testing.T) {
	var buf bytes.Buffer
	rows := NewRows(&buf, "#", ".", 2)

	require.NoError(t, rows.Write(0, []bool{true}, 0))
	require.NoError(t, rows.Write(1, []bool{true, true, true}, 1))
	require.NoError(t, rows.Write(2, []bool{true, true, false, false, true}, 2))

	want := "   0   #\n" +
		"   1  ###\n" +
		"   2 ##..#\n"
	assert.Equal(t, want, buf.String())
}

func TestRowsWideSymbols(t *testing.T) {
	var buf bytes.Buffer
	rows := NewRows(&buf, "[]", "  ", 1)
	require.NoError(t, rows.Write(7, []bool{true}, 0))
	assert.Equal(t, "   7   []\n", buf.String())
}

func TestBits(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Bits(&buf, []bool{true, true, false, true}))
	assert.Equal(t, "1101\n", buf.String())
}

func TestMessages(t *testing.T) {
	var buf bytes.Buffer
	Success(&buf, "%d rules agree", 256)
	Success(&buf, "✓ done")
	Step(&buf, "sweeping %s", "all")
	Failure(&buf, "mismatch", []string{"rule 30", "gen 4"})
	assert.Equal(t, "✓ 256 rules agree\n✓ done\n→ sweeping all\nmismatch\n  rule 30\n  gen 4\n", buf.String())
}
