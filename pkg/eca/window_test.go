package eca

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowValidate(t *testing.T) {
	tests := []struct {
		name string
		w    Window
		ok   bool
	}{
		{"single", SingleActive(), true},
		{"empty", Window{}, false},
		{"negative center", Window{States: []bool{true}, Center: -1}, false},
		{"center past end", Window{States: []bool{true, false}, Center: 2}, false},
		{"last cell", Window{States: []bool{true, false}, Center: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.w.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidState)
		})
	}
}

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("..#.#", -1)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true, false, true}, w.States)
	assert.Equal(t, 2, w.Center)

	w, err = ParseWindow("1_0*", 0)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false, true}, w.States)
	assert.Equal(t, 0, w.Center)

	_, err = ParseWindow("1x1", -1)
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = ParseWindow("", -1)
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = ParseWindow("101", 3)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestFormatStatesAndPackBits(t *testing.T) {
	states := []bool{true, false, true, true}
	assert.Equal(t, "1011", FormatStates(states, "1", "0"))
	assert.Equal(t, "# ##", FormatStates(states, "#", " "))
	assert.Equal(t, "", FormatStates(nil, "1", "0"))
	assert.Equal(t, uint64(0b1011), PackBits(states))
	assert.Equal(t, uint64(0), PackBits(nil))
}
