package eca

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextRule30(t *testing.T) {
	r := MustRule(30)
	cur := []bool{true}
	want := []string{"111", "11001", "1101111", "110010001"}
	for _, w := range want {
		var grewL, grewR bool
		cur, grewL, grewR = Next(r, cur)
		assert.True(t, grewL)
		assert.True(t, grewR)
		assert.Equal(t, w, FormatStates(cur, "1", "0"))
	}
}

func TestNextDoesNotAlias(t *testing.T) {
	cur := []bool{false, true, false}
	next, _, _ := Next(MustRule(255), cur)
	next[1] = false
	assert.Equal(t, []bool{false, true, false}, cur)
}

func TestNextEmpty(t *testing.T) {
	next, l, r := Next(MustRule(255), nil)
	assert.Empty(t, next)
	assert.False(t, l)
	assert.False(t, r)
}

func TestMakePlanReusesBuffer(t *testing.T) {
	buf := make([]bool, 0, 8)
	p := makePlan(MustRule(204), []bool{true, false, true}, buf)
	assert.Equal(t, []bool{true, false, true}, p.next)
	assert.Same(t, &buf[:1][0], &p.next[0])
	assert.False(t, p.growLeft)
	assert.False(t, p.growRight)
}
