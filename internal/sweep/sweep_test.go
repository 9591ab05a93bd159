package sweep

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unbounded-ca/pkg/eca"
)

func allRules() []eca.Rule {
	rules := make([]eca.Rule, 256)
	for i := range rules {
		rules[i] = eca.Rule(i)
	}
	return rules
}

func TestRunAllRulesAgree(t *testing.T) {
	report, err := Run(context.Background(), Options{
		Rules:       allRules(),
		Seed:        7,
		Windows:     4,
		MaxWidth:    10,
		Generations: 32,
		Workers:     4,
	})
	require.NoError(t, err)
	assert.True(t, report.OK(), "mismatches: %v", report.Mismatches)
	assert.Equal(t, 256*4, report.Cases)
	assert.Equal(t, 256*4*32, report.Steps)
	assert.NotEqual(t, uuid.Nil, report.ID)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Options{Rules: allRules(), Windows: 2, MaxWidth: 4, Generations: 4, Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWindowsDeterministic(t *testing.T) {
	a := Windows(eca.Rule(30), 3, 5, 8)
	b := Windows(eca.Rule(30), 3, 5, 8)
	require.Len(t, a, 5)
	assert.Equal(t, a, b)
	assert.Equal(t, eca.SingleActive(), a[0])
	for _, w := range a {
		assert.NoError(t, w.Validate())
		assert.LessOrEqual(t, len(w.States), 8)
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		name       string
		states     []bool
		center     int
		want       []bool
		wantCenter int
	}{
		{"both ends", []bool{false, true, false, true, false}, 2, []bool{true, false, true}, 1},
		{"stops at center", []bool{false, false, false}, 1, []bool{false}, 0},
		{"nothing", []bool{true, false, true}, 1, []bool{true, false, true}, 1},
		{"center at edge", []bool{false, false, true}, 0, []bool{false, false, true}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, c := Trim(tt.states, tt.center)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCenter, c)
		})
	}
}

func TestMismatchString(t *testing.T) {
	m := Mismatch{Rule: 30, Window: "1", Engine: "tape", Generation: 2, Want: "11001", WantCenter: 2, Got: "11101", GotCenter: 2}
	assert.Equal(t, "rule 30 window 1 tape gen 2: want 11001@2 got 11101@2", m.String())
}
