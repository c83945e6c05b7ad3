package finance

import (
	"math"
	"testing"
	"testing/quick"

	"dealdesk/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func lines(amounts ...float64) []entities.AdjustmentLine {
	out := make([]entities.AdjustmentLine, 0, len(amounts))
	for _, a := range amounts {
		out = append(out, entities.AdjustmentLine{Description: "line", Amount: a})
	}
	return out
}

func TestSumLines(t *testing.T) {
	assert.Equal(t, 0.0, SumLines(nil))
	assert.Equal(t, 0.0, SumLines([]entities.AdjustmentLine{}))
	assert.Equal(t, 35000.0, SumLines(lines(50000, -20000, 5000)))
}

func TestComputeAdjustedEbitda(t *testing.T) {
	got := ComputeAdjustedEbitda(100000,
		[]entities.AdjustmentLine{{Description: "Owner salary to market", Amount: 50000}},
		[]entities.AdjustmentLine{{Description: "Non-operating income", Amount: -20000}},
	)
	assert.Equal(t, 130000.0, got)

	// Deductions are taken as stored; a positive "deduction" raises EBITDA.
	assert.Equal(t, 110000.0, ComputeAdjustedEbitda(100000, nil, lines(10000)))
	assert.Equal(t, 100000.0, ComputeAdjustedEbitda(100000, nil, nil))
}

func TestDeltaPercent(t *testing.T) {
	cases := []struct {
		name     string
		reported float64
		adjusted float64
		want     float64
	}{
		{name: "zero base, zero adjusted", reported: 0, adjusted: 0, want: 0},
		{name: "zero base, positive adjusted", reported: 0, adjusted: 1, want: 100},
		{name: "zero base, negative adjusted", reported: 0, adjusted: -5000, want: 100},
		{name: "increase", reported: 100000, adjusted: 130000, want: 30},
		{name: "decrease", reported: 100000, adjusted: 70000, want: -30},
		{name: "negative base uses magnitude", reported: -100000, adjusted: -50000, want: 50},
		{name: "unchanged", reported: 250000, adjusted: 250000, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, DeltaPercent(tc.reported, tc.adjusted), 1e-9)
		})
	}
}

func TestIsDeltaWarning_Boundary(t *testing.T) {
	// Exactly 30% is not a warning; the comparison is strict.
	assert.False(t, IsDeltaWarning(100000, 130000, DefaultDeltaWarningPercent))
	assert.False(t, IsDeltaWarning(100000, 70000, DefaultDeltaWarningPercent))
	assert.True(t, IsDeltaWarning(100000, 130001, DefaultDeltaWarningPercent))
	assert.True(t, IsDeltaWarning(100000, 69999, DefaultDeltaWarningPercent))
	assert.True(t, IsDeltaWarning(0, 1, DefaultDeltaWarningPercent))
	assert.False(t, IsDeltaWarning(0, 0, DefaultDeltaWarningPercent))
	assert.False(t, IsDeltaWarning(0, 1, 100))
	assert.True(t, IsDeltaWarning(4, 5, 20))
	assert.False(t, IsDeltaWarning(4, 5, 25))
}

func TestIsDeltaWarning_MatchesDeltaPercent(t *testing.T) {
	prop := func(r, a float64) bool {
		r, a = bounded(r, 1e9), bounded(a, 1e9)
		return IsDeltaWarning(r, a, DefaultDeltaWarningPercent) == (math.Abs(DeltaPercent(r, a)) > 30)
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Fatal(err)
	}
}

func TestSumLines_OrderIndependent(t *testing.T) {
	prop := func(a, b, c int32) bool {
		x := lines(float64(a), float64(b), float64(c))
		y := lines(float64(c), float64(a), float64(b))
		return SumLines(x) == SumLines(y)
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Fatal(err)
	}
}

// bounded folds an arbitrary quick-generated float into [-limit, limit].
func bounded(x, limit float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return math.Mod(x, limit)
}
