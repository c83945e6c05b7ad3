// Package finance holds the pure calculations behind a deal: EBITDA
// normalization and the SBA-style acquisition financing model.
//
// Nothing in this package performs I/O or keeps state. Every function is
// total over finite inputs and returns a value instead of an error, since
// callers feed it half-typed form values.
package finance

import (
	"math"

	"dealdesk/internal/domain/entities"
)

// DefaultDeltaWarningPercent is the reported-vs-adjusted EBITDA divergence
// above which a deal is flagged for review.
const DefaultDeltaWarningPercent = 30.0

// SumLines adds up the amounts of lines. Deductions are already negative.
func SumLines(lines []entities.AdjustmentLine) float64 {
	total := 0.0
	for _, l := range lines {
		total += l.Amount
	}
	return total
}

// ComputeAdjustedEbitda is reported EBITDA plus every addback and deduction.
func ComputeAdjustedEbitda(reported float64, addbacks, deductions []entities.AdjustmentLine) float64 {
	return reported + SumLines(addbacks) + SumLines(deductions)
}

// DeltaPercent is the signed change from reported to adjusted, relative to
// the magnitude of reported. A zero base reports 100 for any non-zero
// adjusted figure.
func DeltaPercent(reported, adjusted float64) float64 {
	if reported == 0 {
		if adjusted != 0 {
			return 100
		}
		return 0
	}
	return (adjusted - reported) / math.Abs(reported) * 100
}

// IsDeltaWarning reports whether adjusted EBITDA moved away from reported by
// strictly more than thresholdPercent.
func IsDeltaWarning(reported, adjusted, thresholdPercent float64) bool {
	return math.Abs(DeltaPercent(reported, adjusted)) > thresholdPercent
}
