package finance

import (
	"math"
	"sort"

	"dealdesk/internal/domain/entities"
)

// DefaultScenario selects the middle (4x) multiple of the standard range.
const DefaultScenario = 1

// FallbackMultiple is used when a deal has no usable multiple configured.
const FallbackMultiple = 4.0

const topAdjustmentCount = 3

// PricePoint is the purchase price at one multiple.
type PricePoint struct {
	Multiple      float64 `json:"multiple"`
	PurchasePrice float64 `json:"purchasePrice"`
}

// Analysis is the derived view of a deal snapshot. It is never persisted.
type Analysis struct {
	DealID                    string                    `json:"dealId"`
	Scenario                  int                       `json:"scenario"`
	Multiple                  float64                   `json:"multiple"`
	EffectiveEbitda           float64                   `json:"effectiveEbitda"`
	UsesBankEbitda            bool                      `json:"usesBankEbitda"`
	PurchasePriceOverridden   bool                      `json:"purchasePriceOverridden"`
	Financing                 FinancingResult           `json:"financing"`
	PriceRange                []PricePoint              `json:"priceRange"`
	ComputedAdjustedEbitda    float64                   `json:"computedAdjustedEbitda"`
	DeltaPercent              float64                   `json:"deltaPercent"`
	DeltaWarning              bool                      `json:"deltaWarning"`
	DeltaWarningThreshold     float64                   `json:"deltaWarningThreshold"`
	TopAdjustments            []entities.AdjustmentLine `json:"topAdjustments"`
	CapitalStackOverAllocated bool                      `json:"capitalStackOverAllocated"`
}

// SelectMultiple picks the scenario multiple, falling back to the middle
// scenario and then to FallbackMultiple.
func SelectMultiple(multiples []float64, scenario int) float64 {
	if scenario >= 0 && scenario < len(multiples) {
		return multiples[scenario]
	}
	if len(multiples) > DefaultScenario {
		return multiples[DefaultScenario]
	}
	return FallbackMultiple
}

// EffectiveEbitda is the figure used for pricing and DSCR: the bank
// override when present, the adjusted figure otherwise.
func EffectiveEbitda(d entities.Deal) float64 {
	if d.BankEbitdaOverride != nil {
		return *d.BankEbitdaOverride
	}
	return d.AdjustedEbitda
}

// InputsFromDeal projects a deal onto the financing model at the given
// multiple. A purchase price override supersedes the multiple.
func InputsFromDeal(d entities.Deal, multiple float64) FinancingInputs {
	ebitda := EffectiveEbitda(d)
	price := PurchasePrice(ebitda, multiple)
	if d.PurchasePriceOverride != nil {
		price = *d.PurchasePriceOverride
	}
	return FinancingInputs{
		AdjustedEbitda:      ebitda,
		PurchasePrice:       price,
		DownPaymentPercent:  d.DownPaymentPercent,
		SellerNotePercent:   d.SellerNotePercent,
		InterestRate:        d.InterestRate,
		AmortizationYears:   d.AmortizationYears,
		RealEstateIncluded:  d.RealEstateIncluded,
		RePrice:             d.RePrice,
		ReTermYears:         d.ReTermYears,
		ReRate:              d.ReRate,
		OwnerCompAdjustment: d.OwnerCompAdjustment,
	}
}

// PriceRange prices ebitda at every multiple, in the given order.
func PriceRange(ebitda float64, multiples []float64) []PricePoint {
	out := make([]PricePoint, 0, len(multiples))
	for _, m := range multiples {
		out = append(out, PricePoint{Multiple: m, PurchasePrice: PurchasePrice(ebitda, m)})
	}
	return out
}

// TopAdjustments returns up to n lines from addbacks and deductions with the
// largest absolute amounts. Ties keep addbacks first, then list order.
func TopAdjustments(addbacks, deductions []entities.AdjustmentLine, n int) []entities.AdjustmentLine {
	all := make([]entities.AdjustmentLine, 0, len(addbacks)+len(deductions))
	all = append(all, addbacks...)
	all = append(all, deductions...)
	sort.SliceStable(all, func(i, j int) bool {
		return math.Abs(all[i].Amount) > math.Abs(all[j].Amount)
	})
	if n >= 0 && len(all) > n {
		all = all[:n]
	}
	return all
}

// Analyze computes every derived figure for a deal snapshot.
func Analyze(d entities.Deal, scenario int, deltaThresholdPercent float64) Analysis {
	multiple := SelectMultiple(d.PurchaseMultiples, scenario)
	inputs := InputsFromDeal(d, multiple)

	return Analysis{
		DealID:                    d.ID,
		Scenario:                  scenario,
		Multiple:                  multiple,
		EffectiveEbitda:           inputs.AdjustedEbitda,
		UsesBankEbitda:            d.BankEbitdaOverride != nil,
		PurchasePriceOverridden:   d.PurchasePriceOverride != nil,
		Financing:                 ComputeFinancing(inputs),
		PriceRange:                PriceRange(inputs.AdjustedEbitda, d.PurchaseMultiples),
		ComputedAdjustedEbitda:    ComputeAdjustedEbitda(d.ReportedEbitda, d.Addbacks, d.Deductions),
		DeltaPercent:              DeltaPercent(d.ReportedEbitda, d.AdjustedEbitda),
		DeltaWarning:              IsDeltaWarning(d.ReportedEbitda, d.AdjustedEbitda, deltaThresholdPercent),
		DeltaWarningThreshold:     deltaThresholdPercent,
		TopAdjustments:            TopAdjustments(d.Addbacks, d.Deductions, topAdjustmentCount),
		CapitalStackOverAllocated: d.DownPaymentPercent+d.SellerNotePercent > 100,
	}
}
