package finance

import "math"

// Financeability is the bankability tier derived from DSCR.
type Financeability string

const (
	FinanceabilityGreen  Financeability = "green"
	FinanceabilityYellow Financeability = "yellow"
	FinanceabilityRed    Financeability = "red"
)

// DSCR tier thresholds, inclusive lower bounds.
const (
	DSCRGreen  = 1.25
	DSCRYellow = 1.15
)

// Real-estate tranche defaults when the deal does not set them.
const (
	DefaultRETermYears = 25.0
	DefaultRERate      = 8.0
)

// Label is the human name shown next to the DSCR badge.
func (f Financeability) Label() string {
	switch f {
	case FinanceabilityGreen:
		return "Financeable"
	case FinanceabilityYellow:
		return "Marginal"
	default:
		return "Not financeable"
	}
}

// ClassifyDSCR maps a coverage ratio onto its tier.
func ClassifyDSCR(dscr float64) Financeability {
	switch {
	case dscr >= DSCRGreen:
		return FinanceabilityGreen
	case dscr >= DSCRYellow:
		return FinanceabilityYellow
	default:
		return FinanceabilityRed
	}
}

// FinancingInputs is the capital-structure view projected from a deal.
// Percentages and rates are percentages (10.5 means 10.5%).
type FinancingInputs struct {
	AdjustedEbitda      float64  `json:"adjustedEbitda"`
	PurchasePrice       float64  `json:"purchasePrice"`
	DownPaymentPercent  float64  `json:"downPaymentPercent"`
	SellerNotePercent   float64  `json:"sellerNotePercent"`
	InterestRate        float64  `json:"interestRate"`
	AmortizationYears   float64  `json:"amortizationYears"`
	RealEstateIncluded  bool     `json:"realEstateIncluded"`
	RePrice             *float64 `json:"rePrice,omitempty"`
	ReTermYears         *float64 `json:"reTermYears,omitempty"`
	ReRate              *float64 `json:"reRate,omitempty"`
	OwnerCompAdjustment float64  `json:"ownerCompAdjustment"`
}

// FinancingResult is always recomputed from FinancingInputs and never stored.
type FinancingResult struct {
	PurchasePrice          float64        `json:"purchasePrice"`
	EquityAmount           float64        `json:"equityAmount"`
	SellerNoteAmount       float64        `json:"sellerNoteAmount"`
	SBAAmount              float64        `json:"sbaAmount"`
	REAmount               float64        `json:"reAmount"`
	TotalAnnualDebtService float64        `json:"totalAnnualDebtService"`
	DSCR                   float64        `json:"dscr"`
	Financeability         Financeability `json:"financeability"`
}

// PurchasePrice is EBITDA times the multiple. The multiple is not validated.
func PurchasePrice(adjustedEbitda, multiple float64) float64 {
	return adjustedEbitda * multiple
}

// AnnualPayment is the level annual payment on a fully amortizing loan.
// annualRate is a fraction (0.105 for 10.5%). A non-positive term yields 0
// and a non-positive rate falls back to straight-line repayment.
func AnnualPayment(principal, annualRate, years float64) float64 {
	if years <= 0 {
		return 0
	}
	if annualRate <= 0 {
		return principal / years
	}
	// 1 - (1+r)^-n, via Log1p/Expm1 so a tiny rate does not cancel to zero.
	denom := -math.Expm1(-years * math.Log1p(annualRate))
	return principal * annualRate / denom
}

// tranche is one loan in the capital stack.
type tranche struct {
	principal float64
	rate      float64 // fraction
	years     float64
}

func (t tranche) payment() float64 {
	if t.principal <= 0 {
		return 0
	}
	return AnnualPayment(t.principal, t.rate, t.years)
}

// ComputeFinancing splits the purchase price into equity, seller note and
// senior debt, adds the optional real-estate loan, and tests the resulting
// debt service against owner-adjusted cash flow.
//
// Senior debt is the residual after equity and seller note and goes negative
// when the two percentages exceed 100; a negative tranche services nothing.
// The seller note is amortized at the senior rate and term. A deal with no
// debt service reports DSCR 0.
func ComputeFinancing(in FinancingInputs) FinancingResult {
	rate := in.InterestRate / 100
	equity := in.PurchasePrice * in.DownPaymentPercent / 100
	sellerNote := in.PurchasePrice * in.SellerNotePercent / 100
	senior := in.PurchasePrice - equity - sellerNote

	reAmount := 0.0
	if in.RealEstateIncluded {
		reAmount = valueOr(in.RePrice, 0)
	}
	reRate := valueOr(in.ReRate, DefaultRERate) / 100
	reYears := valueOr(in.ReTermYears, DefaultRETermYears)

	stack := []tranche{
		{principal: senior, rate: rate, years: in.AmortizationYears},
		{principal: sellerNote, rate: rate, years: in.AmortizationYears},
		{principal: reAmount, rate: reRate, years: reYears},
	}
	debtService := 0.0
	for _, t := range stack {
		debtService += t.payment()
	}

	cashFlow := math.Max(0, in.AdjustedEbitda-in.OwnerCompAdjustment)
	dscr := 0.0
	if debtService > 0 {
		dscr = cashFlow / debtService
	}

	return FinancingResult{
		PurchasePrice:          in.PurchasePrice,
		EquityAmount:           equity,
		SellerNoteAmount:       sellerNote,
		SBAAmount:              senior,
		REAmount:               reAmount,
		TotalAnnualDebtService: debtService,
		DSCR:                   dscr,
		Financeability:         ClassifyDSCR(dscr),
	}
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
