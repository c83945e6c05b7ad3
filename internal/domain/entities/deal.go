package entities

import "time"

// DealStatus is where the deal stands in the search. Any status may be set
// at any time; there is no transition graph.

type DealStatus string

const (
	DealStatusInvestigating DealStatus = "Investigating"
	DealStatusNeedsInfo     DealStatus = "Needs Info"
	DealStatusPass          DealStatus = "Pass"
	DealStatusLOIReady      DealStatus = "LOI Ready"
)

func (s DealStatus) Valid() bool {
	switch s {
	case DealStatusInvestigating, DealStatusNeedsInfo, DealStatusPass, DealStatusLOIReady:
		return true
	}
	return false
}

// ConvictionLean is the searcher's current gut call on the deal.

type ConvictionLean string

const (
	ConvictionMoveForward ConvictionLean = "Move Forward"
	ConvictionNeedsWork   ConvictionLean = "Needs Work"
	ConvictionPass        ConvictionLean = "Pass"
)

func (c ConvictionLean) Valid() bool {
	switch c {
	case ConvictionMoveForward, ConvictionNeedsWork, ConvictionPass:
		return true
	}
	return false
}

// AdjustmentLine is one addback or deduction against reported EBITDA.
// Addbacks carry positive amounts, deductions negative ones.
type AdjustmentLine struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Deal is the unit of persistence.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Financial notes:
//   - AdjustedEbitda is either reported + addbacks + deductions or a manual
//     override; the two are never reconciled automatically.
//   - BankEbitdaOverride, when set, replaces AdjustedEbitda for pricing and
//     DSCR only.
//   - Percentages and rates are stored as percentages (10.5 means 10.5%).
type Deal struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Industry    string     `json:"industry"`
	Location    string     `json:"location"`
	Notes       string     `json:"notes"`
	Status      DealStatus `json:"status"`
	LastUpdated time.Time  `json:"lastUpdated"`

	Revenue            float64          `json:"revenue"`
	ReportedEbitda     float64          `json:"reportedEbitda"`
	AdjustedEbitda     float64          `json:"adjustedEbitda"`
	BankEbitdaOverride *float64         `json:"bankEbitdaOverride,omitempty"`
	Addbacks           []AdjustmentLine `json:"addbacks"`
	Deductions         []AdjustmentLine `json:"deductions"`

	PurchaseMultiples     []float64 `json:"purchaseMultiples"`
	PurchasePriceOverride *float64  `json:"purchasePriceOverride,omitempty"`
	DownPaymentPercent    float64   `json:"downPaymentPercent"`
	SellerNotePercent     float64   `json:"sellerNotePercent"`
	InterestRate          float64   `json:"interestRate"`
	AmortizationYears     float64   `json:"amortizationYears"`
	RealEstateIncluded    bool      `json:"realEstateIncluded"`
	RePrice               *float64  `json:"rePrice,omitempty"`
	ReTermYears           *float64  `json:"reTermYears,omitempty"`
	ReRate                *float64  `json:"reRate,omitempty"`
	OwnerCompAdjustment   float64   `json:"ownerCompAdjustment"`

	ChangeLog            []ChangeLogEntry `json:"changeLog"`
	OpenQuestions        []string         `json:"openQuestions"`
	ConvictionLean       ConvictionLean   `json:"convictionLean"`
	ConvictionConfidence *int             `json:"convictionConfidence,omitempty"`
}

const DefaultDealName = "New Deal"

// DefaultPurchaseMultiples returns a fresh copy of the 3.5x/4x/4.5x scenarios.
func DefaultPurchaseMultiples() []float64 {
	return []float64{3.5, 4.0, 4.5}
}

// NewEmptyDeal returns a deal with zeroed financials and the standard
// financing assumptions.
func NewEmptyDeal(id string, now time.Time) Deal {
	return Deal{
		ID:                 id,
		Name:               DefaultDealName,
		Status:             DealStatusInvestigating,
		LastUpdated:        now.UTC(),
		Addbacks:           []AdjustmentLine{},
		Deductions:         []AdjustmentLine{},
		PurchaseMultiples:  DefaultPurchaseMultiples(),
		DownPaymentPercent: 10,
		SellerNotePercent:  0,
		InterestRate:       10.5,
		AmortizationYears:  10,
		ChangeLog:          []ChangeLogEntry{},
		OpenQuestions:      []string{},
		ConvictionLean:     ConvictionNeedsWork,
	}
}
