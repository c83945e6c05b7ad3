package request

import (
	"errors"
	"math"
	"strings"

	"dealdesk/internal/domain/entities"
	"dealdesk/internal/usecase"
)

var (
	ErrInvalidAmount   = errors.New("amounts must be finite numbers")
	ErrInvalidMultiple = errors.New("purchase multiples must be positive")
	ErrInvalidPercent  = errors.New("percentages must be between 0 and 100")
)

type CreateDealRequest struct {
	Name string `json:"name"`
}

// UpdateDetailsRequest is a partial update; omitted fields are left as they are.
type UpdateDetailsRequest struct {
	Name                 *string  `json:"name"`
	Industry             *string  `json:"industry"`
	Location             *string  `json:"location"`
	Notes                *string  `json:"notes"`
	Status               *string  `json:"status"`
	ConvictionLean       *string  `json:"convictionLean"`
	ConvictionConfidence *int     `json:"convictionConfidence"`
	OpenQuestions        []string `json:"openQuestions"`
}

func (r UpdateDetailsRequest) ToUpdate() usecase.DetailsUpdate {
	upd := usecase.DetailsUpdate{
		Name:                 r.Name,
		Industry:             r.Industry,
		Location:             r.Location,
		Notes:                r.Notes,
		ConvictionConfidence: r.ConvictionConfidence,
	}
	if r.Status != nil {
		s := entities.DealStatus(*r.Status)
		upd.Status = &s
	}
	if r.ConvictionLean != nil {
		c := entities.ConvictionLean(*r.ConvictionLean)
		upd.ConvictionLean = &c
	}
	if r.OpenQuestions != nil {
		upd.OpenQuestions = make([]string, 0, len(r.OpenQuestions))
		for _, q := range r.OpenQuestions {
			if q = strings.TrimSpace(q); q != "" {
				upd.OpenQuestions = append(upd.OpenQuestions, q)
			}
		}
	}
	return upd
}

type BaselineRequest struct {
	Revenue            float64  `json:"revenue"`
	ReportedEbitda     float64  `json:"reportedEbitda"`
	AdjustedEbitda     *float64 `json:"adjustedEbitda"`
	BankEbitdaOverride *float64 `json:"bankEbitdaOverride"`
	Reason             string   `json:"reason"`
}

func (r BaselineRequest) ToUpdate() (usecase.BaselineUpdate, error) {
	if !finite(r.Revenue, r.ReportedEbitda) || !finitePtr(r.AdjustedEbitda, r.BankEbitdaOverride) {
		return usecase.BaselineUpdate{}, ErrInvalidAmount
	}
	return usecase.BaselineUpdate{
		Revenue:            r.Revenue,
		ReportedEbitda:     r.ReportedEbitda,
		AdjustedEbitda:     r.AdjustedEbitda,
		BankEbitdaOverride: r.BankEbitdaOverride,
		Reason:             strings.TrimSpace(r.Reason),
	}, nil
}

type AdjustmentLineRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// AdjustmentsRequest replaces both lists. Amounts are stored as sent:
// deductions are expected to be negative already.
type AdjustmentsRequest struct {
	Addbacks   []AdjustmentLineRequest `json:"addbacks"`
	Deductions []AdjustmentLineRequest `json:"deductions"`
}

func (r AdjustmentsRequest) ToLines() (addbacks, deductions []entities.AdjustmentLine, err error) {
	if addbacks, err = toLines(r.Addbacks); err != nil {
		return nil, nil, err
	}
	if deductions, err = toLines(r.Deductions); err != nil {
		return nil, nil, err
	}
	return addbacks, deductions, nil
}

func toLines(in []AdjustmentLineRequest) ([]entities.AdjustmentLine, error) {
	out := make([]entities.AdjustmentLine, 0, len(in))
	for _, l := range in {
		if !finite(l.Amount) {
			return nil, ErrInvalidAmount
		}
		out = append(out, entities.AdjustmentLine{Description: strings.TrimSpace(l.Description), Amount: l.Amount})
	}
	return out, nil
}

type FinancingRequest struct {
	PurchaseMultiples     []float64 `json:"purchaseMultiples"`
	PurchasePriceOverride *float64  `json:"purchasePriceOverride"`
	DownPaymentPercent    float64   `json:"downPaymentPercent"`
	SellerNotePercent     float64   `json:"sellerNotePercent"`
	InterestRate          float64   `json:"interestRate"`
	AmortizationYears     float64   `json:"amortizationYears"`
	OwnerCompAdjustment   float64   `json:"ownerCompAdjustment"`
	RealEstateIncluded    bool      `json:"realEstateIncluded"`
	RePrice               *float64  `json:"rePrice"`
	ReTermYears           *float64  `json:"reTermYears"`
	ReRate                *float64  `json:"reRate"`
	Reason                string    `json:"reason"`
}

func (r FinancingRequest) ToUpdate() (usecase.FinancingUpdate, error) {
	if !finite(r.DownPaymentPercent, r.SellerNotePercent, r.InterestRate, r.AmortizationYears, r.OwnerCompAdjustment) ||
		!finitePtr(r.PurchasePriceOverride, r.RePrice, r.ReTermYears, r.ReRate) {
		return usecase.FinancingUpdate{}, ErrInvalidAmount
	}
	for _, p := range []float64{r.DownPaymentPercent, r.SellerNotePercent} {
		if p < 0 || p > 100 {
			return usecase.FinancingUpdate{}, ErrInvalidPercent
		}
	}
	for _, m := range r.PurchaseMultiples {
		if !finite(m) || m <= 0 {
			return usecase.FinancingUpdate{}, ErrInvalidMultiple
		}
	}
	return usecase.FinancingUpdate{
		PurchaseMultiples:     r.PurchaseMultiples,
		PurchasePriceOverride: r.PurchasePriceOverride,
		DownPaymentPercent:    r.DownPaymentPercent,
		SellerNotePercent:     r.SellerNotePercent,
		InterestRate:          r.InterestRate,
		AmortizationYears:     r.AmortizationYears,
		OwnerCompAdjustment:   r.OwnerCompAdjustment,
		RealEstateIncluded:    r.RealEstateIncluded,
		RePrice:               r.RePrice,
		ReTermYears:           r.ReTermYears,
		ReRate:                r.ReRate,
		Reason:                strings.TrimSpace(r.Reason),
	}, nil
}

// ApplyExtractionRequest carries a reviewed extraction result back onto a deal.
type ApplyExtractionRequest struct {
	Result entities.ExtractionResult `json:"result"`
	Reason string                    `json:"reason"`
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func finitePtr(vs ...*float64) bool {
	for _, v := range vs {
		if v != nil && !finite(*v) {
			return false
		}
	}
	return true
}
