package request

import (
	"bytes"
	"encoding/json"
	"errors"

	"dealdesk/internal/domain/entities"
	"dealdesk/internal/domain/finance"
)

var ErrInvalidWorkspace = errors.New("workspace must be a list of deals or an object with a deals list")

// DecodeWorkspace accepts either an exported deal list or {"deals": [...]}.
func DecodeWorkspace(body []byte) ([]entities.Deal, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, ErrInvalidWorkspace
	}

	switch body[0] {
	case '[':
		var deals []entities.Deal
		if err := json.Unmarshal(body, &deals); err != nil {
			return nil, ErrInvalidWorkspace
		}
		return deals, nil
	case '{':
		var wrapped struct {
			Deals *[]entities.Deal `json:"deals"`
		}
		if err := json.Unmarshal(body, &wrapped); err != nil || wrapped.Deals == nil {
			return nil, ErrInvalidWorkspace
		}
		return *wrapped.Deals, nil
	}
	return nil, ErrInvalidWorkspace
}

// ExtractCIMRequest is the JSON form of a CIM extraction request.
type ExtractCIMRequest struct {
	Text string `json:"text"`
}

// CalculatorRequest runs the financing calculator without a stored deal.
type CalculatorRequest struct {
	AdjustedEbitda      float64  `json:"adjustedEbitda"`
	PurchasePrice       float64  `json:"purchasePrice" binding:"gte=0"`
	DownPaymentPercent  float64  `json:"downPaymentPercent" binding:"gte=0,lte=100"`
	SellerNotePercent   float64  `json:"sellerNotePercent" binding:"gte=0,lte=100"`
	InterestRate        float64  `json:"interestRate" binding:"gte=0"`
	AmortizationYears   float64  `json:"amortizationYears" binding:"gte=0"`
	RealEstateIncluded  bool     `json:"realEstateIncluded"`
	RePrice             *float64 `json:"rePrice"`
	ReTermYears         *float64 `json:"reTermYears"`
	ReRate              *float64 `json:"reRate"`
	OwnerCompAdjustment float64  `json:"ownerCompAdjustment"`
}

func (r CalculatorRequest) ToInputs() (finance.FinancingInputs, error) {
	if !finite(r.AdjustedEbitda, r.PurchasePrice, r.OwnerCompAdjustment) || !finitePtr(r.RePrice, r.ReTermYears, r.ReRate) {
		return finance.FinancingInputs{}, ErrInvalidAmount
	}
	return finance.FinancingInputs{
		AdjustedEbitda:      r.AdjustedEbitda,
		PurchasePrice:       r.PurchasePrice,
		DownPaymentPercent:  r.DownPaymentPercent,
		SellerNotePercent:   r.SellerNotePercent,
		InterestRate:        r.InterestRate,
		AmortizationYears:   r.AmortizationYears,
		RealEstateIncluded:  r.RealEstateIncluded,
		RePrice:             r.RePrice,
		ReTermYears:         r.ReTermYears,
		ReRate:              r.ReRate,
		OwnerCompAdjustment: r.OwnerCompAdjustment,
	}, nil
}
