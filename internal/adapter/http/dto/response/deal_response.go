package response

import (
	"dealdesk/internal/domain/entities"
	"dealdesk/internal/domain/finance"
)

// DealResponse is the stored deal plus the figures the workspace header shows.
type DealResponse struct {
	entities.Deal
	ComputedAdjustedEbitda float64 `json:"computedAdjustedEbitda"`
	DeltaPercent           float64 `json:"deltaPercent"`
}

func FromDeal(d entities.Deal) DealResponse {
	return DealResponse{
		Deal:                   d,
		ComputedAdjustedEbitda: finance.ComputeAdjustedEbitda(d.ReportedEbitda, d.Addbacks, d.Deductions),
		DeltaPercent:           finance.DeltaPercent(d.ReportedEbitda, d.AdjustedEbitda),
	}
}

// DealSummaryResponse is one row of the deal list.
type DealSummaryResponse struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Industry       string                  `json:"industry"`
	Location       string                  `json:"location"`
	Status         entities.DealStatus     `json:"status"`
	ConvictionLean entities.ConvictionLean `json:"convictionLean"`
	AdjustedEbitda float64                 `json:"adjustedEbitda"`
	LastUpdated    string                  `json:"lastUpdated"`
}

func FromDeals(deals []entities.Deal) []DealSummaryResponse {
	out := make([]DealSummaryResponse, 0, len(deals))
	for _, d := range deals {
		out = append(out, DealSummaryResponse{
			ID:             d.ID,
			Name:           d.Name,
			Industry:       d.Industry,
			Location:       d.Location,
			Status:         d.Status,
			ConvictionLean: d.ConvictionLean,
			AdjustedEbitda: d.AdjustedEbitda,
			LastUpdated:    d.LastUpdated.Format(timeLayout),
		})
	}
	return out
}

// AnalysisResponse adds display strings to the analysis figures.
type AnalysisResponse struct {
	finance.Analysis
	Display AnalysisDisplay `json:"display"`
}

type AnalysisDisplay struct {
	PurchasePrice       string `json:"purchasePrice"`
	Multiple            string `json:"multiple"`
	EffectiveEbitda     string `json:"effectiveEbitda"`
	DSCR                string `json:"dscr"`
	FinanceabilityLabel string `json:"financeabilityLabel"`
	DeltaPercent        string `json:"deltaPercent"`
}

func FromAnalysis(a finance.Analysis) AnalysisResponse {
	return AnalysisResponse{
		Analysis: a,
		Display: AnalysisDisplay{
			PurchasePrice:       finance.FormatCurrency(a.Financing.PurchasePrice),
			Multiple:            finance.FormatMultiple(a.Multiple),
			EffectiveEbitda:     finance.FormatCurrency(a.EffectiveEbitda),
			DSCR:                finance.FormatDSCR(a.Financing.DSCR),
			FinanceabilityLabel: a.Financing.Financeability.Label(),
			DeltaPercent:        finance.FormatPercent(a.DeltaPercent, 1),
		},
	}
}

type CalculatorResponse struct {
	finance.FinancingResult
	FinanceabilityLabel string `json:"financeabilityLabel"`
}

func FromFinancing(r finance.FinancingResult) CalculatorResponse {
	return CalculatorResponse{FinancingResult: r, FinanceabilityLabel: r.Financeability.Label()}
}

type LOIResponse struct {
	finance.LOIDraft
	Text string `json:"text"`
}

func FromLOI(l finance.LOIDraft) LOIResponse {
	return LOIResponse{LOIDraft: l, Text: l.Text()}
}

type ImportResponse struct {
	Imported int `json:"imported"`
}
