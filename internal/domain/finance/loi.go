package finance

import (
	"fmt"
	"strings"

	"dealdesk/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const loiPlaceholder = "—"

// LOITerm is one line of the letter-of-intent term sheet.
type LOITerm struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// LOIDraft holds the headline terms to paste into an LOI template.
type LOIDraft struct {
	DealID    string          `json:"dealId"`
	Terms     []LOITerm       `json:"terms"`
	Financing FinancingResult `json:"financing"`
}

// Text renders the draft as "Label: value" lines.
func (l LOIDraft) Text() string {
	var b strings.Builder
	for _, t := range l.Terms {
		fmt.Fprintf(&b, "%s: %s\n", t.Label, t.Value)
	}
	return b.String()
}

// DraftLOI builds the term sheet for the chosen scenario. The seller note
// line only appears when the deal carries one.
func DraftLOI(d entities.Deal, scenario int) LOIDraft {
	multiple := SelectMultiple(d.PurchaseMultiples, scenario)
	inputs := InputsFromDeal(d, multiple)
	res := ComputeFinancing(inputs)

	terms := []LOITerm{
		{Label: "Deal name", Value: orPlaceholder(d.Name)},
		{Label: "Industry", Value: orPlaceholder(d.Industry)},
		{Label: "Location", Value: orPlaceholder(d.Location)},
		{Label: "Purchase price", Value: FormatCurrency(res.PurchasePrice)},
		{Label: "Multiple on owner's cash flow (Adjusted EBITDA)", Value: FormatMultiple(multiple)},
		{Label: "Owner's cash flow (Adjusted EBITDA)", Value: FormatCurrency(inputs.AdjustedEbitda)},
		{Label: "Equity (down payment)", Value: fmt.Sprintf("%s (%s)", FormatCurrency(res.EquityAmount), trimPercent(d.DownPaymentPercent))},
	}
	if d.SellerNotePercent > 0 {
		terms = append(terms, LOITerm{
			Label: "Seller note",
			Value: fmt.Sprintf("%s (%s)", FormatCurrency(res.SellerNoteAmount), trimPercent(d.SellerNotePercent)),
		})
	}
	terms = append(terms, LOITerm{Label: "SBA loan", Value: FormatCurrency(res.SBAAmount)})
	if d.RealEstateIncluded {
		terms = append(terms, LOITerm{Label: "Real estate loan", Value: FormatCurrency(res.REAmount)})
	}

	return LOIDraft{DealID: d.ID, Terms: terms, Financing: res}
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return loiPlaceholder
	}
	return s
}

// trimPercent renders 10 as "10%" and 12.5 as "12.5%".
func trimPercent(p float64) string {
	return decimal.NewFromFloat(p).String() + "%"
}
