package entities

// ExtractionResult is what a model read out of a CIM. Every field is
// optional. A nil slice means the model did not report the list; an empty
// one means it reported none. Both marshal as given (null or []) so a
// reviewed result can be sent back unchanged.
type ExtractionResult struct {
	Revenue        *float64         `json:"revenue,omitempty"`
	ReportedEbitda *float64         `json:"reportedEbitda,omitempty"`
	Addbacks       []AdjustmentLine `json:"addbacks"`
	Deductions     []AdjustmentLine `json:"deductions"`
	DealName       string           `json:"dealName,omitempty"`
	Industry       string           `json:"industry,omitempty"`
}

// IsEmpty reports whether nothing usable was extracted.
func (r ExtractionResult) IsEmpty() bool {
	return r.Revenue == nil && r.ReportedEbitda == nil &&
		r.Addbacks == nil && r.Deductions == nil &&
		r.DealName == "" && r.Industry == ""
}
