package entities

import "time"

// ChangeLogEntry records one user edit of a tracked field. Entries are
// append-only and never edited once logged.
type ChangeLogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Field     string    `json:"field"`
	OldValue  float64   `json:"oldValue"`
	NewValue  float64   `json:"newValue"`
	Reason    string    `json:"reason,omitempty"`
}

// Tracked field labels, as shown in the assumption tracker.
const (
	FieldRevenue               = "Revenue"
	FieldReportedEbitda        = "Reported EBITDA"
	FieldAdjustedEbitda        = "Adjusted EBITDA"
	FieldDownPaymentPercent    = "Down payment %"
	FieldSellerNotePercent     = "Seller note %"
	FieldInterestRate          = "Interest rate %"
	FieldAmortizationYears     = "Amortization (years)"
	FieldPurchasePriceOverride = "Purchase price override"
)

// ChangeSet collects entries for a single form submission so every entry
// shares the same timestamp and reason.
type ChangeSet struct {
	at      time.Time
	reason  string
	entries []ChangeLogEntry
}

func NewChangeSet(at time.Time, reason string) *ChangeSet {
	return &ChangeSet{at: at.UTC(), reason: reason}
}

// Track appends an entry when oldValue and newValue differ.
func (c *ChangeSet) Track(field string, oldValue, newValue float64) {
	if oldValue == newValue {
		return
	}
	c.entries = append(c.entries, ChangeLogEntry{
		Timestamp: c.at,
		Field:     field,
		OldValue:  oldValue,
		NewValue:  newValue,
		Reason:    c.reason,
	})
}

// AppendTo returns log with the collected entries appended. The input slice
// is never written to.
func (c *ChangeSet) AppendTo(log []ChangeLogEntry) []ChangeLogEntry {
	out := make([]ChangeLogEntry, 0, len(log)+len(c.entries))
	out = append(out, log...)
	return append(out, c.entries...)
}
