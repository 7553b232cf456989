package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemKind classifies a financial item and governs due-status computation.
type ItemKind string

const (
	Payable ItemKind = "PAYABLE" // open expense, due status applies
	Paid    ItemKind = "PAID"    // settled expense
	Income  ItemKind = "INCOME"  // income entries never carry a due status
)

// Recurrence marks whether an item is a one-off entry or part of a monthly series.
type Recurrence string

const (
	Once    Recurrence = "ONCE"
	Monthly Recurrence = "MONTHLY"
)

// Item represents a dated financial entry within the core domain.
// This is the primary representation used by services.
type Item struct {
	ItemID string `json:"itemID"` // Primary Key (UUID)

	// SeriesID groups all items that belong to one recurring series; nil for one-off items.
	SeriesID *string `json:"seriesID,omitempty"`
	// SeriesOffset is the number of calendar months between the series start
	// and this item. Set at creation and preserved under edits, so date
	// arithmetic never depends on storage-assigned identifiers.
	SeriesOffset *int `json:"seriesOffset,omitempty"`
	// SequenceRemaining counts down the remaining occurrences of the series
	// (N for the first item, 1 for the last).
	SequenceRemaining *int `json:"sequenceRemaining,omitempty"`

	Recurrence  Recurrence      `json:"recurrence"`
	Kind        ItemKind        `json:"kind"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`    // always > 0
	DueDate     time.Time       `json:"dueDate"`   // calendar date, no time component
	DueStatus   string          `json:"dueStatus"`  // derived, cached at last write
	RecordedAt  time.Time       `json:"recordedAt"` // instant of last create/modify, UTC
	LabelID     string          `json:"labelID"`    // FK -> labels.label_id (NON-NULL)
}

// ValidKind reports whether k is one of the closed set of item kinds.
func ValidKind(k ItemKind) bool {
	switch k {
	case Payable, Paid, Income:
		return true
	}
	return false
}

// ValidRecurrence reports whether r is a known recurrence value.
func ValidRecurrence(r Recurrence) bool {
	return r == Once || r == Monthly
}
