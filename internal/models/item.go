package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item represents a row of the items table.
type Item struct {
	ItemID            string          `db:"item_id"`
	SeriesID          *string         `db:"series_id"`
	SeriesOffset      *int            `db:"series_offset"`
	SequenceRemaining *int            `db:"sequence_remaining"`
	Recurrence        string          `db:"recurrence"`
	Kind              string          `db:"kind"`
	Description       string          `db:"description"`
	Amount            decimal.Decimal `db:"amount"`
	DueDate           time.Time       `db:"due_date"`
	DueStatus         string          `db:"due_status"`
	RecordedAt        time.Time       `db:"recorded_at"`
	LabelID           string          `db:"label_id"`
}
