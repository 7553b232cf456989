package domain

import (
	"github.com/shopspring/decimal"
)

// YearsRange holds the earliest and latest years for which items exist.
type YearsRange struct {
	MinYear int `json:"minYear"`
	MaxYear int `json:"maxYear"`
}

// MonthlyOverview summarizes a single month of bookkeeping.
type MonthlyOverview struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`   // sum of INCOME item amounts
	TotalExpenses decimal.Decimal `json:"totalExpenses"` // sum of PAID item amounts
	Savings       decimal.Decimal `json:"savings"`       // income minus expenses
}
