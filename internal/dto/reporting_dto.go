package dto

import (
	"github.com/granabox/granabox-api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// YearsRangeResponse reports the span of years covered by stored items.
type YearsRangeResponse struct {
	MinYear int `json:"minYear"`
	MaxYear int `json:"maxYear"`
}

// OverviewResponse summarizes one month of bookkeeping.
type OverviewResponse struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Savings       decimal.Decimal `json:"savings"`
}

// ToYearsRangeResponse converts a domain.YearsRange to YearsRangeResponse DTO
func ToYearsRangeResponse(r domain.YearsRange) YearsRangeResponse {
	return YearsRangeResponse{MinYear: r.MinYear, MaxYear: r.MaxYear}
}

// ToOverviewResponse converts a domain.MonthlyOverview to OverviewResponse DTO
func ToOverviewResponse(o domain.MonthlyOverview) OverviewResponse {
	return OverviewResponse{
		TotalIncome:   o.TotalIncome,
		TotalExpenses: o.TotalExpenses,
		Savings:       o.Savings,
	}
}
