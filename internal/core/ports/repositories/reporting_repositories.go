package repositories

import (
	"context"

	"github.com/granabox/granabox-api/internal/core/domain"
)

// ReportingRepository defines operations for retrieving aggregate report data
type ReportingRepository interface {
	// GetDueDateYearsRange retrieves the earliest and latest years over item
	// due dates. found is false when no items exist.
	GetDueDateYearsRange(ctx context.Context) (yearsRange domain.YearsRange, found bool, err error)

	// GetMonthlyOverview retrieves income/expense totals for a given year and month.
	GetMonthlyOverview(ctx context.Context, year int, month int) (domain.MonthlyOverview, error)
}
