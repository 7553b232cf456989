package services

import (
	"context"

	"github.com/granabox/granabox-api/internal/core/domain"
)

// ReportingService defines operations for generating aggregate reports
type ReportingService interface {
	// YearsRange reports the earliest and latest years for which items exist,
	// falling back to the current year when the store is empty.
	YearsRange(ctx context.Context) (domain.YearsRange, error)

	// MonthlyOverview summarizes income, expenses and savings for a month.
	MonthlyOverview(ctx context.Context, year int, month int) (domain.MonthlyOverview, error)
}
