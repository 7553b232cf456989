package services

import (
	"context"
	"fmt"
	"time"

	"github.com/granabox/granabox-api/internal/apperrors"
	"github.com/granabox/granabox-api/internal/core/domain"
	portsrepo "github.com/granabox/granabox-api/internal/core/ports/repositories"
	portssvc "github.com/granabox/granabox-api/internal/core/ports/services"
)

// reportingService implements aggregate reporting over the item store.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service instance.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// YearsRange reports the earliest and latest due-date years present in the
// store. An empty store yields the current year for both bounds.
func (s *reportingService) YearsRange(ctx context.Context) (domain.YearsRange, error) {
	yearsRange, found, err := s.reportingRepo.GetDueDateYearsRange(ctx)
	if err != nil {
		return domain.YearsRange{}, fmt.Errorf("failed to load years range: %w", err)
	}
	if !found {
		year := time.Now().UTC().Year()
		return domain.YearsRange{MinYear: year, MaxYear: year}, nil
	}
	return yearsRange, nil
}

// MonthlyOverview summarizes income, expenses and savings for a month.
func (s *reportingService) MonthlyOverview(ctx context.Context, year int, month int) (domain.MonthlyOverview, error) {
	if month < 1 || month > 12 {
		return domain.MonthlyOverview{}, fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}
	overview, err := s.reportingRepo.GetMonthlyOverview(ctx, year, month)
	if err != nil {
		return domain.MonthlyOverview{}, fmt.Errorf("failed to load overview for %d-%02d: %w", year, month, err)
	}
	return overview, nil
}
