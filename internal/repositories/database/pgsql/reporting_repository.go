package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/granabox/granabox-api/internal/core/domain"
	portsrepo "github.com/granabox/granabox-api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetDueDateYearsRange retrieves the earliest and latest due-date years over
// all items. found is false when no items exist.
func (r *reportingRepository) GetDueDateYearsRange(ctx context.Context) (domain.YearsRange, bool, error) {
	query := `SELECT MIN(due_date), MAX(due_date) FROM items;`

	var minDate, maxDate *time.Time
	if err := r.Pool.QueryRow(ctx, query).Scan(&minDate, &maxDate); err != nil {
		return domain.YearsRange{}, false, fmt.Errorf("error querying due date range: %w", err)
	}

	if minDate == nil || maxDate == nil {
		return domain.YearsRange{}, false, nil
	}

	return domain.YearsRange{
		MinYear: minDate.Year(),
		MaxYear: maxDate.Year(),
	}, true, nil
}

// GetMonthlyOverview retrieves income and paid-expense totals for a month.
func (r *reportingRepository) GetMonthlyOverview(ctx context.Context, year int, month int) (domain.MonthlyOverview, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN kind = 'INCOME' THEN amount ELSE 0 END), 0) AS total_income,
			COALESCE(SUM(CASE WHEN kind = 'PAID' THEN amount ELSE 0 END), 0) AS total_expenses
		FROM items
		WHERE EXTRACT(YEAR FROM due_date) = $1
			AND EXTRACT(MONTH FROM due_date) = $2;
	`

	var totalIncome, totalExpenses decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, year, month).Scan(&totalIncome, &totalExpenses); err != nil {
		return domain.MonthlyOverview{}, fmt.Errorf("error querying overview for %d-%02d: %w", year, month, err)
	}

	return domain.MonthlyOverview{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		Savings:       totalIncome.Sub(totalExpenses),
	}, nil
}
