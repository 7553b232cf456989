package pgsql

import (
	portsrepo "github.com/granabox/granabox-api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	itemRepo := newPgxItemRepository(dbPool)
	labelRepo := newPgxLabelRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ItemRepo:      itemRepo,
		LabelRepo:     labelRepo,
		ReportingRepo: reportingRepo,
	}
}
