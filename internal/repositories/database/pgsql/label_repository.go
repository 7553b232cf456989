package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/granabox/granabox-api/internal/apperrors"
	"github.com/granabox/granabox-api/internal/core/domain"
	portsrepo "github.com/granabox/granabox-api/internal/core/ports/repositories"
	"github.com/granabox/granabox-api/internal/models"
	"github.com/granabox/granabox-api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLabelRepository struct {
	BaseRepository
}

// newPgxLabelRepository creates a new repository for label data.
func newPgxLabelRepository(pool *pgxpool.Pool) portsrepo.LabelRepositoryFacade {
	return &PgxLabelRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxLabelRepository implements portsrepo.LabelRepositoryFacade
var _ portsrepo.LabelRepositoryFacade = (*PgxLabelRepository)(nil)

// SaveLabel persists a new label. A name collision surfaces as ErrDuplicate.
func (r *PgxLabelRepository) SaveLabel(ctx context.Context, label domain.Label) error {
	m := mapping.ToModelLabel(label)
	query := `
		INSERT INTO labels (label_id, name, is_default)
		VALUES ($1, $2, $3);
	`
	_, err := r.Pool.Exec(ctx, query, m.LabelID, m.Name, m.IsDefault)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert label %s: %w", m.LabelID, err)
	}
	return nil
}

// FindLabelByID retrieves a label by its ID.
func (r *PgxLabelRepository) FindLabelByID(ctx context.Context, labelID string) (*domain.Label, error) {
	query := `SELECT label_id, name, is_default FROM labels WHERE label_id = $1;`

	var m models.Label
	err := r.Pool.QueryRow(ctx, query, labelID).Scan(&m.LabelID, &m.Name, &m.IsDefault)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find label by ID %s: %w", labelID, err)
	}

	label := mapping.ToDomainLabel(m)
	return &label, nil
}

// FindLabelByName retrieves a label by its exact name.
func (r *PgxLabelRepository) FindLabelByName(ctx context.Context, name string) (*domain.Label, error) {
	query := `SELECT label_id, name, is_default FROM labels WHERE name = $1;`

	var m models.Label
	err := r.Pool.QueryRow(ctx, query, name).Scan(&m.LabelID, &m.Name, &m.IsDefault)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find label by name %q: %w", name, err)
	}

	label := mapping.ToDomainLabel(m)
	return &label, nil
}

// ListLabels retrieves all labels ordered by name.
func (r *PgxLabelRepository) ListLabels(ctx context.Context) ([]domain.Label, error) {
	query := `SELECT label_id, name, is_default FROM labels ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query labels: %w", err)
	}
	defer rows.Close()

	labels, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Label, error) {
		var m models.Label
		err := row.Scan(&m.LabelID, &m.Name, &m.IsDefault)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan labels: %w", err)
	}

	return mapping.ToDomainLabelSlice(labels), nil
}

// UpdateLabel updates an existing label. A rename onto a taken name surfaces
// as ErrDuplicate.
func (r *PgxLabelRepository) UpdateLabel(ctx context.Context, label domain.Label) error {
	m := mapping.ToModelLabel(label)
	query := `
		UPDATE labels
		SET name = $2,
		    is_default = $3
		WHERE label_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.LabelID, m.Name, m.IsDefault)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update label %s: %w", m.LabelID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteLabel removes a label.
func (r *PgxLabelRepository) DeleteLabel(ctx context.Context, labelID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM labels WHERE label_id = $1;`, labelID)
	if err != nil {
		return fmt.Errorf("failed to delete label %s: %w", labelID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
