package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/granabox/granabox-api/internal/apperrors"
	"github.com/granabox/granabox-api/internal/core/domain"
	portsrepo "github.com/granabox/granabox-api/internal/core/ports/repositories"
	"github.com/granabox/granabox-api/internal/models"
	"github.com/granabox/granabox-api/internal/utils/mapping"
	"github.com/granabox/granabox-api/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const itemColumns = `item_id, series_id, series_offset, sequence_remaining, recurrence, kind,
	       description, amount, due_date, due_status, recorded_at, label_id`

const insertItemQuery = `
	INSERT INTO items (item_id, series_id, series_offset, sequence_remaining, recurrence, kind,
	                   description, amount, due_date, due_status, recorded_at, label_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
`

const updateItemQuery = `
	UPDATE items
	SET series_id = $2,
	    series_offset = $3,
	    sequence_remaining = $4,
	    recurrence = $5,
	    kind = $6,
	    description = $7,
	    amount = $8,
	    due_date = $9,
	    due_status = $10,
	    recorded_at = $11,
	    label_id = $12
	WHERE item_id = $1;
`

type PgxItemRepository struct {
	BaseRepository
}

// newPgxItemRepository creates a new repository for item data.
func newPgxItemRepository(pool *pgxpool.Pool) portsrepo.ItemRepositoryWithTx {
	return &PgxItemRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxItemRepository implements portsrepo.ItemRepositoryWithTx
var _ portsrepo.ItemRepositoryWithTx = (*PgxItemRepository)(nil)

// SaveItem persists a single item.
func (r *PgxItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	m := mapping.ToModelItem(item)
	_, err := r.Pool.Exec(ctx, insertItemQuery, itemArgs(m)...)
	if err != nil {
		return fmt.Errorf("failed to insert item %s: %w", m.ItemID, err)
	}
	return nil
}

// SaveItems persists a batch of items inside one database transaction: the
// whole batch commits or none of it does.
func (r *PgxItemRepository) SaveItems(ctx context.Context, items []domain.Item) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op after a successful commit

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(insertItemQuery, itemArgs(mapping.ToModelItem(item))...)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute item insert batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

// FindItemByID retrieves an item by its ID.
func (r *PgxItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE item_id = $1;`

	m, err := scanItemRow(r.Pool.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find item by ID %s: %w", itemID, err)
	}

	item := mapping.ToDomainItem(m)
	return &item, nil
}

// ListItems retrieves a page of items ordered by due date descending with
// recorded_at as the tie-breaker, using token-based keyset pagination.
func (r *PgxItemRepository) ListItems(ctx context.Context, limit int, nextToken *string) ([]domain.Item, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to determine whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + itemColumns + ` FROM items`
	orderByClause := `ORDER BY due_date DESC, recorded_at DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		lastDueDate, lastRecordedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken", apperrors.ErrValidation)
		}

		cursorClause := `WHERE (due_date, recorded_at) < ($1, $2)`
		args = append(args, lastDueDate, lastRecordedAt)

		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + orderByClause + " LIMIT $1;"
		rows, err = r.Pool.Query(ctx, query, fetchLimit)
	}

	if err != nil {
		return nil, nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	modelItems, err := collectItemRows(rows)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	results := modelItems
	if len(modelItems) > limit {
		lastItem := modelItems[limit-1]
		token := pagination.EncodeToken(lastItem.DueDate, lastItem.RecordedAt)
		nextTokenVal = &token
		results = modelItems[:limit]
	}

	return mapping.ToDomainItemSlice(results), nextTokenVal, nil
}

// FindItemsBySeriesID retrieves all items of a series ordered by due date ascending.
func (r *PgxItemRepository) FindItemsBySeriesID(ctx context.Context, seriesID string) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE series_id = $1 ORDER BY due_date ASC;`

	rows, err := r.Pool.Query(ctx, query, seriesID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for series %s: %w", seriesID, err)
	}
	defer rows.Close()

	modelItems, err := collectItemRows(rows)
	if err != nil {
		return nil, err
	}

	return mapping.ToDomainItemSlice(modelItems), nil
}

// FindItemsByMonth retrieves items whose due date falls within the given year
// and month, optionally filtered by kind.
func (r *PgxItemRepository) FindItemsByMonth(ctx context.Context, year int, month int, kind *domain.ItemKind) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items
		WHERE EXTRACT(YEAR FROM due_date) = $1 AND EXTRACT(MONTH FROM due_date) = $2`
	args := []interface{}{year, month}

	if kind != nil {
		query += ` AND kind = $3`
		args = append(args, string(*kind))
	}
	query += ` ORDER BY due_date ASC, recorded_at ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for %d-%02d: %w", year, month, err)
	}
	defer rows.Close()

	modelItems, err := collectItemRows(rows)
	if err != nil {
		return nil, err
	}

	return mapping.ToDomainItemSlice(modelItems), nil
}

// CountItemsByLabelID returns the number of items referencing a label.
func (r *PgxItemRepository) CountItemsByLabelID(ctx context.Context, labelID string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM items WHERE label_id = $1;`, labelID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count items for label %s: %w", labelID, err)
	}
	return count, nil
}

// UpdateItem updates an existing item.
func (r *PgxItemRepository) UpdateItem(ctx context.Context, item domain.Item) error {
	m := mapping.ToModelItem(item)
	cmdTag, err := r.Pool.Exec(ctx, updateItemQuery, itemArgs(m)...)
	if err != nil {
		return fmt.Errorf("failed to update item %s: %w", m.ItemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteItem removes an item.
func (r *PgxItemRepository) DeleteItem(ctx context.Context, itemID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM items WHERE item_id = $1;`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete item %s: %w", itemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindItemsBySeriesIDForUpdate selects a series' items ordered by due date
// ascending and locks the rows for the duration of the transaction, so two
// concurrent series operations cannot interleave.
func (r *PgxItemRepository) FindItemsBySeriesIDForUpdate(ctx context.Context, tx pgx.Tx, seriesID string) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE series_id = $1 ORDER BY due_date ASC FOR UPDATE;`

	rows, err := tx.Query(ctx, query, seriesID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock items for series %s: %w", seriesID, err)
	}
	defer rows.Close()

	modelItems, err := collectItemRows(rows)
	if err != nil {
		return nil, err
	}

	return mapping.ToDomainItemSlice(modelItems), nil
}

// UpdateItemsInTx updates a batch of items within the given transaction.
func (r *PgxItemRepository) UpdateItemsInTx(ctx context.Context, tx pgx.Tx, items []domain.Item) error {
	if len(items) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(updateItemQuery, itemArgs(mapping.ToModelItem(item))...)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute item update batch: %w", err)
	}
	return nil
}

// DeleteItemsInTx removes a batch of items within the given transaction.
func (r *PgxItemRepository) DeleteItemsInTx(ctx context.Context, tx pgx.Tx, itemIDs []string) error {
	if len(itemIDs) == 0 {
		return nil
	}

	_, err := tx.Exec(ctx, `DELETE FROM items WHERE item_id = ANY($1);`, itemIDs)
	if err != nil {
		return fmt.Errorf("failed to delete %d items: %w", len(itemIDs), err)
	}
	return nil
}

// itemArgs lays out a model Item in the column order shared by the insert and
// update statements.
func itemArgs(m models.Item) []interface{} {
	return []interface{}{
		m.ItemID,
		m.SeriesID,
		m.SeriesOffset,
		m.SequenceRemaining,
		m.Recurrence,
		m.Kind,
		m.Description,
		m.Amount,
		m.DueDate,
		m.DueStatus,
		m.RecordedAt,
		m.LabelID,
	}
}

type itemRowScanner interface {
	Scan(dest ...any) error
}

func scanItemRow(row itemRowScanner) (models.Item, error) {
	var m models.Item
	err := row.Scan(
		&m.ItemID,
		&m.SeriesID,
		&m.SeriesOffset,
		&m.SequenceRemaining,
		&m.Recurrence,
		&m.Kind,
		&m.Description,
		&m.Amount,
		&m.DueDate,
		&m.DueStatus,
		&m.RecordedAt,
		&m.LabelID,
	)
	return m, err
}

func collectItemRows(rows pgx.Rows) ([]models.Item, error) {
	items := []models.Item{}
	for rows.Next() {
		m, err := scanItemRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating item rows: %w", err)
	}
	return items, nil
}
