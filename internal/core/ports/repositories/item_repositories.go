package repositories

import (
	"context"

	"github.com/granabox/granabox-api/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ItemReader defines read operations for item data
type ItemReader interface {
	// FindItemByID retrieves a specific item by its unique identifier.
	FindItemByID(ctx context.Context, itemID string) (*domain.Item, error)

	// ListItems retrieves a paginated list of items using token-based pagination.
	// It returns the items, a token for the next page, and an error.
	ListItems(ctx context.Context, limit int, nextToken *string) ([]domain.Item, *string, error)

	// FindItemsBySeriesID retrieves all items sharing a series ID, ordered by due date ascending.
	FindItemsBySeriesID(ctx context.Context, seriesID string) ([]domain.Item, error)

	// FindItemsByMonth retrieves items whose due date falls within the given
	// year and month, optionally filtered by kind.
	FindItemsByMonth(ctx context.Context, year int, month int, kind *domain.ItemKind) ([]domain.Item, error)

	// CountItemsByLabelID returns the number of items referencing a label.
	CountItemsByLabelID(ctx context.Context, labelID string) (int64, error)
}

// ItemWriter defines write operations for item data
type ItemWriter interface {
	// SaveItem persists a new item.
	SaveItem(ctx context.Context, item domain.Item) error

	// SaveItems persists a batch of items atomically: either all of them are
	// committed or none are.
	SaveItems(ctx context.Context, items []domain.Item) error

	// UpdateItem updates an existing item's details.
	UpdateItem(ctx context.Context, item domain.Item) error

	// DeleteItem removes an item.
	DeleteItem(ctx context.Context, itemID string) error
}

// ItemTransactionSupport defines item operations scoped to an open transaction.
// Series edits and deletes lock the series rows first so two concurrent
// operations on the same series cannot interleave.
type ItemTransactionSupport interface {
	// FindItemsBySeriesIDForUpdate selects a series' items ordered by due date
	// ascending and locks them for update within the transaction.
	FindItemsBySeriesIDForUpdate(ctx context.Context, tx pgx.Tx, seriesID string) ([]domain.Item, error)

	// UpdateItemsInTx updates a batch of items within a given transaction.
	UpdateItemsInTx(ctx context.Context, tx pgx.Tx, items []domain.Item) error

	// DeleteItemsInTx removes a batch of items within a given transaction.
	DeleteItemsInTx(ctx context.Context, tx pgx.Tx, itemIDs []string) error
}

// ItemRepositoryFacade combines all item-related repository interfaces
// This is a facade for clients that need access to all operations
type ItemRepositoryFacade interface {
	ItemReader
	ItemWriter
	ItemTransactionSupport
}

// ItemRepositoryWithTx extends ItemRepositoryFacade with transaction capabilities
type ItemRepositoryWithTx interface {
	ItemRepositoryFacade
	TransactionManager
}
