package services

import (
	"context"
	"time"

	"github.com/granabox/granabox-api/internal/core/domain"
	"github.com/granabox/granabox-api/internal/dto"
)

// ItemReaderSvc defines read operations for item data
type ItemReaderSvc interface {
	// GetItemByID retrieves a specific item by its unique identifier.
	GetItemByID(ctx context.Context, itemID string) (*domain.Item, error)

	// ListItems retrieves a paginated list of items using token-based pagination.
	ListItems(ctx context.Context, limit int, nextToken *string) ([]domain.Item, *string, error)

	// ListItemsByMonth retrieves items due within a given year and month,
	// optionally filtered by kind.
	ListItemsByMonth(ctx context.Context, year int, month int, kind *domain.ItemKind) ([]domain.Item, error)
}

// ItemWriterSvc defines write operations for item data.
// loc is the caller's timezone, threaded explicitly into every due-status
// computation; it is never read from ambient state.
type ItemWriterSvc interface {
	// CreateItem persists a new one-off item.
	CreateItem(ctx context.Context, req dto.CreateItemRequest, loc *time.Location) (*domain.Item, error)

	// UpdateItem updates a single item and recomputes its due status.
	UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest, loc *time.Location) (*domain.Item, error)

	// DeleteItem removes a single item.
	DeleteItem(ctx context.Context, itemID string) error
}

// ItemSvcFacade combines all item-related service interfaces
type ItemSvcFacade interface {
	ItemReaderSvc
	ItemWriterSvc
}
