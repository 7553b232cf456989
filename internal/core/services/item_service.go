package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/granabox/granabox-api/internal/apperrors"
	"github.com/granabox/granabox-api/internal/core/domain"
	portsrepo "github.com/granabox/granabox-api/internal/core/ports/repositories"
	portssvc "github.com/granabox/granabox-api/internal/core/ports/services"
	"github.com/granabox/granabox-api/internal/dto"
	"github.com/granabox/granabox-api/internal/middleware"
	"github.com/granabox/granabox-api/internal/utils/duedate"
)

// itemService implements business logic for one-off item operations.
type itemService struct {
	itemRepo  portsrepo.ItemRepositoryFacade
	labelRepo portsrepo.LabelRepositoryFacade
}

// NewItemService creates a new item service instance.
func NewItemService(itemRepo portsrepo.ItemRepositoryFacade, labelRepo portsrepo.LabelRepositoryFacade) portssvc.ItemSvcFacade {
	return &itemService{
		itemRepo:  itemRepo,
		labelRepo: labelRepo,
	}
}

var _ portssvc.ItemSvcFacade = (*itemService)(nil)

// CreateItem persists a new standalone item with a freshly computed due status.
func (s *itemService) CreateItem(ctx context.Context, req dto.CreateItemRequest, loc *time.Location) (*domain.Item, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, ErrAmountNotPositive
	}

	label, err := s.labelRepo.FindLabelByID(ctx, req.LabelID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve label %s: %w", req.LabelID, err)
	}

	dueDate, err := time.Parse(dto.DateFormat, req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid due date %q", apperrors.ErrValidation, req.DueDate)
	}

	recurrence := domain.Once
	if req.Recurrence != "" {
		recurrence = req.Recurrence
	}

	now := time.Now().UTC()
	item := domain.Item{
		ItemID:      uuid.NewString(),
		Recurrence:  recurrence,
		Kind:        req.Kind,
		Description: req.Description,
		Amount:      req.Amount,
		DueDate:     dueDate,
		DueStatus:   duedate.ComputeStatus(dueDate, loc, req.Kind, now),
		RecordedAt:  now,
		LabelID:     label.LabelID,
	}

	if err := s.itemRepo.SaveItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to persist item: %w", err)
	}

	logger.Info("Item created", slog.String("item_id", item.ItemID), slog.String("kind", string(item.Kind)))
	return &item, nil
}

// GetItemByID retrieves a specific item by its unique identifier.
func (s *itemService) GetItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item %s: %w", itemID, err)
	}
	return item, nil
}

// ListItems retrieves a paginated list of items using token-based pagination.
func (s *itemService) ListItems(ctx context.Context, limit int, nextToken *string) ([]domain.Item, *string, error) {
	items, token, err := s.itemRepo.ListItems(ctx, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, token, nil
}

// ListItemsByMonth retrieves items due within a given year and month,
// optionally filtered by kind.
func (s *itemService) ListItemsByMonth(ctx context.Context, year int, month int, kind *domain.ItemKind) ([]domain.Item, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}
	items, err := s.itemRepo.FindItemsByMonth(ctx, year, month, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list items for %d-%02d: %w", year, month, err)
	}
	return items, nil
}

// UpdateItem applies the request overrides to a single item and recomputes
// its due status. Items belonging to a series are updated individually here;
// series-wide propagation is the recurrence service's job.
func (s *itemService) UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest, loc *time.Location) (*domain.Item, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount != nil && !req.Amount.IsPositive() {
		return nil, ErrAmountNotPositive
	}

	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve item %s: %w", itemID, err)
	}

	if req.LabelID != nil {
		if _, err := s.labelRepo.FindLabelByID(ctx, *req.LabelID); err != nil {
			return nil, fmt.Errorf("failed to resolve label %s: %w", *req.LabelID, err)
		}
		item.LabelID = *req.LabelID
	}
	if req.Kind != nil {
		item.Kind = *req.Kind
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Amount != nil {
		item.Amount = *req.Amount
	}
	if req.DueDate != nil {
		dueDate, err := time.Parse(dto.DateFormat, *req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid due date %q", apperrors.ErrValidation, *req.DueDate)
		}
		item.DueDate = dueDate
	}

	now := time.Now().UTC()
	item.DueStatus = duedate.ComputeStatus(item.DueDate, loc, item.Kind, now)
	item.RecordedAt = now

	if err := s.itemRepo.UpdateItem(ctx, *item); err != nil {
		return nil, fmt.Errorf("failed to update item %s: %w", itemID, err)
	}

	logger.Info("Item updated", slog.String("item_id", itemID))
	return item, nil
}

// DeleteItem removes a single item.
func (s *itemService) DeleteItem(ctx context.Context, itemID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.itemRepo.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("failed to delete item %s: %w", itemID, err)
	}

	logger.Info("Item deleted", slog.String("item_id", itemID))
	return nil
}
