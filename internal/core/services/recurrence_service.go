package services

import (
	"context"
	"errors"
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

var (
	// ErrNotRecurring rejects series operations on items that do not belong to
	// a series. This is a validation failure, not a lookup failure.
	ErrNotRecurring = fmt.Errorf("%w: item is not part of a recurring series", apperrors.ErrValidation)

	// ErrAmountNotPositive rejects non-positive item amounts.
	ErrAmountNotPositive = fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)

	// ErrSeriesCorrupted signals a series whose items lack the offset metadata
	// every generated item carries.
	ErrSeriesCorrupted = errors.New("series items are missing offset metadata")
)

// recurrenceService manages the lifecycle of monthly recurring item series.
// A series has no stored entity of its own: it is always the derived set of
// items sharing a series ID.
type recurrenceService struct {
	itemRepo      portsrepo.ItemRepositoryWithTx
	labelRepo     portsrepo.LabelRepositoryFacade
	defaultMonths int
}

// NewRecurrenceService creates a new recurrence series service.
// defaultMonths is the occurrence count used when a creation request omits it.
func NewRecurrenceService(itemRepo portsrepo.ItemRepositoryWithTx, labelRepo portsrepo.LabelRepositoryFacade, defaultMonths int) portssvc.RecurrenceSvcFacade {
	if defaultMonths < 1 {
		defaultMonths = 12
	}
	return &recurrenceService{
		itemRepo:      itemRepo,
		labelRepo:     labelRepo,
		defaultMonths: defaultMonths,
	}
}

var _ portssvc.RecurrenceSvcFacade = (*recurrenceService)(nil)

// CreateSeries expands the request into N monthly items sharing a fresh
// series ID and persists them in one atomic batch.
func (s *recurrenceService) CreateSeries(ctx context.Context, req dto.CreateRecurrenceRequest, loc *time.Location) ([]domain.Item, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, ErrAmountNotPositive
	}

	label, err := s.labelRepo.FindLabelByID(ctx, req.LabelID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve label %s: %w", req.LabelID, err)
	}

	start, err := time.Parse(dto.DateFormat, req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid due date %q", apperrors.ErrValidation, req.DueDate)
	}

	months := s.defaultMonths
	if req.Months != nil {
		// An explicit zero is rejected at binding; it never silently means
		// "use the default".
		months = *req.Months
	}
	if months < 1 {
		return nil, fmt.Errorf("%w: months must be at least 1", apperrors.ErrValidation)
	}

	seriesID := uuid.NewString()
	now := time.Now().UTC()

	items := make([]domain.Item, 0, months)
	for i := months; i >= 1; i-- {
		offset := months - i
		remaining := i
		due := duedate.AddMonths(start, offset)

		items = append(items, domain.Item{
			ItemID:            uuid.NewString(),
			SeriesID:          &seriesID,
			SeriesOffset:      &offset,
			SequenceRemaining: &remaining,
			Recurrence:        domain.Monthly,
			Kind:              req.Kind,
			Description:       req.Description,
			Amount:            req.Amount,
			DueDate:           due,
			DueStatus:         duedate.ComputeStatus(due, loc, req.Kind, now),
			RecordedAt:        now,
			LabelID:           label.LabelID,
		})
	}

	if err := s.itemRepo.SaveItems(ctx, items); err != nil {
		return nil, fmt.Errorf("failed to persist series %s: %w", seriesID, err)
	}

	logger.Info("Recurring series created",
		slog.String("series_id", seriesID),
		slog.Int("occurrences", months),
	)
	return items, nil
}

// GetSeries retrieves all items of a series, ordered by due date ascending.
func (s *recurrenceService) GetSeries(ctx context.Context, seriesID string) ([]domain.Item, error) {
	items, err := s.itemRepo.FindItemsBySeriesID(ctx, seriesID)
	if err != nil {
		return nil, fmt.Errorf("failed to load series %s: %w", seriesID, err)
	}
	if len(items) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return items, nil
}

// EditSeries applies the request overrides to the anchor item and propagates
// the anchor's resulting label, kind, description and amount to every item of
// the series due on or after the anchor's original due date. Future due dates
// move with the anchor: each future item lands offset-difference months after
// the anchor's new due date. The whole update commits atomically.
func (s *recurrenceService) EditSeries(ctx context.Context, itemID string, req dto.EditRecurringItemRequest, loc *time.Location) ([]domain.Item, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount != nil && !req.Amount.IsPositive() {
		return nil, ErrAmountNotPositive
	}

	anchor, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve item %s: %w", itemID, err)
	}
	if anchor.SeriesID == nil {
		return nil, ErrNotRecurring
	}

	if req.LabelID != nil {
		if _, err := s.labelRepo.FindLabelByID(ctx, *req.LabelID); err != nil {
			return nil, fmt.Errorf("failed to resolve label %s: %w", *req.LabelID, err)
		}
	}

	tx, err := s.itemRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.itemRepo.Rollback(ctx, tx)

	// The locked rows are the source of truth from here on; the unlocked
	// anchor read above only served to learn the series ID.
	seriesItems, err := s.itemRepo.FindItemsBySeriesIDForUpdate(ctx, tx, *anchor.SeriesID)
	if err != nil {
		return nil, err
	}

	lockedAnchor := findItem(seriesItems, itemID)
	if lockedAnchor == nil {
		return nil, apperrors.ErrNotFound
	}
	if lockedAnchor.SeriesOffset == nil {
		return nil, ErrSeriesCorrupted
	}

	originalDue := lockedAnchor.DueDate
	newAnchorDue := originalDue
	if req.DueDate != nil {
		newAnchorDue, err = time.Parse(dto.DateFormat, *req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid due date %q", apperrors.ErrValidation, *req.DueDate)
		}
	}

	// Effective values after applying the overrides to the anchor; these
	// propagate to the whole future part of the series.
	labelID := lockedAnchor.LabelID
	if req.LabelID != nil {
		labelID = *req.LabelID
	}
	kind := lockedAnchor.Kind
	if req.Kind != nil {
		kind = *req.Kind
	}
	description := lockedAnchor.Description
	if req.Description != nil {
		description = *req.Description
	}
	amount := lockedAnchor.Amount
	if req.Amount != nil {
		amount = *req.Amount
	}

	now := time.Now().UTC()
	anchorOffset := *lockedAnchor.SeriesOffset

	updated := make([]domain.Item, 0, len(seriesItems))
	for _, item := range seriesItems {
		if item.DueDate.Before(originalDue) {
			continue
		}
		if item.SeriesOffset == nil {
			return nil, ErrSeriesCorrupted
		}

		item.LabelID = labelID
		item.Kind = kind
		item.Description = description
		item.Amount = amount
		item.DueDate = duedate.AddMonths(newAnchorDue, *item.SeriesOffset-anchorOffset)
		item.DueStatus = duedate.ComputeStatus(item.DueDate, loc, item.Kind, now)
		item.RecordedAt = now
		updated = append(updated, item)
	}

	if err := s.itemRepo.UpdateItemsInTx(ctx, tx, updated); err != nil {
		return nil, err
	}
	if err := s.itemRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Recurring series updated",
		slog.String("series_id", *anchor.SeriesID),
		slog.String("anchor_item_id", itemID),
		slog.Int("items_updated", len(updated)),
	)
	return updated, nil
}

// DeleteFuture removes every item of the series strictly after the anchor and
// renumbers the surviving countdown so the earliest item counts the survivors
// and the anchor counts 1. The whole change commits atomically.
func (s *recurrenceService) DeleteFuture(ctx context.Context, itemID string) ([]domain.Item, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	anchor, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve item %s: %w", itemID, err)
	}
	if anchor.SeriesID == nil {
		return nil, ErrNotRecurring
	}

	tx, err := s.itemRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.itemRepo.Rollback(ctx, tx)

	seriesItems, err := s.itemRepo.FindItemsBySeriesIDForUpdate(ctx, tx, *anchor.SeriesID)
	if err != nil {
		return nil, err
	}

	lockedAnchor := findItem(seriesItems, itemID)
	if lockedAnchor == nil {
		return nil, apperrors.ErrNotFound
	}
	anchorDue := lockedAnchor.DueDate

	deleteIDs := make([]string, 0, len(seriesItems))
	survivors := make([]domain.Item, 0, len(seriesItems))
	for _, item := range seriesItems {
		if item.DueDate.After(anchorDue) {
			deleteIDs = append(deleteIDs, item.ItemID)
		} else {
			survivors = append(survivors, item)
		}
	}

	// seriesItems is ordered by due date ascending, so survivors already are:
	// the earliest survivor gets the highest remaining count, the anchor 1.
	for i := range survivors {
		remaining := len(survivors) - i
		survivors[i].SequenceRemaining = &remaining
	}

	if err := s.itemRepo.DeleteItemsInTx(ctx, tx, deleteIDs); err != nil {
		return nil, err
	}
	if err := s.itemRepo.UpdateItemsInTx(ctx, tx, survivors); err != nil {
		return nil, err
	}
	if err := s.itemRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Future recurring items deleted",
		slog.String("series_id", *anchor.SeriesID),
		slog.String("anchor_item_id", itemID),
		slog.Int("items_deleted", len(deleteIDs)),
		slog.Int("items_remaining", len(survivors)),
	)
	return survivors, nil
}

// findItem returns a pointer to the item with the given ID, or nil.
func findItem(items []domain.Item, itemID string) *domain.Item {
	for i := range items {
		if items[i].ItemID == itemID {
			return &items[i]
		}
	}
	return nil
}
