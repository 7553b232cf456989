package services

import (
	"context"
	"time"

	"github.com/granabox/granabox-api/internal/core/domain"
	"github.com/granabox/granabox-api/internal/dto"
)

// RecurrenceReaderSvc defines read operations for recurring item series
type RecurrenceReaderSvc interface {
	// GetSeries retrieves all items sharing a series ID, ordered by due date ascending.
	GetSeries(ctx context.Context, seriesID string) ([]domain.Item, error)
}

// RecurrenceWriterSvc defines the series lifecycle operations. Each call is
// applied as a single atomic unit against the store; loc is the caller's
// timezone used for due-status computation.
type RecurrenceWriterSvc interface {
	// CreateSeries expands a recurrence request into N monthly items sharing a
	// fresh series ID and persists them atomically.
	CreateSeries(ctx context.Context, req dto.CreateRecurrenceRequest, loc *time.Location) ([]domain.Item, error)

	// EditSeries applies field overrides to the identified anchor item and
	// propagates them to every item of the series due on or after the anchor's
	// original due date, shifting future due dates by the anchor's date delta.
	EditSeries(ctx context.Context, itemID string, req dto.EditRecurringItemRequest, loc *time.Location) ([]domain.Item, error)

	// DeleteFuture removes every item of the series strictly after the
	// identified anchor item and renumbers the surviving countdown.
	DeleteFuture(ctx context.Context, itemID string) ([]domain.Item, error)
}

// RecurrenceSvcFacade combines all recurrence-related service interfaces
type RecurrenceSvcFacade interface {
	RecurrenceReaderSvc
	RecurrenceWriterSvc
}
