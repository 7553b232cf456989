package dto

import (
	"time"

	"github.com/granabox/granabox-api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Wire formats: due dates are calendar dates, recorded-at timestamps are
// stored in UTC and rendered in the caller's timezone.
const (
	DateFormat      = "2006-01-02"
	TimestampFormat = "2006-01-02 15:04:05"
)

// CreateItemRequest defines the data needed to create a one-off item.
type CreateItemRequest struct {
	LabelID     string            `json:"labelID" binding:"required"`
	Kind        domain.ItemKind   `json:"kind" binding:"required,oneof=PAYABLE PAID INCOME"`
	Description string            `json:"description" binding:"required"`
	Amount      decimal.Decimal   `json:"amount" binding:"required,gt=0"`
	DueDate     string            `json:"dueDate" binding:"required,datetime=2006-01-02"`
	Recurrence  domain.Recurrence `json:"recurrence" binding:"omitempty,oneof=ONCE MONTHLY"`
}

// UpdateItemRequest defines the updatable fields of an item. Nil fields are
// left untouched. Recurrence is not editable here; series membership only
// changes through the recurrence endpoints.
type UpdateItemRequest struct {
	LabelID     *string          `json:"labelID" binding:"omitempty"`
	Kind        *domain.ItemKind `json:"kind" binding:"omitempty,oneof=PAYABLE PAID INCOME"`
	Description *string          `json:"description" binding:"omitempty"`
	Amount      *decimal.Decimal `json:"amount" binding:"omitempty,gt=0"`
	DueDate     *string          `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
}

// ItemResponse defines the data returned for an item.
type ItemResponse struct {
	ItemID            string          `json:"itemID"`
	SeriesID          *string         `json:"seriesID,omitempty"`
	SeriesOffset      *int            `json:"seriesOffset,omitempty"`
	SequenceRemaining *int            `json:"sequenceRemaining,omitempty"`
	Recurrence        string          `json:"recurrence"`
	Kind              string          `json:"kind"`
	Description       string          `json:"description"`
	Amount            decimal.Decimal `json:"amount"`
	DueDate           string          `json:"dueDate"`
	DueStatus         string          `json:"dueStatus"`
	RecordedAt        string          `json:"recordedAt"`
	LabelID           string          `json:"labelID"`
}

// ListItemsResponse wraps a page of items together with the pagination cursor.
type ListItemsResponse struct {
	Items     []ItemResponse `json:"items"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// ToItemResponse converts a domain.Item to ItemResponse DTO, rendering the
// recorded-at instant in the caller's timezone.
func ToItemResponse(item *domain.Item, loc *time.Location) ItemResponse {
	return ItemResponse{
		ItemID:            item.ItemID,
		SeriesID:          item.SeriesID,
		SeriesOffset:      item.SeriesOffset,
		SequenceRemaining: item.SequenceRemaining,
		Recurrence:        string(item.Recurrence),
		Kind:              string(item.Kind),
		Description:       item.Description,
		Amount:            item.Amount,
		DueDate:           item.DueDate.Format(DateFormat),
		DueStatus:         item.DueStatus,
		RecordedAt:        item.RecordedAt.In(loc).Format(TimestampFormat),
		LabelID:           item.LabelID,
	}
}

// ToItemResponses converts a slice of domain.Item to []ItemResponse.
func ToItemResponses(items []domain.Item, loc *time.Location) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToItemResponse(&item, loc)
	}
	return responses
}
