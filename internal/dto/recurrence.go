package dto

import (
	"github.com/granabox/granabox-api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecurrenceRequest defines the data needed to create a monthly
// recurring series. Months is the occurrence count; when omitted the
// configured default (12) applies. An explicit zero is rejected.
type CreateRecurrenceRequest struct {
	LabelID     string          `json:"labelID" binding:"required"`
	Kind        domain.ItemKind `json:"kind" binding:"required,oneof=PAYABLE PAID INCOME"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required,gt=0"`
	DueDate     string          `json:"dueDate" binding:"required,datetime=2006-01-02"` // series start date
	Months      *int            `json:"months" binding:"omitempty,gte=1"`
}

// EditRecurringItemRequest defines the overrides applied to a series anchor
// item and propagated to the future part of its series. Nil fields are left
// untouched.
type EditRecurringItemRequest struct {
	LabelID     *string          `json:"labelID" binding:"omitempty"`
	Kind        *domain.ItemKind `json:"kind" binding:"omitempty,oneof=PAYABLE PAID INCOME"`
	Description *string          `json:"description" binding:"omitempty"`
	Amount      *decimal.Decimal `json:"amount" binding:"omitempty,gt=0"`
	DueDate     *string          `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
}
