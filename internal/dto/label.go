package dto

import (
	"github.com/granabox/granabox-api/internal/core/domain"
)

// CreateLabelRequest defines the data needed to create a new label.
type CreateLabelRequest struct {
	Name      string `json:"name" binding:"required"`
	IsDefault bool   `json:"isDefault"`
}

// UpdateLabelRequest defines the updatable fields of a label. Nil fields are
// left untouched.
type UpdateLabelRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1"`
	IsDefault *bool   `json:"isDefault" binding:"omitempty"`
}

// LabelResponse defines the data returned for a label.
type LabelResponse struct {
	LabelID   string `json:"labelID"`
	Name      string `json:"name"`
	IsDefault bool   `json:"isDefault"`
}

// ToLabelResponse converts a domain.Label to LabelResponse DTO
func ToLabelResponse(label *domain.Label) LabelResponse {
	return LabelResponse{
		LabelID:   label.LabelID,
		Name:      label.Name,
		IsDefault: label.IsDefault,
	}
}

// ToLabelResponses converts a slice of domain.Label to []LabelResponse
func ToLabelResponses(labels []domain.Label) []LabelResponse {
	responses := make([]LabelResponse, len(labels))
	for i, label := range labels {
		responses[i] = ToLabelResponse(&label)
	}
	return responses
}
