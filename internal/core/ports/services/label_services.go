package services

import (
	"context"

	"github.com/granabox/granabox-api/internal/core/domain"
	"github.com/granabox/granabox-api/internal/dto"
)

// LabelReaderSvc defines read operations for label data
type LabelReaderSvc interface {
	// GetLabelByID retrieves a specific label by its unique identifier.
	GetLabelByID(ctx context.Context, labelID string) (*domain.Label, error)

	// ListLabels retrieves all labels.
	ListLabels(ctx context.Context) ([]domain.Label, error)
}

// LabelWriterSvc defines write operations for label data
type LabelWriterSvc interface {
	// CreateLabel persists a new label.
	CreateLabel(ctx context.Context, req dto.CreateLabelRequest) (*domain.Label, error)

	// UpdateLabel updates an existing label.
	UpdateLabel(ctx context.Context, labelID string, req dto.UpdateLabelRequest) (*domain.Label, error)

	// DeleteLabel removes a label. Deletion is refused while items still
	// reference the label.
	DeleteLabel(ctx context.Context, labelID string) error
}

// LabelSvcFacade combines all label-related service interfaces
type LabelSvcFacade interface {
	LabelReaderSvc
	LabelWriterSvc
}
