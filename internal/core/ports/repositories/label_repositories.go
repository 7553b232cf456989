package repositories

import (
	"context"

	"github.com/granabox/granabox-api/internal/core/domain"
)

// LabelReader defines read operations for label data
type LabelReader interface {
	// FindLabelByID retrieves a specific label by its unique identifier.
	FindLabelByID(ctx context.Context, labelID string) (*domain.Label, error)

	// FindLabelByName retrieves a label by its exact (case-sensitive) name.
	FindLabelByName(ctx context.Context, name string) (*domain.Label, error)

	// ListLabels retrieves all labels ordered by name.
	ListLabels(ctx context.Context) ([]domain.Label, error)
}

// LabelWriter defines write operations for label data
type LabelWriter interface {
	// SaveLabel persists a new label.
	SaveLabel(ctx context.Context, label domain.Label) error

	// UpdateLabel updates an existing label's details.
	UpdateLabel(ctx context.Context, label domain.Label) error

	// DeleteLabel removes a label.
	DeleteLabel(ctx context.Context, labelID string) error
}

// LabelRepositoryFacade combines all label-related repository interfaces
type LabelRepositoryFacade interface {
	LabelReader
	LabelWriter
}
