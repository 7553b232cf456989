package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/granabox/granabox-api/internal/apperrors"
	"github.com/granabox/granabox-api/internal/core/domain"
	portsrepo "github.com/granabox/granabox-api/internal/core/ports/repositories"
	portssvc "github.com/granabox/granabox-api/internal/core/ports/services"
	"github.com/granabox/granabox-api/internal/dto"
	"github.com/granabox/granabox-api/internal/middleware"
)

// ErrLabelInUse refuses deletion of a label while items still reference it.
var ErrLabelInUse = errors.New("label is referenced by existing items")

// labelService implements business logic for label operations.
type labelService struct {
	labelRepo portsrepo.LabelRepositoryFacade
	itemRepo  portsrepo.ItemReader
}

// NewLabelService creates a new label service instance.
func NewLabelService(labelRepo portsrepo.LabelRepositoryFacade, itemRepo portsrepo.ItemReader) portssvc.LabelSvcFacade {
	return &labelService{
		labelRepo: labelRepo,
		itemRepo:  itemRepo,
	}
}

var _ portssvc.LabelSvcFacade = (*labelService)(nil)

// CreateLabel persists a new label. Label names are unique; a clash reports
// a duplicate regardless of which layer detects it first.
func (s *labelService) CreateLabel(ctx context.Context, req dto.CreateLabelRequest) (*domain.Label, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.labelRepo.FindLabelByName(ctx, req.Name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check label name %q: %w", req.Name, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("label %q: %w", req.Name, apperrors.ErrDuplicate)
	}

	label := domain.Label{
		LabelID:   uuid.NewString(),
		Name:      req.Name,
		IsDefault: req.IsDefault,
	}
	if err := s.labelRepo.SaveLabel(ctx, label); err != nil {
		return nil, fmt.Errorf("failed to persist label: %w", err)
	}

	logger.Info("Label created", slog.String("label_id", label.LabelID), slog.String("name", label.Name))
	return &label, nil
}

// GetLabelByID retrieves a specific label by its unique identifier.
func (s *labelService) GetLabelByID(ctx context.Context, labelID string) (*domain.Label, error) {
	label, err := s.labelRepo.FindLabelByID(ctx, labelID)
	if err != nil {
		return nil, fmt.Errorf("failed to load label %s: %w", labelID, err)
	}
	return label, nil
}

// ListLabels retrieves all labels.
func (s *labelService) ListLabels(ctx context.Context) ([]domain.Label, error) {
	labels, err := s.labelRepo.ListLabels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}
	return labels, nil
}

// UpdateLabel applies the request overrides to an existing label.
func (s *labelService) UpdateLabel(ctx context.Context, labelID string, req dto.UpdateLabelRequest) (*domain.Label, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	label, err := s.labelRepo.FindLabelByID(ctx, labelID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve label %s: %w", labelID, err)
	}

	if req.Name != nil {
		label.Name = *req.Name
	}
	if req.IsDefault != nil {
		label.IsDefault = *req.IsDefault
	}
	if err := s.labelRepo.UpdateLabel(ctx, *label); err != nil {
		return nil, fmt.Errorf("failed to update label %s: %w", labelID, err)
	}

	logger.Info("Label updated", slog.String("label_id", labelID), slog.String("name", label.Name))
	return label, nil
}

// DeleteLabel removes a label, refusing while items still reference it.
func (s *labelService) DeleteLabel(ctx context.Context, labelID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.labelRepo.FindLabelByID(ctx, labelID); err != nil {
		return fmt.Errorf("failed to resolve label %s: %w", labelID, err)
	}

	count, err := s.itemRepo.CountItemsByLabelID(ctx, labelID)
	if err != nil {
		return fmt.Errorf("failed to count items for label %s: %w", labelID, err)
	}
	if count > 0 {
		return fmt.Errorf("label %s has %d items: %w", labelID, count, ErrLabelInUse)
	}

	if err := s.labelRepo.DeleteLabel(ctx, labelID); err != nil {
		return fmt.Errorf("failed to delete label %s: %w", labelID, err)
	}

	logger.Info("Label deleted", slog.String("label_id", labelID))
	return nil
}
