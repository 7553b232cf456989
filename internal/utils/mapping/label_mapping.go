package mapping

import (
	"github.com/granabox/granabox-api/internal/core/domain"
	"github.com/granabox/granabox-api/internal/models"
)

// ToModelLabel converts a domain Label to a model Label
func ToModelLabel(d domain.Label) models.Label {
	return models.Label{
		LabelID:   d.LabelID,
		Name:      d.Name,
		IsDefault: d.IsDefault,
	}
}

// ToDomainLabel converts a model Label to a domain Label
func ToDomainLabel(m models.Label) domain.Label {
	return domain.Label{
		LabelID:   m.LabelID,
		Name:      m.Name,
		IsDefault: m.IsDefault,
	}
}

// ToDomainLabelSlice converts a slice of model Labels to a slice of domain Labels
func ToDomainLabelSlice(ms []models.Label) []domain.Label {
	ds := make([]domain.Label, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLabel(m)
	}
	return ds
}
