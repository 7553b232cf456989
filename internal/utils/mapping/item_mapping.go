package mapping

import (
	"github.com/granabox/granabox-api/internal/core/domain"
	"github.com/granabox/granabox-api/internal/models"
)

// ToModelItem converts a domain Item to a model Item
func ToModelItem(d domain.Item) models.Item {
	return models.Item{
		ItemID:            d.ItemID,
		SeriesID:          d.SeriesID,
		SeriesOffset:      d.SeriesOffset,
		SequenceRemaining: d.SequenceRemaining,
		Recurrence:        string(d.Recurrence),
		Kind:              string(d.Kind),
		Description:       d.Description,
		Amount:            d.Amount,
		DueDate:           d.DueDate,
		DueStatus:         d.DueStatus,
		RecordedAt:        d.RecordedAt,
		LabelID:           d.LabelID,
	}
}

// ToDomainItem converts a model Item to a domain Item
func ToDomainItem(m models.Item) domain.Item {
	return domain.Item{
		ItemID:            m.ItemID,
		SeriesID:          m.SeriesID,
		SeriesOffset:      m.SeriesOffset,
		SequenceRemaining: m.SequenceRemaining,
		Recurrence:        domain.Recurrence(m.Recurrence),
		Kind:              domain.ItemKind(m.Kind),
		Description:       m.Description,
		Amount:            m.Amount,
		DueDate:           m.DueDate,
		DueStatus:         m.DueStatus,
		RecordedAt:        m.RecordedAt,
		LabelID:           m.LabelID,
	}
}

// ToDomainItemSlice converts a slice of model Items to a slice of domain Items
func ToDomainItemSlice(ms []models.Item) []domain.Item {
	ds := make([]domain.Item, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainItem(m)
	}
	return ds
}
