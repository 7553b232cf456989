package services

import (
	portsrepo "github.com/granabox/granabox-api/internal/core/ports/repositories"
	portssvc "github.com/granabox/granabox-api/internal/core/ports/services"
	"github.com/granabox/granabox-api/internal/platform/config"
)

// NewServiceContainer wires all application services against the repository
// provider.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Item:       NewItemService(repos.ItemRepo, repos.LabelRepo),
		Label:      NewLabelService(repos.LabelRepo, repos.ItemRepo),
		Recurrence: NewRecurrenceService(repos.ItemRepo, repos.LabelRepo, cfg.RecurrenceDefaultMonths),
		Reporting:  NewReportingService(repos.ReportingRepo),
	}
}
