package services

import (
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_rates_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The aggregator depends on the resolvers, so they come first
	container.RateViews = NewRateViewService(repos.RateRepo)
	container.Dashboard = NewDashboardService(container.RateViews)

	return container
}
