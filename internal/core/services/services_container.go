package services

import (
	portsevents "github.com/SscSPs/bill_tracker_app/internal/core/ports/events"
	portsrepo "github.com/SscSPs/bill_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bill_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/bill_tracker_app/internal/core/store"
	"github.com/SscSPs/bill_tracker_app/pkg/config"
)

// ContainerOption is a functional option for configuring the service container
type ContainerOption func(*containerOptions)

type containerOptions struct {
	clock     store.Clock
	store     *store.BillStore
	publisher portsevents.BillEventPublisher
}

// WithClock pins the clock every service derives bill statuses against.
func WithClock(clock store.Clock) ContainerOption {
	return func(o *containerOptions) {
		o.clock = clock
	}
}

// WithStore makes the container share an existing bill store.
func WithStore(s *store.BillStore) ContainerOption {
	return func(o *containerOptions) {
		o.store = s
	}
}

// WithBillEvents publishes bill mutations through publisher.
func WithBillEvents(publisher portsevents.BillEventPublisher) ContainerOption {
	return func(o *containerOptions) {
		o.publisher = publisher
	}
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, options ...ContainerOption) *portssvc.ServiceContainer {
	opts := &containerOptions{}
	for _, option := range options {
		option(opts)
	}

	billStore := opts.store
	if billStore == nil {
		billStore = store.NewBillStore(store.WithClock(opts.clock))
	}

	container := &portssvc.ServiceContainer{}
	container.Bill = NewBillService(repos.BillRepo,
		WithBillStore(billStore),
		WithEventPublisher(opts.publisher),
	)

	windows := DefaultAnalyticsWindows()
	if cfg != nil {
		windows = AnalyticsWindows{
			MonthsBack:    cfg.ChartMonthsBack,
			UpcomingDays:  cfg.UpcomingDaysAhead,
			UpcomingLimit: cfg.UpcomingLimit,
		}
	}
	container.Analytics = NewAnalyticsService(container.Bill, repos.TransactionRepo, WithAnalyticsWindows(windows))

	return container
}
