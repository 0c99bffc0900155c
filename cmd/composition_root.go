package cmd

import (
	"log/slog"

	"freight/internal/adapters/out/geo"
	"freight/internal/adapters/out/postgres"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/ports"
	"freight/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, handlers and jobs together. The background
// jobs double as the schedulers some handlers depend on, so they are built
// once here and shared.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	geocoder   ports.Geocoder
	notifier   ports.Notifier
	logger     *slog.Logger

	geocodingJob            *jobs.GeocodingJob
	deliveryNotificationJob *jobs.DeliveryNotificationJob
	truckDeactivationJob    *jobs.TruckDeactivationJob
}

// NewCompositionRoot builds the object graph from the given infrastructure.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	notifier ports.Notifier,
	logger *slog.Logger,
) *CompositionRoot {
	root := &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		geocoder:   geo.NewClient(config.GeocoderBaseURL, config.GeocoderTimeout),
		notifier:   notifier,
		logger:     logger,
	}

	root.geocodingJob = jobs.NewGeocodingJob(
		root.createGeocodeDeliveryShipmentsCommandHandler(),
		config.GeocodeMaxAttempts,
		logger,
	)
	root.deliveryNotificationJob = jobs.NewDeliveryNotificationJob(
		root.createNotifyDeliveryCompletedCommandHandler(),
		logger,
	)
	root.truckDeactivationJob = jobs.NewTruckDeactivationJob(
		root.createDeactivateTrucksCommandHandler(),
		config.TruckSweepSchedule,
		logger,
	)

	return root
}

// CreateJobManager returns the manager owning all background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.truckDeactivationJob, c.geocodingJob, c.deliveryNotificationJob)
}

func (c *CompositionRoot) CreateCreateCompanyCommandHandler() commands.CreateCompanyCommandHandler {
	var f commands.CompanyUoWFactory = FuncCompanyUoWFactory(func() commands.CompanyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCompanyCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCompanyCommandHandler() commands.UpdateCompanyCommandHandler {
	var f commands.CompanyUoWFactory = FuncCompanyUoWFactory(func() commands.CompanyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCompanyCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateCopyShipmentCommandHandler() commands.CopyShipmentCommandHandler {
	return commands.NewCopyShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	return commands.NewDeleteShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateCreateOfferCommandHandler() commands.CreateOfferCommandHandler {
	return commands.NewCreateOfferCommandHandler(c.offerUoWFactory())
}

func (c *CompositionRoot) CreateAcceptOfferCommandHandler() commands.AcceptOfferCommandHandler {
	return commands.NewAcceptOfferCommandHandler(c.offerUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateRejectOfferCommandHandler() commands.RejectOfferCommandHandler {
	return commands.NewRejectOfferCommandHandler(c.offerUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAssignShipmentsToTruckCommandHandler() commands.AssignShipmentsToTruckCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignShipmentsToTruckCommandHandler(f, c.geocodingJob)
}

func (c *CompositionRoot) CreateLoadTruckCommandHandler() commands.LoadTruckCommandHandler {
	return commands.NewLoadTruckCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateStartDeliveryCommandHandler() commands.StartDeliveryCommandHandler {
	return commands.NewStartDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateCloseDeliveryCommandHandler() commands.CloseDeliveryCommandHandler {
	var f commands.CloseDeliveryUoWFactory = FuncCloseDeliveryUoWFactory(func() commands.CloseDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCloseDeliveryCommandHandler(f, c.deliveryNotificationJob)
}

func (c *CompositionRoot) CreateGetUnclaimedShipmentsQueryHandler() queries.GetUnclaimedShipmentsQueryHandler {
	return queries.NewGetUnclaimedShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveTrucksQueryHandler() queries.GetActiveTrucksQueryHandler {
	return queries.NewGetActiveTrucksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) createGeocodeDeliveryShipmentsCommandHandler() commands.GeocodeDeliveryShipmentsCommandHandler {
	return commands.NewGeocodeDeliveryShipmentsCommandHandler(c.deliveryUoWFactory(), c.geocoder, c.logger)
}

func (c *CompositionRoot) createNotifyDeliveryCompletedCommandHandler() commands.NotifyDeliveryCompletedCommandHandler {
	return commands.NewNotifyDeliveryCompletedCommandHandler(c.shipmentUoWFactory(), c.notifier)
}

func (c *CompositionRoot) createDeactivateTrucksCommandHandler() commands.DeactivateTrucksCommandHandler {
	var f commands.TruckUoWFactory = FuncTruckUoWFactory(func() commands.TruckUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeactivateTrucksCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) offerUoWFactory() commands.OfferUoWFactory {
	return FuncOfferUoWFactory(func() commands.OfferUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

type FuncCompanyUoWFactory func() commands.CompanyUoW

func (f FuncCompanyUoWFactory) Create() commands.CompanyUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncOfferUoWFactory func() commands.OfferUoW

func (f FuncOfferUoWFactory) Create() commands.OfferUoW {
	return f()
}

type FuncTruckUoWFactory func() commands.TruckUoW

func (f FuncTruckUoWFactory) Create() commands.TruckUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncCloseDeliveryUoWFactory func() commands.CloseDeliveryUoW

func (f FuncCloseDeliveryUoWFactory) Create() commands.CloseDeliveryUoW {
	return f()
}
