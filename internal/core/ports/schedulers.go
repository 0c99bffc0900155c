package ports

import "freight/internal/core/domain/model/kernel"

// GeocodeScheduler enqueues legs for asynchronous geocoding. Scheduling is
// fire-and-forget: the caller's transaction never waits on provider I/O.
type GeocodeScheduler interface {
	ScheduleGeocoding(legIDs []kernel.UUID)
}

// NotificationScheduler enqueues a delivery-completed notification for a
// shipment owner. Enqueued work survives individual send failures but not a
// process restart.
type NotificationScheduler interface {
	ScheduleDeliveryNotification(ownerID, shipmentID kernel.UUID)
}
