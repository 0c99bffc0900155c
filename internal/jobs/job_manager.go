package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	truckDeactivationJob    *TruckDeactivationJob
	geocodingJob            *GeocodingJob
	deliveryNotificationJob *DeliveryNotificationJob
}

// NewJobManager creates a job manager owning the three background jobs.
func NewJobManager(
	truckDeactivationJob *TruckDeactivationJob,
	geocodingJob *GeocodingJob,
	deliveryNotificationJob *DeliveryNotificationJob,
) *JobManager {
	return &JobManager{
		truckDeactivationJob:    truckDeactivationJob,
		geocodingJob:            geocodingJob,
		deliveryNotificationJob: deliveryNotificationJob,
	}
}

// StartAll starts all scheduled jobs. If any job fails to start, the jobs
// already running are stopped before the error is returned.
func (jm *JobManager) StartAll() error {
	if err := jm.truckDeactivationJob.Start(); err != nil {
		return fmt.Errorf("failed to start truck deactivation job: %w", err)
	}

	if err := jm.geocodingJob.Start(); err != nil {
		jm.truckDeactivationJob.Stop()
		return fmt.Errorf("failed to start geocoding job: %w", err)
	}

	if err := jm.deliveryNotificationJob.Start(); err != nil {
		jm.geocodingJob.Stop()
		jm.truckDeactivationJob.Stop()
		return fmt.Errorf("failed to start delivery notification job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliveryNotificationJob.Stop()
	jm.geocodingJob.Stop()
	jm.truckDeactivationJob.Stop()
}
