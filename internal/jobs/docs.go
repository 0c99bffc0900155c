// Package jobs provides scheduled background work for the freight system.
//
// Three jobs run on github.com/robfig/cron/v3 schedules:
//
//  1. TruckDeactivationJob - periodically sweeps the fleet and deactivates
//     trucks whose maintenance deadline has passed
//  2. GeocodingJob - drains an in-process queue of leg batches, resolving
//     addresses to coordinates with exponential backoff between retries
//  3. DeliveryNotificationJob - drains an in-process queue of owner
//     notifications, re-queueing failed sends
//
// The geocoding and notification jobs double as the schedulers the command
// handlers depend on: scheduling enqueues work in memory, and the cron tick
// drains it. Queued work does not survive a process restart.
//
// Jobs are managed through JobManager, which starts them together and rolls
// back already-started jobs when a later one fails to start.
package jobs
