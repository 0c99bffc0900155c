package cmd

import "time"

// Config carries all runtime settings, loaded from the environment in main.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	GeocoderBaseURL string
	GeocoderTimeout time.Duration

	KafkaBrokers            []string
	KafkaNotificationsTopic string

	TruckSweepSchedule string
	GeocodeMaxAttempts int
}
