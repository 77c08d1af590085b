package cmd

// Config carries the environment-driven settings of the order service.
type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	ReconcileSchedule string
}
