package cmd

// Config is read from the environment (and an optional .env file) by cmd/app.
type Config struct {
	HTTPPort string

	// StorageDriver is one of memory, postgres, sqlite or redis.
	StorageDriver string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	NATSURL                  string
	NATSOrderChangedSubject  string
	NATSSalesSnapshotSubject string

	// DefaultBusinessID receives the orders stored under the legacy unscoped key.
	DefaultBusinessID string

	SalesSnapshotSchedule   string
	SalesSnapshotBusinesses []string

	LogLevel  string
	LogFormat string
}

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
	StorageRedis    = "redis"
)
