package models

// Config holds all service configuration resolved from the environment
type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	NATS        NATSConfig
	NSQ         NSQConfig
	JWT         JWTConfig
	Store       StoreConfig
	Coordinator CoordinatorConfig
	Logger      LoggerConfig
}

// AppConfig holds application-level settings
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig holds NATS connection settings
type NATSConfig struct {
	URL string
}

// NSQConfig holds NSQ connection settings
type NSQConfig struct {
	ProducerAddr string
	LookupdAddr  string
}

// JWTConfig holds token validation settings
type JWTConfig struct {
	Secret     string
	Expiration int
	Issuer     string
}

// StoreConfig carries the two values required to reach the rides store.
// When either is empty the coordinator runs in disabled mode: reads return
// empty, writes fail fast.
type StoreConfig struct {
	URL    string
	APIKey string
}

// Configured reports whether both required store values are present
func (s StoreConfig) Configured() bool {
	return s.URL != "" && s.APIKey != ""
}

// CoordinatorConfig holds session-side tuning knobs
type CoordinatorConfig struct {
	RequestTimeout   int // seconds per remote call
	ReadRetries      int
	NotificationKeep int // client-side retention, oldest evicted first
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
