package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	// DriverSQLite stores everything in a single local database file.
	DriverSQLite = "sqlite"
	// DriverPostgres connects to a PostgreSQL server.
	DriverPostgres = "postgres"
)

// Config represents the application configuration structure.
// Values are read from the yaml file and can be overridden by environment variables.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8000" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the origins allowed by CORS. Empty allows any origin.
		AllowedOrigins []string `env:"ALLOWED_ORIGINS" env-default:"http://localhost:3000,http://127.0.0.1:3000" yaml:"allowedOrigins"` //nolint: lll
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Driver selects the backend: sqlite or postgres
		Driver string `env:"DATABASE_DRIVER" env-default:"sqlite" yaml:"driver"`
		// Path is the SQLite database file
		Path string `env:"DATABASE_PATH" env-default:"./data/agenthub.db" yaml:"path"`
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"agenthub" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"agenthub" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"agenthub" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	JWT struct {
		// PublicKey is the PEM encoded RSA key used to verify bearer tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is only needed by the jwt command to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	Marketplace struct {
		DefaultPageSize  uint `env:"DEFAULT_PAGE_SIZE" env-default:"50" yaml:"defaultPageSize"`
		MaxPageSize      uint `env:"MAX_PAGE_SIZE" env-default:"100" yaml:"maxPageSize"`
		DefaultDemoLimit int  `env:"DEFAULT_DEMO_LIMIT" env-default:"3" yaml:"defaultDemoLimit"`
		// JobMaxAttempts bounds how often river retries a purchased agent run
		JobMaxAttempts int `env:"JOB_MAX_ATTEMPTS" env-default:"3" yaml:"jobMaxAttempts"`
		// Workers is the number of agent runs executed concurrently
		Workers int `env:"WORKERS" env-default:"10" yaml:"workers"`
	} `yaml:"marketplace"`

	Cardano struct {
		// Network must be Preprod for the console to start
		Network string `env:"CARDANO_NETWORK" env-default:"Preprod" yaml:"network"`
		// BlockfrostURL is the Blockfrost API base URL for Network
		BlockfrostURL string `env:"BLOCKFROST_URL" env-default:"https://cardano-preprod.blockfrost.io/api/v0" yaml:"blockfrostURL"` //nolint: lll
		// BlockfrostAPIKey is the Blockfrost project id
		BlockfrostAPIKey string `env:"BLOCKFROST_API_KEY" yaml:"blockfrostAPIKey"`
		// Timeout bounds every call made to the explorer
		Timeout time.Duration `env:"BLOCKFROST_TIMEOUT" env-default:"15s" yaml:"timeout"`
	} `yaml:"cardano"`

	Gemini struct {
		APIKey string `env:"GEMINI_API_KEY" yaml:"apiKey"`
		Model  string `env:"GEMINI_MODEL" env-default:"gemini-2.5-flash" yaml:"model"`
	} `yaml:"gemini"`

	Masumi struct {
		RegistryURL string        `env:"MASUMI_REGISTRY_URL" env-default:"http://localhost:3000" yaml:"registryURL"`
		PaymentURL  string        `env:"MASUMI_PAYMENT_URL" env-default:"http://localhost:3001" yaml:"paymentURL"`
		APIKey      string        `env:"MASUMI_API_KEY" yaml:"apiKey"`
		Timeout     time.Duration `env:"MASUMI_TIMEOUT" env-default:"5s" yaml:"timeout"`
	} `yaml:"masumi"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads the yaml config file at configPath and applies environment
// overrides. Variables from a .env file in the working directory are exported
// first. A missing config file is not an error: configuration then comes from
// the environment and defaults only.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not load .env file: %w", err)
	}

	var cfg Config
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
