package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates all runtime settings required by the application.
type Config struct {
	AppName     string
	Environment string
	FrontendURL string
	HTTP        HTTPConfig
	Cosmos      CosmosConfig
	Context     ContextConfig
	Logger      LoggerConfig
	Monitor     MonitorConfig
}

type HTTPConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// CosmosConfig addresses the document store: account endpoint plus the
// database/container pair holding the todos.
type CosmosConfig struct {
	Endpoint      string
	Key           string
	DatabaseName  string
	ContainerName string
}

type ContextConfig struct {
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

type MonitorConfig struct {
	Interval time.Duration
}

// Load reads configuration from environment variables (optionally .env)
// and applies sane defaults so the service can boot in any environment.
// Only the Cosmos credentials have no default.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		AppName:     getString("APP_NAME", "todo-backend"),
		Environment: getString("APP_ENV", "development"),
		FrontendURL: getString("FRONTEND_URL", "http://localhost:3000"),
		HTTP: HTTPConfig{
			Host:         getString("SERVER_HOST", "0.0.0.0"),
			Port:         getString("PORT", "3001"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		},
		Cosmos: CosmosConfig{
			Endpoint:      os.Getenv("COSMOS_DB_ENDPOINT"),
			Key:           os.Getenv("COSMOS_DB_KEY"),
			DatabaseName:  getString("COSMOS_DB_DATABASE_NAME", "todo-db"),
			ContainerName: getString("COSMOS_DB_CONTAINER_NAME", "todos"),
		},
		Context: ContextConfig{
			RequestTimeout:  getDuration("REQUEST_TIMEOUT_SECONDS", 5*time.Second),
			ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT_SECONDS", 15*time.Second),
		},
		Logger: LoggerConfig{
			Level:    getString("LOG_LEVEL", "info"),
			Encoding: getString("LOG_ENCODING", "json"),
		},
		Monitor: MonitorConfig{
			Interval: getDuration("MONITOR_INTERVAL_SECONDS", 10*time.Second),
		},
	}

	if cfg.Cosmos.Endpoint == "" || cfg.Cosmos.Key == "" {
		return nil, fmt.Errorf("cosmos endpoint and key must be provided")
	}

	return cfg, nil
}

// IsDevelopment reports whether the service runs in development mode, which
// enables the diagnostic endpoint and the dev button on the index page.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Address returns the HTTP listen address for the fasthttp server.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.HTTP.Host, c.HTTP.Port)
}

func getString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}
