package config

import (
	"fmt"
	"net"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config chứa toàn bộ application configuration.
// Populated from environment variables (after an optional .env file) via cleanenv.
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

type AppConfig struct {
	Name        string `env:"APP_NAME"    env-default:"Movie Catalog API"`
	Environment string `env:"APP_ENV"     env-default:"development"` // development, staging, production
	Version     string `env:"APP_VERSION" env-default:"1.0.0"`
	LogLevel    string `env:"LOG_LEVEL"   env-default:"info"`
	// BasePath prefixes every resource route, e.g. "/api/v1". Empty mounts at root.
	BasePath string `env:"APP_BASE_PATH" env-default:""`
}

type ServerConfig struct {
	Port            string        `env:"APP_PORT"                env-default:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT"    env-default:"10s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// TrustedProxies lists the IPs/CIDRs allowed to set X-Forwarded-For.
	// Empty trusts none and rate limits by the connecting address.
	TrustedProxies []string `env:"SERVER_TRUSTED_PROXIES" env-separator:","`
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST"     env-default:"localhost"`
	Port     int    `env:"DB_PORT"     env-default:"5432"`
	User     string `env:"DB_USER"     env-default:"postgres"`
	Password string `env:"DB_PASSWORD" env-default:""`
	Name     string `env:"DB_NAME"     env-default:"movie_catalog"`
	SSLMode  string `env:"DB_SSLMODE"  env-default:"disable"`

	MaxConns          int32         `env:"DB_MAX_CONNECTIONS"     env-default:"25"`
	MinConns          int32         `env:"DB_MIN_CONNECTIONS"     env-default:"2"`
	MaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME"   env-default:"5m"`
	MaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME"  env-default:"1m"`
	HealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" env-default:"1m"`
	MaxRetries        int           `env:"DB_MAX_RETRIES"         env-default:"5"`
	RetryDelay        time.Duration `env:"DB_RETRY_DELAY"         env-default:"1s"`
	ConnectTimeout    time.Duration `env:"DB_CONNECT_TIMEOUT"     env-default:"10s"`
	// MonitorInterval > 0 starts the background pool monitor.
	MonitorInterval time.Duration `env:"DB_MONITOR_INTERVAL" env-default:"0s"`
}

type RedisConfig struct {
	Enabled  bool   `env:"REDIS_ENABLED"  env-default:"false"`
	Host     string `env:"REDIS_HOST"     env-default:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD" env-default:""`
	DB       int    `env:"REDIS_DB"       env-default:"0"`
}

type RateLimitConfig struct {
	Enabled  bool          `env:"RATE_LIMIT_ENABLED"  env-default:"true"`
	Requests int           `env:"RATE_LIMIT_REQUESTS" env-default:"120"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW"   env-default:"1m"`
}

type CORSConfig struct {
	AllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `env:"CORS_ALLOWED_METHODS" env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders string `env:"CORS_ALLOWED_HEADERS" env-default:"Content-Type,X-Request-ID"`
	MaxAge         int    `env:"CORS_MAX_AGE"         env-default:"86400"`
}

// Load đọc config từ environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	if c.IsProduction() && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD must be set in production")
	}
	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("DB_MAX_CONNECTIONS (%d) must be >= DB_MIN_CONNECTIONS (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}
	if c.Database.MaxRetries < 1 {
		return fmt.Errorf("DB_MAX_RETRIES must be at least 1")
	}
	for _, p := range c.Server.TrustedProxies {
		if net.ParseIP(p) == nil {
			if _, _, err := net.ParseCIDR(p); err != nil {
				return fmt.Errorf("SERVER_TRUSTED_PROXIES: %q is not an IP or CIDR", p)
			}
		}
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.Requests <= 0 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive")
		}
		if c.RateLimit.Window <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
		}
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}
