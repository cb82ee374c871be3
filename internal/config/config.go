package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the gateway.
type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Session  SessionConfig
	Workflow WorkflowConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// UpstreamConfig locates the remote rental API.
type UpstreamConfig struct {
	// BaseURL defaults to a local /api path in development and is overridden
	// with the full remote origin in production deployments.
	BaseURL        string
	TimeoutSeconds int
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// SessionConfig defines client session parameters.
type SessionConfig struct {
	CookieName     string
	CookieSecret   string
	CookieTTLHours int
	StoreTTLHours  int
}

// WorkflowConfig tunes the booking workflow.
type WorkflowConfig struct {
	CheckoutTTLMinutes   int
	InflightTTLSeconds   int
	PaidRedirectDelaySec int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "houserent-gateway"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Upstream: UpstreamConfig{
			BaseURL:        getEnv("UPSTREAM_BASE_URL", "http://127.0.0.1:4000/api"),
			TimeoutSeconds: getEnvAsInt("UPSTREAM_TIMEOUT_SECONDS", 15),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Session: SessionConfig{
			CookieName:     getEnv("SESSION_COOKIE_NAME", "hr_sid"),
			CookieSecret:   getEnv("SESSION_COOKIE_SECRET", "dev-secret"),
			CookieTTLHours: getEnvAsInt("SESSION_COOKIE_TTL_HOURS", 720),
			StoreTTLHours:  getEnvAsInt("SESSION_STORE_TTL_HOURS", 720),
		},
		Workflow: WorkflowConfig{
			CheckoutTTLMinutes:   getEnvAsInt("WORKFLOW_CHECKOUT_TTL_MINUTES", 30),
			InflightTTLSeconds:   getEnvAsInt("WORKFLOW_INFLIGHT_TTL_SECONDS", 15),
			PaidRedirectDelaySec: getEnvAsInt("WORKFLOW_PAID_REDIRECT_DELAY_SECONDS", 3),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Timeout returns the upstream HTTP client timeout.
func (u UpstreamConfig) Timeout() time.Duration {
	if u.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(u.TimeoutSeconds) * time.Second
}

// CookieTTL returns the signed cookie lifetime.
func (s SessionConfig) CookieTTL() time.Duration {
	if s.CookieTTLHours <= 0 {
		return 720 * time.Hour
	}
	return time.Duration(s.CookieTTLHours) * time.Hour
}

// StoreTTL returns the session record lifetime.
func (s SessionConfig) StoreTTL() time.Duration {
	if s.StoreTTLHours <= 0 {
		return 720 * time.Hour
	}
	return time.Duration(s.StoreTTLHours) * time.Hour
}

// CheckoutTTL returns how long a checkout context stays recoverable.
func (w WorkflowConfig) CheckoutTTL() time.Duration {
	if w.CheckoutTTLMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(w.CheckoutTTLMinutes) * time.Minute
}

// InflightTTL bounds how long an action dedupe mark may linger.
func (w WorkflowConfig) InflightTTL() time.Duration {
	if w.InflightTTLSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(w.InflightTTLSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
