package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the netwatch API.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port of the public API server.
// - HealthPort: The port of the monitoring server (/healthz, /metrics).
// - Analysis: Thresholds driving critical zones and responsible towers.
// - HTTP: Timeouts, CORS and rate limiting of the API server.
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env        string         `mapstructure:"env"`
	Port       int            `mapstructure:"port"`
	HealthPort int            `mapstructure:"health_port"`
	Analysis   AnalysisConfig `mapstructure:"analysis"`
	HTTP       HTTPConfig     `mapstructure:"http"`
	Database   PostgresConfig `mapstructure:"postgres"`
}

// AnalysisConfig holds the thresholds of the zone aggregation and proximity join.
type AnalysisConfig struct {
	CriticalDownloadMbps float64 `mapstructure:"critical_download_mbps"` // Zones strictly below are critical.
	CoverageRadiusKm     float64 `mapstructure:"coverage_radius_km"`     // Max tower distance from a point.
	ResponsibleLimit     int     `mapstructure:"responsible_limit"`      // Max towers attached to a zone.
	LookupWorkers        int     `mapstructure:"lookup_workers"`         // Concurrent per-zone lookups.
}

// HTTPConfig holds the API server settings.
type HTTPConfig struct {
	RateLimit       float64       `mapstructure:"rate_limit"` // Requests per second, 0 disables limiting.
	RateBurst       int           `mapstructure:"rate_burst"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigin   string        `mapstructure:"allowed_origin"`
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `mapstructure:"host"`     // Host is the database server address.
	Port     string `mapstructure:"port"`     // Port is the database server port.
	User     string `mapstructure:"user"`     // User is the database user.
	Password string `mapstructure:"password"` // Password is the database user's password.
	Name     string `mapstructure:"db_name"`  // Name is the name of the database.
	SSLMode  string `mapstructure:"sslmode"`  // SSLMode is passed through to the connection string.
	MaxConns int32  `mapstructure:"max_conns"`
}

// envBindings maps configuration keys to the environment variables that override them.
var envBindings = map[string]string{
	"env":                             "NETWATCH_ENV",
	"port":                            "NETWATCH_PORT",
	"health_port":                     "NETWATCH_HEALTH_PORT",
	"analysis.critical_download_mbps": "NETWATCH_CRITICAL_DOWNLOAD_MBPS",
	"analysis.coverage_radius_km":     "NETWATCH_COVERAGE_RADIUS_KM",
	"analysis.responsible_limit":      "NETWATCH_RESPONSIBLE_LIMIT",
	"analysis.lookup_workers":         "NETWATCH_LOOKUP_WORKERS",
	"http.rate_limit":                 "NETWATCH_RATE_LIMIT",
	"http.rate_burst":                 "NETWATCH_RATE_BURST",
	"http.read_timeout":               "NETWATCH_READ_TIMEOUT",
	"http.write_timeout":              "NETWATCH_WRITE_TIMEOUT",
	"http.shutdown_timeout":           "NETWATCH_SHUTDOWN_TIMEOUT",
	"http.allowed_origin":             "NETWATCH_ALLOWED_ORIGIN",
	"postgres.host":                   "DB_HOST",
	"postgres.port":                   "DB_PORT",
	"postgres.user":                   "DB_USERNAME",
	"postgres.password":               "DB_PASSWORD",
	"postgres.db_name":                "DB_NAME",
	"postgres.sslmode":                "DB_SSLMODE",
	"postgres.max_conns":              "DB_MAX_CONNS",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("port", "5000")
	v.SetDefault("health_port", "8080")
	v.SetDefault("analysis.critical_download_mbps", "10")
	v.SetDefault("analysis.coverage_radius_km", "40")
	v.SetDefault("analysis.responsible_limit", "5")
	v.SetDefault("analysis.lookup_workers", "8")
	v.SetDefault("http.rate_limit", "0")
	v.SetDefault("http.rate_burst", "20")
	v.SetDefault("http.read_timeout", "5s")
	v.SetDefault("http.write_timeout", "15s")
	v.SetDefault("http.shutdown_timeout", "10s")
	v.SetDefault("http.allowed_origin", "*")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_conns", "10")
}

// MustLoad builds the configuration from defaults, an optional YAML file named by
// NETWATCH_CONFIG, a .env file and the environment (highest precedence).
// It panics when a value cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	if path := os.Getenv("NETWATCH_CONFIG"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			panic("failed to read configuration file")
		}
	}

	cfg := &Config{
		Env:        v.GetString("env"),
		Port:       mustInt(v, "port", "failed to parse port for API server from configuration"),
		HealthPort: mustInt(v, "health_port", "failed to parse port for monitoring server from configuration"),
		Analysis: AnalysisConfig{
			CriticalDownloadMbps: mustFloat(v, "analysis.critical_download_mbps",
				"failed to parse critical download threshold from configuration"),
			CoverageRadiusKm: mustFloat(v, "analysis.coverage_radius_km",
				"failed to parse coverage radius from configuration"),
			ResponsibleLimit: mustInt(v, "analysis.responsible_limit",
				"failed to parse responsible tower limit from configuration, must be an integer types"),
			LookupWorkers: mustInt(v, "analysis.lookup_workers",
				"failed to parse lookup workers from configuration, must be an integer types"),
		},
		HTTP: HTTPConfig{
			RateLimit:       mustFloat(v, "http.rate_limit", "failed to parse rate limit from configuration"),
			RateBurst:       mustInt(v, "http.rate_burst", "failed to parse rate burst from configuration"),
			ReadTimeout:     mustDuration(v, "http.read_timeout", "failed to parse read timeout from configuration"),
			WriteTimeout:    mustDuration(v, "http.write_timeout", "failed to parse write timeout from configuration"),
			ShutdownTimeout: mustDuration(v, "http.shutdown_timeout", "failed to parse shutdown timeout from configuration"),
			AllowedOrigin:   v.GetString("http.allowed_origin"),
		},
		Database: PostgresConfig{
			Host:     v.GetString("postgres.host"),
			Port:     v.GetString("postgres.port"),
			User:     v.GetString("postgres.user"),
			Password: v.GetString("postgres.password"),
			Name:     v.GetString("postgres.db_name"),
			SSLMode:  v.GetString("postgres.sslmode"),
			MaxConns: int32(mustInt(v, "postgres.max_conns", "failed to parse max connections from configuration")), //nolint:gosec // bounded by validate
		},
	}

	if msg := cfg.validate(); msg != "" {
		panic(msg)
	}

	return cfg
}

func (c *Config) validate() string {
	const maxConns = 1 << 10

	switch {
	case c.Analysis.CriticalDownloadMbps <= 0:
		return "critical download threshold must be positive"
	case c.Analysis.CoverageRadiusKm <= 0:
		return "coverage radius must be positive"
	case c.Analysis.ResponsibleLimit <= 0:
		return "responsible tower limit must be positive"
	case c.Analysis.LookupWorkers <= 0:
		return "lookup workers must be positive"
	case c.HTTP.RateLimit < 0:
		return "rate limit must not be negative"
	case c.Database.MaxConns <= 0 || c.Database.MaxConns > maxConns:
		return fmt.Sprintf("max connections must be between 1 and %d", maxConns)
	}

	return ""
}

func mustInt(v *viper.Viper, key, msg string) int {
	value, err := strconv.Atoi(v.GetString(key))
	if err != nil {
		panic(msg)
	}

	return value
}

func mustFloat(v *viper.Viper, key, msg string) float64 {
	value, err := strconv.ParseFloat(v.GetString(key), 64)
	if err != nil {
		panic(msg)
	}

	return value
}

func mustDuration(v *viper.Viper, key, msg string) time.Duration {
	value, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		panic(msg)
	}

	return value
}
