package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
)

// Config is the full service configuration loaded from config.toml
type Config struct {
	Server     Server     `toml:"server"`
	Database   Database   `toml:"database"`
	Logs       Logs       `toml:"logs"`
	Metrics    Metrics    `toml:"metrics"`
	Scheduling Scheduling `toml:"scheduling"`
	Auth       Auth       `toml:"auth"`
	Redis      Redis      `toml:"redis"`
	SMTP       SMTP       `toml:"smtp"`
}

// Server holds the HTTP server settings
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// Database holds the Postgres connection settings
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN builds the lib/pq connection string
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Logs holds logger settings
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics holds prometheus settings
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// Scheduling tunes the availability engine
type Scheduling struct {
	SlotIntervalMinutes   int    `toml:"slot_interval_minutes"`
	DiningDurationMinutes int    `toml:"dining_duration_minutes"`
	MinAdvanceMinutes     int    `toml:"min_advance_minutes"`
	SuggestedRangeMinutes int    `toml:"suggested_range_minutes"`
	CapacityPolicy        string `toml:"capacity_policy"` // "binary" or "counted"
}

// ToDomain converts the section to a domain config, falling back to the
// engine defaults for unset fields.
func (s Scheduling) ToDomain() domain.SchedulingConfig {
	cfg := domain.DefaultSchedulingConfig()
	if s.SlotIntervalMinutes > 0 {
		cfg.SlotIntervalMinutes = s.SlotIntervalMinutes
	}
	if s.DiningDurationMinutes > 0 {
		cfg.DiningDurationMinutes = s.DiningDurationMinutes
	}
	if s.MinAdvanceMinutes > 0 {
		cfg.MinAdvanceMinutes = s.MinAdvanceMinutes
	}
	if s.SuggestedRangeMinutes > 0 {
		cfg.SuggestedRangeMinutes = s.SuggestedRangeMinutes
	}
	if policy := domain.CapacityPolicy(s.CapacityPolicy); policy.Valid() {
		cfg.CapacityPolicy = policy
	}
	return cfg
}

// Auth holds token settings
type Auth struct {
	JWTSecret     string `toml:"jwt_secret"`
	TokenTTLHours int    `toml:"token_ttl_hours"`
}

// Redis holds the verification/reset token store settings
type Redis struct {
	Addr            string `toml:"addr"`
	Password        string `toml:"password"`
	DB              int    `toml:"db"`
	TokenTTLMinutes int    `toml:"token_ttl_minutes"`
}

// SMTP holds the outgoing mail settings
type SMTP struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
	BaseURL  string `toml:"base_url"` // public URL used in verification links
}

// Load reads and validates the configuration file
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		return nil, fmt.Errorf("config: server.http_port is required")
	}
	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		return nil, fmt.Errorf("config: database.host and database.dbname are required")
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("config: auth.jwt_secret is required")
	}
	if cfg.Auth.TokenTTLHours <= 0 {
		cfg.Auth.TokenTTLHours = 24
	}
	if cfg.Redis.TokenTTLMinutes <= 0 {
		cfg.Redis.TokenTTLMinutes = 30
	}

	return &cfg, nil
}
