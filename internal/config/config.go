// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Amazon        AmazonConfig        `yaml:"amazon"`
	Alerts        AlertsConfig        `yaml:"alerts"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Tracing       TracingConfig       `yaml:"tracing"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// AmazonConfig defines Product Advertising API settings.
type AmazonConfig struct {
	AccessKey  string          `yaml:"access_key"`
	SecretKey  string          `yaml:"secret_key"`
	PartnerTag string          `yaml:"partner_tag"`
	Host       string          `yaml:"host"`
	Region     string          `yaml:"region"`
	Timeout    time.Duration   `yaml:"timeout"`
	CacheTTL   time.Duration   `yaml:"cache_ttl"`
	RateLimit  RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines catalog API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// AlertsConfig defines alert evaluation behavior.
type AlertsConfig struct {
	// DefaultCooldownHours applies to trackers without an explicit cooldown.
	DefaultCooldownHours int `yaml:"default_cooldown_hours"`
	// ReboundPercent is the price-rebound threshold (percent above the last
	// alerted price) that resets a tracker's cooldown early.
	ReboundPercent float64 `yaml:"rebound_percent"`
	// Concurrency bounds the per-run worker pool.
	Concurrency int `yaml:"concurrency"`
}

// ScheduleConfig defines cron intervals.
type ScheduleConfig struct {
	ProcessInterval time.Duration `yaml:"process_interval"`
}

// NotificationsConfig defines notification transports. SendGrid is preferred
// when both are enabled; SMTP is the fallback.
type NotificationsConfig struct {
	SendGrid SendGridConfig `yaml:"sendgrid"`
	SMTP     SMTPConfig     `yaml:"smtp"`
}

// SendGridConfig defines SendGrid mail settings.
type SendGridConfig struct {
	Enabled   bool   `yaml:"enabled"`
	APIKey    string `yaml:"api_key"`
	FromEmail string `yaml:"from_email"`
	FromName  string `yaml:"from_name"`
}

// SMTPConfig defines plain SMTP mail settings.
type SMTPConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	FromEmail string `yaml:"from_email"`
}

// TracingConfig defines OTLP trace export settings. Tracing is disabled
// when Endpoint is empty.
type TracingConfig struct {
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
	Insecure    bool   `yaml:"insecure"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyAmazonDefaults(&cfg.Amazon)
	applyAlertsDefaults(&cfg.Alerts)
	applyScheduleDefaults(&cfg.Schedule)
	applyTracingDefaults(&cfg.Tracing)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyAmazonDefaults(a *AmazonConfig) {
	if a.Host == "" {
		a.Host = "webservices.amazon.com"
	}
	if a.Region == "" {
		a.Region = "us-east-1"
	}
	if a.Timeout == 0 {
		a.Timeout = 10 * time.Second
	}
	if a.CacheTTL == 0 {
		a.CacheTTL = 30 * time.Minute
	}
	applyRateLimitDefaults(&a.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 1.0
	}
	if r.Burst == 0 {
		r.Burst = 2
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 8640
	}
}

func applyAlertsDefaults(a *AlertsConfig) {
	if a.DefaultCooldownHours == 0 {
		a.DefaultCooldownHours = 48
	}
	if a.ReboundPercent == 0 {
		a.ReboundPercent = 10.0
	}
	if a.Concurrency == 0 {
		a.Concurrency = 4
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.ProcessInterval == 0 {
		s.ProcessInterval = time.Hour
	}
}

func applyTracingDefaults(t *TracingConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "dealdrop"
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	if cfg.Amazon.AccessKey == "" {
		errs = append(errs, fmt.Errorf("amazon.access_key is required"))
	}
	if cfg.Amazon.SecretKey == "" {
		errs = append(errs, fmt.Errorf("amazon.secret_key is required"))
	}
	if cfg.Amazon.PartnerTag == "" {
		errs = append(errs, fmt.Errorf("amazon.partner_tag is required"))
	}

	if cfg.Alerts.ReboundPercent < 0 {
		errs = append(errs, fmt.Errorf("alerts.rebound_percent must not be negative"))
	}

	if cfg.Notifications.SendGrid.Enabled {
		if cfg.Notifications.SendGrid.APIKey == "" {
			errs = append(errs, fmt.Errorf("notifications.sendgrid.api_key is required when sendgrid is enabled"))
		}
		if cfg.Notifications.SendGrid.FromEmail == "" {
			errs = append(errs, fmt.Errorf("notifications.sendgrid.from_email is required when sendgrid is enabled"))
		}
	}

	if cfg.Notifications.SMTP.Enabled {
		if cfg.Notifications.SMTP.Host == "" {
			errs = append(errs, fmt.Errorf("notifications.smtp.host is required when smtp is enabled"))
		}
		if cfg.Notifications.SMTP.FromEmail == "" {
			errs = append(errs, fmt.Errorf("notifications.smtp.from_email is required when smtp is enabled"))
		}
	}

	return errors.Join(errs...)
}
