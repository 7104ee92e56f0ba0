package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v6"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("invalid config")

// Config конфигурация сервиса
// Значения читаются из TOML файла, переменные окружения DESK_* имеют приоритет
type Config struct {
	Server             ServerConfig             `toml:"server"`
	Logs               LogsConfig               `toml:"logs"`
	Metrics            MetricsConfig            `toml:"metrics"`
	AppointmentService AppointmentServiceConfig `toml:"appointment_service"`
	Database           DatabaseConfig           `toml:"database"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"DESK_HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout" env:"DESK_READ_TIMEOUT"`         // секунды
	WriteTimeout    int `toml:"write_timeout" env:"DESK_WRITE_TIMEOUT"`       // секунды
	IdleTimeout     int `toml:"idle_timeout" env:"DESK_IDLE_TIMEOUT"`         // секунды
	ShutdownTimeout int `toml:"shutdown_timeout" env:"DESK_SHUTDOWN_TIMEOUT"` // секунды
}

type LogsConfig struct {
	Level string `toml:"level" env:"DESK_LOG_LEVEL"`
	File  string `toml:"file" env:"DESK_LOG_FILE"` // пусто - только stdout

	// Console включает человекочитаемый вывод в stdout, File при этом не используется
	Console bool `toml:"console" env:"DESK_LOG_CONSOLE"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"DESK_METRICS_ENABLED"`
	Path        string `toml:"path" env:"DESK_METRICS_PATH"`
	ServiceName string `toml:"service_name" env:"DESK_METRICS_SERVICE_NAME"`
}

type AppointmentServiceConfig struct {
	URL     string `toml:"url" env:"DESK_APPOINTMENT_SERVICE_URL"`
	Timeout int    `toml:"timeout" env:"DESK_APPOINTMENT_SERVICE_TIMEOUT"` // секунды
}

// DatabaseConfig нужен только сервису записей (cmd/registry)
type DatabaseConfig struct {
	Host            string `toml:"host" env:"DESK_DB_HOST"`
	Port            int    `toml:"port" env:"DESK_DB_PORT"`
	User            string `toml:"user" env:"DESK_DB_USER"`
	Password        string `toml:"password" env:"DESK_DB_PASSWORD"`
	DBName          string `toml:"dbname" env:"DESK_DB_NAME"`
	SSLMode         string `toml:"sslmode" env:"DESK_DB_SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns" env:"DESK_DB_MAX_OPEN_CONNS"`
	MaxIdleConns    int    `toml:"max_idle_conns" env:"DESK_DB_MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" env:"DESK_DB_CONN_MAX_LIFETIME"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Load читает конфигурацию из файла, применяет значения по умолчанию и переменные окружения
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "appointment-desk"
	}

	if c.AppointmentService.URL == "" {
		c.AppointmentService.URL = "http://localhost:8081/api"
	}
	if c.AppointmentService.Timeout == 0 {
		c.AppointmentService.Timeout = 5
	}

	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d is out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}

	u, err := url.Parse(c.AppointmentService.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: appointment_service.url %q is not an absolute URL", ErrInvalidConfig, c.AppointmentService.URL)
	}

	if c.AppointmentService.Timeout <= 0 {
		return fmt.Errorf("%w: appointment_service.timeout must be positive", ErrInvalidConfig)
	}

	return nil
}

// ValidateDatabase проверяет параметры подключения к базе
func (c *Config) ValidateDatabase() error {
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("%w: database host, dbname and user are required", ErrInvalidConfig)
	}
	if c.Database.Port <= 0 {
		return fmt.Errorf("%w: database.port must be positive", ErrInvalidConfig)
	}
	return nil
}
