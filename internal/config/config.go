package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
)

// PathEnv переменная окружения с путем к файлу конфигурации
const PathEnv = "CONFIG_PATH"

const (
	LockBackendLocal = "local"
	LockBackendRedis = "redis"
)

var (
	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

type Config struct {
	Server          ServerConfig          `toml:"server"`
	Database        DatabaseConfig        `toml:"database"`
	Logs            LogsConfig            `toml:"logs"`
	Metrics         MetricsConfig         `toml:"metrics"`
	CustomerService CustomerServiceConfig `toml:"customer_service"`
	Booking         BookingConfig         `toml:"booking"`
	Redis           RedisConfig           `toml:"redis"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type CustomerServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

type BookingConfig struct {
	Timezone                string `toml:"timezone"`
	AdvanceBookingDays      int    `toml:"advance_booking_days"`
	MinBookingNoticeMinutes int    `toml:"min_booking_notice_minutes"`
	LockBackend             string `toml:"lock_backend"` // local | redis
	LockTTLSeconds          int    `toml:"lock_ttl"`     // только для redis
	LockWaitMillis          int    `toml:"lock_wait_ms"` // сколько ждать блокировку мастера
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Load читает конфигурацию из TOML файла.
// Путь из CONFIG_PATH имеет приоритет над аргументом.
func Load(path string) (*Config, error) {
	if env := os.Getenv(PathEnv); env != "" {
		path = env
	}

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "salon_booking",
		},
		CustomerService: CustomerServiceConfig{
			Timeout: 5,
		},
		Booking: BookingConfig{
			Timezone:                "UTC",
			AdvanceBookingDays:      0,
			MinBookingNoticeMinutes: 60,
			LockBackend:             LockBackendLocal,
			LockTTLSeconds:          10,
			LockWaitMillis:          5000,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
	}
}

// Validate проверяет обязательные поля и диапазоны
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("%w: database.dbname and database.user are required", ErrInvalidConfig)
	}
	if c.CustomerService.URL == "" {
		return fmt.Errorf("%w: customer_service.url is required", ErrInvalidConfig)
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}
	if c.Booking.AdvanceBookingDays < 0 || c.Booking.MinBookingNoticeMinutes < 0 {
		return fmt.Errorf("%w: booking limits must not be negative", ErrInvalidConfig)
	}
	if c.Booking.LockWaitMillis <= 0 {
		return fmt.Errorf("%w: booking.lock_wait_ms must be positive", ErrInvalidConfig)
	}

	switch c.Booking.LockBackend {
	case LockBackendLocal:
	case LockBackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("%w: redis.addr is required for redis lock backend", ErrInvalidConfig)
		}
		if c.Booking.LockTTLSeconds <= 0 {
			return fmt.Errorf("%w: booking.lock_ttl must be positive", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown booking.lock_backend %q", ErrInvalidConfig, c.Booking.LockBackend)
	}

	return nil
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.DBName,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

// Location часовой пояс салонов
func (b BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(b.Timezone)
}

func (b BookingConfig) LockTTL() time.Duration {
	return time.Duration(b.LockTTLSeconds) * time.Second
}

func (b BookingConfig) LockWait() time.Duration {
	return time.Duration(b.LockWaitMillis) * time.Millisecond
}
