package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	PublicCalendar PublicCalendarConfig `toml:"public_calendar"`
	Sessions       SessionsConfig       `toml:"sessions"`
	Booker         BookerConfig         `toml:"booker"`
	RateLimit      RateLimitConfig      `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// PublicCalendarConfig настройки клиента public calendar API
type PublicCalendarConfig struct {
	URL               string  `toml:"url"`
	Timeout           int     `toml:"timeout"` // секунды
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// SessionsConfig настройки серверных сессий букера
type SessionsConfig struct {
	TTLMinutes             int `toml:"ttl_minutes"`
	CleanupIntervalSeconds int `toml:"cleanup_interval_seconds"`
	MaxSessions            int `toml:"max_sessions"`
}

// BookerConfig настройки отображения по умолчанию
type BookerConfig struct {
	DefaultLayout     string `toml:"default_layout"`      // month, week, column
	DefaultTimeFormat string `toml:"default_time_format"` // 12h, 24h
	WeekDays          int    `toml:"week_days"`
}

// RateLimitConfig ограничение частоты отправки бронирований с одного IP
type RateLimitConfig struct {
	SubmitPerMinute int `toml:"submit_per_minute"`
	Burst           int `toml:"burst"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8090,
			ReadTimeout:     10,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "smc-public-booker",
		},
		PublicCalendar: PublicCalendarConfig{
			URL:               "http://localhost:8000/api/v1/public",
			Timeout:           5,
			RequestsPerSecond: 50,
			Burst:             20,
		},
		Sessions: SessionsConfig{
			TTLMinutes:             30,
			CleanupIntervalSeconds: 60,
			MaxSessions:            10000,
		},
		Booker: BookerConfig{
			DefaultLayout:     "month",
			DefaultTimeFormat: "24h",
			WeekDays:          7,
		},
		RateLimit: RateLimitConfig{
			SubmitPerMinute: 10,
			Burst:           3,
		},
	}
}

// Load загружает конфигурацию из TOML файла поверх значений по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault загружает конфигурацию, если файл существует, иначе использует значения по умолчанию
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := Default()
		applyEnv(cfg)
		return cfg, cfg.Validate()
	}
	return Load(path)
}

// Validate проверяет корректность значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	if strings.TrimSpace(c.PublicCalendar.URL) == "" {
		return fmt.Errorf("%w: public_calendar.url is required", ErrInvalidConfig)
	}
	if c.PublicCalendar.Timeout <= 0 {
		return fmt.Errorf("%w: public_calendar.timeout must be positive", ErrInvalidConfig)
	}
	if c.PublicCalendar.RequestsPerSecond < 0 || c.PublicCalendar.Burst < 0 {
		return fmt.Errorf("%w: public_calendar rate limit must not be negative", ErrInvalidConfig)
	}

	if c.Sessions.TTLMinutes <= 0 {
		return fmt.Errorf("%w: sessions.ttl_minutes must be positive", ErrInvalidConfig)
	}

	switch c.Booker.DefaultLayout {
	case "month", "week", "column":
	default:
		return fmt.Errorf("%w: booker.default_layout must be month, week or column", ErrInvalidConfig)
	}
	switch c.Booker.DefaultTimeFormat {
	case "12h", "24h":
	default:
		return fmt.Errorf("%w: booker.default_time_format must be 12h or 24h", ErrInvalidConfig)
	}
	if c.Booker.WeekDays < 1 || c.Booker.WeekDays > 7 {
		return fmt.Errorf("%w: booker.week_days must be in 1..7", ErrInvalidConfig)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with /", ErrInvalidConfig)
	}
	return nil
}

// applyEnv переопределяет адрес API из окружения (удобно для контейнеров)
func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("PUBLIC_CALENDAR_URL")); v != "" {
		cfg.PublicCalendar.URL = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		cfg.Logs.Level = v
	}
}
