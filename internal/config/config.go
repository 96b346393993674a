package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	ScheduleFeed ScheduleFeedConfig `toml:"schedule_feed"`
	Booking      BookingConfig      `toml:"booking"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// ScheduleFeedConfig настройки клиента внешнего календарного фида
type ScheduleFeedConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds, на каждый исходящий запрос
	Token   string `toml:"token"`   // credentials, передаются в Authorization
}

// BookingConfig настройки бронирования по умолчанию
type BookingConfig struct {
	DefaultSlotDurationMinutes int `toml:"default_slot_duration_minutes"`
	MinBookingNoticeMinutes    int `toml:"min_booking_notice_minutes"`
	AdvanceBookingDays         int `toml:"advance_booking_days"`
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig значения по умолчанию; перекрываются файлом конфигурации
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			ServiceName: "studio-booking-service",
			Path:        "/metrics",
		},
		ScheduleFeed: ScheduleFeedConfig{
			// Фиксированный таймаут на каждый исходящий запрос
			Timeout: 8,
		},
		Booking: BookingConfig{
			DefaultSlotDurationMinutes: 60,
			MinBookingNoticeMinutes:    120,
			AdvanceBookingDays:         30,
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}
	if c.ScheduleFeed.Enabled && c.ScheduleFeed.URL == "" {
		return fmt.Errorf("config: schedule_feed.url is required when the feed is enabled")
	}
	if c.ScheduleFeed.Timeout <= 0 {
		return fmt.Errorf("config: schedule_feed.timeout must be positive")
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("config: metrics.path is required when metrics are enabled")
	}
	return nil
}
