package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Booking  BookingConfig  `toml:"booking"`
	Hours    HoursConfig    `toml:"hours"`
	WhatsApp WhatsAppConfig `toml:"whatsapp"`
	Admin    AdminConfig    `toml:"admin"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
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

// DSN возвращает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// RedisConfig настройки Redis для сессий WhatsApp-диалогов
type RedisConfig struct {
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	SessionTTL int    `toml:"session_ttl"` // минуты
}

// BookingConfig правила бронирования зала
type BookingConfig struct {
	Timezone   string `toml:"timezone"`
	WindowDays int    `toml:"window_days"`
	TVCapacity int    `toml:"tv_capacity"`
}

// HoursConfig рабочие часы: будни могут быть разбиты перерывом
// на несколько сегментов, выходные задаются отдельно
type HoursConfig struct {
	Weekday []HoursSegment `toml:"weekday"`
	Weekend []HoursSegment `toml:"weekend"`
}

// HoursSegment один непрерывный интервал работы, формат "HH:MM"
type HoursSegment struct {
	Open  string `toml:"open"`
	Close string `toml:"close"`
}

// WhatsAppConfig настройки WhatsApp Cloud API.
// Токены подтягиваются из окружения, чтобы не хранить секреты в config.toml.
type WhatsAppConfig struct {
	Enabled       bool   `toml:"enabled"`
	APIBaseURL    string `toml:"api_base_url"`
	PhoneNumberID string `toml:"phone_number_id"`
	Timeout       int    `toml:"timeout"` // секунды

	AccessToken string `toml:"-"` // WHATSAPP_ACCESS_TOKEN
	VerifyToken string `toml:"-"` // WHATSAPP_VERIFY_TOKEN
}

// AdminConfig настройки админского доступа
type AdminConfig struct {
	Token string `toml:"-"` // ADMIN_API_TOKEN
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Load читает конфигурацию из TOML-файла и дополняет её секретами из окружения
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.WhatsApp.AccessToken = os.Getenv("WHATSAPP_ACCESS_TOKEN")
	cfg.WhatsApp.VerifyToken = os.Getenv("WHATSAPP_VERIFY_TOKEN")
	cfg.Admin.Token = os.Getenv("ADMIN_API_TOKEN")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("server.http_port must be positive, got %d", c.Server.HTTPPort)
	}
	if c.Booking.WindowDays <= 0 {
		return fmt.Errorf("booking.window_days must be positive, got %d", c.Booking.WindowDays)
	}
	if c.Booking.TVCapacity <= 0 {
		return fmt.Errorf("booking.tv_capacity must be positive, got %d", c.Booking.TVCapacity)
	}
	if c.Booking.Timezone == "" {
		return fmt.Errorf("booking.timezone is required")
	}
	if len(c.Hours.Weekday) == 0 || len(c.Hours.Weekend) == 0 {
		return fmt.Errorf("hours.weekday and hours.weekend must each have at least one segment")
	}
	if c.WhatsApp.Enabled {
		if c.WhatsApp.AccessToken == "" {
			return fmt.Errorf("WHATSAPP_ACCESS_TOKEN is required when whatsapp.enabled = true")
		}
		if c.WhatsApp.VerifyToken == "" {
			return fmt.Errorf("WHATSAPP_VERIFY_TOKEN is required when whatsapp.enabled = true")
		}
		if c.WhatsApp.PhoneNumberID == "" {
			return fmt.Errorf("whatsapp.phone_number_id is required when whatsapp.enabled = true")
		}
	}
	if c.Admin.Token == "" {
		return fmt.Errorf("ADMIN_API_TOKEN is required")
	}
	return nil
}
