package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/VisitBookingService/internal/domain"
	"github.com/m04kA/VisitBookingService/pkg/types"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Slots    SlotsConfig    `toml:"slots"`
}

// ServerConfig настройки HTTP сервера
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
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// SlotsConfig каталог слотов дня
// Каталог и вместимости инжектируются конфигурацией, а не захардкожены:
// исходные ревизии системы расходились в определении каталога
type SlotsConfig struct {
	Times         []string `toml:"times"`          // времена начала слотов, "HH:MM"
	SlotCapacity  int      `toml:"slot_capacity"`  // вместимость одного слота
	DailyCapacity int      `toml:"daily_capacity"` // дневной лимит по всем слотам
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
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
	if c.Logs.File == "" {
		c.Logs.File = "visit-booking-service.log"
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "visit-booking-service"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if len(c.Slots.Times) == 0 {
		c.Slots.Times = domain.DefaultSlotTimes
	}
	if c.Slots.SlotCapacity == 0 {
		c.Slots.SlotCapacity = domain.DefaultSlotCapacity
	}
	if c.Slots.DailyCapacity == 0 {
		c.Slots.DailyCapacity = domain.DefaultDailyCapacity
	}
}

func (c *Config) validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("config: database.user is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	// Каталог слотов проверяется сразу, чтобы сервис не стартовал
	// с некорректной конфигурацией
	if _, err := c.SlotCatalog(); err != nil {
		return err
	}
	return nil
}

// SlotCatalog строит доменный каталог слотов из конфигурации
func (c *Config) SlotCatalog() (domain.SlotCatalog, error) {
	slots := make([]types.TimeString, 0, len(c.Slots.Times))
	for _, raw := range c.Slots.Times {
		ts, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return domain.SlotCatalog{}, fmt.Errorf("config: invalid slot time %q: %w", raw, err)
		}
		slots = append(slots, ts)
	}
	return domain.NewSlotCatalog(slots, c.Slots.SlotCapacity, c.Slots.DailyCapacity)
}
