package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

// Storage drivers
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Storage    StorageConfig    `toml:"storage"`
	Database   DatabaseConfig   `toml:"database"`
	Scheduling SchedulingConfig `toml:"scheduling"`
	Assistant  AssistantConfig  `toml:"assistant"`
	Events     EventsConfig     `toml:"events"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто = только stdout
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type StorageConfig struct {
	Driver string `toml:"driver"` // memory | postgres
	Seed   bool   `toml:"seed"`   // заполнить справочники и записи демо-данными
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

// DSN возвращает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type SchedulingConfig struct {
	Timezone       string `toml:"timezone"`        // IANA, "Local" = зона процесса
	WorkStart      string `toml:"work_start"`      // HH:MM
	WorkEnd        string `toml:"work_end"`        // HH:MM
	StepMinutes    int    `toml:"step_minutes"`    // шаг сетки слотов
	SearchDays     int    `toml:"search_days"`     // горизонт поиска по умолчанию
	RejectOverlaps bool   `toml:"reject_overlaps"` // отклонять пересекающиеся записи при create/update
}

// Location загружает временную зону расписания
func (c SchedulingConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// WorkStartMinute возвращает начало рабочего дня в минутах от полуночи
func (c SchedulingConfig) WorkStartMinute() (int, error) {
	return parseMinuteOfDay(c.WorkStart)
}

// WorkEndMinute возвращает конец рабочего дня в минутах от полуночи.
// "24:00" допускается как конец суток.
func (c SchedulingConfig) WorkEndMinute() (int, error) {
	if c.WorkEnd == "24:00" {
		return domain.MinutesPerDay, nil
	}
	return parseMinuteOfDay(c.WorkEnd)
}

type AssistantConfig struct {
	APIKey   string `toml:"api_key"`
	Model    string `toml:"model"`
	Timeout  int    `toml:"timeout"`  // секунды
	Language string `toml:"language"` // RU | EN
}

type EventsConfig struct {
	Enabled      bool     `toml:"enabled"`
	Brokers      []string `toml:"brokers"`
	Topic        string   `toml:"topic"`
	WriteTimeout int      `toml:"write_timeout"` // секунды
}

// Load читает конфигурацию из TOML-файла, применяет значения по умолчанию,
// переменные окружения и валидирует результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
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
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "salon-scheduler",
		},
		Storage: StorageConfig{
			Driver: StorageMemory,
			Seed:   true,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Scheduling: SchedulingConfig{
			Timezone:       "Local",
			WorkStart:      "09:00",
			WorkEnd:        "21:00",
			StepMinutes:    domain.DefaultStepMinutes,
			SearchDays:     domain.DefaultSearchDays,
			RejectOverlaps: true,
		},
		Assistant: AssistantConfig{
			Model:    "gemini-2.5-flash",
			Timeout:  10,
			Language: "RU",
		},
		Events: EventsConfig{
			Topic:        "salon.appointments",
			WriteTimeout: 5,
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Assistant.APIKey = v
	}
	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		c.Database.Password = v
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be a valid TCP port", ErrInvalidConfig)
	}

	switch c.Storage.Driver {
	case StorageMemory:
	case StoragePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres storage", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if _, err := c.Scheduling.Location(); err != nil {
		return fmt.Errorf("%w: scheduling.timezone: %v", ErrInvalidConfig, err)
	}

	start, err := c.Scheduling.WorkStartMinute()
	if err != nil {
		return fmt.Errorf("%w: scheduling.work_start: %v", ErrInvalidConfig, err)
	}
	end, err := c.Scheduling.WorkEndMinute()
	if err != nil {
		return fmt.Errorf("%w: scheduling.work_end: %v", ErrInvalidConfig, err)
	}
	if start >= end {
		return fmt.Errorf("%w: scheduling.work_start must be before work_end", ErrInvalidConfig)
	}

	if c.Scheduling.StepMinutes < domain.MinStepMinutes || c.Scheduling.StepMinutes > domain.MaxStepMinutes {
		return fmt.Errorf("%w: scheduling.step_minutes must be in [%d, %d]",
			ErrInvalidConfig, domain.MinStepMinutes, domain.MaxStepMinutes)
	}
	if c.Scheduling.SearchDays < 1 || c.Scheduling.SearchDays > domain.MaxSearchDays {
		return fmt.Errorf("%w: scheduling.search_days must be in [1, %d]", ErrInvalidConfig, domain.MaxSearchDays)
	}

	if c.Events.Enabled && (len(c.Events.Brokers) == 0 || c.Events.Topic == "") {
		return fmt.Errorf("%w: events.brokers and events.topic are required when events are enabled", ErrInvalidConfig)
	}

	return nil
}

func parseMinuteOfDay(s string) (int, error) {
	ts, err := types.NewTimeStringFromString(s)
	if err != nil {
		return 0, err
	}
	return ts.MinuteOfDay(), nil
}
