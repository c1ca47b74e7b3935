package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/domain"
	"github.com/Edmartins1980/Everaldo-Cabeleireiro/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Business      BusinessConfig      `toml:"business"`
	Notifications NotificationsConfig `toml:"notifications"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// BusinessConfig дефолтное расписание салона
// Используется, когда в таблице настроек нет переопределений
type BusinessConfig struct {
	Timezone     string `toml:"timezone"`
	OpenTime     string `toml:"open_time"`
	CloseTime    string `toml:"close_time"`
	StepMinutes  int    `toml:"step_minutes"`
	GraceMinutes int    `toml:"grace_minutes"`
}

// DaySchedule собирает domain.DaySchedule из конфигурации
func (c *BusinessConfig) DaySchedule() domain.DaySchedule {
	schedule := domain.DefaultDaySchedule()

	if c.Timezone != "" {
		schedule.Timezone = c.Timezone
	}
	if c.OpenTime != "" {
		schedule.OpenTime = types.TimeString(c.OpenTime)
	}
	if c.CloseTime != "" {
		schedule.CloseTime = types.TimeString(c.CloseTime)
	}
	if c.StepMinutes > 0 {
		schedule.StepMinutes = c.StepMinutes
	}
	if c.GraceMinutes > 0 {
		schedule.GraceMinutes = c.GraceMinutes
	}

	return schedule
}

// NotificationsConfig настройки push-уведомлений (OneSignal-совместимый API)
type NotificationsConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	AppID   string `toml:"app_id"`
	APIKey  string `toml:"api_key"`
	Timeout int    `toml:"timeout"` // seconds
}

// Load читает конфигурацию из TOML файла
// Секреты (пароль БД, ключ push API) могут быть переопределены переменными
// окружения DB_PASSWORD и PUSH_API_KEY (загружаются из .env в main)
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
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
			Path: "/metrics",
		},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("PUSH_API_KEY"); v != "" {
		cfg.Notifications.APIKey = v
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid http_port %d", c.Server.HTTPPort)
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}
	if c.Metrics.Enabled && c.Metrics.ServiceName == "" {
		return fmt.Errorf("metrics service_name is required when metrics are enabled")
	}

	schedule := c.Business.DaySchedule()
	if err := schedule.Validate(); err != nil {
		return fmt.Errorf("invalid business schedule: %w", err)
	}

	return nil
}
