package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// Config конфигурация сервиса бронирования
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Redis         RedisConfig         `toml:"redis"`
	Booking       BookingConfig       `toml:"booking"`
	Notifications NotificationsConfig `toml:"notifications"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Driver          string `toml:"driver"` // postgres | sqlite3
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	Path            string `toml:"path"` // файл для sqlite3
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для выбранного драйвера
func (c DatabaseConfig) DSN() string {
	if c.Driver == "sqlite3" {
		return fmt.Sprintf("file:%s?_foreign_keys=1&_busy_timeout=5000", c.Path)
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
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

type RedisConfig struct {
	Address  string `toml:"address"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	QueueKey string `toml:"queue_key"`
}

type BookingConfig struct {
	SystemClientID         int64  `toml:"system_client_id"`
	DailyLimit             int    `toml:"daily_limit"`
	CancellationWindowDays int    `toml:"cancellation_window_days"`
	SlotStepMinutes        int    `toml:"slot_step_minutes"`
	HoursID                int64  `toml:"hours_id"`
	Timezone               string `toml:"timezone"`
}

type NotificationsConfig struct {
	PublishTimeoutMs int             `toml:"publish_timeout_ms"`
	Templates        TemplatesConfig `toml:"templates"`
	WhatsApp         WhatsAppConfig  `toml:"whatsapp"`
	Worker           WorkerConfig    `toml:"worker"`
}

type TemplatesConfig struct {
	Confirmation string `toml:"confirmation"`
	Cancellation string `toml:"cancellation"`
}

type WhatsAppConfig struct {
	URL           string `toml:"url"`
	Token         string `toml:"token"`
	PhoneNumberID string `toml:"phone_number_id"`
	CountryPrefix string `toml:"country_prefix"`
	Language      string `toml:"language"`
	Timeout       int    `toml:"timeout"` // секунды
}

type WorkerConfig struct {
	RatePerSecond float64 `toml:"rate_per_second"`
	Burst         int     `toml:"burst"`
	PollWait      int     `toml:"poll_wait"` // секунды
	MaxRetries    int     `toml:"max_retries"`
	RetryDelaysMs []int   `toml:"retry_delays_ms"`
}

// Load читает TOML конфигурацию.
// Перед разбором подгружается .env (если есть) и подставляются ${VAR}
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(os.ExpandEnv(string(data)))
}

// Parse разбирает TOML и заполняет значения по умолчанию
func Parse(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode toml: %w", err)
	}

	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "facility_booking"
	}
	if c.Redis.Address == "" {
		c.Redis.Address = "localhost:6379"
	}
	if c.Redis.QueueKey == "" {
		c.Redis.QueueKey = "booking:notifications"
	}
	if c.Booking.DailyLimit == 0 {
		c.Booking.DailyLimit = domain.DefaultDailyReservationLimit
	}
	if c.Booking.CancellationWindowDays == 0 {
		c.Booking.CancellationWindowDays = domain.DefaultCancellationWindowDays
	}
	if c.Booking.SlotStepMinutes == 0 {
		c.Booking.SlotStepMinutes = domain.DefaultSlotStepMinutes
	}
	if c.Booking.HoursID == 0 {
		c.Booking.HoursID = domain.DefaultOperatingHoursID
	}
	if c.Notifications.PublishTimeoutMs == 0 {
		c.Notifications.PublishTimeoutMs = 500
	}
	if c.Notifications.Templates.Confirmation == "" {
		c.Notifications.Templates.Confirmation = "confirmacaoagenda"
	}
	if c.Notifications.Templates.Cancellation == "" {
		c.Notifications.Templates.Cancellation = "cancelamentoagenda"
	}
	if c.Notifications.WhatsApp.URL == "" {
		c.Notifications.WhatsApp.URL = "https://graph.facebook.com/v20.0"
	}
	if c.Notifications.WhatsApp.Language == "" {
		c.Notifications.WhatsApp.Language = "pt_BR"
	}
	if c.Notifications.WhatsApp.Timeout == 0 {
		c.Notifications.WhatsApp.Timeout = 10
	}
}

func (c *Config) validate() error {
	if c.Database.Driver != "postgres" && c.Database.Driver != "sqlite3" {
		return fmt.Errorf("config: unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.Driver == "sqlite3" && c.Database.Path == "" {
		return errors.New("config: database.path is required for sqlite3")
	}
	if c.Booking.SystemClientID <= 0 {
		return errors.New("config: booking.system_client_id must be positive")
	}
	if _, err := time.LoadLocation(c.Booking.Timezone); err != nil {
		return fmt.Errorf("config: booking.timezone: %w", err)
	}
	return nil
}

// PublishTimeout ограничение на публикацию уведомления в очередь
func (c *Config) PublishTimeout() time.Duration {
	return time.Duration(c.Notifications.PublishTimeoutMs) * time.Millisecond
}

// RetryDelays задержки между повторами доставки
func (c WorkerConfig) RetryDelays() []time.Duration {
	delays := make([]time.Duration, 0, len(c.RetryDelaysMs))
	for _, ms := range c.RetryDelaysMs {
		delays = append(delays, time.Duration(ms)*time.Millisecond)
	}
	return delays
}
