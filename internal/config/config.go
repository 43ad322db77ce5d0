package config

import (
	"errors"
	"fmt"
	"net"
	"net/netip"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/m04kA/nuisibook-booking/internal/calendar"
)

var (
	// ErrInvalidConfig возвращается, когда конфигурация не прошла валидацию
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Calendar   CalendarConfig   `toml:"calendar"`
	Diagnostic DiagnosticConfig `toml:"diagnostic"`
	Redis      RedisConfig      `toml:"redis"`
	RateLimit  RateLimitConfig  `toml:"ratelimit"`
	SendGrid   SendGridConfig   `toml:"sendgrid"`
	Twilio     TwilioConfig     `toml:"twilio"`
}

type ServerConfig struct {
	HTTPPort           int      `toml:"http_port"`
	ReadTimeout        int      `toml:"read_timeout"`     // секунды
	WriteTimeout       int      `toml:"write_timeout"`    // секунды
	IdleTimeout        int      `toml:"idle_timeout"`     // секунды
	ShutdownTimeout    int      `toml:"shutdown_timeout"` // секунды
	CORSAllowedOrigins []string `toml:"cors_allowed_origins"`
}

// DatabaseConfig параметры PostgreSQL. Пустой Host означает, что хранилище
// не настроено: сервис стартует, но операции с данными возвращают ErrNotConfigured.
type DatabaseConfig struct {
	Host             string `toml:"host"`
	Port             int    `toml:"port"`
	User             string `toml:"user"`
	Password         string `toml:"password"`
	DBName           string `toml:"dbname"`
	SSLMode          string `toml:"sslmode"`
	MaxOpenConns     int    `toml:"max_open_conns"`
	MaxIdleConns     int    `toml:"max_idle_conns"`
	ConnMaxLifetime  int    `toml:"conn_max_lifetime"` // секунды
	BookingsTable    string `toml:"bookings_table"`
	DiagnosticsTable string `toml:"diagnostics_table"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CalendarConfig часовой пояс бизнес-календаря и дополнительные праздники.
// Holidays: "2027" = ["2027-01-01", ...]; год из конфига заменяет встроенный.
// CoverageCheck cron-расписание проверки покрытия таблицы праздников.
type CalendarConfig struct {
	Timezone      string              `toml:"timezone"`
	Holidays      map[string][]string `toml:"holidays"`
	CoverageCheck string              `toml:"coverage_check"`
}

type DiagnosticConfig struct {
	InitialDelay int `toml:"initial_delay"` // секунды
	PollInterval int `toml:"poll_interval"` // секунды
	WaitTimeout  int `toml:"wait_timeout"`  // секунды
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type RateLimitConfig struct {
	Enabled  bool   `toml:"enabled"`
	Limit    int    `toml:"limit"`
	Window   int    `toml:"window"` // секунды
	Prefix   string `toml:"prefix"`
	FailOpen bool   `toml:"fail_open"`

	// TrustedProxies IP или CIDR прокси, чьему X-Forwarded-For верим
	TrustedProxies []string `toml:"trusted_proxies"`
}

type SendGridConfig struct {
	Enabled   bool   `toml:"enabled"`
	APIKey    string `toml:"api_key"`
	FromEmail string `toml:"from_email"`
	FromName  string `toml:"from_name"`
}

type TwilioConfig struct {
	Enabled            bool   `toml:"enabled"`
	AccountSID         string `toml:"account_sid"`
	AuthToken          string `toml:"auth_token"`
	FromNumber         string `toml:"from_number"`
	ProfessionalNumber string `toml:"professional_number"`
}

// Default значения по умолчанию, поверх которых декодируется файл
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    60,
			IdleTimeout:     60,
			ShutdownTimeout: 10,

			CORSAllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Port:             5432,
			SSLMode:          "disable",
			MaxOpenConns:     10,
			MaxIdleConns:     5,
			ConnMaxLifetime:  300,
			BookingsTable:    "rdv_bookings",
			DiagnosticsTable: "diagnostics_results",
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "nuisibook-booking",
		},
		Calendar: CalendarConfig{
			Timezone:      "Europe/Paris",
			CoverageCheck: "5 0 * * *",
		},
		Diagnostic: DiagnosticConfig{
			InitialDelay: 15,
			PollInterval: 5,
			WaitTimeout:  45,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		RateLimit: RateLimitConfig{
			Limit:    10,
			Window:   60,
			Prefix:   "rl:bookings",
			FailOpen: true,
		},
		SendGrid: SendGridConfig{
			FromName: "Nuisibook",
		},
	}
}

// Load читает TOML-файл, затем .env и переменные окружения (секреты
// из окружения имеют приоритет над файлом) и валидирует результат.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	// .env необязателен
	_ = godotenv.Load()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	setString(&c.Database.Host, "DB_HOST")
	setInt(&c.Database.Port, "DB_PORT")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.DBName, "DB_NAME")

	setString(&c.Logs.Level, "LOG_LEVEL")
	setString(&c.Calendar.Timezone, "CALENDAR_TIMEZONE")

	setString(&c.Redis.Addr, "REDIS_ADDR")
	setString(&c.Redis.Password, "REDIS_PASSWORD")

	setString(&c.SendGrid.APIKey, "SENDGRID_API_KEY")
	setString(&c.SendGrid.FromEmail, "SENDGRID_FROM_EMAIL")

	setString(&c.Twilio.AccountSID, "TWILIO_ACCOUNT_SID")
	setString(&c.Twilio.AuthToken, "TWILIO_AUTH_TOKEN")
	setString(&c.Twilio.FromNumber, "TWILIO_FROM_NUMBER")
	setString(&c.Twilio.ProfessionalNumber, "TWILIO_PROFESSIONAL_NUMBER")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if c.Database.Configured() {
		if c.Database.Port <= 0 || c.Database.Port > 65535 {
			return fmt.Errorf("%w: database.port out of range: %d", ErrInvalidConfig, c.Database.Port)
		}
		if c.Database.User == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.user and database.dbname are required", ErrInvalidConfig)
		}
	}
	if c.Database.BookingsTable == "" || c.Database.DiagnosticsTable == "" {
		return fmt.Errorf("%w: database table names must not be empty", ErrInvalidConfig)
	}

	if _, err := c.Calendar.Location(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Calendar.HolidaySet(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Calendar.CoverageCheck != "" {
		if _, err := cron.ParseStandard(c.Calendar.CoverageCheck); err != nil {
			return fmt.Errorf("%w: calendar.coverage_check: %v", ErrInvalidConfig, err)
		}
	}

	if c.Diagnostic.PollInterval <= 0 {
		return fmt.Errorf("%w: diagnostic.poll_interval must be positive", ErrInvalidConfig)
	}
	if c.Diagnostic.InitialDelay < 0 || c.Diagnostic.WaitTimeout < 0 {
		return fmt.Errorf("%w: diagnostic delays must not be negative", ErrInvalidConfig)
	}

	if c.RateLimit.Enabled && (c.RateLimit.Limit <= 0 || c.RateLimit.Window <= 0) {
		return fmt.Errorf("%w: ratelimit.limit and ratelimit.window must be positive", ErrInvalidConfig)
	}
	for _, proxy := range c.RateLimit.TrustedProxies {
		if !validProxy(proxy) {
			return fmt.Errorf("%w: ratelimit.trusted_proxies: invalid entry %q", ErrInvalidConfig, proxy)
		}
	}

	if c.SendGrid.Enabled && (c.SendGrid.APIKey == "" || c.SendGrid.FromEmail == "") {
		return fmt.Errorf("%w: sendgrid.api_key and sendgrid.from_email are required", ErrInvalidConfig)
	}

	if c.Twilio.Enabled && (c.Twilio.AccountSID == "" || c.Twilio.AuthToken == "" ||
		c.Twilio.FromNumber == "" || c.Twilio.ProfessionalNumber == "") {
		return fmt.Errorf("%w: twilio credentials and numbers are required", ErrInvalidConfig)
	}

	return nil
}

// Configured сообщает, задано ли подключение к БД
func (d DatabaseConfig) Configured() bool {
	return strings.TrimSpace(d.Host) != ""
}

// DSN строка подключения для lib/pq
// DSN строка подключения в виде postgres:// URL, спецсимволы экранируются
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.DBName,
	}
	if d.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {d.SSLMode}}.Encode()
	}
	return u.String()
}

// Location часовой пояс, в котором считается календарь
func (c CalendarConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("calendar.timezone %q: %v", c.Timezone, err)
	}
	return loc, nil
}

// HolidaySet встроенная таблица праздников, дополненная годами из конфига
func (c CalendarConfig) HolidaySet() (calendar.HolidaySet, error) {
	extra := make(map[int][]string, len(c.Holidays))
	for rawYear, dates := range c.Holidays {
		year, err := strconv.Atoi(rawYear)
		if err != nil {
			return calendar.HolidaySet{}, fmt.Errorf("calendar.holidays: invalid year %q", rawYear)
		}
		extra[year] = dates
	}

	return calendar.NewHolidaySet(calendar.MergeHolidays(calendar.FrenchHolidays(), extra))
}

func (d DiagnosticConfig) InitialDelayDuration() time.Duration {
	return time.Duration(d.InitialDelay) * time.Second
}

func (d DiagnosticConfig) PollIntervalDuration() time.Duration {
	return time.Duration(d.PollInterval) * time.Second
}

func (d DiagnosticConfig) WaitTimeoutDuration() time.Duration {
	return time.Duration(d.WaitTimeout) * time.Second
}

func validProxy(raw string) bool {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, "/") {
		_, err := netip.ParsePrefix(raw)
		return err == nil
	}
	_, err := netip.ParseAddr(raw)
	return err == nil
}

func (r RateLimitConfig) WindowDuration() time.Duration {
	return time.Duration(r.Window) * time.Second
}
