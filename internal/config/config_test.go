package config

import (
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/nuisibook-booking/internal/calendar"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "db"
user = "app"
dbname = "nuisibook"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "rdv_bookings", cfg.Database.BookingsTable)
	assert.Equal(t, "diagnostics_results", cfg.Database.DiagnosticsTable)
	assert.Equal(t, "Europe/Paris", cfg.Calendar.Timezone)
	assert.Equal(t, 15*time.Second, cfg.Diagnostic.InitialDelayDuration())
	assert.Equal(t, 5*time.Second, cfg.Diagnostic.PollIntervalDuration())
	assert.Equal(t, "5 0 * * *", cfg.Calendar.CoverageCheck)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.True(t, cfg.Database.Configured())
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("SENDGRID_API_KEY", "SG.key")

	path := writeConfig(t, `
[database]
host = "db"
user = "app"
password = "from-file"
dbname = "nuisibook"

[sendgrid]
enabled = true
from_email = "rdv@nuisibook.fr"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "SG.key", cfg.SendGrid.APIKey)
	assert.Equal(t, "postgres://app:s3cret@db:5432/nuisibook?sslmode=disable", cfg.Database.DSN())
}

func TestDatabaseConfig_DSN_EscapesCredentials(t *testing.T) {
	passwords := []string{"p@ss word", "a=b c", `quo'te\back`, "sl/ash?#%"}

	for _, password := range passwords {
		t.Run(password, func(t *testing.T) {
			db := Default().Database
			db.Host = "db.internal"
			db.User = "app user"
			db.DBName = "nuisibook"
			db.Password = password

			_, err := pq.NewConnector(db.DSN())
			require.NoError(t, err)

			u, err := url.Parse(db.DSN())
			require.NoError(t, err)
			got, ok := u.User.Password()
			assert.True(t, ok)
			assert.Equal(t, password, got)
			assert.Equal(t, "app user", u.User.Username())
			assert.Equal(t, "/nuisibook", u.Path)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.HTTPPort = 0 }},
		{"unknown timezone", func(c *Config) { c.Calendar.Timezone = "Mars/Olympus" }},
		{"bad holiday year", func(c *Config) { c.Calendar.Holidays = map[string][]string{"next": {"2027-01-01"}} }},
		{"holiday filed under wrong year", func(c *Config) {
			c.Calendar.Holidays = map[string][]string{"2027": {"2028-01-01"}}
		}},
		{"database without user", func(c *Config) { c.Database.Host = "db" }},
		{"bad coverage schedule", func(c *Config) { c.Calendar.CoverageCheck = "every day" }},
		{"bad trusted proxy", func(c *Config) { c.RateLimit.TrustedProxies = []string{"proxy.local"} }},
		{"zero poll interval", func(c *Config) { c.Diagnostic.PollInterval = 0 }},
		{"sendgrid without key", func(c *Config) { c.SendGrid.Enabled = true }},
		{"twilio without credentials", func(c *Config) { c.Twilio.Enabled = true }},
		{"ratelimit without window", func(c *Config) {
			c.RateLimit.Enabled = true
			c.RateLimit.Window = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestValidate_TrustedProxies(t *testing.T) {
	cfg := Default()
	cfg.RateLimit.TrustedProxies = []string{"10.0.0.0/8", "192.0.2.1", "2001:db8::/32"}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_UnconfiguredDatabaseIsAllowed(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.Database.Configured())
	assert.NoError(t, cfg.Validate())
}

func TestCalendarConfig_HolidaySet(t *testing.T) {
	cfg := CalendarConfig{
		Timezone: "Europe/Paris",
		Holidays: map[string][]string{"2030": {"2030-01-01"}},
	}

	set, err := cfg.HolidaySet()
	require.NoError(t, err)

	assert.True(t, set.Covers(2025))
	assert.True(t, set.Covers(2030))
	assert.True(t, set.Contains(calendar.NewDate(2030, time.January, 1)))
	assert.True(t, set.Contains(calendar.NewDate(2025, time.May, 8)))
}
