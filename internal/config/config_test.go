package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, 5, cfg.Scheduling.StepMinutes)
	assert.Equal(t, 7, cfg.Scheduling.SearchDays)
	assert.True(t, cfg.Scheduling.RejectOverlaps)

	start, err := cfg.Scheduling.WorkStartMinute()
	require.NoError(t, err)
	end, err := cfg.Scheduling.WorkEndMinute()
	require.NoError(t, err)
	assert.Equal(t, 540, start)
	assert.Equal(t, 1260, end)
}

func TestLoad_SchedulingSection(t *testing.T) {
	path := writeConfig(t, `
[scheduling]
timezone = "Europe/Moscow"
work_start = "10:00"
work_end = "24:00"
step_minutes = 15
search_days = 14
reject_overlaps = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	loc, err := cfg.Scheduling.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())

	end, err := cfg.Scheduling.WorkEndMinute()
	require.NoError(t, err)
	assert.Equal(t, 1440, end)
	assert.False(t, cfg.Scheduling.RejectOverlaps)
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "from-env")
	path := writeConfig(t, `
[assistant]
api_key = "from-file"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Assistant.APIKey)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"bad port", func(c *Config) { c.Server.HTTPPort = 0 }},
		{"unknown driver", func(c *Config) { c.Storage.Driver = "mongo" }},
		{"postgres without db", func(c *Config) { c.Storage.Driver = StoragePostgres; c.Database.DBName = "" }},
		{"bad timezone", func(c *Config) { c.Scheduling.Timezone = "Mars/Olympus" }},
		{"bad work start", func(c *Config) { c.Scheduling.WorkStart = "nine" }},
		{"inverted window", func(c *Config) { c.Scheduling.WorkStart = "21:00"; c.Scheduling.WorkEnd = "09:00" }},
		{"zero step", func(c *Config) { c.Scheduling.StepMinutes = 0 }},
		{"too many days", func(c *Config) { c.Scheduling.SearchDays = 100 }},
		{"events without brokers", func(c *Config) { c.Events.Enabled = true }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	assert.NoError(t, Default().Validate())
}

func TestDatabaseDSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: 5432, User: "salon", Password: "secret", DBName: "salon", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=salon password=secret dbname=salon sslmode=disable", c.DSN())
}

func TestSchedulingLocal(t *testing.T) {
	loc, err := SchedulingConfig{Timezone: "Local"}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}
