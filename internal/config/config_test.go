package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "localhost"
port = 5432
user = "postgres"
password = "secret"
db_name = "facility_service"

[redis]
enabled = true
addr = "localhost:6379"

[campus]
timezone = "Asia/Kolkata"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "host=localhost port=5432 user=postgres password=secret dbname=facility_service sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "booking_events", cfg.Redis.Channel)
	assert.Equal(t, "Asia/Kolkata", cfg.Campus.Timezone)

	loc, err := cfg.Campus.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", loc.String())
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
user = "postgres"
db_name = "facility_service"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "UTC", cfg.Campus.Timezone)
}

func TestLoad_MissingDatabase(t *testing.T) {
	path := writeConfig(t, `
[campus]
timezone = "UTC"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidTimezone(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
user = "postgres"
db_name = "facility_service"

[campus]
timezone = "Mars/Olympus"
`)

	_, err := Load(path)
	assert.Error(t, err)
}
