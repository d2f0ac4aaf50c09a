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
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
read_timeout = 20

[database]
host = "db.internal"
port = 5433
user = "lessons"
password = "secret"
dbname = "lessons"
sslmode = "require"

[logs]
file = "logs/app.log"
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "lessons-test"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 20, cfg.Server.ReadTimeout)
	// Unset values fall back to defaults.
	assert.Equal(t, 15, cfg.Server.WriteTimeout)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)

	assert.Equal(t,
		"host=db.internal port=5433 user=lessons password=secret dbname=lessons sslmode=require",
		cfg.Database.DSN())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"missing database user",
			"[database]\ndbname = \"lessons\"\n",
		},
		{
			"missing dbname",
			"[database]\nuser = \"lessons\"\n",
		},
		{
			"bad port",
			"[server]\nhttp_port = 70000\n\n[database]\nuser = \"lessons\"\ndbname = \"lessons\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
