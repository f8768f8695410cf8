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

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[storage]
driver = "postgres"

[database]
host = "localhost"
port = 5432
user = "salon"
password = "secret"
dbname = "salon_booking"
sslmode = "disable"

[redis]
addr = "localhost:6379"
db = 0

[notify_service]
enabled = true
url = "http://localhost:9090"
timeout = 5

[logs]
file = "logs/app.log"
level = "info"

[metrics]
enabled = true
service_name = "salon-booking-service"
path = "/metrics"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.True(t, cfg.NotifyService.Enabled)
	assert.Equal(t, "salon-booking-service", cfg.Metrics.ServiceName)

	assert.Equal(t,
		"host=localhost port=5432 user=salon password=secret dbname=salon_booking sslmode=disable",
		cfg.Database.DSN(),
	)
}

func TestLoad_FileDriver(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080

[storage]
driver = "file"
documents_dir = "data/documents"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, StorageDriverFile, cfg.Storage.Driver)
	assert.Equal(t, "data/documents", cfg.Storage.DocumentsDir)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing http port",
			content: `
[storage]
driver = "postgres"
`,
		},
		{
			name: "unknown storage driver",
			content: `
[server]
http_port = 8080

[storage]
driver = "s3"
`,
		},
		{
			name: "file driver without documents dir",
			content: `
[server]
http_port = 8080

[storage]
driver = "file"
`,
		},
		{
			name: "notify service enabled without url",
			content: `
[server]
http_port = 8080

[storage]
driver = "postgres"

[notify_service]
enabled = true
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}
