package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VisitBookingService/pkg/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const minimalConfig = `
[database]
host = "localhost"
user = "postgres"
dbname = "visit_booking"
`

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.Metrics.Enabled)

	catalog, err := cfg.SlotCatalog()
	require.NoError(t, err)
	assert.Len(t, catalog.Slots, 10)
	assert.Equal(t, types.TimeString("09:00"), catalog.Slots[0])
	assert.Equal(t, types.TimeString("13:30"), catalog.Slots[9])
	assert.Equal(t, 100, catalog.SlotCapacity)
	assert.Equal(t, 1000, catalog.DailyCapacity)
}

func TestLoad_CustomSlots(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig+`
[slots]
times = ["10:00", "09:00"]
slot_capacity = 5
daily_capacity = 8
`))
	require.NoError(t, err)

	catalog, err := cfg.SlotCatalog()
	require.NoError(t, err)

	// Слоты упорядочиваются независимо от порядка в конфигурации
	assert.Equal(t, []types.TimeString{"09:00", "10:00"}, catalog.Slots)
	assert.Equal(t, 5, catalog.SlotCapacity)
	assert.Equal(t, 8, catalog.DailyCapacity)
}

func TestLoad_RejectsInvalidSlotTime(t *testing.T) {
	_, err := Load(writeConfig(t, minimalConfig+`
[slots]
times = ["9am"]
`))
	require.Error(t, err)
}

func TestLoad_RejectsMissingDatabaseFields(t *testing.T) {
	_, err := Load(writeConfig(t, `
[database]
host = "localhost"
`))
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.local",
		Port:     5433,
		User:     "svc",
		Password: "secret",
		DBName:   "visit_booking",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.local port=5433 user=svc password=secret dbname=visit_booking sslmode=require",
		cfg.DSN(),
	)
}
