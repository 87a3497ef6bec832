package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
api:
  addr: ":8088"
catalog:
  flights: 12
  date: "2026-03-15"
  seed: 42
pricing:
  popular_routes: ["JFK-LAX"]
  use_heuristic_prediction: true
metrics:
  prometheus_enabled: true
mqtt:
  enabled: false
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8088", cfg.API.Addr)
	assert.Equal(t, 12, cfg.Catalog.Flights)
	assert.Equal(t, int64(42), cfg.Catalog.Seed)
	assert.Equal(t, []string{"JFK-LAX"}, cfg.Pricing.PopularRoutes)
	assert.True(t, cfg.Pricing.UseHeuristicPrediction)
	assert.True(t, cfg.Metrics.PrometheusEnabled)
	assert.Equal(t, ":9090", cfg.Metrics.PrometheusAddr)
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, "config.json", `{"catalog": {"flights": 5, "date": "2026-03-15"}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.API.Addr)
	assert.Equal(t, "farecast/prices", cfg.MQTT.TopicPrefix)
	assert.NotEmpty(t, cfg.MQTT.ClientID)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
api:
  addr: ":8080"
catalog:
  date: "2026-03-15"
`)
	t.Setenv("FARECAST_API__ADDR", ":9999")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.API.Addr)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(writeConfig(t, "config.toml", "x = 1"))
	assert.Error(t, err, "unsupported format")

	_, err = Load(writeConfig(t, "config.yaml", `
catalog:
  date: "not-a-date"
`))
	assert.Error(t, err, "bad catalog date")

	_, err = Load(writeConfig(t, "config.yaml", `
catalog:
  date: "2026-03-15"
metrics:
  influx_enabled: true
`))
	assert.Error(t, err, "influx without url")

	_, err = Load(writeConfig(t, "config.yaml", `
catalog:
  date: "2026-03-15"
mqtt:
  enabled: true
`))
	assert.Error(t, err, "mqtt without broker")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
