package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Falokut/tickets_analyzer_service/internal/config"
	"github.com/Falokut/tickets_analyzer_service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, "log_level: debug\n")

	cfg, err := config.ReadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "VVO", cfg.Route.Origin)
	assert.Equal(t, "TLV", cfg.Route.Destination)
	assert.Equal(t, repository.FileSource, cfg.TicketsSource.Type)
	assert.Equal(t, "data/tickets.json", cfg.TicketsSource.FilePath)
	assert.Equal(t, "tickets", cfg.TicketsSource.Mongo.Collection)
	assert.Equal(t, "tickets", cfg.TicketsSource.Redis.Key)
	assert.Equal(t, "tickets_analyzed", cfg.AnalysisEventsConfig.Topic)
	assert.Empty(t, cfg.AnalysisEventsConfig.Brokers)
}

func TestReadConfig_File(t *testing.T) {
	path := writeConfig(t, `
route:
  origin: "LED"
  destination: "TLV"
tickets_source:
  type: "REDIS"
  redis:
    addr: "redis:6379"
    key: "dataset"
analysis_events:
  brokers: ["kafka:9092"]
`)

	cfg, err := config.ReadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "LED", cfg.Route.Origin)
	assert.Equal(t, repository.RedisSource, cfg.TicketsSource.Type)
	assert.Equal(t, "redis:6379", cfg.TicketsSource.Redis.Addr)
	assert.Equal(t, "dataset", cfg.TicketsSource.Redis.Key)
	assert.Equal(t, []string{"kafka:9092"}, cfg.AnalysisEventsConfig.Brokers)
}

func TestReadConfig_EnvOverride(t *testing.T) {
	path := writeConfig(t, "route:\n  origin: \"LED\"\n")
	t.Setenv("ROUTE_ORIGIN", "vvo")
	t.Setenv("TICKETS_FILE_PATH", "/srv/tickets.json")

	cfg, err := config.ReadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "vvo", cfg.Route.Origin)
	assert.Equal(t, "/srv/tickets.json", cfg.TicketsSource.FilePath)
}

func TestReadConfig_MissingFile(t *testing.T) {
	_, err := config.ReadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
