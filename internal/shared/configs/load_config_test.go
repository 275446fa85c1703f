package configs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfigYAML = `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: debug
file_storage:
  root_dir: ./data
ingestion:
  log_file_key: logs.tsv
aggregation:
  window_size: hour
analysis:
  models:
    - gemini-1.5-flash
    - gemini-1.5-pro
  timeout: 30
  sample_size: 15
  sample_seed: 42
  rate_per_second: 0.5
  rate_burst: 2
`

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp("", "test_config_*.yml")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	tmpfile.Close()

	return tmpfile.Name()
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	path := writeTempConfig(t, validConfigYAML)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Server.WriteTimeout)
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "./data", cfg.FileStorage.RootDir)
	assert.Equal(t, "logs.tsv", cfg.Ingestion.LogFileKey)
	assert.Equal(t, "hour", cfg.Aggregation.WindowSize)
	assert.Equal(t, []string{"gemini-1.5-flash", "gemini-1.5-pro"}, cfg.Analysis.Models)
	assert.Equal(t, 30, cfg.Analysis.TimeoutSeconds)
	assert.Equal(t, 15, cfg.Analysis.SampleSize)
	assert.Equal(t, int64(42), cfg.Analysis.SampleSeed)
	assert.Equal(t, 0.5, cfg.Analysis.RatePerSecond)
	assert.Equal(t, 2, cfg.Analysis.RateBurst)
}

func TestLoadConfig_ApiKeyFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key-123")

	path := writeTempConfig(t, validConfigYAML)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "test-key-123", cfg.Analysis.ApiKey)
}

func TestLoadConfig_MissingServerPort(t *testing.T) {
	invalidConfig := `server:
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: debug
file_storage:
  root_dir: ./data
ingestion:
  log_file_key: logs.tsv
aggregation:
  window_size: hour
analysis:
  models: [gemini-1.5-flash]
  timeout: 30
  sample_size: 15
  rate_per_second: 0.5
  rate_burst: 2
`
	path := writeTempConfig(t, invalidConfig)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "port")
}

func TestLoadConfig_InvalidWindowSize(t *testing.T) {
	invalidConfig := `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
file_storage:
  root_dir: ./data
ingestion:
  log_file_key: logs.tsv
aggregation:
  window_size: day
analysis:
  models: [gemini-1.5-flash]
  timeout: 30
  sample_size: 15
  rate_per_second: 0.5
  rate_burst: 2
`
	path := writeTempConfig(t, invalidConfig)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "window_size")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/configs.yml")
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
