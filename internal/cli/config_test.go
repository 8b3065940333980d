package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shlokkku/Ageis-AI/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Empty(t, cfg.Redis.Address)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ageis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level: debug
server:
  port: 9090
redis:
  address: localhost:6379
  ttl: 5m
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, "5m", cfg.Redis.TTL)
}

func TestLoadConfig_EnvOverridesAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "from-env")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Gemini.APIKey)
}

func TestBuildRuntime_MemoryWithRecordsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
  {"id": "user-1", "annual_income": 60000, "current_savings": 50000, "age": 40, "retirement_age_goal": 65}
]`), 0o644))

	cfg := DefaultConfig()
	cfg.Records.File = path

	rt, err := BuildRuntime(context.Background(), cfg)
	require.NoError(t, err)
	defer rt.Close()

	ans, err := rt.Pipeline.Ask(context.Background(), domain.Query{
		Text:     "How are my savings growing?",
		Identity: "user-1",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ProvenanceRecordData, ans.Provenance)
}
