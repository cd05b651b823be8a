package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GROUPFORM_COMMENTARY_API_KEY", "")
	t.Setenv("GROUPFORM_ADDR", "")
	t.Setenv("GROUPFORM_REDIS_ADDR", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "groupform.yaml")
	data := `
server:
  addr: ":9090"
grouping:
  default_size: 5
commentary:
  provider: gemini
  model: gemini-2.0-flash
  timeout: 30s
redis:
  ttl: 10m
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("GROUPFORM_COMMENTARY_API_KEY", "")
	t.Setenv("GROUPFORM_ADDR", "")
	t.Setenv("GROUPFORM_REDIS_ADDR", "redis:6379")

	cfg, err := Load(path)

	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Server.Addr)
	require.Equal(t, 5, cfg.Grouping.DefaultSize)
	require.Equal(t, "gemini", cfg.Commentary.Provider)
	require.Equal(t, "gemini-2.0-flash", cfg.Commentary.Model)
	require.Equal(t, "secret", cfg.Commentary.APIKey)
	require.Equal(t, 30*time.Second, cfg.Commentary.Timeout)
	require.True(t, cfg.Redis.Enabled)
	require.Equal(t, "redis:6379", cfg.Redis.Addr)
	require.Equal(t, 10*time.Minute, cfg.Redis.TTL)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"group size": "grouping:\n  default_size: 0\n",
		"provider":   "commentary:\n  provider: carrier-pigeon\n",
		"bad yaml":   "grouping: [",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "groupform.yaml")
			require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

			_, err := Load(path)

			require.Error(t, err)
		})
	}
}
