package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseFile_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"server_base_url": "http://files.example:9000/api",
		"poll_interval":   "10s",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseFile(cfg)

		assert.Equal(t, "http://files.example:9000/api", cfg.ServerBaseURL)
		assert.Equal(t, 10*time.Second, cfg.PollInterval)
	})

	t.Run("omitted keys keep existing values", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{RequestTimeout: 42 * time.Second, OutputDir: "out"}
		parseFile(cfg)

		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "out", cfg.OutputDir)
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			ServerBaseURL: "http://defaults:1234",
			PollInterval:  42 * time.Second,
		}
		parseFile(cfg)

		assert.Equal(t, "http://defaults:1234", cfg.ServerBaseURL)
		assert.Equal(t, 42*time.Second, cfg.PollInterval)
	})

	t.Run("yaml extension decodes as yaml", func(t *testing.T) {
		yamlPath := filepath.Join(dir, "cfg.yaml")
		content := "server_base_url: http://yaml.example/api\nupload_timeout: 90s\nsession_id: s-77\n"
		require.NoError(t, os.WriteFile(yamlPath, []byte(content), 0o600))

		os.Args = []string{"testbin", "-c", yamlPath}

		cfg := &Config{}
		parseFile(cfg)

		assert.Equal(t, "http://yaml.example/api", cfg.ServerBaseURL)
		assert.Equal(t, 90*time.Second, cfg.UploadTimeout)
		assert.Equal(t, "s-77", cfg.SessionID)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseFile(cfg) })
	})
}
