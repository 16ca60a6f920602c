package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// inTempDir runs the test from an empty working directory so that no
// config file from the repo is picked up.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	req := require.New(t)
	inTempDir(t)
	t.Setenv("CONFIG_ENV", "missing")

	cfg, err := Load()

	req.NoError(err)
	req.Equal("release", cfg.Mode)
	req.Equal(8080, cfg.Port)
	req.Equal("./web", cfg.StaticPath)
	req.EqualValues(4096, cfg.ReadLimit)
	req.Equal(64, cfg.SendBuffer)
	req.Equal(54*time.Second, cfg.PingPeriod)
	req.Equal("info", cfg.LogLevel)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	req := require.New(t)
	dir := inTempDir(t)
	req.NoError(os.Mkdir(filepath.Join(dir, "config"), 0o755))
	req.NoError(os.WriteFile(filepath.Join(dir, "config", "config.unit.yaml"), []byte(`
mode: debug
port: 9000
static_path: ./public
ping_period: 30s
`), 0o600))
	t.Setenv("CONFIG_ENV", "unit")
	t.Setenv("CHAT_PORT", "9100")

	cfg, err := Load()

	req.NoError(err)
	req.Equal("debug", cfg.Mode)
	req.Equal(9100, cfg.Port)
	req.Equal("./public", cfg.StaticPath)
	req.Equal(30*time.Second, cfg.PingPeriod)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "mode", key: "CHAT_MODE", val: "chaos"},
		{name: "port", key: "CHAT_PORT", val: "70000"},
		{name: "read limit", key: "CHAT_READ_LIMIT", val: "8"},
		{name: "ping period", key: "CHAT_PING_PERIOD", val: "10ms"},
		{name: "log level", key: "CHAT_LOG_LEVEL", val: "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inTempDir(t)
			t.Setenv("CONFIG_ENV", "missing")
			t.Setenv(tt.key, tt.val)

			_, err := Load()

			require.Error(t, err)
		})
	}
}
