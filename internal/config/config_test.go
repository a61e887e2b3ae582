package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/buildstate/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvStateFile, "")
	t.Setenv(EnvMetricsTextfile, "")
}

func TestLoadMissingDefaultFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, DefaultStateFile, cfg.State.File)
	require.Empty(t, cfg.Metrics.Textfile)
}

func TestLoadDefaultFileFromWorkingDir(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("state:\n  file: parts/state\n"), 0o644))
	chdir(t, dir)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "parts/state", cfg.State.File)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "absent.yaml")
	_, err := Load(p)
	require.True(t, errors.IsCategory(err, errors.CategoryConfig), "got %v", err)

	bse, ok := errors.As(err)
	require.True(t, ok)
	require.Equal(t, "configuration file not found", bse.Message)
	require.Equal(t, p, bse.Context["path"])
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("STATE_ROOT", "/work/parts")
	p := writeConfig(t, "state:\n  file: ${STATE_ROOT}/state\nmetrics:\n  textfile: /var/lib/node_exporter/buildstate.prom\n")

	cfg, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, "/work/parts/state", cfg.State.File)
	require.Equal(t, "/var/lib/node_exporter/buildstate.prom", cfg.Metrics.Textfile)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv(EnvStateFile, "/tmp/override-state")
	t.Setenv(EnvMetricsTextfile, "/tmp/metrics.prom")
	p := writeConfig(t, "state:\n  file: from-file\n")

	cfg, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, "/tmp/override-state", cfg.State.File)
	require.Equal(t, "/tmp/metrics.prom", cfg.Metrics.Textfile)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvStateFile+"=from-dotenv/state\n"), 0o644))

	chdir(t, dir)

	// An empty value still counts as set, so godotenv must not override it.
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, DefaultStateFile, cfg.State.File)

	require.NoError(t, os.Unsetenv(EnvStateFile))
	cfg, err = Load("")
	require.NoError(t, err)
	require.Equal(t, "from-dotenv/state", cfg.State.File)
}

func TestLoadMalformedFile(t *testing.T) {
	p := writeConfig(t, "state: [not, a, mapping\n")
	_, err := Load(p)
	require.True(t, errors.IsCategory(err, errors.CategoryConfig), "got %v", err)
}

func TestInit(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, Init(p, false))

	cfg, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, DefaultStateFile, cfg.State.File)

	err = Init(p, false)
	require.True(t, errors.IsCategory(err, errors.CategoryValidation))
	require.NoError(t, Init(p, true))
}

func TestInitDefaultPath(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, Init("", false))
	_, err := os.Stat(filepath.Join(dir, DefaultConfigFile))
	require.NoError(t, err)
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
