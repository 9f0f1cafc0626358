package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("COMMSBANNER_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Local", cfg.UI.Timezone)
	require.Equal(t, "2006-01-02", cfg.UI.DateLayout)
	require.Equal(t, 1, cfg.UI.DefaultScenario)
	require.Equal(t, 18, cfg.Rules.MinorAge)
}

func TestLoadFromFile(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "commsbanner")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	data := []byte(`
[ui]
timezone = "Australia/Melbourne"
date_layout = "02/01/2006"
default_scenario = 3

[rules]
minor_age = 21
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), data, 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Australia/Melbourne", cfg.UI.Timezone)
	require.Equal(t, "02/01/2006", cfg.UI.DateLayout)
	require.Equal(t, 3, cfg.UI.DefaultScenario)
	require.Equal(t, 21, cfg.Rules.MinorAge)
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("COMMSBANNER_RULES_MINOR_AGE", "16")
	t.Setenv("COMMSBANNER_UI_DEFAULT_SCENARIO", "2")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 16, cfg.Rules.MinorAge)
	require.Equal(t, 2, cfg.UI.DefaultScenario)
}

func TestLoadExplicitPathMissing(t *testing.T) {
	home := isolate(t)
	t.Setenv("COMMSBANNER_CONFIG", filepath.Join(home, "nope.toml"))

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsBadValues(t *testing.T) {
	isolate(t)
	t.Setenv("COMMSBANNER_UI_DEFAULT_SCENARIO", "7")

	_, err := Load()
	require.ErrorContains(t, err, "default_scenario")
}
