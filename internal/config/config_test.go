package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in empty working and config directories with no
// COOKBOOK_* variables set. Variables set by .env files are removed on cleanup.
func isolate(t *testing.T) (workDir, configDir string) {
	t.Helper()
	workDir = t.TempDir()
	configDir = t.TempDir()
	prevDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(workDir))
	t.Cleanup(func() { _ = os.Chdir(prevDir) })
	t.Setenv("COOKBOOK_CONFIG_DIR", configDir)

	for _, key := range []string{"PROMPT", "BANNER", "STRICT_QUOTES", "HELP_WIDTH", "HISTORY_FILE", "LOG_LEVEL", "LOG_FILE"} {
		name := EnvPrefix + "_" + key
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	return workDir, configDir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Prompt:       ">>> ",
		Banner:       true,
		StrictQuotes: false,
		HelpWidth:    16,
	}, cfg)
}

func TestLoad_ConfigFileInWorkingDir(t *testing.T) {
	workDir, _ := isolate(t)
	writeFile(t, filepath.Join(workDir, "cookbook.yaml"), "prompt: \"cook> \"\nbanner: false\nhelp_width: 20\n")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "cook> ", cfg.Prompt)
	assert.False(t, cfg.Banner)
	assert.Equal(t, 20, cfg.HelpWidth)
}

func TestLoad_ConfigFileInConfigDir(t *testing.T) {
	_, configDir := isolate(t)
	writeFile(t, filepath.Join(configDir, "cookbook.yaml"), "strict_quotes: true\n")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.True(t, cfg.StrictQuotes)
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	workDir, _ := isolate(t)
	path := filepath.Join(workDir, "custom.yaml")
	writeFile(t, path, "history_file: /tmp/cookbook_history\n")

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cookbook_history", cfg.HistoryFile)
}

func TestLoad_ExplicitConfigFileMissing(t *testing.T) {
	workDir, _ := isolate(t)

	_, err := Load(New(), filepath.Join(workDir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	workDir, _ := isolate(t)
	writeFile(t, filepath.Join(workDir, "cookbook.yaml"), "prompt: \"file> \"\n")
	t.Setenv("COOKBOOK_PROMPT", "env> ")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "env> ", cfg.Prompt)
}

func TestLoad_DotEnvPrecedence(t *testing.T) {
	workDir, configDir := isolate(t)
	writeFile(t, filepath.Join(configDir, ".env"), "COOKBOOK_PROMPT=\"config-env> \"\nCOOKBOOK_HELP_WIDTH=30\n")
	writeFile(t, filepath.Join(workDir, ".env"), "COOKBOOK_PROMPT=\"local-env> \"\n")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "local-env> ", cfg.Prompt)
	assert.Equal(t, 30, cfg.HelpWidth)
}

func TestLoad_InvalidHelpWidth(t *testing.T) {
	isolate(t)
	t.Setenv("COOKBOOK_HELP_WIDTH", "0")

	_, err := Load(New(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "help_width must be positive")
}

func TestConfigDir(t *testing.T) {
	t.Setenv("COOKBOOK_CONFIG_DIR", "/etc/cookbook")
	dir, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/etc/cookbook", dir)
}
