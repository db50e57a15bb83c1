package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:    AppConfig{Environment: "development"},
		Logger: LoggerConfig{Level: "info"},
		Server: ServerConfig{Port: "8080", ReadTimeout: 15 * time.Second, IdleTimeout: time.Minute},
		Data:   DataConfig{BasePath: "/tmp/meal-data"},
		Import: ImportConfig{RequestsPerSecond: 1, Burst: 2, Timeout: 20 * time.Second},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidate_AllEnvironments(t *testing.T) {
	for _, env := range []string{"development", "staging", "production"} {
		t.Run(env, func(t *testing.T) {
			cfg := validConfig()
			cfg.App.Environment = env
			assert.NoError(t, cfg.Validate())
		})
	}

	cfg := validConfig()
	cfg.App.Environment = "testing"
	assert.Error(t, cfg.Validate())
}

func TestValidate_AllLogLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "INFO"} {
		t.Run(level, func(t *testing.T) {
			cfg := validConfig()
			cfg.Logger.Level = level
			assert.NoError(t, cfg.Validate())
		})
	}

	cfg := validConfig()
	cfg.Logger.Level = "verbose"
	assert.Error(t, cfg.Validate())
}

func TestValidate_EmptyDataPath(t *testing.T) {
	cfg := validConfig()
	cfg.Data.BasePath = ""
	assert.Error(t, cfg.Validate())
}

func TestValidate_ImportLimits(t *testing.T) {
	cfg := validConfig()
	cfg.Import.RequestsPerSecond = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Import.Burst = 0
	assert.Error(t, cfg.Validate())
}

func TestExpandDataPath_EmptyUsesDefault(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.expandDataPath())

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "MealPlanner", "data"), cfg.Data.BasePath)
}

func TestExpandDataPath_TildeExpansion(t *testing.T) {
	cfg := &Config{Data: DataConfig{BasePath: "~/meals"}}
	require.NoError(t, cfg.expandDataPath())

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "meals"), cfg.Data.BasePath)
}

func TestExpandDataPath_RelativePath(t *testing.T) {
	cfg := &Config{Data: DataConfig{BasePath: "data"}}
	require.NoError(t, cfg.expandDataPath())
	assert.True(t, filepath.IsAbs(cfg.Data.BasePath))
}

func TestExpandCatalogPath_DefaultsUnderData(t *testing.T) {
	cfg := &Config{Data: DataConfig{BasePath: "/srv/meals"}}
	require.NoError(t, cfg.expandCatalogPath())
	assert.Equal(t, "/srv/meals/meals.json", cfg.Catalog.Path)
}

func TestGetConfigValue_Precedence(t *testing.T) {
	t.Setenv("MEAL_TEST_KEY", "from-env")

	assert.Equal(t, "from-flag", getConfigValue("from-flag", "MEAL_TEST_KEY", "default"))
	assert.Equal(t, "from-env", getConfigValue("", "MEAL_TEST_KEY", "default"))

	os.Unsetenv("MEAL_TEST_KEY")
	assert.Equal(t, "default", getConfigValue("", "MEAL_TEST_KEY", "default"))
}

func TestGetIntConfigValue(t *testing.T) {
	assert.Equal(t, 3, getIntConfigValue("3", "MEAL_TEST_INT", 7))
	assert.Equal(t, 7, getIntConfigValue("", "MEAL_TEST_INT", 7))
	assert.Equal(t, 7, getIntConfigValue("nope", "MEAL_TEST_INT", 7))
}

func TestGetFloatConfigValue(t *testing.T) {
	assert.Equal(t, 0.5, getFloatConfigValue("0.5", "MEAL_TEST_FLOAT", 1))
	assert.Equal(t, 1.0, getFloatConfigValue("", "MEAL_TEST_FLOAT", 1))
}

func TestParseDurationValue(t *testing.T) {
	d, err := parseDurationValue("30s", "MEAL_TEST_DUR", "15s")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, d)

	d, err = parseDurationValue("", "MEAL_TEST_DUR", "15s")
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, d)

	d, err = parseDurationValue("0", "MEAL_TEST_DUR", "15s")
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), d)

	_, err = parseDurationValue("soon", "MEAL_TEST_DUR", "15s")
	assert.Error(t, err)
}

func TestLoadEnvFile_ValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := strings.Join([]string{
		"# comment",
		"",
		"MEAL_ENVFILE_A=hello",
		`MEAL_ENVFILE_B="quoted"`,
		"MEAL_ENVFILE_C = spaced ",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("MEAL_ENVFILE_A")
		os.Unsetenv("MEAL_ENVFILE_B")
		os.Unsetenv("MEAL_ENVFILE_C")
	})

	require.NoError(t, loadEnvFile(path))

	assert.Equal(t, "hello", os.Getenv("MEAL_ENVFILE_A"))
	assert.Equal(t, "quoted", os.Getenv("MEAL_ENVFILE_B"))
	assert.Equal(t, "spaced", os.Getenv("MEAL_ENVFILE_C"))
}

func TestLoadEnvFile_InvalidFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("NOT A PAIR\n"), 0o644))

	assert.Error(t, loadEnvFile(path))
}

func TestLoadEnvFile_NonExistentFile(t *testing.T) {
	assert.Error(t, loadEnvFile("/nonexistent/.env"))
}

func TestLoadEnvFile_ExistingEnvVarsNotOverwritten(t *testing.T) {
	t.Setenv("MEAL_ENVFILE_KEEP", "original")

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("MEAL_ENVFILE_KEEP=overwritten\n"), 0o644))

	require.NoError(t, loadEnvFile(path))
	assert.Equal(t, "original", os.Getenv("MEAL_ENVFILE_KEEP"))
}
