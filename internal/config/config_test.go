package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"BOT_TOKEN", "API_URL", "LOGIN_URL", "REDIRECT_DELAY", "HTTP_TIMEOUT",
	"RETENTION_DAYS", "METRICS_ADDR",
	"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
}

// setEnv clears every config variable and applies values for the test
func setEnv(t *testing.T, values map[string]string) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
	for key, value := range values {
		t.Setenv(key, value)
	}
}

func requiredEnv() map[string]string {
	return map[string]string{
		"BOT_TOKEN":   "test_token",
		"API_URL":     "http://localhost:8000",
		"DB_PASSWORD": "test_db_password",
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_WithDefaults(t *testing.T) {
	setEnv(t, requiredEnv())

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "http://localhost:8000", cfg.APIURL)
	assert.Equal(t, "", cfg.LoginURL)
	assert.Equal(t, 2*time.Second, cfg.RedirectDelay)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 60, cfg.RetentionDays)
	assert.Equal(t, "", cfg.MetricsAddr)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "ersbot", cfg.Database.Name)
	assert.Equal(t, "ersbot", cfg.Database.User)
}

func TestLoad_Overrides(t *testing.T) {
	env := requiredEnv()
	env["LOGIN_URL"] = "https://ers.example.com/login"
	env["REDIRECT_DELAY"] = "500ms"
	env["HTTP_TIMEOUT"] = "3s"
	env["RETENTION_DAYS"] = "14"
	env["METRICS_ADDR"] = ":9090"
	env["DB_HOST"] = "db"
	setEnv(t, env)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://ers.example.com/login", cfg.LoginURL)
	assert.Equal(t, 500*time.Millisecond, cfg.RedirectDelay)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 14, cfg.RetentionDays)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.Equal(t, "db", cfg.Database.Host)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(env map[string]string)
		errContains string
	}{
		{
			name:        "missing bot token",
			modify:      func(env map[string]string) { delete(env, "BOT_TOKEN") },
			errContains: "BOT_TOKEN is required",
		},
		{
			name:        "missing api url",
			modify:      func(env map[string]string) { delete(env, "API_URL") },
			errContains: "API_URL is required",
		},
		{
			name:        "malformed api url",
			modify:      func(env map[string]string) { env["API_URL"] = "not a url" },
			errContains: "API_URL must be a valid URL",
		},
		{
			name:        "missing db password",
			modify:      func(env map[string]string) { delete(env, "DB_PASSWORD") },
			errContains: "DB_PASSWORD is required",
		},
		{
			name:        "malformed login url",
			modify:      func(env map[string]string) { env["LOGIN_URL"] = "login" },
			errContains: "LOGIN_URL must be a valid URL",
		},
		{
			name:        "bad redirect delay",
			modify:      func(env map[string]string) { env["REDIRECT_DELAY"] = "soon" },
			errContains: "REDIRECT_DELAY",
		},
		{
			name:        "negative redirect delay",
			modify:      func(env map[string]string) { env["REDIRECT_DELAY"] = "-1s" },
			errContains: "REDIRECT_DELAY must be positive",
		},
		{
			name:        "bad retention days",
			modify:      func(env map[string]string) { env["RETENTION_DAYS"] = "two" },
			errContains: "RETENTION_DAYS",
		},
		{
			name:        "bad metrics address",
			modify:      func(env map[string]string) { env["METRICS_ADDR"] = "9090" },
			errContains: "METRICS_ADDR must be in host:port form",
		},
		{
			name:        "non numeric db port",
			modify:      func(env map[string]string) { env["DB_PORT"] = "pg" },
			errContains: "DB_PORT must be a number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := requiredEnv()
			tt.modify(env)
			setEnv(t, env)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
