package config

import (
	"MonitoreoBackend/internal/middleware"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"APP_PORT", "APP_ENV", "SECRET_KEY", "DEBUG", "ALLOWED_HOSTS",
	"CORS_ALLOW_ALL_ORIGINS", "CORS_ALLOWED_ORIGINS", "CSRF_TRUSTED_ORIGINS",
	"DATABASE_URL", "DATABASE_PATH", "STATIC_ROOT",
}

// clearConfigEnv unsets every variable LoadAppConfig reads; t.Setenv
// restores the previous values when the test ends.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadAppConfigDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadAppConfig(NewValidator())
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "change-me", cfg.SecretKey)
	assert.False(t, cfg.Debug)
	assert.Equal(t, []string{"*"}, cfg.AllowedHosts)
	assert.True(t, cfg.CORSAllowAllOrigins)
	assert.Empty(t, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.CSRFTrustedOrigins)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "./db.sqlite3", cfg.DatabasePath)
	assert.Equal(t, "./staticfiles", cfg.StaticRoot)
	assert.True(t, cfg.InsecureSecretKey())
}

func TestLoadAppConfigFromEnvironment(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SECRET_KEY", "s3cr3t")
	t.Setenv("DEBUG", "TRUE")
	t.Setenv("ALLOWED_HOSTS", "api.monitoreo.app, .onrender.com,,")
	t.Setenv("CORS_ALLOW_ALL_ORIGINS", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://monitoreo.app,https://www.monitoreo.app")
	t.Setenv("CSRF_TRUSTED_ORIGINS", "https://monitoreo.app")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/monitoreo")

	cfg, err := LoadAppConfig(NewValidator())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, []string{"api.monitoreo.app", ".onrender.com"}, cfg.AllowedHosts)
	assert.False(t, cfg.CORSAllowAllOrigins)
	assert.Equal(t, []string{"https://monitoreo.app", "https://www.monitoreo.app"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, []string{"https://monitoreo.app"}, cfg.CSRFTrustedOrigins)
	assert.Equal(t, "postgres://u:p@db:5432/monitoreo", cfg.DatabaseURL)
	assert.False(t, cfg.InsecureSecretKey())
}

func TestLoadAppConfigBooleansOnlyAcceptTrue(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("DEBUG", "1")
	t.Setenv("CORS_ALLOW_ALL_ORIGINS", "yes")

	cfg, err := LoadAppConfig(NewValidator())
	require.NoError(t, err)

	assert.False(t, cfg.Debug)
	assert.False(t, cfg.CORSAllowAllOrigins)
}

func TestLoadAppConfigValidation(t *testing.T) {
	cases := []struct {
		name string
		key  string
		val  string
	}{
		{name: "non numeric port", key: "APP_PORT", val: "http"},
		{name: "empty port", key: "APP_PORT", val: ""},
		{name: "invalid cors origin", key: "CORS_ALLOWED_ORIGINS", val: "monitoreo.app"},
		{name: "cors origin with path", key: "CORS_ALLOWED_ORIGINS", val: "https://monitoreo.app/app"},
		{name: "cors origin with query", key: "CORS_ALLOWED_ORIGINS", val: "https://monitoreo.app?x=1"},
		{name: "cors origin with bad scheme", key: "CORS_ALLOWED_ORIGINS", val: "ftp://monitoreo.app"},
		{name: "cors origin bare wildcard host", key: "CORS_ALLOWED_ORIGINS", val: "https://*"},
		{name: "invalid csrf origin", key: "CSRF_TRUSTED_ORIGINS", val: "not a url"},
		{name: "empty secret", key: "SECRET_KEY", val: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv(tc.key, tc.val)

			_, err := LoadAppConfig(NewValidator())
			assert.Error(t, err)
		})
	}
}

func TestLoadAppConfigAcceptsCORSOrigins(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("CORS_ALLOW_ALL_ORIGINS", "False")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://monitoreo.app, http://localhost:3000/,https://*.monitoreo.app")

	cfg, err := LoadAppConfig(NewValidator())
	require.NoError(t, err)
	assert.Equal(t, []string{"https://monitoreo.app", "http://localhost:3000/", "https://*.monitoreo.app"}, cfg.CORSAllowedOrigins)

	mw := middleware.New(logrus.New(), middleware.Config{
		AllowedHosts:       cfg.AllowedHosts,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})
	assert.NotPanics(t, func() { mw.NewCORSMiddleware() })
}

func TestLoadAppConfigWithoutValidator(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("APP_PORT", "http")

	cfg, err := LoadAppConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "http", cfg.Port)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{}, splitList(""))
	assert.Equal(t, []string{"a", "b"}, splitList(" a ,, b ,"))
}

func TestInsecureSecretKeyIgnoredInDebug(t *testing.T) {
	cfg := &AppConfig{SecretKey: defaultSecretKey, Debug: true}
	assert.False(t, cfg.InsecureSecretKey())
}
