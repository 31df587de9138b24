package internal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"ENV", "LOG_LEVEL", "PORT", "FRONTEND_BASE_URL", "CMS_HOME_PAGE", "DEFAULT_LOCALE", "ADMIN_API_TOKEN", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, uint16(3000), cfg.Port)
	assert.Equal(t, "home", cfg.CMSHomePage)
	assert.Equal(t, "en", cfg.DefaultLocale)
	assert.Equal(t, "http://localhost:8080/", cfg.FrontendBaseURL)
	assert.Empty(t, cfg.Admin.APIToken)
	assert.Nil(t, cfg.Admin.AllowedOrigins)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("ENV", "dev")
	t.Setenv("LOG_LEVEL", "verbose")
	t.Setenv("PORT", "8081")
	t.Setenv("FRONTEND_BASE_URL", "https://shop.example.com/")
	t.Setenv("CMS_HOME_PAGE", "start")
	t.Setenv("ALLOWED_ORIGINS", "https://admin.example.com, ,https://ops.example.com")

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel, "invalid level falls back")
	assert.Equal(t, uint16(8081), cfg.Port)
	assert.Equal(t, "https://shop.example.com/", cfg.FrontendBaseURL)
	assert.Equal(t, "start", cfg.CMSHomePage)
	assert.Equal(t, []string{"https://admin.example.com", "https://ops.example.com"}, cfg.Admin.AllowedOrigins)
}

func TestLoadConfig_Production(t *testing.T) {
	t.Run("requires admin token", func(t *testing.T) {
		t.Setenv("ENV", "prod")
		t.Setenv("ADMIN_API_TOKEN", "")
		t.Setenv("FRONTEND_BASE_URL", "https://shop.example.com/")

		_, err := loadConfig()
		assert.ErrorContains(t, err, "ADMIN_API_TOKEN")
	})

	t.Run("requires absolute frontend url", func(t *testing.T) {
		t.Setenv("ENV", "prod")
		t.Setenv("ADMIN_API_TOKEN", "secret")
		t.Setenv("FRONTEND_BASE_URL", "shop.example.com")

		_, err := loadConfig()
		assert.ErrorContains(t, err, "FRONTEND_BASE_URL")
	})

	t.Run("unknown env is treated as prod", func(t *testing.T) {
		t.Setenv("ENV", "staging")
		t.Setenv("ADMIN_API_TOKEN", "secret")
		t.Setenv("FRONTEND_BASE_URL", "https://shop.example.com/")

		cfg, err := loadConfig()
		require.NoError(t, err)
		assert.Equal(t, "prod", cfg.Env)
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "prod", "warn")

	logger.Info("hidden")
	logger.Warn("preview lookup failed", "entity", "product")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"preview lookup failed"`)
	assert.Contains(t, out, `"entity":"product"`)
}
