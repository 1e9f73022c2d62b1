package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("AI_SERVICE_URL", "")
	t.Setenv("CHROME_PREVIEW", "")

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "http://ai-service:8000", cfg.AIServiceURL)
	assert.False(t, cfg.ChromePreview)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://localhost/resumes")
	t.Setenv("AI_SERVICE_URL", "http://localhost:9000")
	t.Setenv("CHROME_PREVIEW", "true")
	t.Setenv("CHROME_PATH", "/usr/bin/chromium")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres://localhost/resumes", cfg.DatabaseURL)
	assert.Equal(t, "http://localhost:9000", cfg.AIServiceURL)
	assert.True(t, cfg.ChromePreview)
	assert.Equal(t, "/usr/bin/chromium", cfg.ChromePath)
}

func TestLoadIgnoresBadBool(t *testing.T) {
	t.Setenv("CHROME_PREVIEW", "yes please")
	cfg := Load()
	assert.False(t, cfg.ChromePreview)
}
