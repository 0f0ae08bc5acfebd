package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("ACCESS_SECRET", "test-secret")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("LLM_BASE_URL", "")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "gpt-4o", cfg.LLMModel)
	assert.Equal(t, "https://api.openai.com/v1", cfg.LLMBaseURL)
	assert.Equal(t, "test-key", cfg.LLMAPIKey)
	assert.Equal(t, "test-secret", cfg.AccessSecret)
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("LLM_MODEL", "gpt-4o-mini")
	t.Setenv("SQL_DBNAME", "pagegen_test")

	cfg := LoadConfig()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "gpt-4o-mini", cfg.LLMModel)
	assert.Equal(t, "pagegen_test", cfg.SQLDBName)
}

func TestLoadConfigFailsFastWithoutAPIKey(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("ACCESS_SECRET", "test-secret")

	require.Panics(t, func() { LoadConfig() })
}

func TestLoadConfigFailsFastWithoutAccessSecret(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("ACCESS_SECRET", "")

	require.Panics(t, func() { LoadConfig() })
}
