package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:11434/v1", cfg.GeneratorHost)
	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	assert.Equal(t, "qwen2.5:3b", cfg.GeneratorModel)
	assert.Equal(t, "embeddinggemma", cfg.EmbeddingModel)
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.RetryMinDelay)
	assert.Equal(t, 10*time.Second, cfg.RetryMaxDelay)
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "http://localhost:11434/v1", cfg.GeneratorHost)
		assert.Equal(t, 0.7, cfg.Temperature)
		assert.Equal(t, 2048, cfg.MaxTokens)
	})

	t.Run("with custom host", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://custom:8080/v1"))

		assert.Equal(t, "http://custom:8080/v1", cfg.GeneratorHost)
		assert.Equal(t, "http://custom:8080/v1", cfg.EmbeddingHost)
	})

	t.Run("with separate hosts", func(t *testing.T) {
		cfg := NewConfig(
			WithGeneratorHost("http://generate:8080/v1"),
			WithEmbeddingHost("http://embed:9090/v1"),
		)

		assert.Equal(t, "http://generate:8080/v1", cfg.GeneratorHost)
		assert.Equal(t, "http://embed:9090/v1", cfg.EmbeddingHost)
	})

	t.Run("with custom models", func(t *testing.T) {
		cfg := NewConfig(
			WithGeneratorModel("gpt-4o-mini"),
			WithEmbeddingModel("text-embedding-3-small"),
		)

		assert.Equal(t, "gpt-4o-mini", cfg.GeneratorModel)
		assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
	})

	t.Run("with retry settings", func(t *testing.T) {
		cfg := NewConfig(
			WithMaxAttempts(5),
			WithRetryDelays(time.Second, 30*time.Second),
		)

		assert.Equal(t, 5, cfg.MaxAttempts)
		assert.Equal(t, time.Second, cfg.RetryMinDelay)
		assert.Equal(t, 30*time.Second, cfg.RetryMaxDelay)
	})
}

func TestConfigNormalize(t *testing.T) {
	t.Run("adds v1 suffix", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:11434"))
		cfg.Normalize()

		assert.Equal(t, "http://localhost:11434/v1", cfg.GeneratorHost)
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	})

	t.Run("strips trailing slash before adding suffix", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:11434/"))
		cfg.Normalize()

		assert.Equal(t, "http://localhost:11434/v1", cfg.GeneratorHost)
	})

	t.Run("leaves suffixed hosts alone", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:11434/v1"))
		cfg.Normalize()

		assert.Equal(t, "http://localhost:11434/v1", cfg.GeneratorHost)
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid default config", func(t *testing.T) {
		require.NoError(t, DefaultConfig().Validate())
	})

	t.Run("missing generator model", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.GeneratorModel = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing embedding host", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.EmbeddingHost = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero attempts", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxAttempts = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("inverted retry delays", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.RetryMinDelay = time.Minute
		cfg.RetryMaxDelay = time.Second
		assert.Error(t, cfg.Validate())
	})

	t.Run("out of range temperature", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Temperature = 3.5
		assert.Error(t, cfg.Validate())
	})
}

func TestNewGenerateOptions(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		o := NewGenerateOptions()
		assert.False(t, o.HasTemperature)
		assert.False(t, o.HasMaxTokens)
	})

	t.Run("with overrides", func(t *testing.T) {
		o := NewGenerateOptions(WithTemperature(0.3), WithMaxTokens(512))
		assert.True(t, o.HasTemperature)
		assert.Equal(t, 0.3, o.Temperature)
		assert.True(t, o.HasMaxTokens)
		assert.Equal(t, 512, o.MaxTokens)
	})

	t.Run("zero temperature override is honored", func(t *testing.T) {
		o := NewGenerateOptions(WithTemperature(0))
		assert.True(t, o.HasTemperature)
		assert.Equal(t, 0.0, o.Temperature)
	})
}
