package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/trierouter/core/config"
)

type tableConfig struct {
	Table     string `env:"TRIEROUTER_TEST_TABLE" envDefault:"routes.yaml"`
	Normalize bool   `env:"TRIEROUTER_TEST_NORMALIZE" envDefault:"false"`
}

type requiredConfig struct {
	Secret string `env:"TRIEROUTER_TEST_MISSING_SECRET,required"`
}

func TestLoad(t *testing.T) {
	t.Setenv("TRIEROUTER_TEST_TABLE", "api.yaml")
	t.Setenv("TRIEROUTER_TEST_NORMALIZE", "true")
	config.Forget[tableConfig]()
	t.Cleanup(config.Forget[tableConfig])

	var cfg tableConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "api.yaml", cfg.Table)
	assert.True(t, cfg.Normalize)

	t.Run("cached per type", func(t *testing.T) {
		t.Setenv("TRIEROUTER_TEST_TABLE", "other.yaml")

		var again tableConfig
		require.NoError(t, config.Load(&again))
		assert.Equal(t, cfg, again)
	})
}

func TestLoadDefaults(t *testing.T) {
	config.Forget[tableConfig]()
	t.Cleanup(config.Forget[tableConfig])

	var cfg tableConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "routes.yaml", cfg.Table)
	assert.False(t, cfg.Normalize)
}

func TestLoadRequiredMissing(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	assert.Panics(t, func() {
		config.MustLoad(&requiredConfig{})
	})
}
