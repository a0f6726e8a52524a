package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, ",", config.CSV.Delimiter)
	assert.Equal(t, 2, config.Extract.MaxPages)
	assert.Empty(t, config.Extract.PatternsFile)
	assert.Equal(t, ":8080", config.Server.Address)
	assert.Equal(t, int64(32<<20), config.Server.MaxUploadSize)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("EXPENSE_EXTRACT_MAX_PAGES", "5")
	t.Setenv("EXPENSE_LOG_LEVEL", "debug")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, 5, config.Extract.MaxPages)
	assert.Equal(t, "debug", config.Log.Level)
}

func TestValidateConfig(t *testing.T) {
	base := func() *Config {
		v := viper.New()
		setDefaults(v)
		var c Config
		require.NoError(t, v.Unmarshal(&c))
		return &c
	}

	t.Run("Defaults are valid", func(t *testing.T) {
		assert.NoError(t, validateConfig(base()))
	})

	t.Run("Bad log level", func(t *testing.T) {
		c := base()
		c.Log.Level = "chatty"
		assert.Error(t, validateConfig(c))
	})

	t.Run("Bad log format", func(t *testing.T) {
		c := base()
		c.Log.Format = "xml"
		assert.Error(t, validateConfig(c))
	})

	t.Run("Multi-char delimiter", func(t *testing.T) {
		c := base()
		c.CSV.Delimiter = ";;"
		assert.Error(t, validateConfig(c))
	})

	t.Run("Zero max pages", func(t *testing.T) {
		c := base()
		c.Extract.MaxPages = 0
		assert.Error(t, validateConfig(c))
	})
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	c := &Config{}
	c.Log.Level = "debug"
	c.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(c)
	require.NotNil(t, logger)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
}
