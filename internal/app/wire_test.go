package app

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptoprobe/internal/config"
	"cryptoprobe/internal/domain"
)

func quietLogger() *logrus.Entry {
	logger, _ := test.NewNullLogger()
	return logrus.NewEntry(logger)
}

func TestNewWire_Defaults(t *testing.T) {
	w, err := NewWire(Config{Settings: config.Defaults(), Logger: quietLogger()})
	require.NoError(t, err)

	assert.NoError(t, w.Registry.Installed(domain.AlternateProvider))
	assert.NoError(t, w.Registry.Installed(domain.DefaultProvider))
	assert.NoError(t, w.Verifier.AssertSecureSystem())
}

func TestNewWire_WithoutAlternateProvider(t *testing.T) {
	w, err := NewWire(Config{
		Settings: config.Defaults(),
		Without:  []domain.ProviderName{domain.AlternateProvider},
		Logger:   quietLogger(),
	})
	require.NoError(t, err)

	assert.False(t, w.Verifier.IsProviderInstalled())
	assert.ErrorIs(t, w.Verifier.AssertSecureSystem(), domain.ErrInsecureSystem)
}

func TestNewWire_RestrictedPolicy(t *testing.T) {
	settings := config.Defaults()
	settings.Policy.Limits = map[string]int{"AES": 128}

	w, err := NewWire(Config{Settings: settings, Logger: quietLogger()})
	require.NoError(t, err)
	assert.False(t, w.Verifier.IsUnlimitedStrength())
}

func TestNewWire_InvalidPolicy(t *testing.T) {
	settings := config.Defaults()
	settings.Policy.Limits = map[string]int{"AES": -5}

	_, err := NewWire(Config{Settings: settings, Logger: quietLogger()})
	assert.Error(t, err)
}

func TestNewWire_BuildsLogger(t *testing.T) {
	settings := config.Defaults()
	settings.Logging.Level = config.None

	w, err := NewWire(Config{Settings: settings})
	require.NoError(t, err)
	assert.Equal(t, "cryptoprobe", w.Logger.Data["service"])
}

func TestNewWire_Collector(t *testing.T) {
	w, err := NewWire(Config{Settings: config.Defaults(), Logger: quietLogger()})
	require.NoError(t, err)
	assert.Nil(t, w.Relay)

	settings := config.Defaults()
	settings.Report.Collector = "http://collector.internal:8080"
	w, err = NewWire(Config{Settings: settings, Logger: quietLogger()})
	require.NoError(t, err)
	assert.NotNil(t, w.Relay)
}
