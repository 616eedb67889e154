package helpers

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"cryptoprobe/internal/config"
)

func TestSetupLogger_Levels(t *testing.T) {
	tests := []struct {
		level config.LogLevel
		want  logrus.Level
	}{
		{config.Debug, logrus.DebugLevel},
		{config.Trace, logrus.TraceLevel},
		{config.Error, logrus.ErrorLevel},
		{"", logrus.GetLevel()},
		{"shouting", logrus.GetLevel()},
	}
	for _, tc := range tests {
		t.Run(string(tc.level), func(t *testing.T) {
			logger := SetupLogger(tc.level, "cryptoprobe", "test")
			assert.Equal(t, tc.want, logger.Logger.GetLevel())
			assert.Equal(t, "cryptoprobe", logger.Data["service"])
			assert.Equal(t, "test", logger.Data["subsystem"])
		})
	}
}

func TestSetupLogger_None(t *testing.T) {
	logger := SetupLogger(config.None, "cryptoprobe", "test")
	assert.Equal(t, io.Discard, logger.Logger.Out)
}
