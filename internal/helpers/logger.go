package helpers

import (
	"fmt"
	"io"
	"path"
	"runtime"

	formatter "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"

	"cryptoprobe/internal/config"
)

var LogFormatter = &formatter.Formatter{
	TimestampFormat: "2006-01-02 15:04:05",
	HideKeys:        true,
	FieldsOrder:     []string{"service", "subsystem", "subsystem-provider"},
	CallerFirst:     true,
	CustomCallerFormatter: func(f *runtime.Frame) string {
		filename := path.Base(f.File)
		return fmt.Sprintf(" [%s %s():%d]", filename, f.Function, f.Line)
	},
}

// SetupLogger returns an entry tagged with service and subsystem. Level
// "none" discards all output; an empty or invalid level falls back to the
// global logrus level.
func SetupLogger(currentLevel config.LogLevel, serviceID string, subsystem string) *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(LogFormatter)
	lSubsystem := logger.WithFields(logrus.Fields{
		"service":   serviceID,
		"subsystem": subsystem,
	})

	if currentLevel == config.None {
		lSubsystem.Logger.SetOutput(io.Discard)
		return lSubsystem
	}

	level := logrus.GetLevel()
	if currentLevel != "" {
		parsed, err := logrus.ParseLevel(string(currentLevel))
		if err != nil {
			logrus.Warnf("'%s' invalid '%s' log level. Defaulting to global log level", subsystem, currentLevel)
		} else {
			level = parsed
		}
	}
	lSubsystem.Logger.SetLevel(level)

	lSubsystem.Debugf("log level set to '%s'", lSubsystem.Logger.GetLevel())
	return lSubsystem
}
