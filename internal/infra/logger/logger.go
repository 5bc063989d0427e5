// internal/infra/logger/logger.go
package logger

import (
	"os"
	"strings"

	"minibot/internal/infra/config"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It writes to stderr so stdout stays free
// for the console lines of the CLI.
var Log = logrus.New()

// structuredEnvs get JSON log lines for log shippers.
var structuredEnvs = map[string]bool{
	"production": true,
	"staging":    true,
}

// Init applies LOG_LEVEL and ENVIRONMENT to Log.
func Init(cfg *config.AppConfig) {
	Log.SetOutput(os.Stderr)
	Log.SetFormatter(formatterFor(cfg.Environment))

	level, ok := levelFor(cfg.LogLevel)
	Log.SetLevel(level)
	if !ok {
		Log.WithField("log_level", cfg.LogLevel).Warn("Unknown log level, using info")
	}

	Log.WithFields(logrus.Fields{
		"level":       level.String(),
		"environment": cfg.Environment,
	}).Debug("Logger configured")
}

// levelFor parses name case-insensitively. Unknown names give info and false.
func levelFor(name string) (logrus.Level, bool) {
	level, err := logrus.ParseLevel(strings.TrimSpace(name))
	if err != nil {
		return logrus.InfoLevel, false
	}
	return level, true
}

func formatterFor(environment string) logrus.Formatter {
	if structuredEnvs[strings.ToLower(strings.TrimSpace(environment))] {
		return &logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"}
	}
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	}
}

// Get returns the configured global logger.
func Get() *logrus.Logger {
	return Log
}

// Component returns Log tagged with the name of the part of the program
// writing to it.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
