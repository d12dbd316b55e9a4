// Package logger holds the process-wide logrus logger. Diagnostics go to
// stderr so that tables and SVG written to stdout stay clean.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

// InitLogger configures the global logger. An unknown level falls back to
// info with a warning; format is "text" or "json".
func InitLogger(logLevel, format string) *logrus.Logger {
	return initLogger(logLevel, format, os.Stderr)
}

func initLogger(logLevel, format string, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	if logLevel == "" {
		logLevel = "info"
	}
	if level, err := logrus.ParseLevel(strings.ToLower(logLevel)); err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("invalid_level", logLevel).Warn("Invalid log level, using INFO")
	}

	if strings.ToLower(format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	Logger = log
	return log
}

// GetLogger returns the global logger instance.
func GetLogger() *logrus.Logger {
	if Logger == nil {
		return InitLogger("info", "text")
	}
	return Logger
}

// WithCommand tags entries with the running CLI command.
func WithCommand(name string) *logrus.Entry {
	return GetLogger().WithField("command", name)
}

// WithMatch tags entries with a match identifier and, when known, the sheet path.
func WithMatch(match, path string) *logrus.Entry {
	fields := logrus.Fields{"match": match}
	if path != "" {
		fields["path"] = path
	}
	return GetLogger().WithFields(fields)
}
