// Package logging builds the logrus logger shared by the server.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a text logger writing to stdout at the given level.
func New(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stdout)
	SetLevel(logger, level)
	return logger
}

// SetLevel applies level to logger, keeping info when level is not recognised.
func SetLevel(logger *logrus.Logger, level string) {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logger.Warnf("Invalid log level '%s', using default 'info'. Error: %v", level, err)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
}
