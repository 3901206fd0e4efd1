package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging returns a JSON logger at info level writing to stdout.
func SetupLogging() *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Hooks:    make(logrus.LevelHooks),
		Out:      os.Stdout,
		Level:    logrus.InfoLevel,
		ExitFunc: os.Exit,
	}

	return &logger
}

// SetLevel applies a level name such as "debug" or "warn" to the logger.
func SetLevel(logger *logrus.Logger, level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logger.SetLevel(parsed)
	return nil
}
