package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const logFileName = "casedwh.log"

// New builds the application logger. Output goes to stderr and, when the
// log directory can be created, also to <logDir>/casedwh.log.
func New(logDir, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if lvl, err := logrus.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}

	if logDir != "" {
		if err := os.MkdirAll(logDir, 0o755); err == nil {
			path := filepath.Join(logDir, logFileName)
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err == nil {
				logger.SetOutput(io.MultiWriter(os.Stderr, f))
			}
		}
	}

	return logger
}

func LogError(logger *logrus.Logger, msg string, err error) {
	logger.Errorf("%s: %v", msg, err)
}

func LogFatal(logger *logrus.Logger, msg string, err error) {
	logger.Fatalf("%s: %v", msg, err)
}

func LogWarn(logger *logrus.Logger, msg string) {
	logger.Warn(msg)
}

func LogInfo(logger *logrus.Logger, msg string) {
	logger.Info(msg)
}
