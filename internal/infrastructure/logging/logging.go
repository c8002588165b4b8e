package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/andrescamacho/greenhouse-go/internal/application/common"
	"github.com/andrescamacho/greenhouse-go/internal/infrastructure/config"
)

// NewLogger builds a logrus logger from configuration. The returned closer
// releases the log file when output is "file" and is a no-op otherwise.
func NewLogger(cfg config.LoggingConfig) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}
	logger.SetLevel(level)
	logger.SetReportCaller(cfg.IncludeCaller)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	var closer io.Closer = nopCloser{}
	switch cfg.Output {
	case "stdout":
		logger.SetOutput(os.Stdout)
	case "file":
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logger.SetOutput(f)
		closer = f
	default:
		logger.SetOutput(os.Stderr)
	}

	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Adapter exposes a logrus logger as a common.SimulationLogger
type Adapter struct {
	entry *logrus.Entry
}

// NewAdapter wraps a logger. Fields are attached to every entry.
func NewAdapter(logger *logrus.Logger, fields logrus.Fields) *Adapter {
	return &Adapter{entry: logger.WithFields(fields)}
}

// Log writes one structured entry at the mapped logrus level
func (a *Adapter) Log(level, message string, metadata map[string]interface{}) {
	a.entry.WithFields(logrus.Fields(metadata)).Log(toLogrusLevel(level), message)
}

func toLogrusLevel(level string) logrus.Level {
	switch level {
	case common.LevelDebug:
		return logrus.DebugLevel
	case common.LevelWarning:
		return logrus.WarnLevel
	case common.LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
