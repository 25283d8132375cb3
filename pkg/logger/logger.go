package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the process-wide log instance. Nil until Init is called;
// use Get to obtain a safe default.
var Logger *logrus.Logger

// Config controls log level and optional rotating file output.
type Config struct {
	Level      string `yaml:"level"`      // debug, info, warn, error
	OutputFile string `yaml:"outputFile"` // empty = console only
	MaxSize    int    `yaml:"maxSize"`    // MB per file
	MaxBackups int    `yaml:"maxBackups"`
	MaxAge     int    `yaml:"maxAge"` // days
	Compress   bool   `yaml:"compress"`
}

// Init sets up the global logger with console output and, if configured,
// a rotating log file. Repeated calls reconfigure the same instance.
func Init(config Config) error {
	logger := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "06-01-02 15:04:05",
	})

	writers := []io.Writer{os.Stderr}

	if config.OutputFile != "" {
		if err := os.MkdirAll(filepath.Dir(config.OutputFile), 0755); err != nil {
			return err
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   config.OutputFile,
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		})
	}

	multi := io.MultiWriter(writers...)
	logger.SetOutput(multi)

	// Keep the package-level logrus logger in sync so code that logs via
	// logrus.WithField ends up in the same sinks.
	logrus.SetOutput(multi)
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "06-01-02 15:04:05",
	})

	Logger = logger
	return nil
}

// Get returns the configured logger, falling back to the logrus standard
// logger when Init has not run (e.g. in tests).
func Get() *logrus.Logger {
	if Logger != nil {
		return Logger
	}
	return logrus.StandardLogger()
}
