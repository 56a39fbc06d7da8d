package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Fields holds structured log context
type Fields = map[string]any

// Logger is the logging interface used across the analysis pipeline
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(err error, msg string, fields ...Fields)
	WithFields(fields Fields) Logger
}

type logrusLogger struct {
	entry *logrus.Entry
}

var defaultLogger = newRootLogger()

func newRootLogger() *logrusLogger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return &logrusLogger{entry: logrus.NewEntry(l)}
}

// NewDefaultLogger returns the process-wide default logger
func NewDefaultLogger() Logger {
	return defaultLogger
}

// WithFields returns the default logger with the given context attached
func WithFields(fields Fields) Logger {
	return defaultLogger.WithFields(fields)
}

// SetLevel adjusts the default logger level ("debug", "info", "warn", "error")
func SetLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	defaultLogger.entry.Logger.SetLevel(parsed)
}

func (l *logrusLogger) WithFields(fields Fields) Logger {
	return &logrusLogger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

func (l *logrusLogger) Debug(msg string, fields ...Fields) {
	l.withOptional(fields).Debug(msg)
}

func (l *logrusLogger) Info(msg string, fields ...Fields) {
	l.withOptional(fields).Info(msg)
}

func (l *logrusLogger) Warn(msg string, fields ...Fields) {
	l.withOptional(fields).Warn(msg)
}

func (l *logrusLogger) Error(err error, msg string, fields ...Fields) {
	entry := l.withOptional(fields)
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Error(msg)
}

func (l *logrusLogger) withOptional(fields []Fields) *logrus.Entry {
	entry := l.entry
	for _, f := range fields {
		entry = entry.WithFields(logrus.Fields(f))
	}
	return entry
}
