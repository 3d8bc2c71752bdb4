// ABOUTME: Structured logger implementation backed by logrus
// ABOUTME: Maps the core Logger interface onto logrus fields, levels and formatters

package structured

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"stackpages-api/pkg/config"
)

// Logger implements the core Logger interface on a logrus.Logger
type Logger struct {
	entry *logrus.Entry
}

// Options select level and output format
type Options struct {
	// Level is debug, info, warn or error; anything else means info
	Level string

	// Format is "json" or "text"
	Format string

	// Output defaults to stdout
	Output io.Writer
}

// New creates a logger with the given options
func New(opts Options) *Logger {
	base := logrus.New()

	if opts.Output != nil {
		base.SetOutput(opts.Output)
	} else {
		base.SetOutput(os.Stdout)
	}

	if strings.EqualFold(opts.Format, "text") {
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		base.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	base.SetLevel(level)

	return &Logger{entry: logrus.NewEntry(base)}
}

// FromLogrus wraps an existing logrus logger
func FromLogrus(l *logrus.Logger) *Logger {
	return &Logger{entry: logrus.NewEntry(l)}
}

// With returns a logger that adds fields to every entry
func (l *Logger) With(fields map[string]interface{}) *Logger {
	return &Logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.withFields(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.withFields(fields).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.withFields(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.withFields(fields).Error(msg)
}

func (l *Logger) withFields(fields map[string]interface{}) *logrus.Entry {
	if len(fields) == 0 {
		return l.entry
	}
	return l.entry.WithFields(logrus.Fields(fields))
}

// NewFromConfig creates a stdout logger from the LOG_* settings
func NewFromConfig(cfg config.LogConfig) *Logger {
	return New(Options{Level: cfg.Level, Format: cfg.Format})
}
