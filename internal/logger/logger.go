package logger

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
)

type Logger struct {
	Verbose bool
	logr.Logger
}

// New wraps zl. Debug messages are dropped unless verbose is set.
func New(zl *zap.Logger, verbose bool) *Logger {
	return &Logger{
		Verbose: verbose,
		Logger:  zapr.NewLogger(zl),
	}
}

func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.Logger.Info(msg, keysAndValues...)
}

func (l *Logger) Debug(msg string, keysAndValues ...any) {
	if l.Verbose {
		l.Logger.V(1).Info(msg, keysAndValues...)
	}
}

// Warn logs err at info level; warnings never stop a run.
func (l *Logger) Warn(err error, msg string, keysAndValues ...any) {
	l.Logger.Info(msg, append(keysAndValues, "warning", err.Error())...)
}

func (l *Logger) WithValues(keysAndValues ...any) *Logger {
	return &Logger{
		Verbose: l.Verbose,
		Logger:  l.Logger.WithValues(keysAndValues...),
	}
}
