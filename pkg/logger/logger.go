package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var defaultLogger *log.Logger

// Init configures the package-level logger. The level is read from the
// LOG_LEVEL environment variable (debug, info, warn, error); anything
// unparseable falls back to info.
func Init(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	defaultLogger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "hde",
	})
	if lvl, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		defaultLogger.SetLevel(lvl)
	}
}

// With returns a child logger carrying the given key-value pairs.
func With(kv ...interface{}) *log.Logger {
	return get().With(kv...)
}

func get() *log.Logger {
	if defaultLogger == nil {
		Init(os.Stderr)
	}
	return defaultLogger
}

func Debugf(format string, v ...interface{}) {
	get().Debugf(format, v...)
}

func Infof(format string, v ...interface{}) {
	get().Infof(format, v...)
}

func Warnf(format string, v ...interface{}) {
	get().Warnf(format, v...)
}

func Errorf(format string, v ...interface{}) {
	get().Errorf(format, v...)
}
