// Package logger is the application-wide leveled logger backed by go-logging.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

const (
	moduleName = "quillblog"
	timeFormat = "2006/01/02 15:04:05"
)

var logger = newLogger(os.Stderr, logging.INFO)

// InitLogger replaces the default logger with one writing to stderr at level.
func InitLogger(level logging.Level) {
	logger = newLogger(os.Stderr, level)
}

// SetOutput redirects log output, mostly useful in tests.
func SetOutput(w io.Writer, level logging.Level) {
	logger = newLogger(w, level)
}

func newLogger(w io.Writer, level logging.Level) *logging.Logger {
	l := logging.MustGetLogger(moduleName)
	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(backend, newFormatter())
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, moduleName)
	l.SetBackend(leveled)
	return l
}

func newFormatter() logging.Formatter {
	return logging.MustStringFormatter(`%{time:` + timeFormat + `} %{level} - %{message}`)
}

// ParseLevel maps names like "debug" or "warn" to a go-logging level.
// Unknown names fall back to INFO.
func ParseLevel(name string) logging.Level {
	name = strings.TrimSpace(name)
	switch strings.ToLower(name) {
	case "warn":
		return logging.WARNING
	}
	level, err := logging.LogLevel(strings.ToUpper(name))
	if err != nil {
		fmt.Fprintf(os.Stderr, "unknown log level %q, using INFO\n", name)
		return logging.INFO
	}
	return level
}

func Debug(args ...any) {
	logger.Debug(args...)
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func Info(args ...any) {
	logger.Info(args...)
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func Warning(args ...any) {
	logger.Warning(args...)
}

func Warningf(format string, args ...any) {
	logger.Warningf(format, args...)
}

func Error(args ...any) {
	logger.Error(args...)
}

func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}
