// Package util provides small process-wide helpers shared across the ACS:
// structured logging and handler-scoped logger construction.
package util

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the process-wide logger for ambient concerns: dispatch,
// manager bookkeeping, the control CLI. It is deliberately not used by
// DeviceHandler — each handler is constructed with its own logger
// capability so that handler behavior never depends on global state.
var Logger = logrus.New()

func init() {
	Logger.SetOutput(os.Stderr)
	Logger.SetLevel(logrus.InfoLevel)
	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
}

// SetLogLevel sets the logging level by name.
func SetLogLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	Logger.SetLevel(lvl)
	return nil
}

// SetLogOutput redirects the process-wide logger.
func SetLogOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// WithField returns a logger entry carrying a single field.
func WithField(key string, value interface{}) *logrus.Entry {
	return Logger.WithField(key, value)
}

// WithSerial returns a logger entry scoped to a device serial number.
func WithSerial(serial string) *logrus.Entry {
	return Logger.WithField("serial", serial)
}

// HandlerLogger is the explicit logging capability passed to a
// DeviceHandler at construction time, instead of it reaching for a
// package-global logger. It is satisfied by *logrus.Entry.
type HandlerLogger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// NewHandlerLogger returns a HandlerLogger scoped to a single device
// serial number, derived from the process-wide logger.
func NewHandlerLogger(serial string) HandlerLogger {
	return Logger.WithFields(logrus.Fields{"serial": serial, "component": "handler"})
}
