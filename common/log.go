package common

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the process logger. Debug enables per-event logs from the
// movement controllers.
func NewLogger(debug bool) *logrus.Logger {
	lg := logrus.New()
	lg.Formatter = &logrus.TextFormatter{ForceColors: true}
	lg.Level = logrus.InfoLevel
	if debug {
		lg.Level = logrus.DebugLevel
	}
	return lg
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *logrus.Logger {
	lg := logrus.New()
	lg.Out = io.Discard
	lg.Level = logrus.PanicLevel
	return lg
}
