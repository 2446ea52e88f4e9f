package utils

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is a thin wrapper over a logrus.Logger, keeping the same
// Info/Warn/Error(format, args...) call shape callers already use
// while gaining structured, leveled output.
type Logger struct {
	l *logrus.Logger
}

// NewLogger builds a Logger writing to stdout. withTimestamp selects
// RFC3339 timestamps in the output; disabling it is mainly useful for
// golden-file test output where timestamps would make runs non-
// reproducible.
func NewLogger(withTimestamp bool) *Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: !withTimestamp,
		FullTimestamp:    true,
	})
	return &Logger{l: l}
}

func (lg *Logger) Info(format string, args ...any) {
	lg.l.Info(fmt.Sprintf(format, args...))
}

func (lg *Logger) Warn(format string, args ...any) {
	lg.l.Warn(fmt.Sprintf(format, args...))
}

func (lg *Logger) Error(format string, args ...any) {
	lg.l.Error(fmt.Sprintf(format, args...))
}
