package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger writes leveled messages to stderr so they do not mix with exported
// data on stdout.
type Logger struct {
	Debug bool
	log   *log.Logger
}

func NewLogger(debug bool) *Logger {
	return NewLoggerTo(os.Stderr, debug)
}

func NewLoggerTo(w io.Writer, debug bool) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: debug,
		Level:           log.InfoLevel,
	})
	if debug {
		l.SetLevel(log.DebugLevel)
	}

	return &Logger{Debug: debug, log: l}
}

func msg(format string, args []any) string {
	return strings.TrimRight(fmt.Sprintf(format, args...), "\n")
}

func (l *Logger) Debugf(format string, args ...any) {
	if l.Debug {
		l.log.Debug(msg(format, args))
	}
}

func (l *Logger) Infof(format string, args ...any) {
	l.log.Info(msg(format, args))
}

func (l *Logger) Warnf(format string, args ...any) {
	l.log.Warn(msg(format, args))
}

func (l *Logger) Errorf(format string, args ...any) {
	l.log.Error(msg(format, args))
}
