package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	debugTag = color.New(color.FgHiBlack).Sprint("[DEBUG]")
	infoTag  = color.New(color.FgCyan).Sprint("[INFO]")
	warnTag  = color.New(color.FgYellow).Sprint("[WARN]")
	errorTag = color.New(color.FgRed, color.Bold).Sprint("[ERROR]")
)

type Logger struct {
	Debug bool
	Out   io.Writer
}

// NewLogger writes to stderr so command output on stdout stays parseable.
func NewLogger(debug bool) *Logger {
	return &Logger{Debug: debug, Out: os.Stderr}
}

func (l *Logger) Debugf(format string, args ...any) {
	if l.Debug {
		l.printf(debugTag, format, args...)
	}
}

func (l *Logger) Infof(format string, args ...any) {
	l.printf(infoTag, format, args...)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.printf(warnTag, format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.printf(errorTag, format, args...)
}

func (l *Logger) printf(tag, format string, args ...any) {
	out := l.Out
	if out == nil {
		out = os.Stderr
	}
	_, _ = fmt.Fprintf(out, tag+" "+format, args...)
}
