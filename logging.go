package spheres

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

// Logger receives diagnostic output from Run and the frame script player.
type Logger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// StderrLogger writes "[spheres] level: message" lines to an io.Writer.
type StderrLogger struct {
	out *log.Logger
}

// NewStderrLogger returns a Logger writing to os.Stderr.
func NewStderrLogger() *StderrLogger {
	return NewWriterLogger(os.Stderr)
}

// NewWriterLogger returns a Logger writing to w with timestamps.
func NewWriterLogger(w io.Writer) *StderrLogger {
	return &StderrLogger{out: log.New(w, "", log.LstdFlags|log.Lmicroseconds)}
}

func (l *StderrLogger) Infof(format string, args ...any) {
	l.out.Printf("[spheres] info: %s", fmt.Sprintf(format, args...))
}

func (l *StderrLogger) Errorf(format string, args ...any) {
	l.out.Printf("[spheres] error: %s", fmt.Sprintf(format, args...))
}

// logError reports a failed call followed by each wrapped cause.
func logError(l Logger, method string, err error) {
	l.Errorf("%s() failed: %v", method, err)
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		l.Errorf("  Caused by: %v", cause)
	}
}
