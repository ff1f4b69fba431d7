// Package logging provides the leveled terminal logger used across the
// program. Components accept the Logger interface so tests can pass a nop
// implementation.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Logger is a minimal leveled logger.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Nop returns a logger that discards all messages.
func Nop() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

const timeLayout = "2006-01-02.15:04:05"

// ANSI level tags, errors stand out in red.
const (
	tagInfo  = "\033[32m\033[1m[INFO]\033[0m"
	tagWarn  = "\033[34m\033[1m[WARN]\033[0m"
	tagError = "\033[31m\033[1m[ERROR]\033[0m"
	tagDebug = "\033[33m\033[1m[DEBUG]\033[0m"
)

// Terminal writes timestamped, color-tagged lines. Info/warn/debug go to
// Out, errors to Err. Debug lines are emitted only when enabled.
type Terminal struct {
	Out          io.Writer
	Err          io.Writer
	DebugEnabled bool

	mu sync.Mutex
}

// NewTerminal returns a Terminal logger bound to stdout/stderr.
func NewTerminal(debug bool) *Terminal {
	return &Terminal{Out: os.Stdout, Err: os.Stderr, DebugEnabled: debug}
}

func (t *Terminal) printf(w io.Writer, tag, format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(w, "%s %s --- %s\n", tag, time.Now().Format(timeLayout), fmt.Sprintf(format, args...))
}

func (t *Terminal) Debugf(format string, args ...any) {
	if !t.DebugEnabled {
		return
	}
	t.printf(t.Out, tagDebug, format, args...)
}

func (t *Terminal) Infof(format string, args ...any) {
	t.printf(t.Out, tagInfo, format, args...)
}

func (t *Terminal) Warnf(format string, args ...any) {
	t.printf(t.Out, tagWarn, format, args...)
}

func (t *Terminal) Errorf(format string, args ...any) {
	t.printf(t.Err, tagError, format, args...)
}
