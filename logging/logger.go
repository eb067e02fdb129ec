// SPDX-License-Identifier: MIT

// Package logging is the structured logger shared by the squat packages
// and the squat command. It wraps zerolog with key/value methods so that
// library code never depends on zerolog's builder API directly.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// ErrUnknownFormat indicates a logging format other than json or console.
var ErrUnknownFormat = errors.New("logging: unknown format")

// Logger wraps zerolog.Logger with key/value convenience methods.
// A Logger is safe for concurrent use.
type Logger struct {
	zl zerolog.Logger
}

var global atomic.Pointer[Logger]

func init() {
	global.Store(NewWithWriter(os.Stderr, zerolog.WarnLevel))
}

// NewProduction returns an info-level JSON logger on stdout.
func NewProduction() *Logger {
	return NewWithWriter(os.Stdout, zerolog.InfoLevel)
}

// NewDevelopment returns a debug-level console logger on stderr.
func NewDevelopment() *Logger {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	return NewWithWriter(out, zerolog.DebugLevel)
}

// NewWithWriter returns a JSON logger writing to w at the given level.
func NewWithWriter(w io.Writer, level zerolog.Level) *Logger {
	return &Logger{zl: zerolog.New(w).Level(level).With().Timestamp().Logger()}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// NewFromConfig builds a logger writing to w from textual settings.
// An empty level means info; format is "json" (default) or "console".
//
// Errors:
//   - the zerolog parse error for an unknown level.
//   - ErrUnknownFormat for an unknown format.
func NewFromConfig(w io.Writer, level, format string) (*Logger, error) {
	lvl := zerolog.InfoLevel
	if level != "" {
		var err error
		if lvl, err = zerolog.ParseLevel(strings.ToLower(level)); err != nil {
			return nil, fmt.Errorf("logging: level %q: %w", level, err)
		}
	}
	switch strings.ToLower(format) {
	case "", "json":
	case "console", "pretty":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	default:
		return nil, fmt.Errorf("logging: format %q: %w", format, ErrUnknownFormat)
	}

	return NewWithWriter(w, lvl), nil
}

// SetGlobal replaces the process-wide logger. A nil logger is ignored.
func SetGlobal(l *Logger) {
	if l != nil {
		global.Store(l)
	}
}

// Global returns the process-wide logger (warn level on stderr unless
// replaced with SetGlobal).
func Global() *Logger {
	return global.Load()
}

// Or returns l, or the global logger when l is nil. Option structs use it
// to resolve their optional Logger field.
func Or(l *Logger) *Logger {
	if l == nil {
		return Global()
	}

	return l
}

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level zerolog.Level) bool {
	return level >= l.zl.GetLevel() && level >= zerolog.GlobalLevel()
}

// Debug logs msg with key/value pairs at debug level.
func (l *Logger) Debug(msg string, kv ...interface{}) {
	emit(l.zl.Debug(), msg, kv)
}

// Info logs msg with key/value pairs at info level.
func (l *Logger) Info(msg string, kv ...interface{}) {
	emit(l.zl.Info(), msg, kv)
}

// Warn logs msg with key/value pairs at warn level.
func (l *Logger) Warn(msg string, kv ...interface{}) {
	emit(l.zl.Warn(), msg, kv)
}

// Error logs msg with key/value pairs at error level.
func (l *Logger) Error(msg string, kv ...interface{}) {
	emit(l.zl.Error(), msg, kv)
}

// With returns a child logger that adds the key/value pairs to every entry.
func (l *Logger) With(kv ...interface{}) *Logger {
	ctx := l.zl.With()
	for i := 0; i+1 < len(kv); i += 2 {
		ctx = ctx.Interface(key(kv[i]), value(kv[i+1]))
	}

	return &Logger{zl: ctx.Logger()}
}

// emit attaches the pairs to e and writes it. e is nil when the level is
// disabled, in which case nothing is formatted. A trailing key without a
// value is dropped.
func emit(e *zerolog.Event, msg string, kv []interface{}) {
	if e == nil {
		return
	}
	for i := 0; i+1 < len(kv); i += 2 {
		k := key(kv[i])
		if err, ok := kv[i+1].(error); ok {
			e.AnErr(k, err)
			continue
		}
		e.Interface(k, kv[i+1])
	}
	e.Msg(msg)
}

func key(k interface{}) string {
	if s, ok := k.(string); ok {
		return s
	}

	return fmt.Sprint(k)
}

func value(v interface{}) interface{} {
	if err, ok := v.(error); ok {
		return err.Error()
	}

	return v
}
