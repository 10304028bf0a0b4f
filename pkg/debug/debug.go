// Package debug provides conditional debug logging for tsg.
//
// Debug logging is enabled by setting the TSG_DEBUG environment variable:
//
//	TSG_DEBUG=1 TSG_DEBUG_FILE=/tmp/tsg.log tsg
//
// The TUI owns the terminal, so messages go to TSG_DEBUG_FILE when it is
// set and to stderr otherwise. When disabled (default), all debug functions
// are no-ops.
//
// Usage:
//
//	debug.Log("pager: advance -> %d", cursor)
//	defer debug.LogEnterExit("render")()
package debug

import (
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.RWMutex
	enabled bool
	logger  *zap.SugaredLogger
)

func init() {
	if os.Getenv("TSG_DEBUG") != "" {
		SetEnabled(true)
	}
}

// Enabled returns whether debug logging is enabled.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetEnabled allows programmatic control of debug logging. The first
// enable builds the logger from TSG_DEBUG_FILE.
func SetEnabled(e bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = e
	if e && logger == nil {
		logger = newLogger(openSink())
	}
}

// SetOutput redirects debug output to w and enables logging. Tests use it
// to capture messages.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(zapcore.AddSync(w))
	enabled = true
}

// Sync flushes buffered log entries.
func Sync() {
	if l := current(); l != nil {
		_ = l.Sync()
	}
}

func openSink() zapcore.WriteSyncer {
	if path := os.Getenv("TSG_DEBUG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			return zapcore.AddSync(f)
		}
	}
	return zapcore.Lock(os.Stderr)
}

func newLogger(sink zapcore.WriteSyncer) *zap.SugaredLogger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000000")
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), sink, zap.DebugLevel)
	return zap.New(core).Named("TSG_DEBUG").Sugar()
}

// current returns the logger when enabled, nil otherwise.
func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return nil
	}
	return logger
}

// Log writes a debug message if debug logging is enabled.
// Uses printf-style formatting.
func Log(format string, args ...any) {
	if l := current(); l != nil {
		l.Debugf(format, args...)
	}
}

// LogIf writes a debug message only if the condition is true.
func LogIf(cond bool, format string, args ...any) {
	if !cond {
		return
	}
	Log(format, args...)
}

// LogTiming writes a timing message if debug logging is enabled.
func LogTiming(name string, d time.Duration) {
	if l := current(); l != nil {
		l.Debugw("timing", "name", name, "took", d)
	}
}

// LogEnterExit logs function entry and exit with timing.
//
//	defer debug.LogEnterExit("View")()
func LogEnterExit(name string) func() {
	l := current()
	if l == nil {
		return func() {}
	}
	l.Debugf("-> %s", name)
	start := time.Now()
	return func() {
		l.Debugf("<- %s (%v)", name, time.Since(start))
	}
}

// Dump logs a value with its type for debugging complex structures.
func Dump(name string, v any) {
	if l := current(); l != nil {
		l.Debugf("%s: %T = %+v", name, v, v)
	}
}
