package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the shared engine logger. It is a no-op logger until Init is called
// so packages can log unconditionally.
var Log = zap.NewNop()

var once sync.Once

// Init builds the development logger used by the runtime.
func Init() {
	InitWithLevel("info")
}

// InitWithLevel builds the logger once with the given minimum level
// ("debug", "info", "warn", "error"). Unknown levels fall back to info.
func InitWithLevel(level string) {
	once.Do(func() {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
		cfg.DisableStacktrace = true
		l, err := cfg.Build()
		if err != nil {
			// Keep the nop logger, nothing else to report to
			return
		}
		Log = l
	})
}

// SetLogger replaces the shared logger, mostly for tests.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	Log = l
}

// Sync flushes buffered entries.
func Sync() {
	_ = Log.Sync()
}

func parseLevel(level string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}
