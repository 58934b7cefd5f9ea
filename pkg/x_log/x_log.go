// file: nset/pkg/x_log/x_log.go

// Package x_log is a thin zerolog front end: a styled console writer,
// an optional rotating file sink, module-scoped loggers and context
// plumbing.
package x_log

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Level mirrors zerolog levels so callers only import this package.
type Level = zerolog.Level

const (
	TraceLevel = zerolog.TraceLevel
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
	FatalLevel = zerolog.FatalLevel
)

var (
	sinkMu sync.RWMutex
	sink   io.Writer = os.Stderr
)

// Init wires the global logger with the default config.
func Init() {
	InitWithConfig(nil, "main")
}

// InitWithConfig wires the global logger and level from cfg; every
// line carries the module name. A nil cfg means defaults.
func InitWithConfig(cfg *Config, module string) {
	if cfg == nil {
		c := defaultConfig
		cfg = &c
	}
	applyDefaults(cfg)

	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	w := newWriter(cfg)
	sinkMu.Lock()
	sink = w
	sinkMu.Unlock()

	log.Logger = zerolog.New(w).With().Timestamp().Str("module", module).Logger()
}

// New returns a logger scoped to module, writing to the sink the last
// Init built, stderr before any Init.
func New(module string) zerolog.Logger {
	sinkMu.RLock()
	w := sink
	sinkMu.RUnlock()
	return zerolog.New(w).With().Timestamp().Str("module", module).Logger()
}

//
// ---------- Global Shortcuts ----------

func Debug() *zerolog.Event { return log.Logger.Debug() }
func Info() *zerolog.Event  { return log.Logger.Info() }
func Warn() *zerolog.Event  { return log.Logger.Warn() }
func Error() *zerolog.Event { return log.Logger.Error() }

//
// ---------- Context Plumbing ----------

type ctxKey struct{}

// WithLogger attaches a logger to a context.
func WithLogger(ctx context.Context, l *zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From returns the context's logger, falling back to the global one.
func From(ctx context.Context) *zerolog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*zerolog.Logger); ok && l != nil {
		return l
	}
	return &log.Logger
}
