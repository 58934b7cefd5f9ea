// file: nset/store/gormstore/logger.go
package gormstore

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm/logger"
)

//
// ---------- GORM log adapter ----------

// logAdapter implements GORM logger.Interface on a zerolog logger.
type logAdapter struct {
	log           zerolog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

// NewLogAdapter builds a GORM logger writing to zlog at the given
// level.
func NewLogAdapter(zlog zerolog.Logger, level logger.LogLevel) logger.Interface {
	return &logAdapter{
		log:           zlog,
		level:         level,
		slowThreshold: 200 * time.Millisecond,
	}
}

// LogMode returns a copy of the adapter at another level.
func (l *logAdapter) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.level = level
	return &newLogger
}

func (l *logAdapter) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Info {
		l.log.Info().Msgf(msg, data...)
	}
}

func (l *logAdapter) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Warn {
		l.log.Warn().Msgf(msg, data...)
	}
}

func (l *logAdapter) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Error {
		l.log.Error().Msgf(msg, data...)
	}
}

// Trace logs SQL statements, highlighting slow or failed ones.
func (l *logAdapter) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	e := l.log.With().
		Str("elapsed", elapsed.String()).
		Int64("rows", rows).
		Logger()

	switch {
	case err != nil && l.level >= logger.Error:
		e.Error().Err(err).Msg(sql)
	case elapsed > l.slowThreshold && l.level >= logger.Warn:
		e.Warn().Msgf("SLOW SQL: %s", sql)
	case l.level >= logger.Info:
		e.Info().Msg(sql)
	}
}
