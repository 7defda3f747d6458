// Package gormlogger adapts gorm's logger interface onto zerolog, so
// database traffic lands in the same outputs as the rest of the
// application.
package gormlogger

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	gormlog "gorm.io/gorm/logger"
)

// SlowThreshold marks how long a query may run before it is logged as slow.
const SlowThreshold = 200 * time.Millisecond

// Adapter implements gorm's logger.Interface on top of the global zerolog
// logger.
type Adapter struct {
	level gormlog.LogLevel
}

// New creates an Adapter. Trace-level SQL logging follows zerolog's global
// level, so a production info-level setup stays quiet.
func New() *Adapter {
	level := gormlog.Warn
	if zerolog.GlobalLevel() <= zerolog.TraceLevel {
		level = gormlog.Info
	}

	return &Adapter{level: level}
}

// LogMode implements gorm's logger.Interface.
func (a *Adapter) LogMode(level gormlog.LogLevel) gormlog.Interface {
	return &Adapter{level: level}
}

// Info implements gorm's logger.Interface.
func (a *Adapter) Info(_ context.Context, msg string, args ...any) {
	if a.level >= gormlog.Info {
		log.Info().Str("source", "gorm").Msgf(msg, args...)
	}
}

// Warn implements gorm's logger.Interface.
func (a *Adapter) Warn(_ context.Context, msg string, args ...any) {
	if a.level >= gormlog.Warn {
		log.Warn().Str("source", "gorm").Msgf(msg, args...)
	}
}

// Error implements gorm's logger.Interface.
func (a *Adapter) Error(_ context.Context, msg string, args ...any) {
	if a.level >= gormlog.Error {
		log.Error().Str("source", "gorm").Msgf(msg, args...)
	}
}

// Trace implements gorm's logger.Interface.
func (a *Adapter) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if a.level <= gormlog.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && a.level >= gormlog.Error:
		log.Error().Err(err).Str("source", "gorm").Str("sql", sql).Int64("rows", rows).Msg("query failed")
	case elapsed > SlowThreshold && a.level >= gormlog.Warn:
		log.Warn().Str("source", "gorm").Str("sql", sql).Int64("rows", rows).
			Dur("elapsed", elapsed).Msg("slow query")
	case a.level >= gormlog.Info:
		log.Trace().Str("source", "gorm").Str("sql", sql).Int64("rows", rows).
			Dur("elapsed", elapsed).Msg("query")
	}
}
