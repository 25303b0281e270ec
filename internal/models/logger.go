package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// slowQueryThreshold is the duration after which a finished query is logged
// with a warning instead of a debug message.
const slowQueryThreshold = 200 * time.Millisecond

// gormLogger writes gorm's log output through zerolog.
type gormLogger struct {
	log zerolog.Logger
}

func (l *gormLogger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *gormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	l.log.Info().Msgf(msg, args...)
}

func (l *gormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	l.log.Warn().Msgf(msg, args...)
}

func (l *gormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	l.log.Error().Msgf(msg, args...)
}

// Trace logs every finished query with its duration and affected rows.
// Queries that fail because a resource does not exist are expected during
// normal operation and are not logged as errors.
func (l *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	event := l.log.Debug()
	switch {
	case err != nil && !errors.Is(err, ErrResourceNotFound):
		event = l.log.Error().Err(err)
	case elapsed > slowQueryThreshold:
		event = l.log.Warn().Bool("slow", true)
	}

	event.
		Str("sql", sql).
		Int64("rows", rows).
		Dur("elapsed", elapsed).
		Msg("database query")
}
