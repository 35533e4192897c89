package postgres

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"ecoconnect/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestNewGormSlogLogger_SlowThresholdFromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Postgres = &config.PostgresConfig{SlowThreshold: 50 * time.Millisecond}

	l, ok := newGormSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg).(*gormSlogLogger)
	require.True(t, ok)

	assert.Equal(t, 50*time.Millisecond, l.slowThreshold)
	assert.True(t, l.shouldLogSlow(60*time.Millisecond))
	assert.False(t, l.shouldLogSlow(40*time.Millisecond))
}

func TestNewGormSlogLogger_DefaultsWithoutConfig(t *testing.T) {
	l, ok := newGormSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)), nil).(*gormSlogLogger)
	require.True(t, ok)

	assert.Equal(t, defaultGormSlowThreshold, l.slowThreshold)
	assert.Equal(t, logger.Warn, l.level)
	assert.False(t, l.shouldLogError(gorm.ErrRecordNotFound))
	assert.True(t, l.shouldLogError(gorm.ErrInvalidTransaction))
}
