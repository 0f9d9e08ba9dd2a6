// Package logger builds the process logger. Call sites log through log/slog;
// records are encoded by zap so the HTTP access log, gorm and application
// messages share one sink and format.
package logger

import (
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

// New returns the zap logger and an slog.Logger writing through the same
// core. The returned func flushes buffered entries and should be deferred.
func New(production bool) (*zap.Logger, *slog.Logger, func() error) {
	var zapLogger *zap.Logger

	if production {
		zapLogger = zap.Must(zap.NewProduction())
	} else {
		config := zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapLogger = zap.Must(config.Build())
	}

	return zapLogger, FromZap(zapLogger), zapLogger.Sync
}

// FromZap wraps an existing zap logger, such as one from zaptest.
func FromZap(z *zap.Logger) *slog.Logger {
	return slog.New(zapslog.NewHandler(z.Core()))
}
