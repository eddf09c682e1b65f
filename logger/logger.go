// File: logger/logger.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Structured logging for the slow path. Queue operations never log; the
// facade lifecycle, the verification harnesses, and the examples do, through
// a zap core wrapped in the standard slog front so callers stay decoupled
// from the backend.

package logger

import (
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

// New builds a slog.Logger over a zap core and returns it with the core's
// flush function. Production mode emits JSON at Info; development mode emits
// colored console lines at Debug.
func New(isProd bool) (*slog.Logger, func() error) {
	var zapLogger *zap.Logger

	if isProd {
		zapLogger = zap.Must(zap.NewProduction())
	} else {
		config := zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapLogger = zap.Must(config.Build())
	}

	return slog.New(zapslog.NewHandler(zapLogger.Core())), zapLogger.Sync
}

// Nop returns a logger that discards everything, for tests and callers that
// pass logging through optionally.
func Nop() *slog.Logger {
	return slog.New(zapslog.NewHandler(zap.NewNop().Core()))
}
