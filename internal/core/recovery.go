package core

import (
	"context"
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"
)

type loggerKey struct{}

// WithLogger attaches a logger to ctx for SafeRun.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// LoggerFrom returns the logger stored in ctx, or a no-op logger.
func LoggerFrom(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok && logger != nil {
		return logger
	}
	return zap.NewNop()
}

// SafeRun runs a stage and converts a panic into an error.
func SafeRun(ctx context.Context, stage Stage, st *State) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := string(debug.Stack())
			err = fmt.Errorf("stage %s panicked: %v", stage.Name(), r)

			LoggerFrom(ctx).Error("stage panic",
				zap.String("stage", stage.Name()),
				zap.Any("panic", r),
				zap.String("stack", stack),
			)
		}
	}()

	return stage.Run(ctx, st)
}
