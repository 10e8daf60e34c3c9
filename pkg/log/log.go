package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop().Sugar()

// RegisterLogger builds the process-wide logger from options. Call once at
// startup, before any component logs.
func RegisterLogger(opts *Options) {
	var level zapcore.Level
	_ = level.UnmarshalText([]byte(opts.Level))

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	var encoder zapcore.Encoder
	if opts.Format == "console" {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)
	logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
}

// Sync ...
func Sync() {
	_ = logger.Sync()
}

// Debugw ...
func Debugw(msg string, keysAndValues ...interface{}) {
	logger.Debugw(msg, keysAndValues...)
}

// Infow ...
func Infow(msg string, keysAndValues ...interface{}) {
	logger.Infow(msg, keysAndValues...)
}

// Warnw ...
func Warnw(msg string, keysAndValues ...interface{}) {
	logger.Warnw(msg, keysAndValues...)
}

// Errorw ...
func Errorw(msg string, keysAndValues ...interface{}) {
	logger.Errorw(msg, keysAndValues...)
}

// Fatalw ...
func Fatalw(msg string, keysAndValues ...interface{}) {
	logger.Fatalw(msg, keysAndValues...)
}

// CtxDebugw ...
func CtxDebugw(_ context.Context, msg string, keysAndValues ...interface{}) {
	logger.Debugw(msg, keysAndValues...)
}

// CtxInfow ...
func CtxInfow(_ context.Context, msg string, keysAndValues ...interface{}) {
	logger.Infow(msg, keysAndValues...)
}

// CtxWarnw ...
func CtxWarnw(_ context.Context, msg string, keysAndValues ...interface{}) {
	logger.Warnw(msg, keysAndValues...)
}

// CtxErrorw ...
func CtxErrorw(_ context.Context, msg string, keysAndValues ...interface{}) {
	logger.Errorw(msg, keysAndValues...)
}
