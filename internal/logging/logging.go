package logging

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	Field  = zapcore.Field
	Option = zap.Option
)

type loggerCtxKey struct{}

type zapLogger interface {
	Debug(msg string, fields ...zapcore.Field)
	Error(msg string, fields ...zapcore.Field)
	Info(msg string, fields ...zapcore.Field)
	Warn(msg string, fields ...zapcore.Field)
	Sync() error
	With(fields ...zapcore.Field) *zap.Logger
}

// Logger is the structured logger shared by the demos.
type Logger struct {
	log zapLogger
}

var (
	logOnce      sync.Once
	cachedLogger *Logger
)

// Production reports whether logs should be JSON encoded.
func Production() bool {
	return os.Getenv("GO_ENVIRONMENT") == "production"
}

func defaultLogger(debug bool) *zap.Logger {
	var logCfg zap.Config
	if Production() {
		logCfg = zap.NewProductionConfig()
	} else {
		logCfg = zap.NewDevelopmentConfig()
		logCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	if !debug {
		logCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	logger, err := logCfg.Build()
	if err != nil {
		log.Panicf("could not create logger: %v", err)
	}

	return logger
}

// New returns the process-wide logger, building it on first use.
func New() *Logger {
	return NewWithLevel(false)
}

// NewWithLevel is New with debug output enabled when debug is set. Only the
// first call decides the level.
func NewWithLevel(debug bool) *Logger {
	logOnce.Do(func() {
		if cachedLogger == nil {
			cachedLogger = &Logger{log: defaultLogger(debug)}
		}
	})
	return cachedLogger
}

// Wrap adapts an existing zap logger, typically zaptest or zap.NewNop in tests.
func Wrap(logger *zap.Logger) *Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Logger{log: logger}
}

// FromContext returns the logger stored by WithContext, or the global one.
func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return New()
	}

	if l, ok := ctx.Value(loggerCtxKey{}).(*Logger); ok {
		return l
	}

	return New()
}

func (l *Logger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, l)
}

func (l Logger) Debug(msg string, fields ...Field) {
	l.log.Debug(msg, fields...)
}

func (l Logger) Error(msg string, fields ...Field) {
	l.log.Error(msg, fields...)
}

func (l Logger) Info(msg string, fields ...Field) {
	l.log.Info(msg, fields...)
}

func (l Logger) Warn(msg string, fields ...Field) {
	l.log.Warn(msg, fields...)
}

func (l Logger) Sync() error {
	return l.log.Sync()
}

func (l Logger) With(fields ...Field) *Logger {
	return &Logger{log: l.log.With(fields...)}
}
