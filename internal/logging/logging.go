package logging

import (
	"context"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

// NewZapLogger builds the process logger. Debug enables V(1) messages.
func NewZapLogger(debug bool, buildVersion string) (logr.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if debug {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zl, err := zapCfg.Build()
	if err != nil {
		return logr.Discard(), err
	}
	return NewLoggerWithBuild(zl, buildVersion), nil
}

// NewLoggerWithBuild creates a logger with serviceBuild field if buildVersion is provided
func NewLoggerWithBuild(zl *zap.Logger, buildVersion string) logr.Logger {
	logger := zapr.NewLogger(zl)
	if buildVersion != "" {
		logger = logger.WithValues("serviceBuild", buildVersion)
	}
	return logger
}

// Logger writes session events to the logger carried by the context.
type Logger struct {
	logFn    func(ctx context.Context, msg string, args ...any)
	progress *rate.Sometimes
}

func NewLogger() *Logger {
	return &Logger{
		logFn: func(ctx context.Context, msg string, args ...any) {
			logr.FromContextOrDiscard(ctx).V(0).Info(msg, args...)
		},
		progress: &rate.Sometimes{First: 1, Interval: time.Second},
	}
}

// Log adds a timestamp to every entry.
func (l *Logger) Log(ctx context.Context, msg string, field ...any) {
	enrichedFields := []any{"timestamp", time.Now()}
	enrichedFields = append(enrichedFields, field...)
	l.logFn(ctx, msg, enrichedFields...)
}

// Progress logs at most once per interval. The first call always logs.
func (l *Logger) Progress(ctx context.Context, msg string, field ...any) {
	l.progress.Do(func() { l.Log(ctx, msg, field...) })
}

func (l *Logger) WithLogFn(fn func(ctx context.Context, msg string, args ...any)) *Logger {
	l.logFn = fn
	return l
}

func (l *Logger) WithProgressInterval(d time.Duration) *Logger {
	l.progress = &rate.Sometimes{First: 1, Interval: d}
	return l
}
