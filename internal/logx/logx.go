// Package logx wraps go.uber.org/zap behind a small functional-options
// constructor, the pattern the rest of this module's ambient stack follows
// (see analyzer.Option in the teacher's own code).
package logx

import "go.uber.org/zap"

// Logger is the structured logger every engine component accepts. It is
// never required; a nil *Logger is safe to call and becomes a no-op,
// so core packages can log without forcing every caller to wire one up.
type Logger struct {
	z *zap.Logger
}

// Option configures a Logger at construction time.
type Option func(*config)

type config struct {
	development bool
	name        string
}

// WithDevelopment switches to zap's human-readable development encoder
// instead of the default JSON production encoder.
func WithDevelopment() Option {
	return func(c *config) { c.development = true }
}

// WithName attaches a logger name, surfaced in every record it emits.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// New builds a Logger. It never returns an error: construction failures in
// zap's default configs are effectively impossible, and a logging failure
// should not be allowed to abort analysis.
func New(opts ...Option) *Logger {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	var z *zap.Logger
	if cfg.development {
		z, _ = zap.NewDevelopment()
	} else {
		z, _ = zap.NewProduction()
	}
	if z == nil {
		z = zap.NewNop()
	}
	if cfg.name != "" {
		z = z.Named(cfg.name)
	}
	return &Logger{z: z}
}

// Nop returns a Logger that discards everything, used as the default when
// a caller does not supply one.
func Nop() *Logger { return &Logger{z: zap.NewNop()} }

func (l *Logger) fields() *zap.Logger {
	if l == nil || l.z == nil {
		return zap.NewNop()
	}
	return l.z
}

func (l *Logger) Debug(msg string, fields ...zap.Field) { l.fields().Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...zap.Field)  { l.fields().Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...zap.Field)  { l.fields().Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...zap.Field) { l.fields().Error(msg, fields...) }

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	if l == nil || l.z == nil {
		return nil
	}
	return l.z.Sync()
}
