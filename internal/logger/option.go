package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// leveledCore overrides the threshold of the core it wraps so a single
// component can be quieter or chattier than the global level.
type leveledCore struct {
	zapcore.Core

	// threshold is the minimum level this core accepts.
	threshold zapcore.Level
}

// Enabled reports whether lvl passes the core's own threshold.
func (c *leveledCore) Enabled(lvl zapcore.Level) bool {
	return c.threshold.Enabled(lvl)
}

// Check adds the core to the checked entry when the entry level is enabled.
//
//nolint:gocritic // AddCore requires ent by value.
func (c *leveledCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}

	return ce
}

// With keeps the threshold when fields are attached.
//
//nolint:ireturn,nolintlint // zapcore.Core is the required return type.
func (c *leveledCore) With(fields []zapcore.Field) zapcore.Core {
	return &leveledCore{
		Core:      c.Core.With(fields),
		threshold: c.threshold,
	}
}

// WithLevel returns a zap option that pins the logger to lvl regardless of
// the global atomic level.
//
//nolint:ireturn,nolintlint // zap.Option is the required return type.
func WithLevel(lvl zapcore.Level) zap.Option {
	return zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return &leveledCore{Core: core, threshold: lvl}
	})
}

// Leveled returns a copy of l that only emits entries at lvl or above.
func Leveled(l *zap.SugaredLogger, lvl zapcore.Level) *zap.SugaredLogger {
	return l.Desugar().WithOptions(WithLevel(lvl)).Sugar()
}
