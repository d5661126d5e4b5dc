package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestLeveled_OverridesThreshold ensures Leveled filters below its own threshold and keeps it across With.
func TestLeveled_OverridesThreshold(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	base := zap.New(core).Sugar()

	quiet := Leveled(base, zapcore.WarnLevel).With("component", "middleware")
	quiet.Info("dropped")
	quiet.Warn("kept")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "kept", entries[0].Message)
	require.Equal(t, "middleware", entries[0].ContextMap()["component"])
}
