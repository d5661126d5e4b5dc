package watcher

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// failingWriter fails every write.
type failingWriter struct{}

// errBrokenPipe is returned by failingWriter.
var errBrokenPipe = errors.New("broken pipe")

func (failingWriter) Write([]byte) (int, error) { return 0, errBrokenPipe }

// TestReportState checks printing, logging and the write error classification.
func TestReportState(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, reportState(context.Background(), &buf, -2))
	require.Equal(t, "count: -2\n", buf.String())

	require.NoError(t, reportState(context.Background(), nil, 5))

	err := reportState(context.Background(), failingWriter{}, 1)
	require.ErrorIs(t, err, errWrite)
	require.ErrorIs(t, err, errBrokenPipe)
}

// TestRun_MissingConfig ensures configuration errors are reported before dialing.
func TestRun_MissingConfig(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), &Options{ConfigPath: t.TempDir() + "/missing.yaml"})
	require.Error(t, err)
}
