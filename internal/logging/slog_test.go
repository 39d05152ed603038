package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBufLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	l, buf := newBufLogger(slog.LevelDebug)
	ctx := context.Background()

	l.Debug(ctx, "d", "k", "v")
	l.Info(ctx, "i")
	l.Warn(ctx, "w")
	l.Error(ctx, "e")

	out := buf.String()
	require.Contains(t, out, "level=DEBUG")
	require.Contains(t, out, "level=INFO")
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "level=ERROR")
	require.Contains(t, out, "k=v")
}

func TestSlogLogger_With(t *testing.T) {
	l, buf := newBufLogger(slog.LevelInfo)
	child := l.With("step", "skills")

	child.Info(context.Background(), "submitted")

	require.Contains(t, buf.String(), "step=skills")
}

func TestNewDefault_LevelFromEnv(t *testing.T) {
	t.Setenv("FYND_LOG_LEVEL", "debug")
	l := NewDefault()
	require.NotNil(t, l)

	t.Setenv("FYND_LOG_LEVEL", "error")
	l = NewDefault()
	require.NotNil(t, l)
}

func TestSlogLogger_RespectsLevel(t *testing.T) {
	l, buf := newBufLogger(slog.LevelWarn)

	l.Info(context.Background(), "hidden")
	l.Warn(context.Background(), "visible")

	out := buf.String()
	require.False(t, strings.Contains(out, "hidden"))
	require.Contains(t, out, "visible")
}
