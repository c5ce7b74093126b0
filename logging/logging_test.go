package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/dasdy/vkeymap/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHandlerAddsAttributes(t *testing.T) {
	var buf bytes.Buffer

	var level slog.LevelVar

	logger := slog.New(logging.NewHandler(&buf, &level))
	ctx := logging.LayoutCtx(logging.PackageCtx("ime"), "fr azerty")

	logger.InfoContext(ctx, "Tap", "col", 3)

	out := buf.String()
	assert.Contains(t, out, "msg=Tap")
	assert.Contains(t, out, "col=3")
	assert.Contains(t, out, "package=ime")
	assert.Contains(t, out, `layout="fr azerty"`)
}

func TestContextHandlerWithAttrsKeepsContext(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(logging.NewHandler(&buf, slog.LevelInfo)).With("device", "event5")
	logger.InfoContext(logging.PackageCtx("keylog"), "Opened")

	assert.Contains(t, buf.String(), "device=event5")
	assert.Contains(t, buf.String(), "package=keylog")
}

func TestAppendCtxDoesNotShareAttributes(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(logging.NewHandler(&buf, slog.LevelInfo))
	base := logging.PackageCtx("web")

	first := logging.LayoutCtx(base, "us qwerty")
	_ = logging.LayoutCtx(base, "de qwertz")

	logger.InfoContext(first, "Page")

	assert.Contains(t, buf.String(), `layout="us qwerty"`)
	assert.NotContains(t, buf.String(), "de qwertz")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := logging.ParseLevel(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := logging.ParseLevel("loud")
	require.ErrorIs(t, err, logging.ErrInvalidLevel)
}

func TestSetLevel(t *testing.T) {
	var level slog.LevelVar

	require.NoError(t, logging.SetLevel(&level, "debug"))
	assert.Equal(t, slog.LevelDebug, level.Level())

	require.ErrorIs(t, logging.SetLevel(&level, "loud"), logging.ErrInvalidLevel)
	assert.Equal(t, slog.LevelDebug, level.Level())

	require.NoError(t, logging.SetLevel(nil, "info"))
}

func TestLevelFiltersRecords(t *testing.T) {
	var buf bytes.Buffer

	var level slog.LevelVar
	level.Set(slog.LevelWarn)

	logger := slog.New(logging.NewHandler(&buf, &level))
	logger.InfoContext(context.Background(), "hidden")
	assert.Empty(t, buf.String())

	level.Set(slog.LevelInfo)
	logger.InfoContext(context.Background(), "shown")
	assert.Contains(t, buf.String(), "msg=shown")
}
