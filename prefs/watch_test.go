package prefs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dasdy/vkeymap/layout"
	"github.com/dasdy/vkeymap/prefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileMissing(t *testing.T) {
	p := prefs.New(layout.Builtin(), nil, "en_us")

	require.NoError(t, p.LoadFile(filepath.Join(t.TempDir(), "prefs.json")))
	assert.Equal(t, 0, p.ComboCount())
}

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"keyboards": [{"layout": "fr azerty", "language": "fr"}]}`), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 4)
	p := prefs.New(layout.Builtin(), nil, "en_us")

	require.NoError(t, prefs.Watch(ctx, path, p, func() { changed <- struct{}{} }))
	assert.Equal(t, 1, p.ComboCount(), "initial load")

	require.NoError(t, os.WriteFile(path, []byte(twoKeyboards), 0o600))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("preferences were not reloaded")
	}

	assert.Equal(t, 2, p.ComboCount())
}

func TestWatchInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"keyboards": 1}`), 0o600))

	p := prefs.New(layout.Builtin(), nil, "en_us")
	require.ErrorIs(t, prefs.Watch(context.Background(), path, p, nil), prefs.ErrInvalidPreferences)
}
