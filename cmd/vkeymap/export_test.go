package vkeymap

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dasdy/vkeymap/keymap"
	"github.com/dasdy/vkeymap/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withKeymapFlags(t *testing.T, name string, w, h int) {
	t.Helper()

	oldName, oldW, oldH := layoutName, width, height
	layoutName, width, height = name, w, h

	t.Cleanup(func() { layoutName, width, height = oldName, oldW, oldH })
}

func TestNewKeymap(t *testing.T) {
	withKeymapFlags(t, "FR AZERTY", 1200, 500)

	km, err := newKeymap()
	require.NoError(t, err)
	assert.Equal(t, "fr azerty", km.Family().Name())
	assert.Equal(t, 1200, km.Rect().W)

	withKeymapFlags(t, "klingon", 1200, 500)
	_, err = newKeymap()
	require.ErrorIs(t, err, layout.ErrUnknownFamily)

	withKeymapFlags(t, "", 0, 500)
	_, err = newKeymap()
	require.ErrorIs(t, err, keymap.ErrInvalidRect)
}

func TestWriteLayout(t *testing.T) {
	withKeymapFlags(t, "", 1200, 500)

	km, err := newKeymap()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeLayout(&buf, km, "json"))

	var snapshot keymap.LayoutSnapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &snapshot))
	assert.Equal(t, layout.DefaultFamilyName, snapshot.Layout)

	buf.Reset()
	require.NoError(t, writeLayout(&buf, km, "yaml"))

	family, err := layout.LoadFamilyYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, layout.DefaultFamilyName, family.Name())

	require.Error(t, writeLayout(&buf, km, "csv"))
}

func TestExportAllLayouts(t *testing.T) {
	withKeymapFlags(t, "", 1200, 500)

	km, err := newKeymap()
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, exportAllLayouts(km, dir, "xml"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, km.Registry().Len())
	assert.FileExists(t, filepath.Join(dir, "fr_azerty.xml"))
}

func TestDefaultLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "fr_FR.UTF-8")

	assert.Equal(t, "fr_fr", defaultLocale())

	t.Setenv("LANG", "C")
	assert.Equal(t, "en_us", defaultLocale())
}
