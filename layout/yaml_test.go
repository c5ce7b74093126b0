package layout_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dasdy/vkeymap/keys"
	"github.com/dasdy/vkeymap/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallFamily = `
name: xx test
language: xx
primaryId: 9
secondaryId: 256
symbolLabel: "+"
noLanguageLabel: "X"
tabX: 0
symbolX: 1
returnX: 2
returnY: 2
rows:
  - [{w: 1, key: "1", alt: "!"}]
  - [{w: 1, key: q, alt: "~", ext: [Q, U+00E6]}]
  - [{w: 1, key: a}, {w: 1, key: s}, {w: 1.5, key: Return, alt: Return}]
  - [{w: 1, key: Shift, alt: Shift}]
bottom:
  default:
    - {w: 1, key: Tab, alt: Tab}
    - {w: 2, key: Symbol, alt: Symbol}
    - {w: 0, key: None}
    - {w: 5, key: Space, alt: Space}
`

func TestLoadFamilyYAML(t *testing.T) {
	f, err := layout.LoadFamilyYAML(strings.NewReader(smallFamily))
	require.NoError(t, err)

	assert.Equal(t, "xx test", f.Name())
	assert.Equal(t, keys.Char('Q'), f.WKey(0, 1).Key)
	assert.Equal(t, []keys.Key{keys.Char('Q'), keys.Char('æ')}, f.WKey(0, 1).Extended)
	assert.Equal(t, keys.Return, f.WKey(2, 2).Key)
	assert.Equal(t, float32(1.5), f.WKey(2, 2).Weight)
	assert.Equal(t, f.BottomRow(layout.BottomDefault), f.BottomRow(layout.BottomEmail))
}

func TestLoadFamilyYAMLErrors(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{"unknown key", strings.Replace(smallFamily, "key: q", "key: NoSuchKey", 1)},
		{"unknown field", smallFamily + "colour: red\n"},
		{"missing rows", "name: x\nsymbolX: 1\nrows: []\n"},
		{"no return key", strings.Replace(smallFamily, "returnX: 2", "returnX: 1", 1)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := layout.LoadFamilyYAML(strings.NewReader(tc.doc))
			require.Error(t, err)
		})
	}
}

func TestFamilyYAMLRoundTrip(t *testing.T) {
	for _, name := range layout.Builtin().Names() {
		t.Run(name, func(t *testing.T) {
			f := layout.Builtin().Find(name, true)

			var buf bytes.Buffer
			require.NoError(t, layout.WriteFamilyYAML(&buf, f))

			loaded, err := layout.LoadFamilyYAML(&buf)
			require.NoError(t, err)

			assert.Equal(t, f.Info(), loaded.Info())
			assert.Equal(t, f.Grid(), loaded.Grid())
			assert.Equal(t, f.BottomRow(layout.BottomURL), loaded.BottomRow(layout.BottomURL))
		})
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "xx.yaml"), []byte(smallFamily), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

	r, err := layout.NewBuiltinRegistry()
	require.NoError(t, err)

	n, err := layout.LoadDir(r, dir)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NotNil(t, r.Find("XX TEST", true))

	_, err = layout.LoadDir(r, dir)
	require.ErrorIs(t, err, layout.ErrDuplicateFamily)

	loaded, err := layout.LoadRegistry(dir)
	require.NoError(t, err)
	assert.Equal(t, 8, loaded.Len())
	require.ErrorIs(t, loaded.Register(r.Find("xx test", true)), layout.ErrFrozen)
}
