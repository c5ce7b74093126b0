package keymap_test

import (
	"testing"

	"github.com/dasdy/vkeymap/keymap"
	"github.com/dasdy/vkeymap/keys"
	"github.com/dasdy/vkeymap/layout"
	"github.com/dasdy/vkeymap/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartsOnDefaultFamily(t *testing.T) {
	km := keymap.New()

	assert.Equal(t, layout.DefaultFamilyName, km.Family().Name())
	assert.Equal(t, model.ShiftOff, km.ShiftMode())
	assert.Equal(t, model.SymbolOff, km.SymbolMode())
	assert.Equal(t, model.PagePlain, km.Page())
	assert.False(t, km.NumLock())
	assert.Empty(t, km.LanguageName())

	info := km.Family().Info()
	assert.InDelta(t, 2, km.WKey(info.SymbolX, 4).Weight, 0)
	assert.True(t, km.WKey(info.SymbolX+1, 4).Hidden())
}

func TestSetLayoutName(t *testing.T) {
	km := newKeymap(t)

	assert.False(t, km.SetLayoutName("us qwerty"), "already active")
	assert.False(t, km.SetLayoutName("xx unknown"), "unknown names fall back to the active default")

	version := km.UpdateLimits()

	require.True(t, km.SetLayoutName("FR AZERTY"))
	assert.Equal(t, "fr azerty", km.Family().Name())
	assert.Equal(t, version+1, km.UpdateLimits())

	require.True(t, km.SetLayoutName("xx unknown"))
	assert.Equal(t, layout.DefaultFamilyName, km.Family().Name())

	assert.False(t, km.SetLayoutFamily(nil))
}

func TestLanguageKeyToggle(t *testing.T) {
	km := newKeymap(t)
	info := km.Family().Info()

	before := make([]layout.WKey, model.GridColumns)
	for x := range before {
		before[x] = km.WKey(x, 4)
	}

	assert.False(t, km.SetLanguageName(""), "already hidden")

	version := km.UpdateLimits()

	require.True(t, km.SetLanguageName("en-us"))
	assert.Equal(t, "En", km.LanguageName())
	assert.InDelta(t, 1, km.WKey(info.SymbolX, 4).Weight, 0)
	assert.InDelta(t, 1, km.WKey(info.SymbolX+1, 4).Weight, 0)
	assert.Equal(t, keys.ToggleLanguage, km.WKey(info.SymbolX+1, 4).Key)
	assert.Equal(t, version+1, km.UpdateLimits())

	assert.False(t, km.SetLanguageName("en"), "same display name")
	assert.Equal(t, version+1, km.UpdateLimits())

	require.True(t, km.SetLanguageName(""))
	assert.Equal(t, version+2, km.UpdateLimits())

	for x := range before {
		assert.True(t, before[x].Equal(km.WKey(x, 4)), "column %d", x)
	}
}

func TestLanguageKeyOffersCombos(t *testing.T) {
	combos := combosMock{{Layout: "fr azerty", Language: "fr"}, {Layout: "us qwerty", Language: "none"}}
	km := newKeymap(t, keymap.WithCombos(combos))
	info := km.Family().Info()

	require.True(t, km.SetLanguageName("en"))

	language := at(info.SymbolX+1, 4)
	assert.Equal(t, []keys.Key{keys.ComboChoice(0), keys.ComboChoice(1)}, km.ExtendedChars(language))

	km2 := newKeymap(t, keymap.WithCombos(combosMock{}))
	require.True(t, km2.SetLanguageName("en"))
	assert.Empty(t, km2.ExtendedChars(language))
}

func TestEmailBottomRow(t *testing.T) {
	km := newKeymap(t)

	require.True(t, km.SetEditorState(model.EditorState{Type: model.FieldEmail}))
	assert.Equal(t, keys.Char('@'), km.Map(at(3, 4)))
	assert.Equal(t, keys.Space, km.Map(at(4, 4)))
	assert.Equal(t, keys.DotCom, km.Map(at(5, 4)))

	assert.False(t, km.SetEditorState(model.EditorState{Type: model.FieldEmail}), "same state")

	require.True(t, km.SetEditorState(model.EditorState{Type: model.FieldURL}))
	assert.Equal(t, keys.Char('/'), km.Map(at(3, 4)))

	require.True(t, km.SetEditorState(model.EditorState{Type: model.FieldText}))
	assert.Equal(t, keys.None, km.Map(at(3, 4)))
	assert.Equal(t, keys.Space, km.Map(at(4, 4)))
}

func TestEditorStateKeepsLanguageKey(t *testing.T) {
	km := newKeymap(t)
	info := km.Family().Info()

	require.True(t, km.SetLanguageName("de"))
	require.True(t, km.SetEditorState(model.EditorState{Type: model.FieldEmail}))

	assert.Equal(t, keys.ToggleLanguage, km.WKey(info.SymbolX+1, 4).Key)
	assert.InDelta(t, 1, km.WKey(info.SymbolX, 4).Weight, 0)
}

func TestNumericFieldLock(t *testing.T) {
	t.Run("family needing num lock", func(t *testing.T) {
		km := newKeymap(t)
		require.True(t, km.SetLayoutName("fr azerty"))

		require.True(t, km.SetEditorState(model.EditorState{Type: model.FieldNumber}))
		assert.True(t, km.NumLock())
		assert.Equal(t, keys.Char('5'), km.Map(at(5, 0)))

		km.SetShiftKeyDown(true)
		assert.Equal(t, keys.Char('('), km.Map(at(5, 0)))

		km.SetShiftKeyDown(false)
		require.True(t, km.SetEditorState(model.EditorState{Type: model.FieldText}))
		assert.False(t, km.NumLock())
		assert.Equal(t, keys.Char('('), km.Map(at(5, 0)))
	})

	t.Run("caps lock acts as num lock", func(t *testing.T) {
		km := newKeymap(t)
		require.True(t, km.SetLayoutName("fr azerty"))
		require.True(t, km.SetShiftMode(model.ShiftCapsLock))

		assert.Equal(t, keys.Char('5'), km.Map(at(5, 0)))
		assert.Equal(t, keys.Char('A'), km.Map(at(0, 1)))
	})

	t.Run("family without num lock", func(t *testing.T) {
		km := newKeymap(t)

		km.SetEditorState(model.EditorState{Type: model.FieldPhone})
		assert.False(t, km.NumLock())
		assert.Equal(t, keys.Char('1'), km.Map(at(1, 0)))
	})
}

func TestShiftAndSymbolState(t *testing.T) {
	km := newKeymap(t)

	assert.False(t, km.SetShiftMode(model.ShiftOff))
	assert.True(t, km.SetShiftMode(model.ShiftOnce))
	assert.True(t, km.IsShiftActive())
	assert.True(t, km.IsCapActive())

	assert.True(t, km.SetShiftKeyDown(true))
	assert.False(t, km.SetShiftKeyDown(true))
	assert.False(t, km.IsShiftActive(), "held shift cancels a single shift")
	assert.False(t, km.IsCapActive())

	km.SetShiftKeyDown(false)
	km.SetShiftMode(model.ShiftCapsLock)
	assert.True(t, km.IsCapsLocked())
	assert.False(t, km.IsShiftActive())
	assert.True(t, km.IsCapActive())

	km.SetShiftMode(model.ShiftOff)
	assert.False(t, km.IsCapOrAutoCapActive())
	assert.True(t, km.SetAutoCap(true))
	assert.False(t, km.SetAutoCap(true))
	assert.True(t, km.IsCapOrAutoCapActive())

	assert.True(t, km.SetSymbolKeyDown(true), "page switched")
	assert.Equal(t, model.PageAlternate, km.Page())
	assert.False(t, km.SetSymbolMode(model.SymbolOff))
	assert.True(t, km.SetSymbolMode(model.SymbolLock))
	assert.False(t, km.IsSymbolActive())
	assert.Equal(t, model.PagePlain, km.Page())

	assert.True(t, km.SetSymbolKeyDown(false))
	assert.Equal(t, model.PageAlternate, km.Page())
}

func TestTabActionIgnoresFieldActions(t *testing.T) {
	km := newKeymap(t)

	km.SetEditorState(model.EditorState{Actions: model.FieldActionNext | model.FieldActionPrevious})
	assert.Equal(t, model.TabActionTab, km.TabAction())
}

func TestEmoticonsFlag(t *testing.T) {
	km := newKeymap(t)
	assert.False(t, km.ShowEmoticonsAsGraphics())

	km.SetEditorState(model.EditorState{Flags: model.FieldFlagEmoticons})
	assert.True(t, km.ShowEmoticonsAsGraphics())
}

func TestCachedGlyphs(t *testing.T) {
	km := newKeymap(t)

	km.IncCachedGlyphs()
	km.IncCachedGlyphs()
	assert.Equal(t, 2, km.CachedGlyphs())

	km.ResetCachedGlyphs()
	assert.Equal(t, 1, km.CachedGlyphs())

	require.True(t, km.SetLayoutName("de qwertz"))
	assert.Equal(t, 0, km.CachedGlyphs())
	km.IncCachedGlyphs()

	require.True(t, km.SetLayoutName("us qwerty"))
	assert.Equal(t, 1, km.CachedGlyphs())
}

func TestCustomRegistry(t *testing.T) {
	r := layout.NewRegistry()
	require.NoError(t, r.Register(layout.Builtin().Find("se dvorak", true)))

	km := keymap.New(keymap.WithRegistry(r))
	assert.Equal(t, "se dvorak", km.Family().Name())
	assert.Same(t, r, km.Registry())
}

func TestEmptyRegistryUsesBuiltins(t *testing.T) {
	km := keymap.New(keymap.WithRegistry(layout.NewRegistry()))

	require.NotNil(t, km.Family())
	assert.Equal(t, layout.DefaultFamilyName, km.Family().Name())
	assert.Same(t, layout.Builtin(), km.Registry())

	km.SetRect(model.Rect{W: 1200, H: 500})
	assert.Equal(t, keys.Char('Q'), km.Map(model.GridCoord{X: 0, Y: 1}))
}
