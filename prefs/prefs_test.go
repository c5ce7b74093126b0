package prefs_test

import (
	"testing"

	"github.com/dasdy/vkeymap/layout"
	"github.com/dasdy/vkeymap/model"
	"github.com/dasdy/vkeymap/prefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoKeyboards = `{"keyboards": [
	{"layout": "US QWERTY", "language": "en"},
	{"layout": "klingon", "language": "tlh"},
	{"layout": "fr azerty", "language": "fr"}
]}`

var (
	usEn = model.KeyboardCombo{Layout: "us qwerty", Language: "en"}
	frFr = model.KeyboardCombo{Layout: "fr azerty", Language: "fr"}
)

func TestDefaultCombo(t *testing.T) {
	tests := []struct {
		locale string
		want   model.KeyboardCombo
	}{
		{"fr_fr", frFr},
		{"fr-FR", frFr},
		{"de_de", model.KeyboardCombo{Layout: "de qwertz", Language: "de"}},
		{"en_us", usEn},
		{"fr_ca", model.KeyboardCombo{Layout: "us qwerty", Language: "fr"}},
		{"ja_JP", model.KeyboardCombo{Layout: "us qwerty", Language: "ja"}},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, prefs.DefaultCombo(tt.locale))
		})
	}
}

func TestActiveWithoutCombos(t *testing.T) {
	p := prefs.New(layout.Builtin(), nil, "fr_fr")

	combo, showLanguageKey := p.Active()
	assert.Equal(t, frFr, combo)
	assert.False(t, showLanguageKey)
	assert.Equal(t, 0, p.ComboCount())
	assert.Equal(t, model.KeyboardCombo{}, p.Combo(0))
}

func TestLoad(t *testing.T) {
	p := prefs.New(layout.Builtin(), nil, "en_us")
	require.NoError(t, p.Load([]byte(twoKeyboards)))

	assert.Equal(t, []model.KeyboardCombo{usEn, frFr}, p.Combos())

	combo, showLanguageKey := p.Active()
	assert.Equal(t, usEn, combo)
	assert.True(t, showLanguageKey)
	assert.True(t, p.TapSounds())

	require.NoError(t, p.Load([]byte(`{"TapSounds": false, "spaces2period": false}`)))
	assert.Len(t, p.Combos(), 2, "combos are kept without keyboards")
	assert.False(t, p.TapSounds())
	assert.False(t, p.Spaces2Period())
}

func TestLoadSingleCombo(t *testing.T) {
	p := prefs.New(layout.Builtin(), nil, "en_us")
	require.NoError(t, p.Load([]byte(`{"keyboards": [{"layout": "se dvorak", "language": "sv"}]}`)))

	combo, showLanguageKey := p.Active()
	assert.Equal(t, model.KeyboardCombo{Layout: "se dvorak", Language: "sv"}, combo)
	assert.False(t, showLanguageKey)
}

func TestLoadInvalid(t *testing.T) {
	p := prefs.New(layout.Builtin(), nil, "en_us")

	for _, doc := range []string{
		`not json`,
		`{"keyboards": [{"layout": "us qwerty"}]}`,
		`{"keyboards": "us qwerty"}`,
		`{"TapSounds": "yes"}`,
	} {
		require.ErrorIs(t, p.Load([]byte(doc)), prefs.ErrInvalidPreferences, doc)
	}

	assert.Equal(t, 0, p.ComboCount())
}

func TestSelectNextWraps(t *testing.T) {
	store := newStoreMock()
	p := prefs.New(layout.Builtin(), store, "en_us")
	require.NoError(t, p.Load([]byte(twoKeyboards)))

	require.NoError(t, p.SelectNext())
	combo, _ := p.Active()
	assert.Equal(t, frFr, combo)
	assert.JSONEq(t, `{"layout": "fr azerty", "language": "fr", "keyboard size": 0}`, store.get(prefs.SettingsKey))

	require.NoError(t, p.SelectNext())
	combo, _ = p.Active()
	assert.Equal(t, usEn, combo)
}

func TestSelect(t *testing.T) {
	p := prefs.New(layout.Builtin(), nil, "en_us")
	require.NoError(t, p.Load([]byte(twoKeyboards)))

	require.NoError(t, p.Select(1))
	combo, _ := p.Active()
	assert.Equal(t, frFr, combo)

	require.ErrorIs(t, p.Select(2), prefs.ErrNoCombos)
	require.ErrorIs(t, p.Select(-1), prefs.ErrNoCombos)
}

func TestSelectLayout(t *testing.T) {
	p := prefs.New(layout.Builtin(), nil, "en_us")
	require.NoError(t, p.Load([]byte(twoKeyboards)))

	require.NoError(t, p.SelectLayout("FR AZERTY"))
	combo, _ := p.Active()
	assert.Equal(t, frFr, combo)

	require.NoError(t, p.SelectLayout("ru йцукен"))
	combo, showLanguageKey := p.Active()
	assert.Equal(t, model.KeyboardCombo{Layout: "ru йцукен", Language: "ru"}, combo)
	assert.True(t, showLanguageKey)

	require.ErrorIs(t, p.SelectLayout("klingon"), layout.ErrUnknownFamily)
}

func TestSelectSize(t *testing.T) {
	p := prefs.New(layout.Builtin(), nil, "en_us")

	changed, err := p.SelectSize(prefs.SizeSmall)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, prefs.SizeSmall, p.Size())

	changed, err = p.SelectSize(prefs.SizeSmall)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestDefaultKeyboards(t *testing.T) {
	store := newStoreMock()
	p := prefs.New(layout.Builtin(), store, "en_us")

	require.NoError(t, p.CreateDefaultKeyboards())

	combos := p.Combos()
	require.Len(t, combos, layout.Builtin().Len()+1)
	assert.Equal(t, model.KeyboardCombo{Layout: "de qwertz", Language: "de"}, combos[0])
	assert.Equal(t, model.KeyboardCombo{Layout: "us qwerty", Language: prefs.NoLanguage}, combos[len(combos)-1])
	assert.Contains(t, store.get(prefs.PreferencesKey), `"ru йцукен"`)

	combo, showLanguageKey := p.Active()
	assert.Equal(t, combos[0], combo)
	assert.True(t, showLanguageKey)

	require.NoError(t, p.ClearDefaultKeyboards())
	assert.Equal(t, 0, p.ComboCount())

	combo, showLanguageKey = p.Active()
	assert.Equal(t, usEn, combo)
	assert.False(t, showLanguageKey)
	assert.JSONEq(t, `{"keyboards": [], "TapSounds": true, "spaces2period": true}`, store.get(prefs.PreferencesKey))
}

func TestMarshal(t *testing.T) {
	p := prefs.New(layout.Builtin(), nil, "en_us")
	require.NoError(t, p.SetTapSounds(false))

	data, err := p.Marshal()
	require.NoError(t, err)
	assert.JSONEq(t, `{"keyboards": [], "TapSounds": false, "spaces2period": true}`, string(data))

	other := prefs.New(layout.Builtin(), nil, "en_us")
	require.NoError(t, other.Load(data))
	assert.False(t, other.TapSounds())
}

func TestSettings(t *testing.T) {
	p := prefs.New(layout.Builtin(), nil, "de_de")

	require.NoError(t, p.LoadSettings([]byte(`{"layout": "FR AZERTY", "keyboard size": -1}`)))

	combo, _ := p.Active()
	assert.Equal(t, model.KeyboardCombo{Layout: "fr azerty", Language: "de"}, combo)
	assert.Equal(t, prefs.SizeSmall, p.Size())

	data, err := p.Settings()
	require.NoError(t, err)
	assert.JSONEq(t, `{"layout": "fr azerty", "language": "de", "keyboard size": -1}`, string(data))

	require.ErrorIs(t, p.LoadSettings([]byte(`{"keyboard size": 5}`)), prefs.ErrInvalidPreferences)
}

func TestSetLocale(t *testing.T) {
	store := newStoreMock()
	p := prefs.New(layout.Builtin(), store, "en_us")

	require.NoError(t, p.SetLocale("de_DE"))
	assert.Equal(t, "de_DE", p.Locale())

	combo, _ := p.Active()
	assert.Equal(t, model.KeyboardCombo{Layout: "de qwertz", Language: "de"}, combo)
	assert.Contains(t, store.get(prefs.SettingsKey), "de qwertz")

	require.NoError(t, p.Load([]byte(twoKeyboards)))
	require.NoError(t, p.SetLocale("fr_FR"))

	combo, _ = p.Active()
	assert.Equal(t, usEn, combo, "configured combos win over the locale")
}

func TestRestore(t *testing.T) {
	store := newStoreMock()
	require.NoError(t, store.SetPreference(prefs.PreferencesKey, twoKeyboards))
	require.NoError(t, store.SetPreference(prefs.SettingsKey, `{"layout": "fr azerty", "language": "fr", "keyboard size": 1}`))

	p := prefs.New(layout.Builtin(), store, "en_us")
	require.NoError(t, p.Restore())

	assert.Equal(t, []model.KeyboardCombo{usEn, frFr}, p.Combos())

	combo, _ := p.Active()
	assert.Equal(t, frFr, combo)
	assert.Equal(t, prefs.SizeLarge, p.Size())

	require.NoError(t, prefs.New(layout.Builtin(), nil, "en_us").Restore(), "no store")
}

func TestStoreFailures(t *testing.T) {
	store := newStoreMock()
	p := prefs.New(layout.Builtin(), store, "en_us")
	require.NoError(t, p.Load([]byte(twoKeyboards)))

	store.fail = true

	require.ErrorIs(t, p.SelectNext(), errStoreFailed)
	require.ErrorIs(t, p.Restore(), errStoreFailed)
	require.ErrorIs(t, p.SaveLayouts(), errStoreFailed)
}

func TestSaveLayouts(t *testing.T) {
	store := newStoreMock()
	p := prefs.New(layout.Builtin(), store, "en_us")

	require.NoError(t, p.SaveLayouts())
	assert.Contains(t, store.get(prefs.LayoutsKey), `"se dvorak"`)
}
