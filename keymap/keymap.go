package keymap

import (
	"errors"
	"log/slog"

	"github.com/dasdy/vkeymap/keys"
	"github.com/dasdy/vkeymap/layout"
	"github.com/dasdy/vkeymap/logging"
	"github.com/dasdy/vkeymap/model"
)

var ErrInvalidRect = errors.New("keyboard rect is empty")

var logCtx = logging.PackageCtx("keymap")

// Localizer translates the fixed key cap strings "Enter", "Tab", "Next" and "Prev".
type Localizer interface {
	Localize(key string) string
}

// ComboSource lists the keyboard combinations offered on the language key.
type ComboSource interface {
	ComboCount() int
	Combo(index int) model.KeyboardCombo
}

// Status reports the toggles some key caps reflect.
type Status interface {
	IsRecording() bool
	TapSounds() bool
}

type identityLocalizer struct{}

func (identityLocalizer) Localize(key string) string { return key }

type noCombos struct{}

func (noCombos) ComboCount() int               { return 0 }
func (noCombos) Combo(int) model.KeyboardCombo { return model.KeyboardCombo{} }

type noStatus struct{}

func (noStatus) IsRecording() bool { return false }
func (noStatus) TapSounds() bool   { return false }

type Option func(*Keymap)

// WithRegistry sets where family names are resolved. Defaults to layout.Builtin().
func WithRegistry(r *layout.Registry) Option {
	return func(k *Keymap) { k.registry = r }
}

func WithLocalizer(l Localizer) Option {
	return func(k *Keymap) { k.localizer = l }
}

func WithCombos(c ComboSource) Option {
	return func(k *Keymap) { k.combos = c }
}

func WithStatus(s Status) Option {
	return func(k *Keymap) { k.status = s }
}

// Keymap is the runtime state of one keyboard surface. It is not safe for
// concurrent use.
type Keymap struct {
	registry  *layout.Registry
	localizer Localizer
	combos    ComboSource
	status    Status

	family *layout.Family
	// bottom is this keymap's effective bottom row; family templates are never
	// modified.
	bottom layout.Row

	shiftMode  model.ShiftMode
	symbolMode model.SymbolMode
	shiftDown  bool
	symbolDown bool
	autoCap    bool
	numLock    bool
	page       model.LayoutPage

	editor      model.EditorState
	customEnter string

	localizedEnter    string
	localizedTab      string
	localizedNext     string
	localizedPrevious string

	rect          model.Rect
	rowHeight     [model.GridRows]int
	hlimits       [model.GridRows][model.GridColumns]float32
	vlimits       [model.GridRows]float32
	limitsDirty   bool
	limitsVersion int

	languageName    string
	languageChoices []keys.Key

	cachedGlyphs map[*layout.Family]int
}

// New returns a keymap showing the default family of its registry.
func New(opts ...Option) *Keymap {
	k := &Keymap{
		localizer:    identityLocalizer{},
		combos:       noCombos{},
		status:       noStatus{},
		limitsDirty:  true,
		cachedGlyphs: map[*layout.Family]int{},
	}

	for _, opt := range opts {
		opt(k)
	}

	if k.registry == nil || k.registry.Len() == 0 {
		if k.registry != nil {
			slog.WarnContext(logCtx, "Layout registry is empty, using builtin layouts")
		}

		k.registry = layout.Builtin()
	}

	for i := range k.rowHeight {
		k.rowHeight[i] = 1
	}

	k.family = k.registry.Default()
	k.bottom = k.family.BottomRow(layout.BottomDefault)
	k.updateLanguageKey(&k.bottom)
	k.loadLocalizedLabels()
	k.KeyboardCombosChanged()

	return k
}

func (k *Keymap) Registry() *layout.Registry { return k.registry }

func (k *Keymap) Family() *layout.Family { return k.family }

func (k *Keymap) Rect() model.Rect { return k.rect }

func (k *Keymap) EditorState() model.EditorState { return k.editor }

func (k *Keymap) LanguageName() string { return k.languageName }

// WKey returns the effective cell at (x, y), which must be valid.
func (k *Keymap) WKey(x, y int) layout.WKey {
	if y == model.GridRows-1 {
		return k.bottom[x]
	}

	return k.family.WKey(x, y)
}

func (k *Keymap) weight(x, y int) float32 {
	return k.WKey(x, y).Weight
}

// SetRect sets the pixel rectangle of the keyboard surface.
func (k *Keymap) SetRect(r model.Rect) {
	if r != k.rect {
		k.rect = r
		k.limitsDirty = true
	}
}

// SetRowHeight sets the relative height of a row. Invalid rows are ignored.
func (k *Keymap) SetRowHeight(row, height int) {
	if row < 0 || row >= model.GridRows {
		slog.WarnContext(logCtx, "Ignoring height of invalid row", "row", row, "height", height)

		return
	}

	if k.rowHeight[row] != height {
		k.rowHeight[row] = height
		k.limitsDirty = true
	}
}

// SetLayoutFamily makes f the active family and reports whether it changed.
func (k *Keymap) SetLayoutFamily(f *layout.Family) bool {
	if f == nil || f == k.family {
		return false
	}

	k.family = f
	k.updateLanguageKey(&k.bottom)
	k.SetEditorState(k.editor)
	k.limitsDirty = true
	k.ResetCachedGlyphs()

	slog.DebugContext(logCtx, "Switched layout family", "name", f.Name())

	return true
}

// SetLayoutName activates a family by name, falling back to the default family.
func (k *Keymap) SetLayoutName(name string) bool {
	return k.SetLayoutFamily(k.registry.Find(name, false))
}

// SetLanguageName sets the language shown on the language key. An empty name
// hides the key.
func (k *Keymap) SetLanguageName(name string) bool {
	display := LanguageDisplayName(name, k.family)
	if display == k.languageName {
		return false
	}

	k.languageName = display
	if k.updateLanguageKey(&k.bottom) {
		k.limitsDirty = true
	}

	return true
}

// updateLanguageKey shows or hides the language key next to the symbol key of
// bottom and reports whether their weights changed.
func (k *Keymap) updateLanguageKey(bottom *layout.Row) bool {
	sx := k.family.Info().SymbolX
	symbol := &bottom[sx]
	language := &bottom[sx+1]

	symbolBefore := int(symbol.Weight)
	languageBefore := int(language.Weight)

	if k.languageName != "" {
		symbol.Weight = 1
		*language = layout.WKey{
			Weight:   1,
			Key:      keys.ToggleLanguage,
			Alt:      keys.ToggleLanguage,
			Extended: k.languageChoices,
		}
	} else {
		symbol.Weight = 2
		*language = layout.WKey{}
	}

	return symbolBefore != int(symbol.Weight) || languageBefore != int(language.Weight)
}

// KeyboardCombosChanged rebuilds the choices offered on the language key.
func (k *Keymap) KeyboardCombosChanged() {
	count := min(keys.MaxComboChoices, k.combos.ComboCount())

	choices := make([]keys.Key, count)
	for i := range choices {
		choices[i] = keys.ComboChoice(i)
	}

	k.languageChoices = choices

	sx := k.family.Info().SymbolX
	if k.bottom[sx+1].Key == keys.ToggleLanguage {
		k.bottom[sx+1].Extended = choices
	}
}

func (k *Keymap) loadLocalizedLabels() {
	k.localizedEnter = k.localizer.Localize("Enter")
	k.localizedTab = k.localizer.Localize("Tab")
	k.localizedNext = k.localizer.Localize("Next")
	k.localizedPrevious = k.localizer.Localize("Prev")
}

// SetEditorState adapts the bottom row and number lock to the focused field and
// reports whether anything visible changed.
func (k *Keymap) SetEditorState(state model.EditorState) bool {
	layoutChanged := false
	weightChanged := false
	numLock := false

	if state != k.editor {
		layoutChanged = true
		k.editor = state
		k.customEnter = state.EnterKeyLabel
	}

	if k.editor.Type == model.FieldPhone || k.editor.Type == model.FieldNumber {
		numLock = k.family.NeedNumLock()
	}

	next := k.family.BottomRow(layout.ContextFor(k.editor.Type))
	k.updateLanguageKey(&next)

	for x := range k.bottom {
		switch {
		case k.bottom[x].Weight != next[x].Weight:
			weightChanged = true
		case !k.bottom[x].SameKeys(next[x]):
			layoutChanged = true
		default:
			continue
		}

		k.bottom[x] = next[x]
	}

	if weightChanged {
		k.limitsDirty = true
	}

	if numLock != k.numLock {
		k.numLock = numLock
		layoutChanged = true
	}

	k.loadLocalizedLabels()

	return layoutChanged || weightChanged
}

// CachedGlyphs returns how many glyph sets were rendered for the active family.
func (k *Keymap) CachedGlyphs() int { return k.cachedGlyphs[k.family] }

func (k *Keymap) IncCachedGlyphs() { k.cachedGlyphs[k.family]++ }

// ResetCachedGlyphs keeps at most one cached glyph set for the active family.
func (k *Keymap) ResetCachedGlyphs() {
	if k.cachedGlyphs[k.family] > 1 {
		k.cachedGlyphs[k.family] = 1
	}
}
