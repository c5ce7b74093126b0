// Package ime runs a keymap as a working virtual keyboard: taps become text or
// editing keys on a sink, and the keyboard's own keys drive the preferences.
package ime

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/dasdy/vkeymap/db"
	"github.com/dasdy/vkeymap/keymap"
	"github.com/dasdy/vkeymap/keys"
	"github.com/dasdy/vkeymap/layout"
	"github.com/dasdy/vkeymap/logging"
	"github.com/dasdy/vkeymap/model"
	"github.com/dasdy/vkeymap/prefs"
)

var ErrNoRecorder = errors.New("no tap recorder configured")

var logCtx = logging.PackageCtx("ime")

// Recorder stores taps while recording is on. db.SQLiteStorage implements it.
type Recorder interface {
	Store(tap *model.Tap) error
}

type Option func(*VirtualKeyboard)

func WithRegistry(r *layout.Registry) Option {
	return func(v *VirtualKeyboard) { v.registry = r }
}

func WithLocalizer(l keymap.Localizer) Option {
	return func(v *VirtualKeyboard) { v.localizer = l }
}

// WithRecorder stores taps in r while recording. Trackers see every recorded tap.
func WithRecorder(r Recorder, trackers ...db.Tracker) Option {
	return func(v *VirtualKeyboard) {
		v.recorder = r
		v.trackers = trackers
	}
}

// WithDiamond turns on row correction for touches far from the row center.
func WithDiamond(on bool) Option {
	return func(v *VirtualKeyboard) { v.diamond = on }
}

var switchLayouts = map[keys.Key]string{
	keys.SwitchToQwerty: "us qwerty",
	keys.SwitchToAzerty: "fr azerty",
	keys.SwitchToQwertz: "de qwertz",
}

var resizeSizes = map[keys.Key]int{
	keys.ResizeTiny:    prefs.SizeTiny,
	keys.ResizeSmall:   prefs.SizeSmall,
	keys.ResizeDefault: prefs.SizeDefault,
	keys.ResizeLarge:   prefs.SizeLarge,
}

// VirtualKeyboard is safe for concurrent use.
type VirtualKeyboard struct {
	lock      sync.Mutex
	keymap    *keymap.Keymap
	prefs     *prefs.Preferences
	sink      Sink
	registry  *layout.Registry
	localizer keymap.Localizer

	recorder  Recorder
	trackers  []db.Tracker
	recording atomic.Bool
	diamond   bool

	showRegions bool
	hidden      bool
	// last two runes typed, for the double space period
	lastTyped [2]rune
}

func New(p *prefs.Preferences, sink Sink, opts ...Option) *VirtualKeyboard {
	v := &VirtualKeyboard{prefs: p, sink: sink}

	for _, opt := range opts {
		opt(v)
	}

	kmOpts := []keymap.Option{keymap.WithCombos(p), keymap.WithStatus(v)}
	if v.registry != nil {
		kmOpts = append(kmOpts, keymap.WithRegistry(v.registry))
	}

	if v.localizer != nil {
		kmOpts = append(kmOpts, keymap.WithLocalizer(v.localizer))
	}

	v.keymap = keymap.New(kmOpts...)
	v.applyPreferences()

	return v
}

// IsRecording is part of keymap.Status.
func (v *VirtualKeyboard) IsRecording() bool { return v.recording.Load() }

// TapSounds is part of keymap.Status.
func (v *VirtualKeyboard) TapSounds() bool { return v.prefs.TapSounds() }

// SetRecording starts or stops storing taps.
func (v *VirtualKeyboard) SetRecording(on bool) error {
	if on && v.recorder == nil {
		return ErrNoRecorder
	}

	if v.recording.Swap(on) != on {
		slog.InfoContext(logCtx, "Tap recording", "on", on)
	}

	return nil
}

// Do runs fn with exclusive access to the keymap.
func (v *VirtualKeyboard) Do(fn func(km *keymap.Keymap)) {
	v.lock.Lock()
	defer v.lock.Unlock()

	fn(v.keymap)
}

func (v *VirtualKeyboard) SetRect(r model.Rect) {
	v.lock.Lock()
	defer v.lock.Unlock()

	v.keymap.SetRect(r)
}

// SetEditorState adapts the keyboard to the focused field.
func (v *VirtualKeyboard) SetEditorState(state model.EditorState) bool {
	v.lock.Lock()
	defer v.lock.Unlock()

	changed := v.keymap.SetEditorState(state)
	v.keymap.SetAutoCap(state.Flags&model.FieldFlagAutoCap != 0)
	v.lastTyped = [2]rune{}

	return changed
}

// SetKeyboardCombo shows the combo's layout. The language key is hidden
// unless showLanguageKey is set.
func (v *VirtualKeyboard) SetKeyboardCombo(combo model.KeyboardCombo, showLanguageKey bool) bool {
	v.lock.Lock()
	defer v.lock.Unlock()

	return v.setKeyboardCombo(combo, showLanguageKey)
}

func (v *VirtualKeyboard) setKeyboardCombo(combo model.KeyboardCombo, showLanguageKey bool) bool {
	changed := v.keymap.SetLayoutName(combo.Layout)

	language := ""
	if showLanguageKey {
		language = combo.Language
	}

	if v.keymap.SetLanguageName(language) {
		changed = true
	}

	slog.DebugContext(logCtx, "Keyboard combo", "layout", combo.Layout, "language", language)

	return changed
}

// ApplyPreferences shows the active combo of the preferences, after they
// changed behind the keyboard's back.
func (v *VirtualKeyboard) ApplyPreferences() {
	v.lock.Lock()
	defer v.lock.Unlock()

	v.applyPreferences()
}

func (v *VirtualKeyboard) applyPreferences() {
	v.keymap.KeyboardCombosChanged()
	v.setKeyboardCombo(v.prefs.Active())
}

// ShowRegions reports whether key zones should be drawn.
func (v *VirtualKeyboard) ShowRegions() bool {
	v.lock.Lock()
	defer v.lock.Unlock()

	return v.showRegions
}

func (v *VirtualKeyboard) Hidden() bool {
	v.lock.Lock()
	defer v.lock.Unlock()

	return v.hidden
}

// Show makes a hidden keyboard take taps again.
func (v *VirtualKeyboard) Show() {
	v.lock.Lock()
	defer v.lock.Unlock()

	v.hidden = false
}

// Tap handles a touch released at p and returns the key it hit.
func (v *VirtualKeyboard) Tap(p model.Point) (keys.Key, error) {
	v.lock.Lock()
	defer v.lock.Unlock()

	if v.hidden {
		return keys.None, nil
	}

	c := v.keymap.PointToKeyboard(p, v.diamond)
	key := v.keymap.Map(c)

	if key.IsNone() {
		return key, nil
	}

	v.record(p, c, key)

	return key, v.handleKey(key)
}

// Press handles key as if its cell was tapped.
func (v *VirtualKeyboard) Press(key keys.Key) error {
	v.lock.Lock()
	defer v.lock.Unlock()

	return v.handleKey(key)
}

func (v *VirtualKeyboard) record(p model.Point, c model.GridCoord, key keys.Key) {
	if !v.recording.Load() {
		return
	}

	tap := model.Tap{X: p.X, Y: p.Y, Col: c.X, Row: c.Y, Key: key.String(), Layout: v.keymap.Family().Name()}

	if err := v.recorder.Store(&tap); err != nil {
		slog.ErrorContext(logging.LayoutCtx(logCtx, tap.Layout), "Could not record tap", "error", err)

		return
	}

	for _, tracker := range v.trackers {
		tracker.HandleTapNow(tap, false)
	}
}

func (v *VirtualKeyboard) handleKey(key keys.Key) error {
	switch {
	case key.IsChar():
		return v.typeChar(key)
	case key.IsTextShortcut():
		return v.typeText(v.keymap.KeyDisplayString(key, false))
	case key.IsComboChoice():
		return v.changePreferences(v.prefs.Select(key.ComboIndex()))
	case key.IsResize():
		_, err := v.prefs.SelectSize(resizeSizes[key])

		return err
	}

	if name, ok := switchLayouts[key]; ok {
		return v.changePreferences(v.prefs.SelectLayout(name))
	}

	switch key {
	case keys.Shift:
		v.keymap.SetShiftMode((v.keymap.ShiftMode() + 1) % (model.ShiftCapsLock + 1))
	case keys.Symbol:
		if v.keymap.SymbolMode() == model.SymbolLock {
			v.keymap.SetSymbolMode(model.SymbolOff)
		} else {
			v.keymap.SetSymbolMode(model.SymbolLock)
		}
	case keys.Return, keys.Tab, keys.Backspace, keys.Left, keys.Right, keys.Up, keys.Down,
		keys.Home, keys.End, keys.PageUp, keys.PageDown:
		v.lastTyped = [2]rune{}

		if err := v.sink.Function(key); err != nil {
			return fmt.Errorf("could not send %s: %w", key, err)
		}
	case keys.ToggleLanguage:
		return v.changePreferences(v.prefs.SelectNext())
	case keys.CreateDefaultKeyboards:
		return v.changePreferences(v.prefs.CreateDefaultKeyboards())
	case keys.ClearDefaultKeyboards:
		return v.changePreferences(v.prefs.ClearDefaultKeyboards())
	case keys.StartStopRecording:
		return v.SetRecording(!v.recording.Load())
	case keys.ToggleSoundFeedback:
		return v.prefs.SetTapSounds(!v.prefs.TapSounds())
	case keys.ShowKeymapRegions:
		v.showRegions = !v.showRegions
	case keys.Hide:
		v.hidden = true
	default:
		slog.DebugContext(logCtx, "Key not handled by the keyboard", "key", key)
	}

	return nil
}

func (v *VirtualKeyboard) changePreferences(err error) error {
	if err != nil {
		return err
	}

	v.applyPreferences()

	return nil
}

func (v *VirtualKeyboard) typeChar(key keys.Key) error {
	r := key.Rune()

	if r == ' ' && v.prefs.Spaces2Period() && v.lastTyped[1] == ' ' && v.lastTyped[0] != ' ' && v.lastTyped[0] != 0 {
		if err := v.sink.Function(keys.Backspace); err != nil {
			return fmt.Errorf("could not send %s: %w", keys.Backspace, err)
		}

		if err := v.typeText(". "); err != nil {
			return err
		}

		v.lastTyped = [2]rune{}
		v.keymap.SetAutoCap(v.keymap.EditorState().Flags&model.FieldFlagAutoCap != 0)

		return nil
	}

	if err := v.typeText(v.keymap.KeyDisplayString(key, false)); err != nil {
		return err
	}

	v.lastTyped = [2]rune{v.lastTyped[1], r}

	if v.keymap.ShiftMode() == model.ShiftOnce {
		v.keymap.SetShiftMode(model.ShiftOff)
	}

	v.keymap.SetAutoCap(false)

	return nil
}

func (v *VirtualKeyboard) typeText(text string) error {
	if text == "" {
		return nil
	}

	if err := v.sink.Text(text); err != nil {
		return fmt.Errorf("could not type %q: %w", text, err)
	}

	return nil
}

// Close closes the sink.
func (v *VirtualKeyboard) Close() error {
	v.lock.Lock()
	defer v.lock.Unlock()

	return v.sink.Close()
}
