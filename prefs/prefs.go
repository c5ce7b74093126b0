// Package prefs keeps the user's keyboard combinations: which layouts and
// languages the language key cycles through, plus a few keyboard settings.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/dasdy/vkeymap/layout"
	"github.com/dasdy/vkeymap/logging"
	"github.com/dasdy/vkeymap/model"
	"golang.org/x/text/language"
)

var (
	ErrInvalidPreferences = errors.New("invalid keyboard preferences")
	ErrNoCombos           = errors.New("no keyboard combos")
)

var logCtx = logging.PackageCtx("prefs")

// Names of the entries written to a Store.
const (
	PreferencesKey = "virtualKeyboardPrefs"
	SettingsKey    = "virtualKeyboardSettings"
	LayoutsKey     = "virtualKeyboardLayouts"
)

// NoLanguage is the language of combos without text prediction.
const NoLanguage = "none"

// Keyboard sizes, matching the resize keys.
const (
	SizeTiny    = -2
	SizeSmall   = -1
	SizeDefault = 0
	SizeLarge   = 1
)

// Store persists named preference documents. db.SQLiteStorage implements it.
type Store interface {
	GetPreference(name string) (string, bool, error)
	SetPreference(name, value string) error
}

type preferencesDoc struct {
	Keyboards     []model.KeyboardCombo `json:"keyboards"`
	TapSounds     *bool                 `json:"TapSounds,omitempty"`
	Spaces2Period *bool                 `json:"spaces2period,omitempty"`
}

type settingsDoc struct {
	Layout   string `json:"layout"`
	Language string `json:"language"`
	Size     *int   `json:"keyboard size,omitempty"`
}

// Preferences is safe for concurrent use. It never calls back into the keyboard:
// callers apply Active after changing it.
type Preferences struct {
	lock     sync.RWMutex
	registry *layout.Registry
	store    Store
	locale   string

	combos        []model.KeyboardCombo
	active        model.KeyboardCombo
	size          int
	tapSounds     bool
	spaces2Period bool
}

// New returns preferences without combos, so the locale default is active.
// store may be nil.
func New(registry *layout.Registry, store Store, locale string) *Preferences {
	return &Preferences{
		registry:      registry,
		store:         store,
		locale:        locale,
		tapSounds:     true,
		spaces2Period: true,
	}
}

// DefaultCombo returns the combo used when the user configured none.
func DefaultCombo(locale string) model.KeyboardCombo {
	switch normalized := strings.ToLower(strings.ReplaceAll(locale, "-", "_")); {
	case strings.HasPrefix(normalized, "fr_fr"):
		return model.KeyboardCombo{Layout: "fr azerty", Language: "fr"}
	case strings.HasPrefix(normalized, "de_de"):
		return model.KeyboardCombo{Layout: "de qwertz", Language: "de"}
	}

	lang := locale
	if tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-")); err == nil {
		base, _ := tag.Base()
		lang = base.String()
	}

	return model.KeyboardCombo{Layout: layout.DefaultFamilyName, Language: lang}
}

func (p *Preferences) Locale() string {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.locale
}

// SetLocale changes the locale. Without combos the active combo follows the
// locale default.
func (p *Preferences) SetLocale(locale string) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.locale = locale
	if len(p.combos) > 0 {
		return nil
	}

	p.active = DefaultCombo(locale)
	slog.InfoContext(logCtx, "Reset keyboard to locale default", "layout", p.active.Layout, "language", p.active.Language)

	return p.saveSettings()
}

// Active returns the combo to show and whether the language key is needed to
// switch to others.
func (p *Preferences) Active() (model.KeyboardCombo, bool) {
	p.lock.Lock()
	defer p.lock.Unlock()

	single := len(p.combos) == 0 || (len(p.combos) == 1 && p.active == p.combos[0])
	if single && p.active.Layout == "" {
		p.active = DefaultCombo(p.locale)
	}

	return p.active, !single
}

func (p *Preferences) ComboCount() int {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return len(p.combos)
}

func (p *Preferences) Combo(index int) model.KeyboardCombo {
	p.lock.RLock()
	defer p.lock.RUnlock()

	if index < 0 || index >= len(p.combos) {
		return model.KeyboardCombo{}
	}

	return p.combos[index]
}

// Combos returns a copy of the configured combos.
func (p *Preferences) Combos() []model.KeyboardCombo {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return append([]model.KeyboardCombo(nil), p.combos...)
}

func (p *Preferences) Size() int {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.size
}

func (p *Preferences) TapSounds() bool {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.tapSounds
}

func (p *Preferences) Spaces2Period() bool {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.spaces2Period
}

// Load applies a preferences document. Combos naming unknown layouts are
// dropped. The active combo is kept if it is still listed, otherwise the next
// one is selected.
func (p *Preferences) Load(data []byte) error {
	if err := validate(preferencesValidator, data); err != nil {
		return err
	}

	var doc preferencesDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPreferences, err)
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	if doc.Keyboards != nil {
		combos := make([]model.KeyboardCombo, 0, len(doc.Keyboards))

		for _, combo := range doc.Keyboards {
			if combo.Layout == "" || combo.Language == "" {
				continue
			}

			family := p.registry.Find(combo.Layout, true)
			if family == nil {
				slog.WarnContext(logCtx, "Dropping keyboard with unknown layout", "layout", combo.Layout)

				continue
			}

			combo.Layout = family.Name()
			combos = append(combos, combo)
		}

		p.combos = combos
	}

	if doc.TapSounds != nil {
		p.tapSounds = *doc.TapSounds
	}

	if doc.Spaces2Period != nil {
		p.spaces2Period = *doc.Spaces2Period
	}

	if !slices.Contains(p.combos, p.active) {
		return p.selectNext()
	}

	return nil
}

// Marshal returns the preferences document.
func (p *Preferences) Marshal() ([]byte, error) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.marshal(p.combos)
}

func (p *Preferences) marshal(combos []model.KeyboardCombo) ([]byte, error) {
	tapSounds, spaces2Period := p.tapSounds, p.spaces2Period
	if combos == nil {
		combos = []model.KeyboardCombo{}
	}

	data, err := json.Marshal(preferencesDoc{Keyboards: combos, TapSounds: &tapSounds, Spaces2Period: &spaces2Period})
	if err != nil {
		return nil, fmt.Errorf("could not encode preferences: %w", err)
	}

	return data, nil
}

// LoadSettings applies a settings document: the active combo and keyboard size.
func (p *Preferences) LoadSettings(data []byte) error {
	if err := validate(settingsValidator, data); err != nil {
		return err
	}

	var doc settingsDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPreferences, err)
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	if doc.Layout != "" {
		combo := model.KeyboardCombo{Layout: doc.Layout, Language: doc.Language}
		if family := p.registry.Find(doc.Layout, true); family != nil {
			combo.Layout = family.Name()
		}

		if combo.Language == "" {
			combo.Language = DefaultCombo(p.locale).Language
		}

		p.active = combo
	}

	if doc.Size != nil {
		p.size = *doc.Size
	}

	return nil
}

// Settings returns the settings document.
func (p *Preferences) Settings() ([]byte, error) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.settings()
}

func (p *Preferences) settings() ([]byte, error) {
	size := p.size

	data, err := json.Marshal(settingsDoc{Layout: p.active.Layout, Language: p.active.Language, Size: &size})
	if err != nil {
		return nil, fmt.Errorf("could not encode settings: %w", err)
	}

	return data, nil
}

// SelectNext activates the combo after the active one, wrapping around.
func (p *Preferences) SelectNext() error {
	p.lock.Lock()
	defer p.lock.Unlock()

	return p.selectNext()
}

func (p *Preferences) selectNext() error {
	switch len(p.combos) {
	case 0:
		p.active = model.KeyboardCombo{}
	case 1:
		p.active = p.combos[0]
	default:
		i := 0
		for i < len(p.combos) {
			i++
			if p.combos[i-1] == p.active {
				break
			}
		}

		if i >= len(p.combos) {
			i = 0
		}

		p.active = p.combos[i]
	}

	return p.saveSettings()
}

// Select activates the combo at index.
func (p *Preferences) Select(index int) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if index < 0 || index >= len(p.combos) {
		return fmt.Errorf("could not select keyboard %d of %d: %w", index, len(p.combos), ErrNoCombos)
	}

	p.active = p.combos[index]

	return p.saveSettings()
}

// SelectLayout activates the first combo using the layout, or the layout with
// its default language.
func (p *Preferences) SelectLayout(name string) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	for _, combo := range p.combos {
		if strings.EqualFold(combo.Layout, name) {
			p.active = combo

			return p.saveSettings()
		}
	}

	family := p.registry.Find(name, true)
	if family == nil {
		return fmt.Errorf("could not select layout %q: %w", name, layout.ErrUnknownFamily)
	}

	p.active = model.KeyboardCombo{Layout: family.Name(), Language: family.Info().DefaultLanguage}

	return p.saveSettings()
}

// SelectSize sets the keyboard size and reports whether it changed.
func (p *Preferences) SelectSize(size int) (bool, error) {
	p.lock.Lock()
	defer p.lock.Unlock()

	if size == p.size {
		return false, nil
	}

	p.size = size

	return true, p.saveSettings()
}

// SetTapSounds turns key click sounds on or off.
func (p *Preferences) SetTapSounds(on bool) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.tapSounds = on

	return p.savePreferences(p.combos)
}

// CreateDefaultKeyboards lists every family with its default language, plus
// the default family without language.
func (p *Preferences) CreateDefaultKeyboards() error {
	names := p.registry.Names()
	combos := make([]model.KeyboardCombo, 0, len(names)+1)

	for _, name := range names {
		combos = append(combos, model.KeyboardCombo{Layout: name, Language: p.registry.DefaultLanguage(name)})
	}

	combos = append(combos, model.KeyboardCombo{Layout: layout.DefaultFamilyName, Language: NoLanguage})

	return p.replaceCombos(combos)
}

// ClearDefaultKeyboards removes every combo.
func (p *Preferences) ClearDefaultKeyboards() error {
	return p.replaceCombos(nil)
}

func (p *Preferences) replaceCombos(combos []model.KeyboardCombo) error {
	p.lock.Lock()
	data, err := p.marshal(combos)
	p.lock.Unlock()

	if err != nil {
		return err
	}

	if err := p.Load(data); err != nil {
		return err
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	return p.savePreferences(p.combos)
}

// SaveLayouts records the names of the available layouts in the store.
func (p *Preferences) SaveLayouts() error {
	if p.store == nil {
		return nil
	}

	data, err := json.Marshal(p.registry.Names())
	if err != nil {
		return fmt.Errorf("could not encode layout names: %w", err)
	}

	if err := p.store.SetPreference(LayoutsKey, string(data)); err != nil {
		return fmt.Errorf("could not save layout names: %w", err)
	}

	return nil
}

// Restore loads the preferences and settings saved in the store, if any.
func (p *Preferences) Restore() error {
	if p.store == nil {
		return nil
	}

	for _, entry := range []struct {
		name string
		load func([]byte) error
	}{
		{PreferencesKey, p.Load},
		{SettingsKey, p.LoadSettings},
	} {
		value, ok, err := p.store.GetPreference(entry.name)
		if err != nil {
			return fmt.Errorf("could not read %s: %w", entry.name, err)
		}

		if !ok {
			continue
		}

		if err := entry.load([]byte(value)); err != nil {
			return fmt.Errorf("could not restore %s: %w", entry.name, err)
		}
	}

	return nil
}

func (p *Preferences) saveSettings() error {
	if p.store == nil {
		return nil
	}

	data, err := p.settings()
	if err != nil {
		return err
	}

	if err := p.store.SetPreference(SettingsKey, string(data)); err != nil {
		return fmt.Errorf("could not save settings: %w", err)
	}

	return nil
}

func (p *Preferences) savePreferences(combos []model.KeyboardCombo) error {
	if p.store == nil {
		return nil
	}

	data, err := p.marshal(combos)
	if err != nil {
		return err
	}

	if err := p.store.SetPreference(PreferencesKey, string(data)); err != nil {
		return fmt.Errorf("could not save preferences: %w", err)
	}

	return nil
}
