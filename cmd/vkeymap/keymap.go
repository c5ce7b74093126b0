package vkeymap

import (
	"fmt"
	"os"
	"strings"

	"github.com/dasdy/vkeymap/ime"
	"github.com/dasdy/vkeymap/keymap"
	"github.com/dasdy/vkeymap/l10n"
	"github.com/dasdy/vkeymap/layout"
	"github.com/dasdy/vkeymap/model"
	"github.com/dasdy/vkeymap/prefs"
	"github.com/spf13/pflag"
)

var (
	layoutName  string
	language    string
	width       int
	height      int
	stringsPath string
	layoutsDir  string
	locale      string
)

func addKeymapFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&layoutName, "layout", "l", "", "Layout family, e.g. \"fr azerty\" (default from preferences)")
	flags.StringVar(&language, "language", "", "Language shown on the language key")
	flags.IntVar(&width, "width", 1024, "Keyboard width in pixels")
	flags.IntVar(&height, "height", 320, "Keyboard height in pixels")
	flags.StringVar(&stringsPath, "strings", "", "YAML file with localized key labels (default builtin)")
	flags.StringVar(&layoutsDir, "layouts-dir", "", "Directory of custom YAML layout families")
	flags.StringVar(&locale, "locale", defaultLocale(), "UI locale, e.g. fr_fr")
}

// defaultLocale reads the locale from the environment the way POSIX tools do.
func defaultLocale() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" && v != "C" && v != "POSIX" {
			v, _, _ = strings.Cut(v, ".")

			return strings.ToLower(v)
		}
	}

	return "en_us"
}

func keyboardRect() (model.Rect, error) {
	rect := model.Rect{W: width, H: height}
	if rect.Empty() {
		return rect, fmt.Errorf("%dx%d: %w", width, height, keymap.ErrInvalidRect)
	}

	return rect, nil
}

func loadRegistry() (*layout.Registry, error) {
	registry, err := layout.LoadRegistry(layoutsDir)
	if err != nil {
		return nil, fmt.Errorf("could not load layouts: %w", err)
	}

	return registry, nil
}

func loadStrings() (*l10n.Table, error) {
	table, err := l10n.ForConfig(stringsPath, locale)
	if err != nil {
		return nil, fmt.Errorf("could not load strings: %w", err)
	}

	return table, nil
}

// newKeymap builds a standalone keymap from the keymap flags.
func newKeymap() (*keymap.Keymap, error) {
	rect, err := keyboardRect()
	if err != nil {
		return nil, err
	}

	registry, err := loadRegistry()
	if err != nil {
		return nil, err
	}

	table, err := loadStrings()
	if err != nil {
		return nil, err
	}

	km := keymap.New(keymap.WithRegistry(registry), keymap.WithLocalizer(table))

	if layoutName != "" {
		family := registry.Find(layoutName, true)
		if family == nil {
			return nil, fmt.Errorf("%q: %w", layoutName, layout.ErrUnknownFamily)
		}

		km.SetLayoutFamily(family)
	}

	lang := language
	if lang == "" {
		lang = registry.DefaultLanguage(km.Family().Name())
	}

	km.SetLanguageName(lang)
	km.SetRect(rect)

	return km, nil
}

// newKeyboard builds a virtual keyboard from the keymap flags over preferences
// restored from store, which may be nil.
func newKeyboard(store prefs.Store, sink ime.Sink, opts ...ime.Option) (*ime.VirtualKeyboard, *prefs.Preferences, error) {
	rect, err := keyboardRect()
	if err != nil {
		return nil, nil, err
	}

	registry, err := loadRegistry()
	if err != nil {
		return nil, nil, err
	}

	table, err := loadStrings()
	if err != nil {
		return nil, nil, err
	}

	p := prefs.New(registry, store, locale)
	if err := p.Restore(); err != nil {
		return nil, nil, err
	}

	if layoutName != "" {
		if err := p.SelectLayout(layoutName); err != nil {
			return nil, nil, err
		}
	}

	opts = append(opts, ime.WithRegistry(registry), ime.WithLocalizer(table))
	keyboard := ime.New(p, sink, opts...)
	keyboard.SetRect(rect)

	if language != "" {
		combo, _ := p.Active()
		combo.Language = language
		keyboard.SetKeyboardCombo(combo, true)
	}

	return keyboard, p, nil
}
