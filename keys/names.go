package keys

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

var ErrUnknownKey = errors.New("unknown key name")

var keysByName = map[string]Key{
	"None":                   None,
	"Space":                  Space,
	"Return":                 Return,
	"Tab":                    Tab,
	"Backspace":              Backspace,
	"Shift":                  Shift,
	"AltGr":                  AltGr,
	"Left":                   Left,
	"Right":                  Right,
	"Up":                     Up,
	"Down":                   Down,
	"Home":                   Home,
	"End":                    End,
	"PageUp":                 PageUp,
	"PageDown":               PageDown,
	"Symbol":                 Symbol,
	"SymbolPicker":           SymbolPicker,
	"ToggleSuggestions":      ToggleSuggestions,
	"ToggleLanguage":         ToggleLanguage,
	"SwitchToQwerty":         SwitchToQwerty,
	"SwitchToAzerty":         SwitchToAzerty,
	"SwitchToQwertz":         SwitchToQwertz,
	"ShowXT9Regions":         ShowXT9Regions,
	"CreateDefaultKeyboards": CreateDefaultKeyboards,
	"ClearDefaultKeyboards":  ClearDefaultKeyboards,
	"Hide":                   Hide,
	"ShowKeymapRegions":      ShowKeymapRegions,
	"StartStopRecording":     StartStopRecording,
	"ResizeTiny":             ResizeTiny,
	"ResizeSmall":            ResizeSmall,
	"ResizeDefault":          ResizeDefault,
	"ResizeLarge":            ResizeLarge,
	"ToggleSoundFeedback":    ToggleSoundFeedback,
	"ResizeHandle":           ResizeHandle,
	"DotCom":                 DotCom,
	"DotOrg":                 DotOrg,
	"DotNet":                 DotNet,
	"DotEdu":                 DotEdu,
	"DotGov":                 DotGov,
	"DotCoUK":                DotCoUK,
	"DotDe":                  DotDe,
	"DotFr":                  DotFr,
	"DotUs":                  DotUs,
	"DotSe":                  DotSe,
	"WWW":                    WWW,
	"HTTP":                   HTTPColonSlashes,
	"HTTPS":                  HTTPSColonSlashes,
	"EmoticonFrown":          EmoticonFrown,
	"EmoticonCry":            EmoticonCry,
	"EmoticonSmile":          EmoticonSmile,
	"EmoticonWink":           EmoticonWink,
	"EmoticonYuck":           EmoticonYuck,
	"EmoticonGasp":           EmoticonGasp,
	"EmoticonHeart":          EmoticonHeart,
}

var namesByKey = func() map[Key]string {
	m := make(map[Key]string, len(keysByName))
	for name, k := range keysByName {
		if k.kind == KindFunction || k.kind == KindVirtual {
			m[k] = name
		}
	}

	return m
}()

// Parse resolves a key name. Accepted forms are a single character ("q", "€"),
// a named key ("Return", "DotCom"), a code point ("U+00E6") and a combo choice
// ("Combo3"). Single lowercase letters are stored uppercase.
func Parse(name string) (Key, error) {
	if name == "" {
		return None, nil
	}

	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)

		return Char(upperLetter(r)), nil
	}

	if k, ok := keysByName[name]; ok {
		return k, nil
	}

	if hex, ok := strings.CutPrefix(name, "U+"); ok {
		code, err := strconv.ParseUint(hex, 16, 32)
		if err != nil || !utf8.ValidRune(rune(code)) {
			return None, fmt.Errorf("could not parse code point %q: %w", name, ErrUnknownKey)
		}

		return Char(rune(code)), nil
	}

	if idx, ok := strings.CutPrefix(name, "Combo"); ok {
		i, err := strconv.Atoi(idx)
		if err != nil || i < 0 || i >= MaxComboChoices {
			return None, fmt.Errorf("could not parse combo choice %q: %w", name, ErrUnknownKey)
		}

		return ComboChoice(i), nil
	}

	return None, fmt.Errorf("%q: %w", name, ErrUnknownKey)
}

// MustParse is Parse for static tables.
func MustParse(name string) Key {
	k, err := Parse(name)
	if err != nil {
		panic(err)
	}

	return k
}

func upperLetter(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}

	return r
}

func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}
