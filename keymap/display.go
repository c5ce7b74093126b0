package keymap

import (
	"log/slog"
	"strings"
	"unicode"

	"github.com/dasdy/vkeymap/keys"
	"github.com/dasdy/vkeymap/layout"
	"github.com/dasdy/vkeymap/model"
)

// symbolLockedLabel is shown on the symbol key while symbols are locked.
const symbolLockedLabel = "A\u200aB\u200aC"

// LanguageDisplayName formats a language tag for the language key: "en" gives
// "En", "en-us" gives "En" and "none" gives the family's no-language label.
func LanguageDisplayName(language string, family *layout.Family) string {
	if strings.EqualFold(language, "none") {
		return family.Info().NoLanguageKeyLabel
	}

	var sb strings.Builder

	for i, r := range []rune(language) {
		switch {
		case i == 0:
			sb.WriteRune(unicode.ToUpper(r))
		case i == 1:
			sb.WriteRune(unicode.ToLower(r))
		case i == 2 && r == '-':
			return sb.String()
		default:
			sb.WriteRune(unicode.ToLower(r))
		}
	}

	return sb.String()
}

var staticLabels = map[keys.Key]string{
	keys.EmoticonFrown:          ":-(",
	keys.EmoticonCry:            ":'(",
	keys.EmoticonSmile:          ":-)",
	keys.EmoticonWink:           ";-)",
	keys.EmoticonYuck:           ":-P",
	keys.EmoticonGasp:           ":-O",
	keys.EmoticonHeart:          "<3",
	keys.DotCom:                 ".com",
	keys.DotCoUK:                ".co.uk",
	keys.DotOrg:                 ".org",
	keys.DotDe:                  ".de",
	keys.DotEdu:                 ".edu",
	keys.DotFr:                  ".fr",
	keys.DotGov:                 ".gov",
	keys.DotNet:                 ".net",
	keys.DotUs:                  ".us",
	keys.DotSe:                  ".se",
	keys.WWW:                    "www.",
	keys.HTTPColonSlashes:       "http://",
	keys.HTTPSColonSlashes:      "https://",
	keys.Left:                   "←",
	keys.Right:                  "→",
	keys.Up:                     "↑",
	keys.Down:                   "↓",
	keys.Home:                   "⇱",
	keys.End:                    "⇲",
	keys.PageUp:                 "⇞",
	keys.PageDown:               "⇟",
	keys.ToggleSuggestions:      "XT9",
	keys.ShowXT9Regions:         "XT9 Regs",
	keys.ShowKeymapRegions:      "Regions",
	keys.CreateDefaultKeyboards: "Prefs",
	keys.ClearDefaultKeyboards:  "Clear",
	keys.SwitchToQwerty:         "QWERTY",
	keys.SwitchToAzerty:         "AZERTY",
	keys.SwitchToQwertz:         "QWERTZ",
	keys.SymbolPicker:           "Sym",
}

var resizeLabels = map[keys.Key]string{
	keys.ResizeTiny:    "XS",
	keys.ResizeSmall:   "S",
	keys.ResizeDefault: "M",
	keys.ResizeLarge:   "L",
}

// Keys without a cap label, named only in logs.
var loggedOnlyLabels = map[keys.Key]string{
	keys.Shift:     "Shift",
	keys.AltGr:     "AltGr",
	keys.Hide:      "Hide",
	keys.Backspace: "Backspace",
}

// KeyDisplayString returns the key cap label of key. logging selects the form
// used in logs and exports, which also names keys drawn as icons.
func (k *Keymap) KeyDisplayString(key keys.Key, logging bool) string {
	if key.IsChar() {
		r := key.Rune()
		if k.IsCapOrAutoCapActive() {
			return string(unicode.ToUpper(r))
		}

		return string(unicode.ToLower(r))
	}

	if key.IsComboChoice() {
		return k.comboLabel(key.ComboIndex())
	}

	if label, ok := staticLabels[key]; ok {
		return label
	}

	if label, ok := resizeLabels[key]; ok {
		if logging {
			return "<" + label + ">"
		}

		return label
	}

	if label, ok := loggedOnlyLabels[key]; ok {
		if logging {
			return label
		}

		return ""
	}

	switch key {
	case keys.Return:
		if k.customEnter != "" {
			return k.customEnter
		}

		return k.localizedEnter
	case keys.Tab:
		switch k.TabAction() {
		case model.TabActionNext:
			return k.localizedNext
		case model.TabActionPrevious:
			return k.localizedPrevious
		default:
			return k.localizedTab
		}
	case keys.Symbol:
		if k.symbolMode == model.SymbolLock {
			return symbolLockedLabel
		}

		return k.family.Info().SymbolKeyLabel
	case keys.ToggleLanguage:
		return k.languageName
	case keys.StartStopRecording:
		if k.status.IsRecording() {
			return "Stop"
		}

		return "Rec"
	case keys.ToggleSoundFeedback:
		if k.status.TapSounds() {
			return "Mute"
		}

		return "Sound"
	default:
		return ""
	}
}

func (k *Keymap) comboLabel(index int) string {
	count := k.combos.ComboCount()
	if index < 0 || index >= count {
		slog.ErrorContext(logCtx, "Keyboard combo index out of range", "index", index, "count", count)

		return ""
	}

	combo := k.combos.Combo(index)

	return LanguageDisplayName(combo.Language, k.registry.Find(combo.Layout, false))
}
