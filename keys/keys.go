// Package keys defines the closed set of key codes a keymap cell can carry.
package keys

import "fmt"

// Kind tags the variant held by a Key.
type Kind uint8

const (
	KindNone Kind = iota
	KindChar
	KindFunction
	KindVirtual
	KindComboChoice
)

// MaxComboChoices bounds the number of keyboard-combination choice keys.
const MaxComboChoices = 256

// Key is a printable character, a named function key, a virtual key private to the
// keyboard, or a keyboard-combination choice. The zero value is None.
type Key struct {
	kind Kind
	code int32
}

// None is the "no key" sentinel.
var None = Key{}

// Char returns the key entering r. Letters are stored uppercase by convention.
func Char(r rune) Key {
	return Key{kind: KindChar, code: int32(r)}
}

// ComboChoice returns the key selecting keyboard combination index, or None when
// index is out of range.
func ComboChoice(index int) Key {
	if index < 0 || index >= MaxComboChoices {
		return None
	}

	return Key{kind: KindComboChoice, code: int32(index)}
}

func fn(code int32) Key      { return Key{kind: KindFunction, code: code} }
func virtual(code int32) Key { return Key{kind: KindVirtual, code: code} }

// Function keys.
var (
	Return    = fn(1)
	Tab       = fn(2)
	Backspace = fn(3)
	Shift     = fn(4)
	AltGr     = fn(5)
	Left      = fn(6)
	Right     = fn(7)
	Up        = fn(8)
	Down      = fn(9)
	Home      = fn(10)
	End       = fn(11)
	PageUp    = fn(12)
	PageDown  = fn(13)
)

// Virtual keys handled by the keyboard itself.
var (
	Symbol                 = virtual(0x100)
	SymbolPicker           = virtual(0x101)
	ToggleSuggestions      = virtual(0x200)
	ToggleLanguage         = virtual(0x201)
	SwitchToQwerty         = virtual(0x202)
	SwitchToAzerty         = virtual(0x203)
	SwitchToQwertz         = virtual(0x204)
	ShowXT9Regions         = virtual(0x209)
	CreateDefaultKeyboards = virtual(0x20D)
	ClearDefaultKeyboards  = virtual(0x20E)
	Hide                   = virtual(0x20F)
	ShowKeymapRegions      = virtual(0x210)
	StartStopRecording     = virtual(0x211)
	ResizeTiny             = virtual(0x212)
	ResizeSmall            = virtual(0x213)
	ResizeDefault          = virtual(0x214)
	ResizeLarge            = virtual(0x215)
	ToggleSoundFeedback    = virtual(0x216)
	ResizeHandle           = virtual(0x217)
)

// Text shortcut keys: their label is the text they enter.
var (
	DotCom             = virtual(0x300)
	DotOrg             = virtual(0x301)
	DotNet             = virtual(0x302)
	DotEdu             = virtual(0x303)
	DotGov             = virtual(0x304)
	DotCoUK            = virtual(0x305)
	DotDe              = virtual(0x306)
	DotFr              = virtual(0x307)
	DotUs              = virtual(0x308)
	WWW                = virtual(0x309)
	HTTPColonSlashes   = virtual(0x30A)
	HTTPSColonSlashes  = virtual(0x30B)
	EmoticonFrown      = virtual(0x30C)
	EmoticonCry        = virtual(0x30D)
	EmoticonSmile      = virtual(0x30E)
	EmoticonWink       = virtual(0x30F)
	EmoticonYuck       = virtual(0x310)
	EmoticonGasp       = virtual(0x311)
	EmoticonHeart      = virtual(0x312)
	DotSe              = virtual(0x313)
	textShortcutsFirst = DotCom.code
	textShortcutsLast  = int32(0x3FF)
)

// Space and Euro are ordinary characters with names of their own.
var (
	Space = Char(' ')
	Euro  = Char('€')
)

func (k Key) Kind() Kind { return k.kind }

func (k Key) IsNone() bool { return k.kind == KindNone }

// IsChar reports whether k enters a printable character.
func (k Key) IsChar() bool { return k.kind == KindChar }

// IsFunction reports whether k is anything but a character: a function key, a virtual
// key or a combo choice.
func (k Key) IsFunction() bool {
	return k.kind == KindFunction || k.kind == KindVirtual || k.kind == KindComboChoice
}

func (k Key) IsTextShortcut() bool {
	return k.kind == KindVirtual && k.code >= textShortcutsFirst && k.code <= textShortcutsLast
}

func (k Key) IsComboChoice() bool { return k.kind == KindComboChoice }

func (k Key) IsResize() bool {
	return k.kind == KindVirtual && k.code >= ResizeTiny.code && k.code <= ResizeLarge.code
}

func (k Key) IsEmoticon() bool {
	return k.kind == KindVirtual && k.code >= EmoticonFrown.code && k.code <= EmoticonHeart.code
}

// IsASCIILetter reports whether k is one of the uppercase letters A to Z.
func (k Key) IsASCIILetter() bool {
	return k.kind == KindChar && k.code >= 'A' && k.code <= 'Z'
}

// IsLetter reports whether k uses the symbol page rather than shift for its alternate:
// A to Z plus Ö, Ä and Å.
func (k Key) IsLetter() bool {
	return k.IsASCIILetter() || k == Char('Ö') || k == Char('Ä') || k == Char('Å')
}

func (k Key) IsDigit() bool {
	return k.kind == KindChar && k.code >= '0' && k.code <= '9'
}

// Rune returns the character of a char key, or 0.
func (k Key) Rune() rune {
	if k.kind != KindChar {
		return 0
	}

	return rune(k.code)
}

// ComboIndex returns the combination index of a combo choice key, or -1.
func (k Key) ComboIndex() int {
	if k.kind != KindComboChoice {
		return -1
	}

	return int(k.code)
}

func (k Key) String() string {
	switch k.kind {
	case KindNone:
		return "None"
	case KindChar:
		if k == Space {
			return "Space"
		}

		return string(rune(k.code))
	case KindComboChoice:
		return fmt.Sprintf("Combo%d", k.code)
	default:
		if name, ok := namesByKey[k]; ok {
			return name
		}

		return fmt.Sprintf("Key(%d:%#x)", k.kind, k.code)
	}
}
