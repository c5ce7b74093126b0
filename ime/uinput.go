package ime

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/bendahl/uinput"
	"github.com/dasdy/vkeymap/keys"
)

// KeyDevice is the part of a uinput keyboard the sink drives.
type KeyDevice interface {
	KeyPress(key int) error
	KeyDown(key int) error
	KeyUp(key int) error
	Close() error
}

type keyStroke struct {
	code  int
	shift bool
}

// usStrokes types characters on a US layout, which is what the host expects
// from a generic uinput keyboard.
var usStrokes = func() map[rune]keyStroke {
	strokes := map[rune]keyStroke{}

	letters := []int{
		uinput.KeyA, uinput.KeyB, uinput.KeyC, uinput.KeyD, uinput.KeyE, uinput.KeyF, uinput.KeyG,
		uinput.KeyH, uinput.KeyI, uinput.KeyJ, uinput.KeyK, uinput.KeyL, uinput.KeyM, uinput.KeyN,
		uinput.KeyO, uinput.KeyP, uinput.KeyQ, uinput.KeyR, uinput.KeyS, uinput.KeyT, uinput.KeyU,
		uinput.KeyV, uinput.KeyW, uinput.KeyX, uinput.KeyY, uinput.KeyZ,
	}
	for i, code := range letters {
		strokes[rune('a'+i)] = keyStroke{code: code}
		strokes[rune('A'+i)] = keyStroke{code: code, shift: true}
	}

	for _, k := range []struct {
		code           int
		plain, shifted rune
	}{
		{uinput.Key1, '1', '!'}, {uinput.Key2, '2', '@'}, {uinput.Key3, '3', '#'},
		{uinput.Key4, '4', '$'}, {uinput.Key5, '5', '%'}, {uinput.Key6, '6', '^'},
		{uinput.Key7, '7', '&'}, {uinput.Key8, '8', '*'}, {uinput.Key9, '9', '('},
		{uinput.Key0, '0', ')'},
		{uinput.KeyMinus, '-', '_'}, {uinput.KeyEqual, '=', '+'},
		{uinput.KeyLeftbrace, '[', '{'}, {uinput.KeyRightbrace, ']', '}'},
		{uinput.KeySemicolon, ';', ':'}, {uinput.KeyApostrophe, '\'', '"'},
		{uinput.KeyGrave, '`', '~'}, {uinput.KeyBackslash, '\\', '|'},
		{uinput.KeyComma, ',', '<'}, {uinput.KeyDot, '.', '>'},
		{uinput.KeySlash, '/', '?'},
	} {
		strokes[k.plain] = keyStroke{code: k.code}
		strokes[k.shifted] = keyStroke{code: k.code, shift: true}
	}

	strokes[' '] = keyStroke{code: uinput.KeySpace}
	strokes['\n'] = keyStroke{code: uinput.KeyEnter}
	strokes['\t'] = keyStroke{code: uinput.KeyTab}

	return strokes
}()

var functionCodes = map[keys.Key]int{
	keys.Return:    uinput.KeyEnter,
	keys.Tab:       uinput.KeyTab,
	keys.Backspace: uinput.KeyBackspace,
	keys.Left:      uinput.KeyLeft,
	keys.Right:     uinput.KeyRight,
	keys.Up:        uinput.KeyUp,
	keys.Down:      uinput.KeyDown,
	keys.Home:      uinput.KeyHome,
	keys.End:       uinput.KeyEnd,
	keys.PageUp:    uinput.KeyPageup,
	keys.PageDown:  uinput.KeyPagedown,
}

// UinputSink injects typed keys into the host through a uinput keyboard.
type UinputSink struct {
	device KeyDevice
	delay  time.Duration
}

// NewUinputSink wraps a key device. delay is waited between strokes.
func NewUinputSink(device KeyDevice, delay time.Duration) *UinputSink {
	return &UinputSink{device: device, delay: delay}
}

// CreateUinputSink creates a virtual keyboard named vkeymap on path, usually /dev/uinput.
func CreateUinputSink(path string) (*UinputSink, error) {
	keyboard, err := uinput.CreateKeyboard(path, []byte("vkeymap"))
	if err != nil {
		return nil, fmt.Errorf("could not create virtual keyboard on %s: %w", path, err)
	}

	return NewUinputSink(keyboard, 8*time.Millisecond), nil
}

func (s *UinputSink) stroke(k keyStroke) error {
	if k.shift {
		if err := s.device.KeyDown(uinput.KeyLeftshift); err != nil {
			return fmt.Errorf("could not press shift: %w", err)
		}

		defer func() {
			if err := s.device.KeyUp(uinput.KeyLeftshift); err != nil {
				slog.ErrorContext(logCtx, "Could not release shift", "error", err)
			}
		}()
	}

	if err := s.device.KeyPress(k.code); err != nil {
		return fmt.Errorf("could not press key %d: %w", k.code, err)
	}

	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	return nil
}

// Text types every character the US layout can reach. Others are skipped and
// reported with ErrUnsupportedKey once the rest is typed.
func (s *UinputSink) Text(text string) error {
	var skipped []rune

	for _, r := range text {
		k, ok := usStrokes[r]
		if !ok {
			skipped = append(skipped, r)

			continue
		}

		if err := s.stroke(k); err != nil {
			return err
		}
	}

	if len(skipped) > 0 {
		return fmt.Errorf("%q: %w", string(skipped), ErrUnsupportedKey)
	}

	return nil
}

func (s *UinputSink) Function(key keys.Key) error {
	code, ok := functionCodes[key]
	if !ok {
		return fmt.Errorf("%s: %w", key, ErrUnsupportedKey)
	}

	return s.stroke(keyStroke{code: code})
}

func (s *UinputSink) Close() error {
	if err := s.device.Close(); err != nil {
		return fmt.Errorf("could not close virtual keyboard: %w", err)
	}

	return nil
}

