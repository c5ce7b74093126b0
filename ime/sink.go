package ime

import (
	"errors"
	"fmt"
	"io"

	"github.com/dasdy/vkeymap/keys"
)

var ErrUnsupportedKey = errors.New("key cannot be typed")

// Sink receives what the keyboard types.
type Sink interface {
	Text(s string) error
	Function(key keys.Key) error
	Close() error
}

// TextSink writes typed text to a writer. Editing keys become control
// characters, navigation keys their name in angle brackets.
type TextSink struct {
	w io.Writer
}

func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

var controlChars = map[keys.Key]string{
	keys.Return:    "\n",
	keys.Tab:       "\t",
	keys.Backspace: "\b",
}

func (s *TextSink) Text(text string) error {
	if _, err := io.WriteString(s.w, text); err != nil {
		return fmt.Errorf("could not write text: %w", err)
	}

	return nil
}

func (s *TextSink) Function(key keys.Key) error {
	text, ok := controlChars[key]
	if !ok {
		if !key.IsFunction() {
			return fmt.Errorf("%s: %w", key, ErrUnsupportedKey)
		}

		text = "<" + key.String() + ">"
	}

	return s.Text(text)
}

func (s *TextSink) Close() error { return nil }
