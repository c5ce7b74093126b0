// Package keylog turns raw touches into taps on the virtual keyboard.
package keylog

import (
	"context"
	"log/slog"

	"github.com/dasdy/vkeymap/keylog/parser"
	"github.com/dasdy/vkeymap/keys"
	"github.com/dasdy/vkeymap/logging"
	"github.com/dasdy/vkeymap/model"
)

var logCtx = logging.PackageCtx("keylog")

// Keyboard receives completed taps.
type Keyboard interface {
	Tap(p model.Point) (keys.Key, error)
}

// ParseLines turns digitizer debug lines into touches. Lines without a sample
// are skipped. The channel closes with lines.
func ParseLines(lines <-chan string) <-chan model.TouchEvent {
	out := make(chan model.TouchEvent)

	go func() {
		defer close(out)

		for line := range lines {
			parsed, err := parser.ParseLine(line)
			if err != nil {
				slog.WarnContext(logCtx, "Could not parse line", "line", line, "error", err)

				continue
			}

			if parsed != nil {
				out <- *parsed
			}
		}
	}()

	return out
}

// TouchLoop taps the keyboard where each touch is released, until touches is
// closed or ctx is done. A release without a press is ignored.
func TouchLoop(ctx context.Context, touches <-chan model.TouchEvent, keyboard Keyboard, verbose bool) error {
	pressed := false

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case touch, ok := <-touches:
			if !ok {
				slog.InfoContext(logCtx, "Touch input closed")

				return nil
			}

			if touch.Pressed {
				pressed = true

				continue
			}

			if !pressed {
				continue
			}

			pressed = false

			key, err := keyboard.Tap(model.Point{X: touch.X, Y: touch.Y})
			if err != nil {
				slog.ErrorContext(logCtx, "Could not handle tap", "x", touch.X, "y", touch.Y, "error", err)

				continue
			}

			if verbose {
				slog.InfoContext(logCtx, "Tap!", "x", touch.X, "y", touch.Y, "key", key)
			}
		}
	}
}
