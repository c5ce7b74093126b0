package ports

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/dasdy/vkeymap/model"
	evdev "github.com/holoplot/go-evdev"
)

var ErrMissingAxis = errors.New("touchscreen axis missing")

// Scaler maps the absolute axis ranges of a touchscreen onto the keyboard rect.
type Scaler struct {
	MinX, MaxX int32
	MinY, MaxY int32
	Rect       model.Rect
}

// NewScaler builds a scaler from the axis ranges reported by a touchscreen.
// Both ABS_X and ABS_Y must be present with a non-empty range.
func NewScaler(infos map[evdev.EvCode]evdev.AbsInfo, rect model.Rect) (Scaler, error) {
	x, okX := infos[evdev.ABS_X]
	y, okY := infos[evdev.ABS_Y]

	switch {
	case !okX:
		return Scaler{}, fmt.Errorf("ABS_X: %w", ErrMissingAxis)
	case !okY:
		return Scaler{}, fmt.Errorf("ABS_Y: %w", ErrMissingAxis)
	case x.Maximum <= x.Minimum:
		return Scaler{}, fmt.Errorf("ABS_X range %d..%d: %w", x.Minimum, x.Maximum, ErrMissingAxis)
	case y.Maximum <= y.Minimum:
		return Scaler{}, fmt.Errorf("ABS_Y range %d..%d: %w", y.Minimum, y.Maximum, ErrMissingAxis)
	}

	return Scaler{
		MinX: x.Minimum, MaxX: x.Maximum,
		MinY: y.Minimum, MaxY: y.Maximum,
		Rect: rect,
	}, nil
}

func (s Scaler) Scale(x, y int32) (int, int) {
	scale := func(v, lo, hi int32, origin, size int) int {
		if hi <= lo {
			return origin + int(v)
		}

		return origin + int(int64(v-lo)*int64(size-1)/int64(hi-lo))
	}

	return scale(x, s.MinX, s.MaxX, s.Rect.X, s.Rect.W), scale(y, s.MinY, s.MaxY, s.Rect.Y, s.Rect.H)
}

// TouchDecoder folds evdev events into touch samples, one per SYN_REPORT that
// changed the touch.
type TouchDecoder struct {
	scaler   Scaler
	x, y     int32
	touching bool
	dirty    bool
}

func NewTouchDecoder(scaler Scaler) *TouchDecoder {
	return &TouchDecoder{scaler: scaler}
}

// Handle consumes one event and returns a sample when a report completes.
func (d *TouchDecoder) Handle(ev evdev.InputEvent) (model.TouchEvent, bool) {
	switch ev.Type {
	case evdev.EV_ABS:
		switch ev.Code {
		case evdev.ABS_X, evdev.ABS_MT_POSITION_X:
			d.x = ev.Value
			d.dirty = true
		case evdev.ABS_Y, evdev.ABS_MT_POSITION_Y:
			d.y = ev.Value
			d.dirty = true
		}
	case evdev.EV_KEY:
		if ev.Code == evdev.BTN_TOUCH {
			d.touching = ev.Value != 0
			d.dirty = true
		}
	case evdev.EV_SYN:
		if ev.Code != evdev.SYN_REPORT || !d.dirty {
			return model.TouchEvent{}, false
		}

		d.dirty = false
		x, y := d.scaler.Scale(d.x, d.y)

		return model.TouchEvent{X: x, Y: y, Pressed: d.touching}, true
	}

	return model.TouchEvent{}, false
}

// IsTouchscreen reports whether the capabilities describe a direct touch device.
func IsTouchscreen(keys, abs []evdev.EvCode) bool {
	return slices.Contains(keys, evdev.BTN_TOUCH) &&
		slices.Contains(abs, evdev.ABS_X) && slices.Contains(abs, evdev.ABS_Y)
}

// FindTouchscreens lists the input device paths that are touchscreens.
func FindTouchscreens() ([]string, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, fmt.Errorf("could not list input devices: %w", err)
	}

	result := make([]string, 0)

	for _, p := range paths {
		dev, err := evdev.Open(p.Path)
		if err != nil {
			continue
		}

		if IsTouchscreen(dev.CapableEvents(evdev.EV_KEY), dev.CapableEvents(evdev.EV_ABS)) {
			result = append(result, p.Path)
		}

		dev.Close()
	}

	return result, nil
}

// TouchDevice streams the touches of one evdev touchscreen in keyboard space.
type TouchDevice struct {
	dev     *evdev.InputDevice
	decoder *TouchDecoder
}

// OpenEvdev opens the touchscreen at path and scales it to rect.
func OpenEvdev(path string, rect model.Rect) (*TouchDevice, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	infos, err := dev.AbsInfos()
	if err != nil {
		dev.Close()

		return nil, fmt.Errorf("could not read axes of %s: %w", path, err)
	}

	scaler, err := NewScaler(infos, rect)
	if err != nil {
		dev.Close()

		return nil, fmt.Errorf("could not use %s as a touchscreen: %w", path, err)
	}

	slog.InfoContext(logCtx, "Opened touchscreen", "path", path, "scaler", scaler)

	return &TouchDevice{dev: dev, decoder: NewTouchDecoder(scaler)}, nil
}

// Channel reads the device until it fails or is closed.
func (t *TouchDevice) Channel() <-chan model.TouchEvent {
	ch := make(chan model.TouchEvent)

	go func() {
		defer close(ch)

		for {
			ev, err := t.dev.ReadOne()
			if err != nil {
				slog.InfoContext(logCtx, "Touchscreen closed", "error", err)

				return
			}

			if touch, ok := t.decoder.Handle(*ev); ok {
				ch <- touch
			}
		}
	}()

	return ch
}

func (t *TouchDevice) Close() error {
	return t.dev.Close()
}
