package ports_test

import (
	"testing"

	"github.com/dasdy/vkeymap/keylog/ports"
	"github.com/dasdy/vkeymap/model"
	evdev "github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keyboardRect = model.Rect{X: 0, Y: 300, W: 1024, H: 300}

func TestScaler(t *testing.T) {
	scaler := ports.Scaler{MinX: 0, MaxX: 4095, MinY: 0, MaxY: 4095, Rect: keyboardRect}

	tests := []struct {
		x, y         int32
		wantX, wantY int
	}{
		{0, 0, 0, 300},
		{4095, 4095, 1023, 599},
		{2048, 1024, 511, 374},
	}

	for _, tt := range tests {
		x, y := scaler.Scale(tt.x, tt.y)
		assert.Equal(t, tt.wantX, x)
		assert.Equal(t, tt.wantY, y)
	}

	x, y := ports.Scaler{Rect: keyboardRect}.Scale(10, 20)
	assert.Equal(t, 10, x, "unknown range keeps raw values")
	assert.Equal(t, 320, y)
}

func TestNewScaler(t *testing.T) {
	axes := map[evdev.EvCode]evdev.AbsInfo{
		evdev.ABS_X: {Minimum: 0, Maximum: 4095},
		evdev.ABS_Y: {Minimum: 0, Maximum: 4095},
	}

	scaler, err := ports.NewScaler(axes, keyboardRect)
	require.NoError(t, err)
	assert.Equal(t, ports.Scaler{MinX: 0, MaxX: 4095, MinY: 0, MaxY: 4095, Rect: keyboardRect}, scaler)

	tests := []struct {
		name string
		axes map[evdev.EvCode]evdev.AbsInfo
	}{
		{"no axes", map[evdev.EvCode]evdev.AbsInfo{}},
		{"no y", map[evdev.EvCode]evdev.AbsInfo{evdev.ABS_X: {Maximum: 4095}}},
		{"no x", map[evdev.EvCode]evdev.AbsInfo{evdev.ABS_Y: {Maximum: 4095}}},
		{"empty x range", map[evdev.EvCode]evdev.AbsInfo{evdev.ABS_X: {}, evdev.ABS_Y: {Maximum: 4095}}},
		{"inverted y range", map[evdev.EvCode]evdev.AbsInfo{evdev.ABS_X: {Maximum: 4095}, evdev.ABS_Y: {Minimum: 10, Maximum: 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ports.NewScaler(tt.axes, keyboardRect)
			require.ErrorIs(t, err, ports.ErrMissingAxis)
		})
	}
}

func TestTouchDecoder(t *testing.T) {
	decoder := ports.NewTouchDecoder(ports.Scaler{MinX: 0, MaxX: 1023, MinY: 0, MaxY: 299, Rect: keyboardRect})

	event := func(typ evdev.EvType, code evdev.EvCode, value int32) evdev.InputEvent {
		return evdev.InputEvent{Type: typ, Code: code, Value: value}
	}
	syn := event(evdev.EV_SYN, evdev.SYN_REPORT, 0)

	var got []model.TouchEvent

	for _, ev := range []evdev.InputEvent{
		syn, // nothing changed yet
		event(evdev.EV_KEY, evdev.BTN_TOUCH, 1),
		event(evdev.EV_ABS, evdev.ABS_X, 120),
		event(evdev.EV_ABS, evdev.ABS_Y, 50),
		syn,
		event(evdev.EV_ABS, evdev.ABS_MT_POSITION_X, 130),
		syn,
		event(evdev.EV_KEY, evdev.BTN_TOUCH, 0),
		syn,
		syn,
	} {
		if touch, ok := decoder.Handle(ev); ok {
			got = append(got, touch)
		}
	}

	assert.Equal(t, []model.TouchEvent{
		{X: 120, Y: 350, Pressed: true},
		{X: 130, Y: 350, Pressed: true},
		{X: 130, Y: 350, Pressed: false},
	}, got)
}

func TestIsTouchscreen(t *testing.T) {
	assert.True(t, ports.IsTouchscreen(
		[]evdev.EvCode{evdev.BTN_TOUCH},
		[]evdev.EvCode{evdev.ABS_X, evdev.ABS_Y, evdev.ABS_MT_POSITION_X},
	))
	assert.False(t, ports.IsTouchscreen([]evdev.EvCode{evdev.KEY_A}, []evdev.EvCode{evdev.ABS_X, evdev.ABS_Y}), "no touch button")
	assert.False(t, ports.IsTouchscreen([]evdev.EvCode{evdev.BTN_TOUCH}, []evdev.EvCode{evdev.ABS_X}), "single axis")
}
