package keymap_test

import (
	"testing"

	"github.com/dasdy/vkeymap/keymap"
	"github.com/dasdy/vkeymap/model"
)

// combosMock serves a fixed list of keyboard combos.
type combosMock []model.KeyboardCombo

func (c combosMock) ComboCount() int                 { return len(c) }
func (c combosMock) Combo(i int) model.KeyboardCombo { return c[i] }

type statusMock struct {
	recording bool
	sounds    bool
}

func (s *statusMock) IsRecording() bool { return s.recording }
func (s *statusMock) TapSounds() bool   { return s.sounds }

type localizerMock map[string]string

func (l localizerMock) Localize(key string) string {
	if v, ok := l[key]; ok {
		return v
	}

	return key
}

var testRect = model.Rect{X: 0, Y: 0, W: 1200, H: 500}

func newKeymap(t *testing.T, opts ...keymap.Option) *keymap.Keymap {
	t.Helper()

	km := keymap.New(opts...)
	km.SetRect(testRect)

	return km
}

func at(x, y int) model.GridCoord {
	return model.GridCoord{X: x, Y: y}
}
