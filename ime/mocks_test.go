package ime_test

import (
	"errors"

	"github.com/dasdy/vkeymap/model"
)

var errDevice = errors.New("device gone")

type recorderMock struct {
	taps []model.Tap
}

func (r *recorderMock) Store(tap *model.Tap) error {
	r.taps = append(r.taps, *tap)

	return nil
}

type trackerMock struct {
	seen []model.Tap
}

func (t *trackerMock) HandleTapNow(tap model.Tap, _ bool) { t.seen = append(t.seen, tap) }

func (t *trackerMock) GatherPairs(model.Cell) []model.TapPair { return nil }

// deviceMock records pressed keys and the keys held around them.
type deviceMock struct {
	events []int
	downs  []int
	ups    []int
	closed bool
	fail   bool
}

func (d *deviceMock) KeyPress(key int) error {
	if d.fail {
		return errDevice
	}

	d.events = append(d.events, key)

	return nil
}

func (d *deviceMock) KeyDown(key int) error {
	d.downs = append(d.downs, key)

	return nil
}

func (d *deviceMock) KeyUp(key int) error {
	d.ups = append(d.ups, key)

	return nil
}

func (d *deviceMock) Close() error {
	d.closed = true

	return nil
}
