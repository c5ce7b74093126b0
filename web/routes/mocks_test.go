package routes_test

import (
	"iter"
	"sync"
	"testing"

	"github.com/dasdy/vkeymap/keymap"
	"github.com/dasdy/vkeymap/model"
	"github.com/dasdy/vkeymap/web/components"
	"github.com/dasdy/vkeymap/web/routes"
)

const testLayout = "us qwerty"

var testRect = model.Rect{X: 0, Y: 0, W: 1200, H: 500}

// SimpleStorageMock is a simple manual mock implementation of the Storage interface
type SimpleStorageMock struct {
	ReturnStats []model.MinimalTap
	ReturnError error
	CallCount   int
}

func (m *SimpleStorageMock) GatherAll() ([]model.MinimalTap, error) {
	m.CallCount++

	return m.ReturnStats, m.ReturnError
}

func (m *SimpleStorageMock) AllIterator() (iter.Seq[model.TapWithTimestamp], error) {
	return func(func(model.TapWithTimestamp) bool) {}, nil
}

func (m *SimpleStorageMock) Close() {}

func (m *SimpleStorageMock) Store(*model.Tap) error { return nil }

// TrackerMock is a simple mock implementation of the Tracker interface
type TrackerMock struct {
	ReturnPairs []model.TapPair
	CallCount   int
	LastCell    model.Cell
}

func (m *TrackerMock) HandleTapNow(model.Tap, bool) {}

func (m *TrackerMock) GatherPairs(cell model.Cell) []model.TapPair {
	m.CallCount++
	m.LastCell = cell

	return m.ReturnPairs
}

// keyboardMock guards a keymap the way the virtual keyboard does.
type keyboardMock struct {
	lock  sync.Mutex
	km    *keymap.Keymap
	calls int
}

func (k *keyboardMock) Do(fn func(km *keymap.Keymap)) {
	k.lock.Lock()
	defer k.lock.Unlock()

	k.calls++
	fn(k.km)
}

func newTestKeymap(t *testing.T) *keymap.Keymap {
	t.Helper()

	km := keymap.New()
	km.SetRect(testRect)

	return km
}

func cell(col, row int) model.Cell {
	return model.Cell{Layout: testLayout, Col: col, Row: row}
}

type MockServerHandler struct {
	routes.ServerHandler
	MockStorage           *SimpleStorageMock
	MockNeighborTracker   *TrackerMock
	MockCorrectionTracker *TrackerMock
	MockKeyboard          *keyboardMock
}

func setupMockServerHandler(t *testing.T) MockServerHandler {
	t.Helper()

	storage := &SimpleStorageMock{}
	neighbors := &TrackerMock{}
	corrections := &TrackerMock{}
	keyboard := &keyboardMock{km: newTestKeymap(t)}

	return MockServerHandler{
		ServerHandler: routes.ServerHandler{
			Storage:           storage,
			Keyboard:          keyboard,
			NeighborTracker:   neighbors,
			CorrectionTracker: corrections,
		},
		MockStorage:           storage,
		MockNeighborTracker:   neighbors,
		MockCorrectionTracker: corrections,
		MockKeyboard:          keyboard,
	}
}

func itemFor(items []components.Item, c model.Cell) (components.Item, bool) {
	for _, item := range items {
		if item.Cell == c {
			return item, true
		}
	}

	return components.Item{}, false
}
