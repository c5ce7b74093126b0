package ports_test

import (
	"context"
	"testing"
	"time"

	"github.com/dasdy/vkeymap/keylog/ports"
	"github.com/dasdy/vkeymap/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitoringDeviceReader(t *testing.T) {
	first := &sourceMock{ch: make(chan model.TouchEvent)}
	opener := &openerMock{sources: map[string]*sourceMock{"/dev/input/event3": first}}
	reader := ports.NewMonitoringDeviceReader(opener, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	touches := reader.Channel(ctx)

	first.ch <- model.TouchEvent{X: 1, Y: 2, Pressed: true}
	assert.Equal(t, model.TouchEvent{X: 1, Y: 2, Pressed: true}, <-touches)
	assert.Equal(t, []string{"/dev/input/event3"}, reader.Devices())

	second := &sourceMock{ch: make(chan model.TouchEvent)}

	opener.lock.Lock()
	opener.sources["/dev/input/event7"] = second
	opener.lock.Unlock()

	second.ch <- model.TouchEvent{X: 3, Y: 4}
	assert.Equal(t, model.TouchEvent{X: 3, Y: 4}, <-touches)

	// Unplugged devices are dropped and open again once they return.
	close(first.ch)
	require.Eventually(t, func() bool { return opener.openCount() >= 3 }, time.Second, 5*time.Millisecond)

	cancel()
	require.Eventually(t, func() bool { return len(reader.Devices()) == 0 }, time.Second, 5*time.Millisecond)
}

func TestAddDeviceErrors(t *testing.T) {
	reader := ports.NewMonitoringDeviceReader(&openerMock{sources: map[string]*sourceMock{}}, time.Second)

	err := reader.AddDevice(context.Background(), "/dev/input/event9", make(chan model.TouchEvent))
	require.ErrorIs(t, err, errNoDevice)
	assert.Empty(t, reader.Devices())
}
