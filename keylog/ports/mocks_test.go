package ports_test

import (
	"errors"
	"sync"

	"github.com/dasdy/vkeymap/keylog/ports"
	"github.com/dasdy/vkeymap/model"
)

var errNoDevice = errors.New("no such device")

type sourceMock struct {
	ch     chan model.TouchEvent
	closed bool
}

func (s *sourceMock) Channel() <-chan model.TouchEvent { return s.ch }

func (s *sourceMock) Close() error {
	s.closed = true

	return nil
}

// openerMock serves the sources it holds; paths without one fail to open.
type openerMock struct {
	lock    sync.Mutex
	sources map[string]*sourceMock
	opened  []string
}

func (o *openerMock) Find() ([]string, error) {
	o.lock.Lock()
	defer o.lock.Unlock()

	paths := make([]string, 0, len(o.sources))
	for path := range o.sources {
		paths = append(paths, path)
	}

	return paths, nil
}

func (o *openerMock) Open(path string) (ports.TouchSource, error) {
	o.lock.Lock()
	defer o.lock.Unlock()

	source, ok := o.sources[path]
	if !ok {
		return nil, errNoDevice
	}

	o.opened = append(o.opened, path)

	return source, nil
}

func (o *openerMock) openCount() int {
	o.lock.Lock()
	defer o.lock.Unlock()

	return len(o.opened)
}
