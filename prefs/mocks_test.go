package prefs_test

import (
	"errors"
	"sync"
)

var errStoreFailed = errors.New("store failed")

// storeMock keeps preference documents in memory.
type storeMock struct {
	lock    sync.Mutex
	entries map[string]string
	fail    bool
}

func newStoreMock() *storeMock {
	return &storeMock{entries: map[string]string{}}
}

func (s *storeMock) GetPreference(name string) (string, bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.fail {
		return "", false, errStoreFailed
	}

	v, ok := s.entries[name]

	return v, ok, nil
}

func (s *storeMock) SetPreference(name, value string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.fail {
		return errStoreFailed
	}

	s.entries[name] = value

	return nil
}

func (s *storeMock) get(name string) string {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.entries[name]
}
