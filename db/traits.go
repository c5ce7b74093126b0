package db

import (
	"iter"

	"github.com/dasdy/vkeymap/model"
)

type Storage interface {
	Store(tap *model.Tap) error
	GatherAll() ([]model.MinimalTap, error)
	AllIterator() (iter.Seq[model.TapWithTimestamp], error)
	Close()
}

// Tracker relates taps on one cell to the taps around them.
type Tracker interface {
	HandleTapNow(tap model.Tap, verbose bool)
	GatherPairs(cell model.Cell) []model.TapPair
}
