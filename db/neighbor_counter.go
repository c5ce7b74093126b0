package db

import (
	"iter"
	"log/slog"
	"sync"

	"github.com/dasdy/vkeymap/model"
)

// NeighborCounter counts which cell is tapped right after each cell.
type NeighborCounter struct {
	lastCell  *model.Cell
	counts    map[model.Cell]map[model.Cell]int
	stateLock sync.RWMutex
	ready     chan struct{}
}

func newNeighborCounter() *NeighborCounter {
	return &NeighborCounter{
		counts: make(map[model.Cell]map[model.Cell]int),
		ready:  make(chan struct{}),
	}
}

// NewNeighborCounterFromDB returns a counter that replays the recorded taps in the background.
func NewNeighborCounterFromDB(storage Storage) (*NeighborCounter, error) {
	iterator, err := storage.AllIterator()
	if err != nil {
		return nil, err
	}

	tracker := newNeighborCounter()

	go tracker.initCounter(iterator)

	return tracker, nil
}

// Wait blocks until the recorded history has been replayed.
func (nc *NeighborCounter) Wait() { <-nc.ready }

func (nc *NeighborCounter) HandleTapNow(tap model.Tap, verbose bool) {
	nc.stateLock.Lock()
	defer nc.stateLock.Unlock()

	nc.handleTap(tap, verbose)
}

// GatherPairs returns the cells tapped right after cell, with their counts.
func (nc *NeighborCounter) GatherPairs(cell model.Cell) []model.TapPair {
	nc.stateLock.RLock()
	defer nc.stateLock.RUnlock()

	counts := nc.counts[cell]
	result := make([]model.TapPair, 0, len(counts))

	for next, count := range counts {
		result = append(result, model.TapPair{From: cell, To: next, Count: count})
	}

	return result
}

func (nc *NeighborCounter) initCounter(items iter.Seq[model.TapWithTimestamp]) {
	nc.stateLock.Lock()
	defer nc.stateLock.Unlock()
	defer close(nc.ready)

	for item := range items {
		nc.handleTap(item.Tap, false)
	}
}

func (nc *NeighborCounter) handleTap(tap model.Tap, verbose bool) {
	if tap.Col < 0 || tap.Row < 0 {
		return
	}

	cell := tap.Cell()

	// Sequences do not cross a layout switch.
	if nc.lastCell != nil && nc.lastCell.Layout == cell.Layout {
		if _, exists := nc.counts[*nc.lastCell]; !exists {
			nc.counts[*nc.lastCell] = make(map[model.Cell]int)
		}

		if verbose {
			slog.InfoContext(logCtx, "tap sequence",
				"current", cell,
				"previous", *nc.lastCell)
		}

		nc.counts[*nc.lastCell][cell]++
	}

	nc.lastCell = &cell
}
