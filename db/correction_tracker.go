package db

import (
	"iter"
	"log/slog"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dasdy/vkeymap/keys"
	"github.com/dasdy/vkeymap/model"
	"github.com/schollz/progressbar/v3"
)

// CorrectionWindow is the longest pause inside one correction.
const CorrectionWindow = 2 * time.Second

// CorrectionTracker counts mistaps: a character, a single Backspace, then a
// character on an adjacent cell. Each pair goes from the cell tapped by
// mistake to the cell meant.
type CorrectionTracker struct {
	counts    map[model.Cell]map[model.Cell]int
	lastChar  *model.Cell
	erased    bool
	lastTime  time.Time
	stateLock sync.RWMutex
	ready     chan struct{}
}

func newCorrectionTracker() *CorrectionTracker {
	return &CorrectionTracker{
		counts: make(map[model.Cell]map[model.Cell]int),
		ready:  make(chan struct{}),
	}
}

// NewCorrectionTrackerFromDB returns a tracker that replays the recorded taps in the background.
func NewCorrectionTrackerFromDB(storage Storage) (*CorrectionTracker, error) {
	iterator, err := storage.AllIterator()
	if err != nil {
		return nil, err
	}

	tracker := newCorrectionTracker()

	go tracker.initCorrections(iterator)

	return tracker, nil
}

// Wait blocks until the recorded history has been replayed.
func (c *CorrectionTracker) Wait() { <-c.ready }

func (c *CorrectionTracker) HandleTapNow(tap model.Tap, verbose bool) {
	c.handleTap(tap, time.Now(), verbose)
}

// GatherPairs returns the corrections that cell took part in, either side.
func (c *CorrectionTracker) GatherPairs(cell model.Cell) []model.TapPair {
	c.stateLock.RLock()
	defer c.stateLock.RUnlock()

	result := make([]model.TapPair, 0)

	for from, targets := range c.counts {
		for to, count := range targets {
			if from == cell || to == cell {
				result = append(result, model.TapPair{From: from, To: to, Count: count})
			}
		}
	}

	return result
}

func isCharacter(key string) bool {
	return utf8.RuneCountInString(key) == 1
}

func (c *CorrectionTracker) handleTap(tap model.Tap, timeWhen time.Time, verbose bool) {
	c.stateLock.Lock()
	defer c.stateLock.Unlock()

	if !c.lastTime.IsZero() && timeWhen.Sub(c.lastTime) > CorrectionWindow {
		if verbose && c.lastChar != nil {
			slog.InfoContext(logCtx, "dropping stale correction",
				"cell", *c.lastChar,
				"staleness", timeWhen.Sub(c.lastTime))
		}

		c.lastChar, c.erased = nil, false
	}

	c.lastTime = timeWhen

	switch {
	case tap.Key == keys.Backspace.String():
		if c.lastChar == nil || c.erased {
			// More than one character erased is an edit, not a mistap.
			c.lastChar, c.erased = nil, false

			return
		}

		c.erased = true
	case isCharacter(tap.Key) && tap.Col >= 0:
		cell := tap.Cell()

		if c.erased && c.lastChar.Adjacent(cell) {
			c.count(*c.lastChar, cell, verbose)
		}

		c.lastChar, c.erased = &cell, false
	default:
		c.lastChar, c.erased = nil, false
	}
}

func (c *CorrectionTracker) count(from, to model.Cell, verbose bool) {
	if _, exists := c.counts[from]; !exists {
		c.counts[from] = make(map[model.Cell]int)
	}

	c.counts[from][to]++

	if verbose {
		slog.InfoContext(logCtx, "mistap corrected",
			"from", from,
			"to", to,
			"count", c.counts[from][to])
	}
}

func (c *CorrectionTracker) initCorrections(items iter.Seq[model.TapWithTimestamp]) {
	defer close(c.ready)

	bar := progressbar.Default(-1, "Scanning history...")

	for item := range items {
		if err := bar.Add(1); err != nil {
			slog.ErrorContext(logCtx, "could not update progress bar", "error", err)
		}

		c.handleTap(item.Tap, item.Timestamp, false)
	}

	if err := bar.Finish(); err != nil {
		slog.ErrorContext(logCtx, "could not finish progress bar", "error", err)
	}
}
