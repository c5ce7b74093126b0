package routes

import (
	"cmp"
	"log/slog"
	"net/http"
	"slices"

	"github.com/dasdy/vkeymap/db"
	"github.com/dasdy/vkeymap/keymap"
	"github.com/dasdy/vkeymap/model"
	cs "github.com/dasdy/vkeymap/web/components"
)

const maxConnections = 5

// other returns the side of pair that is not cell.
func other(pair model.TapPair, cell model.Cell) model.Cell {
	if pair.From == cell {
		return pair.To
	}

	return pair.From
}

// buildPairsRenderContext colors every cell paired with cell by the pair count
// and connects cell to its most frequent partners.
func buildPairsRenderContext(km *keymap.Keymap, pairs []model.TapPair, cell model.Cell, page cs.PageType) cs.RenderContext {
	counts := make(map[model.Cell]int)

	for _, pair := range pairs {
		counts[other(pair, cell)] += pair.Count
	}

	items, maxVal := InitItems(km, counts, &cell)

	sorted := slices.Clone(pairs)
	slices.SortStableFunc(sorted, func(a, b model.TapPair) int {
		return -cmp.Compare(a.Count, b.Count)
	})

	connections := make([]cs.Connection, 0, maxConnections)

	for _, pair := range sorted {
		if len(connections) >= maxConnections {
			break
		}

		to := other(pair, cell)
		if to.Layout != km.Family().Name() {
			continue
		}

		connections = append(connections, cs.Connection{
			From:      cell,
			To:        to,
			Count:     pair.Count,
			FromPoint: cellCenter(km, cell),
			ToPoint:   cellCenter(km, to),
		})
	}

	slog.DebugContext(logCtx, "Found connections", "page", page, "count", len(connections))

	rect := km.Rect()

	return cs.RenderContext{
		Layout:      km.Family().Name(),
		Width:       rect.X + rect.W,
		Height:      rect.Y + rect.H,
		Items:       items,
		MaxVal:      maxVal,
		Highlight:   &cell,
		Connections: connections,
		Page:        page,
	}
}

// BuildNeighborsRenderContext builds the render context for the neighbors page.
func BuildNeighborsRenderContext(km *keymap.Keymap, neighbors []model.TapPair, cell model.Cell) cs.RenderContext {
	return buildPairsRenderContext(km, neighbors, cell, cs.PageTypeNeighbors)
}

func (s *ServerHandler) pairsHandle(w http.ResponseWriter, r *http.Request, tracker db.Tracker, page cs.PageType) {
	slog.InfoContext(logCtx, "Handling pairs page request", "page", page)

	cell, err := parseCell(r, s.activeLayout())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	pairs := tracker.GatherPairs(cell)

	var renderContext cs.RenderContext

	err = s.view(cell.Layout, func(km *keymap.Keymap) {
		renderContext = buildPairsRenderContext(km, pairs, cell, page)
	})
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))

		return
	}

	renderPage(cs.HeatMap(&renderContext), w)
}

// NeighborsHandle handles requests to the neighbors page.
func (s *ServerHandler) NeighborsHandle(w http.ResponseWriter, r *http.Request) {
	s.pairsHandle(w, r, s.NeighborTracker, cs.PageTypeNeighbors)
}
