package routes

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dasdy/vkeymap/keymap"
	"github.com/dasdy/vkeymap/model"
	cs "github.com/dasdy/vkeymap/web/components"
)

// BuildStatsRenderContext builds the render context for the stats page. Taps of
// other layouts are ignored.
func BuildStatsRenderContext(km *keymap.Keymap, dbStats []model.MinimalTap) cs.RenderContext {
	name := km.Family().Name()
	counts := make(map[model.Cell]int)

	for _, tap := range dbStats {
		if tap.Layout != name {
			continue
		}

		counts[model.Cell{Layout: tap.Layout, Col: tap.Col, Row: tap.Row}] += tap.Count
	}

	items, maxVal := InitItems(km, counts, nil)
	rect := km.Rect()

	return cs.RenderContext{
		Layout: name,
		Width:  rect.X + rect.W,
		Height: rect.Y + rect.H,
		Items:  items,
		MaxVal: maxVal,
		Page:   cs.PageTypeStats,
	}
}

// StatsHandle handles requests to the stats page.
func (s *ServerHandler) StatsHandle(w http.ResponseWriter, r *http.Request) {
	slog.InfoContext(logCtx, "Handling stats page request")

	curStats, err := s.Storage.GatherAll()
	if err != nil {
		slog.ErrorContext(logCtx, "Failed to get stats", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	slog.DebugContext(logCtx, "Gathered current stats", "cells", len(curStats))

	var renderContext cs.RenderContext

	err = s.view(r.URL.Query().Get("layout"), func(km *keymap.Keymap) {
		renderContext = BuildStatsRenderContext(km, curStats)
	})
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))

		return
	}

	renderPage(cs.HeatMap(&renderContext), w)
}

func statusFor(err error) int {
	if errors.Is(err, ErrUnknownLayout) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}
