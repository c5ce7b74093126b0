package routes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/dasdy/vkeymap/db"
	"github.com/dasdy/vkeymap/keymap"
	"github.com/dasdy/vkeymap/logging"
	"github.com/dasdy/vkeymap/model"
	cs "github.com/dasdy/vkeymap/web/components"
)

var logCtx = logging.PackageCtx("web")

var ErrUnknownLayout = errors.New("unknown layout")

// KeymapAccess serializes access to the live keymap.
type KeymapAccess interface {
	Do(fn func(km *keymap.Keymap))
}

// ServerHandler holds all dependencies needed for the web server handlers.
type ServerHandler struct {
	Storage           db.Storage
	Keyboard          KeymapAccess
	NeighborTracker   db.Tracker
	CorrectionTracker db.Tracker
}

// SafeRenderTemplate safely renders a templ component to an http.ResponseWriter.
func SafeRenderTemplate(component templ.Component, w http.ResponseWriter) error {
	// Do not write to w because it implies 200 status
	var buf bytes.Buffer

	err := component.Render(context.Background(), &buf)
	if err != nil {
		return fmt.Errorf("could not render template: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=UTF-8")

	if _, err := buf.WriteTo(w); err != nil {
		slog.ErrorContext(logCtx, "Failed to write response", "error", err)

		return fmt.Errorf("could not write to response writer: %w", err)
	}

	return nil
}

func renderPage(component templ.Component, w http.ResponseWriter) {
	if err := SafeRenderTemplate(component, w); err != nil {
		slog.ErrorContext(logCtx, "Failed to render page", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// InitItems returns an item for every visible cell of the active layout, with
// the counts of counts, and the largest count.
func InitItems(km *keymap.Keymap, counts map[model.Cell]int, highlight *model.Cell) ([]cs.Item, int) {
	name := km.Family().Name()
	items := make([]cs.Item, 0, model.GridRows*model.GridColumns)
	maxVal := 0

	for row := range model.GridRows {
		for col := range model.GridColumns {
			coord := model.GridCoord{X: col, Y: row}

			zone, kind := km.KeyZone(coord)
			if kind != keymap.ZoneVisible {
				continue
			}

			cell := model.Cell{Layout: name, Col: col, Row: row}
			count := counts[cell]
			maxVal = max(maxVal, count)

			items = append(items, cs.Item{
				Cell:      cell,
				Label:     km.KeyDisplayString(km.WKey(col, row).Key, true),
				Count:     count,
				Zone:      zone,
				Highlight: highlight != nil && *highlight == cell,
			})
		}
	}

	return items, maxVal
}

func cellCenter(km *keymap.Keymap, cell model.Cell) model.Point {
	zone, _ := km.KeyZone(model.GridCoord{X: cell.Col, Y: cell.Row})

	return zone.Center()
}

// parseCell reads the col and row query parameters. The layout defaults to the active one.
func parseCell(r *http.Request, active string) (model.Cell, error) {
	query := r.URL.Query()

	col, err := strconv.Atoi(query.Get("col"))
	if err != nil {
		return model.Cell{}, fmt.Errorf("invalid col: %w", err)
	}

	row, err := strconv.Atoi(query.Get("row"))
	if err != nil {
		return model.Cell{}, fmt.Errorf("invalid row: %w", err)
	}

	if !(model.GridCoord{X: col, Y: row}).Valid() {
		return model.Cell{}, fmt.Errorf("cell %d,%d is out of the grid", col, row)
	}

	layout := strings.ToLower(query.Get("layout"))
	if layout == "" {
		layout = active
	}

	return model.Cell{Layout: layout, Col: col, Row: row}, nil
}

func (s *ServerHandler) activeLayout() string {
	var name string

	s.Keyboard.Do(func(km *keymap.Keymap) { name = km.Family().Name() })

	return name
}

// view runs fn on the live keymap, or on a scratch keymap of the same size when
// layout names another family.
func (s *ServerHandler) view(layout string, fn func(km *keymap.Keymap)) error {
	var err error

	s.Keyboard.Do(func(km *keymap.Keymap) {
		if layout == "" || strings.EqualFold(layout, km.Family().Name()) {
			fn(km)

			return
		}

		family := km.Registry().Find(layout, true)
		if family == nil {
			err = fmt.Errorf("%w: %s", ErrUnknownLayout, layout)

			return
		}

		scratch := keymap.New(keymap.WithRegistry(km.Registry()))
		scratch.SetRect(km.Rect())
		scratch.SetLayoutFamily(family)
		fn(scratch)
	})

	return err
}
