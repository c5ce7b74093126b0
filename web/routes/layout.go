package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dasdy/vkeymap/keymap"
	"github.com/dasdy/vkeymap/model"
	cs "github.com/dasdy/vkeymap/web/components"
)

// PointResult is the answer of the point lookup.
type PointResult struct {
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Col        int    `json:"col"`
	Row        int    `json:"row"`
	Key        string `json:"key"`
	Label      string `json:"label"`
	Candidates string `json:"candidates"`
}

// LookupPoint resolves p on km the way a tap would, without typing anything.
func LookupPoint(km *keymap.Keymap, p model.Point, diamond bool) PointResult {
	coord := km.PointToKeyboard(p, diamond)
	result := PointResult{X: p.X, Y: p.Y, Col: coord.X, Row: coord.Y}

	if coord == model.Outside {
		return result
	}

	key := km.Map(coord)
	result.Key = key.String()
	result.Label = km.KeyDisplayString(key, true)
	result.Candidates = km.PointToKeys(p)

	return result
}

func writeBody(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)

	if _, err := w.Write(body); err != nil {
		slog.ErrorContext(logCtx, "Failed to write response", "error", err)
	}
}

// LayoutJSONHandle serves the label snapshot of a layout.
func (s *ServerHandler) LayoutJSONHandle(w http.ResponseWriter, r *http.Request) {
	var (
		data   []byte
		encErr error
	)

	err := s.view(r.URL.Query().Get("layout"), func(km *keymap.Keymap) {
		data, encErr = km.LayoutJSON()
	})
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))

		return
	}

	if encErr != nil {
		http.Error(w, encErr.Error(), http.StatusInternalServerError)

		return
	}

	writeBody(w, "application/json", data)
}

// LayoutXMLHandle serves the layout file of the text prediction engine.
func (s *ServerHandler) LayoutXMLHandle(w http.ResponseWriter, r *http.Request) {
	var (
		buf    bytes.Buffer
		encErr error
	)

	err := s.view(r.URL.Query().Get("layout"), func(km *keymap.Keymap) {
		encErr = km.WriteLayoutXML(&buf)
	})
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))

		return
	}

	if encErr != nil {
		slog.ErrorContext(logCtx, "Failed to write layout", "error", encErr)
		http.Error(w, encErr.Error(), http.StatusInternalServerError)

		return
	}

	writeBody(w, "application/xml; charset=UTF-8", buf.Bytes())
}

// PointHandle resolves the x and y query parameters to a key.
func (s *ServerHandler) PointHandle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	x, err := strconv.Atoi(query.Get("x"))
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid x: %s", err), http.StatusBadRequest)

		return
	}

	y, err := strconv.Atoi(query.Get("y"))
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid y: %s", err), http.StatusBadRequest)

		return
	}

	diamond := true
	if v := query.Get("diamond"); v != "" {
		if diamond, err = strconv.ParseBool(v); err != nil {
			http.Error(w, fmt.Sprintf("invalid diamond: %s", err), http.StatusBadRequest)

			return
		}
	}

	var result PointResult

	err = s.view(query.Get("layout"), func(km *keymap.Keymap) {
		result = LookupPoint(km, model.Point{X: x, Y: y}, diamond)
	})
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))

		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	writeBody(w, "application/json", data)
}

// LayoutsHandle lists the registered layout families.
func (s *ServerHandler) LayoutsHandle(w http.ResponseWriter, _ *http.Request) {
	var (
		names  []string
		active string
	)

	s.Keyboard.Do(func(km *keymap.Keymap) {
		names = km.Registry().Names()
		active = km.Family().Name()
	})

	renderPage(cs.LayoutList(names, active), w)
}
