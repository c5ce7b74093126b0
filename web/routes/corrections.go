package routes

import (
	"net/http"

	"github.com/dasdy/vkeymap/keymap"
	"github.com/dasdy/vkeymap/model"
	cs "github.com/dasdy/vkeymap/web/components"
)

// BuildCorrectionsRenderContext builds the render context for the corrections
// page: cells mistyped for cell, and cells cell was mistyped for.
func BuildCorrectionsRenderContext(km *keymap.Keymap, corrections []model.TapPair, cell model.Cell) cs.RenderContext {
	return buildPairsRenderContext(km, corrections, cell, cs.PageTypeCorrections)
}

// CorrectionsHandle handles requests to the corrections page.
func (s *ServerHandler) CorrectionsHandle(w http.ResponseWriter, r *http.Request) {
	s.pairsHandle(w, r, s.CorrectionTracker, cs.PageTypeCorrections)
}
