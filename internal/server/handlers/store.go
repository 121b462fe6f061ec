package handlers

import (
	"net/http"

	"github.com/agentstation/wardrobe/internal/server/response"
	"github.com/agentstation/wardrobe/pkg/logging"
)

// HandleSave handles POST /api/v1/save. The catalog is written to the
// configured store file.
func (h *Handlers) HandleSave(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(logging.WithStore(r.Context(), h.wardrobe.StorePath()))

	if err := h.wardrobe.Save(); err != nil {
		logger.Error().Err(err).Msg("Save failed")
		response.ErrorFromType(w, err)
		return
	}

	logger.Info().Int("items", len(h.wardrobe.Items())).Msg("Catalog saved")
	response.OK(w, map[string]any{
		"path":  h.wardrobe.StorePath(),
		"items": len(h.wardrobe.Items()),
	})
}

// HandleLoad handles POST /api/v1/load. The catalog is replaced by the
// store file's contents; a missing file yields an empty catalog.
func (h *Handlers) HandleLoad(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(logging.WithStore(r.Context(), h.wardrobe.StorePath()))

	if err := h.wardrobe.Reload(); err != nil {
		logger.Error().Err(err).Msg("Load failed")
		response.ErrorFromType(w, err)
		return
	}

	logger.Info().Int("items", len(h.wardrobe.Items())).Msg("Catalog loaded")
	response.OK(w, map[string]any{
		"path":  h.wardrobe.StorePath(),
		"items": len(h.wardrobe.Items()),
	})
}
