package handlers

import (
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"
	"github.com/pathakanu/myStreak/internal/model"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.prefs.Categories())
}

func (h *Handler) SetCategory(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Color string `json:"color"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid category payload")
		return
	}
	if !hexColor.MatchString(body.Color) {
		writeError(w, http.StatusBadRequest, "color must look like #RRGGBB")
		return
	}

	categories, err := h.prefs.SetCategory(r.Context(), chi.URLParam(r, "name"), body.Color)
	if err != nil {
		h.logger.Printf("set category: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to save categories")
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if _, err := h.prefs.RemoveCategory(r.Context(), chi.URLParam(r, "name")); err != nil {
		h.logger.Printf("remove category: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to save categories")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.prefs.Settings())
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch model.SettingsPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid settings payload")
		return
	}

	settings, err := h.prefs.UpdateSettings(r.Context(), patch)
	if err != nil {
		h.logger.Printf("update settings: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
