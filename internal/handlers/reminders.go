package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/pathakanu/myStreak/internal/model"
	"github.com/pathakanu/myStreak/internal/reminder"
)

func (h *Handler) ListReminders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := reminder.Filter{
		Query:    query.Get("q"),
		Category: query.Get("category"),
		Priority: model.Priority(query.Get("priority")),
	}
	writeJSON(w, http.StatusOK, h.store.List(filter))
}

func (h *Handler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	var draft model.Draft
	if err := decodeJSON(r, &draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid reminder payload")
		return
	}
	draft.Message = strings.TrimSpace(draft.Message)
	if draft.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}
	if draft.Frequency == "" {
		draft.Frequency = model.FrequencyDaily
	}
	if draft.Priority == "" {
		draft.Priority = model.PriorityMedium
	}
	if !draft.Frequency.Valid() {
		writeError(w, http.StatusBadRequest, "unknown frequency")
		return
	}
	if !draft.Priority.Valid() {
		writeError(w, http.StatusBadRequest, "unknown priority")
		return
	}

	created, err := h.store.Add(r.Context(), draft)
	if err != nil {
		h.logger.Printf("create reminder: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to save reminder")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) EditReminder(w http.ResponseWriter, r *http.Request) {
	var patch model.Patch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid reminder payload")
		return
	}
	if patch.Frequency != nil && !patch.Frequency.Valid() {
		writeError(w, http.StatusBadRequest, "unknown frequency")
		return
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		writeError(w, http.StatusBadRequest, "unknown priority")
		return
	}

	updated, err := h.store.Edit(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.logger.Printf("edit reminder: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to save reminder")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "reminder not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	if _, err := h.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.logger.Printf("delete reminder: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to delete reminder")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CompleteReminder(w http.ResponseWriter, r *http.Request) {
	completed, err := h.store.Complete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.logger.Printf("complete reminder: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to save reminder")
		return
	}
	if completed == nil {
		writeError(w, http.StatusNotFound, "reminder not found")
		return
	}
	writeJSON(w, http.StatusOK, completed)
}

func (h *Handler) RandomReminder(w http.ResponseWriter, r *http.Request) {
	picked := h.store.ShowRandom()
	if picked == nil {
		writeError(w, http.StatusNotFound, "no reminders yet")
		return
	}
	writeJSON(w, http.StatusOK, picked)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Stats())
}

func (h *Handler) CurrentAlert(w http.ResponseWriter, r *http.Request) {
	alert := h.store.CurrentAlert()
	if alert == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, alert)
}

func (h *Handler) DismissAlert(w http.ResponseWriter, r *http.Request) {
	h.store.DismissAlert()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CompleteAlert(w http.ResponseWriter, r *http.Request) {
	completed, err := h.store.CompleteAlert(r.Context())
	if err != nil {
		h.logger.Printf("complete alert: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to save reminder")
		return
	}
	if completed == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, completed)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Profile())
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var patch model.ProfilePatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid profile payload")
		return
	}
	if patch.CheckInterval != nil && *patch.CheckInterval < 1 {
		writeError(w, http.StatusBadRequest, "checkInterval must be at least 1 minute")
		return
	}

	profile, err := h.store.UpdateProfile(r.Context(), patch)
	if err != nil {
		h.logger.Printf("update profile: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to save profile")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
