// Package handlers exposes the reminder store over a JSON HTTP API.
package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/pathakanu/myStreak/internal/preferences"
	"github.com/pathakanu/myStreak/internal/reminder"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler serves the API.
type Handler struct {
	store    *reminder.Store
	prefs    *preferences.Service
	logger   *log.Logger
	gatherer prometheus.Gatherer
}

// New creates a Handler. gatherer backs /metrics; nil uses the default registry.
func New(store *reminder.Store, prefs *preferences.Service, logger *log.Logger, gatherer prometheus.Gatherer) *Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return &Handler{
		store:    store,
		prefs:    prefs,
		logger:   logger,
		gatherer: gatherer,
	}
}

// Routes builds the router.
func (h *Handler) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestLogger(&chimiddleware.DefaultLogFormatter{Logger: h.logger, NoColor: true}))
	router.Use(chimiddleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))

	router.Route("/api", func(r chi.Router) {
		r.Get("/reminders", h.ListReminders)
		r.Post("/reminders", h.CreateReminder)
		r.Post("/reminders/random", h.RandomReminder)
		r.Patch("/reminders/{id}", h.EditReminder)
		r.Delete("/reminders/{id}", h.DeleteReminder)
		r.Post("/reminders/{id}/complete", h.CompleteReminder)

		r.Get("/stats", h.Stats)

		r.Get("/alert", h.CurrentAlert)
		r.Delete("/alert", h.DismissAlert)
		r.Post("/alert/complete", h.CompleteAlert)

		r.Get("/profile", h.GetProfile)
		r.Patch("/profile", h.UpdateProfile)

		r.Get("/categories", h.ListCategories)
		r.Put("/categories/{name}", h.SetCategory)
		r.Delete("/categories/{name}", h.DeleteCategory)

		r.Get("/settings", h.GetSettings)
		r.Patch("/settings", h.UpdateSettings)
	})
	return router
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}
