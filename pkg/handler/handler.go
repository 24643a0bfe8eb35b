// Copyright (c) 2026 Dream Labs Inc. All Rights Reserved.
// This is licensed software from Dream Labs Inc, for limitations
// and restrictions contact your company contract manager.

package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dreamlabs/season-progression/pkg/engine"
	"github.com/dreamlabs/season-progression/pkg/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// Pinger is the slice of the Redis client the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves the season progression HTTP API.
type Handler struct {
	engine  *engine.Service
	catalog *service.RedisCatalogStore
	pinger  Pinger
}

// New creates the HTTP handler. catalog may be nil when the service runs on a
// file catalog; the admin upsert endpoint then reports it is unavailable.
func New(eng *engine.Service, catalog *service.RedisCatalogStore, pinger Pinger) *Handler {
	return &Handler{
		engine:  eng,
		catalog: catalog,
		pinger:  pinger,
	}
}

// Routes builds the chi router for the API.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/seasons", h.ListSeasons)
		r.Get("/seasons/active", h.ActiveSeason)
		r.Put("/admin/seasons/{seasonID}", h.UpsertSeason)

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/progress", h.CurrentProgress)
			r.Get("/progress/{seasonID}", h.SeasonProgress)
			r.Post("/activity", h.RecordActivity)
			r.Post("/season-reset-check", h.SeasonResetCheck)
		})
	})

	return r
}

// Health reports liveness, including store reachability.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		if err := h.pinger.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.Errorf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
