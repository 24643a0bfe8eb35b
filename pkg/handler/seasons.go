// Copyright (c) 2026 Dream Labs Inc. All Rights Reserved.
// This is licensed software from Dream Labs Inc, for limitations
// and restrictions contact your company contract manager.

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dreamlabs/season-progression/pkg/common"
	"github.com/dreamlabs/season-progression/pkg/season"

	"github.com/go-chi/chi/v5"
)

// ListSeasons returns the full season catalog.
func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	scope := common.GetScopeFromContext(r.Context(), "Handler.ListSeasons")
	defer scope.Finish()

	seasons := h.engine.Catalog()
	all, err := seasons.FetchAllSeasons(scope.Ctx)
	if err != nil {
		scope.TraceError(err)
		writeError(w, http.StatusBadGateway, "season catalog unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"seasons": all})
}

// ActiveSeason returns the currently open season, or 404 when none is.
func (h *Handler) ActiveSeason(w http.ResponseWriter, r *http.Request) {
	scope := common.GetScopeFromContext(r.Context(), "Handler.ActiveSeason")
	defer scope.Finish()

	active := h.engine.ActiveSeason(scope.Ctx)
	if active == nil {
		writeError(w, http.StatusNotFound, "no active season")
		return
	}
	writeJSON(w, http.StatusOK, active)
}

// UpsertSeason creates or replaces a catalog entry. This is an operator
// surface; season administration is otherwise external to the engine.
func (h *Handler) UpsertSeason(w http.ResponseWriter, r *http.Request) {
	scope := common.GetScopeFromContext(r.Context(), "Handler.UpsertSeason")
	defer scope.Finish()

	if h.catalog == nil {
		writeError(w, http.StatusNotImplemented, "catalog is file-backed, admin upsert unavailable")
		return
	}

	var s season.Season
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		writeError(w, http.StatusBadRequest, "invalid season body")
		return
	}
	s.SeasonID = chi.URLParam(r, "seasonID")
	scope.AddBaggage("seasonId", s.SeasonID)

	if err := h.catalog.UpsertSeason(scope.Ctx, s); err != nil {
		scope.TraceError(err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// The resolver may be caching a stale catalog view.
	h.engine.Resolver().Invalidate()

	writeJSON(w, http.StatusOK, s)
}
