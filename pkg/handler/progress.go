// Copyright (c) 2026 Dream Labs Inc. All Rights Reserved.
// This is licensed software from Dream Labs Inc, for limitations
// and restrictions contact your company contract manager.

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dreamlabs/season-progression/pkg/common"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// activityRequest is the body of POST /v1/users/{userID}/activity.
type activityRequest struct {
	Points int64 `json:"points"`
}

// RecordActivity applies a point delta to the user's progress in the active
// season. Skipped recordings (non-positive points, no active season) are 200s
// with an applied=false body, matching the engine's no-op-with-reason contract.
func (h *Handler) RecordActivity(w http.ResponseWriter, r *http.Request) {
	scope := common.GetScopeFromContext(r.Context(), "Handler.RecordActivity")
	defer scope.Finish()

	userID := chi.URLParam(r, "userID")
	scope.AddBaggage("userId", userID)

	var req activityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid activity body")
		return
	}

	result, err := h.engine.RecordActivity(scope.Ctx, userID, req.Points)
	if err != nil {
		scope.TraceError(err)
		logrus.Errorf("activity recording failed for user %s: %v", userID, err)
		writeError(w, http.StatusBadGateway, "progress temporarily unavailable")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// SeasonResetCheck runs the transition engine for the user and reports the
// derived state and what, if anything, was applied.
func (h *Handler) SeasonResetCheck(w http.ResponseWriter, r *http.Request) {
	scope := common.GetScopeFromContext(r.Context(), "Handler.SeasonResetCheck")
	defer scope.Finish()

	userID := chi.URLParam(r, "userID")
	scope.AddBaggage("userId", userID)

	outcome, err := h.engine.CheckAndApplySeasonReset(scope.Ctx, userID)
	if err != nil {
		scope.TraceError(err)
		logrus.Errorf("season reset check failed for user %s: %v", userID, err)
		writeError(w, http.StatusBadGateway, "progress temporarily unavailable")
		return
	}

	writeJSON(w, http.StatusOK, outcome)
}

// CurrentProgress returns the user's progress in the currently active season.
func (h *Handler) CurrentProgress(w http.ResponseWriter, r *http.Request) {
	scope := common.GetScopeFromContext(r.Context(), "Handler.CurrentProgress")
	defer scope.Finish()

	userID := chi.URLParam(r, "userID")
	scope.AddBaggage("userId", userID)

	active := h.engine.ActiveSeason(scope.Ctx)
	if active == nil {
		writeError(w, http.StatusNotFound, "no active season")
		return
	}

	h.writeProgress(w, scope, userID, active.SeasonID)
}

// SeasonProgress returns the user's progress in the given season.
func (h *Handler) SeasonProgress(w http.ResponseWriter, r *http.Request) {
	scope := common.GetScopeFromContext(r.Context(), "Handler.SeasonProgress")
	defer scope.Finish()

	userID := chi.URLParam(r, "userID")
	seasonID := chi.URLParam(r, "seasonID")
	scope.AddBaggage("userId", userID)
	scope.AddBaggage("seasonId", seasonID)

	h.writeProgress(w, scope, userID, seasonID)
}

func (h *Handler) writeProgress(w http.ResponseWriter, scope *common.Scope, userID, seasonID string) {
	progress, err := h.engine.Progress(scope.Ctx, userID, seasonID)
	if err != nil {
		scope.TraceError(err)
		writeError(w, http.StatusBadGateway, "progress temporarily unavailable")
		return
	}
	if progress == nil {
		writeError(w, http.StatusNotFound, "no progress recorded")
		return
	}
	writeJSON(w, http.StatusOK, progress)
}
