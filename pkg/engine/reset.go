// Copyright (c) 2026 Dream Labs Inc. All Rights Reserved.
// This is licensed software from Dream Labs Inc, for limitations
// and restrictions contact your company contract manager.

package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/dreamlabs/season-progression/pkg/metrics"
	"github.com/dreamlabs/season-progression/pkg/season"

	"github.com/sirupsen/logrus"
)

// Reasons a reset check could not run at all.
const (
	CheckSkipNoUser       = "user_not_resolved"
	CheckSkipEmptyCatalog = "empty_catalog"
)

// ResetOutcome reports what a reset check observed and did.
type ResetOutcome struct {
	Checked    bool   `json:"checked"`
	SkipReason string `json:"skipReason,omitempty"`

	// State is the lifecycle state derived at check time.
	State season.TransitionState `json:"-"`
	// StateName is State rendered for API responses.
	StateName string `json:"state,omitempty"`

	// FromSeasonID and ToSeasonID are set when a transition was applied or
	// had already been applied; ToSeasonID alone is set when a user with no
	// history was attached to the currently open season.
	FromSeasonID string `json:"fromSeasonId,omitempty"`
	ToSeasonID   string `json:"toSeasonId,omitempty"`

	// ResetApplied is true when this call created the successor season's
	// progress record. NewLevel is the starting level it was created with.
	ResetApplied bool `json:"resetApplied"`
	NewLevel     int  `json:"newLevel,omitempty"`
}

func (o *ResetOutcome) finish() *ResetOutcome {
	o.StateName = o.State.String()
	if o.Checked {
		metrics.SeasonTransitionsTotal.WithLabelValues(o.StateName).Inc()
	}
	return o
}

// CheckAndApplySeasonReset detects whether the user's last-known season has
// ended with a successor available, and applies the carry-over reset exactly
// once per (ended, successor) pair. Safe to re-run from scratch at any time;
// it is typically invoked once per app launch.
//
// Read failures on the catalog and on the ended season's progress degrade to
// safe defaults. Ledger reads and every write needed to establish the new
// season's state are surfaced, so the caller can retry on the next invocation.
func (s *Service) CheckAndApplySeasonReset(ctx context.Context, userID string) (*ResetOutcome, error) {
	if userID == "" {
		logrus.Warnf("cannot run reset check, user not resolved")
		return &ResetOutcome{SkipReason: CheckSkipNoUser}, nil
	}

	logrus.Debugf("checking for season reset for user %s", userID)

	seasons, err := s.catalog.FetchAllSeasons(ctx)
	if err != nil {
		metrics.CatalogFetchFailuresTotal.Inc()
		logrus.Errorf("failed to fetch catalog for reset check, skipping: %v", err)
		return &ResetOutcome{SkipReason: CheckSkipEmptyCatalog}, nil
	}
	if len(seasons) == 0 {
		logrus.Warnf("no seasons defined, cannot perform reset check")
		return &ResetOutcome{SkipReason: CheckSkipEmptyCatalog}, nil
	}
	seasons = season.SortByStartTime(seasons)

	now := s.clock.Now()

	lastActiveID, err := s.ledger.GetLastActiveSeason(ctx, userID)
	if err != nil {
		// Treating this read failure as "no history" could shadow real
		// progress with a fresh default record, so surface it instead.
		return nil, fmt.Errorf("failed to read transition ledger for user %s: %w", userID, err)
	}
	lastActive := season.FindSeasonByID(seasons, lastActiveID)

	// Gather the facts the lifecycle state is derived from. Successor and
	// ledger lookups only matter once the earlier facts hold.
	var facts season.TransitionFacts
	var successor *season.Season

	facts.HasHistory = lastActive != nil
	if facts.HasHistory {
		facts.SeasonEnded = lastActive.HasEndedAt(now)
	}
	if facts.SeasonEnded {
		successor = season.FindSuccessor(seasons, *lastActive)
		facts.SuccessorExists = successor != nil
	}
	if facts.SuccessorExists {
		processed, err := s.ledger.IsTransitionProcessed(ctx, userID, lastActive.SeasonID, successor.SeasonID)
		if err != nil {
			return nil, fmt.Errorf("failed to check transition ledger for user %s: %w", userID, err)
		}
		facts.TransitionProcessed = processed
	}

	state := season.DeriveTransitionState(facts)
	outcome := &ResetOutcome{Checked: true, State: state}

	switch state {
	case season.StateNoHistory:
		return s.attachNewUser(ctx, userID, seasons, now, outcome)

	case season.StateActiveInCurrent:
		logrus.Debugf("last active season %s is still ongoing for user %s", lastActive.SeasonID, userID)
		// Season still open: only guarantee the progress record exists.
		if err := s.ensureProgressExists(ctx, userID, lastActive.SeasonID); err != nil {
			return outcome.finish(), err
		}
		return outcome.finish(), nil

	case season.StateEndedAwaitingTransition:
		// User stays attached to the ended season until a successor is published.
		logrus.Debugf("season %s ended for user %s but no subsequent season exists yet",
			lastActive.SeasonID, userID)
		return outcome.finish(), nil

	case season.StateTransitionApplied:
		outcome.FromSeasonID = lastActive.SeasonID
		outcome.ToSeasonID = successor.SeasonID
		logrus.Debugf("transition %s_to_%s already processed for user %s",
			lastActive.SeasonID, successor.SeasonID, userID)
		// Re-entrant call: the reset ran before but the pointer may not have
		// advanced; fix that without reapplying anything.
		if lastActiveID != successor.SeasonID {
			if err := s.ledger.SetLastActiveSeason(ctx, userID, successor.SeasonID); err != nil {
				return outcome.finish(), err
			}
		}
		return outcome.finish(), nil

	case season.StateTransitionPending:
		outcome.FromSeasonID = lastActive.SeasonID
		outcome.ToSeasonID = successor.SeasonID
		logrus.Infof("applying reset for transition %s_to_%s for user %s",
			lastActive.SeasonID, successor.SeasonID, userID)

		newLevel, err := s.applyReset(ctx, userID, lastActive.SeasonID, successor.SeasonID)
		if err != nil {
			return outcome.finish(), err
		}
		outcome.ResetApplied = true
		outcome.NewLevel = newLevel
		return outcome.finish(), nil

	default:
		return nil, fmt.Errorf("unhandled transition state %s for user %s", state, userID)
	}
}

// attachNewUser handles a user with no usable season history: if a season is
// open right now, give them a default progress record in it and point the
// ledger at it; otherwise there is nothing to do until a season opens.
func (s *Service) attachNewUser(ctx context.Context, userID string, seasons []season.Season, now time.Time, outcome *ResetOutcome) (*ResetOutcome, error) {
	current := season.FindActiveSeason(seasons, now)
	if current == nil {
		logrus.Debugf("no currently active season for new user %s", userID)
		return outcome.finish(), nil
	}

	logrus.Debugf("attaching new user %s to active season %s", userID, current.SeasonID)
	if err := s.ensureProgressExists(ctx, userID, current.SeasonID); err != nil {
		return outcome.finish(), err
	}
	if err := s.ledger.SetLastActiveSeason(ctx, userID, current.SeasonID); err != nil {
		return outcome.finish(), err
	}
	outcome.ToSeasonID = current.SeasonID
	return outcome.finish(), nil
}

// applyReset performs the carry-over rule for one (ended, successor) pair and
// returns the starting level written for the new season. The processed marker
// is written only after the new season's progress record exists, so an aborted
// run never claims a transition it did not complete.
func (s *Service) applyReset(ctx context.Context, userID, endedSeasonID, newSeasonID string) (int, error) {
	endedProgress, err := s.progress.Get(ctx, userID, endedSeasonID)
	if err != nil {
		// Missing or unreadable ended-season progress counts as level 0.
		logrus.Warnf("failed to read ended-season progress for user %s season %s, treating as none: %v",
			userID, endedSeasonID, err)
		endedProgress = nil
	}

	startingLevel := season.StartingLevelAfterReset(endedProgress)

	newProgress := season.NewProgress(userID, newSeasonID)
	newProgress.Level = startingLevel
	newProgress.LastUpdated = s.clock.Now()

	if err := s.progress.Create(ctx, newProgress); err != nil {
		return 0, fmt.Errorf("failed to create progress for user %s in new season %s: %w",
			userID, newSeasonID, err)
	}

	claimed, err := s.ledger.MarkTransitionProcessed(ctx, userID, endedSeasonID, newSeasonID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark transition processed for user %s: %w", userID, err)
	}
	if !claimed {
		// A concurrent check finished first; both wrote the same record.
		logrus.Warnf("transition %s_to_%s for user %s was marked by a concurrent check",
			endedSeasonID, newSeasonID, userID)
	}

	if err := s.ledger.SetLastActiveSeason(ctx, userID, newSeasonID); err != nil {
		return 0, fmt.Errorf("failed to advance last active season for user %s: %w", userID, err)
	}

	logrus.Infof("reset applied for user %s: season %s starts at level %d", userID, newSeasonID, startingLevel)
	return startingLevel, nil
}
