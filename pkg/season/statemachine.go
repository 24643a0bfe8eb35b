// Copyright (c) 2026 Dream Labs Inc. All Rights Reserved.
// This is licensed software from Dream Labs Inc, for limitations
// and restrictions contact your company contract manager.

package season

// TransitionState classifies where a user sits in the season lifecycle.
// The state is never persisted; it is derived on every check from the
// transition ledger and the catalog, so a check can be re-run from scratch
// at any time.
type TransitionState int

const (
	// StateNoHistory: the user has no recorded last active season.
	StateNoHistory TransitionState = iota
	// StateActiveInCurrent: the user's last active season is still open.
	StateActiveInCurrent
	// StateEndedAwaitingTransition: the last active season has ended and no
	// successor season has been published yet.
	StateEndedAwaitingTransition
	// StateTransitionPending: the last active season has ended, a successor
	// exists, and the reset for this (ended, successor) pair has not been
	// applied yet.
	StateTransitionPending
	// StateTransitionApplied: the (ended, successor) pair has already been
	// processed for this user.
	StateTransitionApplied
)

func (s TransitionState) String() string {
	switch s {
	case StateNoHistory:
		return "no_history"
	case StateActiveInCurrent:
		return "active_in_current"
	case StateEndedAwaitingTransition:
		return "ended_awaiting_transition"
	case StateTransitionPending:
		return "transition_pending"
	case StateTransitionApplied:
		return "transition_applied"
	default:
		return "unknown"
	}
}

// TransitionFacts are the four observations the state is derived from.
type TransitionFacts struct {
	HasHistory          bool
	SeasonEnded         bool
	SuccessorExists     bool
	TransitionProcessed bool
}

// DeriveTransitionState maps observed facts to a lifecycle state. Pure; the
// reset engine gathers the facts and acts on the returned state.
func DeriveTransitionState(f TransitionFacts) TransitionState {
	switch {
	case !f.HasHistory:
		return StateNoHistory
	case !f.SeasonEnded:
		return StateActiveInCurrent
	case !f.SuccessorExists:
		return StateEndedAwaitingTransition
	case !f.TransitionProcessed:
		return StateTransitionPending
	default:
		return StateTransitionApplied
	}
}
