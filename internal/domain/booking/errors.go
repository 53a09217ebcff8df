package booking

import (
	"errors"
	"fmt"
)

const (
	ActionAccept         = "accept"
	ActionReject         = "reject"
	ActionNegotiate      = "negotiate"
	ActionAcceptProposal = "accept_proposal"
	ActionStartWork      = "start_work"
	ActionRequestReview  = "request_review"
	ActionApproveWork    = "approve_work"
	ActionCancel         = "cancel"
)

// TransitionError identifies the rejected transition: current state, requested
// action and the actor role that attempted it. The caller must not retry.
type TransitionError struct {
	From   Status
	Action string
	Actor  Actor
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition: %s cannot %s from status %q", e.Actor, e.Action, e.From)
}

func AsTransitionError(err error) (*TransitionError, bool) {
	var te *TransitionError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}
