package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())

	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusConfirmed.Terminal())
	assert.False(t, StatusInProgress.Terminal())
	assert.False(t, StatusPendingReview.Terminal())
}

func TestCanAccept(t *testing.T) {
	assert.NoError(t, CanAccept(StatusPending, ""))
	assert.NoError(t, CanAccept(StatusPending, ActorClient))

	// With a counter-proposal on the table, the master cannot accept: the
	// ball is in the client's court.
	assert.Error(t, CanAccept(StatusPending, ActorMaster))

	for _, s := range []Status{StatusConfirmed, StatusInProgress, StatusPendingReview, StatusCompleted, StatusCancelled} {
		assert.Error(t, CanAccept(s, ""), "accept from %s", s)
	}
}

func TestCanAcceptProposal(t *testing.T) {
	assert.NoError(t, CanAcceptProposal(StatusPending, ActorMaster))

	// Without a counter-proposal there is nothing to accept.
	assert.Error(t, CanAcceptProposal(StatusPending, ""))
	assert.Error(t, CanAcceptProposal(StatusPending, ActorClient))
	assert.Error(t, CanAcceptProposal(StatusConfirmed, ActorMaster))
}

func TestForwardPathGuards(t *testing.T) {
	tests := []struct {
		name  string
		guard func(Status) error
		valid Status
	}{
		{"reject", CanReject, StatusPending},
		{"negotiate", CanNegotiate, StatusPending},
		{"start_work", CanStartWork, StatusConfirmed},
		{"request_review", CanRequestReview, StatusInProgress},
		{"approve_work", CanApproveWork, StatusPendingReview},
	}

	all := []Status{StatusPending, StatusConfirmed, StatusInProgress, StatusPendingReview, StatusCompleted, StatusCancelled}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range all {
				err := tt.guard(s)
				if s == tt.valid {
					assert.NoError(t, err, "%s from %s", tt.name, s)
				} else {
					assert.Error(t, err, "%s from %s", tt.name, s)
				}
			}
		})
	}
}

func TestCanCancel(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusInProgress, StatusPendingReview} {
		assert.NoError(t, CanCancel(s, ActorClient), "cancel from %s", s)
		assert.NoError(t, CanCancel(s, ActorMaster), "cancel from %s", s)
	}

	assert.Error(t, CanCancel(StatusCompleted, ActorClient))
	assert.Error(t, CanCancel(StatusCancelled, ActorMaster))
}

func TestTransitionErrorMessage(t *testing.T) {
	err := CanApproveWork(StatusInProgress)

	te, ok := AsTransitionError(err)
	assert.True(t, ok)
	assert.Equal(t, StatusInProgress, te.From)
	assert.Equal(t, ActionApproveWork, te.Action)
	assert.Contains(t, te.Error(), "in_progress")
}
