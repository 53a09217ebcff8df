package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManosLatam/marketplace-api/internal/models"
)

func newPendingBooking(price int64) *models.Booking {
	return &models.Booking{
		ID:         1,
		ClientID:   10,
		MasterID:   20,
		Status:     string(InitialStatus()),
		TotalPrice: price,
	}
}

func TestNegotiationRoundTrip(t *testing.T) {
	now := time.Now()
	b := newPendingBooking(300000) // $3000.00

	// Master counters at $2500.00.
	require.NoError(t, Negotiate(b, 250000, "sin materiales", now))
	assert.Equal(t, int64(250000), b.TotalPrice)
	assert.Equal(t, 1, b.NegotiationRound)
	assert.Equal(t, string(ActorMaster), b.LastProposedBy)
	assert.Equal(t, string(StatusPending), b.Status)
	assert.Contains(t, b.Notes, "[propuesta 1] sin materiales")

	// The master cannot accept their own counter-proposal.
	assert.Error(t, Accept(b))

	// Client agrees.
	require.NoError(t, AcceptProposal(b, now))
	assert.Equal(t, string(StatusConfirmed), b.Status)
	assert.Equal(t, string(ActorClient), b.LastProposedBy)
	require.NotNil(t, b.ClientConfirmedAt)
	assert.Equal(t, now, *b.ClientConfirmedAt)
	assert.Equal(t, int64(250000), b.TotalPrice)
}

func TestNegotiateInvalidPrice(t *testing.T) {
	b := newPendingBooking(100000)

	assert.Error(t, Negotiate(b, 0, "", time.Now()))
	assert.Error(t, Negotiate(b, -500, "", time.Now()))

	assert.Equal(t, int64(100000), b.TotalPrice)
	assert.Equal(t, 0, b.NegotiationRound)
}

func TestFullLifecycle(t *testing.T) {
	now := time.Now()
	b := newPendingBooking(100000)

	require.NoError(t, Accept(b))
	assert.Equal(t, string(StatusConfirmed), b.Status)

	require.NoError(t, StartWork(b, now))
	assert.Equal(t, string(StatusInProgress), b.Status)
	require.NotNil(t, b.WorkStartedAt)

	require.NoError(t, RequestReview(b, now))
	assert.Equal(t, string(StatusPendingReview), b.Status)
	require.NotNil(t, b.ReviewRequestedAt)

	require.NoError(t, ApproveWork(b, now))
	assert.Equal(t, string(StatusCompleted), b.Status)
	require.NotNil(t, b.WorkCompletedAt)
}

func TestApproveWorkRequiresReview(t *testing.T) {
	now := time.Now()
	b := newPendingBooking(100000)

	require.NoError(t, Accept(b))
	require.NoError(t, StartWork(b, now))

	// The client cannot approve until the master requests review.
	err := ApproveWork(b, now)
	require.Error(t, err)

	te, ok := AsTransitionError(err)
	require.True(t, ok)
	assert.Equal(t, StatusInProgress, te.From)

	// Failed transitions leave the booking untouched.
	assert.Equal(t, string(StatusInProgress), b.Status)
	assert.Nil(t, b.WorkCompletedAt)
}

func TestRejectIsTerminal(t *testing.T) {
	now := time.Now()
	b := newPendingBooking(100000)

	require.NoError(t, Reject(b, now))
	assert.Equal(t, string(StatusCancelled), b.Status)
	require.NotNil(t, b.CancelledAt)

	assert.Error(t, Accept(b))
	assert.Error(t, Cancel(b, ActorClient, now))
}

func TestCancelFromActiveStates(t *testing.T) {
	now := time.Now()

	for _, status := range []Status{StatusPending, StatusConfirmed, StatusInProgress, StatusPendingReview} {
		b := newPendingBooking(100000)
		b.Status = string(status)

		require.NoError(t, Cancel(b, ActorMaster, now), "cancel from %s", status)
		assert.Equal(t, string(StatusCancelled), b.Status)
		require.NotNil(t, b.CancelledAt)
	}
}
