package booking

import (
	"fmt"
	"time"

	"github.com/ManosLatam/marketplace-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================
//
// Each action validates the current status, mutates the model and stamps its
// lifecycle timestamp exactly once. Timestamps are never rewound.

// Accept: master confirms the booking as requested. No timestamp of its own:
// ConfirmedAt semantics live on the payment side.
func Accept(b *models.Booking) error {
	if err := CanAccept(Status(b.Status), Actor(b.LastProposedBy)); err != nil {
		return err
	}

	b.Status = string(StatusConfirmed)
	return nil
}

// Reject: master declines; terminal.
func Reject(b *models.Booking, now time.Time) error {
	if err := CanReject(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

// Negotiate: master counters with a new price. The booking cycles back to
// pending with the round counter bumped so "pending due to counter-proposal"
// is an explicit sub-state, never inferred from the notes text.
func Negotiate(b *models.Booking, newPrice int64, note string, now time.Time) error {
	if err := CanNegotiate(Status(b.Status)); err != nil {
		return err
	}
	if newPrice <= 0 {
		return &TransitionError{From: Status(b.Status), Action: ActionNegotiate, Actor: ActorMaster}
	}

	b.TotalPrice = newPrice
	b.NegotiationRound++
	b.LastProposedBy = string(ActorMaster)
	b.Status = string(StatusPending)

	if note != "" {
		if b.Notes != "" {
			b.Notes += "\n"
		}
		b.Notes += fmt.Sprintf("[propuesta %d] %s", b.NegotiationRound, note)
	}
	return nil
}

// AcceptProposal: client agrees to the counter-proposal.
func AcceptProposal(b *models.Booking, now time.Time) error {
	if err := CanAcceptProposal(Status(b.Status), Actor(b.LastProposedBy)); err != nil {
		return err
	}

	b.Status = string(StatusConfirmed)
	b.LastProposedBy = string(ActorClient)
	b.ClientConfirmedAt = &now
	return nil
}

func StartWork(b *models.Booking, now time.Time) error {
	if err := CanStartWork(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusInProgress)
	b.WorkStartedAt = &now
	return nil
}

func RequestReview(b *models.Booking, now time.Time) error {
	if err := CanRequestReview(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusPendingReview)
	b.ReviewRequestedAt = &now
	return nil
}

func ApproveWork(b *models.Booking, now time.Time) error {
	if err := CanApproveWork(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCompleted)
	b.WorkCompletedAt = &now
	return nil
}

func Cancel(b *models.Booking, actor Actor, now time.Time) error {
	if err := CanCancel(Status(b.Status), actor); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}
