package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending       Status = "pending"
	StatusConfirmed     Status = "confirmed"
	StatusInProgress    Status = "in_progress"
	StatusPendingReview Status = "pending_review"
	StatusCompleted     Status = "completed"
	StatusCancelled     Status = "cancelled"
)

type Actor string

const (
	ActorClient Actor = "client"
	ActorMaster Actor = "master"
)

func InitialStatus() Status {
	return StatusPending
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ===============================
// Transition guards
// ===============================
//
// Canonical forward path:
// pending → confirmed → in_progress → pending_review → completed.
// Negotiation loops pending → pending; cancel escapes from any active state.

// CanAccept: master takes the booking as requested by the client.
func CanAccept(current Status, lastProposedBy Actor) error {
	if current != StatusPending {
		return &TransitionError{From: current, Action: ActionAccept, Actor: ActorMaster}
	}
	if lastProposedBy == ActorMaster {
		// A counter-proposal is on the table; only the client can accept it.
		return &TransitionError{From: current, Action: ActionAccept, Actor: ActorMaster}
	}
	return nil
}

// CanReject: master declines the request outright.
func CanReject(current Status) error {
	if current != StatusPending {
		return &TransitionError{From: current, Action: ActionReject, Actor: ActorMaster}
	}
	return nil
}

// CanNegotiate: master counters with a new price, cycling back to pending.
func CanNegotiate(current Status) error {
	if current != StatusPending {
		return &TransitionError{From: current, Action: ActionNegotiate, Actor: ActorMaster}
	}
	return nil
}

// CanAcceptProposal: client accepts the master's counter-proposal.
func CanAcceptProposal(current Status, lastProposedBy Actor) error {
	if current != StatusPending || lastProposedBy != ActorMaster {
		return &TransitionError{From: current, Action: ActionAcceptProposal, Actor: ActorClient}
	}
	return nil
}

func CanStartWork(current Status) error {
	if current != StatusConfirmed {
		return &TransitionError{From: current, Action: ActionStartWork, Actor: ActorMaster}
	}
	return nil
}

func CanRequestReview(current Status) error {
	if current != StatusInProgress {
		return &TransitionError{From: current, Action: ActionRequestReview, Actor: ActorMaster}
	}
	return nil
}

func CanApproveWork(current Status) error {
	if current != StatusPendingReview {
		return &TransitionError{From: current, Action: ActionApproveWork, Actor: ActorClient}
	}
	return nil
}

func CanCancel(current Status, actor Actor) error {
	if current.Terminal() {
		return &TransitionError{From: current, Action: ActionCancel, Actor: actor}
	}
	return nil
}
