package booking

// Status is the booking state machine's explicit tag. Every transition
// asserts its allowed source states before mutating anything.
type Status string

const (
	// StatusAwaitingAttestation is the initial funded state.
	StatusAwaitingAttestation Status = "awaiting_attestation"
	// StatusAttested means the oracle reported an outcome and the challenge
	// window is open.
	StatusAttested Status = "attested"
	// StatusDisputed means the guest bonded a challenge inside the window.
	StatusDisputed Status = "disputed"
	// StatusFinalized is the terminal settled state of the undisputed paths
	// (finalize, unattested claim).
	StatusFinalized Status = "finalized"
	// StatusResolved is the terminal state of a dispute.
	StatusResolved Status = "resolved"
	// StatusCancelled is the terminal state of a guest cancellation.
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string { return string(s) }

func (s Status) IsTerminal() bool {
	switch s {
	case StatusFinalized, StatusResolved, StatusCancelled:
		return true
	default:
		return false
	}
}

// Outcome is the oracle's verdict on a session.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
)

func (o Outcome) String() string { return string(o) }

func (o Outcome) IsValid() bool {
	return o == OutcomeCompleted
}
