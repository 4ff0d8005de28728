package checkout

// State is the position of one checkout attempt in its lifecycle. An attempt
// moves Idle → Validating → CreatingSession → AwaitingPayment → Confirming →
// Confirmed, with Cancelled and Failed as the alternate terminal states.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateCreatingSession
	StateAwaitingPayment
	StateConfirming
	StateConfirmed
	StateCancelled
	StateFailed
)

var stateNames = map[State]string{
	StateIdle:            "idle",
	StateValidating:      "validating",
	StateCreatingSession: "creating_session",
	StateAwaitingPayment: "awaiting_payment",
	StateConfirming:      "confirming",
	StateConfirmed:       "confirmed",
	StateCancelled:       "cancelled",
	StateFailed:          "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether no further transition can occur for the attempt.
func (s State) Terminal() bool {
	return s == StateConfirmed || s == StateCancelled || s == StateFailed
}
