package domain

// FeedbackState is the visible lifecycle of a clicked token.
// Idle → Pending → (Found | NotFound) → Settled → Idle.
// At most one token per document view is ever in a non-idle state.
type FeedbackState int

const (
	FeedbackIdle FeedbackState = iota
	FeedbackPending
	FeedbackFound
	FeedbackNotFound
	FeedbackSettled
)

func (s FeedbackState) String() string {
	switch s {
	case FeedbackPending:
		return "pending"
	case FeedbackFound:
		return "found"
	case FeedbackNotFound:
		return "not-found"
	case FeedbackSettled:
		return "settled"
	default:
		return "idle"
	}
}

// Active reports whether the state still belongs to a live click
// (a settle timer may be pending).
func (s FeedbackState) Active() bool {
	return s == FeedbackPending || s == FeedbackFound || s == FeedbackNotFound
}
