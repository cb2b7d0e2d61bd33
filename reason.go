package arena

import "errors"

// Reason classifies why a seat failed to produce a move. The harness
// defines a small closed set; game sanitizers may add their own values
// for rejected input (any other non-empty string).
type Reason string

const (
	// ReasonInterrupt means the seat withdrew voluntarily, either by
	// sending the reserved withdraw token or through driver cancellation.
	ReasonInterrupt Reason = "user interrupt"

	// ReasonTimeout means the seat produced no move within its bound.
	ReasonTimeout Reason = "timeout"

	// ReasonCommFailure means the seat's transport is unreadable
	// (closed stream, broken hook).
	ReasonCommFailure Reason = "communication failed"

	// ReasonCrash means the agent program crashed or emitted output the
	// protocol could not accept.
	ReasonCrash Reason = "error"
)

// Terminal reports whether r ends an interactive seat without a retry.
// Bot seats are never retried, so for them every Reason is terminal.
func (r Reason) Terminal() bool {
	return r == ReasonInterrupt || r == ReasonTimeout
}

// Sentinel errors for session setup. Per-turn failures are Reasons, not
// errors — they never abort the session.
var (
	// ErrProgramNotFound indicates an agent program path does not name a
	// readable file. Surfaced at construction, before anything spawns.
	ErrProgramNotFound = errors.New("arena: agent program not found")

	// ErrSilentWithHumans indicates a silent session was requested while
	// interactive seats are present. Silent play assumes fully
	// autonomous participants.
	ErrSilentWithHumans = errors.New("arena: silent game requires fully autonomous players")
)
