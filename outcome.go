package brute

import "context"

// OutcomeKind classifies the result of one authentication attempt.
type OutcomeKind int

const (
	// OutcomeSuccess: the candidate authenticated.
	OutcomeSuccess OutcomeKind = iota

	// OutcomeRejected: the endpoint cleanly refused the credential.
	// An expected negative result, not a fault.
	OutcomeRejected

	// OutcomeTransport: a network or protocol fault. Drives adaptive
	// backoff.
	OutcomeTransport

	// OutcomeUnexpected: an unclassified fault. Logged and counted
	// separately, never fed into backoff.
	OutcomeUnexpected
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeRejected:
		return "rejected"
	case OutcomeTransport:
		return "transport error"
	case OutcomeUnexpected:
		return "unexpected error"
	default:
		return "unknown"
	}
}

// Outcome is the result of a single probe attempt. Err is nil for
// OutcomeSuccess and OutcomeRejected.
type Outcome struct {
	Kind OutcomeKind
	Err  error
}

// AuthProbe performs exactly one authentication attempt per call: no
// internal retries, and any acquired connection is released before
// returning, on every path. Connect and handshake timeouts are part of
// the probe's own configuration. Implementations must be safe for
// concurrent use; each worker issues one attempt at a time.
type AuthProbe interface {
	Attempt(ctx context.Context, host, username, candidate string) Outcome
}
