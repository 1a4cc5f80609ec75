package brute

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Status is the terminal state of a run. Success, exhaustion and
// external cancellation are kept distinct so callers can report and
// exit differently for each.
type Status int

const (
	StatusRunning Status = iota
	StatusFound
	StatusExhausted
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusFound:
		return "found"
	case StatusExhausted:
		return "exhausted"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Snapshot is a consistent view of run counters, taken under the
// RunState lock.
type Snapshot struct {
	Attempts         uint64
	TransportErrors  uint64
	UnexpectedErrors uint64
	Elapsed          time.Duration
	Rate             float64
	Current          string
	Found            bool
	Credential       string
}

// RunState holds all counters and flags shared across workers. Every
// field is guarded by one mutex: the burst-detection logic needs a
// single consistent view of the consecutive-error count and the last
// error timestamp, and the progress throttle must be atomic with the
// attempt counter it reports.
//
// Backoff delays are computed while the lock is held but always slept
// by the caller after release, so one worker's pause never serializes
// the rest of the pool.
type RunState struct {
	mu sync.Mutex

	start        time.Time
	attempts     uint64
	transport    uint64
	unexpected   uint64
	consecutive  int
	lastError    time.Time
	lastProgress time.Time
	current      string
	found        bool
	credential   string

	baseDelay      time.Duration
	jitter         time.Duration
	burstThreshold int
	burstWindow    time.Duration
	burstPause     time.Duration
	progressEvery  time.Duration
}

// NewRunState creates run state configured from already-defaulted
// options.
func NewRunState(o Options) *RunState {
	return &RunState{
		start:          time.Now(),
		baseDelay:      o.BaseRetryDelay,
		jitter:         o.RetryJitter,
		burstThreshold: o.BurstThreshold,
		burstWindow:    o.BurstWindow,
		burstPause:     o.BurstPause,
		progressEvery:  o.ProgressInterval,
	}
}

// RecordAttempt counts one fully processed candidate. When at least the
// progress interval has passed since the last emission it returns a
// snapshot and emit=true; the throttle bookkeeping shares the lock
// acquisition with the counter update.
func (s *RunState) RecordAttempt(candidate string) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attempts++
	s.current = candidate

	now := time.Now()
	if now.Sub(s.lastProgress) <= s.progressEvery {
		return Snapshot{}, false
	}
	s.lastProgress = now
	return s.snapshotLocked(now), true
}

// RecordRejected notes a clean authentication rejection. A rejection
// proves the transport is healthy, so the consecutive-error count is
// reset; the burst detector only reacts to genuine network trouble.
func (s *RunState) RecordRejected() {
	s.mu.Lock()
	s.consecutive = 0
	s.mu.Unlock()
}

// RecordTransportError classifies one transport fault and returns the
// delay the calling worker must sleep, plus whether it is a burst
// pause. Errors arriving burstThreshold times in a row within
// burstWindow of the previous one trigger the long pause and reset the
// consecutive count; otherwise the delay is the flat base plus a
// uniform jitter in [0, jitter) to de-synchronize worker retries.
func (s *RunState) RecordTransportError(now time.Time) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transport++
	s.consecutive++

	var (
		delay time.Duration
		burst bool
	)
	if s.consecutive >= s.burstThreshold && now.Sub(s.lastError) < s.burstWindow {
		s.consecutive = 0
		delay = s.burstPause
		burst = true
	} else {
		delay = s.baseDelay
		if s.jitter > 0 {
			delay += time.Duration(rand.Int64N(int64(s.jitter)))
		}
	}
	s.lastError = now
	return delay, burst
}

// RecordUnexpected counts an unclassified probe fault. These are kept
// out of the transport counters and never drive backoff; they get their
// own counter so the final summary still surfaces them.
func (s *RunState) RecordUnexpected() {
	s.mu.Lock()
	s.unexpected++
	s.mu.Unlock()
}

// MarkFound records the discovered credential. Only the first caller
// wins; it reports whether this call performed the transition.
func (s *RunState) MarkFound(credential string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.found {
		return false
	}
	s.found = true
	s.credential = credential
	return true
}

// Found reports whether a credential has been verified.
func (s *RunState) Found() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.found
}

// Snapshot returns a consistent copy of the counters.
func (s *RunState) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(time.Now())
}

func (s *RunState) snapshotLocked(now time.Time) Snapshot {
	elapsed := now.Sub(s.start)
	rate := float64(s.attempts)
	if sec := elapsed.Seconds(); sec > 1 {
		rate = float64(s.attempts) / sec
	}
	return Snapshot{
		Attempts:         s.attempts,
		TransportErrors:  s.transport,
		UnexpectedErrors: s.unexpected,
		Elapsed:          elapsed,
		Rate:             rate,
		Current:          s.current,
		Found:            s.found,
		Credential:       s.credential,
	}
}
