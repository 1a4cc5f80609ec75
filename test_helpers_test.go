package brute_test

import (
	"context"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/azargarov/brute"
)

// probeFunc adapts a function to the brute.AuthProbe interface.
type probeFunc func(ctx context.Context, host, username, candidate string) brute.Outcome

func (f probeFunc) Attempt(ctx context.Context, host, username, candidate string) brute.Outcome {
	return f(ctx, host, username, candidate)
}

// rejectAll is a probe that cleanly refuses every candidate.
var rejectAll = probeFunc(func(context.Context, string, string, string) brute.Outcome {
	return brute.Outcome{Kind: brute.OutcomeRejected}
})

// succeedOn returns a probe that accepts exactly the given candidate
// and records every candidate it was offered.
func succeedOn(target string) (probeFunc, *attemptLog) {
	log := &attemptLog{}
	return func(_ context.Context, _, _, candidate string) brute.Outcome {
		log.add(candidate)
		if candidate == target {
			return brute.Outcome{Kind: brute.OutcomeSuccess}
		}
		return brute.Outcome{Kind: brute.OutcomeRejected}
	}, log
}

type attemptLog struct {
	mu         sync.Mutex
	candidates []string
}

func (l *attemptLog) add(c string) {
	l.mu.Lock()
	l.candidates = append(l.candidates, c)
	l.mu.Unlock()
}

func (l *attemptLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.candidates...)
}

// fastOptions returns engine options tuned so full runs finish within
// test timeouts.
func fastOptions() brute.Options {
	return brute.Options{
		Host:             "target.test",
		Username:         "root",
		Length:           2,
		Charset:          brute.CharsetSpec{Special: "ab"},
		Patterns:         map[int][]string{},
		RefillInterval:   time.Millisecond,
		BaseRetryDelay:   time.Millisecond,
		RetryJitter:      time.Millisecond,
		BurstPause:       20 * time.Millisecond,
		ProgressInterval: time.Hour,
	}
}

func waitUntil(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		runtime.Gosched()
	}
	t.Fatal("condition not satisfied before timeout")
}
