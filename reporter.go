package brute

import (
	"fmt"
	"io"
	"sync"
)

// Reporter renders run progress to a console-style writer. Emission
// throttling lives in RunState; the reporter only formats and
// serializes concurrent writes.
type Reporter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Progress writes the throttled in-place status line.
func (r *Reporter) Progress(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, "\rAttempts: %d | Rate: %.1f/sec | Elapsed: %.1fs | Errors: %d | Current: %s",
		s.Attempts, s.Rate, s.Elapsed.Seconds(), s.TransportErrors, s.Current)
}

// Found announces the discovered credential pair.
func (r *Reporter) Found(username, candidate string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, "\n[+] Success! Credentials: %s:%s\n", username, candidate)
}

// Summary writes the final report once all workers have joined.
func (r *Reporter) Summary(res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, "\n[*] Finished after %d attempts (%s)\n", res.Attempts, res.Status)
	fmt.Fprintf(r.w, "[*] Total connection errors: %d\n", res.TransportErrors)
	if res.UnexpectedErrors > 0 {
		fmt.Fprintf(r.w, "[*] Unexpected errors: %d\n", res.UnexpectedErrors)
	}
	fmt.Fprintf(r.w, "[*] Total time: %.1f seconds\n", res.Elapsed.Seconds())
}
