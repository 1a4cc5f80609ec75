package brute_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/azargarov/brute"
)

func TestReporterProgressLine(t *testing.T) {
	var buf bytes.Buffer
	r := brute.NewReporter(&buf)

	r.Progress(brute.Snapshot{
		Attempts:        1500,
		Rate:            42.5,
		Elapsed:         35300 * time.Millisecond,
		TransportErrors: 7,
		Current:         "ADM",
	})

	got := buf.String()
	want := "\rAttempts: 1500 | Rate: 42.5/sec | Elapsed: 35.3s | Errors: 7 | Current: ADM"
	if got != want {
		t.Fatalf("progress line = %q; want %q", got, want)
	}
}

func TestReporterFoundLine(t *testing.T) {
	var buf bytes.Buffer
	r := brute.NewReporter(&buf)

	r.Found("root", "123")

	if got := buf.String(); !strings.Contains(got, "Success! Credentials: root:123") {
		t.Fatalf("found line = %q", got)
	}
}

func TestReporterSummary(t *testing.T) {
	var buf bytes.Buffer
	r := brute.NewReporter(&buf)

	r.Summary(brute.Result{
		Status:          brute.StatusExhausted,
		Attempts:        4096,
		TransportErrors: 12,
		Elapsed:         90 * time.Second,
	})

	got := buf.String()
	for _, want := range []string{
		"[*] Finished after 4096 attempts (exhausted)",
		"[*] Total connection errors: 12",
		"[*] Total time: 90.0 seconds",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("summary %q missing %q", got, want)
		}
	}
	if strings.Contains(got, "Unexpected errors") {
		t.Fatalf("summary mentions unexpected errors when there were none: %q", got)
	}
}

func TestReporterSummaryUnexpectedErrors(t *testing.T) {
	var buf bytes.Buffer
	r := brute.NewReporter(&buf)

	r.Summary(brute.Result{
		Status:           brute.StatusCancelled,
		UnexpectedErrors: 3,
	})

	if got := buf.String(); !strings.Contains(got, "[*] Unexpected errors: 3") {
		t.Fatalf("summary = %q; want unexpected error count", got)
	}
}
