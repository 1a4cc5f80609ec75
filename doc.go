// Package brute drives a fixed pool of concurrent workers through an
// ordered candidate-secret sequence against a remote authentication
// endpoint, throttling itself under error pressure and stopping as soon
// as a credential is verified or the run is cancelled.
//
// Architecture overview
//
// The engine is composed of loosely coupled stages wired together by the
// Engine type:
//
//   1. Generation (Generator)
//      A lazy odometer enumeration over the active character set,
//      preceded by hand-picked priority patterns for the requested
//      length. At most |charset|^length candidates are produced.
//
//   2. Buffering (WorkQueue)
//      A bounded, closable FIFO decoupling generation rate from probe
//      rate. The control goroutine keeps it above a low watermark on a
//      fixed poll interval and closes it once the generator is drained,
//      so workers observe a deterministic end of input.
//
//   3. Execution (workers + AuthProbe)
//      A fixed set of workers pops candidates and performs exactly one
//      authentication attempt each through the AuthProbe contract.
//      Attempt outcomes feed the shared RunState and, for transport
//      faults, an adaptive backoff: a flat jittered delay normally, and
//      a long pause when errors arrive in a tight burst.
//
// Concurrency model
//
// RunState is the only cross-worker mutable state besides the queue;
// every read and write happens under one mutex so the burst-detection
// logic always sees a consistent snapshot. Backoff delays are computed
// under that lock but slept outside it, so one worker backing off never
// serializes the others. Cancellation is a context threaded through
// every blocking point: queue pops, backoff sleeps, generator steps and
// probe dials. An in-flight probe attempt is bounded by its own
// timeouts, not interrupted mid-handshake.
//
// The package deliberately keeps no state across runs: an Engine and
// its Generator are single-use.
package brute
