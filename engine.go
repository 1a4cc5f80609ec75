package brute

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrNilProbe is returned when New is given no probe.
	ErrNilProbe = errors.New("brute: probe is nil")

	// ErrNoHost is returned when Options.Host is empty.
	ErrNoHost = errors.New("brute: host is required")

	// ErrNoUsername is returned when Options.Username is empty.
	ErrNoUsername = errors.New("brute: username is required")

	// ErrBadLength is returned for a non-positive candidate length.
	ErrBadLength = errors.New("brute: length must be positive")

	// ErrEngineReused is returned by Run on a second call.
	ErrEngineReused = errors.New("brute: engine is single-use")
)

// Result is the final report of a run.
type Result struct {
	Status           Status
	Credential       string
	Attempts         uint64
	TransportErrors  uint64
	UnexpectedErrors uint64
	Elapsed          time.Duration
}

// Engine wires generator, queue, worker pool and reporter together for
// one search run.
type Engine struct {
	opts     Options
	probe    AuthProbe
	state    *RunState
	queue    *WorkQueue
	gen      *Generator
	reporter *Reporter
	log      *zap.Logger

	wg        sync.WaitGroup
	cancel    context.CancelFunc
	started   atomic.Bool
	exhausted bool // generator drained during initial fill
}

// New builds an engine from the probe and options. Zero option fields
// take the reference defaults.
func New(probe AuthProbe, opts Options) (*Engine, error) {
	if probe == nil {
		return nil, ErrNilProbe
	}
	opts.FillDefaults()
	switch {
	case opts.Host == "":
		return nil, ErrNoHost
	case opts.Username == "":
		return nil, ErrNoUsername
	case opts.Length <= 0:
		return nil, ErrBadLength
	}

	charset := opts.Charset.Build()
	return &Engine{
		opts:     opts,
		probe:    probe,
		state:    NewRunState(opts),
		queue:    NewWorkQueue(opts.QueueCapacity),
		gen:      NewGenerator(charset, opts.Length, opts.Patterns[opts.Length]),
		reporter: NewReporter(opts.Output),
		log:      opts.Logger.With(zap.String("run", uuid.NewString())),
	}, nil
}

// Run executes the search until a credential is found, the candidate
// space is exhausted, or ctx is cancelled. It blocks until every worker
// has finished, emits the final summary, and returns the result with a
// distinct terminal status for each of the three endings.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	if !e.started.CompareAndSwap(false, true) {
		return Result{}, ErrEngineReused
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	e.cancel = cancel

	e.initialFill(runCtx)
	e.log.Info("starting workers",
		zap.Int("workers", e.opts.Workers),
		zap.Int("queued", e.queue.Len()),
	)

	for i := 0; i < e.opts.Workers; i++ {
		e.wg.Add(1)
		go e.worker(runCtx, i)
	}

	e.refillLoop(runCtx)
	e.wg.Wait()

	snap := e.state.Snapshot()
	res := Result{
		Status:           StatusExhausted,
		Credential:       snap.Credential,
		Attempts:         snap.Attempts,
		TransportErrors:  snap.TransportErrors,
		UnexpectedErrors: snap.UnexpectedErrors,
		Elapsed:          snap.Elapsed,
	}
	switch {
	case snap.Found:
		res.Status = StatusFound
	case ctx.Err() != nil:
		res.Status = StatusCancelled
	}

	e.reporter.Summary(res)
	e.log.Info("run finished",
		zap.Stringer("status", res.Status),
		zap.Uint64("attempts", res.Attempts),
		zap.Uint64("transport_errors", res.TransportErrors),
		zap.Duration("elapsed", res.Elapsed),
	)
	return res, nil
}

// initialFill buffers candidates before the workers start, until the
// fill target is reached, the queue is full, or the generator ends. A
// full queue here is not an error; it just stops the fill early.
func (e *Engine) initialFill(ctx context.Context) {
	for e.queue.Len() < e.opts.InitialFill {
		candidate, ok := e.gen.Next(ctx)
		if !ok {
			e.exhausted = true
			e.queue.Close()
			return
		}
		if !e.queue.TryPush(candidate) {
			return
		}
	}
}

// refillLoop runs on the control goroutine concurrently with the
// workers. On each poll it tops the queue up by exactly one candidate
// while below the low watermark, and closes the queue permanently once
// the generator is exhausted so workers drain and exit
// deterministically.
func (e *Engine) refillLoop(ctx context.Context) {
	if e.exhausted {
		return
	}

	ticker := time.NewTicker(e.opts.RefillInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			e.queue.Close()
			return
		case <-ticker.C:
			if e.queue.Len() >= e.opts.LowWatermark {
				continue
			}
			candidate, ok := e.gen.Next(ctx)
			if !ok {
				e.queue.Close()
				return
			}
			e.queue.TryPush(candidate)
		}
	}
}

func (e *Engine) worker(ctx context.Context, id int) {
	defer e.wg.Done()
	log := e.log.With(zap.Int("worker", id))

	for {
		candidate, ok := e.queue.Pop(ctx)
		if !ok {
			return
		}
		if ctx.Err() != nil || e.state.Found() {
			return
		}

		out := e.probe.Attempt(ctx, e.opts.Host, e.opts.Username, candidate)
		if out.Kind != OutcomeSuccess && ctx.Err() != nil {
			// Cancelled mid-attempt. The probe still ran, so the
			// candidate counts as processed; the outcome itself is
			// noise and must not touch the error counters.
			e.recordAttempt(candidate)
			return
		}

		switch out.Kind {
		case OutcomeSuccess:
			e.recordAttempt(candidate)
			if e.state.MarkFound(candidate) {
				e.reporter.Found(e.opts.Username, candidate)
				log.Info("credential found", zap.String("candidate", candidate))
			}
			e.cancel()
			return

		case OutcomeRejected:
			e.state.RecordRejected()

		case OutcomeTransport:
			delay, burst := e.state.RecordTransportError(time.Now())
			if burst {
				log.Warn("transport error burst, pausing",
					zap.Duration("pause", delay),
					zap.Error(out.Err),
				)
			} else {
				log.Debug("transport error, backing off",
					zap.Duration("sleep", delay),
					zap.Error(out.Err),
				)
			}
			sleepCtx(ctx, delay)

		case OutcomeUnexpected:
			e.state.RecordUnexpected()
			log.Error("unexpected probe error", zap.Error(out.Err))
		}

		e.recordAttempt(candidate)
	}
}

func (e *Engine) recordAttempt(candidate string) {
	if snap, emit := e.state.RecordAttempt(candidate); emit {
		e.reporter.Progress(snap)
	}
}

// sleepCtx waits for d or until ctx is cancelled, whichever is first.
func sleepCtx(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
