package brute

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultWorkers        = 5
	DefaultQueueCapacity  = 5000
	DefaultLowWatermark   = 500
	DefaultInitialFill    = 1000
	DefaultRefillInterval = 100 * time.Millisecond

	defaultBaseRetryDelay   = 2 * time.Second
	defaultRetryJitter      = time.Second
	defaultBurstThreshold   = 3
	defaultBurstWindow      = 5 * time.Second
	defaultBurstPause       = 10 * time.Second
	defaultProgressInterval = time.Second
)

// Options configure an Engine.
//
// All zero values are replaced with the reference defaults in FillDefaults.
type Options struct {
	// Host is the target endpoint passed to every probe attempt.
	Host string

	// Username is the account to test candidates against.
	Username string

	// Length is the candidate length to enumerate.
	Length int

	// Charset selects the active character class. The zero value falls
	// back to the default mixed set.
	Charset CharsetSpec

	// Patterns maps candidate length to hand-picked candidates tried
	// before exhaustive enumeration. Nil selects the built-in table.
	Patterns map[int][]string

	// Workers is the fixed number of concurrent probe workers.
	Workers int

	QueueCapacity  int
	LowWatermark   int
	InitialFill    int
	RefillInterval time.Duration

	// BaseRetryDelay plus a uniform jitter in [0, RetryJitter) is slept
	// after an isolated transport error.
	BaseRetryDelay time.Duration
	RetryJitter    time.Duration

	// BurstThreshold consecutive transport errors inside BurstWindow
	// trigger a single BurstPause instead of the jittered delay.
	BurstThreshold int
	BurstWindow    time.Duration
	BurstPause     time.Duration

	// ProgressInterval throttles status line emission.
	ProgressInterval time.Duration

	// Output receives progress, success and summary lines. Defaults to
	// os.Stdout.
	Output io.Writer

	// Logger receives structured engine events. Defaults to a nop logger.
	Logger *zap.Logger
}

func (o *Options) FillDefaults() {
	if o.Workers <= 0 {
		o.Workers = DefaultWorkers
	}
	if o.QueueCapacity <= 0 {
		o.QueueCapacity = DefaultQueueCapacity
	}
	if o.LowWatermark <= 0 {
		o.LowWatermark = DefaultLowWatermark
	}
	if o.InitialFill <= 0 {
		o.InitialFill = DefaultInitialFill
	}
	if o.InitialFill > o.QueueCapacity {
		o.InitialFill = o.QueueCapacity
	}
	if o.RefillInterval <= 0 {
		o.RefillInterval = DefaultRefillInterval
	}
	if o.BaseRetryDelay <= 0 {
		o.BaseRetryDelay = defaultBaseRetryDelay
	}
	if o.RetryJitter <= 0 {
		o.RetryJitter = defaultRetryJitter
	}
	if o.BurstThreshold <= 0 {
		o.BurstThreshold = defaultBurstThreshold
	}
	if o.BurstWindow <= 0 {
		o.BurstWindow = defaultBurstWindow
	}
	if o.BurstPause <= 0 {
		o.BurstPause = defaultBurstPause
	}
	if o.ProgressInterval <= 0 {
		o.ProgressInterval = defaultProgressInterval
	}
	if o.Patterns == nil {
		o.Patterns = DefaultPriorityPatterns
	}
	if o.Output == nil {
		o.Output = os.Stdout
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}
