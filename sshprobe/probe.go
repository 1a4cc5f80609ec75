// Package sshprobe implements the brute.AuthProbe contract against an
// SSH endpoint using password authentication. One call performs exactly
// one network attempt: dial, handshake, authenticate, close.
package sshprobe

import (
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"net"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"

	"github.com/azargarov/brute"
)

const (
	DefaultPort           = 22
	DefaultConnectTimeout = 8 * time.Second
	DefaultBannerTimeout  = 25 * time.Second

	// defaultDialJitter spaces out connection attempts across workers
	// so the target does not see a perfectly regular connect pattern.
	defaultDialJitter = 300 * time.Millisecond
)

// Config controls probe execution. Zero values take the defaults above.
type Config struct {
	Port int

	// ConnectTimeout bounds the TCP dial and the authentication step.
	ConnectTimeout time.Duration

	// BannerTimeout bounds the whole handshake, covering servers that
	// are slow to present their version banner.
	BannerTimeout time.Duration

	// DialJitter is the upper bound of a uniform random delay before
	// each dial. Zero disables it; tests want deterministic timing.
	DialJitter time.Duration
}

func (c *Config) fillDefaults() {
	if c.Port <= 0 {
		c.Port = DefaultPort
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = DefaultConnectTimeout
	}
	if c.BannerTimeout <= 0 {
		c.BannerTimeout = DefaultBannerTimeout
	}
}

// Probe is a reusable, concurrency-safe SSH password probe.
type Probe struct {
	cfg Config
}

// New creates a probe. Pass the zero Config for reference behavior.
func New(cfg Config) *Probe {
	cfg.fillDefaults()
	return &Probe{cfg: cfg}
}

// NewDefault creates a probe with the reference timeouts and dial
// jitter enabled.
func NewDefault() *Probe {
	return New(Config{DialJitter: defaultDialJitter})
}

// Attempt dials host and tries candidate as the password for username.
// The connection is closed before returning on every path.
func (p *Probe) Attempt(ctx context.Context, host, username, candidate string) brute.Outcome {
	if p.cfg.DialJitter > 0 {
		wait(ctx, rand.N(p.cfg.DialJitter))
	}

	addr := net.JoinHostPort(host, strconv.Itoa(p.cfg.Port))
	dialer := net.Dialer{
		Timeout:   p.cfg.ConnectTimeout,
		KeepAlive: 30 * time.Second,
	}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return classify(err)
	}

	// One deadline for banner exchange, key exchange and auth.
	_ = conn.SetDeadline(time.Now().Add(p.cfg.BannerTimeout))

	clientConn, chans, reqs, err := ssh.NewClientConn(conn, addr, &ssh.ClientConfig{
		User:            username,
		Auth:            []ssh.AuthMethod{ssh.Password(candidate)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         p.cfg.ConnectTimeout,
	})
	if err != nil {
		conn.Close()
		return classify(err)
	}

	ssh.NewClient(clientConn, chans, reqs).Close()
	return brute.Outcome{Kind: brute.OutcomeSuccess}
}

// classify maps a dial or handshake error onto the outcome taxonomy.
// Authentication refusals must be checked first: x/crypto wraps them in
// the same "handshake failed" prefix as genuine protocol faults.
func classify(err error) brute.Outcome {
	msg := err.Error()
	if strings.Contains(msg, "unable to authenticate") ||
		strings.Contains(msg, "no supported methods remain") {
		return brute.Outcome{Kind: brute.OutcomeRejected}
	}

	var netErr net.Error
	switch {
	case errors.As(err, &netErr),
		errors.Is(err, io.EOF),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		strings.Contains(msg, "handshake failed"),
		strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "connection reset"):
		return brute.Outcome{Kind: brute.OutcomeTransport, Err: err}
	}

	return brute.Outcome{Kind: brute.OutcomeUnexpected, Err: err}
}

func wait(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
