package sshprobe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"testing"
	"time"

	"github.com/azargarov/brute"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want brute.OutcomeKind
	}{
		{
			"AuthRefused",
			fmt.Errorf("ssh: handshake failed: ssh: unable to authenticate, attempted methods [none password], no supported methods remain"),
			brute.OutcomeRejected,
		},
		{
			"DialRefused",
			&net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connect: connection refused")},
			brute.OutcomeTransport,
		},
		{
			"Timeout",
			context.DeadlineExceeded,
			brute.OutcomeTransport,
		},
		{
			"BannerEOF",
			io.EOF,
			brute.OutcomeTransport,
		},
		{
			"HandshakeProtocolFault",
			fmt.Errorf("ssh: handshake failed: read tcp 10.0.0.1:40000->10.0.0.2:22: connection reset by peer"),
			brute.OutcomeTransport,
		},
		{
			"Unclassified",
			errors.New("something odd happened"),
			brute.OutcomeUnexpected,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := classify(tc.err); got.Kind != tc.want {
				t.Fatalf("classify(%v).Kind = %v; want %v", tc.err, got.Kind, tc.want)
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	p := New(Config{})

	if p.cfg.Port != DefaultPort {
		t.Fatalf("Port = %d; want %d", p.cfg.Port, DefaultPort)
	}
	if p.cfg.ConnectTimeout != DefaultConnectTimeout {
		t.Fatalf("ConnectTimeout = %v; want %v", p.cfg.ConnectTimeout, DefaultConnectTimeout)
	}
	if p.cfg.BannerTimeout != DefaultBannerTimeout {
		t.Fatalf("BannerTimeout = %v; want %v", p.cfg.BannerTimeout, DefaultBannerTimeout)
	}
	// Zero jitter must stay zero so tests and scripted runs are
	// deterministic.
	if p.cfg.DialJitter != 0 {
		t.Fatalf("DialJitter = %v; want 0", p.cfg.DialJitter)
	}
}

func TestAttemptDialFailureIsTransport(t *testing.T) {
	// Reserve a port and close the listener so the dial is refused.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := l.Addr().(*net.TCPAddr)
	l.Close()

	p := New(Config{
		Port:           addr.Port,
		ConnectTimeout: time.Second,
		BannerTimeout:  time.Second,
	})

	out := p.Attempt(context.Background(), "127.0.0.1", "root", "secret")
	if out.Kind != brute.OutcomeTransport {
		t.Fatalf("Kind = %v (err=%v); want transport error", out.Kind, out.Err)
	}
}

func TestAttemptHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(Config{Port: 2222, ConnectTimeout: time.Second, BannerTimeout: time.Second})

	done := make(chan brute.Outcome, 1)
	go func() {
		done <- p.Attempt(ctx, "192.0.2.1", "root", "secret")
	}()

	select {
	case out := <-done:
		if out.Kind == brute.OutcomeSuccess {
			t.Fatal("cancelled attempt reported success")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("attempt did not return promptly with a cancelled context")
	}
}
