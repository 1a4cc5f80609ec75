package brute

import (
	"context"
	"math/big"
)

// Generator lazily enumerates the candidate sequence for one run: first
// the priority patterns registered for the requested length, verbatim
// and in table order, then every string of that length over the charset
// in odometer order, rightmost position varying fastest.
//
// Priority patterns are deliberately NOT filtered against the active
// charset; a hand-picked candidate is worth trying even when it could
// never be produced by exhaustive enumeration.
//
// A Generator is single-use and not safe for concurrent callers; the
// engine drives it from the control goroutine only.
type Generator struct {
	charset  string
	length   int
	patterns []string

	patIdx   int
	odometer []int
	done     bool
}

// NewGenerator builds a generator for candidates of the given length.
// patterns may be nil when no priority entries exist for the length.
func NewGenerator(charset string, length int, patterns []string) *Generator {
	return &Generator{
		charset:  charset,
		length:   length,
		patterns: patterns,
	}
}

// Next yields the next candidate, or ok=false once the sequence is
// exhausted or ctx is cancelled. Cancellation is checked between
// emissions, so at most one already-produced candidate trails the flip.
func (g *Generator) Next(ctx context.Context) (string, bool) {
	if g.done || ctx.Err() != nil {
		return "", false
	}
	if g.patIdx < len(g.patterns) {
		p := g.patterns[g.patIdx]
		g.patIdx++
		return p, true
	}
	if len(g.charset) == 0 || g.length <= 0 {
		g.done = true
		return "", false
	}
	if g.odometer == nil {
		g.odometer = make([]int, g.length)
		return g.current(), true
	}
	if !g.advance() {
		g.done = true
		return "", false
	}
	return g.current(), true
}

// advance increments the odometer, rightmost digit first. It reports
// false on wrap-around, i.e. when the full space has been emitted.
func (g *Generator) advance() bool {
	for i := g.length - 1; i >= 0; i-- {
		g.odometer[i]++
		if g.odometer[i] < len(g.charset) {
			return true
		}
		g.odometer[i] = 0
	}
	return false
}

func (g *Generator) current() string {
	buf := make([]byte, g.length)
	for i, d := range g.odometer {
		buf[i] = g.charset[d]
	}
	return string(buf)
}

// SearchSpace returns |charset|^length, the number of exhaustively
// enumerated candidates (priority patterns excluded). The result is a
// big.Int because realistic runs overflow int64 easily.
func SearchSpace(charset string, length int) *big.Int {
	return new(big.Int).Exp(
		big.NewInt(int64(len(charset))),
		big.NewInt(int64(length)),
		nil,
	)
}
