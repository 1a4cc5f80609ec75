package brute_test

import (
	"testing"

	"github.com/azargarov/brute"
)

func TestCharsetPriorityOrder(t *testing.T) {
	tests := []struct {
		name string
		spec brute.CharsetSpec
		want string
	}{
		{"UpperWinsOverAll", brute.CharsetSpec{Upper: true, Lower: true, Digits: true, Special: "!?"}, "ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
		{"LowerBeatsDigits", brute.CharsetSpec{Lower: true, Digits: true}, "abcdefghijklmnopqrstuvwxyz"},
		{"DigitsBeatSpecial", brute.CharsetSpec{Digits: true, Special: "!?"}, "0123456789"},
		{"SpecialVerbatim", brute.CharsetSpec{Special: "!?#"}, "!?#"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.spec.Build(); got != tc.want {
				t.Fatalf("Build() = %q; want %q", got, tc.want)
			}
		})
	}
}

func TestCharsetDefaultMixedSet(t *testing.T) {
	got := brute.CharsetSpec{}.Build()
	want := "abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"0123456789" +
		"!@#$%^&*"

	if got != want {
		t.Fatalf("default charset = %q; want %q", got, want)
	}
}

func TestDefaultPriorityPatterns(t *testing.T) {
	patterns, ok := brute.DefaultPriorityPatterns[3]
	if !ok || len(patterns) == 0 {
		t.Fatal("no default priority patterns for length 3")
	}
	if patterns[0] != "AAA" {
		t.Fatalf("first length-3 pattern = %q; want AAA", patterns[0])
	}
}
