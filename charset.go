package brute

const (
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	digitChars   = "0123456789"
	mixedSpecial = "!@#$%^&*"
)

// DefaultPriorityPatterns lists hand-picked candidates tried before
// exhaustive enumeration, keyed by candidate length.
var DefaultPriorityPatterns = map[int][]string{
	3: {"AAA", "BBB", "CCC", "ADM", "PWD", "SYS", "ADM", "123", "QWE"},
}

// CharsetSpec selects the character class candidates are generated from.
// Exactly one class is active per run; when several are requested the
// highest-priority one wins: Upper > Lower > Digits > Special. The zero
// value selects the default mixed set (letters, digits and a small fixed
// punctuation set).
type CharsetSpec struct {
	Upper   bool
	Lower   bool
	Digits  bool
	Special string
}

// Build resolves the selection to the concrete character set, in the
// order candidates are enumerated.
func (s CharsetSpec) Build() string {
	switch {
	case s.Upper:
		return upperChars
	case s.Lower:
		return lowerChars
	case s.Digits:
		return digitChars
	case s.Special != "":
		return s.Special
	default:
		return lowerChars + upperChars + digitChars + mixedSpecial
	}
}
