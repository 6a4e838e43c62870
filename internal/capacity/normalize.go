package capacity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeName turns a display name into a key for equality comparison:
// lower-cased, diacritics removed and everything except a-z and 0-9 dropped.
// "José  Álves-Silva" and "jose alves silva" share the key "josealvessilva".
func NormalizeName(name string) string {
	lowered := strings.ToLower(name)

	// transform chains keep state, so build one per call.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		folded = lowered
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// SameName reports whether two display names normalize to the same key.
func SameName(a, b string) bool {
	return NormalizeName(a) == NormalizeName(b)
}
