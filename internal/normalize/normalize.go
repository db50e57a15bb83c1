// Package normalize canonicalizes free-text item names into stable lookup keys.
//
// Two raw strings that differ only in case, surrounding whitespace, apostrophes,
// or punctuation normalize to the same key and are treated as the same shopping
// item everywhere (dedup, checked state, overrides).
package normalize

import "strings"

// apostrophes are stripped outright rather than collapsed to a space, so
// "Chef's knife" keys as "chefs knife" and not "chef s knife".
const apostrophes = "'’`"

// Key converts a raw item name to its canonical lookup key: lowercase,
// trimmed, apostrophes removed, every run of non-alphanumeric characters
// collapsed to a single space. Key is idempotent, and an empty or
// all-punctuation input yields "".
func Key(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		if strings.ContainsRune(apostrophes, r) {
			continue
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
			continue
		}
		pendingSpace = true
	}
	return b.String()
}

// HasPhrase reports whether the normalized form of phrase occurs in norm as a
// whole word or whole phrase, bounded by the string edges or whitespace on
// both sides. It never matches inside a longer word ("ham" does not match
// "shampoo"). norm must already be in Key form. An empty phrase never matches.
func HasPhrase(norm, phrase string) bool {
	p := Key(phrase)
	if p == "" {
		return false
	}

	for start := 0; ; {
		idx := strings.Index(norm[start:], p)
		if idx < 0 {
			return false
		}
		idx += start

		leftOK := idx == 0 || norm[idx-1] == ' '
		end := idx + len(p)
		rightOK := end == len(norm) || norm[end] == ' '
		if leftOK && rightOK {
			return true
		}
		start = idx + 1
	}
}

// ItemLabel tidies a raw item name for display: trims and collapses internal
// whitespace, leaving case and punctuation alone.
func ItemLabel(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
