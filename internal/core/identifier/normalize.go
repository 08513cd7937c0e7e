// Package identifier canonicalizes raw contact points (phone numbers, message
// addresses) into the digit-only keys used to join logs against contacts.
package identifier

import "strings"

// Normalize strips every character that is not an ASCII decimal digit.
// Returns ok=false when nothing remains; such identifiers must be dropped,
// never stored under an empty key.
func Normalize(raw string) (key string, ok bool) {
	if raw == "" {
		return "", false
	}

	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}

	if b.Len() == 0 {
		return "", false
	}
	return b.String(), true
}

// NormalizeAll normalizes a list of raw identifiers, dropping invalid entries
// and duplicates while keeping first-seen order.
func NormalizeAll(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}

	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		key, ok := Normalize(r)
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}
