package keys

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// NameKey produces the canonical key for a species or move name.
// Behavior: trims, lower-cases, turns spaces and underscores into hyphens
// and drops punctuation other than hyphens ("Mr. Mime" -> "mr-mime").
func NameKey(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	b.Grow(len(s))
	lastHyphen := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '_' || r == '-':
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// DisplayName turns a canonical key back into a human readable title,
// e.g. "thunder-wave" -> "Thunder Wave".
func DisplayName(key string) string {
	k := NameKey(key)
	if k == "" {
		return strings.TrimSpace(key)
	}
	return titleCaser.String(strings.ReplaceAll(k, "-", " "))
}
