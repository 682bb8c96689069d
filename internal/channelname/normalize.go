package channelname

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// Separator is stripped from names before comparison.
	Separator = "-"
	// Designator is the channel suffix ("台", station) dropped from the end of a name.
	Designator = "台"
)

// Normalize returns the identity key for a raw display name. An empty or
// separator-only name yields an empty key, which callers must not store.
func Normalize(name string) string {
	key := strings.ReplaceAll(name, Separator, "")
	key = strings.TrimSuffix(key, Designator)
	key = cases.Upper(language.Und).String(key)
	return strings.TrimSpace(key)
}

// IsPreferred reports whether a raw name carries the formatting the merger
// favors for display: an explicit separator or the designator suffix.
func IsPreferred(name string) bool {
	return strings.Contains(name, Separator) || strings.HasSuffix(name, Designator)
}

// Prefer reports whether candidate should replace current as the displayed
// spelling. A preferred name always beats a plain one, a plain name never
// displaces a preferred one, and otherwise the newer observation wins.
func Prefer(current, candidate string) bool {
	return IsPreferred(candidate) || !IsPreferred(current)
}
