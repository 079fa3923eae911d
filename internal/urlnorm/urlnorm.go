// Package urlnorm canonicalizes user supplied destination URLs so that
// redirects always carry an absolute Location.
package urlnorm

import "regexp"

// DefaultScheme is prepended to URLs that carry no scheme.
const DefaultScheme = "http://"

// schemePrefix matches an RFC 3986 style scheme token followed by "://".
// The check is syntactic only: "mailto:x@y" or "localhost:8080" have no "//"
// and are treated as scheme-less.
var schemePrefix = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*://`)

// HasScheme reports whether rawURL starts with a scheme prefix.
func HasScheme(rawURL string) bool {
	return schemePrefix.MatchString(rawURL)
}

// Normalize returns rawURL unchanged when it has a scheme and prefixes it
// with DefaultScheme otherwise. It does not validate the result, and an empty
// input yields DefaultScheme alone, so callers reject empty input first.
func Normalize(rawURL string) string {
	if HasScheme(rawURL) {
		return rawURL
	}

	return DefaultScheme + rawURL
}
