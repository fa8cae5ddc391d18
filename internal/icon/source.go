// Package icon implements the icon resolution pipeline: classifying raw
// sources, fetching and caching remote assets, transforming pixels, and
// coordinating per-tab resolution with fallback.
package icon

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"regexp"

	"github.com/cristianoliveira/tabstrip/internal/tabs"
)

// inlinePattern matches the prefix of an inline data URI carrying one of
// the allowed image MIME types. Only the MIME token is case-insensitive.
var inlinePattern = regexp.MustCompile(`^data:image/(?i:png|jpeg|jpg|svg\+xml|webp);base64,`)

// Source is the classification result for a raw icon source string.
type Source struct {
	Kind tabs.SourceKind
	// Key is the cache key for remote sources: the raw URL string as
	// given, not a normalized form.
	Key string
	// Data holds the decoded payload for inline sources.
	Data []byte
}

// Classify decides whether a raw icon source string is inline or remote.
// Inline payloads are base64-decoded directly; remote sources must be
// absolute http or https URLs. Anything else fails with ErrInvalidSource.
// Pure validation, no side effects.
func Classify(raw string) (Source, error) {
	if prefix := inlinePattern.FindString(raw); prefix != "" {
		data, err := base64.StdEncoding.DecodeString(raw[len(prefix):])
		if err != nil {
			return Source{}, fmt.Errorf("%w: bad base64 payload: %v", ErrInvalidSource, err)
		}
		return Source{Kind: tabs.SourceInline, Data: data}, nil
	}

	u, err := url.Parse(raw)
	if err == nil && u.IsAbs() && u.Host != "" && (u.Scheme == "http" || u.Scheme == "https") {
		return Source{Kind: tabs.SourceRemote, Key: raw}, nil
	}
	return Source{}, fmt.Errorf("%w: %q is neither an inline data URI nor an http(s) URL", ErrInvalidSource, raw)
}
