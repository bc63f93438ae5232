// ABOUTME: XML sanitizer that repairs common malformed-entity errors in feed text
// ABOUTME: Makes loosely generated RSS/Atom documents safe for a conforming XML parser

package sanitize

import (
	"regexp"
	"strings"
)

// entityRef matches a valid XML entity reference body immediately after an
// ampersand, e.g. "amp;", "#8217;", "nbsp;".
var entityRef = regexp.MustCompile(`^[a-zA-Z0-9#]{1,7};`)

// FeedText repairs malformed entities in raw feed text. Any '&' not followed
// by a valid entity reference is escaped to "&amp;", and double-escaped
// "&amp;amp;" sequences produced by upstream generators are collapsed back to
// a single "&amp;". The result is safe to hand to a standards-conforming XML
// parser.
//
// Upstream feed generators frequently emit unescaped ampersands in free text
// (e.g. "R&D"), which would otherwise abort parsing.
func FeedText(raw string) string {
	if !strings.Contains(raw, "&") {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw) + 16)

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '&' {
			b.WriteByte(c)
			continue
		}

		rest := raw[i+1:]
		if len(rest) > 8 {
			rest = rest[:8]
		}
		if entityRef.MatchString(rest) {
			b.WriteByte(c)
		} else {
			b.WriteString("&amp;")
		}
	}

	out := b.String()

	// Collapse double escapes, including ones present in the input.
	for strings.Contains(out, "&amp;amp;") {
		out = strings.ReplaceAll(out, "&amp;amp;", "&amp;")
	}

	return out
}
