// ABOUTME: Shared extraction helpers used across the per-domain feed extractors
// ABOUTME: Covers truncation, label-prefix lookup, emoji handling and URL heuristics

package extract

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"localpulse-api/core/domain"
	"localpulse-api/core/feedxml"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	priceRe       = regexp.MustCompile(`\$[\d,]+(?:\.\d{2})?`)
)

// recordID returns the source GUID when present, otherwise an index+timestamp
// composite. Uniqueness is only required within one fetch result.
func recordID(item *feedxml.Item, index int) string {
	if guid := item.GUID(); guid != "" {
		return guid
	}
	return fmt.Sprintf("%d-%d", index, time.Now().UnixNano())
}

// safeRecord runs one item's extraction with per-item recovery. A failure
// extracting one item skips that item, never the whole batch.
func safeRecord(fn func() (domain.Record, bool)) (rec domain.Record, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			rec, ok = nil, false
		}
	}()
	return fn()
}

// truncate caps text at max runes and appends an ellipsis marker when
// truncation occurred.
func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return strings.TrimSpace(string(runes[:max])) + "..."
}

// collapseText flattens an HTML fragment to plain text: entity artifacts
// replaced, whitespace collapsed.
func collapseText(frag *goquery.Document) string {
	if frag == nil {
		return ""
	}
	text := frag.Text()
	text = strings.ReplaceAll(text, " ", " ")
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// labelValue finds the first paragraph in the fragment whose text starts with
// the given "Label:" prefix and returns the value with the prefix stripped.
// Unrecognized paragraphs are ignored.
func labelValue(frag *goquery.Document, label string) string {
	if frag == nil {
		return ""
	}
	var value string
	frag.Find("p, li").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if strings.HasPrefix(text, label) {
			value = strings.TrimSpace(strings.TrimPrefix(text, label))
			return false
		}
		return true
	})
	return value
}

// firstImage returns the src of the first img element in the fragment.
func firstImage(frag *goquery.Document) string {
	if frag == nil {
		return ""
	}
	src, _ := frag.Find("img").First().Attr("src")
	return strings.TrimSpace(src)
}

// leadingEmoji extracts a leading run of emoji code points from text, or
// returns fallback when the text does not start with one.
func leadingEmoji(text, fallback string) string {
	var out []rune
	for _, r := range strings.TrimSpace(text) {
		if isEmojiRune(r) {
			out = append(out, r)
			continue
		}
		break
	}
	if len(out) == 0 {
		return fallback
	}
	return string(out)
}

// isEmojiRune reports whether r falls in the emoji and pictograph blocks,
// including joiners and variation selectors so multi-rune emoji survive.
func isEmojiRune(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF:
		return true
	case r >= 0x2600 && r <= 0x27BF:
		return true
	case r >= 0x2B00 && r <= 0x2BFF:
		return true
	case r == 0x200D || r == 0xFE0F:
		return true
	}
	return false
}

// stripLeadingEmoji removes a leading emoji run plus surrounding spaces.
func stripLeadingEmoji(text string) string {
	trimmed := strings.TrimSpace(text)
	i := 0
	for _, r := range trimmed {
		if isEmojiRune(r) {
			i += len(string(r))
			continue
		}
		break
	}
	return strings.TrimSpace(trimmed[i:])
}

// hostOf returns the hostname of a URL, or empty when unparseable. Parse
// failures are swallowed silently; the field stays empty.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// firstPrice extracts the first dollar amount from text, or the unlisted
// placeholder when none is present.
func firstPrice(text string) string {
	if m := priceRe.FindString(text); m != "" {
		return m
	}
	return domain.PriceUnlisted
}

// matchInt applies a capture-group regex to text and returns the first
// captured group as an int, defaulting to zero on no match.
func matchInt(re *regexp.Regexp, text string) int {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return 0
	}
	var n int
	for _, c := range m[1] {
		if c < '0' || c > '9' {
			continue
		}
		n = n*10 + int(c-'0')
	}
	return n
}
