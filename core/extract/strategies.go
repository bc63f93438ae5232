// ABOUTME: Ordered extraction strategies applied first-success-wins
// ABOUTME: Models the author heuristic chain as testable pure functions

package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"localpulse-api/core/feedxml"
)

// Strategy is one extraction attempt over an item. It returns the empty
// string when the strategy does not apply.
type Strategy func(item *feedxml.Item) string

// firstSuccess applies strategies in order and returns the first non-empty
// result. Results from different strategies are never merged.
func firstSuccess(item *feedxml.Item, strategies ...Strategy) string {
	for _, s := range strategies {
		if v := s(item); v != "" {
			return v
		}
	}
	return ""
}

// Author regexes in decreasing specificity: the parenthesized username form
// first, the loosest bare /u/name form last.
var (
	authorParenRe     = regexp.MustCompile(`\(\s*/u/([A-Za-z0-9_-]+)\s*\)`)
	authorSubmittedRe = regexp.MustCompile(`submitted\s+by\s+.{0,40}?/u(?:ser)?/([A-Za-z0-9_-]+)`)
	authorLooseRe     = regexp.MustCompile(`/u/([A-Za-z0-9_-]+)`)
)

// structuredAuthor reads the item's structured author element.
func structuredAuthor(item *feedxml.Item) string {
	return normalizeUsername(item.Author())
}

// rawMarkupAuthor applies the regex chain to the serialized item markup.
func rawMarkupAuthor(item *feedxml.Item) string {
	raw := item.Raw()
	for _, re := range []*regexp.Regexp{authorParenRe, authorSubmittedRe, authorLooseRe} {
		if m := re.FindStringSubmatch(raw); len(m) > 1 {
			return normalizeUsername(m[1])
		}
	}
	return ""
}

// spanAuthor scans embedded HTML span elements for a trailing "(/u/name)".
func spanAuthor(item *feedxml.Item) string {
	frag := item.HTML()
	if frag == nil {
		return ""
	}
	var author string
	frag.Find("span").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if m := authorParenRe.FindStringSubmatch(text); len(m) > 1 && strings.HasSuffix(text, ")") {
			author = normalizeUsername(m[1])
			return false
		}
		return true
	})
	return author
}

// normalizeUsername strips leading and trailing slashes and the /u/ prefix.
func normalizeUsername(name string) string {
	name = strings.TrimSpace(name)
	name = strings.Trim(name, "/")
	name = strings.TrimPrefix(name, "u/")
	return strings.TrimSpace(name)
}
