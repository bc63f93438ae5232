// ABOUTME: Reddit post extractor with author strategy chain and post-type classification
// ABOUTME: Admission requires a non-empty title after fallbacks; score and comments default to zero

package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"localpulse-api/core/domain"
	"localpulse-api/core/feedxml"
)

var (
	scoreRe    = regexp.MustCompile(`(\d+)\s+points?`)
	commentsRe = regexp.MustCompile(`(\d+)\s+comments?`)
)

// imageHosts are URL substrings that mark a link target as an image post.
var imageHosts = []string{"i.redd.it", "preview.redd.it", "i.imgur.com", "imgur.com"}

const redditBodyMax = 300

// RedditPosts extracts social post records from a subreddit feed.
func RedditPosts(items []*feedxml.Item) []domain.Record {
	records := make([]domain.Record, 0, len(items))
	for i, item := range items {
		rec, ok := safeRecord(func() (domain.Record, bool) {
			title := strings.TrimSpace(item.Title())
			if title == "" {
				// Title fallback: first non-empty line of the flattened body.
				title = firstLine(collapseText(item.HTML()))
			}
			if title == "" {
				return nil, false
			}

			link := item.Link()
			frag := item.HTML()
			raw := item.Raw()

			post := domain.RedditPost{
				ID:        recordID(item, i),
				Title:     title,
				Body:      truncate(collapseText(frag), redditBodyMax),
				Author:    firstSuccess(item, structuredAuthor, rawMarkupAuthor, spanAuthor),
				Score:     matchInt(scoreRe, raw),
				Comments:  matchInt(commentsRe, raw),
				PostType:  classifyPost(link, frag),
				ImageURL:  firstImage(frag),
				Link:      link,
				Published: item.Published(),
			}

			if post.PostType == domain.PostTypeLink {
				post.Domain = hostOf(link)
			}

			return post, true
		})
		if ok {
			records = append(records, rec)
		}
	}
	return records
}

// classifyPost decides the post type from the link target and embedded HTML:
// poll links first, then image indicators, then internal text posts, with
// external link posts as the remainder.
func classifyPost(link string, frag *goquery.Document) string {
	if strings.Contains(link, "/poll/") {
		return domain.PostTypePoll
	}
	for _, host := range imageHosts {
		if strings.Contains(link, host) {
			return domain.PostTypeImage
		}
	}
	if frag != nil && frag.Find("img").Length() > 0 {
		return domain.PostTypeImage
	}
	if strings.Contains(hostOf(link), "reddit.com") {
		return domain.PostTypeText
	}
	return domain.PostTypeLink
}

// firstLine returns the first 80 runes of text as a title fallback.
func firstLine(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return truncate(text, 80)
}
