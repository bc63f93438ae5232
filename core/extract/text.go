// ABOUTME: Plain-text article extraction for the news, politics and education domains
// ABOUTME: One generic routine parameterized by a per-domain TextConfig

package extract

import (
	"strings"

	"localpulse-api/core/domain"
	"localpulse-api/core/feedxml"
)

// TextConfig tunes the plain-text body pipeline for one feed source.
type TextConfig struct {
	// MaxLen caps body length in runes.
	MaxLen int
	// MinLen is the threshold below which the body is replaced by Fallback.
	MinLen int
	// Fallback is the fixed click-through message substituted for bodies
	// shorter than MinLen.
	Fallback string
	// Boilerplate lists source-specific footer phrases stripped from the body.
	Boilerplate []string
}

// NewsConfig tunes extraction for the local news feed.
var NewsConfig = TextConfig{
	MaxLen:   400,
	MinLen:   40,
	Fallback: "Read the full story on the publisher's site.",
	Boilerplate: []string{
		"The post appeared first on",
		"Continue reading",
	},
}

// PoliticsConfig tunes extraction for the political blog feed.
var PoliticsConfig = TextConfig{
	MaxLen:   300,
	MinLen:   30,
	Fallback: "Read the full post on the blog.",
	Boilerplate: []string{
		"Subscribe to our newsletter",
		"Donate",
	},
}

// EducationConfig tunes extraction for the university paper feed.
var EducationConfig = TextConfig{
	MaxLen:   250,
	MinLen:   20,
	Fallback: "Read the full article in the paper.",
	Boilerplate: []string{
		"This article originally appeared in",
	},
}

// Articles extracts plain-text article records using the given config.
// Items without any usable title are skipped; everything else defaults to the
// field's zero value.
func Articles(items []*feedxml.Item, cfg TextConfig) []domain.Record {
	records := make([]domain.Record, 0, len(items))
	for i, item := range items {
		rec, ok := safeRecord(func() (domain.Record, bool) {
			title := strings.TrimSpace(item.Title())
			if title == "" {
				return nil, false
			}

			frag := item.HTML()
			body := articleBody(collapseText(frag), cfg)

			return domain.Article{
				ID:        recordID(item, i),
				Title:     title,
				Body:      body,
				Link:      item.Link(),
				ImageURL:  firstImage(frag),
				Published: item.Published(),
				Author:    item.Author(),
			}, true
		})
		if ok {
			records = append(records, rec)
		}
	}
	return records
}

// articleBody applies boilerplate stripping, the length cap and the
// minimum-length fallback to already-flattened text.
func articleBody(text string, cfg TextConfig) string {
	for _, phrase := range cfg.Boilerplate {
		if i := strings.Index(text, phrase); i >= 0 {
			text = strings.TrimSpace(text[:i])
		}
	}
	if len([]rune(text)) < cfg.MinLen {
		return cfg.Fallback
	}
	return truncate(text, cfg.MaxLen)
}
