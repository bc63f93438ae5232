// ABOUTME: Item envelope over a single feed item/entry node
// ABOUTME: Field lookups vary by dialect; absent fields read as empty strings

package feedxml

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/xmlquery"
)

// Item wraps one item (RSS) or entry (Atom) node. All accessors return the
// empty string when the underlying tag is absent; absence is never fatal.
type Item struct {
	node *xmlquery.Node
	kind Kind
}

// Title returns the item title.
func (it *Item) Title() string {
	return it.childText("title")
}

// Link returns the item's permalink. RSS carries it as element text, Atom as
// the href attribute of a link element.
func (it *Item) Link() string {
	if it.kind == KindAtom {
		if n := it.child("link"); n != nil {
			if href := n.SelectAttr("href"); href != "" {
				return strings.TrimSpace(href)
			}
		}
	}
	return it.childText("link")
}

// Published returns the raw publication timestamp string.
func (it *Item) Published() string {
	if it.kind == KindAtom {
		if s := it.childText("published"); s != "" {
			return s
		}
		return it.childText("updated")
	}
	return it.childText("pubDate")
}

// GUID returns the source-provided identifier, if any.
func (it *Item) GUID() string {
	if it.kind == KindAtom {
		return it.childText("id")
	}
	return it.childText("guid")
}

// Content returns the rich content field: description for RSS, content for
// Atom. Feeds carry HTML fragments inside CDATA here.
func (it *Item) Content() string {
	if it.kind == KindAtom {
		if s := it.childText("content"); s != "" {
			return s
		}
		return it.childText("summary")
	}
	return it.childText("description")
}

// Author returns the structured author field, if present. Atom nests the name
// under an author element; RSS feeds use author or dc:creator.
func (it *Item) Author() string {
	if it.kind == KindAtom {
		if a := it.child("author"); a != nil {
			if n := childElement(a, "name"); n != nil {
				return strings.TrimSpace(n.InnerText())
			}
			return strings.TrimSpace(a.InnerText())
		}
		return ""
	}
	if s := it.childText("author"); s != "" {
		return s
	}
	return it.childText("creator")
}

// Categories returns all category tag values on the item.
func (it *Item) Categories() []string {
	var cats []string
	for c := it.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && localName(c.Data) == "category" {
			text := strings.TrimSpace(c.InnerText())
			if text == "" {
				// Atom categories carry the value in the term attribute.
				text = strings.TrimSpace(c.SelectAttr("term"))
			}
			if text != "" {
				cats = append(cats, text)
			}
		}
	}
	return cats
}

// Raw returns the serialized item markup, used by regex-chain extraction
// strategies that look at the whole item rather than structured fields.
func (it *Item) Raw() string {
	return it.node.OutputXML(true)
}

// HTML parses the item's content field as an embedded HTML fragment.
// Returns nil when the content is empty or unparseable.
func (it *Item) HTML() *goquery.Document {
	content := it.Content()
	if strings.TrimSpace(content) == "" {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil
	}
	return doc
}

// child returns the first child element with the given local name.
func (it *Item) child(tag string) *xmlquery.Node {
	return childElement(it.node, tag)
}

// childText returns the trimmed text of the first matching child element.
func (it *Item) childText(tag string) string {
	n := it.child(tag)
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.InnerText())
}

func childElement(parent *xmlquery.Node, tag string) *xmlquery.Node {
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && localName(c.Data) == tag {
			return c
		}
	}
	return nil
}
