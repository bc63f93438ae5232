// ABOUTME: Feed document parsing and RSS/Atom format detection over xmlquery
// ABOUTME: Exposes a uniform item envelope regardless of the underlying feed dialect

package feedxml

import (
	"errors"
	"strings"

	"github.com/antchfx/xmlquery"
)

// Kind identifies the detected feed dialect.
type Kind int

const (
	// KindRSS means item nodes were found under the RSS tag name ("item").
	KindRSS Kind = iota
	// KindAtom means item nodes were found under the Atom tag name ("entry").
	KindAtom
)

// ErrNoDocument is returned when the text could not be parsed into a tree.
var ErrNoDocument = errors.New("feed text did not produce a document tree")

// Document is a parsed feed with its detected dialect.
type Document struct {
	root  *xmlquery.Node
	kind  Kind
	items []*Item
}

// Parse parses sanitized feed text into a Document and detects the dialect.
// The caller is expected to run the text through sanitize.FeedText first.
func Parse(text string) (*Document, error) {
	root, err := xmlquery.Parse(strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, ErrNoDocument
	}

	doc := &Document{root: root}
	doc.detectItems()
	return doc, nil
}

// Kind returns the detected feed dialect.
func (d *Document) Kind() Kind { return d.kind }

// Items returns the item/entry envelopes in document order.
func (d *Document) Items() []*Item { return d.items }

// detectItems locates item nodes under the RSS tag name first, then the Atom
// tag name. Each lookup tries an XPath query first and falls back to a manual
// tree walk, which still finds nodes when namespace prefixes defeat the XPath
// match.
func (d *Document) detectItems() {
	for _, probe := range []struct {
		tag  string
		kind Kind
	}{
		{"item", KindRSS},
		{"entry", KindAtom},
	} {
		nodes := xmlquery.Find(d.root, "//"+probe.tag)
		if len(nodes) == 0 {
			nodes = walkByLocalName(d.root, probe.tag)
		}
		if len(nodes) > 0 {
			d.kind = probe.kind
			d.items = make([]*Item, 0, len(nodes))
			for _, n := range nodes {
				d.items = append(d.items, &Item{node: n, kind: probe.kind})
			}
			return
		}
	}
}

// walkByLocalName collects element nodes whose local tag name matches,
// ignoring any namespace prefix.
func walkByLocalName(root *xmlquery.Node, tag string) []*xmlquery.Node {
	var found []*xmlquery.Node

	var walk func(n *xmlquery.Node)
	walk = func(n *xmlquery.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == xmlquery.ElementNode && localName(c.Data) == tag {
				found = append(found, c)
				continue
			}
			walk(c)
		}
	}
	walk(root)

	return found
}

// localName strips a namespace prefix from a tag name.
func localName(tag string) string {
	if i := strings.IndexByte(tag, ':'); i >= 0 {
		return tag[i+1:]
	}
	return tag
}
