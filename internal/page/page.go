// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package page parses fetched HTML into a raw metadata candidate. Meta tags
// supply the baseline; JSON-LD structured data, when present, is merged over
// it as the higher-fidelity source.
package page

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/citeworks/citation-engine/internal/meta"
	"github.com/citeworks/citation-engine/pkg/types"
)

// document collects the signals one parse pass gathers from the HTML tree.
type document struct {
	metaTags     map[string]string
	title        string
	firstH1      string
	timeDatetime string
	jsonLD       []string
}

// Extract parses htmlText and assembles a metadata candidate for the page at
// pageURL. The candidate is normalized but not finalized; the caller decides
// when to run origin promotion. An unparseable document yields a candidate
// that carries only the URL.
func Extract(htmlText, pageURL string) types.Metadata {
	candidate := types.Metadata{URL: strings.TrimSpace(pageURL)}

	root, err := html.Parse(strings.NewReader(htmlText))
	if err != nil {
		return candidate
	}

	doc := &document{metaTags: make(map[string]string)}
	doc.walk(root)

	candidate.Title = firstNonEmpty(
		doc.tag("og:title"),
		doc.tag("citation_title"),
		doc.tag("twitter:title"),
		doc.title,
		doc.firstH1,
	)
	candidate.Author = firstNonEmpty(
		doc.tag("author"),
		doc.tag("article:author"),
		doc.tag("citation_author"),
		doc.tag("dc.creator"),
	)
	candidate.Publisher = firstNonEmpty(
		doc.tag("publisher"),
		doc.tag("article:publisher"),
		doc.tag("citation_publisher"),
		doc.tag("application-name"),
	)
	candidate.Site = firstNonEmpty(
		doc.tag("og:site_name"),
		doc.tag("application-name"),
		meta.Hostname(pageURL),
	)
	candidate.Year = firstNonEmpty(
		doc.tag("article:published_time"),
		doc.tag("pubdate"),
		doc.tag("date"),
		doc.tag("dcterms.created"),
		doc.timeDatetime,
	)

	candidate = meta.Normalize(candidate)
	if ld, ok := extractJSONLD(doc.jsonLD); ok {
		candidate = meta.Merge(candidate, meta.Normalize(ld))
	}
	return candidate
}

// walk traverses the tree once, recording meta tags, the document title,
// the first <h1>, the first <time datetime>, and JSON-LD script bodies.
func (d *document) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "meta":
			d.recordMeta(n)
		case "title":
			if d.title == "" {
				d.title = nodeText(n)
			}
		case "h1":
			if d.firstH1 == "" {
				d.firstH1 = nodeText(n)
			}
		case "time":
			if d.timeDatetime == "" {
				d.timeDatetime = attr(n, "datetime")
			}
		case "script":
			if strings.EqualFold(attr(n, "type"), "application/ld+json") {
				if body := nodeText(n); body != "" {
					d.jsonLD = append(d.jsonLD, body)
				}
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.walk(c)
	}
}

// recordMeta stores a meta tag keyed by its name or property attribute.
// The first occurrence of a key wins.
func (d *document) recordMeta(n *html.Node) {
	key := strings.ToLower(firstNonEmpty(attr(n, "name"), attr(n, "property"), attr(n, "itemprop")))
	content := strings.TrimSpace(attr(n, "content"))
	if key == "" || content == "" {
		return
	}
	if _, seen := d.metaTags[key]; !seen {
		d.metaTags[key] = content
	}
}

func (d *document) tag(key string) string {
	return d.metaTags[key]
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// nodeText concatenates the text content beneath a node.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(n)
	return strings.TrimSpace(b.String())
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
