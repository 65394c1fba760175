// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cite renders a metadata record into a citation string following
// one of the supported style grammars, as plain text and markup-safe HTML in
// parallel.
package cite

import (
	"fmt"
	"html"
	"strings"

	"github.com/citeworks/citation-engine/internal/names"
	"github.com/citeworks/citation-engine/pkg/types"
)

// untitledFallback is the display title of last resort. A result equal to it
// with no URL means the caller must collect the facts manually.
const untitledFallback = "Untitled work"

// Result holds the parallel renderings of one citation.
type Result struct {
	Text string
	HTML string
}

// Format renders the record in the given style. It never returns an empty
// result: when every fragment is missing the bare URL or display title is
// used.
func Format(m types.Metadata, style types.Style) Result {
	in := newInput(m)

	var frags []fragment
	switch style {
	case types.StyleMLA9:
		frags = mla9(in)
	case types.StyleIEEE:
		frags = ieee(in)
	case types.StyleChicago17:
		frags = chicago17(in)
	default:
		frags = apa7(in)
	}

	if len(frags) == 0 {
		fallback := m.URL
		if fallback == "" {
			fallback = in.title
		}
		return Result{Text: fallback, HTML: html.EscapeString(fallback)}
	}

	texts := make([]string, len(frags))
	htmls := make([]string, len(frags))
	for i, f := range frags {
		texts[i] = f.text
		htmls[i] = f.html
	}
	return Result{
		Text: strings.Join(texts, " "),
		HTML: strings.Join(htmls, " "),
	}
}

// input is the shared preprocessing every style starts from.
type input struct {
	authors  []string
	title    string
	site     string
	pub      string
	url      string
	year     string
	accessed string
}

func newInput(m types.Metadata) input {
	title := firstNonEmpty(m.Title, m.Site, m.Publisher, m.URL, untitledFallback)
	return input{
		authors:  names.Parse(m.Author),
		title:    title,
		site:     strings.TrimSpace(m.Site),
		pub:      strings.TrimSpace(m.Publisher),
		url:      strings.TrimSpace(m.URL),
		year:     displayDate(m.Year),
		accessed: displayDate(m.Accessed),
	}
}

// fragment is one optional piece of a citation with parallel renderings.
type fragment struct {
	text string
	html string
}

// frags appends a plain fragment whose HTML form is just the escaped text.
func frags(list []fragment, text string) []fragment {
	if text == "" {
		return list
	}
	return append(list, fragment{text: text, html: html.EscapeString(text)})
}

func fragRich(list []fragment, text, htmlText string) []fragment {
	if text == "" {
		return list
	}
	return append(list, fragment{text: text, html: htmlText})
}

// apa7: Author, Initials. (Year). Title. Site. Publisher. Retrieved <accessed> from <url>.
func apa7(in input) []fragment {
	var out []fragment
	out = frags(out, withPeriod(names.JoinAPA(in.authors)))
	if in.year != "" {
		out = frags(out, "("+in.year+").")
	}
	out = fragRich(out, in.title+".", "<i>"+html.EscapeString(in.title)+"</i>.")
	out = frags(out, withPeriod(in.site))
	out = frags(out, withPeriod(in.pub))
	if in.url != "" {
		if in.accessed != "" {
			out = fragRich(out,
				fmt.Sprintf("Retrieved %s from %s.", in.accessed, in.url),
				fmt.Sprintf("Retrieved %s from %s.", html.EscapeString(in.accessed), anchor(in.url)))
		} else {
			out = fragRich(out,
				fmt.Sprintf("Retrieved from %s.", in.url),
				fmt.Sprintf("Retrieved from %s.", anchor(in.url)))
		}
	}
	return out
}

// mla9: Author. "Title." Site, Publisher, Year, url. Accessed <accessed>.
func mla9(in input) []fragment {
	var out []fragment
	out = frags(out, withPeriod(names.JoinMLA(in.authors)))
	out = fragRich(out, `"`+in.title+`."`, "&#8220;"+html.EscapeString(in.title)+".&#8221;")
	out = frags(out, withComma(in.site))
	out = frags(out, withComma(in.pub))
	out = frags(out, withComma(in.year))
	if in.url != "" {
		out = fragRich(out, in.url+".", anchor(in.url)+".")
	}
	if in.accessed != "" {
		out = frags(out, "Accessed "+in.accessed+".")
	}
	return out
}

// ieee: Author, "Title," Site, Year. [Online]. Available: <url>. Accessed: <accessed>.
func ieee(in input) []fragment {
	var out []fragment
	out = frags(out, withComma(names.JoinIEEE(in.authors)))
	out = fragRich(out, `"`+in.title+`,"`, "&#8220;"+html.EscapeString(in.title)+",&#8221;")
	out = frags(out, withComma(in.site))
	out = frags(out, withPeriod(in.year))
	if in.url != "" {
		out = frags(out, "[Online].")
		out = fragRich(out, "Available: "+in.url+".", "Available: "+anchor(in.url)+".")
	}
	if in.accessed != "" {
		out = frags(out, "Accessed: "+in.accessed+".")
	}
	return out
}

// chicago17: Author, "Title," Site. Year. Publisher, url Accessed <accessed>.
func chicago17(in input) []fragment {
	var out []fragment
	out = frags(out, withComma(names.JoinChicago(in.authors)))
	out = fragRich(out, `"`+in.title+`,"`, "&#8220;"+html.EscapeString(in.title)+",&#8221;")
	out = frags(out, withPeriod(in.site))
	out = frags(out, withPeriod(in.year))
	out = frags(out, withComma(in.pub))
	if in.url != "" {
		if in.accessed != "" {
			out = fragRich(out, in.url, anchor(in.url))
		} else {
			out = fragRich(out, in.url+".", anchor(in.url)+".")
		}
	}
	if in.accessed != "" {
		out = frags(out, "Accessed "+in.accessed+".")
	}
	return out
}

func anchor(url string) string {
	escaped := html.EscapeString(url)
	return fmt.Sprintf(`<a href="%s">%s</a>`, escaped, escaped)
}

func withPeriod(s string) string {
	if s == "" || strings.HasSuffix(s, ".") {
		return s
	}
	return s + "."
}

func withComma(s string) string {
	if s == "" || strings.HasSuffix(s, ",") {
		return s
	}
	return s + ","
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
