package page

import (
	"testing"

	"github.com/citeworks/citation-engine/internal/meta"
	"github.com/citeworks/citation-engine/pkg/types"
)

const metaTagPage = `<!DOCTYPE html>
<html><head>
<title>Fallback Title - Example</title>
<meta property="og:title" content="OG Title">
<meta name="author" content="Jane Doe">
<meta name="publisher" content="Acme Press">
<meta property="og:site_name" content="Example Blog">
<meta property="article:published_time" content="2021-05-01T10:00:00Z">
</head><body><h1>Heading One</h1></body></html>`

func TestExtractMetaTags(t *testing.T) {
	got := Extract(metaTagPage, "https://www.example.com/post")
	want := types.Metadata{
		Title:     "OG Title",
		Author:    "Jane Doe",
		Publisher: "Acme Press",
		Site:      "Example Blog",
		Year:      "2021-05-01T10:00:00Z",
		URL:       "https://www.example.com/post",
	}
	if got != want {
		t.Errorf("Extract = %+v, want %+v", got, want)
	}
}

func TestExtractTitlePriority(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			"og:title wins",
			`<head><meta property="og:title" content="OG"><title>Doc</title></head><body><h1>H1</h1></body>`,
			"OG",
		},
		{
			"citation_title before document title",
			`<head><meta name="citation_title" content="Citation"><title>Doc</title></head>`,
			"Citation",
		},
		{
			"document title before h1",
			`<head><title>Doc</title></head><body><h1>H1</h1></body>`,
			"Doc",
		},
		{
			"h1 as last resort",
			`<body><h1>H1</h1></body>`,
			"H1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(tt.html, "https://example.com"); got.Title != tt.want {
				t.Errorf("Title = %q, want %q", got.Title, tt.want)
			}
		})
	}
}

func TestExtractSiteFallsBackToHostname(t *testing.T) {
	got := Extract(`<body><p>nothing</p></body>`, "https://www.example.com/a")
	if got.Site != "example.com" {
		t.Errorf("Site = %q, want %q", got.Site, "example.com")
	}
}

func TestExtractYearFromTimeElement(t *testing.T) {
	got := Extract(`<body><time datetime="2020-03-14">March 14</time></body>`, "https://example.com")
	if got.Year != "2020-03-14" {
		t.Errorf("Year = %q, want %q", got.Year, "2020-03-14")
	}
}

// A page whose only signal is og:site_name is not sufficient on its own,
// so the pipeline must continue past it.
func TestSiteOnlyPageInsufficient(t *testing.T) {
	got := Extract(`<head><meta property="og:site_name" content="Example.com"></head>`, "https://example.com/a")
	if got.Title != "" {
		t.Fatalf("Title = %q, want empty", got.Title)
	}
	if meta.Sufficient(got, false) {
		t.Error("site-only candidate should not be sufficient")
	}
}

const jsonLDPage = `<html><head>
<title>Meta Title</title>
<meta name="author" content="Meta Author">
<script type="application/ld+json">
{
  "@context": "https://schema.org",
  "@type": "NewsArticle",
  "headline": "LD Headline",
  "author": [{"@type": "Person", "name": "Jane Doe"}, "John Smith"],
  "publisher": {"@type": "Organization", "name": "Acme Press"},
  "isPartOf": {"name": "Example Blog"},
  "datePublished": "2021-05-01"
}
</script>
</head></html>`

func TestExtractJSONLDWinsOverMetaTags(t *testing.T) {
	got := Extract(jsonLDPage, "https://example.com/a")
	if got.Title != "LD Headline" {
		t.Errorf("Title = %q, want JSON-LD headline", got.Title)
	}
	if got.Author != "Jane Doe; John Smith" {
		t.Errorf("Author = %q, want joined JSON-LD authors", got.Author)
	}
	if got.Publisher != "Acme Press" {
		t.Errorf("Publisher = %q, want %q", got.Publisher, "Acme Press")
	}
	if got.Year != "2021-05-01" {
		t.Errorf("Year = %q, want %q", got.Year, "2021-05-01")
	}
}

func TestExtractJSONLDGraph(t *testing.T) {
	page := `<script type="application/ld+json">
{"@graph": [
  {"@type": "BreadcrumbList", "name": "crumbs"},
  {"@type": ["WebPage", "CreativeWork"], "name": "Graph Page", "datePublished": "2019"}
]}
</script>`
	got := Extract(page, "https://example.com")
	if got.Title != "Graph Page" {
		t.Errorf("Title = %q, want %q", got.Title, "Graph Page")
	}
	if got.Year != "2019" {
		t.Errorf("Year = %q, want %q", got.Year, "2019")
	}
}

func TestExtractMalformedJSONLDSkipped(t *testing.T) {
	page := `<head><title>Doc</title>
<script type="application/ld+json">{not json at all</script>
<script type="application/ld+json">{"@type": "Article", "headline": "Good Block"}</script>
</head>`
	got := Extract(page, "https://example.com")
	if got.Title != "Good Block" {
		t.Errorf("Title = %q, want the well-formed block to win", got.Title)
	}
}

func TestExtractNonCitableJSONLDIgnored(t *testing.T) {
	page := `<head><title>Doc Title</title>
<script type="application/ld+json">{"@type": "Product", "name": "Widget"}</script>
</head>`
	got := Extract(page, "https://example.com")
	if got.Title != "Doc Title" {
		t.Errorf("Title = %q, want meta-tag title", got.Title)
	}
}
