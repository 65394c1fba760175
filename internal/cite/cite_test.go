package cite

import (
	"strings"
	"testing"

	"github.com/citeworks/citation-engine/pkg/types"
)

// sampleRecord matches the reference record used across the style checks.
func sampleRecord() types.Metadata {
	return types.Metadata{
		Title:    "Example",
		Site:     "Example.com",
		Year:     "2021",
		URL:      "https://example.com/a",
		Accessed: "2024-05-01",
		Author:   "Jane Doe",
		Source:   types.SourceResolved,
	}
}

func TestFormatAPA7(t *testing.T) {
	got := Format(sampleRecord(), types.StyleAPA7)
	want := "Doe, J. (2021). Example. Example.com. Retrieved May 1, 2024 from https://example.com/a."
	if got.Text != want {
		t.Errorf("Text = %q\nwant   %q", got.Text, want)
	}
	if !strings.Contains(got.HTML, "<i>Example</i>.") {
		t.Errorf("HTML = %q, want italicized title", got.HTML)
	}
	if !strings.Contains(got.HTML, `<a href="https://example.com/a">https://example.com/a</a>`) {
		t.Errorf("HTML = %q, want anchored URL", got.HTML)
	}
}

func TestFormatIEEE(t *testing.T) {
	got := Format(sampleRecord(), types.StyleIEEE)
	want := `J. Doe, "Example," Example.com, 2021. [Online]. Available: https://example.com/a. Accessed: May 1, 2024.`
	if got.Text != want {
		t.Errorf("Text = %q\nwant   %q", got.Text, want)
	}
	if !strings.Contains(got.HTML, "&#8220;Example,&#8221;") {
		t.Errorf("HTML = %q, want smart-quoted title", got.HTML)
	}
}

func TestFormatMLA9(t *testing.T) {
	got := Format(sampleRecord(), types.StyleMLA9)
	want := `Doe, Jane. "Example." Example.com, 2021, https://example.com/a. Accessed May 1, 2024.`
	if got.Text != want {
		t.Errorf("Text = %q\nwant   %q", got.Text, want)
	}
}

func TestFormatMLAEtAl(t *testing.T) {
	m := sampleRecord()
	m.Author = "Jane Doe; John Smith; Ann Lee"
	got := Format(m, types.StyleMLA9)
	if !strings.HasPrefix(got.Text, "Doe, Jane, et al.") {
		t.Errorf("Text = %q, want et-al author list", got.Text)
	}
}

func TestFormatChicago17(t *testing.T) {
	m := sampleRecord()
	m.Publisher = "Acme Press"
	got := Format(m, types.StyleChicago17)
	want := `Doe, Jane, "Example," Example.com. 2021. Acme Press, https://example.com/a Accessed May 1, 2024.`
	if got.Text != want {
		t.Errorf("Text = %q\nwant   %q", got.Text, want)
	}
}

func TestFormatTitleFallbackChain(t *testing.T) {
	tests := []struct {
		name string
		in   types.Metadata
		want string
	}{
		{"site stands in for title", types.Metadata{Site: "Example.com"}, "Example.com"},
		{"publisher next", types.Metadata{Publisher: "Acme Press"}, "Acme Press"},
		{"url next", types.Metadata{URL: "https://example.com"}, "https://example.com"},
		{"untitled last", types.Metadata{}, untitledFallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.in, types.StyleAPA7)
			if !strings.Contains(got.Text, tt.want) {
				t.Errorf("Text = %q, want containing %q", got.Text, tt.want)
			}
			if got.Text == "" {
				t.Error("Format returned an empty string")
			}
		})
	}
}

func TestFormatNeverEmptyAcrossStyles(t *testing.T) {
	records := []types.Metadata{
		{},
		{URL: "https://example.com"},
		{Title: "Only a Title"},
		{Author: "Jane Doe"},
	}
	for _, style := range types.Styles() {
		for _, m := range records {
			got := Format(m, style)
			if strings.TrimSpace(got.Text) == "" {
				t.Errorf("style %s, record %+v: empty text", style, m)
			}
			if strings.TrimSpace(got.HTML) == "" {
				t.Errorf("style %s, record %+v: empty html", style, m)
			}
		}
	}
}

func TestFormatHTMLEscapesFields(t *testing.T) {
	m := types.Metadata{Title: `Tom & Jerry <3`, URL: "https://example.com/?a=1&b=2"}
	got := Format(m, types.StyleAPA7)
	if strings.Contains(got.HTML, "<3") {
		t.Errorf("HTML = %q, title not escaped", got.HTML)
	}
	if !strings.Contains(got.HTML, "Tom &amp; Jerry") {
		t.Errorf("HTML = %q, want escaped ampersand", got.HTML)
	}
	if !strings.Contains(got.HTML, `href="https://example.com/?a=1&amp;b=2"`) {
		t.Errorf("HTML = %q, want escaped href", got.HTML)
	}
}

func TestDisplayDate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2024-05-01", "May 1, 2024"},
		{"2021-05-01T10:00:00Z", "May 1, 2021"},
		{"2021", "2021"},
		{"circa 1900", "circa 1900"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := displayDate(tt.in); got != tt.want {
			t.Errorf("displayDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMissingAuthor(t *testing.T) {
	m := sampleRecord()
	m.Author = ""
	got := Format(m, types.StyleAPA7)
	want := "(2021). Example. Example.com. Retrieved May 1, 2024 from https://example.com/a."
	if got.Text != want {
		t.Errorf("Text = %q\nwant   %q", got.Text, want)
	}
}
