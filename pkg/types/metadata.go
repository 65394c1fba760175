// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Source records where a Metadata record's facts came from.
type Source string

const (
	// SourceManual marks fields entered by the user.
	SourceManual Source = "manual"

	// SourceResolved marks fields extracted from the fetched page itself.
	SourceResolved Source = "resolved"

	// SourceAIResolved marks fields recovered by the AI-assisted stage.
	SourceAIResolved Source = "ai-resolved"
)

// Metadata holds the best current knowledge about one citable work.
// Every bibliographic field is an optional string. Later pipeline stages
// refine a record by merging over it field-by-field; empty incoming values
// never clobber known ones (see internal/meta).
type Metadata struct {
	// Title is the work's title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Author is the raw author field, possibly several names separated
	// by ";", "and", or "&". Split at format time, never stored split.
	Author string `json:"author,omitempty" yaml:"author,omitempty"`

	// Year is a raw date-ish string: an ISO date, a bare year, or free text.
	Year string `json:"year,omitempty" yaml:"year,omitempty"`

	// Site is the publishing site or container title.
	Site string `json:"site,omitempty" yaml:"site,omitempty"`

	// Publisher is the publishing organization, when distinct from Site.
	Publisher string `json:"publisher,omitempty" yaml:"publisher,omitempty"`

	// URL is the canonical address of the work.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Accessed is the ISO YYYY-MM-DD date the user pulled the citation.
	Accessed string `json:"accessed,omitempty" yaml:"accessed,omitempty"`

	// Source is the provenance tag for the record as a whole.
	Source Source `json:"source" yaml:"source"`
}

// IsZero reports whether no bibliographic field is set. Source alone does
// not make a record non-zero.
func (m Metadata) IsZero() bool {
	return m.Title == "" && m.Author == "" && m.Year == "" &&
		m.Site == "" && m.Publisher == "" && m.URL == "" && m.Accessed == ""
}
