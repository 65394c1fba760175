// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"
)

// Style identifies a citation style grammar.
type Style string

const (
	StyleAPA7      Style = "apa7"
	StyleMLA9      Style = "mla9"
	StyleIEEE      Style = "ieee"
	StyleChicago17 Style = "chicago17"
)

// Styles lists the supported styles in display order.
func Styles() []Style {
	return []Style{StyleAPA7, StyleMLA9, StyleIEEE, StyleChicago17}
}

// ParseStyle validates a style key from user input.
func ParseStyle(s string) (Style, error) {
	for _, style := range Styles() {
		if string(style) == s {
			return style, nil
		}
	}
	return "", fmt.Errorf("unknown citation style %q (supported: apa7, mla9, ieee, chicago17)", s)
}

// Citation is a saved, formatted citation. The metadata record is retained
// alongside the rendered text so the citation can later be edited or
// re-resolved with the AI stage.
type Citation struct {
	// ID is the store-assigned identifier.
	ID int64 `json:"id" yaml:"id"`

	// Style is the style key the text was rendered with.
	Style Style `json:"style" yaml:"style"`

	// Text is the plain-text rendering.
	Text string `json:"text" yaml:"text"`

	// Meta is the metadata record the text was rendered from.
	Meta Metadata `json:"meta" yaml:"meta"`

	// CreatedAt is when the citation was first saved.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// UpdatedAt is when the citation was last edited or re-resolved.
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}
