// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package meta cleans and reconciles partial metadata records from
// different resolution stages into a single best-known record.
package meta

import (
	"net/url"
	"strings"

	"github.com/citeworks/citation-engine/pkg/types"
)

// Normalize trims every string field and drops values that are empty after
// trimming.
func Normalize(m types.Metadata) types.Metadata {
	return types.Metadata{
		Title:     strings.TrimSpace(m.Title),
		Author:    strings.TrimSpace(m.Author),
		Year:      strings.TrimSpace(m.Year),
		Site:      strings.TrimSpace(m.Site),
		Publisher: strings.TrimSpace(m.Publisher),
		URL:       strings.TrimSpace(m.URL),
		Accessed:  strings.TrimSpace(m.Accessed),
		Source:    m.Source,
	}
}

// Merge overlays incoming onto current. A field is replaced only when the
// incoming value is non-empty after trimming, so later stages refine earlier
// guesses field-by-field without ever discarding known facts. Source is
// overwritten whenever the incoming record specifies one.
func Merge(current, incoming types.Metadata) types.Metadata {
	out := current
	out.Title = pick(current.Title, incoming.Title)
	out.Author = pick(current.Author, incoming.Author)
	out.Year = pick(current.Year, incoming.Year)
	out.Site = pick(current.Site, incoming.Site)
	out.Publisher = pick(current.Publisher, incoming.Publisher)
	out.URL = pick(current.URL, incoming.URL)
	out.Accessed = pick(current.Accessed, incoming.Accessed)
	if incoming.Source != "" {
		out.Source = incoming.Source
	}
	return out
}

func pick(current, incoming string) string {
	if v := strings.TrimSpace(incoming); v != "" {
		return v
	}
	return current
}

// Finalize resolves the two attribution ambiguities a scraped record can
// carry. Origin promotion: when Site is missing or merely echoes the URL's
// hostname, a known Publisher takes its place, and a Publisher that then
// duplicates Site (or the hostname) is cleared. Organizational-author scrub:
// an Author equal to Site, Publisher, or the hostname is treated as
// anonymous. Finalize is idempotent.
func Finalize(m types.Metadata) types.Metadata {
	out := Normalize(m)
	host := Hostname(out.URL)

	siteEchoesHost := out.Site != "" && matchesHost(out.Site, host)
	if (out.Site == "" || siteEchoesHost) && out.Publisher != "" {
		out.Site = out.Publisher
	} else if out.Site == "" {
		out.Site = host
	}
	if out.Publisher != "" &&
		(strings.EqualFold(out.Publisher, out.Site) || matchesHost(out.Publisher, host)) {
		out.Publisher = ""
	}

	if out.Author != "" {
		if strings.EqualFold(out.Author, out.Site) ||
			(out.Publisher != "" && strings.EqualFold(out.Author, out.Publisher)) ||
			matchesHost(out.Author, host) {
			out.Author = ""
		}
	}
	return out
}

// Sufficient reports whether the record lets the resolution pipeline stop:
// a non-empty title plus at least one of site, publisher, or URL. The
// stricter variant additionally requires an author.
func Sufficient(m types.Metadata, requireAuthor bool) bool {
	if strings.TrimSpace(m.Title) == "" {
		return false
	}
	if strings.TrimSpace(m.Site) == "" &&
		strings.TrimSpace(m.Publisher) == "" &&
		strings.TrimSpace(m.URL) == "" {
		return false
	}
	if requireAuthor && strings.TrimSpace(m.Author) == "" {
		return false
	}
	return true
}

// Hostname extracts the hostname of rawURL with any leading "www." stripped.
// Returns "" when the URL does not parse.
func Hostname(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	host := u.Hostname()
	return strings.TrimPrefix(host, "www.")
}

// matchesHost reports whether v equals the hostname, with or without the
// "www." prefix, case-insensitively.
func matchesHost(v, host string) bool {
	if host == "" {
		return false
	}
	return strings.EqualFold(v, host) || strings.EqualFold(v, "www."+host)
}
