// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package names splits free-text author fields into individual names and
// renders style-specific author lists.
package names

import (
	"regexp"
	"strings"
)

// Name holds the decomposed parts of one personal name.
type Name struct {
	First string
	Last  string
}

// separatorPattern matches the author delimiters ";", "&", and the
// whole word "and" (case-insensitive).
var separatorPattern = regexp.MustCompile(`(?i);|&|\band\b`)

// Parse splits a free-text author field into individual name strings.
// Empty entries are dropped; order is preserved.
func Parse(raw string) []string {
	var out []string
	for _, part := range separatorPattern.Split(raw, -1) {
		if name := strings.TrimSpace(part); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// Decompose splits a single name into first and last parts. A name with a
// comma is treated as "Last, First"; otherwise the final whitespace-delimited
// token is the last name. A single-token name has an empty First.
func Decompose(name string) Name {
	name = strings.TrimSpace(name)
	if name == "" {
		return Name{}
	}
	if i := strings.Index(name, ","); i >= 0 {
		return Name{
			Last:  strings.TrimSpace(name[:i]),
			First: strings.TrimSpace(name[i+1:]),
		}
	}
	fields := strings.Fields(name)
	if len(fields) == 1 {
		return Name{Last: fields[0]}
	}
	return Name{
		First: strings.Join(fields[:len(fields)-1], " "),
		Last:  fields[len(fields)-1],
	}
}

// Initials renders a given-name string as spaced initials: "Jane Q" -> "J. Q.".
func Initials(first string) string {
	var out []string
	for _, w := range strings.Fields(first) {
		r := []rune(w)
		out = append(out, strings.ToUpper(string(r[0]))+".")
	}
	return strings.Join(out, " ")
}

// JoinAPA renders an author list in APA style: "Last, F." per author,
// two authors joined by "&", three or more as "A, B & C".
func JoinAPA(authors []string) string {
	parts := make([]string, 0, len(authors))
	for _, a := range authors {
		parts = append(parts, apaAuthor(a))
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " & " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " & " + parts[len(parts)-1]
	}
}

func apaAuthor(name string) string {
	d := Decompose(name)
	if d.Last == "" {
		return strings.TrimSpace(name)
	}
	if ini := Initials(d.First); ini != "" {
		return d.Last + ", " + ini
	}
	return d.Last
}

// JoinMLA renders an author list in MLA style: the first author inverted,
// two authors as "A, and B", three or more as "A, et al.".
func JoinMLA(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return invert(authors[0])
	case 2:
		return invert(authors[0]) + ", and " + strings.TrimSpace(authors[1])
	default:
		return invert(authors[0]) + ", et al."
	}
}

// JoinChicago renders an author list in Chicago style. It differs from MLA
// only in the two-author joiner ("A and B", no comma).
func JoinChicago(authors []string) string {
	if len(authors) == 2 {
		return invert(authors[0]) + " and " + strings.TrimSpace(authors[1])
	}
	return JoinMLA(authors)
}

// JoinIEEE renders an author list in IEEE style: "F. Last" per author,
// joined by commas, no inversion.
func JoinIEEE(authors []string) string {
	parts := make([]string, 0, len(authors))
	for _, a := range authors {
		d := Decompose(a)
		if d.Last == "" {
			parts = append(parts, strings.TrimSpace(a))
			continue
		}
		if ini := Initials(d.First); ini != "" {
			parts = append(parts, ini+" "+d.Last)
		} else {
			parts = append(parts, d.Last)
		}
	}
	return strings.Join(parts, ", ")
}

// invert renders a name as "Last, First", degrading to the raw string when
// no usable last name is found.
func invert(name string) string {
	d := Decompose(name)
	if d.Last == "" {
		return strings.TrimSpace(name)
	}
	if d.First == "" {
		return d.Last
	}
	return d.Last + ", " + d.First
}
