// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"strings"
	"time"
	"unicode"
)

// dateLayouts are the formats a scraped date string commonly arrives in.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
	"January 2, 2006",
	"2 January 2006",
}

// displayDate renders a raw date-ish string as "Month D, YYYY". Bare 4-digit
// years pass through unchanged, as does anything no layout matches; scraped
// dates are free text and an unparseable one is still worth printing.
func displayDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || isBareYear(raw) {
		return raw
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return raw
}

func isBareYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
