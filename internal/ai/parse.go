// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ai

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/citeworks/citation-engine/pkg/types"
)

// fencedJSONPattern matches a ```json fenced block and captures its body.
var fencedJSONPattern = regexp.MustCompile("(?s)```json\\s*(.+?)\\s*```")

// ParseMetadata scans a model response for a metadata JSON object. It tries,
// in order: a ```json fenced block, the first balanced {...} span, and the
// raw text. Model output is best-effort by nature, so a response that yields
// no fields reports ok=false instead of an error.
func ParseMetadata(response string) (m types.Metadata, ok bool) {
	for _, candidate := range jsonCandidates(response) {
		var parsed types.Metadata
		if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
			continue
		}
		parsed.Source = ""
		if !parsed.IsZero() {
			return parsed, true
		}
	}
	return types.Metadata{}, false
}

// jsonCandidates lists the spans of the response worth attempting to parse,
// most specific first.
func jsonCandidates(response string) []string {
	var out []string
	if m := fencedJSONPattern.FindStringSubmatch(response); m != nil {
		out = append(out, m[1])
	}
	if span := firstBraceSpan(response); span != "" {
		out = append(out, span)
	}
	out = append(out, strings.TrimSpace(response))
	return out
}

// firstBraceSpan returns the first balanced {...} span in s, tracking JSON
// string literals so braces inside strings do not end the span.
func firstBraceSpan(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
