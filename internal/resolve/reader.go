// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"regexp"
	"strings"
)

var (
	fencePattern      = regexp.MustCompile("(?s)```.*?```")
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Sanitize prepares reader-mirror output for the extraction prompt: fenced
// code blocks and leftover HTML tags are stripped, whitespace is collapsed.
// Code blocks go first so tags inside them do not survive the tag pass.
func Sanitize(text string) string {
	text = fencePattern.ReplaceAllString(text, " ")
	text = tagPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Chunk bounds the text sent per AI request. Text within the limit goes out
// as a single chunk; anything longer is reduced to the first and last limit
// runes, which is where pages keep their mastheads and bylines. Never more
// than two chunks.
func Chunk(text string, limit int) []string {
	if limit <= 0 || len(text) <= limit {
		return []string{text}
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}
	head := strings.TrimSpace(string(runes[:limit]))
	tail := strings.TrimSpace(string(runes[len(runes)-limit:]))
	return []string{head, tail}
}
