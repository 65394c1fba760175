// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package page

import (
	"encoding/json"
	"strings"

	"github.com/citeworks/citation-engine/pkg/types"
)

// citableTypes is the set of JSON-LD @type values worth mining for
// bibliographic fields, lowercased for comparison.
var citableTypes = map[string]bool{
	"article":      true,
	"newsarticle":  true,
	"blogposting":  true,
	"webpage":      true,
	"creativework": true,
}

// extractJSONLD scans the page's JSON-LD blocks for the first node whose
// @type intersects citableTypes and pulls bibliographic fields from it.
// Malformed blocks are skipped; ok is false when no block yields a node.
func extractJSONLD(blocks []string) (m types.Metadata, ok bool) {
	for _, block := range blocks {
		var parsed any
		if err := json.Unmarshal([]byte(block), &parsed); err != nil {
			continue
		}
		for _, node := range flattenNodes(parsed) {
			if !isCitableType(node["@type"]) {
				continue
			}
			return nodeMetadata(node), true
		}
	}
	return types.Metadata{}, false
}

// flattenNodes collects candidate nodes from a parsed block: a top-level
// object, a top-level array, and the contents of any @graph nesting.
func flattenNodes(parsed any) []map[string]any {
	var nodes []map[string]any
	switch v := parsed.(type) {
	case map[string]any:
		nodes = append(nodes, v)
		if graph, isList := v["@graph"].([]any); isList {
			for _, g := range graph {
				if node, isMap := g.(map[string]any); isMap {
					nodes = append(nodes, node)
				}
			}
		}
	case []any:
		for _, item := range v {
			nodes = append(nodes, flattenNodes(item)...)
		}
	}
	return nodes
}

// isCitableType reports whether a node's @type (string or list of strings)
// intersects citableTypes, case-insensitively.
func isCitableType(typ any) bool {
	switch v := typ.(type) {
	case string:
		return citableTypes[strings.ToLower(v)]
	case []any:
		for _, item := range v {
			if s, isString := item.(string); isString && citableTypes[strings.ToLower(s)] {
				return true
			}
		}
	}
	return false
}

// nodeMetadata pulls bibliographic fields from one matching node.
func nodeMetadata(node map[string]any) types.Metadata {
	m := types.Metadata{
		Title:     firstNonEmpty(str(node["headline"]), str(node["name"])),
		Author:    joinNames(node["author"], node["creator"]),
		Publisher: orgName(node["publisher"]),
		Year:      firstNonEmpty(str(node["datePublished"]), str(node["dateModified"])),
	}
	if part, isMap := node["isPartOf"].(map[string]any); isMap {
		m.Site = str(part["name"])
	}
	return m
}

// joinNames renders author/creator values, which may each be a string, an
// object with a name, or an array of either, as a single ";"-joined field.
func joinNames(vals ...any) string {
	var out []string
	var collect func(any)
	collect = func(v any) {
		switch t := v.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				out = append(out, s)
			}
		case map[string]any:
			collect(t["name"])
		case []any:
			for _, item := range t {
				collect(item)
			}
		}
	}
	for _, v := range vals {
		if len(out) > 0 {
			break
		}
		collect(v)
	}
	return strings.Join(out, "; ")
}

// orgName renders a publisher value, which may be a string or an object
// carrying name or legalName.
func orgName(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]any:
		return firstNonEmpty(str(t["name"]), str(t["legalName"]))
	}
	return ""
}

func str(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}
