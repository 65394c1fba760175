// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ai talks to a generative text-completion service and recovers
// structured metadata from its free-text responses.
package ai

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/citeworks/citation-engine/internal/httputil"
	"github.com/citeworks/citation-engine/pkg/types"
)

// maxResponseBytes bounds how much of a completion response is read.
const maxResponseBytes = 1 << 20

// Backend abstracts the generative text service so tests can supply a mock.
type Backend interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// TextBackend calls a completion endpoint that accepts a URL-encoded prompt
// and returns plain text. The response is expected, but not guaranteed, to
// contain JSON; parsing it is the caller's problem (see ParseMetadata).
type TextBackend struct {
	Config    types.AIConfig
	UserAgent string
	Client    *http.Client
}

// Complete sends the prompt and returns the raw response text.
func (b *TextBackend) Complete(ctx context.Context, prompt string) (string, error) {
	if b.Config.Endpoint == "" {
		return "", fmt.Errorf("no completion endpoint configured")
	}

	query := url.Values{}
	query.Set("prompt", prompt)
	if b.Config.Model != "" {
		query.Set("model", b.Config.Model)
	}
	reqURL := b.Config.Endpoint + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	if b.UserAgent != "" {
		req.Header.Set("User-Agent", b.UserAgent)
	}
	if b.Config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+b.Config.APIKey)
	}

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, b.Config.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion endpoint returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("reading completion response: %w", err)
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return "", fmt.Errorf("completion endpoint returned an empty response")
	}
	return text, nil
}
