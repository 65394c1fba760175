// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve orchestrates the layered metadata resolution pipeline:
// direct page fetch, proxied fetch, then AI-assisted extraction from a
// readable-text mirror. Stages run strictly in order of cost and the
// pipeline stops at the first sufficient record.
package resolve

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/citeworks/citation-engine/internal/ai"
	"github.com/citeworks/citation-engine/internal/httputil"
	"github.com/citeworks/citation-engine/internal/meta"
	"github.com/citeworks/citation-engine/internal/page"
	"github.com/citeworks/citation-engine/pkg/types"
)

// maxPageBytes bounds how much of a fetched page is read.
const maxPageBytes = 4 << 20

// defaultMaxChunkChars bounds the readable text sent per AI request.
const defaultMaxChunkChars = 12000

// maxReaderMirrors caps how many mirror base URLs are tried.
const maxReaderMirrors = 3

// Stage identifies one step of the resolution pipeline.
type Stage int

const (
	StageDirect Stage = iota
	StageProxy
	StageAI
)

func (s Stage) String() string {
	switch s {
	case StageDirect:
		return "direct"
	case StageProxy:
		return "proxy"
	case StageAI:
		return "ai"
	default:
		return "unknown"
	}
}

// ProgressFunc receives live status updates while the pipeline runs.
type ProgressFunc func(stage Stage, message string)

// Result holds the outcome of one resolution run. The pipeline never fails
// outright: an insufficient run still returns the best-effort accumulator,
// tagged for manual completion, with a diagnostic naming what went wrong.
type Result struct {
	// Metadata is the finalized accumulator. Its Source field records the
	// provenance: resolved, ai-resolved, or manual.
	Metadata types.Metadata

	// Stage is the stage that reached sufficiency. Meaningless unless
	// Sufficient is true.
	Stage Stage

	// Sufficient reports whether any stage assembled a sufficient record.
	Sufficient bool

	// Diagnostic is a human-readable account of the stage failures.
	// Empty when Sufficient is true.
	Diagnostic string
}

// Pipeline resolves bibliographic metadata for a URL. A nil Backend or an
// empty mirror list disables the AI stage; the cheaper stages still run.
type Pipeline struct {
	Client   *http.Client
	Backend  ai.Backend
	Config   types.ResolveConfig
	MaxChunk int
	Progress ProgressFunc
}

// Resolve runs the stages in order against rawURL. Failures at any stage are
// recorded and the next stage runs; see Result for the terminal contract.
func (p *Pipeline) Resolve(ctx context.Context, rawURL string) Result {
	target := NormalizeURL(rawURL)
	acc := types.Metadata{URL: target}
	var failures []string

	// Stage 1: fetch the page directly.
	p.report(StageDirect, "fetching page")
	body, err := p.fetchPage(ctx, target)
	if err != nil {
		failures = append(failures, fmt.Sprintf("direct fetch: %v", err))
		p.report(StageDirect, fmt.Sprintf("failed: %v", err))
	} else {
		acc = meta.Merge(acc, page.Extract(body, target))
		if meta.Sufficient(acc, false) {
			return p.finish(acc, StageDirect)
		}
		p.report(StageDirect, "metadata incomplete")
	}

	// Stage 2: fetch the same page through the proxy.
	if p.Config.ProxyBase == "" {
		failures = append(failures, "proxy fetch: no proxy configured")
	} else {
		p.report(StageProxy, "fetching page through proxy")
		body, err := p.fetchPage(ctx, p.proxyURL(target))
		if err != nil {
			failures = append(failures, fmt.Sprintf("proxy fetch: %v", err))
			p.report(StageProxy, fmt.Sprintf("failed: %v", err))
		} else {
			acc = meta.Merge(acc, page.Extract(body, target))
			if meta.Sufficient(acc, false) {
				return p.finish(acc, StageProxy)
			}
			p.report(StageProxy, "metadata incomplete")
		}
	}

	// Stage 3: readable-text mirror plus AI extraction.
	acc, aiFailures := p.runAIStage(ctx, target, acc)
	failures = append(failures, aiFailures...)
	if meta.Sufficient(acc, false) {
		return p.finish(acc, StageAI)
	}

	// Terminal: every stage fell short. Hand back whatever accumulated,
	// labeled for manual completion.
	acc = meta.Finalize(acc)
	acc.Source = types.SourceManual
	return Result{
		Metadata:   acc,
		Sufficient: false,
		Diagnostic: diagnostic(failures),
	}
}

// runAIStage fetches readable text from the mirrors and runs the chunked
// extraction loop. Chunks are sent sequentially and the loop stops early once
// the accumulator is sufficient with an author, so a good first chunk spares
// both the tail request and the endpoint's rate limit.
func (p *Pipeline) runAIStage(ctx context.Context, target string, acc types.Metadata) (types.Metadata, []string) {
	if p.Backend == nil || len(p.Config.ReaderMirrors) == 0 {
		return acc, []string{"ai extraction: not configured"}
	}

	p.report(StageAI, "fetching readable text")
	text, err := p.readableText(ctx, target)
	if err != nil {
		p.report(StageAI, fmt.Sprintf("failed: %v", err))
		return acc, []string{fmt.Sprintf("ai extraction: %v", err)}
	}

	text = Sanitize(text)
	if text == "" {
		return acc, []string{"ai extraction: readable text was empty"}
	}

	var failures []string
	chunks := Chunk(text, p.maxChunkChars())
	for i, chunk := range chunks {
		p.report(StageAI, fmt.Sprintf("extracting with AI (chunk %d/%d)", i+1, len(chunks)))

		prompt, err := ai.ExtractionPrompt(target, chunk)
		if err != nil {
			failures = append(failures, fmt.Sprintf("ai extraction: rendering prompt: %v", err))
			continue
		}
		resp, err := p.Backend.Complete(ctx, prompt)
		if err != nil {
			failures = append(failures, fmt.Sprintf("ai extraction: %v", err))
			continue
		}
		candidate, ok := ai.ParseMetadata(resp)
		if !ok {
			failures = append(failures, "ai extraction: response contained no usable JSON")
			continue
		}

		acc = meta.Merge(acc, meta.Normalize(candidate))
		if meta.Sufficient(acc, true) {
			break
		}
	}
	return acc, failures
}

// finish finalizes the accumulator and stamps its provenance from the stage
// that achieved sufficiency.
func (p *Pipeline) finish(acc types.Metadata, stage Stage) Result {
	acc = meta.Finalize(acc)
	if stage == StageAI {
		acc.Source = types.SourceAIResolved
	} else {
		acc.Source = types.SourceResolved
	}
	p.report(stage, "metadata resolved")
	return Result{Metadata: acc, Stage: stage, Sufficient: true}
}

// fetchPage performs one GET and returns the body as text. Non-OK statuses
// and empty bodies are errors so the caller advances to the next stage.
func (p *Pipeline) fetchPage(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	if p.Config.UserAgent != "" {
		req.Header.Set("User-Agent", p.Config.UserAgent)
	}

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return "", fmt.Errorf("empty response")
	}
	return string(body), nil
}

// readableText tries the configured mirrors in order; the first HTTP 200
// with a body wins.
func (p *Pipeline) readableText(ctx context.Context, target string) (string, error) {
	mirrors := p.Config.ReaderMirrors
	if len(mirrors) > maxReaderMirrors {
		mirrors = mirrors[:maxReaderMirrors]
	}

	var lastErr error
	for _, base := range mirrors {
		text, err := p.fetchPage(ctx, strings.TrimSuffix(base, "/")+"/"+target)
		if err == nil {
			return text, nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("all reader mirrors failed, last error: %w", lastErr)
}

func (p *Pipeline) proxyURL(target string) string {
	return p.Config.ProxyBase + "?url=" + url.QueryEscape(target)
}

func (p *Pipeline) maxChunkChars() int {
	if p.MaxChunk > 0 {
		return p.MaxChunk
	}
	return defaultMaxChunkChars
}

func (p *Pipeline) report(stage Stage, message string) {
	if p.Progress != nil {
		p.Progress(stage, message)
	}
}

// diagnostic folds the per-stage failure notes into one message.
func diagnostic(failures []string) string {
	if len(failures) == 0 {
		return "insufficient metadata: complete the citation manually"
	}
	return "insufficient metadata: " + strings.Join(failures, "; ")
}

// NormalizeURL assumes https:// when the input has no scheme.
func NormalizeURL(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}
	if strings.Contains(rawURL, "://") {
		return rawURL
	}
	return "https://" + rawURL
}
