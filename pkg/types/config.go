package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "citation-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ResolveConfig holds settings for the metadata resolution pipeline.
type ResolveConfig struct {
	HTTPConfig `yaml:",inline"`

	// ProxyBase is the same-origin proxy endpoint used by the second
	// pipeline stage. The target URL is appended as ?url=<encoded>.
	// Empty disables the proxied stage.
	ProxyBase string `json:"proxy_base,omitempty" yaml:"proxy_base,omitempty"`

	// ReaderMirrors are readable-text mirror base URLs for the AI stage.
	// The target URL is appended as a path suffix. At most three are tried.
	ReaderMirrors []string `json:"reader_mirrors,omitempty" yaml:"reader_mirrors,omitempty"`
}

// AIConfig holds settings for the generative text backend used by the
// AI-assisted extraction stage.
type AIConfig struct {
	// Endpoint is the text-completion endpoint. It accepts a URL-encoded
	// prompt and returns plain text expected to contain JSON.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	// Model is an optional model identifier passed to the endpoint.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`

	// APIKey is the authentication key for the endpoint.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts for failed calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// MaxChunkChars bounds the readable text sent per request (default 12000).
	// Longer pages are split into a head chunk and a tail chunk.
	MaxChunkChars int `json:"max_chunk_chars" yaml:"max_chunk_chars"`
}

// StoreConfig holds settings for the citation store.
type StoreConfig struct {
	// Path is the SQLite database file (default "citations.db").
	Path string `json:"path" yaml:"path"`
}

// Config groups all component configurations.
type Config struct {
	Resolve ResolveConfig `json:"resolve" yaml:"resolve"`
	AI      AIConfig      `json:"ai" yaml:"ai"`
	Store   StoreConfig   `json:"store" yaml:"store"`
}
