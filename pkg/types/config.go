// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Tone selects the writing voice for a generated post.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneTechnical    Tone = "technical"
)

// Length selects the target word-count class for a generated post.
type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the per-request timeout for external calls.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "auto-blogger/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// Settings holds every option for a single generation run. It is loaded once
// from the env file and process environment and is never mutated afterwards.
type Settings struct {
	HTTPConfig `yaml:",inline"`

	// APIKey authenticates against the completion endpoint. Mandatory for generate.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// APIBase overrides the completion endpoint base URL for
	// OpenAI-compatible services (empty means the provider default).
	APIBase string `json:"api_base,omitempty" yaml:"api_base,omitempty"`

	// Model is the completion model identifier (default "gpt-4o-mini").
	Model string `json:"model" yaml:"model"`

	// Language is the default article language (default "Korean").
	Language string `json:"language" yaml:"language"`

	// Tone is the default writing voice (default professional).
	Tone Tone `json:"tone" yaml:"tone"`

	// Length is the default word-count class (default medium).
	Length Length `json:"length" yaml:"length"`

	// Temperature is the sampling temperature for completions (default 0.7).
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// MCPServers lists the HTTP endpoints of research servers, in the
	// order they should be queried.
	MCPServers []string `json:"mcp_servers,omitempty" yaml:"mcp_servers,omitempty"`

	// ImageCount is the default number of images per post, 0 through 3 (default 1).
	ImageCount int `json:"image_count" yaml:"image_count"`

	// UnsplashApplicationID identifies the registered Unsplash application.
	UnsplashApplicationID string `json:"unsplash_application_id,omitempty" yaml:"unsplash_application_id,omitempty"`

	// UnsplashAccessKey authenticates image searches. Images are skipped when empty.
	UnsplashAccessKey string `json:"unsplash_access_key,omitempty" yaml:"unsplash_access_key,omitempty"`

	// UnsplashSecretKey is reserved for endpoints that need secret-key auth.
	UnsplashSecretKey string `json:"unsplash_secret_key,omitempty" yaml:"unsplash_secret_key,omitempty"`
}
