// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the auto-blogger pipeline.
package types

// ResearchSnippet is one piece of reference material returned by a research
// server. Snippets flow into the generation prompt and have no lifecycle of
// their own.
type ResearchSnippet struct {
	// Title is a short label for the snippet, usually the first heading
	// of the returned text or the tool name that produced it.
	Title string `json:"title" yaml:"title"`

	// Source identifies where the snippet came from (the server URL).
	Source string `json:"source" yaml:"source"`

	// Excerpt is the reference text itself.
	Excerpt string `json:"excerpt" yaml:"excerpt"`
}
