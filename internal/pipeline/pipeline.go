// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline wires the stages of one generation run: research and
// image fetching (independent, run concurrently, both optional), then
// content generation, then assembly. Failures in the optional stages degrade
// to empty results with a warning; a generation failure aborts the run.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/auto-blogger/internal/assemble"
	"github.com/pdiddy/auto-blogger/internal/generate"
	"github.com/pdiddy/auto-blogger/internal/research"
	"github.com/pdiddy/auto-blogger/pkg/types"
)

// ContentGenerator produces the article body and metadata.
type ContentGenerator interface {
	Generate(ctx context.Context, p generate.Params) (types.GeneratedContent, error)
}

// ImageFetcher returns at most count images for a keyword.
type ImageFetcher interface {
	Fetch(ctx context.Context, keyword string, count int) ([]types.ImageResult, error)
}

// Runner holds the wired stages for one invocation.
type Runner struct {
	// Generator is the mandatory content stage.
	Generator ContentGenerator

	// Fetcher supplies images; nil disables the image stage.
	Fetcher ImageFetcher

	// Backends are the research servers, in query order; empty disables research.
	Backends []research.Backend

	// Timeout bounds each external research call.
	Timeout time.Duration

	// Warn receives degradation notices from the optional stages.
	Warn io.Writer
}

// Request describes one generation run.
type Request struct {
	Topic      string
	Language   string
	Tone       types.Tone
	Length     types.Length
	Author     string
	Date       string // YYYY-MM-DD
	Research   bool
	ImageCount int
}

// Run executes the pipeline and returns the assembled document. Research and
// image fetching run concurrently and both join before generation, since the
// generator consumes the research output as prompt context.
func (r *Runner) Run(ctx context.Context, req Request) (string, error) {
	if req.Topic == "" {
		return "", fmt.Errorf("topic is empty")
	}

	var (
		snippets []types.ResearchSnippet
		imgs     []types.ImageResult
	)

	g, gctx := errgroup.WithContext(ctx)

	if req.Research {
		if len(r.Backends) == 0 {
			fmt.Fprintln(r.Warn, "warning: research requested but no MCP servers configured")
		} else {
			g.Go(func() error {
				snippets = research.Gather(gctx, req.Topic, r.Backends, r.Timeout, r.Warn)
				return nil
			})
		}
	}

	if req.ImageCount > 0 {
		if r.Fetcher == nil {
			fmt.Fprintln(r.Warn, "warning: images requested but no Unsplash access key configured")
		} else {
			g.Go(func() error {
				fetched, err := r.Fetcher.Fetch(gctx, req.Topic, req.ImageCount)
				if err != nil {
					fmt.Fprintf(r.Warn, "warning: image search failed: %v\n", err)
					return nil
				}
				imgs = fetched
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return "", err
	}

	content, err := r.Generator.Generate(ctx, generate.Params{
		Topic:           req.Topic,
		Language:        req.Language,
		Tone:            req.Tone,
		Length:          req.Length,
		ResearchContext: research.FormatContext(snippets),
	})
	if err != nil {
		return "", err
	}

	return assemble.Assemble(content, imgs, assemble.Meta{
		Author:   req.Author,
		Date:     req.Date,
		Language: req.Language,
	})
}
