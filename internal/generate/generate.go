// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate produces the blog body and its SEO metadata through an
// OpenAI-compatible completion endpoint. Generation is the one mandatory
// external stage: any backend error or unparseable response is fatal for the
// run.
package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pdiddy/auto-blogger/pkg/types"
)

// metadataContentLimit caps the body length (in runes) sent to the metadata
// phase; the opening of the article carries enough signal for SEO analysis.
const metadataContentLimit = 3000

// titlePattern matches the first level-1 Markdown heading.
var titlePattern = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// LLM abstracts the completion endpoint so tests can supply a mock.
type LLM interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// GenerationError marks a fatal generation failure: a backend error or a
// response the pipeline cannot parse.
type GenerationError struct {
	Stage string // "body" or "metadata"
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generating %s: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Params holds the inputs for one generation run.
type Params struct {
	Topic           string
	Language        string
	Tone            types.Tone
	Length          types.Length
	ResearchContext string
}

// Generator runs the two completion phases: body first, then metadata
// derived from the body.
type Generator struct {
	LLM LLM

	// Now is the clock used for the slug fallback; nil means time.Now.
	Now func() time.Time
}

// Generate produces the article body and its metadata.
func (g *Generator) Generate(ctx context.Context, p Params) (types.GeneratedContent, error) {
	body, err := g.generateBody(ctx, p)
	if err != nil {
		return types.GeneratedContent{}, err
	}

	meta, err := g.generateMetadata(ctx, body, p.Language)
	if err != nil {
		return types.GeneratedContent{}, err
	}

	title := extractTitle(body)
	if title == "" {
		title = p.Topic
	}

	return types.GeneratedContent{
		Title:    title,
		Body:     body,
		Keywords: meta.Keywords,
		Abstract: meta.Abstract,
		Slug:     g.resolveSlug(meta.Slug, title),
	}, nil
}

func (g *Generator) generateBody(ctx context.Context, p Params) (string, error) {
	guideline, ok := lengthGuidelines[p.Length]
	if !ok {
		guideline = lengthGuidelines[types.LengthMedium]
	}

	system := bodySystemPrompt
	if p.ResearchContext != "" {
		system += researchSystemSuffix
	}

	user, err := renderTemplate(bodyUserTmpl, struct {
		Topic, Language, Tone, LengthGuideline, ResearchContext string
	}{
		Topic:           p.Topic,
		Language:        p.Language,
		Tone:            string(p.Tone),
		LengthGuideline: guideline,
		ResearchContext: p.ResearchContext,
	})
	if err != nil {
		return "", &GenerationError{Stage: "body", Err: err}
	}

	raw, err := g.LLM.Complete(ctx, system, user)
	if err != nil {
		return "", &GenerationError{Stage: "body", Err: err}
	}

	body := strings.TrimSpace(raw)
	if body == "" {
		return "", &GenerationError{Stage: "body", Err: fmt.Errorf("model returned an empty document")}
	}
	return body, nil
}

// metadata is the decoded JSON from the second completion phase.
type metadata struct {
	Keywords []string `json:"keywords"`
	Abstract string   `json:"abstract"`
	Slug     string   `json:"slug"`
}

func (g *Generator) generateMetadata(ctx context.Context, body, language string) (metadata, error) {
	user, err := renderTemplate(metadataUserTmpl, struct {
		Language, Content string
	}{
		Language: language,
		Content:  truncateRunes(body, metadataContentLimit),
	})
	if err != nil {
		return metadata{}, &GenerationError{Stage: "metadata", Err: err}
	}

	raw, err := g.LLM.Complete(ctx, metadataSystemPrompt, user)
	if err != nil {
		return metadata{}, &GenerationError{Stage: "metadata", Err: err}
	}

	meta, err := parseMetadata(raw)
	if err != nil {
		return metadata{}, &GenerationError{Stage: "metadata", Err: err}
	}
	return meta, nil
}

// parseMetadata decodes the metadata JSON, tolerating a Markdown code fence
// around the object but nothing else.
func parseMetadata(raw string) (metadata, error) {
	cleaned := stripFences(strings.TrimSpace(raw))

	var meta metadata
	if err := json.Unmarshal([]byte(cleaned), &meta); err != nil {
		return metadata{}, fmt.Errorf("parsing metadata JSON: %w", err)
	}
	if len(meta.Keywords) == 0 {
		return metadata{}, fmt.Errorf("metadata is missing keywords")
	}
	if strings.TrimSpace(meta.Abstract) == "" {
		return metadata{}, fmt.Errorf("metadata is missing an abstract")
	}
	return meta, nil
}

// stripFences removes a surrounding ``` or ```json fence, if present.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) < 2 {
		return s
	}
	lines = lines[1:]
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// extractTitle returns the text of the first H1 heading, or "".
func extractTitle(body string) string {
	m := titlePattern.FindStringSubmatch(body)
	if len(m) >= 2 {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// resolveSlug sanitizes the model-provided slug and falls back to the title
// and then to a dated placeholder, so the result is always a non-empty
// ASCII URL-safe string.
func (g *Generator) resolveSlug(modelSlug, title string) string {
	if slug := Slugify(modelSlug); slug != "" {
		return slug
	}
	if slug := Slugify(title); slug != "" {
		return slug
	}
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	return "post-" + now().Format("20060102")
}

// truncateRunes shortens s to at most limit runes.
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
