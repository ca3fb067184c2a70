// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// GeneratedContent is the output of the content generator: the article body
// plus the SEO metadata derived from it.
type GeneratedContent struct {
	// Title is the article title, extracted from the body's H1 heading
	// (falling back to the topic).
	Title string `json:"title" yaml:"title"`

	// Body is the article text in Markdown, without front matter.
	Body string `json:"body" yaml:"body"`

	// Keywords lists 5-8 SEO keywords in the article language, in the
	// order the model returned them.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Abstract is a 2-3 sentence marketing summary of the article.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Slug is a lowercase ASCII hyphenated identifier derived from the
	// title. Always non-empty and URL-safe, even for non-Latin titles.
	Slug string `json:"slug" yaml:"slug"`
}

// FrontMatter holds the YAML header of an assembled document. Field order
// here is the order the fields appear in the emitted YAML.
type FrontMatter struct {
	// Title is the article title.
	Title string `yaml:"title"`

	// Date is the generation date in YYYY-MM-DD format.
	Date string `yaml:"date"`

	// Author is the byline for the post.
	Author string `yaml:"author"`

	// Language is the article language.
	Language string `yaml:"language"`

	// Slug is the URL-safe identifier for the post.
	Slug string `yaml:"slug"`

	// Keywords lists the SEO keywords.
	Keywords []string `yaml:"keywords"`

	// Abstract is the SEO summary.
	Abstract string `yaml:"abstract"`
}
