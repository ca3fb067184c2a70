// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assemble combines generated content, images, and run metadata into
// the final Markdown document. It is a pure function of its inputs: no I/O,
// no clock, no side effects.
package assemble

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/auto-blogger/pkg/types"
)

// Meta holds the run metadata that ends up in the front matter.
type Meta struct {
	// Author is the byline.
	Author string

	// Date is the generation date in YYYY-MM-DD format.
	Date string

	// Language is the article language; it also selects the disclosure text.
	Language string
}

// disclosures maps a lowercase language name to the AI-assistance notice
// rendered below the front matter. Unknown languages fall back to English.
var disclosures = map[string]string{
	"korean":   "이 글은 생성형 AI의 도움을 받아 작성되었습니다.",
	"english":  "This article was written with the assistance of generative AI.",
	"japanese": "この記事は生成AIの支援を受けて作成されました。",
	"chinese":  "本文在生成式 AI 的协助下完成。",
	"spanish":  "Este artículo fue escrito con la asistencia de IA generativa.",
	"french":   "Cet article a été rédigé avec l'aide d'une IA générative.",
	"german":   "Dieser Artikel wurde mit Unterstützung generativer KI verfasst.",
}

// Assemble renders the document: YAML front matter, the first image with
// attribution, the AI-assistance disclosure, then the body with any further
// images woven in before successive level-2 headings.
func Assemble(content types.GeneratedContent, imgs []types.ImageResult, meta Meta) (string, error) {
	fm := types.FrontMatter{
		Title:    content.Title,
		Date:     meta.Date,
		Author:   meta.Author,
		Language: meta.Language,
		Slug:     content.Slug,
		Keywords: content.Keywords,
		Abstract: content.Abstract,
	}
	header, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("marshaling front matter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")

	if len(imgs) > 0 {
		b.WriteString(imageBlock(imgs[0]))
		b.WriteString("\n")
	}

	b.WriteString("> ")
	b.WriteString(disclosure(meta.Language))
	b.WriteString("\n\n")

	rest := imgs
	if len(rest) > 0 {
		rest = rest[1:]
	}
	b.WriteString(weaveImages(content.Body, rest))
	b.WriteString("\n")

	return b.String(), nil
}

// disclosure returns the notice for the language, falling back to English.
func disclosure(language string) string {
	if text, ok := disclosures[strings.ToLower(strings.TrimSpace(language))]; ok {
		return text
	}
	return disclosures["english"]
}

// imageBlock renders one image with the attribution line the image service's
// terms require.
func imageBlock(img types.ImageResult) string {
	return fmt.Sprintf("![%s](%s)\n\n*Photo by [%s](%s) on [Unsplash](%s)*\n",
		img.AltText, img.URL, img.PhotographerName, img.PhotographerURL, img.PhotoPageURL)
}

// weaveImages inserts each image before a successive "## " heading in the
// body. Images left over when the headings run out are appended at the end.
func weaveImages(body string, imgs []types.ImageResult) string {
	body = strings.TrimSpace(body)
	if len(imgs) == 0 {
		return body
	}

	lines := strings.Split(body, "\n")
	var b strings.Builder
	next := 0
	for i, line := range lines {
		if next < len(imgs) && strings.HasPrefix(line, "## ") {
			b.WriteString(imageBlock(imgs[next]))
			b.WriteString("\n")
			next++
		}
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}
	for ; next < len(imgs); next++ {
		b.WriteString("\n\n")
		b.WriteString(strings.TrimRight(imageBlock(imgs[next]), "\n"))
	}
	return b.String()
}
