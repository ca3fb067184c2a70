// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"bytes"
	"text/template"

	"github.com/pdiddy/auto-blogger/pkg/types"
)

// lengthGuidelines maps a length class to the target range communicated to
// the model. The range is a soft target, not enforced post-hoc.
var lengthGuidelines = map[types.Length]string{
	types.LengthShort:  "300-500 words",
	types.LengthMedium: "800-1200 words",
	types.LengthLong:   "1500-2500 words",
}

// bodySystemPrompt instructs the model on structure and Markdown hygiene.
// The AI-assistance disclosure is added by the assembler, so the model is
// told not to produce one.
const bodySystemPrompt = `You are an expert blog writer who creates engaging, well-structured, and informative blog posts.
Your writing is clear, compelling, and tailored to the specified tone and audience.

FORMATTING RULES:
- Write in clean Markdown that passes markdown linters
- Start with a level-1 heading containing the article title (no numbering)
- Do not use numbered prefixes in headings (write "## Introduction", not "## 1. Introduction")
- Do not add a date, author signature, AI notice, or metadata anywhere
- Leave blank lines before and after headings, lists, and code blocks
- Use consistent list markers (- for unordered, 1. 2. 3. for ordered)
- Add language identifiers to fenced code blocks
- Avoid trailing spaces

CONTENT STRUCTURE:
- An attention-grabbing introduction
- Well-organized main content with clear sections
- Relevant examples or insights
- A strong conclusion`

const researchSystemSuffix = `

You have access to reference materials that you should use to enrich your content with accurate information and insights.`

// bodyUserTmpl renders the per-run generation request.
var bodyUserTmpl = template.Must(template.New("body").Parse(`Write a blog post with the following specifications:

Topic: {{.Topic}}
Language: {{.Language}}
Tone: {{.Tone}}
Target Length: {{.LengthGuideline}}
{{- if .ResearchContext}}

{{.ResearchContext}}
{{- end}}

Write the complete post in {{.Language}}, keeping the {{.Tone}} tone throughout and targeting approximately {{.LengthGuideline}}.
{{- if .ResearchContext}}
Incorporate insights from the reference materials naturally.
{{- end}}
Output only the Markdown document.`))

// metadataSystemPrompt asks for strict JSON so the response can be decoded
// without cleanup beyond fence stripping.
const metadataSystemPrompt = `You are an SEO and content marketing expert. Analyze the provided blog post and generate:
1. 5-8 relevant SEO keywords or phrases, in the same language as the article
2. A compelling 2-3 sentence abstract in the same language as the article
3. A URL slug for the article: lowercase ASCII letters, digits, and hyphens only, even when the title uses a non-Latin script (transliterate or translate as needed)

Respond with a single JSON object with "keywords" (array of strings), "abstract" (string), and "slug" (string) fields. Do not include any text outside the JSON object.`

// metadataUserTmpl renders the metadata analysis request.
var metadataUserTmpl = template.Must(template.New("metadata").Parse(`Generate SEO metadata in {{.Language}} for this blog post:

{{.Content}}`))

// renderTemplate executes tmpl with data and returns the result.
func renderTemplate(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
