// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/auto-blogger/internal/config"
	"github.com/pdiddy/auto-blogger/internal/generate"
	"github.com/pdiddy/auto-blogger/internal/httputil"
	"github.com/pdiddy/auto-blogger/internal/images"
	"github.com/pdiddy/auto-blogger/internal/pipeline"
	"github.com/pdiddy/auto-blogger/internal/research"
	"github.com/pdiddy/auto-blogger/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate a blog post with SEO front matter",
	Long: `Generate produces a Markdown blog post for the topic: YAML front matter
with auto-generated keywords, abstract, and slug, an optional lead image with
attribution, an AI-assistance disclosure, and the article body.

Research servers and the image service are enrichment: when they are
unreachable the post is still generated, with a warning. A configuration or
generation failure aborts the run.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("output", "o", "", "output file path (default: stdout)")
	generateCmd.Flags().StringP("language", "l", "", "language for the blog post")
	generateCmd.Flags().StringP("tone", "t", "", "tone: professional, casual, or technical")
	generateCmd.Flags().String("length", "", "length: short, medium, or long")
	generateCmd.Flags().BoolP("research", "r", false, "gather reference material from MCP servers")
	generateCmd.Flags().StringP("author", "a", "Auto-Blogger", "author name for the front matter")
	generateCmd.Flags().IntP("images", "n", -1, "number of images to include, 0-3")
	generateCmd.Flags().String("model", "", "completion model identifier")
	generateCmd.Flags().Float64("temperature", -1, "sampling temperature, 0-2")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	topic := args[0]
	stderr := cmd.ErrOrStderr()

	settings, err := config.Load(envFile())
	if err != nil {
		return err
	}
	settings, err = applyFlagOverrides(cmd, settings)
	if err != nil {
		return err
	}
	if err := config.RequireAPIKey(settings); err != nil {
		return err
	}

	useResearch, _ := cmd.Flags().GetBool("research")
	author, _ := cmd.Flags().GetString("author")
	outputPath, _ := cmd.Flags().GetString("output")

	backend, err := generate.NewOpenAIBackend(settings.APIKey, settings.APIBase, settings.Model, settings.Temperature)
	if err != nil {
		return err
	}

	httpClient := httputil.NewClient(settings.HTTPConfig)

	runner := &pipeline.Runner{
		Generator: &generate.Generator{LLM: backend},
		Timeout:   settings.Timeout,
		Warn:      stderr,
	}
	if settings.UnsplashAccessKey != "" {
		runner.Fetcher = &images.Client{
			AccessKey: settings.UnsplashAccessKey,
			HTTP:      httpClient,
			Warn:      stderr,
		}
	}
	for _, server := range settings.MCPServers {
		runner.Backends = append(runner.Backends, &research.MCPBackend{URL: server, Client: httpClient})
	}

	fmt.Fprintf(stderr, "Generating blog post about %q (language=%s, tone=%s, length=%s)\n",
		topic, settings.Language, settings.Tone, settings.Length)

	doc, err := runner.Run(cmd.Context(), pipeline.Request{
		Topic:      topic,
		Language:   settings.Language,
		Tone:       settings.Tone,
		Length:     settings.Length,
		Author:     author,
		Date:       time.Now().Format("2006-01-02"),
		Research:   useResearch,
		ImageCount: settings.ImageCount,
	})
	if err != nil {
		return err
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		fmt.Fprintf(stderr, "Blog post saved to %s\n", outputPath)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), doc)
	return nil
}

// applyFlagOverrides layers explicit generate flags over the loaded settings
// and revalidates the result.
func applyFlagOverrides(cmd *cobra.Command, s types.Settings) (types.Settings, error) {
	flags := cmd.Flags()
	if flags.Changed("language") {
		s.Language, _ = flags.GetString("language")
	}
	if flags.Changed("tone") {
		tone, _ := flags.GetString("tone")
		s.Tone = types.Tone(tone)
	}
	if flags.Changed("length") {
		length, _ := flags.GetString("length")
		s.Length = types.Length(length)
	}
	if flags.Changed("model") {
		s.Model, _ = flags.GetString("model")
	}
	if flags.Changed("temperature") {
		s.Temperature, _ = flags.GetFloat64("temperature")
	}
	if flags.Changed("images") {
		s.ImageCount, _ = flags.GetInt("images")
	}
	if err := config.Validate(s); err != nil {
		return types.Settings{}, err
	}
	return s, nil
}
