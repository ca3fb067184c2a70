// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the auto-blogger CLI.
//
// The pipeline is linear: configure, research and fetch images (optional,
// concurrent), generate, assemble, emit. Each external collaborator — the
// completion endpoint, the MCP research servers, the Unsplash API — sits
// behind its own internal package.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/auto-blogger/internal/config"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the auto-blogger CLI.
var rootCmd = &cobra.Command{
	Use:   "auto-blogger",
	Short: "AI-powered blog post generator",
	Long: `auto-blogger generates a blog post for a topic by orchestrating an
OpenAI-compatible completion endpoint, optional MCP research servers, and the
Unsplash image API, then emits Markdown with YAML front matter.

Settings live in an env-format file (default .env); run init to create one.`,
}

func init() {
	rootCmd.PersistentFlags().String("config", config.DefaultEnvFile, "env file with settings and credentials")
}

// envFile returns the configured env file path.
func envFile() string {
	path, _ := rootCmd.PersistentFlags().GetString("config")
	return path
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
