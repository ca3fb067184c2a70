// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// envTemplate is the settings file written by init. Keys match what
// internal/config reads.
const envTemplate = `# auto-blogger configuration
OPENAI_API_KEY=your-api-key-here
DEFAULT_MODEL=gpt-4o-mini
DEFAULT_LANGUAGE=Korean
DEFAULT_TONE=professional
DEFAULT_LENGTH=medium
TEMPERATURE=0.7
DEFAULT_IMAGE_COUNT=1

# OpenAI-compatible API endpoint (optional)
# For Azure OpenAI: https://your-resource.openai.azure.com/
# For other compatible services: https://api.your-service.com/v1
OPENAI_API_BASE=

# MCP research servers (comma-separated URLs of HTTP-based MCP servers)
# Example: MCP_SERVERS=http://localhost:8000,https://api.example.com/mcp
MCP_SERVERS=

# Unsplash credentials (optional; images are skipped without an access key)
UNSPLASH_APPLICATION_ID=
UNSPLASH_ACCESS_KEY=
UNSPLASH_SECRET_KEY=
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a template settings file",
	Long: `Init writes a commented env-format settings file (default .env, or the
path given with --config). An existing file is preserved unless --force is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := envFile()
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists: use --force to overwrite", path)
		}

		if err := os.WriteFile(path, []byte(envTemplate), 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Configuration file created: %s\nEdit it and add your API key.\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing settings file")

	rootCmd.AddCommand(initCmd)
}
