// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of auto-blogger",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("auto-blogger %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
