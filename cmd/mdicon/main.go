// Package main provides the entry point for the mdicon command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mdicon",
	Short: "Localize Material Symbols icons",
	Long: "mdicon scans sources for <md-icon>name</md-icon> references, downloads a Material Symbols font " +
		"subset that contains only those glyphs, and rewrites references to codepoint entities.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
