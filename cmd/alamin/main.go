// Package main provides the entry point for the Alamin Natin citation
// verification service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "alamin",
	Short: "Alamin Natin citation verification service",
	Long: "Alamin Natin checks whether a citation plausibly appears in a source web page\n" +
		"and reports matching locations with confidence signals, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
