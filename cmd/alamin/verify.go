package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GH-MarkAnthonyManzon/alamin-natin/internal/advisory"
	"github.com/GH-MarkAnthonyManzon/alamin-natin/internal/observability"
)

var verifyFlags struct {
	citation   string
	url        string
	analyze    bool
	verbose    bool
	configPath string
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a citation against a source URL",
	Long: "Fetches the source page (cache-checked), scores the citation against its\n" +
		"text, and prints the matching sources with context snippets.",
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyFlags.citation, "citation", "", "Citation text to verify (required)")
	verifyCmd.Flags().StringVar(&verifyFlags.url, "url", "", "Source URL to verify against (required)")
	verifyCmd.Flags().BoolVar(&verifyFlags.analyze, "analyze", false, "Add AI advisory commentary to the result")
	verifyCmd.Flags().BoolVar(&verifyFlags.verbose, "verbose", false, "Print detailed progress information")
	verifyCmd.Flags().StringVar(&verifyFlags.configPath, "config", "", "Path to JSON config file")
	_ = verifyCmd.MarkFlagRequired("citation")
	_ = verifyCmd.MarkFlagRequired("url")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(verifyFlags.configPath)
	if err != nil {
		return err
	}

	verifier, err := buildVerifier(cfg, verifyFlags.verbose)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	result, err := verifier.Verify(ctx, verifyFlags.citation, verifyFlags.url)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintResult(verifyFlags.url, result)

	if !verifyFlags.analyze {
		return nil
	}

	analysis := advisory.FallbackAnalysis(result.Found())
	if cfg.APIKey != "" {
		analyzer, err := advisory.NewGeminiAnalyzer(ctx, cfg.APIKey, "")
		if err == nil {
			defer func() { _ = analyzer.Close() }()
			got, analyzeErr := analyzer.Analyze(ctx, verifyFlags.citation, verifyFlags.url,
				result.MatchedSources, result.Snippets)
			if got != nil {
				analysis = got
			}
			if analyzeErr != nil && verifyFlags.verbose {
				fmt.Fprintf(os.Stderr, "AI analysis degraded to fallback: %v\n", analyzeErr)
			}
		}
	}
	printer.PrintAnalysis(analysis)

	return nil
}
