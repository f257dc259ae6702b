package main

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/GH-MarkAnthonyManzon/alamin-natin/internal/advisory"
	"github.com/GH-MarkAnthonyManzon/alamin-natin/internal/catalog"
	"github.com/GH-MarkAnthonyManzon/alamin-natin/internal/server"
)

var serveFlags struct {
	port       int
	verbose    bool
	configPath string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: "Serves citation verification and the candidate catalog over REST.\n" +
		"The catalog and AI analysis are enabled when DATABASE_URL and\n" +
		"GEMINI_API_KEY are configured; verification works without either.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&serveFlags.port, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveFlags.verbose, "verbose", false, "Print detailed progress information")
	serveCmd.Flags().StringVar(&serveFlags.configPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveFlags.configPath)
	if err != nil {
		return err
	}
	if serveFlags.port != 0 {
		cfg.Port = serveFlags.port
	}

	verifier, err := buildVerifier(cfg, serveFlags.verbose)
	if err != nil {
		return err
	}

	serverCfg := server.Config{Port: cfg.Port, Verifier: verifier}

	if cfg.APIKey != "" {
		analyzer, err := advisory.NewGeminiAnalyzer(context.Background(), cfg.APIKey, "")
		if err != nil {
			return err
		}
		defer func() { _ = analyzer.Close() }()
		serverCfg.Analyzer = analyzer
	} else {
		log.Println("GEMINI_API_KEY not set; AI analysis will use the deterministic fallback")
	}

	if cfg.DatabaseURL != "" {
		store, err := catalog.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer store.Close()
		serverCfg.Catalog = store
	} else {
		log.Println("DATABASE_URL not set; candidate catalog endpoints disabled")
	}

	srv, err := server.New(serverCfg)
	if err != nil {
		return err
	}
	return srv.Start()
}
