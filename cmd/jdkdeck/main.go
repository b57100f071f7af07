// Package main provides the jdkdeck binary entry point.
// Jdkdeck scrapes an OpenJDK release page and generates a slide deck
// covering the release's JEPs, falling back to sample content when the
// page cannot be fetched or yields nothing.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/c360studio/jdkdeck/deck"
	"github.com/c360studio/jdkdeck/scraper"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "jdkdeck"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type generateOptions struct {
	version   string
	tagline   string
	output    string
	themePath string
	baseURL   string
	timeout   time.Duration
	logLevel  string
	offline   bool
}

func rootCmd() *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "jdkdeck [version]",
		Short: "Generate a JDK release slide deck",
		Long: `Jdkdeck builds a PowerPoint deck describing a JDK release.

It scrapes the OpenJDK project page for the requested version, extracts
the release's JEPs and General Availability date, and renders a styled
deck: a title slide, one slide per JEP, and one slide per code example.

When the page cannot be fetched or no JEPs are found, a deterministic
sample release is used instead so a deck is always produced.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.version = "25"
			if len(args) == 1 {
				opts.version = args[0]
			}
			return run(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.tagline, "tagline", "t", "", "Tagline for the title slide (default per release)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output path (default JDK_<version>_Release_Overview.pptx)")
	cmd.Flags().StringVar(&opts.themePath, "theme", "", "Theme YAML file path")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", scraper.DefaultBaseURL, "OpenJDK base URL")
	cmd.Flags().DurationVar(&opts.timeout, "fetch-timeout", 30*time.Second, "HTTP fetch timeout")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&opts.offline, "offline", false, "Skip scraping and use sample data")

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func run(opts generateOptions) error {
	// Configure logging
	level := slog.LevelInfo
	switch strings.ToLower(opts.logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	theme := deck.DefaultTheme()
	if opts.themePath != "" {
		var err error
		theme, err = deck.LoadTheme(opts.themePath)
		if err != nil {
			return fmt.Errorf("load theme: %w", err)
		}
	}

	release := fetchRelease(opts, logger)

	if opts.tagline != "" {
		release.Tagline = opts.tagline
	}

	output := opts.output
	if output == "" {
		output = fmt.Sprintf("JDK_%s_Release_Overview.pptx", release.Version)
	}

	generator := deck.NewGenerator(theme)
	if err := generator.WriteFile(release, output); err != nil {
		return fmt.Errorf("write deck: %w", err)
	}

	slog.Info("deck generated",
		"version", release.Version,
		"jeps", len(release.JEPs),
		"output", output)
	return nil
}

// fetchRelease resolves the release to render. Scraping is attempted for
// numeric versions unless --offline was given; any failure or an empty
// JEP list falls back to the deterministic sample release.
func fetchRelease(opts generateOptions, logger *slog.Logger) *scraper.Release {
	if !isNumeric(opts.version) {
		logger.Warn("unsupported version identifier, using sample data", "version", opts.version)
		return scraper.SampleRelease(opts.version)
	}
	if opts.offline {
		logger.Debug("offline mode, using sample data", "version", opts.version)
		return scraper.SampleRelease(opts.version)
	}

	s := scraper.New(
		scraper.WithBaseURL(opts.baseURL),
		scraper.WithTimeout(opts.timeout),
		scraper.WithLogger(logger),
	)
	release := s.ReleaseInfo(context.Background(), opts.version)
	if release == nil || len(release.JEPs) == 0 {
		logger.Warn("scraping yielded no JEPs, using sample data", "version", opts.version)
		return scraper.SampleRelease(opts.version)
	}
	return release
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
