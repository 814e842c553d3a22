package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KongYongGun/chapterfind/internal/api"
	"github.com/KongYongGun/chapterfind/version"
)

var (
	cfgFile      string
	outputFormat string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "chapterfind",
	Short: "Chapter-boundary detection for raw prose dumps",
	Long: `Chapterfind scans large plain-text dumps (web novels, OCR output,
ebook sources) and proposes the lines that start chapters, ranked by
confidence, as the basis for a table of contents.

Detection combines three independent signals:
  - ordered regex patterns (authoritative, user-chosen)
  - structural layout scoring (line length, blank isolation, glyphs)
  - keyword-lexicon scoring for chapter-transition vocabulary`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.chapterfind/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging",
	)

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	}

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
