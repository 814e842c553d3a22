package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KongYongGun/chapterfind/internal/api"
	"github.com/KongYongGun/chapterfind/internal/config"
	"github.com/KongYongGun/chapterfind/internal/detect"
	"github.com/KongYongGun/chapterfind/internal/patterns"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Chapter pattern management commands",
}

var patternsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the effective pattern set in priority order",
	RunE: func(cmd *cobra.Command, args []string) error {
		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		raws, err := rawPatterns(cm.Get())
		if err != nil {
			return err
		}
		return api.Output(raws)
	},
}

var patternsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Compile every configured pattern and report failures",
	RunE: func(cmd *cobra.Command, args []string) error {
		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		raws, err := rawPatterns(cm.Get())
		if err != nil {
			return err
		}
		return api.Output(patterns.Check(raws))
	},
}

// rawPatterns assembles the full raw pattern list for a config:
// built-ins (unless disabled), then the external file, then inline
// entries. Compile sorts the union by priority.
func rawPatterns(cfg *config.Config) ([]patterns.Raw, error) {
	var raws []patterns.Raw
	if cfg.Detection.UseBuiltinPatterns {
		raws = append(raws, patterns.Builtin()...)
	}
	if cfg.PatternFile != "" {
		fromFile, err := patterns.LoadFile(cfg.PatternFile)
		if err != nil {
			return nil, err
		}
		raws = append(raws, fromFile...)
	}
	raws = append(raws, cfg.RawPatterns()...)
	return raws, nil
}

// loadPatterns assembles and compiles the effective pattern set.
// Invalid regexes are logged and skipped.
func loadPatterns(cfg *config.Config, logger *slog.Logger) ([]detect.Pattern, error) {
	raws, err := rawPatterns(cfg)
	if err != nil {
		return nil, err
	}
	return patterns.Compile(raws, logger), nil
}

func init() {
	patternsCmd.AddCommand(patternsListCmd)
	patternsCmd.AddCommand(patternsCheckCmd)
}
