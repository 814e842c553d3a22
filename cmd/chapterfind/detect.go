package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KongYongGun/chapterfind/internal/api"
	"github.com/KongYongGun/chapterfind/internal/config"
	"github.com/KongYongGun/chapterfind/internal/runner"
	"github.com/KongYongGun/chapterfind/internal/textsource"
)

var (
	detectEncoding   string
	detectStrict     bool
	detectNoBuiltins bool
	detectPatternsAt string
)

var detectCmd = &cobra.Command{
	Use:   "detect <file> [files...]",
	Short: "Detect chapter boundaries in text files",
	Long: `Detect scans each file and prints the accepted chapter candidates
in document order. With a single file, candidates and progress are
streamed to the log as the scan runs; with several files, runs execute
concurrently on a worker pool and results are printed per file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.Default()

		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfg := cm.Get()
		applyDetectFlags(cfg)

		compiled, err := loadPatterns(cfg, logger)
		if err != nil {
			return err
		}

		runCfg := runner.Config{
			Patterns:     compiled,
			MinSpacing:   cfg.Detection.MinSpacing,
			StrictErrors: cfg.Detection.StrictErrors,
			Logger:       logger,
		}

		tasks := make([]runner.Task, 0, len(args))
		for _, path := range args {
			text, err := textsource.Load(path, cfg.Input.Encoding)
			if err != nil {
				return err
			}
			tasks = append(tasks, runner.Task{Name: path, Text: text})
		}

		if len(tasks) == 1 {
			return detectOne(cmd, runCfg, tasks[0], logger)
		}
		return detectMany(cmd, cfg, runCfg, tasks, logger)
	},
}

// applyDetectFlags folds command-line overrides into the loaded config.
func applyDetectFlags(cfg *config.Config) {
	if detectEncoding != "" {
		cfg.Input.Encoding = detectEncoding
	}
	if detectStrict {
		cfg.Detection.StrictErrors = true
	}
	if detectNoBuiltins {
		cfg.Detection.UseBuiltinPatterns = false
	}
	if detectPatternsAt != "" {
		cfg.PatternFile = detectPatternsAt
	}
}

// detectOne runs a single file with live candidate and progress logging.
func detectOne(cmd *cobra.Command, runCfg runner.Config, task runner.Task, logger *slog.Logger) error {
	r := runner.New(runCfg)
	events, err := r.Start(cmd.Context(), task.Text)
	if err != nil {
		return err
	}

	result := runner.TaskResult{Name: task.Name}
	for ev := range events {
		switch ev.Type {
		case runner.EventCandidate:
			logger.Info("chapter found",
				"line", ev.Candidate.LineNo,
				"title", ev.Candidate.Title,
				"method", ev.Candidate.Method,
				"confidence", fmt.Sprintf("%.2f", ev.Candidate.Confidence),
			)
			result.Result.Candidates = append(result.Result.Candidates, *ev.Candidate)
		case runner.EventProgress:
			logger.Debug("scanning", "percent", ev.Percent)
		case runner.EventFinished:
			result.Result.Total = ev.Total
			result.Err = ev.Err
		}
	}

	if result.Err != nil {
		return fmt.Errorf("detection failed for %s: %w", task.Name, result.Err)
	}
	return api.Output(result)
}

// detectMany fans the files out over the detection pool.
func detectMany(cmd *cobra.Command, cfg *config.Config, runCfg runner.Config, tasks []runner.Task, logger *slog.Logger) error {
	pool := runner.NewPool(runner.PoolConfig{
		Runner:  runCfg,
		Workers: cfg.Detection.MaxWorkers,
		Logger:  logger,
	})

	results := pool.Run(cmd.Context(), tasks)
	for _, res := range results {
		if res.Err != nil {
			return fmt.Errorf("detection failed for %s: %w", res.Name, res.Err)
		}
	}
	return api.Output(results)
}

func init() {
	detectCmd.Flags().StringVar(&detectEncoding, "encoding", "", "input file encoding (utf-8, euc-kr, cp949)")
	detectCmd.Flags().BoolVar(&detectStrict, "strict", false, "report run failures instead of an empty result")
	detectCmd.Flags().BoolVar(&detectNoBuiltins, "no-builtins", false, "disable the built-in pattern set")
	detectCmd.Flags().StringVar(&detectPatternsAt, "patterns", "", "YAML pattern file to load")
}
