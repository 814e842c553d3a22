// Package patterns manages the ordered chapter-regex list fed to the
// detection engine: the built-in defaults, user pattern files, and
// compilation with non-fatal error handling.
package patterns

import (
	"log/slog"
	"regexp"
	"sort"

	"github.com/KongYongGun/chapterfind/internal/detect"
)

// Raw is an uncompiled pattern entry as supplied by configuration.
type Raw struct {
	Priority int    `yaml:"priority" json:"priority"`
	Name     string `yaml:"name,omitempty" json:"name,omitempty"`
	Example  string `yaml:"example,omitempty" json:"example,omitempty"`
	Pattern  string `yaml:"pattern" json:"pattern"`
}

// Compile compiles raw patterns into the ordered list the detector
// consumes. Entries that fail to compile are logged and excluded; a bad
// pattern never aborts the rest of the list. The result is sorted by
// priority ascending.
func Compile(raws []Raw, logger *slog.Logger) []detect.Pattern {
	if logger == nil {
		logger = slog.Default()
	}

	compiled := make([]detect.Pattern, 0, len(raws))
	for _, r := range raws {
		expr, err := regexp.Compile(r.Pattern)
		if err != nil {
			logger.Error("invalid chapter pattern, skipping",
				"priority", r.Priority,
				"pattern", r.Pattern,
				"error", err,
			)
			continue
		}
		compiled = append(compiled, detect.Pattern{
			Priority: r.Priority,
			Name:     r.Name,
			Expr:     expr,
		})
	}

	sort.SliceStable(compiled, func(i, j int) bool {
		return compiled[i].Priority < compiled[j].Priority
	})
	return compiled
}

// CheckResult reports the compile outcome for one raw pattern.
type CheckResult struct {
	Raw   Raw    `yaml:"pattern" json:"pattern"`
	OK    bool   `yaml:"ok" json:"ok"`
	Error string `yaml:"error,omitempty" json:"error,omitempty"`
}

// Check compiles every raw pattern and reports per-entry outcomes
// without dropping anything. Used by the patterns check command.
func Check(raws []Raw) []CheckResult {
	results := make([]CheckResult, 0, len(raws))
	for _, r := range raws {
		res := CheckResult{Raw: r, OK: true}
		if _, err := regexp.Compile(r.Pattern); err != nil {
			res.OK = false
			res.Error = err.Error()
		}
		results = append(results, res)
	}
	return results
}
