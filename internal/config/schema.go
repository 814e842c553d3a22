package config

import "github.com/KongYongGun/chapterfind/internal/patterns"

// Config holds chapterfind configuration.
// Loaded from ./config.yaml or ~/.chapterfind/config.yaml.
type Config struct {
	Detection DetectionCfg `mapstructure:"detection" yaml:"detection"`
	Input     InputCfg     `mapstructure:"input" yaml:"input"`

	// PatternFile points to an external YAML pattern file. When set it
	// is loaded in addition to the inline Patterns list.
	PatternFile string `mapstructure:"pattern_file" yaml:"pattern_file,omitempty"`

	// Patterns are inline chapter regexes. They take part in the same
	// priority ordering as the built-ins.
	Patterns []PatternCfg `mapstructure:"patterns" yaml:"patterns,omitempty"`
}

// DetectionCfg tunes the detection engine.
type DetectionCfg struct {
	// MinSpacing is the minimum line gap between accepted chapters.
	MinSpacing int `mapstructure:"min_spacing" yaml:"min_spacing"`

	// StrictErrors surfaces run failures instead of degrading them to
	// an empty result.
	StrictErrors bool `mapstructure:"strict_errors" yaml:"strict_errors"`

	// MaxWorkers bounds concurrent runs when detecting over multiple
	// files.
	MaxWorkers int `mapstructure:"max_workers" yaml:"max_workers"`

	// UseBuiltinPatterns includes the shipped default pattern set.
	UseBuiltinPatterns bool `mapstructure:"use_builtin_patterns" yaml:"use_builtin_patterns"`
}

// InputCfg describes how input files are read.
type InputCfg struct {
	// Encoding names the input file encoding (utf-8, euc-kr, cp949).
	// There is no auto-detection.
	Encoding string `mapstructure:"encoding" yaml:"encoding"`
}

// PatternCfg is one inline chapter regex entry.
type PatternCfg struct {
	Priority int    `mapstructure:"priority" yaml:"priority"`
	Name     string `mapstructure:"name" yaml:"name,omitempty"`
	Example  string `mapstructure:"example" yaml:"example,omitempty"`
	Pattern  string `mapstructure:"pattern" yaml:"pattern"`
}

// RawPatterns converts the inline entries to the patterns package shape.
func (c *Config) RawPatterns() []patterns.Raw {
	raws := make([]patterns.Raw, 0, len(c.Patterns))
	for _, p := range c.Patterns {
		raws = append(raws, patterns.Raw{
			Priority: p.Priority,
			Name:     p.Name,
			Example:  p.Example,
			Pattern:  p.Pattern,
		})
	}
	return raws
}
