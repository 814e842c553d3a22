package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/KongYongGun/chapterfind/internal/detect"
)

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Detection: DetectionCfg{
			MinSpacing:         detect.MinSpacing,
			StrictErrors:       false,
			MaxWorkers:         4,
			UseBuiltinPatterns: true,
		},
		Input: InputCfg{
			Encoding: "utf-8",
		},
	}
}

// WriteDefault writes the default configuration to path, creating parent
// directories as needed. Refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
