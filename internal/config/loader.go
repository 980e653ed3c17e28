package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration.
// Search order: customPath -> ~/.ndsweeper/config.yaml -> ./configs/ndsweeper.yaml -> embedded default
//
// A custom path that cannot be read or parsed is an error. The other
// locations are skipped silently when missing or broken. Missing display
// settings are filled with defaults before validation.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if path := userConfigPath("config.yaml"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "ndsweeper.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	return LoadEmbedded(), nil
}

// LoadEmbedded parses the embedded default file, falling back to
// DefaultConfig if it is somehow broken.
func LoadEmbedded() Config {
	cfg, err := parse(defaultYAML)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

func parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	def := DefaultDisplay()
	if cfg.Display.TickRate == 0 {
		cfg.Display.TickRate = def.TickRate
	}
	if cfg.Display.CellWidth == 0 {
		cfg.Display.CellWidth = def.CellWidth
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ndsweeper", filename)
}
