package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load resolves the host configuration.
// Search order: customPath -> ~/.emupages/config.yaml -> ./configs/emupages.yaml -> defaults.
// Only an explicitly named file that fails to read or parse is an error;
// the fallback locations are best-effort.
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
			cfg = Default()
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "emupages.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
		cfg = Default()
	}

	return cfg, nil
}

// normalize fills in anything a partial file left empty.
func normalize(cfg Config) Config {
	def := Default()
	if cfg.Framebuffer.Device == "" {
		cfg.Framebuffer.Device = def.Framebuffer.Device
	}
	if cfg.Simulator.Listen == "" {
		cfg.Simulator.Listen = def.Simulator.Listen
	}
	if cfg.Simulator.Scale <= 0 {
		cfg.Simulator.Scale = def.Simulator.Scale
	}
	return cfg
}

func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".emupages", "config.yaml")
}
