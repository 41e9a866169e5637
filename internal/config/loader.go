package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// LoadScenario loads a scenario configuration.
// Search order: customPath -> ~/.hitbox/configs/scenario.yaml -> ./configs/scenario.yaml -> embedded default
// A user or local file that fails to parse or validate is skipped with a
// warning on logger. A nil logger discards the warnings.
func LoadScenario(customPath string, logger *log.Logger) (ScenarioConfig, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ScenarioConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return parseScenario(data, customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("scenario.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			cfg, err := parseScenario(data, userCfgPath)
			if err == nil {
				return cfg, nil
			}
			logger.Warn("skipping scenario config", "path", userCfgPath, "error", err)
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(localConfigPath); err == nil {
		cfg, err := parseScenario(data, localConfigPath)
		if err == nil {
			return cfg, nil
		}
		logger.Warn("skipping scenario config", "path", localConfigPath, "error", err)
	}

	// Use embedded default YAML
	cfg, err := parseScenario(defaultScenarioYAML, "embedded default")
	if err != nil {
		return DefaultScenarioConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

const localConfigPath = "configs/scenario.yaml"

// parseScenario decodes YAML on top of the hardcoded defaults, so omitted
// tuning fields keep sensible values.
func parseScenario(data []byte, source string) (ScenarioConfig, error) {
	cfg := DefaultScenarioConfig()
	cfg.Bodies = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ScenarioConfig{}, fmt.Errorf("failed to parse config %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return ScenarioConfig{}, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hitbox", "configs", filename)
}
