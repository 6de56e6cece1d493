package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configBaseName is the file name (without extension) searched for in config directories.
const configBaseName = "runner"

// searchExts lists the supported config extensions in lookup order.
var searchExts = []string{".yaml", ".yml", ".toml"}

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.{yaml,toml} -> ./configs/runner.{yaml,toml} -> embedded default.
//
// Files are overlaid on the defaults, so a file only needs the keys it changes.
// A custom path that is missing, unparsable or invalid is an error; the
// implicit locations are skipped when they do not exist.
func LoadRunner(customPath string) (RunnerConfig, error) {
	cfg := embeddedRunnerConfig()

	path := customPath
	if path == "" {
		path = findConfigFile()
	}
	if path == "" {
		return cfg, cfg.Validate()
	}

	if err := overlayFile(&cfg, path); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseRunner decodes a config document on top of the defaults.
// format is "yaml" or "toml".
func ParseRunner(data []byte, format string) (RunnerConfig, error) {
	cfg := embeddedRunnerConfig()
	if err := decode(&cfg, data, format); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// embeddedRunnerConfig returns the embedded YAML defaults, falling back to the
// hardcoded ones if the embed cannot be parsed.
func embeddedRunnerConfig() RunnerConfig {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig()
	}
	return cfg
}

func overlayFile(cfg *RunnerConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := decode(cfg, data, formatFor(path)); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func decode(cfg *RunnerConfig, data []byte, format string) error {
	switch format {
	case "toml":
		_, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
		return err
	case "yaml", "":
		if len(bytes.TrimSpace(data)) == 0 {
			return nil
		}
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config format %q", format)
	}
}

// formatFor picks the decoder from the file extension. Unknown extensions are read as YAML.
func formatFor(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return "toml"
	}
	return "yaml"
}

// findConfigFile returns the first existing config file in the implicit search path.
func findConfigFile() string {
	var dirs []string
	if dir := userConfigDir(); dir != "" {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "configs")

	for _, dir := range dirs {
		for _, ext := range searchExts {
			path := filepath.Join(dir, configBaseName+ext)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
	}
	return ""
}

// userConfigDir returns ~/.runner/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs")
}

// ResolvePath returns the file LoadRunner would read for customPath,
// or empty when only the embedded defaults apply.
func ResolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	return findConfigFile()
}
