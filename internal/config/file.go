package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileValues holds the optional config-file defaults as strings, so
// the same coercion rules apply as for environment variables.
type fileValues map[string]string

// loadFileDefaults reads the optional YAML config file. A missing or
// unparseable file simply contributes no defaults; the launcher must
// never refuse to start because of an optional file.
func loadFileDefaults(env map[string]string) fileValues {
	path := env[envConfigFile]
	if strings.TrimSpace(path) == "" {
		path = defaultConfigPath(env)
	}
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil
	}
	values := make(fileValues, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			values[key] = v
		case bool:
			values[key] = strconv.FormatBool(v)
		case int:
			values[key] = strconv.Itoa(v)
		case float64:
			values[key] = strconv.Itoa(int(v))
		}
	}
	return values
}

// defaultConfigPath resolves $XDG_CONFIG_HOME/tmenu/config.yaml with
// the usual ~/.config fallback.
func defaultConfigPath(env map[string]string) string {
	configDir := env["XDG_CONFIG_HOME"]
	if configDir == "" {
		home := env["HOME"]
		if home == "" {
			var err error
			home, err = os.UserHomeDir()
			if err != nil {
				return ""
			}
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "tmenu", "config.yaml")
}

func (f fileValues) strOr(key, fallback string) string {
	if v, ok := f[key]; ok {
		return v
	}
	return fallback
}

func (f fileValues) intOr(key string, fallback int) int {
	v, ok := f[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func (f fileValues) boolOr(key string, fallback bool) bool {
	v, ok := f[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
