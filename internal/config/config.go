// Package config loads bundle-checker settings from a YAML, TOML or JSON file.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	readConfigFileErrFmt = "read config file %s: %w"
	parseConfigErrFmt    = "parse config file %s: %w"
)

// DefaultFileNames are looked up, in order, when no explicit file is given
var DefaultFileNames = []string{
	".bundle-checker.yml",
	".bundle-checker.yaml",
	".bundle-checker.toml",
	"bundle-checker.json",
}

// LoadResult is a decoded config file
type LoadResult struct {
	Options Options
	Path    string
	Found   bool
}

// Load reads the explicit config file, or the first default file in dir.
// A missing default file is not an error.
func Load(dir, explicitPath string) (LoadResult, error) {
	path, found, err := resolvePath(dir, strings.TrimSpace(explicitPath))
	if err != nil || !found {
		return LoadResult{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return LoadResult{}, fmt.Errorf(readConfigFileErrFmt, path, err)
	}

	raw, err := Parse(path, data)
	if err != nil {
		return LoadResult{}, err
	}

	opts, err := DecodeOptions(raw)
	if err != nil {
		return LoadResult{}, fmt.Errorf(parseConfigErrFmt, path, err)
	}

	return LoadResult{Options: opts, Path: path, Found: true}, nil
}

// Parse decodes data into a raw option map based on the file extension
func Parse(path string, data []byte) (map[string]any, error) {
	raw := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf(parseConfigErrFmt, path, fmt.Errorf("invalid JSON config: %w", err))
		}
		if decoder.More() {
			return nil, fmt.Errorf(parseConfigErrFmt, path, fmt.Errorf("invalid JSON config: multiple JSON values"))
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, fmt.Errorf(parseConfigErrFmt, path, fmt.Errorf("invalid TOML config: %w", err))
		}
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf(parseConfigErrFmt, path, fmt.Errorf("invalid YAML config: %w", err))
		}
		if raw == nil {
			raw = map[string]any{}
		}
	default:
		return nil, fmt.Errorf("unsupported config file type: %s", path)
	}
	return raw, nil
}

func resolvePath(dir, explicitPath string) (string, bool, error) {
	if explicitPath != "" {
		candidate := explicitPath
		if !filepath.IsAbs(candidate) {
			candidate = filepath.Join(dir, candidate)
		}
		candidate = filepath.Clean(candidate)
		if _, err := os.Stat(candidate); err != nil {
			if os.IsNotExist(err) {
				return "", false, fmt.Errorf("config file not found: %s", candidate)
			}
			return "", false, fmt.Errorf(readConfigFileErrFmt, candidate, err)
		}
		return candidate, true, nil
	}

	for _, name := range DefaultFileNames {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !os.IsNotExist(err) {
			return "", false, fmt.Errorf(readConfigFileErrFmt, candidate, err)
		}
	}

	return "", false, nil
}
