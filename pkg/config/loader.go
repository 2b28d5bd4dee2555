package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config file names, in lookup order.
const (
	ConfigFileName     = "exprast.yaml"
	ConfigFileNameAlt  = "exprast.yml"
	ConfigFileNameTOML = "exprast.toml"
)

// EnvPrefix prefixes environment overrides: EXPRAST_MAX_DEPTH -> max_depth.
const EnvPrefix = "EXPRAST_"

// Load loads configuration. Precedence (highest to lowest):
// env vars > config file > defaults. An empty path skips the file layer.
// The file format is chosen by extension (.toml, otherwise YAML).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	if path != "" {
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
	}

	// 3. Environment variables (EXPRAST_ prefix)
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Unmarshal
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.TextUnmarshallerHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			Result:           &cfg,
			WeaklyTypedInput: true,
			TagName:          "koanf",
		},
	}); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// LoadFromDir loads configuration using the config file found in dir, if
// any. Without a file the result holds defaults and env overrides.
func LoadFromDir(dir string) (*Config, error) {
	return Load(FindConfigFile(dir))
}

// FindConfigFile returns the first config file present in dir, or "".
func FindConfigFile(dir string) string {
	for _, name := range []string{ConfigFileName, ConfigFileNameAlt, ConfigFileNameTOML} {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

func loadFile(k *koanf.Koanf, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		raw := map[string]interface{}{}
		if _, err := toml.DecodeFile(path, &raw); err != nil {
			return fmt.Errorf("error reading config file %s: %w", path, err)
		}
		if err := k.Load(confmap.Provider(raw, "."), nil); err != nil {
			return fmt.Errorf("error loading config file %s: %w", path, err)
		}
		return nil
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return nil
}
