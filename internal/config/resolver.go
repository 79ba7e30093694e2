// Package config resolves runtime settings from a YAML file, the
// environment, and CLI flags, recording where each value came from so
// `scorch config` can show the provenance.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type ValueSource string

const (
	SourceUnknown ValueSource = "unknown"
	SourceConfig  ValueSource = "config"
	SourceEnv     ValueSource = "env"
	SourceCLI     ValueSource = "cli"
	SourceDefault ValueSource = "default"
)

// ResolvedValue is a setting plus its provenance. From names the config
// file, environment variable, or flag that supplied the value.
type ResolvedValue struct {
	Value  string      `json:"value"`
	Source ValueSource `json:"source"`
	From   string      `json:"from,omitempty"`
}

// ResolveOptions carries the CLI-flag overrides into resolution. Empty
// fields mean the flag was not set.
type ResolveOptions struct {
	ConfigPath   string
	CLIDBPath    string
	CLIFormat    string
	CLIMaxItems  string
	CLIVocabPath string
}

// ResolvedConfig is the full resolved settings set. Precedence is
// defaults < config file < environment < CLI flags.
type ResolvedConfig struct {
	ConfigPath string `json:"config_path"`

	DBPath   ResolvedValue `json:"db_path"`
	Format   ResolvedValue `json:"format"`
	MaxItems ResolvedValue `json:"max_items"`

	// Vocabulary extensions appended to the engine's built-in tables.
	ExtraColors   []string `json:"extra_colors,omitempty"`
	ExtraStyles   []string `json:"extra_styles,omitempty"`
	ExtraClothing []string `json:"extra_clothing,omitempty"`
}

type fileConfig struct {
	DBPath   string `yaml:"db_path"`
	Format   string `yaml:"format"`
	MaxItems int    `yaml:"max_items"`
	Vocab    struct {
		Colors   []string `yaml:"colors"`
		Styles   []string `yaml:"styles"`
		Clothing []string `yaml:"clothing"`
	} `yaml:"vocab"`
}

// DefaultMaxItems caps how many records a single extraction surfaces
// through the CLI and MCP layers. The engine itself is uncapped.
const DefaultMaxItems = 200

func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".scorch", "config.yaml")
}

func DefaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".scorch", "scorch.db")
}

// ResolveConfig loads the config file (a missing file is not an error)
// and layers environment variables and CLI flags on top.
func ResolveConfig(opts ResolveOptions) (ResolvedConfig, error) {
	path := strings.TrimSpace(opts.ConfigPath)
	if path == "" {
		path = DefaultConfigPath()
	}

	out := ResolvedConfig{
		ConfigPath: path,
		DBPath:     ResolvedValue{Value: DefaultDBPath(), Source: SourceDefault, From: "built-in default"},
		Format:     ResolvedValue{Value: "text", Source: SourceDefault, From: "built-in default"},
		MaxItems:   ResolvedValue{Value: strconv.Itoa(DefaultMaxItems), Source: SourceDefault, From: "built-in default"},
	}

	cfg, err := loadConfig(path)
	if err != nil {
		return out, err
	}
	if cfg != nil {
		apply(&out.DBPath, cfg.DBPath, SourceConfig, path)
		apply(&out.Format, cfg.Format, SourceConfig, path)
		if cfg.MaxItems > 0 {
			apply(&out.MaxItems, strconv.Itoa(cfg.MaxItems), SourceConfig, path)
		}
		out.ExtraColors = cleanList(cfg.Vocab.Colors)
		out.ExtraStyles = cleanList(cfg.Vocab.Styles)
		out.ExtraClothing = cleanList(cfg.Vocab.Clothing)
	}

	applyEnv(&out.DBPath, "SCORCH_DB")
	applyEnv(&out.DBPath, "SCORCH_DB_PATH")
	applyEnv(&out.Format, "SCORCH_FORMAT")
	applyEnv(&out.MaxItems, "SCORCH_MAX_ITEMS")

	apply(&out.DBPath, opts.CLIDBPath, SourceCLI, "--db")
	apply(&out.Format, opts.CLIFormat, SourceCLI, "--format")
	apply(&out.MaxItems, opts.CLIMaxItems, SourceCLI, "--max-items")

	if vocabPath := strings.TrimSpace(opts.CLIVocabPath); vocabPath != "" {
		extra, err := loadConfig(vocabPath)
		if err != nil {
			return out, err
		}
		if extra != nil {
			out.ExtraColors = append(out.ExtraColors, cleanList(extra.Vocab.Colors)...)
			out.ExtraStyles = append(out.ExtraStyles, cleanList(extra.Vocab.Styles)...)
			out.ExtraClothing = append(out.ExtraClothing, cleanList(extra.Vocab.Clothing)...)
		}
	}

	out.DBPath.Value = expandUserPath(out.DBPath.Value)

	if err := validate(out); err != nil {
		return out, err
	}
	return out, nil
}

// MaxItemsValue parses the resolved cap. A non-numeric value was already
// rejected by validate, so this cannot fail after ResolveConfig.
func (r ResolvedConfig) MaxItemsValue() int {
	n, err := strconv.Atoi(r.MaxItems.Value)
	if err != nil || n < 0 {
		return DefaultMaxItems
	}
	return n
}

func validate(r ResolvedConfig) error {
	switch r.Format.Value {
	case "text", "json":
	default:
		return fmt.Errorf("format %q (from %s): want text or json", r.Format.Value, r.Format.From)
	}
	if _, err := strconv.Atoi(r.MaxItems.Value); err != nil {
		return fmt.Errorf("max_items %q (from %s): not a number", r.MaxItems.Value, r.MaxItems.From)
	}
	return nil
}

func apply(dst *ResolvedValue, raw string, source ValueSource, from string) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return
	}
	*dst = ResolvedValue{Value: v, Source: source, From: from}
}

func applyEnv(dst *ResolvedValue, envKey string) {
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		*dst = ResolvedValue{Value: v, Source: SourceEnv, From: envKey}
	}
}

func loadConfig(path string) (*fileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func expandUserPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
