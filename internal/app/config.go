package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the file name written by `killerpack init`.
const DefaultConfigFile = "killerpack.yaml"

// Config holds runtime wiring options for a build.
//
// Extensions are matched case-insensitively. CheckPartition requires every
// puzzle's cages to cover each board cell exactly once.
type Config struct {
	Input          string   `yaml:"input" validate:"required"`
	Archive        string   `yaml:"archive" validate:"required,nefield=Index"`
	Index          string   `yaml:"index" validate:"required"`
	Extensions     []string `yaml:"extensions" validate:"min=1,dive,startswith=."`
	CheckPartition bool     `yaml:"validate"`
	LogLevel       string   `yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
}

// DefaultConfig returns the layout the puzzle collection has always used.
func DefaultConfig() Config {
	return Config{
		Input:      "plain",
		Archive:    "lua/puzzles.bin",
		Index:      "lua/index.bin",
		Extensions: []string{".txt"},
		LogLevel:   "info",
	}
}

var configValidator = validator.New()

// Validate checks the configuration for missing or conflicting values.
func (c Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig reads a YAML config from path on top of DefaultConfig.
// Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// WriteConfig writes cfg as YAML to path. An existing file is left alone and
// reported as an error.
func WriteConfig(path string, cfg Config) error {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return fmt.Errorf("write config: %w", err)
	}
	return f.Close()
}
