// Package config loads docthis settings from a YAML file with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alburdette619/docthis/documenter"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// FileName is the settings file looked up in the working directory.
const FileName = ".docthis.yaml"

// DefaultNewFileGlob selects the files the watcher documents.
const DefaultNewFileGlob = "**/*.{ts,js}"

// Config holds user settings.
type Config struct {
	IncludeTypes                      bool   `yaml:"includeTypes"`
	InferTypesFromNames               bool   `yaml:"inferTypesFromNames"`
	EnableHungarianNotationEvaluation bool   `yaml:"enableHungarianNotationEvaluation"`
	IncludeDescriptionTag             bool   `yaml:"includeDescriptionTag"`
	IncludeAuthorTag                  bool   `yaml:"includeAuthorTag"`
	AuthorName                        string `yaml:"authorName" validate:"required_if=IncludeAuthorTag true"`
	DocumentNewFile                   bool   `yaml:"documentNewFile"`
	DocumentNewFileGlob               string `yaml:"documentNewFileGlob" validate:"required"`
	LogLevel                          string `yaml:"logLevel" validate:"oneof=debug info warn error"`
}

var validate = validator.New()

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		IncludeTypes:        true,
		DocumentNewFileGlob: DefaultNewFileGlob,
		LogLevel:            "info",
	}
}

// Load reads the settings at path on top of the defaults. An empty path
// means FileName in the working directory; a missing default file is not an
// error. DOCTHIS_AUTHOR_NAME and DOCTHIS_LOG_LEVEL override the file.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = FileName
	}

	data, err := os.ReadFile(filepath.Clean(path))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if name := os.Getenv("DOCTHIS_AUTHOR_NAME"); name != "" {
		cfg.AuthorName = name
	}
	if level := os.Getenv("DOCTHIS_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Options converts the settings into documenter options.
func (c Config) Options() documenter.Options {
	return documenter.Options{
		IncludeTypes:      c.IncludeTypes,
		InferTypes:        c.InferTypesFromNames,
		HungarianNotation: c.EnableHungarianNotationEvaluation,
		DescriptionTag:    c.IncludeDescriptionTag,
		AuthorTag:         c.IncludeAuthorTag,
		AuthorName:        c.AuthorName,
	}
}
