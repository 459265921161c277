// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultTimeout bounds a single asset download
const DefaultTimeout = 60 * time.Second

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config represents a backup run
type Config struct {
	ManifestPath  string   `json:"manifest" yaml:"manifest" hcl:"manifest,optional"`
	BackOfficeURL string   `json:"back_office_url" yaml:"back_office_url" hcl:"back_office_url,optional"`
	Destination   string   `json:"destination" yaml:"destination" hcl:"destination,optional"`
	Timeout       string   `json:"timeout,omitempty" yaml:"timeout,omitempty" hcl:"timeout,optional"`
	IgnoreForms   []string `json:"ignore_forms,omitempty" yaml:"ignore_forms,omitempty" hcl:"ignore_forms,optional"`

	timeout time.Duration
}

// 🎯 Load loads the configuration from a file; the parser is picked by extension.
// The result is not validated so callers can apply overrides first.
func Load(ctx context.Context, path string) (*Config, error) {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks required fields, normalizes values and sets defaults
func (cfg *Config) Validate() error {
	if cfg.ManifestPath == "" {
		return errors.Errorf("manifest is required")
	}
	if cfg.BackOfficeURL == "" {
		return errors.Errorf("back_office_url is required")
	}
	if cfg.Destination == "" {
		return errors.Errorf("destination is required")
	}

	cfg.BackOfficeURL = strings.TrimSpace(cfg.BackOfficeURL)
	if !strings.HasPrefix(cfg.BackOfficeURL, "http://") && !strings.HasPrefix(cfg.BackOfficeURL, "https://") {
		return errors.Errorf("back_office_url must be an http(s) url: %q", cfg.BackOfficeURL)
	}
	if !strings.HasSuffix(cfg.BackOfficeURL, "/") {
		cfg.BackOfficeURL += "/"
	}

	cfg.ManifestPath = filepath.Clean(cfg.ManifestPath)
	cfg.Destination = filepath.Clean(cfg.Destination)

	cfg.timeout = DefaultTimeout
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return errors.Errorf("parsing timeout %q: %w", cfg.Timeout, err)
		}
		if d <= 0 {
			return errors.Errorf("timeout must be positive: %q", cfg.Timeout)
		}
		cfg.timeout = d
	}

	for _, pattern := range cfg.IgnoreForms {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid ignore_forms pattern: %q", pattern)
		}
	}

	return nil
}

// HTTPTimeout returns the validated per-request timeout
func (cfg *Config) HTTPTimeout() time.Duration {
	if cfg.timeout == 0 {
		return DefaultTimeout
	}
	return cfg.timeout
}

// 🙈 IsIgnored reports whether a sanitized form name matches an ignore_forms pattern
func (cfg *Config) IsIgnored(name string) (bool, string) {
	for _, pattern := range cfg.IgnoreForms {
		if matched, _ := doublestar.Match(pattern, name); matched {
			return true, pattern
		}
	}
	return false, ""
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s (%s) -> %s", cfg.ManifestPath, cfg.BackOfficeURL, cfg.Destination)
}
