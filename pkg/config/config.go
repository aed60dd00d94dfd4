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
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/enumerize/pkg/enumgen"
	"gitlab.com/tozd/go/errors"
)

// DefaultPath is the config file looked up when none is given
const DefaultPath = ".enumerize.yaml"

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, filename string, data []byte) (*Config, error)

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

// 🛑 CancelPolicy decides what a cancelled prompt does
type CancelPolicy string

const (
	// CancelAbort stops the operation without editing the document
	CancelAbort CancelPolicy = "abort"
	// CancelDefault substitutes an empty name, no keys and no sorting
	CancelDefault CancelPolicy = "default"
)

// 📚 Config represents the complete configuration
type Config struct {
	TabSize        int          `json:"tab_size,omitempty" yaml:"tab_size,omitempty" hcl:"tab_size,optional"`
	Sort           string       `json:"sort,omitempty" yaml:"sort,omitempty" hcl:"sort,optional"`
	DataKeys       string       `json:"data_keys,omitempty" yaml:"data_keys,omitempty" hcl:"data_keys,optional"`
	OnCancel       CancelPolicy `json:"on_cancel,omitempty" yaml:"on_cancel,omitempty" hcl:"on_cancel,optional"`
	Backup         bool         `json:"backup,omitempty" yaml:"backup,omitempty" hcl:"backup,optional"`
	IgnorePatterns []string     `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty" hcl:"ignore_patterns,optional"`
	Jobs           int          `json:"jobs,omitempty" yaml:"jobs,omitempty" hcl:"jobs,optional"`

	location string
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, path, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	cfg.location = path
	return cfg, nil
}

// LoadOrDefault loads path, falling back to Default when path is the
// default location and does not exist. An explicitly chosen file must exist.
func LoadOrDefault(ctx context.Context, path string, explicit bool) (*Config, error) {
	if !explicit {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			zerolog.Ctx(ctx).Debug().Str("path", path).Msg("no config file, using defaults")
			return Default(), nil
		}
	}
	return Load(ctx, path)
}

// 🔍 Validate checks the configuration and fills in defaults
func (cfg *Config) Validate() error {
	if cfg.TabSize < 0 {
		return errors.Errorf("tab_size must be positive, got %d", cfg.TabSize)
	}
	if cfg.TabSize == 0 {
		cfg.TabSize = enumgen.DefaultTabSize
	}

	if _, err := enumgen.ParseSortMode(cfg.Sort); err != nil {
		return errors.Errorf("sort: %w", err)
	}
	if cfg.Sort == "" {
		cfg.Sort = enumgen.SortNone.String()
	}

	switch cfg.OnCancel {
	case "":
		cfg.OnCancel = CancelAbort
	case CancelAbort, CancelDefault:
	default:
		return errors.Errorf("on_cancel must be %q or %q, got %q", CancelAbort, CancelDefault, cfg.OnCancel)
	}

	if cfg.Jobs < 0 {
		return errors.Errorf("jobs must be positive, got %d", cfg.Jobs)
	}
	if cfg.Jobs == 0 {
		cfg.Jobs = 4
	}

	return nil
}

// SortMode returns the parsed sort setting
func (cfg *Config) SortMode() enumgen.SortMode {
	mode, _ := enumgen.ParseSortMode(cfg.Sort)
	return mode
}

// Location returns the file the config was loaded from, empty for defaults
func (cfg *Config) Location() string {
	return cfg.location
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("tab_size=%d sort=%s on_cancel=%s backup=%t jobs=%d", cfg.TabSize, cfg.Sort, cfg.OnCancel, cfg.Backup, cfg.Jobs)
}

// isEmptyDocument reports whether a decoder hit the end of an empty file
func isEmptyDocument(err error) bool {
	return errors.Is(err, io.EOF)
}

func hasSuffixFold(filename string, suffixes ...string) bool {
	name := strings.ToLower(strings.TrimSpace(filename))
	for _, s := range suffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}
