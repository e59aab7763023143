/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidLogFormat is returned for a logging.format other than console or json.
	ErrInvalidLogFormat = errors.New("rtti(config): invalid log format")
	// ErrInvalidMaxUnwrap is returned for a negative naming.max_unwrap.
	ErrInvalidMaxUnwrap = errors.New("rtti(config): max_unwrap must not be negative")
)

// File is the on-disk (YAML) form of the configuration.
//
//	naming:
//	  qualified: false
//	  max_unwrap: 8
//	logging:
//	  level: info
//	  format: console
type File struct {
	Naming  NamingConfig  `yaml:"naming"`
	Logging LoggingConfig `yaml:"logging"`
}

// NamingConfig configures canonical name derivation.
type NamingConfig struct {
	Qualified bool `yaml:"qualified"`
	MaxUnwrap int  `yaml:"max_unwrap"`
}

// LoggingConfig configures the logger handed to the registry.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // zerolog level name
	Format string `yaml:"format"` // "console" or "json"
}

// Load reads and parses a YAML configuration file.
// Environment variables ($VAR, ${VAR}) are expanded before parsing.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration, applies defaults and validates it.
func Parse(data []byte) (*File, error) {
	data = []byte(os.ExpandEnv(string(data)))

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	f.setDefaults()

	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &f, nil
}

// DefaultFile returns the configuration used when no file is given.
func DefaultFile() *File {
	f := &File{}
	f.setDefaults()
	return f
}

// Options converts the file into functional options. The logger writes to out.
func (f *File) Options(out io.Writer) ([]Option, error) {
	logger, err := NewLogger(out, f.Logging.Level, f.Logging.Format)
	if err != nil {
		return nil, err
	}
	return []Option{
		WithMaxUnwrap(f.Naming.MaxUnwrap),
		WithQualifiedNames(f.Naming.Qualified),
		WithLogger(logger),
	}, nil
}

// NewLogger builds a zerolog logger for the given level and format.
func NewLogger(out io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level: %w", err)
	}

	switch format {
	case "", "console":
		output := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		return zerolog.New(output).Level(lvl).With().Timestamp().Logger(), nil
	case "json":
		return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
	default:
		return zerolog.Nop(), fmt.Errorf("%w: %q", ErrInvalidLogFormat, format)
	}
}

func (f *File) setDefaults() {
	if f.Naming.MaxUnwrap == 0 {
		f.Naming.MaxUnwrap = DefaultMaxUnwrap
	}
	if f.Logging.Level == "" {
		f.Logging.Level = "info"
	}
	if f.Logging.Format == "" {
		f.Logging.Format = "console"
	}
}

func (f *File) validate() error {
	if f.Naming.MaxUnwrap < 0 {
		return ErrInvalidMaxUnwrap
	}
	if f.Logging.Format != "console" && f.Logging.Format != "json" {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, f.Logging.Format)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(f.Logging.Level)); err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	return nil
}
