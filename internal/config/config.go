// Copyright 2025 EngFlow Inc. All rights reserved.
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

// Package config loads classlex settings from YAML files:
//
//	classes:
//	  numbers: "0123456789"
//	  letters: "abcdefghijklmnopqrstuvwxyz"
//	  strings: "\"'"
//	  delimiters: "(){}[];,"
//	  ignores: " \t\r\n"
//	strict: true
//
// Classes omitted from the file keep their default characters; an explicit empty string disables a class.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/EngFlow/classlex/lexer"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Classes lexer.Classes `yaml:"classes"`
	// Reject settings where a character belongs to more than one class.
	Strict bool `yaml:"strict"`
}

const (
	asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_"
	asciiDigits  = "0123456789"
)

// Default returns the configuration used when no file is given, suitable for C-like languages.
func Default() Config {
	return Config{
		Classes: lexer.Classes{
			Numbers:    asciiDigits,
			Letters:    asciiLetters,
			Strings:    `"'`,
			Delimiters: "!#$%&()*+,-./:;<=>?@[\\]^`{|}~",
			Ignores:    " \t\v\f\r\n",
		},
	}
}

// Parse decodes a YAML document on top of Default. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Settings builds the lexer settings, validating them first in strict mode.
func (c Config) Settings() (*lexer.Settings, error) {
	settings := lexer.NewSettings(c.Classes)
	if c.Strict {
		if err := settings.Validate(); err != nil {
			return nil, err
		}
	}
	return settings, nil
}

// Marshal encodes the configuration back to YAML, e.g. to print the effective settings.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
