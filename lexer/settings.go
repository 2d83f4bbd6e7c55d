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

package lexer

import (
	"errors"
	"fmt"

	"github.com/EngFlow/classlex/internal/collections"
)

// Class is a character class a character may belong to.
type Class int

const (
	// Character not configured in any class.
	Class_None Class = iota

	// Characters skipped by the lexer without producing a token.
	Class_Ignores

	Class_Numbers
	Class_Strings
	Class_Letters
	Class_Delimiters
)

// Order in which classes are checked. When a character is configured in more than one class, the first class in this
// list wins. The order is fixed and must not be changed.
var classPrecedence = []Class{Class_Ignores, Class_Numbers, Class_Strings, Class_Letters, Class_Delimiters}

func (c Class) String() string {
	switch c {
	case Class_None:
		return "none"
	case Class_Ignores:
		return "ignores"
	case Class_Numbers:
		return "numbers"
	case Class_Strings:
		return "strings"
	case Class_Letters:
		return "letters"
	case Class_Delimiters:
		return "delimiters"
	default:
		return "unknown class"
	}
}

// Classes lists the characters configured for each class. Every field defaults to empty.
type Classes struct {
	Numbers    string `yaml:"numbers"`
	Letters    string `yaml:"letters"`
	Strings    string `yaml:"strings"`
	Delimiters string `yaml:"delimiters"`
	Ignores    string `yaml:"ignores"`
}

// Settings is the read-only lexer configuration. A single Settings value may be shared by any number of Lexers.
type Settings struct {
	classes Classes
	sets    map[Class]collections.Set[rune]
}

func NewSettings(classes Classes) *Settings {
	return &Settings{
		classes: classes,
		sets: map[Class]collections.Set[rune]{
			Class_Ignores:    collections.RunesOf(classes.Ignores),
			Class_Numbers:    collections.RunesOf(classes.Numbers),
			Class_Strings:    collections.RunesOf(classes.Strings),
			Class_Letters:    collections.RunesOf(classes.Letters),
			Class_Delimiters: collections.RunesOf(classes.Delimiters),
		},
	}
}

func (s *Settings) Numbers() string { return s.classes.Numbers }
func (s *Settings) Letters() string { return s.classes.Letters }
func (s *Settings) Strings() string { return s.classes.Strings }
func (s *Settings) Delimiters() string { return s.classes.Delimiters }
func (s *Settings) Ignores() string { return s.classes.Ignores }

// Classes returns a copy of the configured characters.
func (s *Settings) Classes() Classes { return s.classes }

// Contains reports whether char is configured in the given class, regardless of precedence.
func (s *Settings) Contains(class Class, char rune) bool {
	return s.sets[class].Contains(char)
}

func (s *Settings) IsNumber(char rune) bool { return s.Contains(Class_Numbers, char) }
func (s *Settings) IsLetter(char rune) bool { return s.Contains(Class_Letters, char) }
func (s *Settings) IsString(char rune) bool { return s.Contains(Class_Strings, char) }
func (s *Settings) IsDelimiter(char rune) bool { return s.Contains(Class_Delimiters, char) }
func (s *Settings) IsIgnored(char rune) bool { return s.Contains(Class_Ignores, char) }

// Classify returns the first class containing char, checking ignores, numbers, strings, letters and delimiters in that
// order. Returns Class_None if char is not configured.
func (s *Settings) Classify(char rune) Class {
	for _, class := range classPrecedence {
		if s.Contains(class, char) {
			return class
		}
	}
	return Class_None
}

// Validate reports characters configured in more than one class. Overlapping classes are not an error for the lexer
// itself, which resolves them by precedence, but usually indicate a configuration mistake.
func (s *Settings) Validate() error {
	var errs []error
	for i, first := range classPrecedence {
		for _, second := range classPrecedence[i+1:] {
			shared := s.sets[first].Intersect(s.sets[second])
			if len(shared) > 0 {
				errs = append(errs, fmt.Errorf("characters %q are configured as both %v and %v",
					string(collections.Sorted(shared)), first, second))
			}
		}
	}
	return errors.Join(errs...)
}
