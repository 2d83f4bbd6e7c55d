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

// classlex tokenizes text files with a character-class lexer and prints the tokens.
//
// Usage:
//
//	classlex [flags] [pattern ...]
//
// Patterns are file paths or doublestar globs, e.g. 'src/**/*.txt'. Files ending with .xz are decompressed. Without
// patterns the standard input is tokenized.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/EngFlow/classlex/internal/config"
	"github.com/EngFlow/classlex/internal/input"
	"github.com/EngFlow/classlex/internal/render"
	"github.com/EngFlow/classlex/lexer"
	"github.com/EngFlow/classlex/lexer/routines"
)

// Token kinds produced by the command line lexer.
const (
	kindNumber    = "number"
	kindWord      = "word"
	kindString    = "string"
	kindDelimiter = "delimiter"
	kindUnknown   = "unknown"
)

// Emits a single character token for every character outside the configured classes.
var unknownCharacters = lexer.ExtensionFunc[string](func(cursor *lexer.Cursor, tokens *[]lexer.Token[string]) bool {
	*tokens = append(*tokens, lexer.NewToken(kindUnknown, string(cursor.Char())))
	cursor.Advance()
	return true
})

func newLexer(settings *lexer.Settings, keepUnknown bool) *lexer.Lexer[string] {
	lx := lexer.New[string](settings).
		Numbers(routines.Span(kindNumber, lexer.Class_Numbers)).
		Letters(routines.Span(kindWord, lexer.Class_Letters)).
		Strings(routines.Quoted(kindString)).
		Delimiters(routines.Single(kindDelimiter))
	if keepUnknown {
		lx.Extend(unknownCharacters)
	}
	return lx
}

func lexDocument(lx *lexer.Lexer[string], format render.Format, name, text string, w io.Writer) error {
	tokens, err := lx.Run(text)
	if err != nil {
		return err
	}
	return render.Write(w, format, render.Document[string]{Name: name, Tokens: tokens})
}

// Override the configured classes with the class flags given explicitly on the command line.
func applyClassFlags(fs *flag.FlagSet, flagClasses lexer.Classes, classes *lexer.Classes) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "numbers":
			classes.Numbers = flagClasses.Numbers
		case "letters":
			classes.Letters = flagClasses.Letters
		case "strings":
			classes.Strings = flagClasses.Strings
		case "delimiters":
			classes.Delimiters = flagClasses.Delimiters
		case "ignores":
			classes.Ignores = flagClasses.Ignores
		}
	})
}

func logSettings(cfg config.Config) {
	data, err := cfg.Marshal()
	if err != nil {
		log.Printf("Failed to print effective settings: %v", err)
		return
	}
	log.Printf("Effective settings:\n%s", data)
}

func main() {
	var flagClasses lexer.Classes
	format := render.Format_Text
	configPath := flag.String("config", "", "Path to a YAML file defining the character classes")
	strict := flag.Bool("strict", false, "Fail if a character is configured in more than one class")
	keepUnknown := flag.Bool("unknown", false, "Emit characters outside every class as 'unknown' tokens instead of failing")
	interactive := flag.Bool("interactive", false, "Tokenize lines read from an interactive prompt")
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	flag.StringVar(&flagClasses.Numbers, "numbers", "", "Characters forming numbers (overrides config)")
	flag.StringVar(&flagClasses.Letters, "letters", "", "Characters forming words (overrides config)")
	flag.StringVar(&flagClasses.Strings, "strings", "", "Quote characters opening string literals (overrides config)")
	flag.StringVar(&flagClasses.Delimiters, "delimiters", "", "Single character delimiters (overrides config)")
	flag.StringVar(&flagClasses.Ignores, "ignores", "", "Characters skipped between tokens (overrides config)")
	flag.Var(&format, "format", "Output format: text or json")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
	}
	applyClassFlags(flag.CommandLine, flagClasses, &cfg.Classes)
	cfg.Strict = cfg.Strict || *strict

	if *verbose {
		logSettings(cfg)
	}

	settings, err := cfg.Settings()
	if err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}
	lx := newLexer(settings, *keepUnknown)

	if *interactive {
		if err := runInteractive(lx, format, os.Stdout); err != nil {
			log.Fatalf("Interactive session failed: %v", err)
		}
		return
	}

	if flag.NArg() == 0 {
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("Failed to read standard input: %v", err)
		}
		if err := lexDocument(lx, format, "", string(text), os.Stdout); err != nil {
			log.Fatalf("<stdin>: %v", err)
		}
		return
	}

	files, err := input.Expand(flag.Args())
	if err != nil {
		log.Fatalf("Failed to resolve inputs: %v", err)
	}

	failed := 0
	for _, file := range files {
		if *verbose {
			log.Printf("Tokenizing %v", file)
		}
		text, err := input.ReadFile(file)
		if err == nil {
			err = lexDocument(lx, format, file, text, os.Stdout)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", file, err)
			failed++
		}
	}
	if failed > 0 {
		log.Fatalf("Failed to tokenize %d of %d files", failed, len(files))
	}
}
