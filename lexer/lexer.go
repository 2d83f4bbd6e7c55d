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

// Package lexer provides a character-class-driven tokenizer engine. The caller configures which characters are numbers,
// letters, string quotes, delimiters and ignorable characters, and registers a scanning routine per class. The engine
// walks the input one character at a time, classifies the current character and hands the cursor over to the matching
// routine, which consumes as many characters as it needs and returns one token.
//
// The engine is a building block for hand-written lexers: classification is fixed for a run, token extraction is
// pluggable. Characters outside every class can be handled by an Extension.
package lexer

type (
	// Routine consumes one token starting at the current character of the cursor. The routine must advance the cursor
	// past every character it consumes; the lexer never advances on its behalf. A routine that does not advance makes
	// Lexer.Run loop forever.
	Routine[K comparable] func(cursor *Cursor, settings *Settings) Token[K]

	// Extension handles characters that belong to none of the configured classes. Attempt returns false if it does not
	// recognize the current character. Otherwise it must advance the cursor and may append any number of tokens.
	Extension[K comparable] interface {
		Attempt(cursor *Cursor, tokens *[]Token[K]) bool
	}

	// ExtensionFunc adapts a function to the Extension interface.
	ExtensionFunc[K comparable] func(cursor *Cursor, tokens *[]Token[K]) bool

	// Lexer breaks the input text into a sequence of tokens using the routines registered per character class.
	//
	// A Lexer may be reused for many inputs. Concurrent Run calls are safe as long as the registered routines and the
	// extension are stateless.
	Lexer[K comparable] struct {
		settings  *Settings
		routines  map[Class]Routine[K]
		extension Extension[K]
	}
)

func (fn ExtensionFunc[K]) Attempt(cursor *Cursor, tokens *[]Token[K]) bool {
	return fn(cursor, tokens)
}

func New[K comparable](settings *Settings) *Lexer[K] {
	return &Lexer[K]{settings: settings, routines: make(map[Class]Routine[K], 4)}
}

func (lx *Lexer[K]) Settings() *Settings {
	return lx.settings
}

// Numbers registers the routine for Class_Numbers, replacing any previous one.
func (lx *Lexer[K]) Numbers(routine Routine[K]) *Lexer[K] {
	return lx.register(Class_Numbers, routine)
}

// Letters registers the routine for Class_Letters, replacing any previous one.
func (lx *Lexer[K]) Letters(routine Routine[K]) *Lexer[K] {
	return lx.register(Class_Letters, routine)
}

// Strings registers the routine for Class_Strings, replacing any previous one.
func (lx *Lexer[K]) Strings(routine Routine[K]) *Lexer[K] {
	return lx.register(Class_Strings, routine)
}

// Delimiters registers the routine for Class_Delimiters, replacing any previous one.
func (lx *Lexer[K]) Delimiters(routine Routine[K]) *Lexer[K] {
	return lx.register(Class_Delimiters, routine)
}

// Extend sets the extension consulted for unclassified characters. Passing nil restores the default, which handles
// nothing.
func (lx *Lexer[K]) Extend(extension Extension[K]) *Lexer[K] {
	lx.extension = extension
	return lx
}

func (lx *Lexer[K]) register(class Class, routine Routine[K]) *Lexer[K] {
	lx.routines[class] = routine
	return lx
}

func (lx *Lexer[K]) extend(cursor *Cursor, tokens *[]Token[K]) bool {
	return lx.extension != nil && lx.extension.Attempt(cursor, tokens)
}

// Run tokenizes the whole text. On failure it returns a *LexerError and no tokens.
//
// Ignored characters are skipped. Every other character is dispatched to the routine of its class (see
// Settings.Classify for the precedence), or to the extension if it belongs to no class.
func (lx *Lexer[K]) Run(text string) (tokens []Token[K], err error) {
	cursor := NewCursor(text)

	defer func() {
		if r := recover(); r != nil {
			rangeErr, ok := r.(*CursorRangeError)
			if !ok {
				panic(r)
			}
			tokens, err = nil, &LexerError{Err: ErrCursorOutOfRange, Position: rangeErr.Position}
		}
	}()

	cursor.Advance()
	for cursor.HasChar() {
		char := cursor.Char()
		switch class := lx.settings.Classify(char); class {
		case Class_Ignores:
			cursor.Advance()
		case Class_None:
			position := cursor.Position()
			if !lx.extend(cursor, &tokens) {
				return nil, &LexerError{Err: ErrUnexpectedCharacter, Char: char, Position: position}
			}
		default:
			routine := lx.routines[class]
			if routine == nil {
				return nil, &LexerError{Err: ErrUnboundRoutine, Char: char, Position: cursor.Position(), Class: class}
			}
			tokens = append(tokens, routine(cursor, lx.settings))
		}
	}

	return tokens, nil
}
