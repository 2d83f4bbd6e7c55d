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

// Package routines provides ready-made scanning routines for lexer.Lexer. Each constructor returns a lexer.Routine
// producing tokens of the given kind.
package routines

import "github.com/EngFlow/classlex/lexer"

// Span consumes the longest run of characters belonging to class, e.g. "123" when registered for lexer.Class_Numbers.
//
// Membership is checked with Settings.Contains, so a character configured in another class as well still extends the
// run.
func Span[K comparable](kind K, class lexer.Class) lexer.Routine[K] {
	return func(cursor *lexer.Cursor, settings *lexer.Settings) lexer.Token[K] {
		start := cursor.Position()
		cursor.Advance()

		for cursor.HasChar() && settings.Contains(class, cursor.Char()) {
			cursor.Advance()
		}

		return lexer.NewToken(kind, cursor.Text(start, cursor.Position()))
	}
}

// Single consumes exactly one character, suitable for delimiters.
func Single[K comparable](kind K) lexer.Routine[K] {
	return func(cursor *lexer.Cursor, _ *lexer.Settings) lexer.Token[K] {
		token := lexer.NewToken(kind, string(cursor.Char()))
		cursor.Advance()
		return token
	}
}

// Quoted consumes a string literal opened by the current character and closed by the same character. Both quotes are
// kept in the token value. A backslash keeps the following character, including a quote, inside the literal.
// Unterminated literals extend to the end of the text.
func Quoted[K comparable](kind K) lexer.Routine[K] {
	return func(cursor *lexer.Cursor, _ *lexer.Settings) lexer.Token[K] {
		start := cursor.Position()
		quote := cursor.Char()
		cursor.Advance()

		for cursor.HasChar() {
			char := cursor.Char()
			cursor.Advance()

			if char == quote {
				break
			}
			if char == '\\' && cursor.HasChar() {
				cursor.Advance()
			}
		}

		return lexer.NewToken(kind, cursor.Text(start, cursor.Position()))
	}
}

// Keywords works like Span, then replaces the kind with keywords[value] if the consumed run is a keyword.
func Keywords[K comparable](fallback K, keywords map[string]K, class lexer.Class) lexer.Routine[K] {
	span := Span(fallback, class)
	return func(cursor *lexer.Cursor, settings *lexer.Settings) lexer.Token[K] {
		token := span(cursor, settings)
		if kind, ok := keywords[token.Value]; ok {
			token.Kind = kind
		}
		return token
	}
}
