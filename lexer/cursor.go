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

import "fmt"

// Cursor is the read head over the input text. Positions are 0-based character (rune) indices.
//
// A new Cursor points one before the first character, so the first call to Advance makes the first character current.
// The position never decreases.
type Cursor struct {
	text     []rune
	position int
}

// CursorRangeError is the panic value raised by Cursor.Char when there is no current character.
type CursorRangeError struct {
	Position int
	Length   int
}

func (e *CursorRangeError) Error() string {
	return fmt.Sprintf("%v: position %d, text length %d", ErrCursorOutOfRange, e.Position, e.Length)
}

func (e *CursorRangeError) Unwrap() error {
	return ErrCursorOutOfRange
}

func NewCursor(text string) *Cursor {
	return &Cursor{text: []rune(text), position: -1}
}

// Move to the next character. Advancing past the end is allowed and only makes HasChar return false.
func (c *Cursor) Advance() {
	c.position++
}

// Return the current character. Panics with *CursorRangeError if HasChar is false, so every access must be guarded.
func (c *Cursor) Char() rune {
	if !c.HasChar() {
		panic(&CursorRangeError{Position: c.position, Length: len(c.text)})
	}
	return c.text[c.position]
}

func (c *Cursor) HasChar() bool {
	return c.position >= 0 && c.position < len(c.text)
}

func (c *Cursor) Position() int {
	return c.position
}

// Return the characters in [from, to). Routines use it to build a token value from the position where the token
// started, e.g. cursor.Text(start, cursor.Position()). Panics with *CursorRangeError if the range is outside the text.
func (c *Cursor) Text(from, to int) string {
	if from < 0 || from > to || to > len(c.text) {
		panic(&CursorRangeError{Position: to, Length: len(c.text)})
	}
	return string(c.text[from:to])
}

// Number of characters in the text.
func (c *Cursor) Len() int {
	return len(c.text)
}
