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
)

var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnboundRoutine      = errors.New("no scanning routine registered")
	ErrCursorOutOfRange    = errors.New("cursor read past the end of the text")
)

// LexerError describes why Lexer.Run aborted. Err is one of ErrUnexpectedCharacter, ErrUnboundRoutine or
// ErrCursorOutOfRange, so callers can test the kind with errors.Is.
type LexerError struct {
	Err      error
	Char     rune  // character under the cursor when the error occurred, zero past the end of the text
	Position int   // 0-based character index
	Class    Class // class of Char, Class_None for unexpected characters
}

func (e *LexerError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnboundRoutine):
		return fmt.Sprintf("%v for %v: char %q at position %d", e.Err, e.Class, e.Char, e.Position)
	case errors.Is(e.Err, ErrCursorOutOfRange):
		return fmt.Sprintf("%v: position %d", e.Err, e.Position)
	default:
		return fmt.Sprintf("%v %q at position %d", e.Err, e.Char, e.Position)
	}
}

func (e *LexerError) Unwrap() error {
	return e.Err
}
