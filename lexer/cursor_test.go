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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorStartsBeforeFirstChar(t *testing.T) {
	cursor := NewCursor("ab")
	assert.Equal(t, -1, cursor.Position())
	assert.False(t, cursor.HasChar())

	cursor.Advance()
	assert.Equal(t, 0, cursor.Position())
	require.True(t, cursor.HasChar())
	assert.Equal(t, 'a', cursor.Char())
}

func TestCursorWalksCharacters(t *testing.T) {
	cursor := NewCursor("zß€")
	assert.Equal(t, 3, cursor.Len())

	var chars []rune
	for cursor.Advance(); cursor.HasChar(); cursor.Advance() {
		chars = append(chars, cursor.Char())
	}
	assert.Equal(t, []rune{'z', 'ß', '€'}, chars)
	assert.Equal(t, 3, cursor.Position())
}

func TestCursorAdvancePastEnd(t *testing.T) {
	cursor := NewCursor("a")
	for range 5 {
		cursor.Advance()
	}
	assert.Equal(t, 4, cursor.Position())
	assert.False(t, cursor.HasChar())
}

func TestCursorCharOutOfRange(t *testing.T) {
	testCases := []struct {
		text     string
		advances int
	}{
		{text: "", advances: 0},
		{text: "", advances: 1},
		{text: "abc", advances: 0},
		{text: "abc", advances: 4},
	}

	for _, tc := range testCases {
		cursor := NewCursor(tc.text)
		for range tc.advances {
			cursor.Advance()
		}

		err := recoverCharPanic(cursor)
		require.Error(t, err, "text: %q, advances: %d", tc.text, tc.advances)
		assert.True(t, errors.Is(err, ErrCursorOutOfRange))

		var rangeErr *CursorRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, tc.advances-1, rangeErr.Position)
		assert.Equal(t, len(tc.text), rangeErr.Length)
	}
}

func recoverCharPanic(cursor *Cursor) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	cursor.Char()
	return nil
}

func TestCursorRangeErrorMessage(t *testing.T) {
	cursor := NewCursor("abc")
	assert.PanicsWithError(t, "cursor read past the end of the text: position -1, text length 3", func() {
		cursor.Char()
	})
}

func TestCursorText(t *testing.T) {
	cursor := NewCursor("a€cd")
	assert.Equal(t, "a€c", cursor.Text(0, 3))
	assert.Equal(t, "€", cursor.Text(1, 2))
	assert.Equal(t, "", cursor.Text(4, 4))
	assert.Equal(t, "a€cd", cursor.Text(0, cursor.Len()))

	for _, bounds := range [][2]int{{-1, 1}, {2, 1}, {0, 5}} {
		assert.Panics(t, func() { cursor.Text(bounds[0], bounds[1]) }, "bounds: %v", bounds)
	}
}
