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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingsAccessors(t *testing.T) {
	classes := Classes{Numbers: "01", Letters: "ab", Strings: `"`, Delimiters: ";", Ignores: " "}
	settings := NewSettings(classes)

	assert.Equal(t, "01", settings.Numbers())
	assert.Equal(t, "ab", settings.Letters())
	assert.Equal(t, `"`, settings.Strings())
	assert.Equal(t, ";", settings.Delimiters())
	assert.Equal(t, " ", settings.Ignores())
	assert.Equal(t, classes, settings.Classes())

	assert.True(t, settings.IsNumber('1'))
	assert.True(t, settings.IsLetter('b'))
	assert.True(t, settings.IsString('"'))
	assert.True(t, settings.IsDelimiter(';'))
	assert.True(t, settings.IsIgnored(' '))
	assert.False(t, settings.IsNumber('a'))
}

func TestSettingsDefaultEmpty(t *testing.T) {
	settings := NewSettings(Classes{})
	for _, char := range "0a\" ;" {
		assert.Equal(t, Class_None, settings.Classify(char), "char: %q", char)
	}
	assert.NoError(t, settings.Validate())
}

func TestClassify(t *testing.T) {
	settings := NewSettings(Classes{
		Numbers:    "0123456789",
		Letters:    "abcx1",
		Strings:    `"'x`,
		Delimiters: "(),;'",
		Ignores:    " \t\n;",
	})

	testCases := []struct {
		char     rune
		expected Class
	}{
		{char: '7', expected: Class_Numbers},
		{char: 'a', expected: Class_Letters},
		{char: '"', expected: Class_Strings},
		{char: '(', expected: Class_Delimiters},
		{char: '\t', expected: Class_Ignores},
		{char: '?', expected: Class_None},
		// configured in more than one class
		{char: '1', expected: Class_Numbers},
		{char: 'x', expected: Class_Strings},
		{char: '\'', expected: Class_Strings},
		{char: ';', expected: Class_Ignores},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, settings.Classify(tc.char), "char: %q", tc.char)
	}
}

func TestValidate(t *testing.T) {
	disjoint := NewSettings(Classes{Numbers: "0123456789", Letters: "abc", Ignores: " "})
	assert.NoError(t, disjoint.Validate())

	overlapping := NewSettings(Classes{Numbers: "0123456789", Letters: "ab1", Delimiters: "b;"})
	err := overlapping.Validate()
	assert.EqualError(t, err, `characters "1" are configured as both numbers and letters`+"\n"+
		`characters "b" are configured as both letters and delimiters`)
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "numbers", Class_Numbers.String())
	assert.Equal(t, "none", Class_None.String())
	assert.Equal(t, "unknown class", Class(42).String())
}
