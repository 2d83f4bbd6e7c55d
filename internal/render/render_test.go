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

package render

import (
	"bytes"
	"flag"
	"strings"
	"testing"

	"github.com/EngFlow/classlex/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

var numbers = Document[string]{
	Name: "numbers.txt",
	Tokens: []lexer.Token[string]{
		{Kind: "number", Value: "123"},
		{Kind: "number", Value: "456"},
	},
}

func TestText(t *testing.T) {
	testCases := []struct {
		doc      Document[string]
		expected string
	}{
		{doc: numbers, expected: "numbers.txt: [number: 123] [number: 456]"},
		{doc: Document[string]{Tokens: numbers.Tokens}, expected: "[number: 123] [number: 456]"},
		{doc: Document[string]{Name: "empty"}, expected: "empty: "},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Text(tc.doc))
	}
}

func TestJSON(t *testing.T) {
	data, err := JSON(numbers)
	require.NoError(t, err)

	var decoded structpb.Struct
	require.NoError(t, protojson.Unmarshal(data, &decoded))
	assert.Equal(t, map[string]any{
		"name": "numbers.txt",
		"tokens": []any{
			map[string]any{"kind": "number", "value": "123"},
			map[string]any{"kind": "number", "value": "456"},
		},
	}, decoded.AsMap())
}

func TestJSONNonStringKinds(t *testing.T) {
	doc := Document[int]{Tokens: []lexer.Token[int]{{Kind: 7, Value: "x"}}}
	data, err := JSON(doc)
	require.NoError(t, err)

	var decoded structpb.Struct
	require.NoError(t, protojson.Unmarshal(data, &decoded))
	assert.Equal(t, []any{map[string]any{"kind": "7", "value": "x"}}, decoded.AsMap()["tokens"])
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Format_Text, numbers))
	assert.Equal(t, "numbers.txt: [number: 123] [number: 456]\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, Format_JSON, numbers))
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))

	assert.Error(t, Write(&buf, Format("xml"), numbers))
}

func TestFormatFlag(t *testing.T) {
	format := Format_Text
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	fs.Var(&format, "format", "")

	require.NoError(t, fs.Parse([]string{"-format", "json"}))
	assert.Equal(t, Format_JSON, format)

	assert.Error(t, fs.Parse([]string{"-format", "yaml"}))
	assert.Equal(t, Format_JSON, format)
}
