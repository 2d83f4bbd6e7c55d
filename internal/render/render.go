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

// Package render prints token sequences for humans (text) or tools (JSON).
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/EngFlow/classlex/internal/collections"
	"github.com/EngFlow/classlex/lexer"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

type Format string

const (
	Format_Text Format = "text"
	Format_JSON Format = "json"
)

// String and Set implement flag.Value.
func (f Format) String() string { return string(f) }

func (f *Format) Set(value string) error {
	switch Format(value) {
	case Format_Text, Format_JSON:
		*f = Format(value)
		return nil
	default:
		return fmt.Errorf("unknown format %q, expected %q or %q", value, Format_Text, Format_JSON)
	}
}

// Document is the result of lexing one input.
type Document[K comparable] struct {
	Name   string
	Tokens []lexer.Token[K]
}

// Write renders doc in the given format followed by a newline.
//
// Text output is a single line of "[kind: value]" items, prefixed with "name: " when the document has a name. JSON
// output is an object {"name": ..., "tokens": [{"kind": ..., "value": ...}]}; kinds are converted with fmt.Sprint.
func Write[K comparable](w io.Writer, format Format, doc Document[K]) error {
	var line string
	switch format {
	case Format_Text:
		line = Text(doc)
	case Format_JSON:
		data, err := JSON(doc)
		if err != nil {
			return err
		}
		line = string(data)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

func Text[K comparable](doc Document[K]) string {
	items := strings.Join(collections.MapSlice(doc.Tokens, lexer.Token[K].String), " ")
	if doc.Name == "" {
		return items
	}
	return doc.Name + ": " + items
}

func JSON[K comparable](doc Document[K]) ([]byte, error) {
	tokens := collections.MapSlice(doc.Tokens, func(token lexer.Token[K]) any {
		return map[string]any{"kind": fmt.Sprint(token.Kind), "value": token.Value}
	})
	value, err := structpb.NewStruct(map[string]any{"name": doc.Name, "tokens": tokens})
	if err != nil {
		return nil, fmt.Errorf("failed to convert tokens: %w", err)
	}
	return protojson.Marshal(value)
}
