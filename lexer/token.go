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

// Token is a (kind, value) pair produced by a scanning routine.
//
// Kind is an opaque label chosen by the caller, e.g. a string or an enum like TokenType in other lexers. Value is built
// up by the routine while it consumes characters and is considered complete once the routine returns.
type Token[K comparable] struct {
	Kind  K
	Value string
}

func NewToken[K comparable](kind K, value string) Token[K] {
	return Token[K]{Kind: kind, Value: value}
}

// Append a character to the token value. Each call copies the value, so routines consuming long runs should slice the
// input with Cursor.Text instead.
func (t *Token[K]) Append(char rune) {
	t.Value += string(char)
}

func (t Token[K]) String() string {
	return fmt.Sprintf("[%v: %s]", t.Kind, t.Value)
}
