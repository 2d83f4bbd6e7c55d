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

// Package collections provides the small set of generic containers used by
// classlex: a Set type backing character classes and a slice transformation
// used when rendering tokens.
package collections

import (
	"iter"
	"slices"
)

// MapSeq applies `fn` to each element of `seq` and returns a sequence of the
// resulting values.
func MapSeq[T, V any](seq iter.Seq[T], fn func(T) V) iter.Seq[V] {
	return func(yield func(V) bool) {
		for t := range seq {
			if !yield(fn(t)) {
				return
			}
		}
	}
}

// MapSlice applies `fn` to each element of the slice `s` and returns a new
// slice of the resulting values.
//
// Example:
//
//	MapSlice([]rune{'a', 'b'}, func(r rune) string { return string(r) })
//	=> []string{"a", "b"}
func MapSlice[TSlice ~[]T, T, V any](s TSlice, fn func(T) V) []V {
	return slices.AppendSeq(make([]V, 0, len(s)), MapSeq(slices.Values(s), fn))
}
