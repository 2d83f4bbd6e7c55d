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

// Package input locates and reads the documents passed to classlex.
package input

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/EngFlow/classlex/internal/collections"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/ulikunitz/xz"
)

// Files ending with this suffix are xz compressed.
const xzSuffix = ".xz"

// Expand resolves glob patterns (with ** support) to the list of matching files. Plain paths are returned as they are
// if the file exists. Each file is listed once, in the order of the first pattern matching it. A pattern that matches
// no file is an error.
func Expand(patterns []string) ([]string, error) {
	var files []string
	seen := make(collections.Set[string])
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("failed to expand %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("pattern %q matched no files", pattern)
		}
		slices.Sort(matches)
		for _, match := range matches {
			if !seen.Contains(match) {
				seen.Add(match)
				files = append(files, match)
			}
		}
	}
	return files, nil
}

// ReadFile returns the content of path, decompressing it if the name ends with ".xz".
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, xzSuffix) {
		xzr, err := xz.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("%s: %w", path, err)
		}
		r = xzr
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return string(content), nil
}
