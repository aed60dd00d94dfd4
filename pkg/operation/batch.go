// Copyright 2025 walteh LLC
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

package operation

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔍 ExpandPatterns resolves doublestar patterns to a sorted, de-duplicated
// list of regular files, dropping any path matched by an ignore pattern.
func ExpandPatterns(ctx context.Context, patterns, ignores []string) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	for _, ignore := range ignores {
		if !doublestar.ValidatePathPattern(ignore) {
			return nil, errors.Errorf("invalid ignore pattern %q", ignore)
		}
	}

	seen := map[string]bool{}
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Errorf("expanding %q: %w", pattern, err)
		}

		for _, path := range matches {
			path = filepath.Clean(path)
			if seen[path] {
				continue
			}
			seen[path] = true

			ignored, err := matchesAny(ignores, path)
			if err != nil {
				return nil, err
			}
			if ignored {
				logger.Debug().Str("path", path).Msg("ignoring file")
				continue
			}
			files = append(files, path)
		}
	}

	slices.Sort(files)
	return files, nil
}

func matchesAny(patterns []string, path string) (bool, error) {
	for _, pattern := range patterns {
		matched, err := doublestar.PathMatch(pattern, path)
		if err != nil {
			return false, errors.Errorf("matching ignore pattern %q: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
		// Bare file patterns like "*.bak" also match by base name
		if !strings.ContainsRune(pattern, '/') {
			matched, err = doublestar.PathMatch(pattern, filepath.Base(path))
			if err != nil {
				return false, errors.Errorf("matching ignore pattern %q: %w", pattern, err)
			}
			if matched {
				return true, nil
			}
		}
	}
	return false, nil
}

// NameFromPath derives an enum name from a file name by dropping its
// directory and extension.
func NameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
