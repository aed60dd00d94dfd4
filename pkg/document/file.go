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

package document

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/enumerize/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔧 FileOptions configures a file document
type FileOptions struct {
	Selection text.Range // Selection to start with, collapsed for none
	Backup    bool       // Copy the original to <path>.bak before replacing
}

// 💾 File is a document backed by a file on disk
type File struct {
	*base
	path   string
	mode   os.FileMode
	backup bool
}

var _ Document = (*File)(nil)

// 🏭 OpenFile reads path into a new file document
func OpenFile(ctx context.Context, path string, opts FileOptions) (*File, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Errorf("getting absolute path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, errors.Errorf("checking file: %w", err)
	}
	if info.IsDir() {
		return nil, errors.Errorf("%s is a directory", path)
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", absPath).Int("bytes", len(content)).Msg("opened file document")

	return &File{
		base:   newBase(path, string(content), opts.Selection),
		path:   absPath,
		mode:   info.Mode().Perm(),
		backup: opts.Backup,
	}, nil
}

// Path returns the absolute path of the file
func (f *File) Path() string {
	return f.path
}

// Replace implements Document.Replace. The new content is written to a
// temporary file next to the original and renamed over it.
func (f *File) Replace(ctx context.Context, r text.Range, s string) error {
	logger := zerolog.Ctx(ctx)

	res, err := f.buffer().Replace(r, s)
	if err != nil {
		return errors.Errorf("replacing %s in %s: %w", r, f.name, err)
	}

	if f.backup {
		if err := writeFileAtomic(f.path+".bak", []byte(res.OriginalContent), f.mode); err != nil {
			return errors.Errorf("creating backup: %w", err)
		}
		logger.Debug().Str("path", f.path+".bak").Msg("wrote backup")
	}

	if err := writeFileAtomic(f.path, []byte(res.ModifiedContent), f.mode); err != nil {
		return errors.Errorf("writing %s: %w", f.name, err)
	}

	f.commit(res, s)

	logger.Debug().
		Str("path", f.path).
		Stringer("range", res.Range).
		Bool("modified", res.WasModified).
		Msg("replaced range in file")

	return nil
}

// writeFileAtomic writes content to a temp file in the target directory and
// renames it into place
func writeFileAtomic(path string, content []byte, mode os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tmpPath)
	}

	if _, err := tmp.Write(content); err != nil {
		cleanup()
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		cleanup()
		return errors.Errorf("setting temp file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Errorf("closing temp file: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}
