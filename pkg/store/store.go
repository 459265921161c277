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

// Package store manages the destination tree: directory provisioning, atomic
// writes and the content comparison that decides whether a file is stale.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// 📊 Result is what Sync did to a file
type Result int

const (
	ResultUnknown   Result = iota
	ResultNew              // File didn't exist and was written
	ResultModified         // File existed with different content and was rewritten
	ResultUnchanged        // File exists and content matches
)

// String returns a string representation of Result
func (r Result) String() string {
	switch r {
	case ResultNew:
		return "new"
	case ResultModified:
		return "modified"
	case ResultUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// 💾 FilesystemError describes a failed directory or file operation
type FilesystemError struct {
	Op   string // Operation being performed
	Path string // Path relative to the store root
	Err  error  // Underlying error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// 🔧 Manager performs every filesystem operation under a root directory
type Manager struct {
	fs      afero.Fs
	baseDir string
}

// 🏭 New creates a store rooted at baseDir
func New(fs afero.Fs, baseDir string) *Manager {
	return &Manager{
		fs:      fs,
		baseDir: filepath.Clean(baseDir),
	}
}

// Root returns the root directory of the store
func (m *Manager) Root() string {
	return m.baseDir
}

// Fs returns the underlying filesystem
func (m *Manager) Fs() afero.Fs {
	return m.fs
}

// 🔒 getAbsPath returns the full path for a path relative to the root
func (m *Manager) getAbsPath(path string) string {
	return filepath.Join(m.baseDir, path)
}

// 📁 CreateDir creates path and its parents; an existing directory is not an error
func (m *Manager) CreateDir(ctx context.Context, path string) error {
	if err := m.fs.MkdirAll(m.getAbsPath(path), 0755); err != nil {
		return &FilesystemError{Op: "creating directory", Path: path, Err: err}
	}
	return nil
}

// FileExists reports whether path exists
func (m *Manager) FileExists(ctx context.Context, path string) (bool, error) {
	exists, err := afero.Exists(m.fs, m.getAbsPath(path))
	if err != nil {
		return false, &FilesystemError{Op: "checking file existence", Path: path, Err: err}
	}
	return exists, nil
}

// ReadFile returns the content of path
func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := afero.ReadFile(m.fs, m.getAbsPath(path))
	if err != nil {
		return nil, &FilesystemError{Op: "reading file", Path: path, Err: err}
	}
	return content, nil
}

// ✍️ WriteFileAtomic writes content to a temp file next to path, then renames it
func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	absPath := m.getAbsPath(path)
	tempPath := absPath + ".tmp"

	if err := afero.WriteFile(m.fs, tempPath, content, 0644); err != nil {
		return &FilesystemError{Op: "writing temp file", Path: path, Err: err}
	}

	if err := m.fs.Rename(tempPath, absPath); err != nil {
		_ = m.fs.Remove(tempPath)
		return &FilesystemError{Op: "renaming temp file", Path: path, Err: err}
	}

	return nil
}

// 🔄 Sync writes remote to path only when the local copy is missing or stale
func (m *Manager) Sync(ctx context.Context, path string, remote []byte) (Result, error) {
	exists, err := m.FileExists(ctx, path)
	if err != nil {
		return ResultUnknown, err
	}

	stale, err := m.NeedsWrite(ctx, path, remote)
	if err != nil {
		return ResultUnknown, err
	}

	if !stale {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("content unchanged, keeping local copy")
		return ResultUnchanged, nil
	}

	if err := m.WriteFileAtomic(ctx, path, remote); err != nil {
		return ResultUnknown, err
	}

	if exists {
		return ResultModified, nil
	}
	return ResultNew, nil
}

// WriteFile writes content to path, creating parent directories
func (m *Manager) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := m.CreateDir(ctx, filepath.Dir(path)); err != nil {
		return err
	}
	return m.WriteFileAtomic(ctx, path, content)
}

// Stat returns the file info of path
func (m *Manager) Stat(ctx context.Context, path string) (os.FileInfo, error) {
	info, err := m.fs.Stat(m.getAbsPath(path))
	if err != nil {
		return nil, &FilesystemError{Op: "stat", Path: path, Err: err}
	}
	return info, nil
}
