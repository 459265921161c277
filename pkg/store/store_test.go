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

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func setupTestLogger(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.TestWriter{T: t}).With().Timestamp().Logger()
	return logger.WithContext(context.Background())
}

func TestDigest(t *testing.T) {
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", Digest(nil), "md5 of empty content")
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", Digest([]byte("hello")), "md5 of hello")
}

func TestNeedsWrite(t *testing.T) {
	ctx := setupTestLogger(t)

	tests := []struct {
		name   string
		setup  func(t *testing.T, fs afero.Fs)
		remote string
		want   bool
	}{
		{
			name:   "missing_file",
			remote: "<form/>",
			want:   true,
		},
		{
			name: "same_content",
			setup: func(t *testing.T, fs afero.Fs) {
				require.NoError(t, afero.WriteFile(fs, "/dest/Alpha/Alpha_form.css", []byte("body{}"), 0644))
			},
			remote: "body{}",
			want:   false,
		},
		{
			name: "different_content",
			setup: func(t *testing.T, fs afero.Fs) {
				require.NoError(t, afero.WriteFile(fs, "/dest/Alpha/Alpha_form.css", []byte("body{}"), 0644))
			},
			remote: "body{color:red}",
			want:   true,
		},
		{
			name: "empty_remote_over_content",
			setup: func(t *testing.T, fs afero.Fs) {
				require.NoError(t, afero.WriteFile(fs, "/dest/Alpha/Alpha_form.css", []byte("body{}"), 0644))
			},
			remote: "",
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			if tt.setup != nil {
				tt.setup(t, fs)
			}

			m := New(fs, "/dest")
			got, err := m.NeedsWrite(ctx, "Alpha/Alpha_form.css", []byte(tt.remote))
			require.NoError(t, err, "NeedsWrite should succeed")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSync(t *testing.T) {
	ctx := setupTestLogger(t)
	dir := t.TempDir()
	m := New(afero.NewOsFs(), dir)
	path := filepath.Join("Alpha", "Alpha_definition.xml")

	require.NoError(t, m.CreateDir(ctx, "Alpha"), "creating form directory")

	result, err := m.Sync(ctx, path, []byte("<v1/>"))
	require.NoError(t, err)
	assert.Equal(t, ResultNew, result)

	before, err := m.Stat(ctx, path)
	require.NoError(t, err)

	// make a rewrite observable through the modification time
	old := before.ModTime().Add(-time.Hour)
	require.NoError(t, m.Fs().Chtimes(filepath.Join(dir, path), old, old))

	result, err = m.Sync(ctx, path, []byte("<v1/>"))
	require.NoError(t, err)
	assert.Equal(t, ResultUnchanged, result)

	info, err := m.Stat(ctx, path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(old), "unchanged file should keep its modification time")

	result, err = m.Sync(ctx, path, []byte("<v2/>"))
	require.NoError(t, err)
	assert.Equal(t, ResultModified, result)

	content, err := m.ReadFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "<v2/>", string(content))

	exists, err := m.FileExists(ctx, path+".tmp")
	require.NoError(t, err)
	assert.False(t, exists, "temp file should not be left behind")
}

func TestCreateDir(t *testing.T) {
	ctx := setupTestLogger(t)
	fs := afero.NewMemMapFs()
	m := New(fs, "/dest")

	require.NoError(t, m.CreateDir(ctx, "Alpha"), "first create")
	require.NoError(t, m.CreateDir(ctx, "Alpha"), "existing directory is not an error")

	exists, err := afero.DirExists(fs, "/dest/Alpha")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFilesystemErrors(t *testing.T) {
	ctx := setupTestLogger(t)
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	m := New(fs, "/dest")

	err := m.CreateDir(ctx, "Alpha")
	require.Error(t, err, "creating a directory on a read-only fs should fail")

	var fsErr *FilesystemError
	require.True(t, errors.As(err, &fsErr), "error should be a FilesystemError")
	assert.Equal(t, "creating directory", fsErr.Op)
	assert.Equal(t, "Alpha", fsErr.Path)

	_, err = m.Sync(ctx, "Alpha/Alpha_form.css", []byte("body{}"))
	require.Error(t, err, "writing on a read-only fs should fail")
	require.True(t, errors.As(err, &fsErr), "error should be a FilesystemError")
	assert.Equal(t, "writing temp file", fsErr.Op)

	_, err = m.ReadFile(ctx, "missing.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading file missing.txt")
}

func TestWriteFile(t *testing.T) {
	ctx := setupTestLogger(t)
	fs := afero.NewMemMapFs()
	m := New(fs, "/dest")

	require.NoError(t, m.WriteFile(ctx, "reports/stats.txt", []byte("ok")))

	content, err := afero.ReadFile(fs, "/dest/reports/stats.txt")
	require.NoError(t, err)
	assert.Equal(t, "ok", string(content))
	assert.Equal(t, "/dest", m.Root())
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "new", ResultNew.String())
	assert.Equal(t, "modified", ResultModified.String())
	assert.Equal(t, "unchanged", ResultUnchanged.String())
	assert.Equal(t, "unknown", ResultUnknown.String())
}
