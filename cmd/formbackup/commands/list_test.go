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

package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/formbackup/cmd/formbackup/opts"
	"github.com/walteh/formbackup/pkg/manifest"
)

func TestListRows(t *testing.T) {
	rows := listRows([]manifest.FormRecord{
		{Name: "A/B:C", URL: "https://h/form/12345/eng/x", Active: "Yes", Line: 2},
		{Name: "?*", URL: "https://h/nothing", Active: "Perhaps", Line: 3},
	})

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Line", "Directory", "Active", "Identifier"}, rows[0])
	assert.Equal(t, []string{"2", "ABC", "active", "12345"}, rows[1])
	assert.Equal(t, []string{"3", "(empty name)", "unknown", "(malformed url)"}, rows[2])
}

func TestListCommand(t *testing.T) {
	dir := t.TempDir()
	manifestPath := writeManifest(t, dir, "https://bo.example.com")

	out := &bytes.Buffer{}
	cmd := NewListCmd(&opts.RootOpts{ConfigFile: filepath.Join(dir, "absent.yaml")})
	cmd.SetArgs([]string{"--manifest", manifestPath})
	cmd.SetOut(out)

	ctx := zerolog.New(zerolog.TestWriter{T: t}).WithContext(context.Background())
	require.NoError(t, cmd.ExecuteContext(ctx))

	assert.Contains(t, out.String(), "Alpha")
	assert.Contains(t, out.String(), "inactive")
	assert.Contains(t, out.String(), "(malformed url)")
}

func TestListCommandRequiresManifest(t *testing.T) {
	cmd := NewListCmd(&opts.RootOpts{ConfigFile: filepath.Join(t.TempDir(), "absent.yaml")})
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest is required")
}
