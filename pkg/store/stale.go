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
	"crypto/md5"
	"encoding/hex"
)

// 🔍 Digest returns the hex MD5 of content. Used for change detection only.
func Digest(content []byte) string {
	sum := md5.Sum(content)
	return hex.EncodeToString(sum[:])
}

// 🕵️ NeedsWrite reports whether remote must replace the file at path: the
// file is missing or its digest differs from the digest of remote
func (m *Manager) NeedsWrite(ctx context.Context, path string, remote []byte) (bool, error) {
	exists, err := m.FileExists(ctx, path)
	if err != nil {
		return false, err
	}
	if !exists {
		return true, nil
	}

	local, err := m.ReadFile(ctx, path)
	if err != nil {
		return false, err
	}

	return Digest(local) != Digest(remote), nil
}
