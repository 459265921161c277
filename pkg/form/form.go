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

// Package form holds the naming rules shared by every back-office form: how a
// raw manifest name becomes a directory name, where the form identifier lives
// in a form URL and which asset files belong to a form.
package form

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrMalformedURL is returned when a form URL does not carry an identifier
	ErrMalformedURL = errors.New("malformed form url")
	// ErrEmptyName is returned when a form name is empty once sanitized
	ErrEmptyName = errors.New("empty form name")
	// ErrReservedName is returned when a sanitized form name is "." or ".."
	ErrReservedName = errors.New("reserved form name")
)

const (
	identifierStart  = "form/"
	identifierEnd    = "/eng"
	illegalNameRunes = `\/:*?"<>|`
)

// 🧹 SanitizeName strips characters that cannot appear in a file name and trims
// surrounding whitespace. Names that would escape or alias the destination
// directory are rejected.
func SanitizeName(raw string) (string, error) {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(illegalNameRunes, r) {
			return -1
		}
		return r
	}, raw)

	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.Errorf("sanitizing %q: %w", raw, ErrEmptyName)
	}

	// the name becomes a directory under the destination root
	if name == "." || name == ".." {
		return "", errors.Errorf("sanitizing %q: %w", raw, ErrReservedName)
	}

	return name, nil
}

// 🔍 ExtractIdentifier returns the form identifier found between "form/" and "/eng"
func ExtractIdentifier(url string) (string, error) {
	_, rest, ok := strings.Cut(url, identifierStart)
	if !ok {
		return "", errors.Errorf("no %q marker in %q: %w", identifierStart, url, ErrMalformedURL)
	}

	id, _, ok := strings.Cut(rest, identifierEnd)
	if !ok {
		return "", errors.Errorf("no %q marker in %q: %w", identifierEnd, url, ErrMalformedURL)
	}

	if id == "" {
		return "", errors.Errorf("empty identifier in %q: %w", url, ErrMalformedURL)
	}

	return id, nil
}

// 🔗 DownloadURL composes the back-office download URL of one asset
func DownloadURL(baseURL, identifier string, kind Kind) string {
	return baseURL + "download/viewfile/form_id/" + identifier + "/control/" + kind.Segment()
}

// 📄 FileName returns the local file name of an asset of the given form
func FileName(sanitizedName string, kind Kind) string {
	return sanitizedName + kind.Suffix()
}
