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

// Package manifest decodes the tab-separated form export of the back office
// into ordered form records.
package manifest

import (
	"context"
	"encoding/csv"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// 🚦 Activity is the interpreted value of the active column
type Activity int

const (
	ActivityUnknown Activity = iota
	ActivityActive
	ActivityInactive
)

// String returns a string representation of Activity
func (a Activity) String() string {
	switch a {
	case ActivityActive:
		return "active"
	case ActivityInactive:
		return "inactive"
	default:
		return "unknown"
	}
}

// 📋 FormRecord is one manifest row
type FormRecord struct {
	Name   string // Raw form name
	URL    string // Form URL carrying the form identifier
	Active string // Raw active flag ("Yes", "No", anything else)
	Line   int    // 1-based line in the manifest, 0 when built in code
}

// Activity interprets the active flag. The comparison is literal; Decode has
// already trimmed the column.
func (r FormRecord) Activity() Activity {
	switch r.Active {
	case "Yes":
		return ActivityActive
	case "No":
		return ActivityInactive
	default:
		return ActivityUnknown
	}
}

const minColumns = 3

// 📖 Load reads and decodes a manifest file
func Load(ctx context.Context, fs afero.Fs, path string) ([]FormRecord, error) {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("loading manifest")

	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Errorf("opening manifest: %w", err)
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, errors.Errorf("decoding manifest %s: %w", path, err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Int("records", len(records)).Msg("manifest loaded")
	return records, nil
}

// 🔄 Decode parses a manifest. The first row is a header and is dropped.
// UTF-16 input must carry a byte order mark; anything else is read as UTF-8.
func Decode(r io.Reader) ([]FormRecord, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	reader := csv.NewReader(decoded)
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	var records []FormRecord
	header := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Errorf("reading row: %w", err)
		}

		line, _ := reader.FieldPos(0)

		if header {
			header = false
			continue
		}

		if isBlank(row) {
			continue
		}

		if len(row) < minColumns {
			return nil, errors.Errorf("line %d: expected at least %d columns, got %d", line, minColumns, len(row))
		}

		records = append(records, FormRecord{
			Name:   row[0],
			URL:    strings.TrimSpace(row[1]),
			Active: strings.TrimSpace(row[2]),
			Line:   line,
		})
	}

	return records, nil
}

func isBlank(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
