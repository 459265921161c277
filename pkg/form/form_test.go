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

package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "slash_and_colon", input: "A/B:C", want: "ABC"},
		{name: "all_illegal_runes", input: `a\b/c:d*e?f"g<h>i|j`, want: "abcdefghij"},
		{name: "trims_whitespace", input: "  Exchange application \t", want: "Exchange application"},
		{name: "trims_after_removal", input: " / Nomination ", want: "Nomination"},
		{name: "keeps_unicode", input: "Candidature été", want: "Candidature été"},
		{name: "empty", input: "", wantErr: ErrEmptyName},
		{name: "only_illegal", input: " ?*: ", wantErr: ErrEmptyName},
		{name: "parent_directory", input: "..", wantErr: ErrReservedName},
		{name: "parent_directory_after_removal", input: " ./.: ", wantErr: ErrReservedName},
		{name: "current_directory", input: " . ", wantErr: ErrReservedName},
		{name: "dots_inside_name", input: "v1..2", want: "v1..2"},
		{name: "three_dots", input: "...", want: "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeName(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err, "SanitizeName should fail")
				assert.ErrorIs(t, err, tt.wantErr, "error kind should match")
				return
			}
			require.NoError(t, err, "SanitizeName should succeed")
			assert.Equal(t, tt.want, got, "sanitized name should match")
		})
	}
}

func TestExtractIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{name: "valid", url: "https://host/form/12345/eng/x", want: "12345"},
		{name: "valid_trailing_eng", url: "https://host/backoffice/form/987/eng", want: "987"},
		{name: "first_markers_win", url: "https://host/form/1/eng/form/2/eng", want: "1"},
		{name: "missing_form_marker", url: "https://host/forms-12345/eng/x", wantErr: true},
		{name: "missing_eng_marker", url: "https://host/form/12345/fra/x", wantErr: true},
		{name: "empty_identifier", url: "https://host/form//eng", wantErr: true},
		{name: "empty_url", url: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractIdentifier(tt.url)
			if tt.wantErr {
				require.Error(t, err, "ExtractIdentifier should fail")
				assert.ErrorIs(t, err, ErrMalformedURL, "error should be ErrMalformedURL")
				return
			}
			require.NoError(t, err, "ExtractIdentifier should succeed")
			assert.Equal(t, tt.want, got, "identifier should match")
		})
	}
}

func TestKinds(t *testing.T) {
	require.Len(t, Kinds, 5, "there should be five asset kinds")

	want := []struct {
		name    string
		suffix  string
		segment string
	}{
		{"definition", "_definition.xml", "form_xml"},
		{"translation", "_translation.xml", "form_translation"},
		{"css", "_form.css", "form_css"},
		{"pdfCss", "_pdf.css", "form_pdf_css"},
		{"importXslt", "_import.xslt", "form_import_xslt"},
	}

	for i, k := range Kinds {
		assert.Equal(t, want[i].name, k.String(), "kind %d name", i)
		assert.Equal(t, want[i].suffix, k.Suffix(), "kind %d suffix", i)
		assert.Equal(t, want[i].segment, k.Segment(), "kind %d segment", i)
	}

	assert.Equal(t, "unknown", Kind(42).String())
}

func TestDownloadURLAndFileName(t *testing.T) {
	got := DownloadURL("https://bo.example.com/", "12345", KindPDFCSS)
	assert.Equal(t, "https://bo.example.com/download/viewfile/form_id/12345/control/form_pdf_css", got)

	assert.Equal(t, "Alpha_import.xslt", FileName("Alpha", KindImportXSLT))
}
