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

package log

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestLogger(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_form_operation",
			op: func(t *testing.T, logger *Logger) {
				logger.StartFormOperation(context.Background(), FormOperation{
					Name:       "Exchange application",
					Identifier: "12345",
					Directory:  "/backup/Exchange application",
				})
				logger.LogAssetOperation(context.Background(), AssetOperation{
					Path:   "Exchange application_form.css",
					Kind:   "css",
					Status: "new",
					IsNew:  true,
				})
				logger.EndFormOperation(context.Background())
			},
			wantLogs: []string{
				"◆ Exchange application • 12345",
				"✓ Exchange application_form.css            css          new",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"ℹ️  info message",
				"⚠️  warning message",
				"❌ error message",
				"✅ success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("info %s", "test")
				logger.Warningf("warning %s", "test")
				logger.Errorf("error %s", "test")
				logger.Successf("success %s", "test")
			},
			wantLogs: []string{
				"ℹ️  info test",
				"⚠️  warning test",
				"❌ error test",
				"✅ success test",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("backing up forms")
			},
			wantLogs: []string{
				"formbackup • backing up forms",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.New(zerolog.TestWriter{T: t}))

			tt.op(t, logger)

			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	logger := Discard()

	ctx := NewContext(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx), "logger from context should be the same instance")

	assert.NotPanics(t, func() {
		FromContext(context.Background()).Info("dropped")
	}, "missing logger should fall back to a discarding logger")
}

func TestAssetOperationFormatting(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name string
		op   AssetOperation
		want string
	}{
		{
			name: "new_file",
			op:   AssetOperation{Path: "Alpha_definition.xml", Kind: "definition", Status: "new", IsNew: true},
			want: "    ✓ Alpha_definition.xml                     definition   new       ",
		},
		{
			name: "modified_file",
			op:   AssetOperation{Path: "Alpha_pdf.css", Kind: "pdfCss", Status: "modified", IsModified: true},
			want: "    ⟳ Alpha_pdf.css                            pdfCss       modified  ",
		},
		{
			name: "failed_file",
			op:   AssetOperation{Path: "Alpha_import.xslt", Kind: "importXslt", Status: "failed", IsFailed: true, Err: errors.New("status 404")},
			want: "    ✗ Alpha_import.xslt                        importXslt   failed    ",
		},
		{
			name: "unchanged_file",
			op:   AssetOperation{Path: "Alpha_form.css", Kind: "css", Status: "unchanged"},
			want: "    • Alpha_form.css                           css          unchanged ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.Nop())

			logger.LogAssetOperation(context.Background(), tt.op)

			assert.Equal(t, tt.want+"\n", buf.String(), "formatted output should match")
		})
	}
}
