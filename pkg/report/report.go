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

// Package report accumulates per-form outcomes of a backup run and renders
// them as a spreadsheet-friendly table and a plain text summary.
package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/formbackup/pkg/form"
	"gitlab.com/tozd/go/errors"
)

const (
	// TableFileName is the name of the persisted tabular report
	TableFileName = "form_backup_report.csv"
	// SummaryFileName is the name of the persisted text summary
	SummaryFileName = "stats_report.txt"

	timestampLayout = "2006-01-02 15:04:05"
	tableSeparator  = ';'
	utf8BOM         = "\ufeff"
)

// 📊 Status classifies the outcome of one form
type Status int

const (
	StatusBackedUp Status = iota
	StatusSkipped
	StatusFailed
)

// String returns a string representation of Status
func (s Status) String() string {
	switch s {
	case StatusBackedUp:
		return "backed up"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Column returns the value shown in the "Backed up" column
func (s Status) Column() string {
	switch s {
	case StatusBackedUp:
		return "Yes"
	case StatusSkipped:
		return "No"
	default:
		return "Failed"
	}
}

// 📄 AssetResult is what happened to one asset file of a form
type AssetResult struct {
	Kind   form.Kind
	Path   string // Path relative to the destination root
	URL    string
	Result string // new, modified, unchanged or failed
	Err    error
}

// Failed reports whether the asset could not be fetched or written
func (a AssetResult) Failed() bool {
	return a.Err != nil
}

// 📋 Outcome is the result for one manifest record
type Outcome struct {
	FormName string
	Status   Status
	Reason   string
	Assets   []AssetResult
}

// FailedAssets returns how many asset files could not be synced
func (o Outcome) FailedAssets() int {
	n := 0
	for _, a := range o.Assets {
		if a.Failed() {
			n++
		}
	}
	return n
}

// Details returns the text of the "Details" column
func (o Outcome) Details() string {
	if o.Reason != "" {
		return o.Reason
	}
	if n := o.FailedAssets(); n > 0 {
		return fmt.Sprintf("%d of %d files failed", n, len(o.Assets))
	}
	return ""
}

// 📦 BackupReport is the complete result of a run
type BackupReport struct {
	Outcomes      []Outcome
	TotalForms    int
	BackedUpForms int
	SkippedForms  int
	FailedForms   int
	Start         time.Time
	End           time.Time
}

// 🏭 Build creates a report from outcomes and the run time span
func Build(outcomes []Outcome, start, end time.Time) *BackupReport {
	b := NewBuilder(start)
	for _, o := range outcomes {
		b.Add(o)
	}
	return b.Finish(end)
}

// Duration returns the elapsed time truncated to whole seconds
func (r *BackupReport) Duration() time.Duration {
	return r.End.Sub(r.Start).Truncate(time.Second)
}

// Rows returns the table rows, header first
func (r *BackupReport) Rows() [][]string {
	rows := make([][]string, 0, len(r.Outcomes)+1)
	rows = append(rows, []string{"Form name", "Backed up", "Details"})
	for _, o := range r.Outcomes {
		rows = append(rows, []string{o.FormName, o.Status.Column(), o.Details()})
	}
	return rows
}

// 📝 WriteTable writes the table as ';' separated values with a UTF-8 BOM
func (r *BackupReport) WriteTable(w io.Writer) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return errors.Errorf("writing byte order mark: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.Comma = tableSeparator
	if err := cw.WriteAll(r.Rows()); err != nil {
		return errors.Errorf("writing table: %w", err)
	}

	return nil
}

// 📝 Summary returns the human readable run summary
func (r *BackupReport) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Process started: %s\n", r.Start.Format(timestampLayout))
	fmt.Fprintf(&sb, "Process completed: %s\n", r.End.Format(timestampLayout))
	fmt.Fprintf(&sb, "Process duration: %d seconds\n", int(r.Duration().Seconds()))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Backed up %d forms\n", r.BackedUpForms)
	fmt.Fprintf(&sb, "Skipped %d inactive forms\n", r.SkippedForms)
	fmt.Fprintf(&sb, "Failed %d forms\n", r.FailedForms)
	fmt.Fprintf(&sb, "Total forms %d\n", r.TotalForms)
	return sb.String()
}

// 💾 Save writes both artifacts into dir
func (r *BackupReport) Save(ctx context.Context, fs afero.Fs, dir string) error {
	var table bytes.Buffer
	if err := r.WriteTable(&table); err != nil {
		return err
	}

	tablePath := filepath.Join(dir, TableFileName)
	if err := afero.WriteFile(fs, tablePath, table.Bytes(), 0644); err != nil {
		return errors.Errorf("saving %s: %w", TableFileName, err)
	}

	summaryPath := filepath.Join(dir, SummaryFileName)
	if err := afero.WriteFile(fs, summaryPath, []byte(r.Summary()), 0644); err != nil {
		return errors.Errorf("saving %s: %w", SummaryFileName, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("table", tablePath).
		Str("summary", summaryPath).
		Msg("report saved")

	return nil
}
