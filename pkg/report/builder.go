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

package report

import "time"

// 🏗️ Builder accumulates outcomes while a run progresses
type Builder struct {
	report BackupReport
}

// NewBuilder starts a report at start
func NewBuilder(start time.Time) *Builder {
	return &Builder{report: BackupReport{Start: start}}
}

// Add appends an outcome and updates the counters
func (b *Builder) Add(o Outcome) {
	b.report.Outcomes = append(b.report.Outcomes, o)
	b.report.TotalForms++
	switch o.Status {
	case StatusBackedUp:
		b.report.BackedUpForms++
	case StatusSkipped:
		b.report.SkippedForms++
	case StatusFailed:
		b.report.FailedForms++
	}
}

// Finish stamps the end time and returns the report
func (b *Builder) Finish(end time.Time) *BackupReport {
	r := b.report
	r.End = end
	r.Outcomes = append([]Outcome(nil), b.report.Outcomes...)
	return &r
}
