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

package operation

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/formbackup/pkg/form"
	"github.com/walteh/formbackup/pkg/log"
	"github.com/walteh/formbackup/pkg/manifest"
	"github.com/walteh/formbackup/pkg/report"
	"github.com/walteh/formbackup/pkg/store"
	"gitlab.com/tozd/go/errors"
)

const (
	reasonInactive = "inactive"
	reasonIgnored  = "ignored by pattern"
	statusFailed   = "failed"
)

// 🔄 SyncAll processes records in order and returns the run report. Per form
// and per file failures are recorded in the report, never returned.
func (e *Engine) SyncAll(ctx context.Context, records []manifest.FormRecord) *report.BackupReport {
	logger := zerolog.Ctx(ctx)
	logger.Info().Int("records", len(records)).Str("destination", e.store.Root()).Msg("starting backup")

	if e.console != nil {
		ctx = log.NewContext(ctx, e.console)
	}

	builder := report.NewBuilder(e.now())

	e.progress.Start(len(records))
	defer e.progress.Stop()

	for _, rec := range records {
		var outcome report.Outcome
		if err := ctx.Err(); err != nil {
			outcome = report.Outcome{
				FormName: rec.Name,
				Status:   report.StatusFailed,
				Reason:   err.Error(),
			}
		} else {
			outcome = e.syncRecord(ctx, rec)
		}

		builder.Add(outcome)
		e.progress.Increment(outcome.FormName)
	}

	r := builder.Finish(e.now())
	logger.Info().
		Int("backed_up", r.BackedUpForms).
		Int("skipped", r.SkippedForms).
		Int("failed", r.FailedForms).
		Msg("backup complete")
	return r
}

// 📋 syncRecord classifies one record and, when active, backs up its assets
func (e *Engine) syncRecord(ctx context.Context, rec manifest.FormRecord) report.Outcome {
	logger := zerolog.Ctx(ctx).With().Str("form", rec.Name).Int("line", rec.Line).Logger()

	console := log.FromContext(ctx)

	name, nameErr := form.SanitizeName(rec.Name)
	display := name
	if nameErr != nil {
		display = rec.Name
	}

	switch rec.Activity() {
	case manifest.ActivityInactive:
		logger.Debug().Msg("skipping inactive form")
		console.Infof("Skipping inactive form: %s", display)
		return report.Outcome{FormName: display, Status: report.StatusSkipped, Reason: reasonInactive}
	case manifest.ActivityUnknown:
		logger.Warn().Str("active", rec.Active).Msg("unknown active flag")
		console.Warningf("Skipping form %s: unknown active flag %q", display, rec.Active)
		return report.Outcome{FormName: display, Status: report.StatusSkipped, Reason: fmt.Sprintf("unknown active flag %q", rec.Active)}
	}

	if nameErr != nil {
		logger.Error().Err(nameErr).Msg("invalid form name")
		console.Errorf("line %d: invalid form name %q: %v", rec.Line, rec.Name, nameErr)
		return report.Outcome{FormName: rec.Name, Status: report.StatusFailed, Reason: nameErr.Error()}
	}

	if ignored, pattern := e.config.IsIgnored(name); ignored {
		logger.Debug().Str("pattern", pattern).Msg("skipping ignored form")
		console.Infof("Skipping ignored form: %s (%s)", name, pattern)
		return report.Outcome{FormName: name, Status: report.StatusSkipped, Reason: reasonIgnored}
	}

	identifier, err := form.ExtractIdentifier(rec.URL)
	if err != nil {
		logger.Error().Err(err).Str("url", rec.URL).Msg("cannot extract form identifier")
		console.Errorf("Form %s: cannot extract identifier from %q", name, rec.URL)
		return report.Outcome{FormName: name, Status: report.StatusFailed, Reason: err.Error()}
	}

	if err := e.store.CreateDir(ctx, name); err != nil {
		logger.Error().Err(err).Msg("cannot create form directory")
		console.Errorf("Form %s: %v", name, err)
		return report.Outcome{FormName: name, Status: report.StatusFailed, Reason: err.Error()}
	}

	console.StartFormOperation(ctx, log.FormOperation{
		Name:       name,
		Identifier: identifier,
		Directory:  filepath.Join(e.store.Root(), name),
	})
	defer console.EndFormOperation(ctx)

	outcome := report.Outcome{FormName: name, Status: report.StatusBackedUp}
	for _, kind := range form.Kinds {
		if err := ctx.Err(); err != nil {
			outcome.Assets = append(outcome.Assets, report.AssetResult{
				Kind:   kind,
				Path:   filepath.Join(name, form.FileName(name, kind)),
				URL:    form.DownloadURL(e.config.BackOfficeURL, identifier, kind),
				Result: statusFailed,
				Err:    err,
			})
			continue
		}
		outcome.Assets = append(outcome.Assets, e.syncAsset(ctx, name, identifier, kind))
	}

	return outcome
}

// 📥 syncAsset fetches one asset and writes it when the local copy is stale
func (e *Engine) syncAsset(ctx context.Context, name, identifier string, kind form.Kind) report.AssetResult {
	res := report.AssetResult{
		Kind: kind,
		Path: filepath.Join(name, form.FileName(name, kind)),
		URL:  form.DownloadURL(e.config.BackOfficeURL, identifier, kind),
	}

	logger := zerolog.Ctx(ctx).With().
		Str("form", name).
		Stringer("kind", kind).
		Str("url", res.URL).
		Logger()

	console := log.FromContext(ctx)

	content, err := e.fetcher.Fetch(ctx, res.URL)
	if err != nil {
		res.Err = errors.Errorf("fetching %s: %w", kind, err)
	} else {
		result, err := e.store.Sync(ctx, res.Path, content)
		if err != nil {
			res.Err = errors.Errorf("saving %s: %w", kind, err)
		} else {
			res.Result = result.String()
			logger.Debug().Str("path", res.Path).Str("result", res.Result).Msg("asset synced")
		}
	}

	if res.Err != nil {
		res.Result = statusFailed
		logger.Error().Err(res.Err).Msg("asset backup failed")
	}

	console.LogAssetOperation(ctx, log.AssetOperation{
		Path:       filepath.Base(res.Path),
		Kind:       kind.String(),
		Status:     res.Result,
		IsNew:      res.Result == store.ResultNew.String(),
		IsModified: res.Result == store.ResultModified.String(),
		IsFailed:   res.Err != nil,
		URL:        res.URL,
		Err:        res.Err,
	})

	return res
}
