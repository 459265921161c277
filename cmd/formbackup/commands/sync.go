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
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/formbackup/cmd/formbackup/opts"
	"github.com/walteh/formbackup/pkg/config"
	"github.com/walteh/formbackup/pkg/log"
	"github.com/walteh/formbackup/pkg/manifest"
	"github.com/walteh/formbackup/pkg/operation"
	"github.com/walteh/formbackup/pkg/remote"
	"github.com/walteh/formbackup/pkg/report"
	"github.com/walteh/formbackup/pkg/store"
	"gitlab.com/tozd/go/errors"
)

// syncFlags override values of the config file
type syncFlags struct {
	manifest      string
	backOfficeURL string
	destination   string
	timeout       string
	noProgress    bool
}

func (f *syncFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.manifest, "manifest", "m", "", "path of the form export (tab separated)")
	cmd.Flags().StringVarP(&f.backOfficeURL, "back-office-url", "u", "", "base URL of the back office")
	cmd.Flags().StringVarP(&f.destination, "destination", "o", "", "directory receiving the backup")
	cmd.Flags().StringVar(&f.timeout, "timeout", "", "per file download timeout (e.g. 30s)")
	cmd.Flags().BoolVar(&f.noProgress, "no-progress", false, "disable the progress bar")
}

func (f *syncFlags) apply(cfg *config.Config) {
	if f.manifest != "" {
		cfg.ManifestPath = f.manifest
	}
	if f.backOfficeURL != "" {
		cfg.BackOfficeURL = f.backOfficeURL
	}
	if f.destination != "" {
		cfg.Destination = f.destination
	}
	if f.timeout != "" {
		cfg.Timeout = f.timeout
	}
}

// NewSyncCmd creates a new sync command
func NewSyncCmd(rootOpts *opts.RootOpts) *cobra.Command {
	flags := &syncFlags{}
	fs := afero.NewOsFs()

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Back up every active form of the manifest",
		Long: `Sync mirrors the assets of every active form into the destination.
It will:
1. Read the manifest export
2. Download the five asset files of each active form
3. Rewrite only the files whose content changed
4. Write form_backup_report.csv and stats_report.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := zerolog.Ctx(ctx).With().Str("command", "sync").Logger()
			ctx = logger.WithContext(ctx)

			cfg, err := rootOpts.LoadConfig(ctx)
			if err != nil {
				return err
			}
			flags.apply(cfg)
			if err := cfg.Validate(); err != nil {
				return errors.Errorf("invalid configuration: %w", err)
			}

			records, err := manifest.Load(ctx, fs, cfg.ManifestPath)
			if err != nil {
				return errors.Errorf("reading manifest: %w", err)
			}

			st := store.New(fs, cfg.Destination)
			if err := st.CreateDir(ctx, "."); err != nil {
				return errors.Errorf("preparing destination: %w", err)
			}

			out := cmd.OutOrStdout()
			console := log.New(out, logger)
			ctx = log.NewContext(ctx, console)
			console.Header(fmt.Sprintf("backing up %d forms to %s", len(records), cfg.Destination))

			var progress operation.ProgressReporter
			if !flags.noProgress {
				progress = newProgressBar(cmd.ErrOrStderr(), logger)
			}

			engine, err := operation.New(operation.Options{
				Config:   cfg,
				Fetcher:  remote.NewHTTPFetcher(cfg.HTTPTimeout()),
				Store:    st,
				Progress: progress,
				Now:      time.Now,
			})
			if err != nil {
				return errors.Errorf("creating engine: %w", err)
			}

			r := engine.SyncAll(ctx, records)

			if err := r.Save(ctx, fs, cfg.Destination); err != nil {
				return errors.Errorf("saving report: %w", err)
			}

			console.LogNewline()
			fmt.Fprintln(out, pterm.DefaultBox.WithTitle("Backup summary").Sprint(r.Summary()))
			console.Successf("Report saved to %s", cfg.Destination)
			if r.FailedForms > 0 {
				console.Warningf("%d forms failed, see %s", r.FailedForms, report.TableFileName)
			}

			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
