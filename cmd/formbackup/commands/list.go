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
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/formbackup/cmd/formbackup/opts"
	"github.com/walteh/formbackup/pkg/form"
	"github.com/walteh/formbackup/pkg/manifest"
	"gitlab.com/tozd/go/errors"
)

// NewListCmd creates a new list command
func NewListCmd(rootOpts *opts.RootOpts) *cobra.Command {
	var manifestPath string
	fs := afero.NewOsFs()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Preview the manifest without downloading anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := rootOpts.LoadConfig(ctx)
			if err != nil {
				return err
			}
			if manifestPath != "" {
				cfg.ManifestPath = manifestPath
			}
			if cfg.ManifestPath == "" {
				return errors.New("manifest is required")
			}

			records, err := manifest.Load(ctx, fs, cfg.ManifestPath)
			if err != nil {
				return errors.Errorf("reading manifest: %w", err)
			}

			table, err := pterm.DefaultTable.
				WithHasHeader().
				WithData(listRows(records)).
				Srender()
			if err != nil {
				return errors.Errorf("rendering table: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "path of the form export (tab separated)")
	return cmd
}

// 📋 listRows describes how each record would be handled
func listRows(records []manifest.FormRecord) [][]string {
	rows := [][]string{{"Line", "Directory", "Active", "Identifier"}}
	for _, rec := range records {
		dir, err := form.SanitizeName(rec.Name)
		if err != nil {
			dir = "(empty name)"
		}

		identifier, err := form.ExtractIdentifier(rec.URL)
		if err != nil {
			identifier = "(malformed url)"
		}

		rows = append(rows, []string{strconv.Itoa(rec.Line), dir, rec.Activity().String(), identifier})
	}
	return rows
}
