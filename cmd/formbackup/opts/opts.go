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

package opts

import (
	"context"
	"os"

	"github.com/walteh/formbackup/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// DefaultConfigFile is read when --config is not given
const DefaultConfigFile = "formbackup.yaml"

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile     string
	ConfigExplicit bool
	Debug          bool
}

// 📚 LoadConfig loads the config file. A missing default file yields an empty
// config so every value can come from flags; a missing explicit file is an error.
func (o *RootOpts) LoadConfig(ctx context.Context) (*config.Config, error) {
	if !o.ConfigExplicit {
		if _, err := os.Stat(o.ConfigFile); errors.Is(err, os.ErrNotExist) {
			return &config.Config{}, nil
		}
	}

	cfg, err := config.Load(ctx, o.ConfigFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
