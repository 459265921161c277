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
	"time"

	"github.com/walteh/formbackup/pkg/config"
	"github.com/walteh/formbackup/pkg/log"
	"github.com/walteh/formbackup/pkg/remote"
	"github.com/walteh/formbackup/pkg/store"
	"gitlab.com/tozd/go/errors"
)

// 📈 ProgressReporter is told about forms as they are processed
type ProgressReporter interface {
	// Start is called once with the number of records
	Start(total int)
	// Increment is called after each record
	Increment(name string)
	// Stop is called once when the run ends
	Stop()
}

type nopProgress struct{}

func (nopProgress) Start(int)        {}
func (nopProgress) Increment(string) {}
func (nopProgress) Stop()            {}

// 🔧 Options contains the collaborators of an Engine
type Options struct {
	// Config is the validated run configuration
	Config *config.Config
	// Fetcher downloads asset bytes
	Fetcher remote.Fetcher
	// Store owns the destination tree
	Store *store.Manager
	// Console prints per form lines. When nil the logger carried by the
	// context is used, see log.NewContext.
	Console *log.Logger
	// Progress receives progress events, ignored when nil
	Progress ProgressReporter
	// Now is the clock used for report timestamps, time.Now when nil
	Now func() time.Time
}

// 🎮 Engine syncs manifest records into the destination
type Engine struct {
	config   *config.Config
	fetcher  remote.Fetcher
	store    *store.Manager
	console  *log.Logger
	progress ProgressReporter
	now      func() time.Time
}

// 🏭 New creates a new engine with the given options
func New(opts Options) (*Engine, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Fetcher == nil {
		return nil, errors.Errorf("fetcher is required")
	}
	if opts.Store == nil {
		return nil, errors.Errorf("store is required")
	}

	e := &Engine{
		config:   opts.Config,
		fetcher:  opts.Fetcher,
		store:    opts.Store,
		console:  opts.Console,
		progress: opts.Progress,
		now:      opts.Now,
	}
	if e.progress == nil {
		e.progress = nopProgress{}
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e, nil
}
