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
	"io"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📈 progressBar renders engine progress with a pterm progress bar
type progressBar struct {
	out    io.Writer
	logger zerolog.Logger
	bar    *pterm.ProgressbarPrinter
}

func newProgressBar(out io.Writer, logger zerolog.Logger) *progressBar {
	return &progressBar{out: out, logger: logger}
}

func (p *progressBar) Start(total int) {
	bar, err := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle("Processing forms").
		WithWriter(p.out).
		WithRemoveWhenDone(true).
		Start()
	if err != nil {
		p.logger.Warn().Err(err).Msg("starting progress bar")
		return
	}
	p.bar = bar
}

func (p *progressBar) Increment(name string) {
	if p.bar == nil {
		return
	}
	p.bar.UpdateTitle("Processing forms • " + name)
	p.bar.Increment()
}

func (p *progressBar) Stop() {
	if p.bar == nil {
		return
	}
	if _, err := p.bar.Stop(); err != nil {
		p.logger.Warn().Err(err).Msg("stopping progress bar")
	}
	p.bar = nil
}
