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

// Package remote retrieves asset bytes from the back office.
package remote

import (
	"context"
	"fmt"
)

// 🔌 Fetcher retrieves the full body behind a URL in a single attempt
type Fetcher interface {
	// 📥 Fetch returns the response body of a GET on url
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// 🌐 NetworkError describes a failed fetch: connection failure, timeout or a
// non-success status
type NetworkError struct {
	URL        string // Requested URL
	StatusCode int    // HTTP status, 0 when no response was received
	Err        error  // Underlying error, nil for status failures
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: unexpected status code: %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
