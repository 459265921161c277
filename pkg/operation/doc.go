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

/*
Package operation runs a form backup: it walks manifest records in order and
mirrors the five asset files of every active form into the destination.

	+-------------+      +-------------+
	|  Manifest   |----->|   Engine    |
	|  (records)  |      | (per form)  |
	+-------------+      +------+------+
	                            |
	            +---------------+---------------+
	            |                               |
	     +------+------+                 +------+------+
	     |   Fetcher   |                 |    Store    |
	     | (back office|                 | (digest +   |
	     |  download)  |                 |  write)     |
	     +-------------+                 +-------------+

🎯 Purpose:
- Classifies every record as backed up, skipped or failed
- Fetches every asset of active forms and writes only the ones that changed
- Feeds a report builder and an optional progress hook

🔄 Flow:
1. Sanitize the name, inactive and ignored forms stop here
2. Extract the identifier from the form URL
3. Create the form directory
4. Fetch and sync each asset kind, failures stay local to the file

⚡ Failure scope:
A fetch or write failure marks one file. A malformed URL, an empty name or a
directory that cannot be created marks one form. Nothing here aborts the run.
*/
package operation
