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
Package config loads the settings of a form backup run.

	            +-------------+
	            |   Config    |
	            | (manifest,  |
	            |  url, dest) |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   HCL    | |   JSON   |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Replaces the interactive prompts for manifest, back office URL and destination
- Picks a parser from the file extension
- Normalizes the back office URL so download paths can be appended directly

🔄 Flow:
1. Load reads and parses the file
2. The CLI applies flag overrides
3. Validate checks required fields and fills defaults

🔍 Example (HCL):

	manifest        = "/home/me/Downloads/export.csv"
	back_office_url = "${env.BACKOFFICE_URL}"
	destination     = "/home/me/form-backups"
	timeout         = "30s"
	ignore_forms    = ["Test *", "Draft *"]
*/
package config
