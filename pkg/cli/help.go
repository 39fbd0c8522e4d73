/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cli

import (
	"fmt"
	"io"
)

// ShowHelp writes the usage message to w.
func ShowHelp(w io.Writer) {
	fmt.Fprint(w, `topology: parse and compare controller topology data
Usage:
  topology link   [options]
  topology device [options]
  topology auth   [options]
  topology diff   -file current.json -against previous.json [options]
  topology version

Commands:
  link     Parse links from a single link or a topology document
  device   Parse a device record
  auth     Parse an authentication descriptor
  diff     Report added, modified, unchanged and removed links between two fetches
  version  Print the build version

Options:
  -file string      input file (default stdin)
  -format string    input format: json or yaml (default from extension, then config)
  -host string      host label stamped on parsed links (default from config)
  -config string    configuration file (JSON or YAML)
  -against string   previous fetch to compare with (diff only)
  -redact           mask passwords and custom auth bodies (device, auth)

Environment:
  TOPOLOGY_HOST, TOPOLOGY_FORMAT, TOPOLOGY_LOGGING_LEVEL, ... override the
  configuration file. TOPOLOGY_CONFIG_JSON replaces it entirely. Values are
  also read from ./.env.

Examples:
  topology link -file links.json -host ctrl-a
  curl -s https://ctrl-a/restconf/data/tapi-common:context | topology link -host ctrl-a
  topology device -file device.yaml
  topology diff -file today.json -against yesterday.json
`)
}
