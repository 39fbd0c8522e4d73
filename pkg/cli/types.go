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
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Subcommand names.
const (
	cmdLink    = "link"
	cmdDevice  = "device"
	cmdAuth    = "auth"
	cmdDiff    = "diff"
	cmdVersion = "version"
)

// CmdConfig holds parsed command-line configuration.
type CmdConfig struct {
	Help       bool
	SubCmd     string
	File       string
	Against    string
	Format     string
	Host       string
	ConfigFile string
	Redact     bool
	Args       []string
}

// Streams bundles the standard streams so commands can be run against
// buffers.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process stdin, stdout and stderr.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// logStyles defines styles for logging messages
type logStyles struct {
	info, success, warning, error lipgloss.Style
}

// SubcommandHandler parses the flags of one subcommand into cfg.
type SubcommandHandler interface {
	Parse(args []string, cfg *CmdConfig) error
}
