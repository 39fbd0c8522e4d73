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

// Package cli implements the topology command-line tool.
package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/carverauto/topology-backend/pkg/codec"
	"github.com/carverauto/topology-backend/pkg/config"
	"github.com/carverauto/topology-backend/pkg/logger"
	"github.com/carverauto/topology-backend/pkg/models"
	"github.com/carverauto/topology-backend/pkg/topology"
	"github.com/carverauto/topology-backend/pkg/version"
)

// ParseHandler handles the flags shared by link, device and auth.
type ParseHandler struct {
	Name string
}

// Parse processes arguments for a parse subcommand.
func (h ParseHandler) Parse(args []string, cfg *CmdConfig) error {
	fs := flag.NewFlagSet(h.Name, flag.ContinueOnError)
	registerCommonFlags(fs, cfg)

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parsing %s flags: %w", h.Name, err)
	}

	cfg.Args = fs.Args()

	return nil
}

// DiffHandler handles flags for the diff subcommand.
type DiffHandler struct{}

// Parse processes arguments for diff.
func (DiffHandler) Parse(args []string, cfg *CmdConfig) error {
	fs := flag.NewFlagSet(cmdDiff, flag.ContinueOnError)
	registerCommonFlags(fs, cfg)
	fs.StringVar(&cfg.Against, "against", "", "previous fetch to compare with")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parsing diff flags: %w", err)
	}

	if cfg.File == "" || cfg.Against == "" {
		return errDiffRequiresFiles
	}

	cfg.Args = fs.Args()

	return nil
}

func registerCommonFlags(fs *flag.FlagSet, cfg *CmdConfig) {
	fs.StringVar(&cfg.File, "file", "", "input file (default stdin)")
	fs.StringVar(&cfg.Format, "format", "", "input format: json or yaml")
	fs.StringVar(&cfg.Host, "host", "", "host label for parsed links")
	fs.StringVar(&cfg.ConfigFile, "config", "", "configuration file")
	fs.BoolVar(&cfg.Redact, "redact", false, "mask passwords and custom auth bodies in output")
}

// ParseFlags parses args (without the program name) into a CmdConfig.
func ParseFlags(args []string) (*CmdConfig, error) {
	cfg := &CmdConfig{}

	if len(args) == 0 {
		return cfg, errMissingSubcommand
	}

	cfg.SubCmd = args[0]

	if cfg.SubCmd == "help" || cfg.SubCmd == "-help" || cfg.SubCmd == "--help" || cfg.SubCmd == "-h" {
		cfg.Help = true

		return cfg, nil
	}

	if cfg.SubCmd == cmdVersion {
		return cfg, nil
	}

	subcommands := map[string]SubcommandHandler{
		cmdLink:   ParseHandler{Name: cmdLink},
		cmdDevice: ParseHandler{Name: cmdDevice},
		cmdAuth:   ParseHandler{Name: cmdAuth},
		cmdDiff:   DiffHandler{},
	}

	handler, exists := subcommands[cfg.SubCmd]
	if !exists {
		return cfg, fmt.Errorf("%w: %q", errUnknownSubcommand, cfg.SubCmd)
	}

	if err := handler.Parse(args[1:], cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// runner carries what every subcommand needs once configuration is loaded.
type runner struct {
	cmd     *CmdConfig
	cfg     *config.Config
	log     logger.Logger
	parser  *models.Parser
	streams Streams
	styles  logStyles
}

// Run executes the subcommand described by cmd.
func Run(ctx context.Context, cmd *CmdConfig, streams Streams) error {
	if cmd.SubCmd == cmdVersion {
		_, err := fmt.Fprintln(streams.Out, "topology", version.GetFullVersion())

		return err
	}

	cfg, err := config.NewLoader(nil).Load(ctx, cmd.ConfigFile)
	if err != nil {
		return err
	}

	if cmd.Host != "" {
		cfg.Host = cmd.Host
	}

	// stdout carries the JSON result.
	if cfg.Logging.Output == "" || cfg.Logging.Output == logger.OutputStdout {
		cfg.Logging.Output = logger.OutputStderr
	}

	handle, err := logger.New(&cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = handle.Close() }()

	log := handle.WithComponent("cli")

	r := &runner{
		cmd:     cmd,
		cfg:     cfg,
		log:     log,
		parser:  models.NewParser(models.WithLogger(log)),
		streams: streams,
		styles:  newLogStyles(),
	}

	switch cmd.SubCmd {
	case cmdLink:
		return r.runLink()
	case cmdDevice:
		return r.runDevice()
	case cmdAuth:
		return r.runAuth()
	case cmdDiff:
		return r.runDiff()
	default:
		return fmt.Errorf("%w: %q", errUnknownSubcommand, cmd.SubCmd)
	}
}

func (r *runner) runLink() error {
	doc, err := r.read(r.cmd.File)
	if err != nil {
		return err
	}

	// A single link object is reported as one record.
	if obj, ok := doc.(map[string]any); ok {
		if _, single := obj["uuid"]; single {
			link, err := r.parser.Link(doc, r.cfg.Host)
			if err != nil {
				return err
			}

			r.styles.successf(r.streams.Err, "Parsed link %s from %s", link.UUID, r.cfg.Host)

			return r.write(link)
		}
	}

	links, err := topology.ExtractLinks(doc, r.cfg.Host, r.parser)
	if err != nil {
		return err
	}

	if len(links) == 0 {
		r.styles.warningf(r.streams.Err, "No links found for %s", r.cfg.Host)
	} else {
		r.styles.successf(r.streams.Err, "Parsed %d link(s) from %s", len(links), r.cfg.Host)
	}

	return r.write(links)
}

func (r *runner) runDevice() error {
	doc, err := r.read(r.cmd.File)
	if err != nil {
		return err
	}

	device, err := r.parser.Device(doc)
	if err != nil {
		return err
	}

	r.styles.successf(r.streams.Err, "Parsed device %s (%s)", device.Host, device.Auth.Kind)

	if r.cmd.Redact {
		redacted := device.Redacted()
		device = &redacted
	}

	return r.write(device)
}

func (r *runner) runAuth() error {
	doc, err := r.read(r.cmd.File)
	if err != nil {
		return err
	}

	auth, err := r.parser.Auth(doc)
	if err != nil {
		return err
	}

	r.styles.successf(r.streams.Err, "Parsed %s authentication", auth.Kind)

	if r.cmd.Redact {
		redacted := auth.Redacted()
		auth = &redacted
	}

	return r.write(auth)
}

func (r *runner) runDiff() error {
	previous, err := r.readLinks(r.cmd.Against)
	if err != nil {
		return err
	}

	current, err := r.readLinks(r.cmd.File)
	if err != nil {
		return err
	}

	tracker := topology.NewTracker(r.log)
	tracker.Reconcile(r.cfg.Host, previous)
	changes := tracker.Reconcile(r.cfg.Host, current)

	changed := 0

	for _, c := range changes {
		if c.Type != topology.ChangeUnchanged {
			changed++
		}
	}

	r.styles.successf(r.streams.Err, "%d of %d link(s) changed", changed, len(changes))

	return r.write(changes)
}

func (r *runner) readLinks(path string) ([]*models.Link, error) {
	doc, err := r.read(path)
	if err != nil {
		return nil, err
	}

	return topology.ExtractLinks(doc, r.cfg.Host, r.parser)
}

// read decodes path, or stdin when path is empty. -format wins over the
// file extension, which wins over the configured format.
func (r *runner) read(path string) (any, error) {
	var (
		dec codec.Decoder
		err error
	)

	switch {
	case r.cmd.Format != "":
		dec, err = codec.ForFormat(r.cmd.Format)
	case path != "":
		dec, err = codec.ForPath(path)
	default:
		dec, err = codec.ForFormat(r.cfg.Format)
	}

	if err != nil {
		return nil, err
	}

	var in io.Reader = r.streams.In

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errInputReadFailed, err)
		}
		defer func() { _ = f.Close() }()

		in = f
	}

	doc, err := dec.Decode(in)
	if err != nil {
		return nil, err
	}

	r.log.Debug().Str("path", path).Str("format", dec.Format()).Msg("Decoded input")

	return doc, nil
}

func (r *runner) write(v any) error {
	enc := json.NewEncoder(r.streams.Out)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("%w: %w", errOutputFailed, err)
	}

	return nil
}
