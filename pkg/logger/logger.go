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

// Package logger provides JSON structured logging using zerolog
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
)

const diodePollInterval = 10 * time.Millisecond

// Handle owns the writer behind a process logger. Keep it for the life of
// the process and Close it on shutdown to flush buffered entries.
type Handle struct {
	Logger
	closers []io.Closer
}

// Close flushes and releases the underlying writers, innermost last.
func (h *Handle) Close() error {
	var firstErr error

	for _, c := range h.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	h.closers = nil

	return firstErr
}

// New builds a logger from config. File output rotates per config.Rotation
// and, with NonBlocking, goes through a diode ring buffer.
func New(config *Config) (*Handle, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	level := zerolog.InfoLevel

	if config.Debug {
		level = zerolog.DebugLevel
	} else if config.Level != "" {
		var err error

		level, err = zerolog.ParseLevel(config.Level)
		if err != nil {
			return nil, err
		}
	}

	if config.TimeFormat != "" {
		zerolog.TimeFieldFormat = config.TimeFormat
	}

	output, closers, err := buildWriter(config)
	if err != nil {
		return nil, err
	}

	zl := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &Handle{Logger: FromZerolog(zl), closers: closers}, nil
}

func buildWriter(config *Config) (io.Writer, []io.Closer, error) {
	var (
		output  io.Writer
		closers []io.Closer
	)

	switch config.Output {
	case OutputStderr:
		output = writeOnly{os.Stderr}
	case OutputFile:
		rotation := config.Rotation
		if rotation == "" {
			rotation = RotationHourly
		}

		dir := config.Directory
		if dir == "" {
			dir = defaultDirectory
		}

		file, err := newRotatingFile(dir, config.FilePrefix, rotation, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize log file: %w", err)
		}

		output = file
		closers = append(closers, file)
	default:
		output = writeOnly{os.Stdout}
	}

	if config.NonBlocking {
		size := config.BufferSize
		if size <= 0 {
			size = defaultBufferSize
		}

		dw := diode.NewWriter(output, size, diodePollInterval, func(missed int) {
			fmt.Fprintf(os.Stderr, "logger dropped %d messages\n", missed)
		})

		output = dw
		// diode closes the wrapped writer when it implements io.Closer.
		closers = []io.Closer{dw}
	}

	return output, closers, nil
}

// writeOnly hides Close so shutting down a diode never closes stdio.
type writeOnly struct {
	io.Writer
}
