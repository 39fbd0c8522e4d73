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

package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Rotation selects how often the log file is switched.
type Rotation string

const (
	RotationHourly Rotation = "hourly"
	RotationDaily  Rotation = "daily"
	RotationNever  Rotation = "never"
)

const (
	logDirPerms  = 0o755
	logFilePerms = 0o644
)

// suffix returns the period label appended to the file prefix, e.g.
// "2025-06-01-13" for hourly rotation.
func (r Rotation) suffix(t time.Time) string {
	switch r {
	case RotationDaily:
		return t.Format("2006-01-02")
	case RotationNever:
		return ""
	default:
		return t.Format("2006-01-02-15")
	}
}

// rotatingFile is an io.WriteCloser that appends to <dir>/<prefix>.<period>
// and opens a new file whenever the period changes.
type rotatingFile struct {
	mu       sync.Mutex
	dir      string
	prefix   string
	rotation Rotation
	now      func() time.Time
	file     *os.File
	name     string
}

func newRotatingFile(dir, prefix string, rotation Rotation, now func() time.Time) (*rotatingFile, error) {
	if now == nil {
		now = time.Now
	}

	if err := os.MkdirAll(dir, logDirPerms); err != nil {
		return nil, fmt.Errorf("failed to create log directory %q: %w", dir, err)
	}

	r := &rotatingFile{
		dir:      dir,
		prefix:   prefix,
		rotation: rotation,
		now:      now,
	}

	if err := r.openLocked(r.fileName(now())); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *rotatingFile) fileName(t time.Time) string {
	suffix := r.rotation.suffix(t)
	if suffix == "" {
		return filepath.Join(r.dir, r.prefix)
	}

	return filepath.Join(r.dir, r.prefix+"."+suffix)
}

func (r *rotatingFile) openLocked(name string) error {
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerms)
	if err != nil {
		return fmt.Errorf("failed to open log file %q: %w", name, err)
	}

	if r.file != nil {
		_ = r.file.Close()
	}

	r.file = f
	r.name = name

	return nil
}

func (r *rotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return 0, os.ErrClosed
	}

	if name := r.fileName(r.now()); name != r.name {
		if err := r.openLocked(name); err != nil {
			return 0, err
		}
	}

	return r.file.Write(p)
}

// Name returns the path currently written to.
func (r *rotatingFile) Name() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.name
}

func (r *rotatingFile) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}

	err := r.file.Close()
	r.file = nil

	return err
}
