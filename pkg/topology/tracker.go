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

package topology

import (
	"bytes"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/carverauto/topology-backend/pkg/logger"
	"github.com/carverauto/topology-backend/pkg/models"
)

// ChangeType classifies a link between two snapshots of the same host.
type ChangeType string

const (
	ChangeAdded     ChangeType = "added"
	ChangeModified  ChangeType = "modified"
	ChangeUnchanged ChangeType = "unchanged"
	ChangeRemoved   ChangeType = "removed"
)

// Change describes one link in a reconciliation. PreviousHash is zero for
// added links, Hash is zero for removed ones.
type Change struct {
	Type         ChangeType `json:"type"`
	UUID         uuid.UUID  `json:"uuid"`
	Hash         uint64     `json:"hash,omitempty"`
	PreviousHash uint64     `json:"previous_hash,omitempty"`
}

// Tracker remembers the content hash of every link last seen per host.
type Tracker struct {
	mu        sync.RWMutex
	snapshots map[string]map[uuid.UUID]uint64
	logger    logger.Logger
}

func NewTracker(log logger.Logger) *Tracker {
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Tracker{
		snapshots: make(map[string]map[uuid.UUID]uint64),
		logger:    log,
	}
}

// Reconcile replaces the snapshot for host with links and reports how each
// link compares to the previous snapshot. The first call for a host reports
// every link as added. Duplicate UUIDs keep the last occurrence.
func (t *Tracker) Reconcile(host string, links []*models.Link) []Change {
	next := make(map[uuid.UUID]uint64, len(links))
	for _, l := range links {
		next[l.UUID] = l.Hash
	}

	t.mu.Lock()
	prev := t.snapshots[host]
	t.snapshots[host] = next
	t.mu.Unlock()

	changes := Diff(prev, next)

	counts := make(map[ChangeType]int, 4)
	for _, c := range changes {
		counts[c.Type]++
	}

	t.logger.Info().
		Str("host", host).
		Int("added", counts[ChangeAdded]).
		Int("modified", counts[ChangeModified]).
		Int("removed", counts[ChangeRemoved]).
		Int("unchanged", counts[ChangeUnchanged]).
		Msg("Reconciled links")

	return changes
}

// Snapshot returns a copy of the hashes last recorded for host.
func (t *Tracker) Snapshot(host string) map[uuid.UUID]uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[uuid.UUID]uint64, len(t.snapshots[host]))
	for id, h := range t.snapshots[host] {
		out[id] = h
	}

	return out
}

// Forget drops the snapshot for host.
func (t *Tracker) Forget(host string) {
	t.mu.Lock()
	delete(t.snapshots, host)
	t.mu.Unlock()
}

// Diff compares two uuid->hash snapshots. The result is sorted by UUID.
func Diff(prev, next map[uuid.UUID]uint64) []Change {
	changes := make([]Change, 0, len(next)+len(prev))

	for id, h := range next {
		old, ok := prev[id]

		switch {
		case !ok:
			changes = append(changes, Change{Type: ChangeAdded, UUID: id, Hash: h})
		case old != h:
			changes = append(changes, Change{Type: ChangeModified, UUID: id, Hash: h, PreviousHash: old})
		default:
			changes = append(changes, Change{Type: ChangeUnchanged, UUID: id, Hash: h, PreviousHash: old})
		}
	}

	for id, old := range prev {
		if _, ok := next[id]; !ok {
			changes = append(changes, Change{Type: ChangeRemoved, UUID: id, PreviousHash: old})
		}
	}

	sort.Slice(changes, func(i, j int) bool {
		return bytes.Compare(changes[i].UUID[:], changes[j].UUID[:]) < 0
	})

	return changes
}
