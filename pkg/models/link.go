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

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Link is a topology link as reported by a controller. Hash fingerprints the
// full source object so a re-fetched link can be compared without walking
// every field; Date records when the link was parsed.
type Link struct {
	Host           string          `json:"host"`
	NodeEdgePoints []NodeEdgePoint `json:"node-edge-point"`
	UUID           uuid.UUID       `json:"uuid"`
	Hash           uint64          `json:"hash"`
	Date           time.Time       `json:"date"`
}

// parseLink validates value fail-fast. The clock is read once, after the
// hash, so the hash stays a pure function of the input.
func parseLink(value any, host string, clock Clock) (*Link, error) {
	id, ok := uuidField(value, "uuid")
	if !ok {
		return nil, ErrLinkUUIDNotFound
	}

	rawPoints, ok := arrayField(value, "node-edge-point")
	if !ok {
		return nil, ErrNodeEdgePointsNotFound
	}

	points := make([]NodeEdgePoint, 0, len(rawPoints))

	for _, raw := range rawPoints {
		nep, err := parseNodeEdgePoint(raw)
		if err != nil {
			return nil, err
		}

		points = append(points, *nep)
	}

	hash, err := ContentHash(value)
	if err != nil {
		return nil, err
	}

	return &Link{
		Host:           host,
		NodeEdgePoints: points,
		UUID:           id,
		Hash:           hash,
		Date:           clock.Now().Round(0),
	}, nil
}

// UnmarshalJSON decodes the wire form and places Date in the local zone.
func (l *Link) UnmarshalJSON(data []byte) error {
	type linkAlias Link

	var aux linkAlias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	aux.Date = aux.Date.In(time.Local)
	*l = Link(aux)

	return nil
}

// Equal reports whether both links hold the same data. Dates are compared
// as instants.
func (l *Link) Equal(other *Link) bool {
	if l == nil || other == nil {
		return l == other
	}

	if l.Host != other.Host || l.UUID != other.UUID || l.Hash != other.Hash || !l.Date.Equal(other.Date) {
		return false
	}

	if len(l.NodeEdgePoints) != len(other.NodeEdgePoints) {
		return false
	}

	for i := range l.NodeEdgePoints {
		if l.NodeEdgePoints[i] != other.NodeEdgePoints[i] {
			return false
		}
	}

	return true
}
