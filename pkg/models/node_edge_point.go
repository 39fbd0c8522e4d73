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

import "github.com/google/uuid"

// NodeEdgePoint references one end of a topology link: an edge point and the
// node that owns it.
type NodeEdgePoint struct {
	NodeEdgePointUUID uuid.UUID `json:"node-edge-point-uuid"`
	NodeUUID          uuid.UUID `json:"node-uuid"`
}

func parseNodeEdgePoint(value any) (*NodeEdgePoint, error) {
	nepID, ok := uuidField(value, "node-edge-point-uuid")
	if !ok {
		return nil, ErrNodeEdgePointUUIDNotFound
	}

	nodeID, ok := uuidField(value, "node-uuid")
	if !ok {
		return nil, ErrNodeUUIDNotFound
	}

	return &NodeEdgePoint{
		NodeEdgePointUUID: nepID,
		NodeUUID:          nodeID,
	}, nil
}

func uuidField(value any, key string) (uuid.UUID, bool) {
	s, ok := stringField(value, key)
	if !ok {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}
