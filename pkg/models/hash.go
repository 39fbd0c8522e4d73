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
	"bytes"
	"encoding/json"

	"github.com/cespare/xxhash/v2"
)

// CanonicalJSON renders a generic value in the form hashed by ContentHash:
// compact, object keys sorted bytewise, no HTML escaping and no trailing
// newline. json.Number values are written verbatim.
func CanonicalJSON(value any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(value); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// ContentHash fingerprints the whole input value, unmodelled keys included.
// It is a change detector for re-fetched data, not a security primitive.
func ContentHash(value any) (uint64, error) {
	data, err := CanonicalJSON(value)
	if err != nil {
		return 0, ErrContentHashNotComputable
	}

	return xxhash.Sum64(data), nil
}
