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

package codec

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLDecoder decodes a single YAML document.
type YAMLDecoder struct{}

func NewYAMLDecoder() *YAMLDecoder {
	return &YAMLDecoder{}
}

func (*YAMLDecoder) Format() string {
	return FormatYAML
}

func (*YAMLDecoder) Decode(r io.Reader) (any, error) {
	dec := yaml.NewDecoder(r)

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	return normalize(value)
}

// normalize rewrites map[interface{}]interface{} (produced for YAML maps with
// non-string keys) into map[string]any, failing on keys that are not strings.
func normalize(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			n, err := normalize(child)
			if err != nil {
				return nil, err
			}

			t[k] = n
		}

		return t, nil
	case map[any]any:
		out := make(map[string]any, len(t))

		for k, child := range t {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %v", errNonStringKey, k)
			}

			n, err := normalize(child)
			if err != nil {
				return nil, err
			}

			out[key] = n
		}

		return out, nil
	case []any:
		for i, child := range t {
			n, err := normalize(child)
			if err != nil {
				return nil, err
			}

			t[i] = n
		}

		return t, nil
	default:
		return v, nil
	}
}
