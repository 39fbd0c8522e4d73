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
	"math"
)

// Helpers over generic JSON-like values: map[string]any objects, []any
// arrays, strings, float64 or json.Number numbers, integer kinds (YAML),
// bools and nil.

func asObject(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)

	return obj, ok
}

// field returns the value stored under key when v is an object.
func field(v any, key string) (any, bool) {
	obj, ok := asObject(v)
	if !ok {
		return nil, false
	}

	val, ok := obj[key]

	return val, ok
}

func stringField(v any, key string) (string, bool) {
	val, ok := field(v, key)
	if !ok {
		return "", false
	}

	s, ok := val.(string)

	return s, ok
}

func arrayField(v any, key string) ([]any, bool) {
	val, ok := field(v, key)
	if !ok {
		return nil, false
	}

	arr, ok := val.([]any)

	return arr, ok
}

func int64Field(v any, key string) (int64, bool) {
	val, ok := field(v, key)
	if !ok {
		return 0, false
	}

	return asInt64(val)
}

// asInt64 accepts integral numbers only; 8080.5 or "8080" are rejected.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}

		return i, true
	case float64:
		if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, false
		}

		return int64(n), true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}

		return int64(n), true
	default:
		return 0, false
	}
}
