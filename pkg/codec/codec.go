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

// Package codec decodes raw documents into the generic JSON-like values
// consumed by the models parsers.
package codec

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrTrailingData      = errors.New("unexpected data after top-level value")
	errNonStringKey      = errors.New("object keys must be strings")
)

// Decoder reads one document and returns it as map[string]any, []any,
// string, json.Number or integer/float, bool or nil.
type Decoder interface {
	Decode(r io.Reader) (any, error)
	Format() string
}

// ForFormat returns the decoder registered under name (case-insensitive,
// "yml" accepted).
func ForFormat(name string) (Decoder, error) {
	switch strings.ToLower(name) {
	case FormatJSON:
		return NewJSONDecoder(), nil
	case FormatYAML, "yml":
		return NewYAMLDecoder(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// ForPath picks a decoder from the file extension, defaulting to JSON when
// the path has none.
func ForPath(path string) (Decoder, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return NewJSONDecoder(), nil
	}

	return ForFormat(ext)
}
