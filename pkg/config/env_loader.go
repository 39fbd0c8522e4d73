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

package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"

	"github.com/carverauto/topology-backend/pkg/logger"
)

var (
	// ErrDstMustBeNonNilPointer indicates that the destination must be a non-nil pointer.
	ErrDstMustBeNonNilPointer = errors.New("dst must be a non-nil pointer")
	// ErrDstMustBePointerToStruct indicates that the destination must be a pointer to a struct.
	ErrDstMustBePointerToStruct = errors.New("dst must be a pointer to a struct")
)

// EnvConfigLoader loads configuration from environment variables, falling
// back to values read from .env files. Nested struct fields use underscore
// separation: TOPOLOGY_LOGGING_LEVEL maps to config.Logging.Level.
type EnvConfigLoader struct {
	logger      logger.Logger
	prefix      string
	dotEnvFiles []string
}

// NewEnvConfigLoader creates a new environment variable config loader.
// Missing .env files are skipped.
func NewEnvConfigLoader(log logger.Logger, prefix string, dotEnvFiles ...string) *EnvConfigLoader {
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &EnvConfigLoader{
		logger:      log,
		prefix:      prefix,
		dotEnvFiles: dotEnvFiles,
	}
}

// Load implements ConfigLoader.
func (e *EnvConfigLoader) Load(_ context.Context, _ string, dst interface{}) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return ErrDstMustBeNonNilPointer
	}

	if v.Elem().Kind() != reflect.Struct {
		return ErrDstMustBePointerToStruct
	}

	lookup, err := e.lookupFunc()
	if err != nil {
		return err
	}

	// A complete JSON config in one variable replaces field-by-field loading.
	if jsonConfig, ok := lookup(e.prefix + "CONFIG_JSON"); ok && jsonConfig != "" {
		if err := json.Unmarshal([]byte(jsonConfig), dst); err != nil {
			e.logger.Error().Err(err).Msg("Failed to unmarshal CONFIG_JSON")

			return fmt.Errorf("failed to unmarshal CONFIG_JSON: %w", err)
		}

		e.logger.Info().Msg("Loaded configuration from CONFIG_JSON environment variable")

		return nil
	}

	values := collectEnv(v.Elem().Type(), e.prefix, lookup)
	if len(values) == 0 {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           dst,
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("failed to decode environment configuration: %w", err)
	}

	e.logger.Debug().Int("keys", len(values)).Msg("Loaded configuration from environment variables")

	return nil
}

// lookupFunc resolves a name from the process environment first, then from
// the .env files in order.
func (e *EnvConfigLoader) lookupFunc() (func(string) (string, bool), error) {
	dotEnv := make(map[string]string)

	for _, file := range e.dotEnvFiles {
		values, err := godotenv.Read(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read env file '%s': %w", file, err)
		}

		for k, val := range values {
			if _, seen := dotEnv[k]; !seen {
				dotEnv[k] = val
			}
		}
	}

	return func(name string) (string, bool) {
		if val, ok := os.LookupEnv(name); ok {
			return val, true
		}

		val, ok := dotEnv[name]

		return val, ok
	}, nil
}

// collectEnv walks t and returns the set variables as a nested map keyed by
// json tag names, ready for mapstructure.
func collectEnv(t reflect.Type, prefix string, lookup func(string) (string, bool)) map[string]any {
	out := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name := strings.Split(f.Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			continue
		}

		envName := prefix + strings.ToUpper(strings.ReplaceAll(name, ".", "_"))

		if f.Type.Kind() == reflect.Struct {
			if nested := collectEnv(f.Type, envName+"_", lookup); len(nested) > 0 {
				out[name] = nested
			}

			continue
		}

		if val, ok := lookup(envName); ok {
			out[name] = val
		}
	}

	return out
}
