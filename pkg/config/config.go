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
	"errors"
	"fmt"
	"strings"

	"github.com/carverauto/topology-backend/pkg/codec"
	"github.com/carverauto/topology-backend/pkg/logger"
)

const (
	DefaultEnvPrefix = "TOPOLOGY_"
	DefaultDotEnv    = ".env"
	defaultHost      = "localhost"
)

var (
	errInvalidFormat = errors.New("invalid input format")
	errEmptyHost     = errors.New("host label cannot be empty")
)

// ConfigLoader fills dst from a single source.
type ConfigLoader interface {
	Load(ctx context.Context, path string, dst interface{}) error
}

// Validator is implemented by configs that can check themselves.
type Validator interface {
	Validate() error
}

// Config is the runtime configuration of the topology tools.
type Config struct {
	Logging logger.Config `json:"logging" yaml:"logging"`
	// Host labels every link parsed from this source.
	Host   string `json:"host" yaml:"host"`
	Format string `json:"format" yaml:"format"`
}

// Default returns a config with logger defaults taken from LOG_* variables.
func Default() *Config {
	return &Config{
		Logging: *logger.DefaultConfig(),
		Host:    defaultHost,
		Format:  codec.FormatJSON,
	}
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Host) == "" {
		return errEmptyHost
	}

	if _, err := codec.ForFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %q", errInvalidFormat, c.Format)
	}

	return c.Logging.Validate()
}

// ValidateConfig validates a configuration if it implements Validator.
func ValidateConfig(cfg interface{}) error {
	v, ok := cfg.(Validator)
	if !ok {
		return nil
	}

	return v.Validate()
}

// Loader applies defaults, then the config file, then .env files, then the
// process environment; later sources win.
type Loader struct {
	EnvPrefix   string
	DotEnvFiles []string
	logger      logger.Logger
}

// NewLoader returns a Loader with the default prefix and .env file.
func NewLoader(log logger.Logger) *Loader {
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Loader{
		EnvPrefix:   DefaultEnvPrefix,
		DotEnvFiles: []string{DefaultDotEnv},
		logger:      log,
	}
}

// Load builds a validated Config. An empty path skips the file stage.
func (l *Loader) Load(ctx context.Context, path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := (&FileConfigLoader{}).Load(ctx, path, cfg); err != nil {
			return nil, err
		}

		l.logger.Debug().Str("path", path).Msg("Loaded configuration file")
	}

	env := NewEnvConfigLoader(l.logger, l.EnvPrefix, l.DotEnvFiles...)
	if err := env.Load(ctx, "", cfg); err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
