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
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
	OutputFile   = "file"

	defaultDirectory  = "./logs"
	defaultFilePrefix = "backend.log"
	defaultBufferSize = 1000
)

var (
	errInvalidOutput   = errors.New("invalid log output")
	errInvalidRotation = errors.New("invalid log rotation")
	errEmptyFilePrefix = errors.New("log file prefix is required for file output")
)

type Config struct {
	Level      string   `json:"level" yaml:"level"`
	Debug      bool     `json:"debug" yaml:"debug"`
	Output     string   `json:"output" yaml:"output"`
	TimeFormat string   `json:"time_format" yaml:"time_format"`
	Directory  string   `json:"directory" yaml:"directory"`
	FilePrefix string   `json:"file_prefix" yaml:"file_prefix"`
	Rotation   Rotation `json:"rotation" yaml:"rotation"`
	// NonBlocking buffers writes in a ring; messages are dropped rather
	// than stalling the caller when the writer falls behind.
	NonBlocking bool `json:"non_blocking" yaml:"non_blocking"`
	BufferSize  int  `json:"buffer_size" yaml:"buffer_size"`
}

func DefaultConfig() *Config {
	return &Config{
		Level:       getEnvOrDefault("LOG_LEVEL", "info"),
		Debug:       getEnvBoolOrDefault("DEBUG", false),
		Output:      getEnvOrDefault("LOG_OUTPUT", OutputStdout),
		TimeFormat:  getEnvOrDefault("LOG_TIME_FORMAT", ""),
		Directory:   getEnvOrDefault("LOG_DIR", defaultDirectory),
		FilePrefix:  getEnvOrDefault("LOG_FILE_PREFIX", defaultFilePrefix),
		Rotation:    Rotation(getEnvOrDefault("LOG_ROTATION", string(RotationHourly))),
		NonBlocking: getEnvBoolOrDefault("LOG_NON_BLOCKING", false),
		BufferSize:  getEnvIntOrDefault("LOG_BUFFER_SIZE", defaultBufferSize),
	}
}

// Validate checks the output and rotation settings.
func (c *Config) Validate() error {
	switch c.Output {
	case "", OutputStdout, OutputStderr:
	case OutputFile:
		if c.FilePrefix == "" {
			return errEmptyFilePrefix
		}
	default:
		return fmt.Errorf("%w: %q", errInvalidOutput, c.Output)
	}

	switch c.Rotation {
	case "", RotationHourly, RotationDaily, RotationNever:
	default:
		return fmt.Errorf("%w: %q", errInvalidRotation, c.Rotation)
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	value = strings.ToLower(value)

	return value == "true" || value == "1" || value == "yes" || value == "on"
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}

	return value
}
