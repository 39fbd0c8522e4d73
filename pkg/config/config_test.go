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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/topology-backend/pkg/logger"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func newTestLoader(dir string) *Loader {
	l := NewLoader(logger.NewTestLogger())
	l.DotEnvFiles = []string{filepath.Join(dir, ".env")}

	return l
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := newTestLoader(t.TempDir()).Load(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, defaultHost, cfg.Host)
	assert.Equal(t, "json", cfg.Format)
	assert.NotEmpty(t, cfg.Logging.Output)
}

func TestLoadJSONFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.json", `{
		"host": "ctrl-a.example.net",
		"format": "yaml",
		"logging": {"level": "debug", "output": "file", "directory": "/var/log/tapi", "file_prefix": "links.log", "rotation": "daily"}
	}`)

	cfg, err := newTestLoader(dir).Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "ctrl-a.example.net", cfg.Host)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, logger.OutputFile, cfg.Logging.Output)
	assert.Equal(t, "/var/log/tapi", cfg.Logging.Directory)
	assert.Equal(t, logger.RotationDaily, cfg.Logging.Rotation)
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "host: ctrl-b\nlogging:\n  level: warn\n  non_blocking: true\n")

	cfg, err := newTestLoader(dir).Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "ctrl-b", cfg.Host)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.True(t, cfg.Logging.NonBlocking)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.json", `{"host": "from-file", "format": "json"}`)
	writeFile(t, dir, ".env", "TOPOLOGY_HOST=from-dotenv\nTOPOLOGY_FORMAT=yaml\nTOPOLOGY_LOGGING_BUFFER_SIZE=64\n")

	t.Setenv("TOPOLOGY_FORMAT", "json")
	t.Setenv("TOPOLOGY_LOGGING_NON_BLOCKING", "true")
	t.Setenv("TOPOLOGY_LOGGING_FILE_PREFIX", "env.log")

	cfg, err := newTestLoader(dir).Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv", cfg.Host, ".env overrides the file")
	assert.Equal(t, "json", cfg.Format, "process env overrides .env")
	assert.True(t, cfg.Logging.NonBlocking)
	assert.Equal(t, 64, cfg.Logging.BufferSize)
	assert.Equal(t, "env.log", cfg.Logging.FilePrefix)
}

func TestLoadConfigJSONVariable(t *testing.T) {
	t.Setenv("TOPOLOGY_CONFIG_JSON", `{"host": "whole-config", "format": "yaml"}`)

	cfg, err := newTestLoader(t.TempDir()).Load(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "whole-config", cfg.Host)
	assert.Equal(t, "yaml", cfg.Format)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	_, err := newTestLoader(dir).Load(ctx, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")

	bad := writeFile(t, dir, "bad.json", `{"host":`)
	_, err = newTestLoader(dir).Load(ctx, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal JSON")

	badFormat := writeFile(t, dir, "format.json", `{"format": "xml"}`)
	_, err = newTestLoader(dir).Load(ctx, badFormat)
	require.ErrorIs(t, err, errInvalidFormat)

	emptyHost := writeFile(t, dir, "host.json", `{"host": "  "}`)
	_, err = newTestLoader(dir).Load(ctx, emptyHost)
	require.ErrorIs(t, err, errEmptyHost)
}

func TestEnvConfigLoaderRejectsNonStruct(t *testing.T) {
	loader := NewEnvConfigLoader(nil, DefaultEnvPrefix)

	var s string

	require.ErrorIs(t, loader.Load(context.Background(), "", &s), ErrDstMustBePointerToStruct)
	require.ErrorIs(t, loader.Load(context.Background(), "", Config{}), ErrDstMustBeNonNilPointer)
}

func TestDotEnvValue(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "TEST_KEY=BACKEND_TEST_VALUE\n")

	type testConfig struct {
		Key string `json:"key"`
	}

	var cfg testConfig

	loader := NewEnvConfigLoader(nil, "TEST_", filepath.Join(dir, ".env"))
	require.NoError(t, loader.Load(context.Background(), "", &cfg))
	assert.Equal(t, "BACKEND_TEST_VALUE", cfg.Key)

	_, set := os.LookupEnv("TEST_KEY")
	assert.False(t, set, ".env values must not leak into the process environment")
}
