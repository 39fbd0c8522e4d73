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
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/topology-backend/pkg/logger"
)

func bufferLogger(buf *bytes.Buffer) logger.Logger {
	return logger.FromZerolog(zerolog.New(buf).Level(zerolog.DebugLevel))
}

func TestParserLogsFailures(t *testing.T) {
	var buf bytes.Buffer

	p := NewParser(WithLogger(bufferLogger(&buf)))

	_, err := p.Link(decode(t, `{"node-edge-point": []}`), "ctrl-a")
	require.ErrorIs(t, err, ErrLinkUUIDNotFound)

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"error":"not found link uuid"`)
	assert.Contains(t, buf.String(), `"host":"ctrl-a"`)
}

func TestParserLogsSuccessAtDebug(t *testing.T) {
	var buf bytes.Buffer

	p := NewParser(WithLogger(bufferLogger(&buf)), WithClock(nil))

	_, err := p.Device(decode(t, `{"host": "ctrl", "port": 22, "auth": {"username": "u", "password": "p"}}`))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"level":"debug"`)
	assert.Contains(t, buf.String(), `"auth_kind":"BasicAuth"`)
	assert.Contains(t, buf.String(), `"port":22`)
	assert.NotContains(t, buf.String(), `"password"`)
}

func TestParserConcurrentUse(t *testing.T) {
	p := NewParser()
	value := decode(t, linkDoc)

	var wg sync.WaitGroup

	hashes := make([]uint64, 8)

	for i := range hashes {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			link, err := p.Link(value, "ctrl")
			if err == nil {
				hashes[i] = link.Hash
			}
		}(i)
	}

	wg.Wait()

	for _, h := range hashes {
		assert.Equal(t, hashes[0], h)
		assert.NotZero(t, h)
	}
}
