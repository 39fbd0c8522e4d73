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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDevice(t *testing.T) {
	device, err := ParseDevice(decode(t, `{
		"host": "10.0.0.1",
		"port": 830,
		"auth": {"username": "admin", "password": "secret"}
	}`))
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.1", device.Host)
	require.NotNil(t, device.Port)
	assert.Equal(t, int64(830), *device.Port)
	assert.Equal(t, AuthKindBasic, device.Auth.Kind)
}

func TestParseDevicePort(t *testing.T) {
	tests := []struct {
		name string
		port any
		want *int64
	}{
		{"json number", json.Number("8443"), ptr(int64(8443))},
		{"float64", float64(443), ptr(int64(443))},
		{"yaml int", 22, ptr(int64(22))},
		{"fractional", float64(80.5), nil},
		{"string", "80", nil},
		{"null", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device, err := ParseDevice(map[string]any{
				"host": "ctrl",
				"port": tt.port,
				"auth": map[string]any{"username": "u", "password": "p"},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, device.Port)
		})
	}
}

func TestParseDeviceWithoutPort(t *testing.T) {
	device, err := ParseDevice(decode(t, `{"host": "ctrl", "auth": {"auth_body": "token", "auth_url": "https://ctrl/auth"}}`))
	require.NoError(t, err)

	assert.Nil(t, device.Port)
	assert.Equal(t, AuthKindCustom, device.Auth.Kind)

	data, err := json.Marshal(device)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"port"`)
}

func TestParseDeviceErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"not an object", `[]`, ErrHostNotFound},
		{"missing host", `{"auth": {"username": "u", "password": "p"}}`, ErrHostNotFound},
		{"host not a string", `{"host": 10, "auth": {"username": "u", "password": "p"}}`, ErrHostNotFound},
		{"missing auth", `{"host": "ctrl", "port": 22}`, ErrAuthBodyNotFound},
		{"auth not an object", `{"host": "ctrl", "auth": "basic"}`, ErrAuthBodyNotValid},
		{"auth unrecognized", `{"host": "ctrl", "auth": {}}`, ErrUnrecognizedAuthType},
		{"auth field error", `{"host": "ctrl", "auth": {"grant_type": "password", "username": "u"}}`, ErrOAuth2PasswordNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device, err := ParseDevice(decode(t, tt.input))
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, device)
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "host not found", ErrHostNotFound.Error())
	assert.Equal(t, "auth body not found", ErrAuthBodyNotFound.Error())
	assert.Equal(t, "content hash not computable", ErrContentHashNotComputable.Error())
	assert.Equal(t, "device unreachable", Custom("device unreachable").Error())
}

func TestDeviceJSONRoundTrip(t *testing.T) {
	device, err := ParseDevice(decode(t, `{
		"host": "ctrl",
		"port": 830,
		"auth": {"username": "u", "password": "p", "grant_type": "password", "auth_url": "https://ctrl/token"}
	}`))
	require.NoError(t, err)

	data, err := json.Marshal(device)
	require.NoError(t, err)

	var got Device
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *device, got)
}

func ptr[T any](v T) *T {
	return &v
}
