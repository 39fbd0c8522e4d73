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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decode mirrors how the JSON codec produces generic values.
func decode(t *testing.T, s string) any {
	t.Helper()

	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()

	var v any
	require.NoError(t, dec.Decode(&v))

	return v
}

func TestParseAuthBasic(t *testing.T) {
	auth, err := ParseAuth(decode(t, `{"username": "u", "password": "p"}`))
	require.NoError(t, err)

	assert.Equal(t, AuthKindBasic, auth.Kind)
	assert.Equal(t, &BasicAuth{Username: "u", Password: "p"}, auth.Basic)
	assert.Nil(t, auth.OAuth2)
	assert.Nil(t, auth.Custom)
}

func TestParseAuthOAuth2TakesPrecedence(t *testing.T) {
	auth, err := ParseAuth(decode(t, `{
		"username": "u",
		"password": "p",
		"grant_type": "password",
		"auth_url": "https://ctrl/token",
		"auth_body": {"ignored": true}
	}`))
	require.NoError(t, err)

	assert.Equal(t, AuthKindOAuth2, auth.Kind)
	assert.Equal(t, &OAuth2{
		Username:  "u",
		Password:  "p",
		GrantType: "password",
		AuthURL:   "https://ctrl/token",
	}, auth.OAuth2)
}

func TestParseAuthCustom(t *testing.T) {
	auth, err := ParseAuth(decode(t, `{"auth_body": {"tenant": "a", "retries": 3}, "auth_url": "https://ctrl/login"}`))
	require.NoError(t, err)

	require.Equal(t, AuthKindCustom, auth.Kind)
	assert.Equal(t, "https://ctrl/login", auth.Custom.AuthURL)
	assert.Equal(t, map[string]any{"tenant": "a", "retries": json.Number("3")}, auth.Custom.AuthBody)
}

func TestParseAuthCustomNullBody(t *testing.T) {
	auth, err := ParseAuth(decode(t, `{"auth_body": null, "auth_url": "https://ctrl/login"}`))
	require.NoError(t, err)

	require.Equal(t, AuthKindCustom, auth.Kind)
	assert.Nil(t, auth.Custom.AuthBody)
}

func TestParseAuthErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
		msg   string
	}{
		{"not an object", `["u", "p"]`, ErrAuthBodyNotValid, "auth body not valid"},
		{"string", `"basic"`, ErrAuthBodyNotValid, "auth body not valid"},
		{"empty object", `{}`, ErrUnrecognizedAuthType, "unrecognized authentication type"},
		{"username only", `{"username": "u"}`, ErrUnrecognizedAuthType, "unrecognized authentication type"},
		{"basic username not a string", `{"username": 1, "password": "p"}`,
			ErrBasicUsernameNotFound, "Username for Basic authentication not found"},
		{"basic password not a string", `{"username": "u", "password": null}`,
			ErrBasicPasswordNotFound, "Password for Basic authentication not found"},
		{"oauth2 without username", `{"grant_type": "password"}`,
			ErrOAuth2UsernameNotFound, "Username for OAuth2 authentication not found"},
		{"oauth2 with username only", `{"grant_type": "password", "username": "u"}`,
			ErrOAuth2PasswordNotFound, "Password for OAuth2 authentication not found"},
		{"oauth2 grant type not a string", `{"grant_type": 7, "username": "u", "password": "p"}`,
			ErrOAuth2GrantTypeNotFound, "Grant type for OAuth2 authentication not found"},
		{"oauth2 without url", `{"grant_type": "password", "username": "u", "password": "p"}`,
			ErrOAuth2AuthURLNotFound, "Authentication URL for OAuth2 authentication not found"},
		{"custom without url", `{"auth_body": {}}`,
			ErrCustomAuthURLNotFound, "Authentication URL for Custom authentication not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth, err := ParseAuth(decode(t, tt.input))
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.msg, err.Error())
			assert.Nil(t, auth)
		})
	}
}

func TestAuthJSONRoundTrip(t *testing.T) {
	inputs := []string{
		`{"username": "u", "password": "p"}`,
		`{"username": "u", "password": "p", "grant_type": "client_credentials", "auth_url": "https://ctrl/token"}`,
		`{"auth_body": {"scope": ["read"], "ttl": 60}, "auth_url": "https://ctrl/login"}`,
		`{"auth_body": null, "auth_url": "https://ctrl/login"}`,
	}

	for _, input := range inputs {
		auth, err := ParseAuth(decode(t, input))
		require.NoError(t, err)

		data, err := json.Marshal(auth)
		require.NoError(t, err)

		var got Auth
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, *auth, got, string(data))
	}
}

func TestAuthMarshalTagsVariant(t *testing.T) {
	data, err := json.Marshal(Auth{Kind: AuthKindBasic, Basic: &BasicAuth{Username: "u", Password: "p"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"BasicAuth": {"username": "u", "password": "p"}}`, string(data))

	data, err = json.Marshal(Auth{Kind: AuthKindCustom, Custom: &CustomAuth{AuthURL: "x"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Custom": {"auth_body": null, "auth_url": "x"}}`, string(data))
}

func TestAuthUnmarshalRejectsBadTags(t *testing.T) {
	var a Auth

	require.ErrorIs(t, json.Unmarshal([]byte(`{}`), &a), errAuthVariantCount)
	require.ErrorIs(t, json.Unmarshal([]byte(`{"BasicAuth": {}, "Custom": {}}`), &a), errAuthVariantCount)
	require.ErrorIs(t, json.Unmarshal([]byte(`{"Kerberos": {}}`), &a), errAuthUnknownKind)

	_, err := json.Marshal(Auth{Kind: "Kerberos"})
	require.ErrorIs(t, err, errAuthUnknownKind)
}
