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
	"errors"
	"fmt"
)

// AuthKind names the authentication variant held by an Auth. The values
// double as the variant tag in the JSON encoding.
type AuthKind string

const (
	AuthKindBasic  AuthKind = "BasicAuth"
	AuthKindOAuth2 AuthKind = "Oauth2"
	AuthKindCustom AuthKind = "Custom"
)

// Keys used to discriminate authentication payloads.
const (
	authKeyUsername  = "username"
	authKeyPassword  = "password"
	authKeyGrantType = "grant_type"
	authKeyAuthURL   = "auth_url"
	authKeyAuthBody  = "auth_body"
)

var (
	errAuthVariantCount = errors.New("auth must hold exactly one variant")
	errAuthUnknownKind  = errors.New("unknown auth variant")
)

// Auth describes how to authenticate against a device. Exactly one of
// Basic, OAuth2 or Custom is set, as named by Kind.
type Auth struct {
	Kind   AuthKind
	Basic  *BasicAuth
	OAuth2 *OAuth2
	Custom *CustomAuth
}

// BasicAuth is username/password authentication.
type BasicAuth struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// OAuth2 carries the credentials and token endpoint for an OAuth2 grant.
type OAuth2 struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	GrantType string `json:"grant_type"` // e.g. client_credentials, password
	AuthURL   string `json:"auth_url"`
}

// CustomAuth posts an arbitrary, caller-defined body to AuthURL.
type CustomAuth struct {
	AuthBody any    `json:"auth_body"`
	AuthURL  string `json:"auth_url"`
}

// parseAuth picks the variant from the keys present, in fixed order:
// grant_type, then auth_body, then username+password. Once a variant is
// chosen its field errors are final; there is no fallback to the next one.
func parseAuth(value any) (*Auth, error) {
	obj, ok := asObject(value)
	if !ok {
		return nil, ErrAuthBodyNotValid
	}

	_, hasGrantType := obj[authKeyGrantType]
	_, hasAuthBody := obj[authKeyAuthBody]
	_, hasUsername := obj[authKeyUsername]
	_, hasPassword := obj[authKeyPassword]

	switch {
	case hasGrantType:
		oauth, err := parseOAuth2(obj)
		if err != nil {
			return nil, err
		}

		return &Auth{Kind: AuthKindOAuth2, OAuth2: oauth}, nil
	case hasAuthBody:
		custom, err := parseCustomAuth(obj)
		if err != nil {
			return nil, err
		}

		return &Auth{Kind: AuthKindCustom, Custom: custom}, nil
	case hasUsername && hasPassword:
		basic, err := parseBasicAuth(obj)
		if err != nil {
			return nil, err
		}

		return &Auth{Kind: AuthKindBasic, Basic: basic}, nil
	default:
		return nil, ErrUnrecognizedAuthType
	}
}

func parseBasicAuth(obj map[string]any) (*BasicAuth, error) {
	username, ok := stringField(obj, authKeyUsername)
	if !ok {
		return nil, ErrBasicUsernameNotFound
	}

	password, ok := stringField(obj, authKeyPassword)
	if !ok {
		return nil, ErrBasicPasswordNotFound
	}

	return &BasicAuth{Username: username, Password: password}, nil
}

func parseOAuth2(obj map[string]any) (*OAuth2, error) {
	username, ok := stringField(obj, authKeyUsername)
	if !ok {
		return nil, ErrOAuth2UsernameNotFound
	}

	password, ok := stringField(obj, authKeyPassword)
	if !ok {
		return nil, ErrOAuth2PasswordNotFound
	}

	grantType, ok := stringField(obj, authKeyGrantType)
	if !ok {
		return nil, ErrOAuth2GrantTypeNotFound
	}

	authURL, ok := stringField(obj, authKeyAuthURL)
	if !ok {
		return nil, ErrOAuth2AuthURLNotFound
	}

	return &OAuth2{
		Username:  username,
		Password:  password,
		GrantType: grantType,
		AuthURL:   authURL,
	}, nil
}

// parseCustomAuth accepts any auth_body shape, null included.
func parseCustomAuth(obj map[string]any) (*CustomAuth, error) {
	body, ok := obj[authKeyAuthBody]
	if !ok {
		return nil, ErrCustomAuthBodyNotFound
	}

	authURL, ok := stringField(obj, authKeyAuthURL)
	if !ok {
		return nil, ErrCustomAuthURLNotFound
	}

	return &CustomAuth{AuthBody: body, AuthURL: authURL}, nil
}

func (a *Auth) variant() (any, error) {
	switch a.Kind {
	case AuthKindBasic:
		return a.Basic, nil
	case AuthKindOAuth2:
		return a.OAuth2, nil
	case AuthKindCustom:
		return a.Custom, nil
	default:
		return nil, fmt.Errorf("%w: %q", errAuthUnknownKind, a.Kind)
	}
}

// MarshalJSON encodes the variant under its tag, e.g. {"BasicAuth":{...}}.
func (a Auth) MarshalJSON() ([]byte, error) {
	v, err := a.variant()
	if err != nil {
		return nil, err
	}

	return json.Marshal(map[AuthKind]any{a.Kind: v})
}

// UnmarshalJSON reverses MarshalJSON. Numbers inside a custom auth body are
// decoded as json.Number, matching the JSON codec.
func (a *Auth) UnmarshalJSON(data []byte) error {
	var tagged map[AuthKind]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}

	if len(tagged) != 1 {
		return errAuthVariantCount
	}

	for kind, raw := range tagged {
		out := Auth{Kind: kind}

		switch kind {
		case AuthKindBasic:
			out.Basic = &BasicAuth{}
			if err := json.Unmarshal(raw, out.Basic); err != nil {
				return err
			}
		case AuthKindOAuth2:
			out.OAuth2 = &OAuth2{}
			if err := json.Unmarshal(raw, out.OAuth2); err != nil {
				return err
			}
		case AuthKindCustom:
			out.Custom = &CustomAuth{}

			dec := json.NewDecoder(bytes.NewReader(raw))
			dec.UseNumber()

			if err := dec.Decode(out.Custom); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %q", errAuthUnknownKind, kind)
		}

		*a = out
	}

	return nil
}
