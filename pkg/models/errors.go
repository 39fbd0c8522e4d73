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

// ParseError is the single failure kind returned by the record parsers. The
// message names the field that was missing, mistyped or unparseable.
type ParseError struct {
	msg string
}

// Custom builds a ParseError carrying msg verbatim.
func Custom(msg string) *ParseError {
	return &ParseError{msg: msg}
}

func (e *ParseError) Error() string {
	return e.msg
}

//nolint:revive,stylecheck // messages are part of the wire contract and asserted verbatim by callers
var (
	ErrAuthBodyNotValid      = Custom("auth body not valid")
	ErrUnrecognizedAuthType  = Custom("unrecognized authentication type")
	ErrBasicUsernameNotFound = Custom("Username for Basic authentication not found")
	ErrBasicPasswordNotFound = Custom("Password for Basic authentication not found")

	ErrOAuth2UsernameNotFound  = Custom("Username for OAuth2 authentication not found")
	ErrOAuth2PasswordNotFound  = Custom("Password for OAuth2 authentication not found")
	ErrOAuth2GrantTypeNotFound = Custom("Grant type for OAuth2 authentication not found")
	ErrOAuth2AuthURLNotFound   = Custom("Authentication URL for OAuth2 authentication not found")

	ErrCustomAuthBodyNotFound = Custom("Authentication body for Custom authentication not found")
	ErrCustomAuthURLNotFound  = Custom("Authentication URL for Custom authentication not found")

	ErrHostNotFound     = Custom("host not found")
	ErrAuthBodyNotFound = Custom("auth body not found")

	ErrNodeEdgePointUUIDNotFound = Custom("not found node edge point uuid")
	ErrNodeUUIDNotFound          = Custom("not found node uuid")

	ErrLinkUUIDNotFound         = Custom("not found link uuid")
	ErrNodeEdgePointsNotFound   = Custom("not found node edge points list")
	ErrContentHashNotComputable = Custom("content hash not computable")
)
