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

const redacted = "********"

// Redacted returns a copy of a with passwords and custom bodies masked.
// Usernames, grant types and URLs are kept.
func (a Auth) Redacted() Auth {
	out := Auth{Kind: a.Kind}

	switch {
	case a.Basic != nil:
		basic := *a.Basic
		basic.Password = redacted
		out.Basic = &basic
	case a.OAuth2 != nil:
		oauth := *a.OAuth2
		oauth.Password = redacted
		out.OAuth2 = &oauth
	case a.Custom != nil:
		custom := *a.Custom
		if custom.AuthBody != nil {
			custom.AuthBody = redacted
		}

		out.Custom = &custom
	}

	return out
}

// Redacted returns a copy of d whose Auth is redacted.
func (d Device) Redacted() Device {
	out := d
	out.Auth = d.Auth.Redacted()

	return out
}
