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

// Device represents a managed network device and how to reach it.
type Device struct {
	Host string `json:"host"`           // host name or IP address
	Port *int64 `json:"port,omitempty"` // nil when absent or not an integer
	Auth Auth   `json:"auth"`
}

func parseDevice(value any) (*Device, error) {
	host, ok := stringField(value, "host")
	if !ok {
		return nil, ErrHostNotFound
	}

	var port *int64
	if p, ok := int64Field(value, "port"); ok {
		port = &p
	}

	rawAuth, ok := field(value, "auth")
	if !ok {
		return nil, ErrAuthBodyNotFound
	}

	auth, err := parseAuth(rawAuth)
	if err != nil {
		return nil, err
	}

	return &Device{
		Host: host,
		Port: port,
		Auth: *auth,
	}, nil
}
