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

//go:generate mockgen -destination=mock_models.go -package=models github.com/carverauto/topology-backend/pkg/models Clock

import "time"

// Clock abstracts the wall-clock read used to stamp parsed links.
type Clock interface {
	Now() time.Time
}

// realClock implements Clock using the local wall clock.
type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}
