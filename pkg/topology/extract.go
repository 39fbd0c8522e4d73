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

// Package topology extracts links from controller topology documents and
// tracks how they change between fetches.
package topology

import (
	"errors"

	"github.com/carverauto/topology-backend/pkg/models"
)

const (
	keyLink     = "link"
	keyTopology = "tapi-topology:topology"
)

var ErrNoLinks = errors.New("no link list found in topology document")

// ExtractLinks parses every link in doc. doc may be a bare array of links,
// an object with a "link" array, or an object whose "tapi-topology:topology"
// array holds such objects. The first invalid link aborts extraction and its
// error is returned as is.
func ExtractLinks(doc any, host string, p *models.Parser) ([]*models.Link, error) {
	if p == nil {
		p = models.NewParser()
	}

	raw, err := linkValues(doc)
	if err != nil {
		return nil, err
	}

	links := make([]*models.Link, 0, len(raw))

	for _, v := range raw {
		link, err := p.Link(v, host)
		if err != nil {
			return nil, err
		}

		links = append(links, link)
	}

	return links, nil
}

func linkValues(doc any) ([]any, error) {
	switch t := doc.(type) {
	case []any:
		return t, nil
	case map[string]any:
		if links, ok := t[keyLink].([]any); ok {
			return links, nil
		}

		topologies, ok := t[keyTopology].([]any)
		if !ok {
			return nil, ErrNoLinks
		}

		var out []any

		found := false

		for _, topo := range topologies {
			obj, ok := topo.(map[string]any)
			if !ok {
				continue
			}

			if links, ok := obj[keyLink].([]any); ok {
				found = true
				out = append(out, links...)
			}
		}

		if !found {
			return nil, ErrNoLinks
		}

		return out, nil
	default:
		return nil, ErrNoLinks
	}
}
