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
	"github.com/carverauto/topology-backend/pkg/logger"
)

// Parser turns generic JSON-like values into validated records. It holds no
// mutable state and is safe for concurrent use.
type Parser struct {
	clock  Clock
	logger logger.Logger
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithClock sets the clock used to stamp parsed links.
func WithClock(clock Clock) ParserOption {
	return func(p *Parser) {
		if clock != nil {
			p.clock = clock
		}
	}
}

// WithLogger sets the logger that receives parse events.
func WithLogger(log logger.Logger) ParserOption {
	return func(p *Parser) {
		if log != nil {
			p.logger = log
		}
	}
}

// NewParser returns a Parser using the wall clock and a discarding logger
// unless overridden.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{
		clock:  realClock{},
		logger: logger.NewNopLogger(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

var defaultParser = NewParser()

// ParseAuth parses an authentication descriptor with the default parser.
func ParseAuth(value any) (*Auth, error) {
	return defaultParser.Auth(value)
}

// ParseDevice parses a device record with the default parser.
func ParseDevice(value any) (*Device, error) {
	return defaultParser.Device(value)
}

// ParseNodeEdgePoint parses a node edge point with the default parser.
func ParseNodeEdgePoint(value any) (*NodeEdgePoint, error) {
	return defaultParser.NodeEdgePoint(value)
}

// ParseLink parses a topology link reported by host with the default parser.
func ParseLink(value any, host string) (*Link, error) {
	return defaultParser.Link(value, host)
}

func (p *Parser) Auth(value any) (*Auth, error) {
	auth, err := parseAuth(value)
	if err != nil {
		p.logger.Warn().Err(err).Msg("Failed to parse authentication descriptor")

		return nil, err
	}

	p.logger.Debug().Str("kind", string(auth.Kind)).Msg("Parsed authentication descriptor")

	return auth, nil
}

func (p *Parser) Device(value any) (*Device, error) {
	device, err := parseDevice(value)
	if err != nil {
		p.logger.Warn().Err(err).Msg("Failed to parse device")

		return nil, err
	}

	evt := p.logger.Debug().
		Str("host", device.Host).
		Str("auth_kind", string(device.Auth.Kind))
	if device.Port != nil {
		evt = evt.Int64("port", *device.Port)
	}

	evt.Msg("Parsed device")

	return device, nil
}

func (p *Parser) NodeEdgePoint(value any) (*NodeEdgePoint, error) {
	nep, err := parseNodeEdgePoint(value)
	if err != nil {
		p.logger.Warn().Err(err).Msg("Failed to parse node edge point")

		return nil, err
	}

	return nep, nil
}

func (p *Parser) Link(value any, host string) (*Link, error) {
	link, err := parseLink(value, host, p.clock)
	if err != nil {
		p.logger.Warn().Err(err).Str("host", host).Msg("Failed to parse link")

		return nil, err
	}

	p.logger.Debug().
		Str("host", host).
		Str("uuid", link.UUID.String()).
		Uint64("hash", link.Hash).
		Int("node_edge_points", len(link.NodeEdgePoints)).
		Msg("Parsed link")

	return link, nil
}
