/*
 * Cadence - The resource-oriented smart contract programming language
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package common

import (
	"strings"
)

// typeIDParser splits the type IDs of one kind of location,
// which all start with the same prefix
type typeIDParser struct {
	kind   string
	prefix string
	// withLocation is set if the type IDs have the form
	// `<prefix>.<location>.<qualified identifier>`,
	// instead of `<prefix>.<qualified identifier>`
	withLocation bool
}

func (p typeIDParser) error(format string, args ...any) EncodingError {
	message := "invalid " + p.kind + " location type ID: " + format
	return NewEncodingError(message, args...)
}

func (p typeIDParser) partCount() int {
	if p.withLocation {
		return 3
	}
	return 2
}

// parse returns the location part, if any, and the qualified identifier of the type ID
func (p typeIDParser) parse(typeID string) (location string, qualifiedIdentifier string, err error) {
	if typeID == "" {
		return "", "", p.error("missing prefix")
	}

	n := p.partCount()
	parts := strings.SplitN(typeID, ".", n)

	if len(parts) < n {
		if p.withLocation && len(parts) == 1 {
			return "", "", p.error("missing location")
		}
		return "", "", p.error("missing qualified identifier")
	}

	if parts[0] != p.prefix {
		return "", "", p.error("invalid prefix: expected %q, got %q", p.prefix, parts[0])
	}

	if p.withLocation {
		location = parts[1]
		if location == "" {
			return "", "", p.error("missing location")
		}
	}

	qualifiedIdentifier = parts[n-1]
	if qualifiedIdentifier == "" {
		return "", "", p.error("missing qualified identifier")
	}

	return location, qualifiedIdentifier, nil
}

// qualifiedIdentifier returns the qualified identifier of the type ID,
// without checking the prefix or the location
func (p typeIDParser) qualifiedIdentifier(typeID string) string {
	n := p.partCount()
	parts := strings.SplitN(typeID, ".", n)
	if len(parts) < n {
		return ""
	}
	return parts[n-1]
}
