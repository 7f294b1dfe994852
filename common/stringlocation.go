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
	"encoding/json"
)

const StringLocationPrefix = "S"

var stringTypeIDs = typeIDParser{
	kind:         "string",
	prefix:       StringLocationPrefix,
	withLocation: true,
}

// StringLocation is a location identified by an arbitrary string, e.g. a file name
type StringLocation string

var _ Location = StringLocation("")

func NewStringLocation(location string) StringLocation {
	return StringLocation(location)
}

func (l StringLocation) Prefix() string {
	return StringLocationPrefix
}

func (l StringLocation) String() string {
	return string(l)
}

func (l StringLocation) ID() string {
	return newTypeID(StringLocationPrefix, string(l), "")
}

func (l StringLocation) TypeID(qualifiedIdentifier string) string {
	return newTypeID(StringLocationPrefix, string(l), qualifiedIdentifier)
}

func (l StringLocation) QualifiedIdentifier(typeID string) string {
	return stringTypeIDs.qualifiedIdentifier(typeID)
}

func (l StringLocation) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Type   string
		String string
	}{
		Type:   "StringLocation",
		String: string(l),
	})
}

// DecodeStringLocationTypeID decodes a type ID of the form `S.<location>.<qualified identifier>`
func DecodeStringLocationTypeID(typeID string) (StringLocation, string, error) {
	return decodeStringLocationTypeID(typeID)
}

func decodeStringLocationTypeID(typeID string) (StringLocation, string, error) {
	location, qualifiedIdentifier, err := stringTypeIDs.parse(typeID)
	if err != nil {
		return "", "", err
	}
	return NewStringLocation(location), qualifiedIdentifier, nil
}
