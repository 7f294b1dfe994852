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

const ScriptLocationPrefix = "s"

var scriptTypeIDs = typeIDParser{
	kind:         "script",
	prefix:       ScriptLocationPrefix,
	withLocation: true,
}

// ScriptLocation is the location of a script, identified by the script's ID
type ScriptLocation string

var _ Location = ScriptLocation("")

func NewScriptLocation(location string) ScriptLocation {
	return ScriptLocation(location)
}

func (l ScriptLocation) Prefix() string {
	return ScriptLocationPrefix
}

func (l ScriptLocation) String() string {
	return string(l)
}

func (l ScriptLocation) ID() string {
	return newTypeID(ScriptLocationPrefix, string(l), "")
}

func (l ScriptLocation) TypeID(qualifiedIdentifier string) string {
	return newTypeID(ScriptLocationPrefix, string(l), qualifiedIdentifier)
}

func (l ScriptLocation) QualifiedIdentifier(typeID string) string {
	return scriptTypeIDs.qualifiedIdentifier(typeID)
}

func (l ScriptLocation) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Type   string
		Script string
	}{
		Type:   "ScriptLocation",
		Script: string(l),
	})
}

// DecodeScriptLocationTypeID decodes a type ID of the form `s.<location>.<qualified identifier>`
func DecodeScriptLocationTypeID(typeID string) (ScriptLocation, string, error) {
	return decodeScriptLocationTypeID(typeID)
}

func decodeScriptLocationTypeID(typeID string) (ScriptLocation, string, error) {
	location, qualifiedIdentifier, err := scriptTypeIDs.parse(typeID)
	if err != nil {
		return "", "", err
	}
	return NewScriptLocation(location), qualifiedIdentifier, nil
}
