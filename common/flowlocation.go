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

const FlowLocationPrefix = "flow"

var flowTypeIDs = typeIDParser{
	kind:   "Flow",
	prefix: FlowLocationPrefix,
}

// FlowLocation is the location of built-in system types and events,
// e.g. flow.AccountCreated
type FlowLocation struct{}

var _ Location = FlowLocation{}

func (l FlowLocation) Prefix() string {
	return FlowLocationPrefix
}

func (l FlowLocation) String() string {
	return FlowLocationPrefix
}

func (l FlowLocation) ID() string {
	return FlowLocationPrefix
}

func (l FlowLocation) TypeID(qualifiedIdentifier string) string {
	return newTypeID(FlowLocationPrefix, "", qualifiedIdentifier)
}

func (l FlowLocation) QualifiedIdentifier(typeID string) string {
	return flowTypeIDs.qualifiedIdentifier(typeID)
}

func (l FlowLocation) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Type string
	}{
		Type: "FlowLocation",
	})
}

// DecodeFlowLocationTypeID decodes a type ID of the form `flow.<qualified identifier>`
func DecodeFlowLocationTypeID(typeID string) (FlowLocation, string, error) {
	return decodeFlowLocationTypeID(typeID)
}

func decodeFlowLocationTypeID(typeID string) (FlowLocation, string, error) {
	_, qualifiedIdentifier, err := flowTypeIDs.parse(typeID)
	if err != nil {
		return FlowLocation{}, "", err
	}
	return FlowLocation{}, qualifiedIdentifier, nil
}
