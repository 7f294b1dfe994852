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
	"encoding/hex"
	"encoding/json"
	"strings"
)

const AddressLocationPrefix = "A"

var addressTypeIDs = typeIDParser{
	kind:         "address",
	prefix:       AddressLocationPrefix,
	withLocation: true,
}

// AddressLocation is the location of a contract deployed to an account
type AddressLocation struct {
	Address Address
	Name    string
}

var _ Location = AddressLocation{}

func NewAddressLocation(address Address, name string) AddressLocation {
	return AddressLocation{
		Address: address,
		Name:    name,
	}
}

func (l AddressLocation) Prefix() string {
	return AddressLocationPrefix
}

func (l AddressLocation) String() string {
	if l.Name == "" {
		return l.Address.String()
	}

	return l.Address.String() + "." + l.Name
}

func (l AddressLocation) ID() string {
	return newTypeID(AddressLocationPrefix, l.Address.Hex(), l.Name)
}

func (l AddressLocation) TypeID(qualifiedIdentifier string) string {
	return newTypeID(AddressLocationPrefix, l.Address.Hex(), qualifiedIdentifier)
}

func (l AddressLocation) QualifiedIdentifier(typeID string) string {
	return addressTypeIDs.qualifiedIdentifier(typeID)
}

func (l AddressLocation) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Type    string
		Address string
		Name    string
	}{
		Type:    "AddressLocation",
		Address: l.Address.HexWithPrefix(),
		Name:    l.Name,
	})
}

// DecodeAddressLocationTypeID decodes a type ID of the form
// `A.<address>.<name>` or `A.<address>.<name>.<nested>`
func DecodeAddressLocationTypeID(typeID string) (AddressLocation, string, error) {
	return decodeAddressLocationTypeID(typeID)
}

func decodeAddressLocationTypeID(typeID string) (AddressLocation, string, error) {
	rawAddress, qualifiedIdentifier, err := addressTypeIDs.parse(typeID)
	if err != nil {
		return AddressLocation{}, "", err
	}

	addressBytes, err := hex.DecodeString(rawAddress)
	if err != nil {
		return AddressLocation{}, "", addressTypeIDs.error("invalid address: %s", err)
	}

	address, err := BytesToAddress(addressBytes)
	if err != nil {
		return AddressLocation{}, "", addressTypeIDs.error("invalid address: %s", err)
	}

	// the location is named after the outermost declaration,
	// e.g. `A.0000000000000001.Foo.Bar` is located in contract Foo
	name, _, _ := strings.Cut(qualifiedIdentifier, ".")

	return NewAddressLocation(address, name), qualifiedIdentifier, nil
}
