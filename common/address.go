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
	"fmt"
	"strings"
)

const AddressLength = 8

const AddressPrefix = "0x"

// Address is the 8-byte, big-endian address of an account
type Address [AddressLength]byte

var ZeroAddress = Address{}

// BytesToAddress returns the address for the given bytes.
// Shorter inputs are left-padded with zero bytes,
// inputs longer than AddressLength are rejected.
func BytesToAddress(b []byte) (Address, error) {
	if len(b) > AddressLength {
		return Address{}, fmt.Errorf(
			"address too large: expected at most %d bytes, got %d",
			AddressLength,
			len(b),
		)
	}

	var a Address
	copy(a[AddressLength-len(b):AddressLength], b)
	return a, nil
}

func MustBytesToAddress(b []byte) Address {
	address, err := BytesToAddress(b)
	if err != nil {
		panic(err)
	}
	return address
}

// HexToAddress converts a hex string to an Address.
// The 0x prefix is optional, odd-length strings are zero-padded.
func HexToAddress(h string) (Address, error) {
	trimmed := strings.TrimPrefix(h, AddressPrefix)
	if len(trimmed)%2 == 1 {
		trimmed = "0" + trimmed
	}
	b, err := hex.DecodeString(trimmed)
	if err != nil {
		return Address{}, fmt.Errorf("invalid address %q: %w", h, err)
	}
	return BytesToAddress(b)
}

func MustHexToAddress(h string) Address {
	address, err := HexToAddress(h)
	if err != nil {
		panic(err)
	}
	return address
}

// Hex returns the hex string of the address, without a prefix
func (a Address) Hex() string {
	return hex.EncodeToString(a[:])
}

// HexWithPrefix returns the hex string of the address, with the 0x prefix
func (a Address) HexWithPrefix() string {
	return AddressPrefix + a.Hex()
}

func (a Address) String() string {
	return a.HexWithPrefix()
}

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.HexWithPrefix()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	address, err := HexToAddress(string(text))
	if err != nil {
		return err
	}
	*a = address
	return nil
}
