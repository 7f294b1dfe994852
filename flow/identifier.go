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

package flow

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/onflow/cadence-sdk/crypto"
)

const IdentifierLength = 32

// Identifier is the ID of a block, collection or transaction
type Identifier [IdentifierLength]byte

var EmptyID = Identifier{}

// BytesToID returns the identifier for the given bytes.
// Shorter inputs are left-padded with zeros.
func BytesToID(b []byte) (Identifier, error) {
	var id Identifier

	if len(b) > IdentifierLength {
		return id, fmt.Errorf(
			"identifier too large: expected at most %d bytes, got %d",
			IdentifierLength,
			len(b),
		)
	}

	copy(id[IdentifierLength-len(b):], b)

	return id, nil
}

// HexToID decodes the hex-encoded identifier, with or without the `0x` prefix
func HexToID(h string) (Identifier, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(h, "0x"))
	if err != nil {
		return EmptyID, fmt.Errorf("invalid identifier: %w", err)
	}

	return BytesToID(b)
}

func MustHexToID(h string) Identifier {
	id, err := HexToID(h)
	if err != nil {
		panic(err)
	}
	return id
}

func (id Identifier) Bytes() []byte {
	return id[:]
}

func (id Identifier) Hex() string {
	return hex.EncodeToString(id[:])
}

func (id Identifier) String() string {
	return id.Hex()
}

func (id Identifier) IsEmpty() bool {
	return id == EmptyID
}

func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.Hex()), nil
}

func (id *Identifier) UnmarshalText(text []byte) error {
	decoded, err := HexToID(string(text))
	if err != nil {
		return err
	}
	*id = decoded
	return nil
}

// hashToID computes the SHA3-256 identifier of the data
func hashToID(data []byte) Identifier {
	digest, err := crypto.SHA3_256.Hash(data)
	if err != nil {
		panic(err)
	}

	var id Identifier
	copy(id[:], digest)
	return id
}
