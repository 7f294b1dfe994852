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

	"github.com/onflow/cadence-sdk/crypto"
	"github.com/onflow/cadence-sdk/encoding/rlp"
)

// AccountKeyWeightThreshold is the total key weight required
// to authorize an action on behalf of an account
const AccountKeyWeightThreshold = 1000

// AccountKey is a public key associated with an account
type AccountKey struct {
	Index          uint32
	PublicKey      []byte
	SignAlgo       crypto.SignatureAlgorithm
	HashAlgo       crypto.HashAlgorithm
	Weight         uint32
	SequenceNumber uint64
	Revoked        bool
}

// NewAccountKey returns a key with full weight
func NewAccountKey(
	publicKey []byte,
	signAlgo crypto.SignatureAlgorithm,
	hashAlgo crypto.HashAlgorithm,
) *AccountKey {
	return &AccountKey{
		PublicKey: publicKey,
		SignAlgo:  signAlgo,
		HashAlgo:  hashAlgo,
		Weight:    AccountKeyWeightThreshold,
	}
}

// AccountKeyFromSeed derives a key with full weight from the seed,
// and returns it together with a signer for the key
func AccountKeyFromSeed(
	seed string,
	signAlgo crypto.SignatureAlgorithm,
	hashAlgo crypto.HashAlgorithm,
) (*AccountKey, *crypto.InMemorySigner, error) {
	publicKey, signer, err := crypto.KeyFromSeed(seed, signAlgo, hashAlgo)
	if err != nil {
		return nil, nil, err
	}

	return NewAccountKey(publicKey, signAlgo, hashAlgo), signer, nil
}

// RLP returns the encoding used when adding the key to an account
func (k AccountKey) RLP() []byte {
	return rlp.Encode(rlp.ListItem{
		rlp.BytesItem(k.PublicKey),
		rlp.Uint(uint64(k.SignAlgo)),
		rlp.Uint(uint64(k.HashAlgo)),
		rlp.Uint(uint64(k.Weight)),
	})
}

func (k AccountKey) Hex() string {
	return hex.EncodeToString(k.RLP())
}

// Validate returns an error if the key cannot be added to an account
func (k AccountKey) Validate() error {
	if _, err := crypto.NewInMemoryVerifier(k.PublicKey, k.SignAlgo, k.HashAlgo); err != nil {
		return fmt.Errorf("invalid account key: %w", err)
	}

	if k.Weight > AccountKeyWeightThreshold {
		return fmt.Errorf(
			"invalid account key: weight must be at most %d, got %d",
			AccountKeyWeightThreshold,
			k.Weight,
		)
	}

	return nil
}
