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

package crypto

import (
	"fmt"

	flowcrypto "github.com/onflow/crypto"
	"github.com/onflow/crypto/hash"
)

// KeyFromSeed deterministically derives a key pair from the seed.
// The key generation seed is the SHA3-256 digest of the seed.
// It returns the raw public key and a signer for the private key.
func KeyFromSeed(
	seed string,
	signatureAlgorithm SignatureAlgorithm,
	hashAlgorithm HashAlgorithm,
) ([]byte, *InMemorySigner, error) {
	algorithm, err := signatureAlgorithm.signingAlgorithm()
	if err != nil {
		return nil, nil, err
	}

	if _, err := hashAlgorithm.NewHasher(); err != nil {
		return nil, nil, err
	}

	material := hash.NewSHA3_256().ComputeHash([]byte(seed))

	privateKey, err := flowcrypto.GeneratePrivateKey(algorithm, material)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate key from seed: %w", err)
	}

	signer := newInMemorySigner(privateKey, signatureAlgorithm, hashAlgorithm)

	return signer.PublicKey(), signer, nil
}
