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

// HashAlgorithm is a hashing algorithm supported for account keys.
// The numeric values are the codes used in account key encodings.
type HashAlgorithm uint8

const (
	UnknownHashAlgorithm HashAlgorithm = 0
	SHA2_256             HashAlgorithm = 1
	SHA2_384             HashAlgorithm = 2
	SHA3_256             HashAlgorithm = 3
	SHA3_384             HashAlgorithm = 4
)

var HashAlgorithms = []HashAlgorithm{
	SHA2_256,
	SHA2_384,
	SHA3_256,
	SHA3_384,
}

func (a HashAlgorithm) String() string {
	switch a {
	case SHA2_256:
		return "SHA2_256"
	case SHA2_384:
		return "SHA2_384"
	case SHA3_256:
		return "SHA3_256"
	case SHA3_384:
		return "SHA3_384"
	}
	return fmt.Sprintf("HashAlgorithm(%d)", uint8(a))
}

// HashAlgorithmFromString returns the hash algorithm with the given name,
// or UnknownHashAlgorithm
func HashAlgorithmFromString(name string) HashAlgorithm {
	for _, algorithm := range HashAlgorithms {
		if algorithm.String() == name {
			return algorithm
		}
	}
	return UnknownHashAlgorithm
}

// NewHasher returns a new hasher for the algorithm
func (a HashAlgorithm) NewHasher() (hash.Hasher, error) {
	switch a {
	case SHA2_256:
		return hash.NewSHA2_256(), nil
	case SHA2_384:
		return hash.NewSHA2_384(), nil
	case SHA3_256:
		return hash.NewSHA3_256(), nil
	case SHA3_384:
		return hash.NewSHA3_384(), nil
	}
	return nil, UnsupportedHashAlgorithmError{Algorithm: a}
}

// Hash returns the digest of the data
func (a HashAlgorithm) Hash(data []byte) ([]byte, error) {
	hasher, err := a.NewHasher()
	if err != nil {
		return nil, err
	}
	return hasher.ComputeHash(data), nil
}

// SignatureAlgorithm is a signature algorithm supported for account keys.
// The numeric values are the codes used in account key encodings.
type SignatureAlgorithm uint8

const (
	UnknownSignatureAlgorithm SignatureAlgorithm = 0
	ECDSA_P256                SignatureAlgorithm = 2
	ECDSA_secp256k1           SignatureAlgorithm = 3
)

var SignatureAlgorithms = []SignatureAlgorithm{
	ECDSA_P256,
	ECDSA_secp256k1,
}

func (a SignatureAlgorithm) String() string {
	switch a {
	case ECDSA_P256:
		return "ECDSA_P256"
	case ECDSA_secp256k1:
		return "ECDSA_secp256k1"
	}
	return fmt.Sprintf("SignatureAlgorithm(%d)", uint8(a))
}

// SignatureAlgorithmFromString returns the signature algorithm with the given name,
// or UnknownSignatureAlgorithm
func SignatureAlgorithmFromString(name string) SignatureAlgorithm {
	for _, algorithm := range SignatureAlgorithms {
		if algorithm.String() == name {
			return algorithm
		}
	}
	return UnknownSignatureAlgorithm
}

func (a SignatureAlgorithm) signingAlgorithm() (algorithm flowcrypto.SigningAlgorithm, err error) {
	switch a {
	case ECDSA_P256:
		return flowcrypto.ECDSAP256, nil
	case ECDSA_secp256k1:
		return flowcrypto.ECDSASecp256k1, nil
	}
	return algorithm, UnsupportedSignatureAlgorithmError{Algorithm: a}
}

// UnsupportedHashAlgorithmError is returned for unknown hash algorithm codes
type UnsupportedHashAlgorithmError struct {
	Algorithm HashAlgorithm
}

func (e UnsupportedHashAlgorithmError) Error() string {
	return fmt.Sprintf("unsupported hash algorithm: %s", e.Algorithm)
}

func (UnsupportedHashAlgorithmError) IsUserError() {}

// UnsupportedSignatureAlgorithmError is returned for unknown signature algorithm codes
type UnsupportedSignatureAlgorithmError struct {
	Algorithm SignatureAlgorithm
}

func (e UnsupportedSignatureAlgorithmError) Error() string {
	return fmt.Sprintf("unsupported signature algorithm: %s", e.Algorithm)
}

func (UnsupportedSignatureAlgorithmError) IsUserError() {}
