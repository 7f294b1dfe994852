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
	gocrypto "crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	decredecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	flowcrypto "github.com/onflow/crypto"
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

const (
	PublicKeyLength = 64 // x || y
	SignatureLength = 64 // r || s

	scalarLength = 32
)

// Signer signs messages prefixed with a domain tag
type Signer interface {
	Sign(message []byte, tag DomainTag) ([]byte, error)
}

// Verifier verifies signatures of messages prefixed with a domain tag
type Verifier interface {
	Verify(signature []byte, message []byte, tag DomainTag) (bool, error)
}

// InMemorySigner signs with a private key held in memory.
// Signatures are deterministic (RFC 6979) and encoded as r || s.
type InMemorySigner struct {
	privateKey         flowcrypto.PrivateKey
	signatureAlgorithm SignatureAlgorithm
	hashAlgorithm      HashAlgorithm
}

var _ Signer = &InMemorySigner{}

// NewInMemorySigner returns a signer for the raw private key scalar
func NewInMemorySigner(
	privateKey []byte,
	signatureAlgorithm SignatureAlgorithm,
	hashAlgorithm HashAlgorithm,
) (*InMemorySigner, error) {
	algorithm, err := signatureAlgorithm.signingAlgorithm()
	if err != nil {
		return nil, err
	}

	if _, err := hashAlgorithm.NewHasher(); err != nil {
		return nil, err
	}

	key, err := flowcrypto.DecodePrivateKey(algorithm, privateKey)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	return newInMemorySigner(key, signatureAlgorithm, hashAlgorithm), nil
}

func newInMemorySigner(
	privateKey flowcrypto.PrivateKey,
	signatureAlgorithm SignatureAlgorithm,
	hashAlgorithm HashAlgorithm,
) *InMemorySigner {
	return &InMemorySigner{
		privateKey:         privateKey,
		signatureAlgorithm: signatureAlgorithm,
		hashAlgorithm:      hashAlgorithm,
	}
}

// DecodeInMemorySigner returns a signer for the hex-encoded private key,
// with or without the `0x` prefix
func DecodeInMemorySigner(
	privateKey string,
	signatureAlgorithm SignatureAlgorithm,
	hashAlgorithm HashAlgorithm,
) (*InMemorySigner, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	return NewInMemorySigner(b, signatureAlgorithm, hashAlgorithm)
}

func (s *InMemorySigner) SignatureAlgorithm() SignatureAlgorithm {
	return s.signatureAlgorithm
}

func (s *InMemorySigner) HashAlgorithm() HashAlgorithm {
	return s.hashAlgorithm
}

// PublicKey returns the raw public key, x || y
func (s *InMemorySigner) PublicKey() []byte {
	return s.privateKey.PublicKey().Encode()
}

// PrivateKey returns the raw private key scalar
func (s *InMemorySigner) PrivateKey() []byte {
	return s.privateKey.Encode()
}

// Verifier returns a verifier for the signer's public key
func (s *InMemorySigner) Verifier() *InMemoryVerifier {
	return &InMemoryVerifier{
		publicKey:     s.privateKey.PublicKey(),
		hashAlgorithm: s.hashAlgorithm,
	}
}

// Sign hashes the tagged message and signs the digest
func (s *InMemorySigner) Sign(message []byte, tag DomainTag) ([]byte, error) {
	digest, err := s.hashAlgorithm.Hash(tag.Prefix(message))
	if err != nil {
		return nil, err
	}

	scalar := s.privateKey.Encode()

	switch s.signatureAlgorithm {
	case ECDSA_secp256k1:
		return signSecp256k1(scalar, digest), nil
	case ECDSA_P256:
		return signP256(scalar, s.PublicKey(), digest)
	}

	return nil, UnsupportedSignatureAlgorithmError{Algorithm: s.signatureAlgorithm}
}

func signSecp256k1(scalar []byte, digest []byte) []byte {
	key := secp256k1.PrivKeyFromBytes(scalar)

	// the compact signature is the recovery code followed by r || s
	signature := decredecdsa.SignCompact(key, digest, false)

	return signature[1:]
}

func signP256(scalar []byte, publicKey []byte, digest []byte) ([]byte, error) {
	key := &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{
			Curve: elliptic.P256(),
			X:     new(big.Int).SetBytes(publicKey[:scalarLength]),
			Y:     new(big.Int).SetBytes(publicKey[scalarLength:]),
		},
		D: new(big.Int).SetBytes(scalar),
	}

	// a nil random source produces a deterministic signature.
	// the nonce is derived with the SHA-2 function of the digest size.
	var nonceHash gocrypto.Hash = gocrypto.SHA256
	if len(digest) == gocrypto.SHA384.Size() {
		nonceHash = gocrypto.SHA384
	}

	der, err := key.Sign(nil, digest, nonceHash)
	if err != nil {
		return nil, fmt.Errorf("failed to sign: %w", err)
	}

	r, s, err := parseASN1Signature(der)
	if err != nil {
		return nil, err
	}

	signature := make([]byte, SignatureLength)
	copy(signature[scalarLength-len(r):scalarLength], r)
	copy(signature[SignatureLength-len(s):], s)

	return signature, nil
}

// parseASN1Signature parses a DER encoded ECDSA signature into r and s
func parseASN1Signature(signature []byte) (r, s []byte, err error) {
	var inner cryptobyte.String
	input := cryptobyte.String(signature)
	if !input.ReadASN1(&inner, asn1.SEQUENCE) ||
		!input.Empty() ||
		!inner.ReadASN1Integer(&r) ||
		!inner.ReadASN1Integer(&s) ||
		!inner.Empty() {
		return nil, nil, fmt.Errorf("invalid ASN.1 signature")
	}

	// integers may carry a leading zero byte to stay positive
	r = trimLeadingZeros(r)
	s = trimLeadingZeros(s)

	if len(r) > scalarLength || len(s) > scalarLength {
		return nil, nil, fmt.Errorf("invalid ASN.1 signature")
	}

	return r, s, nil
}

func trimLeadingZeros(b []byte) []byte {
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	return b
}

// InMemoryVerifier verifies signatures of a public key
type InMemoryVerifier struct {
	publicKey     flowcrypto.PublicKey
	hashAlgorithm HashAlgorithm
}

var _ Verifier = &InMemoryVerifier{}

// NewInMemoryVerifier returns a verifier for the raw public key, x || y
func NewInMemoryVerifier(
	publicKey []byte,
	signatureAlgorithm SignatureAlgorithm,
	hashAlgorithm HashAlgorithm,
) (*InMemoryVerifier, error) {
	algorithm, err := signatureAlgorithm.signingAlgorithm()
	if err != nil {
		return nil, err
	}

	if _, err := hashAlgorithm.NewHasher(); err != nil {
		return nil, err
	}

	key, err := flowcrypto.DecodePublicKey(algorithm, publicKey)
	if err != nil {
		return nil, fmt.Errorf("invalid public key: %w", err)
	}

	return &InMemoryVerifier{
		publicKey:     key,
		hashAlgorithm: hashAlgorithm,
	}, nil
}

func (v *InMemoryVerifier) Verify(signature []byte, message []byte, tag DomainTag) (bool, error) {
	hasher, err := v.hashAlgorithm.NewHasher()
	if err != nil {
		return false, err
	}

	return v.publicKey.Verify(signature, tag.Prefix(message), hasher)
}
