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
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDomainTag(t *testing.T) {

	t.Parallel()

	t.Run("padded", func(t *testing.T) {

		t.Parallel()

		tag, err := NewDomainTag("FLOW-V0.0-user")
		require.NoError(t, err)

		expected := make([]byte, DomainTagLength)
		copy(expected, "FLOW-V0.0-user")

		assert.Equal(t, expected, tag.Bytes())
		assert.Equal(t, UserDomainTag, tag)
	})

	t.Run("exact length", func(t *testing.T) {

		t.Parallel()

		input := string(bytes.Repeat([]byte{'a'}, DomainTagLength))

		tag, err := NewDomainTag(input)
		require.NoError(t, err)
		assert.Equal(t, []byte(input), tag.Bytes())
	})

	t.Run("too long", func(t *testing.T) {

		t.Parallel()

		input := string(bytes.Repeat([]byte{'a'}, DomainTagLength+1))

		_, err := NewDomainTag(input)
		require.Error(t, err)
		require.IsType(t, DomainTagTooLongError{}, err)

		assert.Panics(t, func() {
			MustNewDomainTag(input)
		})
	})

	t.Run("prefix", func(t *testing.T) {

		t.Parallel()

		prefixed := TransactionDomainTag.Prefix([]byte{1, 2, 3})
		require.Len(t, prefixed, DomainTagLength+3)
		assert.Equal(t, []byte("FLOW-V0.0-transaction"), prefixed[:21])
		assert.Equal(t, make([]byte, DomainTagLength-21), prefixed[21:DomainTagLength])
		assert.Equal(t, []byte{1, 2, 3}, prefixed[DomainTagLength:])
	})
}

func TestAlgorithmsFromString(t *testing.T) {

	t.Parallel()

	for _, algorithm := range HashAlgorithms {
		assert.Equal(t, algorithm, HashAlgorithmFromString(algorithm.String()))
	}
	assert.Equal(t, UnknownHashAlgorithm, HashAlgorithmFromString("SHA1"))

	for _, algorithm := range SignatureAlgorithms {
		assert.Equal(t, algorithm, SignatureAlgorithmFromString(algorithm.String()))
	}
	assert.Equal(t, UnknownSignatureAlgorithm, SignatureAlgorithmFromString("BLS"))

	assert.Equal(t, HashAlgorithm(3), SHA3_256)
	assert.Equal(t, SignatureAlgorithm(2), ECDSA_P256)
	assert.Equal(t, SignatureAlgorithm(3), ECDSA_secp256k1)
	assert.Equal(t, "HashAlgorithm(9)", HashAlgorithm(9).String())
}

func TestHashAlgorithm_Hash(t *testing.T) {

	t.Parallel()

	sizes := map[HashAlgorithm]int{
		SHA2_256: 32,
		SHA2_384: 48,
		SHA3_256: 32,
		SHA3_384: 48,
	}

	for algorithm, size := range sizes {
		digest, err := algorithm.Hash([]byte("abc"))
		require.NoError(t, err)
		assert.Len(t, digest, size)
	}

	_, err := UnknownHashAlgorithm.Hash(nil)
	require.EqualError(t, err, "unsupported hash algorithm: HashAlgorithm(0)")
}

func TestInMemorySigner(t *testing.T) {

	t.Parallel()

	type testCase struct {
		signatureAlgorithm SignatureAlgorithm
		hashAlgorithm      HashAlgorithm
	}

	testCases := []testCase{
		{ECDSA_P256, SHA2_256},
		{ECDSA_P256, SHA3_256},
		{ECDSA_P256, SHA3_384},
		{ECDSA_secp256k1, SHA2_256},
		{ECDSA_secp256k1, SHA3_256},
	}

	message := []byte("hello world")

	for _, test := range testCases {

		name := test.signatureAlgorithm.String() + "/" + test.hashAlgorithm.String()

		t.Run(name, func(t *testing.T) {

			t.Parallel()

			publicKey, signer, err := KeyFromSeed(
				"elephant ears space cowboy octopus rodeo potato cannon pineapple",
				test.signatureAlgorithm,
				test.hashAlgorithm,
			)
			require.NoError(t, err)
			require.Len(t, publicKey, PublicKeyLength)
			assert.Equal(t, publicKey, signer.PublicKey())

			signature, err := signer.Sign(message, UserDomainTag)
			require.NoError(t, err)
			require.Len(t, signature, SignatureLength)

			again, err := signer.Sign(message, UserDomainTag)
			require.NoError(t, err)
			assert.Equal(t, signature, again)

			verifier, err := NewInMemoryVerifier(
				publicKey,
				test.signatureAlgorithm,
				test.hashAlgorithm,
			)
			require.NoError(t, err)

			valid, err := verifier.Verify(signature, message, UserDomainTag)
			require.NoError(t, err)
			assert.True(t, valid)

			valid, err = verifier.Verify(signature, message, TransactionDomainTag)
			require.NoError(t, err)
			assert.False(t, valid)

			valid, err = verifier.Verify(signature, []byte("hello"), UserDomainTag)
			require.NoError(t, err)
			assert.False(t, valid)

			valid, err = signer.Verifier().Verify(signature, message, UserDomainTag)
			require.NoError(t, err)
			assert.True(t, valid)
		})
	}
}

func TestKeyFromSeed(t *testing.T) {

	t.Parallel()

	t.Run("deterministic", func(t *testing.T) {

		t.Parallel()

		first, _, err := KeyFromSeed("seed", ECDSA_secp256k1, SHA3_256)
		require.NoError(t, err)

		second, _, err := KeyFromSeed("seed", ECDSA_secp256k1, SHA3_256)
		require.NoError(t, err)

		other, _, err := KeyFromSeed("other seed", ECDSA_secp256k1, SHA3_256)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.NotEqual(t, first, other)
	})

	t.Run("unsupported signature algorithm", func(t *testing.T) {

		t.Parallel()

		_, _, err := KeyFromSeed("seed", UnknownSignatureAlgorithm, SHA3_256)
		require.EqualError(t, err, "unsupported signature algorithm: SignatureAlgorithm(0)")
	})

	t.Run("unsupported hash algorithm", func(t *testing.T) {

		t.Parallel()

		_, _, err := KeyFromSeed("seed", ECDSA_P256, HashAlgorithm(7))
		require.EqualError(t, err, "unsupported hash algorithm: HashAlgorithm(7)")
	})
}

func TestDecodeInMemorySigner(t *testing.T) {

	t.Parallel()

	_, signer, err := KeyFromSeed("seed", ECDSA_P256, SHA3_256)
	require.NoError(t, err)

	encoded := "0x" + hex.EncodeToString(signer.PrivateKey())

	decoded, err := DecodeInMemorySigner(encoded, ECDSA_P256, SHA3_256)
	require.NoError(t, err)

	assert.Equal(t, signer.PublicKey(), decoded.PublicKey())
	assert.Equal(t, ECDSA_P256, decoded.SignatureAlgorithm())
	assert.Equal(t, SHA3_256, decoded.HashAlgorithm())

	_, err = DecodeInMemorySigner("0xzz", ECDSA_P256, SHA3_256)
	require.ErrorContains(t, err, "invalid private key")

	_, err = NewInMemorySigner([]byte{1, 2, 3}, ECDSA_P256, SHA3_256)
	require.ErrorContains(t, err, "invalid private key")
}

func TestParseASN1Signature(t *testing.T) {

	t.Parallel()

	// SEQUENCE { INTEGER 0x00ff, INTEGER 0x01 }
	r, s, err := parseASN1Signature([]byte{0x30, 0x07, 0x02, 0x02, 0x00, 0xff, 0x02, 0x01, 0x01})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff}, r)
	assert.Equal(t, []byte{0x01}, s)

	_, _, err = parseASN1Signature([]byte{0x30, 0x01})
	require.EqualError(t, err, "invalid ASN.1 signature")
}
