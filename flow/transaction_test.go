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
	"testing"

	sdk "github.com/onflow/flow-go-sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/cadence-sdk"
	"github.com/onflow/cadence-sdk/crypto"
	"github.com/onflow/cadence-sdk/encoding/rlp"
)

var (
	testAddressA = cadence.NewAddress([8]byte{0, 0, 0, 0, 0, 0, 0, 1})
	testAddressB = cadence.NewAddress([8]byte{0, 0, 0, 0, 0, 0, 0, 2})
	testAddressC = cadence.NewAddress([8]byte{0, 0, 0, 0, 0, 0, 0, 3})

	testReferenceBlockID = MustHexToID("f0e4c2f76c58916ec258f246851bea091d14d4247a2fc3e18694461b1816e13b")
)

const testScript = `transaction { prepare(signer: &Account) { log(signer.address) } }`

func newTestTransaction(t *testing.T) *Transaction {
	tx := NewTransaction().
		SetScript([]byte(testScript)).
		SetReferenceBlockID(testReferenceBlockID).
		SetGasLimit(42).
		SetProposalKey(testAddressA, 3, 7).
		SetPayer(testAddressB).
		AddAuthorizers(testAddressA, testAddressC)

	err := tx.AddArguments(
		cadence.String("hello"),
		cadence.NewUInt64(1234),
	)
	require.NoError(t, err)

	return tx
}

func newTestSDKTransaction(tx *Transaction) *sdk.Transaction {
	sdkTx := sdk.NewTransaction().
		SetScript(tx.Script).
		SetReferenceBlockID(sdk.Identifier(tx.ReferenceBlockID)).
		SetComputeLimit(tx.GasLimit).
		SetProposalKey(sdk.Address(tx.ProposalKey.Address), 3, 7).
		SetPayer(sdk.Address(tx.Payer))

	for _, authorizer := range tx.Authorizers {
		sdkTx.AddAuthorizer(sdk.Address(authorizer))
	}

	for _, argument := range tx.Arguments {
		sdkTx.AddRawArgument(argument)
	}

	return sdkTx
}

func TestNewTransaction(t *testing.T) {

	t.Parallel()

	tx := NewTransaction()
	assert.Equal(t, uint64(DefaultTransactionGasLimit), tx.GasLimit)
	assert.Equal(t, uint64(100), tx.GasLimit)
	assert.Empty(t, tx.Signers())
}

func TestTransaction_Signers(t *testing.T) {

	t.Parallel()

	t.Run("deduplicated", func(t *testing.T) {

		t.Parallel()

		tx := NewTransaction().
			SetProposalKey(testAddressA, 0, 0).
			SetPayer(testAddressA).
			AddAuthorizers(testAddressA, testAddressB, testAddressA)

		assert.Equal(t,
			[]cadence.Address{testAddressA, testAddressB},
			tx.Signers(),
		)
	})

	t.Run("role order", func(t *testing.T) {

		t.Parallel()

		tx := NewTransaction().
			AddAuthorizers(testAddressA, testAddressB).
			SetPayer(testAddressC).
			SetProposalKey(testAddressB, 0, 0)

		assert.Equal(t,
			[]cadence.Address{testAddressB, testAddressC, testAddressA},
			tx.Signers(),
		)
	})
}

func TestTransaction_Incomplete(t *testing.T) {

	t.Parallel()

	t.Run("empty", func(t *testing.T) {

		t.Parallel()

		_, err := NewTransaction().PayloadMessage()
		require.EqualError(t,
			err,
			"incomplete transaction: missing script, reference_block_id, payer, proposal_key",
		)
	})

	t.Run("script only", func(t *testing.T) {

		t.Parallel()

		tx := NewTransaction().SetScript([]byte(testScript))

		_, signer, err := crypto.KeyFromSeed("seed", crypto.ECDSA_P256, crypto.SHA3_256)
		require.NoError(t, err)

		err = tx.AddEnvelopeSignature(testAddressA, 0, signer)

		var incompleteErr IncompleteTransactionError
		require.ErrorAs(t, err, &incompleteErr)
		assert.Equal(t,
			[]string{ReferenceBlockIDField, PayerField, ProposalKeyField},
			incompleteErr.MissingFields,
		)

		err = tx.AddPayloadSignatureBytes(testAddressA, 0, []byte{1})
		require.ErrorAs(t, err, &incompleteErr)

		assert.Empty(t, tx.PayloadSignatures)
		assert.Empty(t, tx.EnvelopeSignatures)
	})

	t.Run("complete", func(t *testing.T) {

		t.Parallel()

		tx := newTestTransaction(t)
		assert.Empty(t, tx.MissingFields())

		_, err := tx.EnvelopeMessage()
		require.NoError(t, err)
	})
}

func TestTransaction_PayloadMessage(t *testing.T) {

	t.Parallel()

	tx := newTestTransaction(t)

	message, err := tx.PayloadMessage()
	require.NoError(t, err)

	assert.Equal(t,
		newTestSDKTransaction(tx).PayloadMessage(),
		message,
	)
}

func TestTransaction_PayloadMessage_ArgumentFraming(t *testing.T) {

	t.Parallel()

	tx := newTestTransaction(t)

	message, err := tx.PayloadMessage()
	require.NoError(t, err)

	item, err := rlp.Decode(message)
	require.NoError(t, err)

	payload, ok := item.(rlp.ListItem)
	require.True(t, ok)
	require.Len(t, payload, 9)

	arguments, ok := payload.Get(1).(rlp.ListItem)
	require.True(t, ok)

	assert.Equal(t,
		rlp.ListItem{
			rlp.BytesItem(`{"value":"hello","type":"String"}`),
			rlp.BytesItem(`{"value":"1234","type":"UInt64"}`),
		},
		arguments,
	)

	// stored arguments keep their newline framing
	assert.Equal(t, byte('\n'), tx.Arguments[0][len(tx.Arguments[0])-1])
}

func TestTransaction_EnvelopeMessage(t *testing.T) {

	t.Parallel()

	tx := newTestTransaction(t)
	signature := []byte{0xCA, 0xFE}

	err := tx.AddPayloadSignatureBytes(testAddressC, 5, signature)
	require.NoError(t, err)

	require.Len(t, tx.PayloadSignatures, 1)
	assert.Equal(t, 2, tx.PayloadSignatures[0].SignerIndex)

	sdkTx := newTestSDKTransaction(tx).
		AddPayloadSignature(sdk.Address(testAddressC), 5, signature)

	message, err := tx.EnvelopeMessage()
	require.NoError(t, err)

	assert.Equal(t, sdkTx.EnvelopeMessage(), message)
}

func TestTransaction_Encode(t *testing.T) {

	t.Parallel()

	tx := newTestTransaction(t)
	sdkTx := newTestSDKTransaction(tx)

	assert.Equal(t, sdkTx.Encode(), tx.Encode())
	assert.Equal(t, sdk.Identifier(tx.ID()), sdkTx.ID())

	digest, err := crypto.SHA3_256.Hash(tx.Encode())
	require.NoError(t, err)
	assert.Equal(t, digest, tx.ID().Bytes())
}

func TestTransaction_Sign(t *testing.T) {

	t.Parallel()

	proposerKey, proposer, err := AccountKeyFromSeed("proposer", crypto.ECDSA_P256, crypto.SHA3_256)
	require.NoError(t, err)

	authorizerKey, authorizer, err := AccountKeyFromSeed("authorizer", crypto.ECDSA_secp256k1, crypto.SHA2_256)
	require.NoError(t, err)

	payerKey, payer, err := AccountKeyFromSeed("payer", crypto.ECDSA_P256, crypto.SHA2_256)
	require.NoError(t, err)

	tx := newTestTransaction(t)

	require.NoError(t, tx.AddPayloadSignature(testAddressA, 3, proposer))
	require.NoError(t, tx.AddPayloadSignature(testAddressC, 0, authorizer))

	payload, err := tx.PayloadMessage()
	require.NoError(t, err)

	envelope, err := tx.EnvelopeMessage()
	require.NoError(t, err)

	require.NoError(t, tx.AddEnvelopeSignature(testAddressB, 0, payer))

	require.Len(t, tx.PayloadSignatures, 2)
	require.Len(t, tx.EnvelopeSignatures, 1)

	assert.Equal(t, 0, tx.PayloadSignatures[0].SignerIndex)
	assert.Equal(t, uint32(3), tx.PayloadSignatures[0].KeyIndex)
	assert.Equal(t, 2, tx.PayloadSignatures[1].SignerIndex)
	assert.Equal(t, 1, tx.EnvelopeSignatures[0].SignerIndex)

	valid, err := VerifyTransactionSignature(payload, tx.PayloadSignatures[0].Signature, *proposerKey)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = VerifyTransactionSignature(payload, tx.PayloadSignatures[1].Signature, *authorizerKey)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = VerifyTransactionSignature(envelope, tx.EnvelopeSignatures[0].Signature, *payerKey)
	require.NoError(t, err)
	assert.True(t, valid)

	// the payload signature does not cover the envelope
	valid, err = VerifyTransactionSignature(envelope, tx.PayloadSignatures[0].Signature, *proposerKey)
	require.NoError(t, err)
	assert.False(t, valid)

	// signed messages are not valid user messages
	userMessageValid, err := proposer.Verifier().Verify(
		tx.PayloadSignatures[0].Signature,
		payload,
		crypto.UserDomainTag,
	)
	require.NoError(t, err)
	assert.False(t, userMessageValid)
}

func TestTransaction_UnknownSigner(t *testing.T) {

	t.Parallel()

	tx := newTestTransaction(t)

	unknown := cadence.NewAddress([8]byte{0, 0, 0, 0, 0, 0, 0, 9})

	err := tx.AddPayloadSignatureBytes(unknown, 0, []byte{1})
	require.EqualError(t, err, "address 0x0000000000000009 is not a signer of the transaction")
	assert.Empty(t, tx.PayloadSignatures)
}

func TestTransaction_Clone(t *testing.T) {

	t.Parallel()

	tx := newTestTransaction(t)
	require.NoError(t, tx.AddPayloadSignatureBytes(testAddressA, 3, []byte{1, 2}))

	clone := tx.Clone()
	assert.Equal(t, tx, clone)
	assert.Equal(t, tx.ID(), clone.ID())

	clone.Script[0] = 'X'
	clone.Arguments[0][0] = 'X'
	clone.Authorizers[0] = testAddressB
	clone.PayloadSignatures[0].Signature[0] = 0xFF
	clone.AddAuthorizer(testAddressB)

	assert.Equal(t, byte('t'), tx.Script[0])
	assert.Equal(t, byte('{'), tx.Arguments[0][0])
	assert.Equal(t, []cadence.Address{testAddressA, testAddressC}, tx.Authorizers)
	assert.Equal(t, []byte{1, 2}, tx.PayloadSignatures[0].Signature)
	assert.NotEqual(t, tx.ID(), clone.ID())
}

func TestTransaction_Arguments(t *testing.T) {

	t.Parallel()

	tx := newTestTransaction(t)

	require.Len(t, tx.Arguments, 2)
	assert.Equal(t, "{\"value\":\"hello\",\"type\":\"String\"}\n", string(tx.Arguments[0]))
	assert.Equal(t, "{\"value\":\"1234\",\"type\":\"UInt64\"}\n", string(tx.Arguments[1]))
}

func TestHexToID(t *testing.T) {

	t.Parallel()

	id, err := HexToID("0x01")
	require.NoError(t, err)
	assert.Equal(t, byte(1), id[IdentifierLength-1])
	assert.Equal(t,
		"0000000000000000000000000000000000000000000000000000000000000001",
		id.String(),
	)

	_, err = HexToID("zz")
	require.Error(t, err)

	_, err = BytesToID(make([]byte, IdentifierLength+1))
	require.EqualError(t, err, "identifier too large: expected at most 32 bytes, got 33")
}
