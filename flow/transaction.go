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
	"bytes"

	"github.com/onflow/cadence-sdk"
	"github.com/onflow/cadence-sdk/crypto"
	jsoncdc "github.com/onflow/cadence-sdk/encoding/json"
	"github.com/onflow/cadence-sdk/encoding/rlp"
)

const DefaultTransactionGasLimit = 100

// ProposalKey is the account key used to propose a transaction.
// The sequence number of the key is incremented when the transaction executes.
type ProposalKey struct {
	Address        cadence.Address
	KeyIndex       uint32
	SequenceNumber uint64
}

// TransactionSignature is a signature attached to a transaction
type TransactionSignature struct {
	Address     cadence.Address
	SignerIndex int
	KeyIndex    uint32
	Signature   []byte
}

func (s TransactionSignature) item() rlp.ListItem {
	return rlp.ListItem{
		rlp.Uint(uint64(s.SignerIndex)),
		rlp.Uint(uint64(s.KeyIndex)),
		rlp.BytesItem(s.Signature),
	}
}

// Transaction is a mutable transaction builder.
//
// A transaction is complete once its script, reference block ID,
// payer and proposal key are set. Only complete transactions can be signed.
// Fields are considered unset when they are empty or zero.
type Transaction struct {
	Script             []byte
	Arguments          [][]byte
	ReferenceBlockID   Identifier
	GasLimit           uint64
	ProposalKey        ProposalKey
	Payer              cadence.Address
	Authorizers        []cadence.Address
	PayloadSignatures  []TransactionSignature
	EnvelopeSignatures []TransactionSignature
}

// NewTransaction returns an empty transaction with the default gas limit
func NewTransaction() *Transaction {
	return &Transaction{
		GasLimit: DefaultTransactionGasLimit,
	}
}

func (t *Transaction) SetScript(script []byte) *Transaction {
	t.Script = script
	return t
}

// AddArgument encodes the value as JSON-CDC and appends it to the arguments
func (t *Transaction) AddArgument(argument cadence.Value) error {
	encoded, err := jsoncdc.Encode(argument)
	if err != nil {
		return err
	}

	t.AddRawArgument(encoded)

	return nil
}

// AddArguments encodes the values and appends them in order.
// Either all or none of the values are added.
func (t *Transaction) AddArguments(arguments ...cadence.Value) error {
	encoded, err := EncodeArguments(arguments)
	if err != nil {
		return err
	}

	t.Arguments = append(t.Arguments, encoded...)

	return nil
}

// AddRawArgument appends an already encoded argument
func (t *Transaction) AddRawArgument(argument []byte) *Transaction {
	t.Arguments = append(t.Arguments, argument)
	return t
}

func (t *Transaction) SetReferenceBlockID(id Identifier) *Transaction {
	t.ReferenceBlockID = id
	return t
}

func (t *Transaction) SetGasLimit(limit uint64) *Transaction {
	t.GasLimit = limit
	return t
}

func (t *Transaction) SetProposalKey(address cadence.Address, keyIndex uint32, sequenceNumber uint64) *Transaction {
	t.ProposalKey = ProposalKey{
		Address:        address,
		KeyIndex:       keyIndex,
		SequenceNumber: sequenceNumber,
	}
	return t
}

func (t *Transaction) SetPayer(address cadence.Address) *Transaction {
	t.Payer = address
	return t
}

func (t *Transaction) AddAuthorizer(address cadence.Address) *Transaction {
	t.Authorizers = append(t.Authorizers, address)
	return t
}

func (t *Transaction) AddAuthorizers(addresses ...cadence.Address) *Transaction {
	t.Authorizers = append(t.Authorizers, addresses...)
	return t
}

// Clone returns a deep copy of the transaction
func (t *Transaction) Clone() *Transaction {
	clone := *t

	clone.Script = cloneBytes(t.Script)

	if t.Arguments != nil {
		clone.Arguments = make([][]byte, len(t.Arguments))
		for i, argument := range t.Arguments {
			clone.Arguments[i] = cloneBytes(argument)
		}
	}

	if t.Authorizers != nil {
		clone.Authorizers = append([]cadence.Address(nil), t.Authorizers...)
	}

	clone.PayloadSignatures = cloneSignatures(t.PayloadSignatures)
	clone.EnvelopeSignatures = cloneSignatures(t.EnvelopeSignatures)

	return &clone
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}

func cloneSignatures(signatures []TransactionSignature) []TransactionSignature {
	if signatures == nil {
		return nil
	}

	result := make([]TransactionSignature, len(signatures))
	for i, signature := range signatures {
		signature.Signature = cloneBytes(signature.Signature)
		result[i] = signature
	}
	return result
}

// MissingFields returns the names of the unset required fields
func (t *Transaction) MissingFields() []string {
	var missing []string

	if len(t.Script) == 0 {
		missing = append(missing, ScriptField)
	}

	if t.ReferenceBlockID.IsEmpty() {
		missing = append(missing, ReferenceBlockIDField)
	}

	if t.Payer == (cadence.Address{}) {
		missing = append(missing, PayerField)
	}

	if t.ProposalKey.Address == (cadence.Address{}) {
		missing = append(missing, ProposalKeyField)
	}

	return missing
}

func (t *Transaction) checkComplete() error {
	missing := t.MissingFields()
	if len(missing) > 0 {
		return IncompleteTransactionError{
			MissingFields: missing,
		}
	}
	return nil
}

// Signers returns the distinct addresses required to sign the transaction,
// in order of first appearance as proposer, payer and authorizer.
// The position of an address is its signer index.
func (t *Transaction) Signers() []cadence.Address {
	signers := make([]cadence.Address, 0, 2+len(t.Authorizers))
	seen := make(map[cadence.Address]struct{}, 2+len(t.Authorizers))

	add := func(address cadence.Address) {
		if _, ok := seen[address]; ok {
			return
		}
		seen[address] = struct{}{}
		signers = append(signers, address)
	}

	if t.ProposalKey.Address != (cadence.Address{}) {
		add(t.ProposalKey.Address)
	}

	if t.Payer != (cadence.Address{}) {
		add(t.Payer)
	}

	for _, authorizer := range t.Authorizers {
		add(authorizer)
	}

	return signers
}

func (t *Transaction) signerIndex(address cadence.Address) (int, error) {
	for i, signer := range t.Signers() {
		if signer == address {
			return i, nil
		}
	}
	return -1, UnknownSignerError{Address: address}
}

func (t *Transaction) payloadItem() rlp.ListItem {
	// arguments are framed with a trailing newline on the wire,
	// which is not part of the canonical form
	arguments := make(rlp.ListItem, len(t.Arguments))
	for i, argument := range t.Arguments {
		arguments[i] = rlp.BytesItem(bytes.TrimSuffix(argument, []byte{'\n'}))
	}

	authorizers := make(rlp.ListItem, len(t.Authorizers))
	for i, authorizer := range t.Authorizers {
		authorizers[i] = rlp.BytesItem(authorizer.Bytes())
	}

	return rlp.ListItem{
		rlp.BytesItem(t.Script),
		arguments,
		rlp.BytesItem(t.ReferenceBlockID.Bytes()),
		rlp.Uint(t.GasLimit),
		rlp.BytesItem(t.ProposalKey.Address.Bytes()),
		rlp.Uint(uint64(t.ProposalKey.KeyIndex)),
		rlp.Uint(t.ProposalKey.SequenceNumber),
		rlp.BytesItem(t.Payer.Bytes()),
		authorizers,
	}
}

func signaturesItem(signatures []TransactionSignature) rlp.ListItem {
	result := make(rlp.ListItem, len(signatures))
	for i, signature := range signatures {
		result[i] = signature.item()
	}
	return result
}

func (t *Transaction) envelopeItem() rlp.ListItem {
	return rlp.ListItem{
		t.payloadItem(),
		signaturesItem(t.PayloadSignatures),
	}
}

// PayloadMessage returns the message signed by payload signers
func (t *Transaction) PayloadMessage() ([]byte, error) {
	if err := t.checkComplete(); err != nil {
		return nil, err
	}
	return rlp.Encode(t.payloadItem()), nil
}

// EnvelopeMessage returns the message signed by the payer.
// It covers the payload and the payload signatures attached so far.
func (t *Transaction) EnvelopeMessage() ([]byte, error) {
	if err := t.checkComplete(); err != nil {
		return nil, err
	}
	return rlp.Encode(t.envelopeItem()), nil
}

// AddPayloadSignature signs the payload message with the signer
// and attaches the signature for the given account key
func (t *Transaction) AddPayloadSignature(address cadence.Address, keyIndex uint32, signer crypto.Signer) error {
	message, err := t.PayloadMessage()
	if err != nil {
		return err
	}

	signature, err := signer.Sign(message, crypto.TransactionDomainTag)
	if err != nil {
		return err
	}

	return t.AddPayloadSignatureBytes(address, keyIndex, signature)
}

// AddEnvelopeSignature signs the envelope message with the signer
// and attaches the signature for the given account key
func (t *Transaction) AddEnvelopeSignature(address cadence.Address, keyIndex uint32, signer crypto.Signer) error {
	message, err := t.EnvelopeMessage()
	if err != nil {
		return err
	}

	signature, err := signer.Sign(message, crypto.TransactionDomainTag)
	if err != nil {
		return err
	}

	return t.AddEnvelopeSignatureBytes(address, keyIndex, signature)
}

// AddPayloadSignatureBytes attaches a payload signature produced elsewhere
func (t *Transaction) AddPayloadSignatureBytes(address cadence.Address, keyIndex uint32, signature []byte) error {
	transactionSignature, err := t.newSignature(address, keyIndex, signature)
	if err != nil {
		return err
	}

	t.PayloadSignatures = append(t.PayloadSignatures, transactionSignature)

	return nil
}

// AddEnvelopeSignatureBytes attaches an envelope signature produced elsewhere
func (t *Transaction) AddEnvelopeSignatureBytes(address cadence.Address, keyIndex uint32, signature []byte) error {
	transactionSignature, err := t.newSignature(address, keyIndex, signature)
	if err != nil {
		return err
	}

	t.EnvelopeSignatures = append(t.EnvelopeSignatures, transactionSignature)

	return nil
}

func (t *Transaction) newSignature(address cadence.Address, keyIndex uint32, signature []byte) (TransactionSignature, error) {
	if err := t.checkComplete(); err != nil {
		return TransactionSignature{}, err
	}

	signerIndex, err := t.signerIndex(address)
	if err != nil {
		return TransactionSignature{}, err
	}

	return TransactionSignature{
		Address:     address,
		SignerIndex: signerIndex,
		KeyIndex:    keyIndex,
		Signature:   signature,
	}, nil
}

// Encode returns the signed transaction as submitted to the network
func (t *Transaction) Encode() []byte {
	return rlp.Encode(rlp.ListItem{
		t.payloadItem(),
		signaturesItem(t.PayloadSignatures),
		signaturesItem(t.EnvelopeSignatures),
	})
}

// ID returns the SHA3-256 hash of the encoded transaction
func (t *Transaction) ID() Identifier {
	return hashToID(t.Encode())
}

// EncodeArguments encodes each value as JSON-CDC
func EncodeArguments(arguments []cadence.Value) ([][]byte, error) {
	result := make([][]byte, 0, len(arguments))
	for _, argument := range arguments {
		encoded, err := jsoncdc.Encode(argument)
		if err != nil {
			return nil, err
		}
		result = append(result, encoded)
	}
	return result, nil
}
