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
	"fmt"
	"strings"

	"github.com/onflow/cadence-sdk"
)

// Names of the fields required before a transaction can be signed,
// in the order they are reported
const (
	ScriptField           = "script"
	ReferenceBlockIDField = "reference_block_id"
	PayerField            = "payer"
	ProposalKeyField      = "proposal_key"
)

// IncompleteTransactionError is returned when a transaction
// is signed before all required fields are set
type IncompleteTransactionError struct {
	MissingFields []string
}

func (e IncompleteTransactionError) Error() string {
	return fmt.Sprintf(
		"incomplete transaction: missing %s",
		strings.Join(e.MissingFields, ", "),
	)
}

func (IncompleteTransactionError) IsUserError() {}

// UnknownSignerError is returned when a signature is attached
// for an address that has no role in the transaction
type UnknownSignerError struct {
	Address cadence.Address
}

func (e UnknownSignerError) Error() string {
	return fmt.Sprintf(
		"address %s is not a signer of the transaction",
		e.Address.HexWithPrefix(),
	)
}

func (UnknownSignerError) IsUserError() {}

// MixedSignatureAddressesError is returned when user signatures
// to be verified together belong to different accounts
type MixedSignatureAddressesError struct {
	Expected cadence.Address
	Actual   cadence.Address
}

func (e MixedSignatureAddressesError) Error() string {
	return fmt.Sprintf(
		"all signatures must be from the same address: expected %s, got %s",
		e.Expected.HexWithPrefix(),
		e.Actual.HexWithPrefix(),
	)
}

func (MixedSignatureAddressesError) IsUserError() {}

// NoSignaturesError is returned when a user signature script
// is requested for an empty set of signatures
type NoSignaturesError struct{}

func (NoSignaturesError) Error() string {
	return "at least one signature is required"
}

func (NoSignaturesError) IsUserError() {}
