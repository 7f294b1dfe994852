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
	"context"
	"encoding/hex"

	"github.com/onflow/cadence-sdk"
	"github.com/onflow/cadence-sdk/crypto"
)

const verifyUserSignatureTemplate = `
import Crypto

access(all) fun main(
    address: Address,
    signatures: [String],
    keyIndices: [Int],
    message: String,
): Bool {
    let keyList = Crypto.KeyList()
    let keys = getAccount(address).keys

    for keyIndex in keyIndices {
        let key = keys.get(keyIndex: keyIndex)
            ?? panic("unknown account key")
        if key.isRevoked {
            return false
        }
        keyList.add(
            key.publicKey,
            hashAlgorithm: key.hashAlgorithm,
            weight: key.weight / 1000.0,
        )
    }

    let signatureSet: [Crypto.KeyListSignature] = []
    var i = 0
    for signature in signatures {
        signatureSet.append(
            Crypto.KeyListSignature(
                keyIndex: i,
                signature: signature.decodeHex()
            )
        )
        i = i + 1
    }

    return keyList.verify(
        signatureSet: signatureSet,
        signedData: message.decodeHex(),
        domainSeparationTag: "FLOW-V0.0-user"
    )
}
`

// ScriptExecutor executes scripts against the latest sealed block
type ScriptExecutor interface {
	ExecuteScript(ctx context.Context, script Script) (cadence.Value, error)
}

// CompositeSignature is a user signature produced by one key of an account
type CompositeSignature struct {
	Address   cadence.Address
	KeyIndex  uint32
	Signature []byte
}

// UserSignatureScript returns the script which verifies
// that the signatures together authorize the message
func UserSignatureScript(message []byte, signatures []CompositeSignature) (Script, error) {
	if len(signatures) == 0 {
		return Script{}, NoSignaturesError{}
	}

	address := signatures[0].Address

	signatureValues := make([]cadence.Value, 0, len(signatures))
	keyIndices := make([]cadence.Value, 0, len(signatures))

	for _, signature := range signatures {
		if signature.Address != address {
			return Script{}, MixedSignatureAddressesError{
				Expected: address,
				Actual:   signature.Address,
			}
		}

		signatureValues = append(
			signatureValues,
			cadence.String(hex.EncodeToString(signature.Signature)),
		)
		keyIndices = append(
			keyIndices,
			cadence.NewInt(int(signature.KeyIndex)),
		)
	}

	return NewScript(
		[]byte(verifyUserSignatureTemplate),
		address,
		cadence.NewArray(signatureValues).
			WithType(cadence.NewVariableSizedArrayType(cadence.StringType)),
		cadence.NewArray(keyIndices).
			WithType(cadence.NewVariableSizedArrayType(cadence.IntType)),
		cadence.String(hex.EncodeToString(message)),
	), nil
}

// VerifyUserSignature reports whether the signatures authorize the message,
// which was signed with the user domain tag.
// All signatures must belong to the same account.
// It reports false if there are no signatures or the script returned no result.
func VerifyUserSignature(
	ctx context.Context,
	executor ScriptExecutor,
	message []byte,
	signatures []CompositeSignature,
) (bool, error) {
	if len(signatures) == 0 {
		return false, nil
	}

	script, err := UserSignatureScript(message, signatures)
	if err != nil {
		return false, err
	}

	result, err := executor.ExecuteScript(ctx, script)
	if err != nil {
		return false, err
	}

	if result == nil {
		return false, nil
	}

	valid, err := cadence.As[cadence.Bool](result)
	if err != nil {
		return false, err
	}

	return bool(valid), nil
}

// VerifyTransactionSignature reports whether the signature of the
// payload or envelope message was produced by the account key
func VerifyTransactionSignature(message []byte, signature []byte, key AccountKey) (bool, error) {
	verifier, err := crypto.NewInMemoryVerifier(key.PublicKey, key.SignAlgo, key.HashAlgo)
	if err != nil {
		return false, err
	}

	return verifier.Verify(signature, message, crypto.TransactionDomainTag)
}
