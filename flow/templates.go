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
	"sort"

	"github.com/onflow/cadence-sdk"
)

const createAccountTemplate = `
transaction(publicKeys: [String], contracts: {String: String}) {
    prepare(signer: AuthAccount) {
        let account = AuthAccount(payer: signer)

        for key in publicKeys {
            account.addPublicKey(key.decodeHex())
        }

        for contract in contracts.keys {
            account.contracts.add(name: contract, code: contracts[contract]!.decodeHex())
        }
    }
}
`

// CreateAccount returns a transaction which creates an account with the given keys
// and deploys the given contracts (name to source code) to it.
// The payer pays for and authorizes the account creation.
func CreateAccount(
	keys []*AccountKey,
	contracts map[string]string,
	payer cadence.Address,
) (*Transaction, error) {

	publicKeys := make([]cadence.Value, 0, len(keys))
	for _, key := range keys {
		if err := key.Validate(); err != nil {
			return nil, err
		}
		publicKeys = append(publicKeys, cadence.String(key.Hex()))
	}

	names := make([]string, 0, len(contracts))
	for name := range contracts {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]cadence.KeyValuePair, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, cadence.KeyValuePair{
			Key:   cadence.String(name),
			Value: cadence.String(hex.EncodeToString([]byte(contracts[name]))),
		})
	}

	tx := NewTransaction().
		SetScript([]byte(createAccountTemplate)).
		SetPayer(payer).
		AddAuthorizer(payer)

	err := tx.AddArguments(
		cadence.NewArray(publicKeys).
			WithType(cadence.NewVariableSizedArrayType(cadence.StringType)),
		cadence.NewDictionary(pairs).
			WithType(cadence.NewDictionaryType(cadence.StringType, cadence.StringType)),
	)
	if err != nil {
		return nil, err
	}

	return tx, nil
}
