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

package access

import (
	"context"
	"fmt"
	"time"

	"github.com/onflow/cadence-sdk"
	"github.com/onflow/cadence-sdk/flow"
)

// Client is the access API of a Flow network.
// Implementations provide the transport.
type Client interface {
	GetLatestBlock(ctx context.Context, isSealed bool) (*Block, error)

	GetAccount(ctx context.Context, address cadence.Address) (*Account, error)
	GetAccountAtLatestBlock(ctx context.Context, address cadence.Address) (*Account, error)
	GetAccountAtBlockHeight(ctx context.Context, address cadence.Address, height uint64) (*Account, error)

	// SendTransaction submits the encoded signed transaction and returns its ID
	SendTransaction(ctx context.Context, transaction []byte) (flow.Identifier, error)
	GetTransactionResult(ctx context.Context, id flow.Identifier) (*TransactionResult, error)

	// ExecuteScriptAtLatestBlock returns the JSON-CDC encoded result, if any
	ExecuteScriptAtLatestBlock(ctx context.Context, code []byte, arguments [][]byte) ([]byte, error)
	ExecuteScriptAtBlockID(ctx context.Context, blockID flow.Identifier, code []byte, arguments [][]byte) ([]byte, error)
	ExecuteScriptAtBlockHeight(ctx context.Context, height uint64, code []byte, arguments [][]byte) ([]byte, error)

	GetEventsForHeightRange(ctx context.Context, eventType string, startHeight uint64, endHeight uint64) ([]BlockEvents, error)
	GetEventsForBlockIDs(ctx context.Context, eventType string, blockIDs []flow.Identifier) ([]BlockEvents, error)
}

type Block struct {
	ID        flow.Identifier
	ParentID  flow.Identifier
	Height    uint64
	Timestamp time.Time
}

type Account struct {
	Address   cadence.Address
	Balance   uint64
	Keys      []flow.AccountKey
	Contracts map[string][]byte
}

// TransactionStatus is the progress of a transaction through the network
type TransactionStatus uint8

const (
	TransactionStatusUnknown TransactionStatus = iota
	TransactionStatusPending
	TransactionStatusFinalized
	TransactionStatusExecuted
	TransactionStatusSealed
	TransactionStatusExpired
)

func (s TransactionStatus) String() string {
	switch s {
	case TransactionStatusUnknown:
		return "UNKNOWN"
	case TransactionStatusPending:
		return "PENDING"
	case TransactionStatusFinalized:
		return "FINALIZED"
	case TransactionStatusExecuted:
		return "EXECUTED"
	case TransactionStatusSealed:
		return "SEALED"
	case TransactionStatusExpired:
		return "EXPIRED"
	}
	return fmt.Sprintf("TransactionStatus(%d)", uint8(s))
}

// Event is an event emitted by a transaction, with its JSON-CDC encoded payload
type Event struct {
	Type             string
	TransactionID    flow.Identifier
	TransactionIndex int
	EventIndex       int
	Payload          []byte
}

type TransactionResult struct {
	Status       TransactionStatus
	StatusCode   uint32
	ErrorMessage string
	Events       []Event
	BlockID      flow.Identifier
	BlockHeight  uint64
}

// BlockEvents are the events of one type emitted in a block
type BlockEvents struct {
	BlockID        flow.Identifier
	Height         uint64
	BlockTimestamp time.Time
	Events         []Event
}
