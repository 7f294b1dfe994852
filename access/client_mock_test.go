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

	"github.com/stretchr/testify/mock"

	"github.com/onflow/cadence-sdk"
	"github.com/onflow/cadence-sdk/flow"
)

type mockClient struct {
	mock.Mock
}

var _ Client = &mockClient{}

func (m *mockClient) GetLatestBlock(ctx context.Context, isSealed bool) (*Block, error) {
	args := m.Called(ctx, isSealed)
	block, _ := args.Get(0).(*Block)
	return block, args.Error(1)
}

func (m *mockClient) GetAccount(ctx context.Context, address cadence.Address) (*Account, error) {
	args := m.Called(ctx, address)
	account, _ := args.Get(0).(*Account)
	return account, args.Error(1)
}

func (m *mockClient) GetAccountAtLatestBlock(ctx context.Context, address cadence.Address) (*Account, error) {
	args := m.Called(ctx, address)
	account, _ := args.Get(0).(*Account)
	return account, args.Error(1)
}

func (m *mockClient) GetAccountAtBlockHeight(ctx context.Context, address cadence.Address, height uint64) (*Account, error) {
	args := m.Called(ctx, address, height)
	account, _ := args.Get(0).(*Account)
	return account, args.Error(1)
}

func (m *mockClient) SendTransaction(ctx context.Context, transaction []byte) (flow.Identifier, error) {
	args := m.Called(ctx, transaction)
	id, _ := args.Get(0).(flow.Identifier)
	return id, args.Error(1)
}

func (m *mockClient) GetTransactionResult(ctx context.Context, id flow.Identifier) (*TransactionResult, error) {
	args := m.Called(ctx, id)
	result, _ := args.Get(0).(*TransactionResult)
	return result, args.Error(1)
}

func (m *mockClient) ExecuteScriptAtLatestBlock(ctx context.Context, code []byte, arguments [][]byte) ([]byte, error) {
	args := m.Called(ctx, code, arguments)
	result, _ := args.Get(0).([]byte)
	return result, args.Error(1)
}

func (m *mockClient) ExecuteScriptAtBlockID(
	ctx context.Context,
	blockID flow.Identifier,
	code []byte,
	arguments [][]byte,
) ([]byte, error) {
	args := m.Called(ctx, blockID, code, arguments)
	result, _ := args.Get(0).([]byte)
	return result, args.Error(1)
}

func (m *mockClient) ExecuteScriptAtBlockHeight(
	ctx context.Context,
	height uint64,
	code []byte,
	arguments [][]byte,
) ([]byte, error) {
	args := m.Called(ctx, height, code, arguments)
	result, _ := args.Get(0).([]byte)
	return result, args.Error(1)
}

func (m *mockClient) GetEventsForHeightRange(
	ctx context.Context,
	eventType string,
	startHeight uint64,
	endHeight uint64,
) ([]BlockEvents, error) {
	args := m.Called(ctx, eventType, startHeight, endHeight)
	events, _ := args.Get(0).([]BlockEvents)
	return events, args.Error(1)
}

func (m *mockClient) GetEventsForBlockIDs(
	ctx context.Context,
	eventType string,
	blockIDs []flow.Identifier,
) ([]BlockEvents, error) {
	args := m.Called(ctx, eventType, blockIDs)
	events, _ := args.Get(0).([]BlockEvents)
	return events, args.Error(1)
}
