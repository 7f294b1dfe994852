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
	"bytes"
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/onflow/cadence-sdk"
	jsoncdc "github.com/onflow/cadence-sdk/encoding/json"
	sdkerrors "github.com/onflow/cadence-sdk/errors"
	"github.com/onflow/cadence-sdk/flow"
)

const DefaultPollInterval = time.Second

// Gateway wraps a Client with JSON-CDC decoding of scripts results and events,
// and waits for transactions to be sealed.
// Failed calls are not retried.
type Gateway struct {
	client        Client
	logger        zerolog.Logger
	tracer        Tracer
	pollInterval  time.Duration
	eventRegistry *jsoncdc.EventRegistry
}

var _ flow.ScriptExecutor = &Gateway{}

type Option func(*Gateway)

func WithLogger(logger zerolog.Logger) Option {
	return func(gateway *Gateway) {
		gateway.logger = logger
	}
}

func WithTracer(tracer Tracer) Option {
	return func(gateway *Gateway) {
		gateway.tracer = tracer
	}
}

// WithPollInterval sets the interval at which transaction results are polled
func WithPollInterval(interval time.Duration) Option {
	return func(gateway *Gateway) {
		gateway.pollInterval = interval
	}
}

// WithEventRegistry sets the registry used to decode typed events
func WithEventRegistry(registry *jsoncdc.EventRegistry) Option {
	return func(gateway *Gateway) {
		gateway.eventRegistry = registry
	}
}

func NewGateway(client Client, options ...Option) *Gateway {
	gateway := &Gateway{
		client:        client,
		logger:        zerolog.Nop(),
		pollInterval:  DefaultPollInterval,
		eventRegistry: jsoncdc.NewEventRegistry(),
	}

	for _, option := range options {
		option(gateway)
	}

	return gateway
}

func (g *Gateway) Client() Client {
	return g.client
}

func (g *Gateway) GetLatestBlock(ctx context.Context) (*Block, error) {
	startTime := time.Now()
	defer g.tracer.report(tracingGetLatestBlock, startTime)

	block, err := g.client.GetLatestBlock(ctx, true)
	if err != nil {
		return nil, sdkerrors.NewExternalError(err)
	}

	return block, nil
}

// GetAccount returns the account at the selected block.
// Accounts cannot be selected by block ID.
func (g *Gateway) GetAccount(ctx context.Context, address cadence.Address, selector BlockSelector) (*Account, error) {
	startTime := time.Now()
	defer g.tracer.report(
		tracingGetAccount,
		startTime,
		accountAddressAttribute(address),
		blockAttribute(selector),
	)

	var account *Account
	var err error

	switch selector.kind {
	case blockHeightSelector:
		account, err = g.client.GetAccountAtBlockHeight(ctx, address, selector.height)

	case blockIDSelector:
		return nil, UnsupportedBlockSelectorError{Selector: selector}

	default:
		account, err = g.client.GetAccountAtLatestBlock(ctx, address)
	}
	if err != nil {
		return nil, sdkerrors.NewExternalError(err)
	}

	return account, nil
}

// ExecuteScript executes the script against the latest sealed block.
// The result is nil if the script returned no value.
func (g *Gateway) ExecuteScript(ctx context.Context, script flow.Script) (cadence.Value, error) {
	return g.ExecuteScriptAt(ctx, script, LatestBlock())
}

// ExecuteScriptAt executes the script against the selected block.
// The result is nil if the script returned no value.
func (g *Gateway) ExecuteScriptAt(ctx context.Context, script flow.Script, selector BlockSelector) (cadence.Value, error) {
	startTime := time.Now()
	defer g.tracer.report(tracingExecuteScript, startTime, blockAttribute(selector))

	arguments, err := script.EncodedArguments()
	if err != nil {
		return nil, err
	}

	var result []byte

	switch selector.kind {
	case blockIDSelector:
		result, err = g.client.ExecuteScriptAtBlockID(ctx, selector.id, script.Code, arguments)
	case blockHeightSelector:
		result, err = g.client.ExecuteScriptAtBlockHeight(ctx, selector.height, script.Code, arguments)
	default:
		result, err = g.client.ExecuteScriptAtLatestBlock(ctx, script.Code, arguments)
	}
	if err != nil {
		return nil, sdkerrors.NewExternalError(err)
	}

	if len(bytes.TrimSpace(result)) == 0 {
		return nil, nil
	}

	return jsoncdc.Decode(result, jsoncdc.WithEventRegistry(g.eventRegistry))
}

// SendTransaction submits the signed transaction and returns its ID
func (g *Gateway) SendTransaction(ctx context.Context, tx *flow.Transaction) (flow.Identifier, error) {
	if missing := tx.MissingFields(); len(missing) > 0 {
		return flow.EmptyID, flow.IncompleteTransactionError{MissingFields: missing}
	}

	expectedID := tx.ID()

	startTime := time.Now()
	defer g.tracer.report(
		tracingSendTransaction,
		startTime,
		transactionIDAttribute(expectedID),
	)

	id, err := g.client.SendTransaction(ctx, tx.Encode())
	if err != nil {
		g.logger.Error().
			Err(err).
			Str("tx_id", expectedID.Hex()).
			Msg("failed to send transaction")
		return flow.EmptyID, sdkerrors.NewExternalError(err)
	}

	if id != expectedID {
		g.logger.Warn().
			Str("tx_id", id.Hex()).
			Str("expected_tx_id", expectedID.Hex()).
			Msg("transaction ID returned by access node differs")
	}

	g.logger.Info().
		Str("tx_id", id.Hex()).
		Msg("sent transaction")

	return id, nil
}

func (g *Gateway) GetTransactionResult(ctx context.Context, id flow.Identifier) (*TransactionResult, error) {
	startTime := time.Now()

	result, err := g.client.GetTransactionResult(ctx, id)

	if g.tracer.enabled() {
		attrs := []attribute.KeyValue{
			transactionIDAttribute(id),
		}
		if result != nil {
			attrs = append(attrs, statusAttribute(result.Status))
		}
		g.tracer.report(tracingGetTransactionResult, startTime, attrs...)
	}

	if err != nil {
		return nil, sdkerrors.NewExternalError(err)
	}

	return result, nil
}

// SendAndWait submits the signed transaction and waits until it is sealed
func (g *Gateway) SendAndWait(ctx context.Context, tx *flow.Transaction, timeout time.Duration) (*TransactionResult, error) {
	id, err := g.SendTransaction(ctx, tx)
	if err != nil {
		return nil, err
	}

	return g.WaitForSeal(ctx, id, timeout)
}

// WaitForSeal polls the result of the transaction until it is sealed.
// A non-positive timeout waits until the context is done.
//
// It returns a TransactionExecutionError if the transaction failed,
// a TransactionExpiredError if it expired,
// and a TransactionTimeoutError if it was not sealed in time.
func (g *Gateway) WaitForSeal(ctx context.Context, id flow.Identifier, timeout time.Duration) (*TransactionResult, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	logger := g.logger.With().
		Str("tx_id", id.Hex()).
		Logger()

	startTime := time.Now()
	lastStatus := TransactionStatusUnknown
	attempt := 0

	defer func() {
		g.tracer.report(
			tracingWaitForSeal,
			startTime,
			transactionIDAttribute(id),
			statusAttribute(lastStatus),
			attribute.Int(tracingAttributePollAttemptsCount, attempt),
		)
	}()

	timeoutError := func(err error) error {
		logger.Error().
			Stringer("status", lastStatus).
			Int("attempt", attempt).
			Msg("transaction not sealed in time")

		return TransactionTimeoutError{
			ID:         id,
			Timeout:    timeout,
			LastStatus: lastStatus,
			Err:        err,
		}
	}

	ticker := time.NewTicker(g.pollInterval)
	defer ticker.Stop()

	for {
		attempt++

		result, err := g.GetTransactionResult(ctx, id)
		if err != nil {
			if ctx.Err() != nil {
				return nil, timeoutError(ctx.Err())
			}
			return nil, err
		}

		lastStatus = result.Status

		logger.Debug().
			Stringer("status", result.Status).
			Int("attempt", attempt).
			Msg("polled transaction result")

		if result.ErrorMessage != "" {
			logger.Error().
				Stringer("status", result.Status).
				Uint32("status_code", result.StatusCode).
				Str("error", result.ErrorMessage).
				Msg("transaction failed")

			return result, TransactionExecutionError{
				ID:         id,
				StatusCode: result.StatusCode,
				Message:    result.ErrorMessage,
			}
		}

		switch result.Status {
		case TransactionStatusSealed:
			logger.Info().
				Int("attempt", attempt).
				Uint64("block_height", result.BlockHeight).
				Msg("transaction sealed")
			return result, nil

		case TransactionStatusExpired:
			logger.Error().Msg("transaction expired")
			return result, TransactionExpiredError{ID: id}
		}

		select {
		case <-ctx.Done():
			return nil, timeoutError(ctx.Err())
		case <-ticker.C:
		}
	}
}

// DecodeEvents decodes the payloads of the events.
// Events with a registered type are decoded into their typed form.
func (g *Gateway) DecodeEvents(events []Event) ([]cadence.Value, error) {
	values := make([]cadence.Value, 0, len(events))

	for _, event := range events {
		value, err := jsoncdc.Decode(
			event.Payload,
			jsoncdc.WithEventRegistry(g.eventRegistry),
		)
		if err != nil {
			return nil, EventDecodingError{
				Type:  event.Type,
				Index: event.EventIndex,
				Err:   err,
			}
		}

		values = append(values, value)
	}

	return values, nil
}

func (g *Gateway) GetEventsForHeightRange(
	ctx context.Context,
	eventType string,
	startHeight uint64,
	endHeight uint64,
) ([]BlockEvents, error) {
	startTime := time.Now()

	blockEvents, err := g.client.GetEventsForHeightRange(ctx, eventType, startHeight, endHeight)

	g.tracer.report(
		tracingGetEventsForHeightRange,
		startTime,
		eventTypeAttribute(eventType),
		countAttribute(len(blockEvents)),
	)

	if err != nil {
		return nil, sdkerrors.NewExternalError(err)
	}

	return blockEvents, nil
}

func (g *Gateway) GetEventsForBlockIDs(
	ctx context.Context,
	eventType string,
	blockIDs []flow.Identifier,
) ([]BlockEvents, error) {
	startTime := time.Now()

	blockEvents, err := g.client.GetEventsForBlockIDs(ctx, eventType, blockIDs)

	g.tracer.report(
		tracingGetEventsForBlockIDs,
		startTime,
		eventTypeAttribute(eventType),
		countAttribute(len(blockEvents)),
	)

	if err != nil {
		return nil, sdkerrors.NewExternalError(err)
	}

	return blockEvents, nil
}

// CreatedAccounts returns the addresses of the accounts
// created by the transaction, in order of creation.
// A nil result created no accounts.
func (g *Gateway) CreatedAccounts(result *TransactionResult) ([]cadence.Address, error) {
	if result == nil {
		return nil, nil
	}

	var accountCreatedEvents []Event
	for _, event := range result.Events {
		if event.Type == cadence.AccountCreatedEventTypeID {
			accountCreatedEvents = append(accountCreatedEvents, event)
		}
	}

	values, err := g.DecodeEvents(accountCreatedEvents)
	if err != nil {
		return nil, err
	}

	addresses := make([]cadence.Address, 0, len(values))
	for _, value := range values {
		event, err := cadence.As[cadence.AccountCreatedEvent](value)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, event.Address)
	}

	return addresses, nil
}

// VerifyUserSignature reports whether the signatures authorize the message.
// The verification is performed by a script against the latest sealed block.
func (g *Gateway) VerifyUserSignature(
	ctx context.Context,
	message []byte,
	signatures []flow.CompositeSignature,
) (bool, error) {
	return flow.VerifyUserSignature(ctx, g, message, signatures)
}
