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
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/onflow/cadence-sdk"
	"github.com/onflow/cadence-sdk/flow"
)

const (
	tracingPrefix = "access."

	tracingGetLatestBlock          = tracingPrefix + "getLatestBlock"
	tracingGetAccount              = tracingPrefix + "getAccount"
	tracingSendTransaction         = tracingPrefix + "sendTransaction"
	tracingGetTransactionResult    = tracingPrefix + "getTransactionResult"
	tracingExecuteScript           = tracingPrefix + "executeScript"
	tracingGetEventsForHeightRange = tracingPrefix + "getEventsForHeightRange"
	tracingGetEventsForBlockIDs    = tracingPrefix + "getEventsForBlockIDs"
	tracingWaitForSeal             = tracingPrefix + "waitForSeal"

	tracingAttributeTransactionID     = "tx.id"
	tracingAttributeStatus            = "status"
	tracingAttributeAccountAddress    = "account.address"
	tracingAttributeBlock             = "block"
	tracingAttributeEventType         = "event.type"
	tracingAttributeCount             = "count"
	tracingAttributePollAttemptsCount = "attempts"
)

// OnRecordTraceFunc is a function that records a trace.
type OnRecordTraceFunc func(
	operationName string,
	duration time.Duration,
	attrs []attribute.KeyValue,
)

type Tracer struct {
	// OnRecordTrace is triggered when a trace is recorded
	OnRecordTrace OnRecordTraceFunc
	// TracingEnabled determines if tracing is enabled.
	// Tracing reports each access API call
	TracingEnabled bool
}

func (tracer Tracer) enabled() bool {
	return tracer.TracingEnabled && tracer.OnRecordTrace != nil
}

func (tracer Tracer) report(operationName string, startTime time.Time, attrs ...attribute.KeyValue) {
	if !tracer.enabled() {
		return
	}
	tracer.OnRecordTrace(operationName, time.Since(startTime), attrs)
}

func transactionIDAttribute(id flow.Identifier) attribute.KeyValue {
	return attribute.String(tracingAttributeTransactionID, id.Hex())
}

func statusAttribute(status TransactionStatus) attribute.KeyValue {
	return attribute.String(tracingAttributeStatus, status.String())
}

func accountAddressAttribute(address cadence.Address) attribute.KeyValue {
	return attribute.String(tracingAttributeAccountAddress, address.HexWithPrefix())
}

func blockAttribute(selector BlockSelector) attribute.KeyValue {
	return attribute.String(tracingAttributeBlock, selector.String())
}

func eventTypeAttribute(eventType string) attribute.KeyValue {
	return attribute.String(tracingAttributeEventType, eventType)
}

func countAttribute(count int) attribute.KeyValue {
	return attribute.Int(tracingAttributeCount, count)
}
