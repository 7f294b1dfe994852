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
	"fmt"
	"time"

	"github.com/onflow/cadence-sdk/flow"
)

// TransactionTimeoutError is returned when a transaction
// is not sealed before the timeout, or the wait is cancelled
type TransactionTimeoutError struct {
	ID         flow.Identifier
	Timeout    time.Duration
	LastStatus TransactionStatus
	Err        error
}

func (e TransactionTimeoutError) Error() string {
	return fmt.Sprintf(
		"transaction %s not sealed after %s: last status %s",
		e.ID,
		e.Timeout,
		e.LastStatus,
	)
}

func (e TransactionTimeoutError) Unwrap() error {
	return e.Err
}

// TransactionExecutionError is returned when a transaction failed
type TransactionExecutionError struct {
	ID         flow.Identifier
	StatusCode uint32
	Message    string
}

func (e TransactionExecutionError) Error() string {
	return fmt.Sprintf(
		"transaction %s failed with status code %d: %s",
		e.ID,
		e.StatusCode,
		e.Message,
	)
}

func (TransactionExecutionError) IsUserError() {}

// TransactionExpiredError is returned when a transaction expired before it was sealed
type TransactionExpiredError struct {
	ID flow.Identifier
}

func (e TransactionExpiredError) Error() string {
	return fmt.Sprintf("transaction %s expired", e.ID)
}

func (TransactionExpiredError) IsUserError() {}

// UnsupportedBlockSelectorError is returned when the access API
// has no request shape for the selected block
type UnsupportedBlockSelectorError struct {
	Selector BlockSelector
}

func (e UnsupportedBlockSelectorError) Error() string {
	return fmt.Sprintf("unsupported block selector: %s", e.Selector)
}

func (UnsupportedBlockSelectorError) IsUserError() {}

// EventDecodingError is returned when an event payload cannot be decoded
type EventDecodingError struct {
	Type  string
	Index int
	Err   error
}

func (e EventDecodingError) Error() string {
	return fmt.Sprintf("failed to decode event %s at index %d: %s", e.Type, e.Index, e.Err)
}

func (e EventDecodingError) Unwrap() error {
	return e.Err
}
