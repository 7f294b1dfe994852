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

package cadence

import (
	"fmt"

	"github.com/onflow/cadence-sdk/common"
)

// TypedEvent is an event value decoded into a dedicated Go type.
// AsEvent returns the generic event it was decoded from.
type TypedEvent interface {
	Value
	AsEvent() Event
}

const AccountCreatedEventQualifiedIdentifier = "AccountCreated"

// AccountCreatedEventTypeID is the type ID of the system event
// emitted when a new account is created
var AccountCreatedEventTypeID = common.FlowLocation{}.TypeID(AccountCreatedEventQualifiedIdentifier)

// AccountCreatedEvent is the typed form of `flow.AccountCreated`
type AccountCreatedEvent struct {
	Event
	Address Address
}

var _ TypedEvent = AccountCreatedEvent{}

// NewAccountCreatedEvent converts the generic event.
// The first field must be the address of the new account.
func NewAccountCreatedEvent(event Event) (AccountCreatedEvent, error) {
	if len(event.Fields) < 1 {
		return AccountCreatedEvent{}, fmt.Errorf(
			"invalid %s event: missing address field",
			AccountCreatedEventTypeID,
		)
	}

	address, err := As[Address](event.Fields[0])
	if err != nil {
		return AccountCreatedEvent{}, fmt.Errorf(
			"invalid %s event: %w",
			AccountCreatedEventTypeID,
			err,
		)
	}

	return AccountCreatedEvent{
		Event:   event,
		Address: address,
	}, nil
}

func (e AccountCreatedEvent) AsEvent() Event {
	return e.Event
}
