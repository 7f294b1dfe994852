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

package json

import (
	"sort"
	"sync"

	"github.com/onflow/cadence-sdk"
)

// EventDecoder converts a generic event into a typed event value
type EventDecoder func(event cadence.Event) (cadence.Value, error)

// EventRegistry maps event type IDs to decoders for typed events.
// It is safe for concurrent use.
type EventRegistry struct {
	mu       sync.RWMutex
	decoders map[string]EventDecoder
}

// NewEventRegistry returns a registry with the decoders for the system events
func NewEventRegistry() *EventRegistry {
	registry := &EventRegistry{
		decoders: map[string]EventDecoder{},
	}

	registry.Register(
		cadence.AccountCreatedEventTypeID,
		func(event cadence.Event) (cadence.Value, error) {
			return cadence.NewAccountCreatedEvent(event)
		},
	)

	return registry
}

// Register binds the decoder to the given event type ID,
// replacing any existing binding
func (r *EventRegistry) Register(typeID string, decoder EventDecoder) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.decoders[typeID] = decoder
}

func (r *EventRegistry) Lookup(typeID string) (EventDecoder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	decoder, ok := r.decoders[typeID]
	return decoder, ok
}

// TypeIDs returns the registered event type IDs, sorted
func (r *EventRegistry) TypeIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	typeIDs := make([]string, 0, len(r.decoders))
	for typeID := range r.decoders {
		typeIDs = append(typeIDs, typeID)
	}
	sort.Strings(typeIDs)

	return typeIDs
}

// decode returns the typed event for the given event,
// or the event itself if no decoder is registered for its type
func (r *EventRegistry) decode(event cadence.Event) (cadence.Value, error) {
	if event.EventType == nil {
		return event, nil
	}

	decoder, ok := r.Lookup(event.EventType.ID())
	if !ok {
		return event, nil
	}

	return decoder(event)
}
