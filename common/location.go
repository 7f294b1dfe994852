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

package common

import (
	"fmt"
	"strings"
	"sync"
)

// Location describes the origin of a composite or event type,
// e.g. an account, a script, or the built-in system location.
type Location interface {
	fmt.Stringer
	// Prefix returns the prefix of the location in type IDs
	Prefix() string
	// ID returns the canonical ID for this location
	ID() string
	// TypeID returns a type ID for the given qualified identifier
	TypeID(qualifiedIdentifier string) string
	// QualifiedIdentifier returns the qualified identifier for the given type ID
	QualifiedIdentifier(typeID string) string
}

// EncodingError is returned for malformed type IDs and locations
type EncodingError struct {
	Message string
}

var _ error = EncodingError{}

func NewEncodingError(format string, args ...any) EncodingError {
	return EncodingError{
		Message: fmt.Sprintf(format, args...),
	}
}

func (e EncodingError) Error() string {
	return e.Message
}

func (EncodingError) IsUserError() {}

// LocationEquals reports if two locations have the same canonical ID.
// Nil locations are only equal to nil locations.
func LocationEquals(a, b Location) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID() == b.ID()
}

// TypeIDDecoder decodes a type ID into its location and qualified identifier
type TypeIDDecoder func(typeID string) (location Location, qualifiedIdentifier string, err error)

// LocationDecoders is a registry of type ID decoders, keyed by location prefix
type LocationDecoders struct {
	mu       sync.RWMutex
	decoders map[string]TypeIDDecoder
}

// NewLocationDecoders returns a registry with the decoders
// for the address, Flow, string, and script locations.
func NewLocationDecoders() *LocationDecoders {
	registry := &LocationDecoders{
		decoders: map[string]TypeIDDecoder{},
	}

	registry.Register(
		AddressLocationPrefix,
		func(typeID string) (Location, string, error) {
			return decodeAddressLocationTypeID(typeID)
		},
	)
	registry.Register(
		FlowLocationPrefix,
		func(typeID string) (Location, string, error) {
			return decodeFlowLocationTypeID(typeID)
		},
	)
	registry.Register(
		StringLocationPrefix,
		func(typeID string) (Location, string, error) {
			return decodeStringLocationTypeID(typeID)
		},
	)
	registry.Register(
		ScriptLocationPrefix,
		func(typeID string) (Location, string, error) {
			return decodeScriptLocationTypeID(typeID)
		},
	)

	return registry
}

// Register adds the decoder for the given prefix, replacing any existing one
func (r *LocationDecoders) Register(prefix string, decoder TypeIDDecoder) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.decoders[prefix] = decoder
}

// DecodeTypeID decodes the given type ID, dispatching on its prefix
func (r *LocationDecoders) DecodeTypeID(typeID string) (Location, string, error) {
	if typeID == "" {
		return nil, "", NewEncodingError("invalid type ID: missing prefix")
	}

	prefix, _, _ := strings.Cut(typeID, ".")

	r.mu.RLock()
	decoder, ok := r.decoders[prefix]
	r.mu.RUnlock()

	if !ok {
		return nil, "", NewEncodingError("invalid type ID %q: cannot decode prefix %q", typeID, prefix)
	}

	return decoder(typeID)
}

var defaultLocationDecoders = NewLocationDecoders()

// DecodeTypeID decodes the given type ID using the built-in location decoders
func DecodeTypeID(typeID string) (Location, string, error) {
	return defaultLocationDecoders.DecodeTypeID(typeID)
}

func newTypeID(prefix, location, qualifiedIdentifier string) string {
	var b strings.Builder
	b.Grow(len(prefix) + len(location) + len(qualifiedIdentifier) + 2)
	b.WriteString(prefix)
	if location != "" {
		b.WriteByte('.')
		b.WriteString(location)
	}
	if qualifiedIdentifier != "" {
		b.WriteByte('.')
		b.WriteString(qualifiedIdentifier)
	}
	return b.String()
}
