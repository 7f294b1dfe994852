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

package crypto

import (
	"fmt"
)

const DomainTagLength = 32

// DomainTag is prepended to a message before it is hashed and signed,
// so a signature for one kind of message cannot be used for another.
// Tags are ASCII strings right-padded with zero bytes.
type DomainTag [DomainTagLength]byte

var (
	TransactionDomainTag = MustNewDomainTag("FLOW-V0.0-transaction")
	UserDomainTag        = MustNewDomainTag("FLOW-V0.0-user")
)

// NewDomainTag returns the tag for the given string
func NewDomainTag(tag string) (DomainTag, error) {
	var result DomainTag

	if len(tag) > DomainTagLength {
		return result, DomainTagTooLongError{Tag: tag}
	}

	copy(result[:], tag)

	return result, nil
}

func MustNewDomainTag(tag string) DomainTag {
	result, err := NewDomainTag(tag)
	if err != nil {
		panic(err)
	}
	return result
}

func (t DomainTag) Bytes() []byte {
	return t[:]
}

// Prefix returns the tag followed by the message
func (t DomainTag) Prefix(message []byte) []byte {
	result := make([]byte, 0, DomainTagLength+len(message))
	result = append(result, t[:]...)
	return append(result, message...)
}

// DomainTagTooLongError is returned for tags longer than DomainTagLength bytes
type DomainTagTooLongError struct {
	Tag string
}

func (e DomainTagTooLongError) Error() string {
	return fmt.Sprintf(
		"domain tag %q is too long: expected at most %d bytes, got %d",
		e.Tag,
		DomainTagLength,
		len(e.Tag),
	)
}

func (DomainTagTooLongError) IsUserError() {}
