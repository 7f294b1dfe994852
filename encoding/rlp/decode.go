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

package rlp

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Decoding limits. These are not limits of the encoding itself.
const (
	MaxStringSize     = 1 << 24
	MaxListItemCounts = 1 << 16
	MaxDepthAllowed   = 1 << 10
)

var (
	ErrEmptyInput       = errors.New("rlp: empty input")
	ErrValueTooLarge    = errors.New("rlp: value size exceeds available input length")
	ErrMoreThanOneValue = errors.New("rlp: input contains more than one value")
	ErrCanonSize        = errors.New("rlp: non-canonical size information")
	ErrStringTooLarge   = errors.New("rlp: byte string too large")
	ErrTooManyElements  = errors.New("rlp: too many list elements")
	ErrMaxDepth         = errors.New("rlp: maximum nesting depth exceeded")
)

// Decode decodes a single canonically encoded item.
// The input must not contain any data after the item.
func Decode(data []byte) (Item, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	item, rest, err := decodeItem(data, 0)
	if err != nil {
		return nil, err
	}

	if len(rest) > 0 {
		return nil, ErrMoreThanOneValue
	}

	return item, nil
}

func decodeItem(data []byte, depth int) (Item, []byte, error) {
	itemType, payload, rest, err := readHeader(data)
	if err != nil {
		return nil, nil, err
	}

	if itemType == Bytes {
		if len(payload) >= MaxStringSize {
			return nil, nil, ErrStringTooLarge
		}
		return BytesItem(payload), rest, nil
	}

	if depth >= MaxDepthAllowed {
		return nil, nil, ErrMaxDepth
	}

	list := ListItem{}
	for len(payload) > 0 {
		if len(list) >= MaxListItemCounts {
			return nil, nil, ErrTooManyElements
		}

		var element Item
		element, payload, err = decodeItem(payload, depth+1)
		if err != nil {
			return nil, nil, fmt.Errorf("list element %d: %w", len(list), err)
		}

		list = append(list, element)
	}

	return list, rest, nil
}

// readHeader reads the prefix of the item at the start of data,
// and splits off its payload from the remaining input.
func readHeader(data []byte) (itemType ItemType, payload []byte, rest []byte, err error) {
	if len(data) == 0 {
		return 0, nil, nil, ErrValueTooLarge
	}

	prefix := data[0]
	data = data[1:]

	switch {
	case prefix <= singleByteMax:
		return Bytes, []byte{prefix}, data, nil

	case prefix <= longStringBase:
		size := uint64(prefix - shortStringBase)
		payload, rest, err = split(data, size)
		if err != nil {
			return 0, nil, nil, err
		}
		// a single byte in the single byte range must be encoded as itself
		if size == 1 && payload[0] <= singleByteMax {
			return 0, nil, nil, ErrCanonSize
		}
		return Bytes, payload, rest, nil

	case prefix < shortListBase:
		payload, rest, err = readLong(data, int(prefix-longStringBase))
		return Bytes, payload, rest, err

	case prefix <= longListBase:
		payload, rest, err = split(data, uint64(prefix-shortListBase))
		return List, payload, rest, err

	default:
		payload, rest, err = readLong(data, int(prefix-longListBase))
		return List, payload, rest, err
	}
}

// readLong reads a payload with a big-endian length of lengthSize bytes
func readLong(data []byte, lengthSize int) (payload []byte, rest []byte, err error) {
	if len(data) < lengthSize {
		return nil, nil, ErrValueTooLarge
	}
	if data[0] == 0 {
		return nil, nil, ErrCanonSize
	}

	var buf [8]byte
	copy(buf[8-lengthSize:], data[:lengthSize])
	size := binary.BigEndian.Uint64(buf[:])

	if size <= maxShortLength {
		return nil, nil, ErrCanonSize
	}

	return split(data[lengthSize:], size)
}

func split(data []byte, size uint64) ([]byte, []byte, error) {
	if uint64(len(data)) < size {
		return nil, nil, ErrValueTooLarge
	}
	return data[:size], data[size:], nil
}
