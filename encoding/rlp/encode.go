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
)

// Encode returns the canonical encoding of the item
func Encode(item Item) []byte {
	return appendItem(nil, item)
}

// EncodeBytes returns the encoding of a single byte string
func EncodeBytes(b []byte) []byte {
	return appendItem(nil, BytesItem(b))
}

// EncodeUint64 returns the encoding of the integer,
// as a big-endian byte string without leading zeros
func EncodeUint64(i uint64) []byte {
	return EncodeBytes(UintBytes(i))
}

// UintBytes returns the big-endian bytes of the integer without leading zeros.
// Zero is the empty byte string.
func UintBytes(i uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], i)

	start := 0
	for start < len(buf) && buf[start] == 0 {
		start++
	}

	return buf[start:]
}

// Uint returns the byte string item for the integer
func Uint(i uint64) BytesItem {
	return UintBytes(i)
}

func appendItem(buf []byte, item Item) []byte {
	switch item := item.(type) {
	case BytesItem:
		if len(item) == 1 && item[0] <= singleByteMax {
			return append(buf, item[0])
		}
		buf = appendHeader(buf, shortStringBase, longStringBase, len(item))
		return append(buf, item...)

	case ListItem:
		var content []byte
		for _, element := range item {
			content = appendItem(content, element)
		}
		buf = appendHeader(buf, shortListBase, longListBase, len(content))
		return append(buf, content...)

	case nil:
		// a missing item is the empty byte string
		return append(buf, shortStringBase)

	default:
		panic("rlp: unsupported item type")
	}
}

func appendHeader(buf []byte, shortBase, longBase byte, length int) []byte {
	if length <= maxShortLength {
		return append(buf, shortBase+byte(length))
	}

	lengthBytes := UintBytes(uint64(length))
	buf = append(buf, longBase+byte(len(lengthBytes)))
	return append(buf, lengthBytes...)
}
