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

// Package rlp implements the canonical recursive length prefix encoding
// used for Flow transaction payloads and account keys.
package rlp

import (
	"fmt"
)

type ItemType uint8

const (
	Bytes ItemType = iota
	List
)

func (t ItemType) String() string {
	switch t {
	case Bytes:
		return "Bytes"
	case List:
		return "List"
	}
	return fmt.Sprintf("ItemType(%d)", uint8(t))
}

// Item is either a byte string (BytesItem) or a list of items (ListItem)
type Item interface {
	Type() ItemType
}

var _ Item = BytesItem{}
var _ Item = ListItem{}

type BytesItem []byte

func (BytesItem) Type() ItemType {
	return Bytes
}

type ListItem []Item

func (ListItem) Type() ItemType {
	return List
}

func (l ListItem) Get(index int) Item {
	return l[index]
}

// Prefix bytes. A byte string or list with a payload of at most
// maxShortLength bytes has its length added to the short base,
// longer payloads have the size of their big-endian length added to the long base.
const (
	singleByteMax   = 0x7f
	shortStringBase = 0x80
	longStringBase  = 0xb7
	shortListBase   = 0xc0
	longListBase    = 0xf7
	maxShortLength  = 55
)
