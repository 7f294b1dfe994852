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
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	gethrlp "github.com/ethereum/go-ethereum/rlp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {

	t.Parallel()

	lorem := "Lorem ipsum dolor sit amet, consectetur adipisicing elit"

	type testCase struct {
		name     string
		item     Item
		expected string
	}

	for _, test := range []testCase{
		{"empty string", BytesItem{}, "80"},
		{"nil item", nil, "80"},
		{"single byte", BytesItem{0x0f}, "0f"},
		{"single byte above range", BytesItem{0x80}, "8180"},
		{"short string", BytesItem("dog"), "83646f67"},
		{"long string", BytesItem(lorem), "b838" + hex.EncodeToString([]byte(lorem))},
		{"empty list", ListItem{}, "c0"},
		{"list of strings", ListItem{BytesItem("cat"), BytesItem("dog")}, "c88363617483646f67"},
		{
			"set theoretical representation of three",
			ListItem{
				ListItem{},
				ListItem{ListItem{}},
				ListItem{ListItem{}, ListItem{ListItem{}}},
			},
			"c7c0c1c0c3c0c1c0",
		},
		{"zero", Uint(0), "80"},
		{"fifteen", Uint(15), "0f"},
		{"1024", Uint(1024), "820400"},
	} {
		test := test

		t.Run(test.name, func(t *testing.T) {

			t.Parallel()

			assert.Equal(t, test.expected, hex.EncodeToString(Encode(test.item)))
		})
	}
}

func TestUintBytes(t *testing.T) {

	t.Parallel()

	assert.Equal(t, []byte{}, UintBytes(0))
	assert.Equal(t, []byte{0x1}, UintBytes(1))
	assert.Equal(t, []byte{0x1, 0x0}, UintBytes(256))
	assert.Equal(t,
		[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		UintBytes(^uint64(0)),
	)

	assert.Equal(t, []byte{0x80}, EncodeUint64(0))
	assert.Equal(t, []byte{0x82, 0x03, 0xe8}, EncodeUint64(1000))
}

func TestEncode_GoEthereum(t *testing.T) {

	t.Parallel()

	long := bytes.Repeat([]byte{0xab}, 1024)

	item := ListItem{
		BytesItem("transaction"),
		ListItem{
			BytesItem(long),
			ListItem{},
		},
		Uint(0),
		Uint(100),
		Uint(1 << 40),
	}

	expected, err := gethrlp.EncodeToBytes([]any{
		[]byte("transaction"),
		[]any{
			long,
			[]any{},
		},
		uint64(0),
		uint64(100),
		uint64(1 << 40),
	})
	require.NoError(t, err)

	assert.Equal(t, expected, Encode(item))
}

func TestEncode_Property(t *testing.T) {

	t.Parallel()

	properties := gopter.NewProperties(nil)

	properties.Property(
		"encoding matches go-ethereum",
		prop.ForAll(
			func(elements [][]byte) bool {
				list := make(ListItem, 0, len(elements))
				for _, element := range elements {
					list = append(list, BytesItem(element))
				}

				expected, err := gethrlp.EncodeToBytes(elements)
				if err != nil {
					return false
				}

				return bytes.Equal(expected, Encode(list))
			},
			gen.SliceOf(gen.SliceOf(gen.UInt8())),
		),
	)

	properties.Property(
		"decoding the encoding yields the same encoding",
		prop.ForAll(
			func(elements [][]byte, nested []byte) bool {
				list := ListItem{ListItem{BytesItem(nested)}}
				for _, element := range elements {
					list = append(list, BytesItem(element))
				}

				encoded := Encode(list)

				decoded, err := Decode(encoded)
				if err != nil {
					return false
				}

				return bytes.Equal(encoded, Encode(decoded))
			},
			gen.SliceOf(gen.SliceOf(gen.UInt8())),
			gen.SliceOf(gen.UInt8()),
		),
	)

	properties.Property(
		"integers match go-ethereum",
		prop.ForAll(
			func(i uint64) bool {
				expected, err := gethrlp.EncodeToBytes(i)
				if err != nil {
					return false
				}
				return bytes.Equal(expected, EncodeUint64(i))
			},
			gen.UInt64(),
		),
	)

	properties.TestingRun(t)
}

func TestDecode(t *testing.T) {

	t.Parallel()

	t.Run("short string", func(t *testing.T) {

		t.Parallel()

		item, err := Decode([]byte{0x83, 'd', 'o', 'g'})
		require.NoError(t, err)
		assert.Equal(t, BytesItem("dog"), item)
	})

	t.Run("single byte", func(t *testing.T) {

		t.Parallel()

		item, err := Decode([]byte{0x0f})
		require.NoError(t, err)
		assert.Equal(t, BytesItem{0x0f}, item)
	})

	t.Run("short list with multiple items", func(t *testing.T) {

		t.Parallel()

		item, err := Decode([]byte{0xc8, 0x83, 'c', 'a', 't', 0x83, 'd', 'o', 'g'})
		require.NoError(t, err)
		assert.Equal(t, ListItem{BytesItem("cat"), BytesItem("dog")}, item)
	})

	t.Run("short list with nested lists", func(t *testing.T) {

		t.Parallel()

		encoded, err := hex.DecodeString("c7c0c1c0c3c0c1c0")
		require.NoError(t, err)

		item, err := Decode(encoded)
		require.NoError(t, err)

		assert.Equal(t,
			ListItem{
				ListItem{},
				ListItem{ListItem{}},
				ListItem{ListItem{}, ListItem{ListItem{}}},
			},
			item,
		)
	})

	t.Run("long list with multiple items", func(t *testing.T) {

		t.Parallel()

		first := BytesItem(strings.Repeat("a", 40))
		second := BytesItem(strings.Repeat("b", 40))

		encoded := Encode(ListItem{first, second, ListItem{}})
		assert.Equal(t, byte(0xf8), encoded[0])

		item, err := Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, ListItem{first, second, ListItem{}}, item)
	})

	t.Run("long string", func(t *testing.T) {

		t.Parallel()

		long := bytes.Repeat([]byte{0x1}, 1024)

		item, err := Decode(Encode(BytesItem(long)))
		require.NoError(t, err)
		assert.Equal(t, BytesItem(long), item)
	})
}

func TestDecode_Invalid(t *testing.T) {

	t.Parallel()

	type testCase struct {
		name     string
		input    string
		expected string
	}

	for _, test := range []testCase{
		{"empty", "", "rlp: empty input"},
		{"truncated string", "8364", "rlp: value size exceeds available input length"},
		{"trailing data", "0f0f", "rlp: input contains more than one value"},
		{"single byte encoded as string", "8105", "rlp: non-canonical size information"},
		{"short string encoded as long string", "b803646f67", "rlp: non-canonical size information"},
		{"leading zero in length", "b90038", "rlp: non-canonical size information"},
		{"truncated length", "b9", "rlp: value size exceeds available input length"},
		{"short list encoded as long list", "f80180", "rlp: non-canonical size information"},
		{"list item exceeds list", "c1820102", "list element 0: rlp: value size exceeds available input length"},
		{"list shorter than reported", "c3", "rlp: value size exceeds available input length"},
		{"nested list item", "c3c28205", "list element 0: list element 0: rlp: value size exceeds available input length"},
	} {
		test := test

		t.Run(test.name, func(t *testing.T) {

			t.Parallel()

			input, err := hex.DecodeString(test.input)
			require.NoError(t, err)

			_, err = Decode(input)
			require.EqualError(t, err, test.expected)
		})
	}
}
