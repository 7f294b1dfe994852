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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressLocation_MarshalJSON(t *testing.T) {

	t.Parallel()

	loc := AddressLocation{
		Address: MustBytesToAddress([]byte{1}),
		Name:    "A",
	}

	actual, err := json.Marshal(loc)
	require.NoError(t, err)

	assert.JSONEq(t,
		`
        {
            "Type": "AddressLocation",
            "Address": "0x0000000000000001",
            "Name": "A"
        }
        `,
		string(actual),
	)
}

func TestAddressLocation(t *testing.T) {

	t.Parallel()

	location := AddressLocation{
		Address: MustBytesToAddress([]byte{1}),
		Name:    "Foo",
	}

	assert.Equal(t, "A.0000000000000001.Foo", location.ID())
	assert.Equal(t, "A.0000000000000001.Bar.Baz", location.TypeID("Bar.Baz"))
	assert.Equal(t, "Bar.Baz", location.QualifiedIdentifier("A.0000000000000001.Bar.Baz"))
	assert.Equal(t, "0x0000000000000001.Foo", location.String())

	assert.Equal(t,
		"0x0000000000000001",
		AddressLocation{Address: MustBytesToAddress([]byte{1})}.String(),
	)
}

func TestDecodeAddressLocationTypeID(t *testing.T) {

	t.Parallel()

	t.Run("missing prefix", func(t *testing.T) {

		t.Parallel()

		_, _, err := DecodeAddressLocationTypeID("")
		require.EqualError(t, err, "invalid address location type ID: missing prefix")
		require.IsType(t, EncodingError{}, err)
	})

	t.Run("missing location", func(t *testing.T) {

		t.Parallel()

		_, _, err := DecodeAddressLocationTypeID("A")
		require.EqualError(t, err, "invalid address location type ID: missing location")
	})

	t.Run("missing qualified identifier", func(t *testing.T) {

		t.Parallel()

		_, _, err := DecodeAddressLocationTypeID("A.0000000000000001")
		require.EqualError(t, err, "invalid address location type ID: missing qualified identifier")
	})

	t.Run("empty qualified identifier", func(t *testing.T) {

		t.Parallel()

		_, _, err := DecodeAddressLocationTypeID("A.0000000000000001.")
		require.EqualError(t, err, "invalid address location type ID: missing qualified identifier")
	})

	t.Run("invalid prefix", func(t *testing.T) {

		t.Parallel()

		_, _, err := DecodeAddressLocationTypeID("X.0000000000000001.T")
		require.EqualError(t, err, "invalid address location type ID: invalid prefix: expected \"A\", got \"X\"")
	})

	t.Run("invalid address", func(t *testing.T) {

		t.Parallel()

		_, _, err := DecodeAddressLocationTypeID("A.xyz.T")
		require.ErrorContains(t, err, "invalid address location type ID: invalid address")

		_, _, err = DecodeAddressLocationTypeID("A.000000000000000001.T")
		require.ErrorContains(t, err, "invalid address location type ID: invalid address")
	})

	t.Run("qualified identifier with one part", func(t *testing.T) {

		t.Parallel()

		location, qualifiedIdentifier, err := DecodeAddressLocationTypeID("A.0000000000000001.T")
		require.NoError(t, err)

		assert.Equal(t,
			AddressLocation{
				Address: MustBytesToAddress([]byte{1}),
				Name:    "T",
			},
			location,
		)
		assert.Equal(t, "T", qualifiedIdentifier)
	})

	t.Run("qualified identifier with two parts", func(t *testing.T) {

		t.Parallel()

		location, qualifiedIdentifier, err := DecodeAddressLocationTypeID("A.0000000000000001.T.U")
		require.NoError(t, err)

		assert.Equal(t,
			AddressLocation{
				Address: MustBytesToAddress([]byte{1}),
				Name:    "T",
			},
			location,
		)
		assert.Equal(t, "T.U", qualifiedIdentifier)
	})
}

func TestDecodeFlowLocationTypeID(t *testing.T) {

	t.Parallel()

	t.Run("missing prefix", func(t *testing.T) {

		t.Parallel()

		_, _, err := DecodeFlowLocationTypeID("")
		require.EqualError(t, err, "invalid Flow location type ID: missing prefix")
	})

	t.Run("missing qualified identifier", func(t *testing.T) {

		t.Parallel()

		_, _, err := DecodeFlowLocationTypeID("flow")
		require.EqualError(t, err, "invalid Flow location type ID: missing qualified identifier")
	})

	t.Run("empty qualified identifier", func(t *testing.T) {

		t.Parallel()

		_, _, err := DecodeFlowLocationTypeID("flow.")
		require.EqualError(t, err, "invalid Flow location type ID: missing qualified identifier")
	})

	t.Run("invalid prefix", func(t *testing.T) {

		t.Parallel()

		_, _, err := DecodeFlowLocationTypeID("S.AccountCreated")
		require.EqualError(t, err, "invalid Flow location type ID: invalid prefix: expected \"flow\", got \"S\"")
	})

	t.Run("valid", func(t *testing.T) {

		t.Parallel()

		location, qualifiedIdentifier, err := DecodeFlowLocationTypeID("flow.AccountCreated")
		require.NoError(t, err)
		assert.Equal(t, FlowLocation{}, location)
		assert.Equal(t, "AccountCreated", qualifiedIdentifier)
	})
}

func TestDecodeStringLocationTypeID(t *testing.T) {

	t.Parallel()

	t.Run("missing prefix", func(t *testing.T) {

		t.Parallel()

		_, _, err := DecodeStringLocationTypeID("")
		require.EqualError(t, err, "invalid string location type ID: missing prefix")
	})

	t.Run("missing location", func(t *testing.T) {

		t.Parallel()

		_, _, err := DecodeStringLocationTypeID("S")
		require.EqualError(t, err, "invalid string location type ID: missing location")
	})

	t.Run("missing qualified identifier", func(t *testing.T) {

		t.Parallel()

		_, _, err := DecodeStringLocationTypeID("S.test")
		require.EqualError(t, err, "invalid string location type ID: missing qualified identifier")
	})

	t.Run("invalid prefix", func(t *testing.T) {

		t.Parallel()

		_, _, err := DecodeStringLocationTypeID("s.test.T")
		require.EqualError(t, err, "invalid string location type ID: invalid prefix: expected \"S\", got \"s\"")
	})

	t.Run("valid", func(t *testing.T) {

		t.Parallel()

		location, qualifiedIdentifier, err := DecodeStringLocationTypeID("S.test.T.U")
		require.NoError(t, err)
		assert.Equal(t, StringLocation("test"), location)
		assert.Equal(t, "T.U", qualifiedIdentifier)
	})
}

func TestDecodeScriptLocationTypeID(t *testing.T) {

	t.Parallel()

	t.Run("missing prefix", func(t *testing.T) {

		t.Parallel()

		_, _, err := DecodeScriptLocationTypeID("")
		require.EqualError(t, err, "invalid script location type ID: missing prefix")
	})

	t.Run("missing location", func(t *testing.T) {

		t.Parallel()

		_, _, err := DecodeScriptLocationTypeID("s")
		require.EqualError(t, err, "invalid script location type ID: missing location")
	})

	t.Run("missing qualified identifier", func(t *testing.T) {

		t.Parallel()

		_, _, err := DecodeScriptLocationTypeID("s.0102")
		require.EqualError(t, err, "invalid script location type ID: missing qualified identifier")
	})

	t.Run("invalid prefix", func(t *testing.T) {

		t.Parallel()

		_, _, err := DecodeScriptLocationTypeID("S.0102.T")
		require.EqualError(t, err, "invalid script location type ID: invalid prefix: expected \"s\", got \"S\"")
	})

	t.Run("valid", func(t *testing.T) {

		t.Parallel()

		location, qualifiedIdentifier, err := DecodeScriptLocationTypeID("s.0102.T")
		require.NoError(t, err)
		assert.Equal(t, ScriptLocation("0102"), location)
		assert.Equal(t, "T", qualifiedIdentifier)
	})
}

func TestDecodeTypeID(t *testing.T) {

	t.Parallel()

	locations := []Location{
		NewAddressLocation(MustBytesToAddress([]byte{0x42}), "T"),
		FlowLocation{},
		StringLocation("test"),
		ScriptLocation("0102"),
	}

	for _, location := range locations {

		location := location

		t.Run(location.Prefix(), func(t *testing.T) {

			t.Parallel()

			decodedLocation, qualifiedIdentifier, err := DecodeTypeID(location.TypeID("T"))
			require.NoError(t, err)

			assert.Equal(t, location, decodedLocation)
			assert.Equal(t, "T", qualifiedIdentifier)
			assert.True(t, LocationEquals(location, decodedLocation))
		})
	}

	t.Run("empty", func(t *testing.T) {

		t.Parallel()

		_, _, err := DecodeTypeID("")
		require.EqualError(t, err, "invalid type ID: missing prefix")
	})

	t.Run("unknown prefix", func(t *testing.T) {

		t.Parallel()

		_, _, err := DecodeTypeID("X.foo.T")
		require.EqualError(t, err, "invalid type ID \"X.foo.T\": cannot decode prefix \"X\"")
	})

	t.Run("custom decoder", func(t *testing.T) {

		t.Parallel()

		decoders := NewLocationDecoders()
		decoders.Register(
			"X",
			func(typeID string) (Location, string, error) {
				return StringLocation("custom"), typeID[2:], nil
			},
		)

		location, qualifiedIdentifier, err := decoders.DecodeTypeID("X.T")
		require.NoError(t, err)
		assert.Equal(t, StringLocation("custom"), location)
		assert.Equal(t, "T", qualifiedIdentifier)

		// the default registry is not affected
		_, _, err = DecodeTypeID("X.T")
		require.Error(t, err)
	})
}

func TestPathDomainFromIdentifier(t *testing.T) {

	t.Parallel()

	for _, domain := range AllPathDomains {
		assert.Equal(t, domain, PathDomainFromIdentifier(domain.Identifier()))
	}

	assert.Equal(t, PathDomainUnknown, PathDomainFromIdentifier("temp"))
}
