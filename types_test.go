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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/cadence-sdk/common"
)

func TestType_ID(t *testing.T) {

	t.Parallel()

	type testCase struct {
		ty       Type
		expected string
	}

	location := common.StringLocation("test")

	stringerTests := []testCase{
		{AnyStructType, "AnyStruct"},
		{UInt256Type, "UInt256"},
		{Word64Type, "Word64"},
		{AuthAccountKeysType, "AuthAccount.Keys"},
		{TypeID("S.test.Legacy"), "S.test.Legacy"},
		{NewOptionalType(StringType), "String?"},
		{NewVariableSizedArrayType(StringType), "[String]"},
		{NewConstantSizedArrayType(2, Int8Type), "[Int8;2]"},
		{NewDictionaryType(StringType, NewOptionalType(IntType)), "{String:Int?}"},
		{NewStructType(location, "Foo", nil, nil), "S.test.Foo"},
		{NewStructType(nil, "Foo", nil, nil), "Foo"},
		{NewResourceType(common.NewAddressLocation(common.MustBytesToAddress([]byte{1}), "R"), "R.Vault", nil, nil), "A.0000000000000001.R.Vault"},
		{NewEventType(common.FlowLocation{}, "AccountCreated", nil, nil), "flow.AccountCreated"},
		{NewContractType(location, "C", nil, nil), "S.test.C"},
		{NewEnumType(location, "E", UInt8Type, nil, nil), "S.test.E"},
		{NewStructInterfaceType(location, "SI", nil, nil), "S.test.SI"},
		{NewResourceInterfaceType(location, "RI", nil, nil), "S.test.RI"},
		{NewContractInterfaceType(location, "CI", nil, nil), "S.test.CI"},
		{
			NewFunctionType(
				FunctionPurityUnspecified,
				nil,
				[]Parameter{
					{Type: IntType},
					{Type: StringType},
				},
				BoolType,
			),
			"fun(Int,String):Bool",
		},
		{
			NewFunctionType(
				FunctionPurityView,
				[]TypeParameter{{Name: "T"}},
				[]Parameter{{Type: IntType}},
				VoidType,
			),
			"view fun<T>(Int):Void",
		},
		{NewReferenceType(UnauthorizedAccess, IntType), "&Int"},
		{NewReferenceType(nil, IntType), "&Int"},
		{
			NewReferenceType(
				NewEntitlementSetAuthorization([]string{"S.test.Z", "S.test.A"}, Conjunction),
				IntType,
			),
			"auth(S.test.A,S.test.Z)&Int",
		},
		{
			NewReferenceType(
				NewEntitlementSetAuthorization([]string{"S.test.Z", "S.test.A"}, Disjunction),
				IntType,
			),
			"auth(S.test.A|S.test.Z)&Int",
		},
		{
			NewReferenceType(NewEntitlementMapAuthorization("S.test.M"), IntType),
			"auth(S.test.M)&Int",
		},
		{
			NewIntersectionType([]Type{
				NewStructInterfaceType(location, "B", nil, nil),
				NewStructInterfaceType(location, "A", nil, nil),
			}),
			"{S.test.A,S.test.B}",
		},
		{NewCapabilityType(IntType), "Capability<Int>"},
		{NewCapabilityType(nil), "Capability"},
		{NewInclusiveRangeType(IntType), "InclusiveRange<Int>"},
	}

	for _, test := range stringerTests {
		test := test

		t.Run(test.expected, func(t *testing.T) {

			t.Parallel()

			assert.Equal(t, test.expected, test.ty.ID())
		})
	}
}

func TestPrimitiveTypeFromID(t *testing.T) {

	t.Parallel()

	for _, ty := range PrimitiveTypes {
		decoded, ok := PrimitiveTypeFromID(ty.ID())
		require.True(t, ok, ty.ID())
		assert.Equal(t, ty, decoded)
	}

	_, ok := PrimitiveTypeFromID("Foo")
	assert.False(t, ok)
}

func TestType_Equal(t *testing.T) {

	t.Parallel()

	location := common.StringLocation("test")

	t.Run("primitive", func(t *testing.T) {

		t.Parallel()

		assert.True(t, IntType.Equal(IntType))
		assert.False(t, IntType.Equal(UIntType))
		assert.False(t, IntType.Equal(NewOptionalType(IntType)))
	})

	t.Run("optional", func(t *testing.T) {

		t.Parallel()

		assert.True(t, NewOptionalType(IntType).Equal(NewOptionalType(IntType)))
		assert.False(t, NewOptionalType(IntType).Equal(NewOptionalType(StringType)))
	})

	t.Run("constant sized array", func(t *testing.T) {

		t.Parallel()

		assert.True(t,
			NewConstantSizedArrayType(2, IntType).
				Equal(NewConstantSizedArrayType(2, IntType)),
		)
		assert.False(t,
			NewConstantSizedArrayType(2, IntType).
				Equal(NewConstantSizedArrayType(3, IntType)),
		)
		assert.False(t,
			NewConstantSizedArrayType(2, IntType).
				Equal(NewVariableSizedArrayType(IntType)),
		)
	})

	t.Run("composite", func(t *testing.T) {

		t.Parallel()

		// fields do not take part in equality
		assert.True(t,
			NewStructType(location, "Foo", []Field{{Identifier: "a", Type: IntType}}, nil).
				Equal(NewStructType(location, "Foo", nil, nil)),
		)
		assert.False(t,
			NewStructType(location, "Foo", nil, nil).
				Equal(NewStructType(common.StringLocation("other"), "Foo", nil, nil)),
		)
		assert.False(t,
			NewStructType(location, "Foo", nil, nil).
				Equal(NewResourceType(location, "Foo", nil, nil)),
		)
	})

	t.Run("reference", func(t *testing.T) {

		t.Parallel()

		assert.True(t,
			NewReferenceType(
				NewEntitlementSetAuthorization([]string{"B", "A"}, Conjunction),
				IntType,
			).Equal(
				NewReferenceType(
					NewEntitlementSetAuthorization([]string{"A", "B"}, Conjunction),
					IntType,
				),
			),
		)
		assert.False(t,
			NewReferenceType(
				NewEntitlementSetAuthorization([]string{"A", "B"}, Disjunction),
				IntType,
			).Equal(
				NewReferenceType(
					NewEntitlementSetAuthorization([]string{"A", "B"}, Conjunction),
					IntType,
				),
			),
		)
	})

	t.Run("function", func(t *testing.T) {

		t.Parallel()

		a := NewFunctionType(FunctionPurityView, nil, []Parameter{{Type: IntType}}, VoidType)
		b := NewFunctionType(FunctionPurityView, nil, []Parameter{{Label: "x", Type: IntType}}, VoidType)
		c := NewFunctionType(FunctionPurityUnspecified, nil, []Parameter{{Type: IntType}}, VoidType)

		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(c))
	})
}

func TestEntitlementSetAuthorization_ID_DoesNotMutate(t *testing.T) {

	t.Parallel()

	entitlements := []string{"B", "A"}
	auth := NewEntitlementSetAuthorization(entitlements, Conjunction)

	assert.Equal(t, "A,B", auth.ID())
	assert.Equal(t, []string{"B", "A"}, entitlements)
}

func TestEventType_CompositeInitializers(t *testing.T) {

	t.Parallel()

	initializer := []Parameter{
		{Label: "_", Identifier: "address", Type: AddressType},
	}

	eventType := NewEventType(common.FlowLocation{}, "AccountCreated", nil, initializer)

	assert.Equal(t,
		[][]Parameter{initializer},
		eventType.CompositeInitializers(),
	)
}
