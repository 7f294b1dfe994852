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
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/cadence-sdk/common"
)

func newFooStructType() *StructType {
	return NewStructType(
		common.StringLocation("test"),
		"Foo",
		[]Field{
			{Identifier: "a", Type: IntType},
			{Identifier: "b", Type: StringType},
		},
		nil,
	)
}

func TestValue_String(t *testing.T) {

	t.Parallel()

	type testCase struct {
		value    Value
		expected string
	}

	fix64, err := NewFix64("-12.5")
	require.NoError(t, err)

	ufix64, err := NewUFix64("789.0012301")
	require.NoError(t, err)

	fooType := newFooStructType()

	tests := map[string]testCase{
		"Void":    {NewVoid(), "()"},
		"nil":     {NewOptional(nil), "nil"},
		"some":    {NewOptional(NewInt(42)), "42"},
		"Bool":    {NewBool(true), "true"},
		"String":  {String("hello\n\"world\""), `"hello\n\"world\""`},
		"Address": {MustBytesToAddress([]byte{1, 2, 3, 4, 5}), "0x0000000102030405"},
		"Int":     {NewInt(-42), "-42"},
		"UInt256": {NewUInt256(7), "7"},
		"Int8":    {NewInt8(-8), "-8"},
		"Word64":  {NewWord64(64), "64"},
		"Fix64":   {fix64, "-12.50000000"},
		"UFix64":  {ufix64, "789.00123010"},
		"Array": {
			NewArray([]Value{NewInt(1), NewInt(2)}),
			"[1, 2]",
		},
		"Dictionary": {
			NewDictionary([]KeyValuePair{
				{Key: String("a"), Value: NewInt(1)},
			}),
			`{"a": 1}`,
		},
		"Struct": {
			NewStruct([]Value{NewInt(1), String("x")}).WithType(fooType),
			`S.test.Foo(a: 1, b: "x")`,
		},
		"Path": {
			MustNewPath(common.PathDomainStorage, "foo"),
			"/storage/foo",
		},
		"Capability": {
			NewCapability(3, MustBytesToAddress([]byte{1}), IntType),
			"Capability<Int>(address: 0x0000000000000001, id: 3)",
		},
		"deprecated path Capability": {
			NewDeprecatedPathCapability(
				MustBytesToAddress([]byte{1}),
				MustNewPath(common.PathDomainPublic, "foo"),
				nil,
			),
			"Capability(address: 0x0000000000000001, path: /public/foo)",
		},
		"TypeValue": {NewTypeValue(IntType), "Type<Int>()"},
		"Function": {
			NewFunction(NewFunctionType(FunctionPurityView, nil, nil, VoidType)),
			"Function(view fun():Void)",
		},
		"InclusiveRange": {
			NewInclusiveRange(NewInt(1), NewInt(10), NewInt(2)),
			"InclusiveRange(start: 1, end: 10, step: 2)",
		},
	}

	for name, test := range tests {
		test := test

		t.Run(name, func(t *testing.T) {

			t.Parallel()

			assert.Equal(t, test.expected, test.value.String())
		})
	}
}

func TestValue_Type(t *testing.T) {

	t.Parallel()

	assert.Equal(t, NewOptionalType(NeverType), NewOptional(nil).Type())
	assert.Equal(t, NewOptionalType(IntType), NewOptional(NewInt(1)).Type())
	assert.Equal(t, StoragePathType, MustNewPath(common.PathDomainStorage, "x").Type())
	assert.Equal(t, PublicPathType, MustNewPath(common.PathDomainPublic, "x").Type())
	assert.Equal(t, NewCapabilityType(IntType), NewCapability(1, Address{}, IntType).Type())
	assert.Equal(t, MetaType, NewTypeValue(nil).Type())
	assert.Equal(t, NewInclusiveRangeType(IntType), NewInclusiveRange(NewInt(1), NewInt(2), NewInt(1)).Type())

	assert.Nil(t, NewArray(nil).Type())
	assert.Nil(t, NewStruct(nil).Type())

	fooType := newFooStructType()
	assert.Equal(t, fooType, NewStruct(nil).WithType(fooType).Type())
}

func TestFix64(t *testing.T) {

	t.Parallel()

	for _, raw := range []int64{0, 78900123010, 123405600000, -1234500678900} {
		value := Fix64(raw)

		decoded, err := NewFix64(value.String())
		require.NoError(t, err)
		assert.Equal(t, value, decoded)
	}

	assert.Equal(t, "789.00123010", Fix64(78900123010).String())
	assert.Equal(t, "-0.50000000", Fix64(-50000000).String())

	value, err := NewFix64FromParts(true, 1, 50000000)
	require.NoError(t, err)
	assert.Equal(t, Fix64(-150000000), value)

	_, err = NewFix64("1")
	require.Error(t, err)
}

func TestUFix64(t *testing.T) {

	t.Parallel()

	value, err := NewUFix64("1.5")
	require.NoError(t, err)
	assert.Equal(t, UFix64(150000000), value)

	_, err = NewUFix64("-1.5")
	require.Error(t, err)

	value, err = NewUFix64FromParts(2, 1)
	require.NoError(t, err)
	assert.Equal(t, "2.00000001", value.String())
}

func TestNewString(t *testing.T) {

	t.Parallel()

	t.Run("normalized", func(t *testing.T) {

		t.Parallel()

		// e followed by a combining acute accent
		s, err := NewString("é")
		require.NoError(t, err)
		assert.Equal(t, String("é"), s)
	})

	t.Run("invalid UTF-8", func(t *testing.T) {

		t.Parallel()

		_, err := NewString("\xc3\x28")
		require.Error(t, err)
	})
}

func TestNewCharacter(t *testing.T) {

	t.Parallel()

	c, err := NewCharacter("é")
	require.NoError(t, err)
	assert.Equal(t, Character("é"), c)

	// flag emoji is a single grapheme cluster
	_, err = NewCharacter("\U0001F1E9\U0001F1EA")
	require.NoError(t, err)

	_, err = NewCharacter("ab")
	require.Error(t, err)

	_, err = NewCharacter("")
	require.Error(t, err)
}

func TestNewIntFromBigRange(t *testing.T) {

	t.Parallel()

	t.Run("Int128", func(t *testing.T) {

		t.Parallel()

		_, err := NewInt128FromBig(Int128TypeMaxIntBig)
		require.NoError(t, err)

		_, err = NewInt128FromBig(new(big.Int).Add(Int128TypeMaxIntBig, big.NewInt(1)))
		require.EqualError(t, err, "value exceeds max of Int128: 170141183460469231731687303715884105728")

		_, err = NewInt128FromBig(new(big.Int).Sub(Int128TypeMinIntBig, big.NewInt(1)))
		require.ErrorContains(t, err, "value exceeds min of Int128")
	})

	t.Run("Int256", func(t *testing.T) {

		t.Parallel()

		_, err := NewInt256FromBig(Int256TypeMinIntBig)
		require.NoError(t, err)

		_, err = NewInt256FromBig(new(big.Int).Add(Int256TypeMaxIntBig, big.NewInt(1)))
		require.ErrorContains(t, err, "value exceeds max of Int256")
	})

	t.Run("UInt", func(t *testing.T) {

		t.Parallel()

		_, err := NewUIntFromBig(big.NewInt(-1))
		require.EqualError(t, err, "negative input for UInt: -1")
	})

	t.Run("UInt128", func(t *testing.T) {

		t.Parallel()

		_, err := NewUInt128FromBig(big.NewInt(-1))
		require.ErrorContains(t, err, "value exceeds min of UInt128")

		_, err = NewUInt128FromBig(new(big.Int).Lsh(big.NewInt(1), 128))
		require.ErrorContains(t, err, "value exceeds max of UInt128")
	})

	t.Run("UInt256", func(t *testing.T) {

		t.Parallel()

		value, err := NewUInt256FromBig(UInt256TypeMaxIntBig)
		require.NoError(t, err)
		assert.Equal(t, UInt256TypeMaxIntBig, value.Big())
	})
}

func TestComposite_Fields(t *testing.T) {

	t.Parallel()

	fooType := newFooStructType()

	value := NewStruct([]Value{NewInt(1), String("x")}).WithType(fooType)

	assert.Equal(t, NewInt(1), SearchFieldByName(value, "a"))
	assert.Equal(t, String("x"), SearchFieldByName(value, "b"))
	assert.Nil(t, SearchFieldByName(value, "c"))

	assert.Equal(t,
		map[string]Value{
			"a": NewInt(1),
			"b": String("x"),
		},
		FieldsMappedByName(value),
	)

	// without a type, fields have no names
	assert.Nil(t, SearchFieldByName(NewStruct([]Value{NewInt(1)}), "a"))
	assert.Nil(t, FieldsMappedByName(NewStruct([]Value{NewInt(1)})))
}

func TestNewPath(t *testing.T) {

	t.Parallel()

	_, err := NewPath(common.PathDomainUnknown, "foo")
	require.Error(t, err)

	assert.Panics(t, func() {
		MustNewPath(common.PathDomainUnknown, "foo")
	})
}

func TestAs(t *testing.T) {

	t.Parallel()

	t.Run("value", func(t *testing.T) {

		t.Parallel()

		i, err := As[Int](NewInt(1))
		require.NoError(t, err)
		assert.Equal(t, NewInt(1), i)

		_, err = As[String](NewInt(1))
		require.EqualError(t, err, "incorrect type: expected cadence.String, got cadence.Int")
		require.ErrorAs(t, err, &IncorrectTypeError{})

		_, err = As[Bool](nil)
		require.EqualError(t, err, "incorrect type: expected cadence.Bool, got nil")
	})

	t.Run("type", func(t *testing.T) {

		t.Parallel()

		optionalType, err := AsType[*OptionalType](NewOptionalType(IntType))
		require.NoError(t, err)
		assert.Equal(t, IntType, optionalType.Type)

		_, err = AsType[*StructType](IntType)
		require.EqualError(t, err, "incorrect type: expected *cadence.StructType, got cadence.PrimitiveType")
	})
}

func TestNewAccountCreatedEvent(t *testing.T) {

	t.Parallel()

	eventType := NewEventType(
		common.FlowLocation{},
		AccountCreatedEventQualifiedIdentifier,
		[]Field{{Identifier: "address", Type: AddressType}},
		nil,
	)

	address := MustBytesToAddress([]byte{0x42})

	t.Run("valid", func(t *testing.T) {

		t.Parallel()

		event := NewEvent([]Value{address}).WithType(eventType)

		typed, err := NewAccountCreatedEvent(event)
		require.NoError(t, err)

		assert.Equal(t, address, typed.Address)
		assert.Equal(t, event, typed.AsEvent())
		assert.Equal(t, "flow.AccountCreated", AccountCreatedEventTypeID)
	})

	t.Run("missing field", func(t *testing.T) {

		t.Parallel()

		_, err := NewAccountCreatedEvent(NewEvent(nil).WithType(eventType))
		require.EqualError(t, err, "invalid flow.AccountCreated event: missing address field")
	})

	t.Run("wrong field type", func(t *testing.T) {

		t.Parallel()

		_, err := NewAccountCreatedEvent(NewEvent([]Value{String("x")}).WithType(eventType))
		require.ErrorAs(t, err, &IncorrectTypeError{})
	})
}

func TestDecodeFields(t *testing.T) {

	t.Parallel()

	eventType := NewEventType(
		common.StringLocation("test"),
		"Deposit",
		[]Field{
			{Identifier: "amount", Type: UFix64Type},
			{Identifier: "to", Type: NewOptionalType(AddressType)},
			{Identifier: "tags", Type: NewVariableSizedArrayType(StringType)},
			{Identifier: "memo", Type: NewOptionalType(StringType)},
		},
		nil,
	)

	address := MustBytesToAddress([]byte{1})

	event := NewEvent([]Value{
		UFix64(150000000),
		NewOptional(address),
		NewArray([]Value{String("a"), String("b")}),
		NewOptional(nil),
	}).WithType(eventType)

	type deposit struct {
		Amount  UFix64   `cadence:"amount"`
		To      *Address `cadence:"to"`
		Tags    []string `cadence:"tags"`
		Memo    *String  `cadence:"memo"`
		Ignored int
	}

	var decoded deposit
	err := DecodeFields(event, &decoded)
	require.NoError(t, err)

	assert.Equal(t, UFix64(150000000), decoded.Amount)
	require.NotNil(t, decoded.To)
	assert.Equal(t, address, *decoded.To)
	assert.Equal(t, []string{"a", "b"}, decoded.Tags)
	assert.Nil(t, decoded.Memo)

	t.Run("not a pointer", func(t *testing.T) {

		t.Parallel()

		err := DecodeFields(event, decoded)
		require.EqualError(t, err, "s must be a pointer to a struct")
	})

	t.Run("missing field", func(t *testing.T) {

		t.Parallel()

		var missing struct {
			Value Int `cadence:"value"`
		}
		err := DecodeFields(event, &missing)
		require.EqualError(t, err, "value field not found")
	})

	t.Run("mismatched type", func(t *testing.T) {

		t.Parallel()

		var mismatched struct {
			Amount *UFix64 `cadence:"amount"`
		}
		err := DecodeFields(event, &mismatched)
		require.ErrorContains(t, err, "expected optional")
	})
}
