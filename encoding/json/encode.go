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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/onflow/cadence-sdk"
	"github.com/onflow/cadence-sdk/errors"
)

// An Encoder converts Cadence values into JSON-encoded bytes.
type Encoder struct {
	enc *json.Encoder
}

// Encode returns the JSON-encoded representation of the given value.
// The output is compact and ends with a newline,
// which is the framing used for transaction and script arguments.
func Encode(value cadence.Value) ([]byte, error) {
	var w bytes.Buffer
	enc := NewEncoder(&w)

	err := enc.Encode(value)
	if err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// MustEncode returns the JSON-encoded representation of the given value, or panics
// if the value cannot be represented as JSON.
func MustEncode(value cadence.Value) []byte {
	b, err := Encode(value)
	if err != nil {
		panic(err)
	}
	return b
}

// EncodeType returns the JSON-encoded representation of the given type
func EncodeType(typ cadence.Type) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoveredEncodingError(r)
		}
	}()

	var w bytes.Buffer
	enc := json.NewEncoder(&w)
	enc.SetEscapeHTML(false)

	preparedType := prepareType(typ, typePreparationResults{})

	err = enc.Encode(preparedType)
	if err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// NewEncoder initializes an Encoder that will write JSON-encoded bytes to the
// given io.Writer.
func NewEncoder(w io.Writer) *Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &Encoder{enc: enc}
}

// Encode writes the JSON-encoded representation of the given value to this
// encoder's io.Writer.
//
// This function returns an error if the given value's type is not supported
// by this encoder.
func (e *Encoder) Encode(value cadence.Value) (err error) {
	// capture panics that occur during struct preparation
	defer func() {
		if r := recover(); r != nil {
			err = recoveredEncodingError(r)
		}
	}()

	preparedValue := Prepare(value)

	return e.enc.Encode(&preparedValue)
}

func recoveredEncodingError(r any) error {
	panicErr, ok := r.(error)
	if !ok {
		panicErr = fmt.Errorf("%v", r)
	}

	return errors.NewDefaultUserError("failed to encode value: %w", panicErr)
}

// JSON struct definitions

type jsonValue any

type jsonValueObject struct {
	Value jsonValue `json:"value"`
	Type  string    `json:"type"`
}

type jsonEmptyValueObject struct {
	Type string `json:"type"`
}

type jsonDictionaryItem struct {
	Key   jsonValue `json:"key"`
	Value jsonValue `json:"value"`
}

type jsonCompositeValue struct {
	ID     string               `json:"id"`
	Fields []jsonCompositeField `json:"fields"`
}

type jsonCompositeField struct {
	Value jsonValue `json:"value"`
	Name  string    `json:"name"`
}

type jsonPathValue struct {
	Domain     string `json:"domain"`
	Identifier string `json:"identifier"`
}

type jsonTypeValue struct {
	StaticType jsonValue `json:"staticType"`
}

type jsonCapabilityValue struct {
	BorrowType jsonValue `json:"borrowType"`
	Address    string    `json:"address"`
	ID         string    `json:"id"`
}

type jsonFunctionValue struct {
	FunctionType jsonValue `json:"functionType"`
}

type jsonInclusiveRangeValue struct {
	Start jsonValue `json:"start"`
	End   jsonValue `json:"end"`
	Step  jsonValue `json:"step"`
}

type jsonFieldType struct {
	Type jsonValue `json:"type"`
	Id   string    `json:"id"`
}

type jsonNominalType struct {
	Type         jsonValue             `json:"type"`
	Kind         string                `json:"kind"`
	TypeID       string                `json:"typeID"`
	Fields       []jsonFieldType       `json:"fields"`
	Initializers [][]jsonParameterType `json:"initializers"`
}

type jsonSimpleType struct {
	Kind string `json:"kind"`
}

type jsonUnaryType struct {
	Type jsonValue `json:"type"`
	Kind string    `json:"kind"`
}

type jsonConstantSizedArrayType struct {
	Type jsonValue `json:"type"`
	Kind string    `json:"kind"`
	Size uint      `json:"size"`
}

type jsonDictionaryType struct {
	KeyType   jsonValue `json:"key"`
	ValueType jsonValue `json:"value"`
	Kind      string    `json:"kind"`
}

type jsonReferenceType struct {
	Type          jsonValue         `json:"type"`
	Kind          string            `json:"kind"`
	Authorization jsonAuthorization `json:"authorization"`
}

type jsonAuthorization struct {
	Kind         string                  `json:"kind"`
	Entitlements []jsonEntitlementTypeID `json:"entitlements"`
}

type jsonEntitlementTypeID struct {
	Kind   string `json:"kind"`
	TypeID string `json:"typeID"`
}

type jsonIntersectionType struct {
	Kind   string      `json:"kind"`
	TypeID string      `json:"typeID"`
	Types  []jsonValue `json:"types"`
}

type jsonParameterType struct {
	Type  jsonValue `json:"type"`
	Label string    `json:"label"`
	Id    string    `json:"id"`
}

type jsonTypeParameter struct {
	TypeBound jsonValue `json:"typeBound"`
	Name      string    `json:"name"`
}

type jsonFunctionType struct {
	Return         jsonValue           `json:"return"`
	Kind           string              `json:"kind"`
	TypeID         string              `json:"typeID"`
	Purity         string              `json:"purity,omitempty"`
	TypeParameters []jsonTypeParameter `json:"typeParameters"`
	Parameters     []jsonParameterType `json:"parameters"`
}

type jsonInclusiveRangeType struct {
	ElementType jsonValue `json:"element"`
	Kind        string    `json:"kind"`
}

const (
	voidTypeStr           = "Void"
	optionalTypeStr       = "Optional"
	boolTypeStr           = "Bool"
	characterTypeStr      = "Character"
	stringTypeStr         = "String"
	addressTypeStr        = "Address"
	intTypeStr            = "Int"
	int8TypeStr           = "Int8"
	int16TypeStr          = "Int16"
	int32TypeStr          = "Int32"
	int64TypeStr          = "Int64"
	int128TypeStr         = "Int128"
	int256TypeStr         = "Int256"
	uintTypeStr           = "UInt"
	uint8TypeStr          = "UInt8"
	uint16TypeStr         = "UInt16"
	uint32TypeStr         = "UInt32"
	uint64TypeStr         = "UInt64"
	uint128TypeStr        = "UInt128"
	uint256TypeStr        = "UInt256"
	word8TypeStr          = "Word8"
	word16TypeStr         = "Word16"
	word32TypeStr         = "Word32"
	word64TypeStr         = "Word64"
	fix64TypeStr          = "Fix64"
	ufix64TypeStr         = "UFix64"
	arrayTypeStr          = "Array"
	dictionaryTypeStr     = "Dictionary"
	structTypeStr         = "Struct"
	resourceTypeStr       = "Resource"
	eventTypeStr          = "Event"
	contractTypeStr       = "Contract"
	enumTypeStr           = "Enum"
	inclusiveRangeTypeStr = "InclusiveRange"
	pathTypeStr           = "Path"
	typeTypeStr           = "Type"
	capabilityTypeStr     = "Capability"
	functionTypeStr       = "Function"
)

// Prepare traverses the object graph of the provided value and constructs
// a struct representation that can be marshalled to JSON.
func Prepare(v cadence.Value) jsonValue {
	switch v := v.(type) {
	case cadence.Void:
		return prepareVoid()
	case cadence.Optional:
		return prepareOptional(v)
	case cadence.Bool:
		return prepareBool(v)
	case cadence.Character:
		return prepareCharacter(v)
	case cadence.String:
		return prepareString(v)
	case cadence.Address:
		return prepareAddress(v)
	case cadence.Int:
		return prepareNumber(intTypeStr, v)
	case cadence.Int8:
		return prepareNumber(int8TypeStr, v)
	case cadence.Int16:
		return prepareNumber(int16TypeStr, v)
	case cadence.Int32:
		return prepareNumber(int32TypeStr, v)
	case cadence.Int64:
		return prepareNumber(int64TypeStr, v)
	case cadence.Int128:
		return prepareNumber(int128TypeStr, v)
	case cadence.Int256:
		return prepareNumber(int256TypeStr, v)
	case cadence.UInt:
		return prepareNumber(uintTypeStr, v)
	case cadence.UInt8:
		return prepareNumber(uint8TypeStr, v)
	case cadence.UInt16:
		return prepareNumber(uint16TypeStr, v)
	case cadence.UInt32:
		return prepareNumber(uint32TypeStr, v)
	case cadence.UInt64:
		return prepareNumber(uint64TypeStr, v)
	case cadence.UInt128:
		return prepareNumber(uint128TypeStr, v)
	case cadence.UInt256:
		return prepareNumber(uint256TypeStr, v)
	case cadence.Word8:
		return prepareNumber(word8TypeStr, v)
	case cadence.Word16:
		return prepareNumber(word16TypeStr, v)
	case cadence.Word32:
		return prepareNumber(word32TypeStr, v)
	case cadence.Word64:
		return prepareNumber(word64TypeStr, v)
	case cadence.Fix64:
		return prepareFixedPoint(fix64TypeStr, v)
	case cadence.UFix64:
		return prepareFixedPoint(ufix64TypeStr, v)
	case cadence.Array:
		return prepareArray(v)
	case cadence.Dictionary:
		return prepareDictionary(v)
	case cadence.TypedEvent:
		return prepareComposite(eventTypeStr, v.AsEvent())
	case cadence.Struct:
		return prepareComposite(structTypeStr, v)
	case cadence.Resource:
		return prepareComposite(resourceTypeStr, v)
	case cadence.Event:
		return prepareComposite(eventTypeStr, v)
	case cadence.Contract:
		return prepareComposite(contractTypeStr, v)
	case cadence.Enum:
		return prepareComposite(enumTypeStr, v)
	case *cadence.InclusiveRange:
		return prepareInclusiveRange(v)
	case cadence.Path:
		return preparePath(v)
	case cadence.TypeValue:
		return prepareTypeValue(v)
	case cadence.Capability:
		return prepareCapability(v)
	case cadence.Function:
		return prepareFunction(v)
	case nil:
		panic(fmt.Errorf("unsupported value: nil"))
	default:
		panic(fmt.Errorf("unsupported value: %T, %v", v, v))
	}
}

func prepareVoid() jsonValue {
	return jsonEmptyValueObject{Type: voidTypeStr}
}

func prepareOptional(v cadence.Optional) jsonValue {
	var value any

	if v.Value != nil {
		value = Prepare(v.Value)
	}

	return jsonValueObject{
		Type:  optionalTypeStr,
		Value: value,
	}
}

func prepareBool(v cadence.Bool) jsonValue {
	return jsonValueObject{
		Type:  boolTypeStr,
		Value: v,
	}
}

func prepareCharacter(v cadence.Character) jsonValue {
	return jsonValueObject{
		Type:  characterTypeStr,
		Value: v,
	}
}

func prepareString(v cadence.String) jsonValue {
	return jsonValueObject{
		Type:  stringTypeStr,
		Value: v,
	}
}

func prepareAddress(v cadence.Address) jsonValue {
	return jsonValueObject{
		Type:  addressTypeStr,
		Value: v.HexWithPrefix(),
	}
}

// prepareNumber encodes integers as decimal strings,
// so values beyond the JSON number range keep their precision
func prepareNumber(typeStr string, v cadence.NumberValue) jsonValue {
	return jsonValueObject{
		Type:  typeStr,
		Value: v.ToBigInt().String(),
	}
}

func prepareFixedPoint(typeStr string, v cadence.Value) jsonValue {
	return jsonValueObject{
		Type:  typeStr,
		Value: v.String(),
	}
}

func prepareArray(v cadence.Array) jsonValue {
	values := make([]jsonValue, len(v.Values))

	for i, value := range v.Values {
		values[i] = Prepare(value)
	}

	return jsonValueObject{
		Type:  arrayTypeStr,
		Value: values,
	}
}

func prepareDictionary(v cadence.Dictionary) jsonValue {
	items := make([]jsonDictionaryItem, len(v.Pairs))

	for i, pair := range v.Pairs {
		items[i] = jsonDictionaryItem{
			Key:   Prepare(pair.Key),
			Value: Prepare(pair.Value),
		}
	}

	return jsonValueObject{
		Type:  dictionaryTypeStr,
		Value: items,
	}
}

func prepareComposite(kind string, v cadence.Composite) jsonValue {
	compositeType := v.CompositeType()
	if compositeType == nil {
		panic(fmt.Errorf("invalid %s: missing type", kind))
	}

	fieldTypes := compositeType.CompositeFields()
	fieldValues := v.FieldValues()

	if len(fieldTypes) != len(fieldValues) {
		panic(fmt.Errorf(
			"%s field count (%d) does not match declared type (%d)",
			kind,
			len(fieldValues),
			len(fieldTypes),
		))
	}

	fields := make([]jsonCompositeField, len(fieldValues))

	for i, value := range fieldValues {
		fields[i] = jsonCompositeField{
			Name:  fieldTypes[i].Identifier,
			Value: Prepare(value),
		}
	}

	return jsonValueObject{
		Type: kind,
		Value: jsonCompositeValue{
			ID:     compositeType.ID(),
			Fields: fields,
		},
	}
}

func prepareInclusiveRange(v *cadence.InclusiveRange) jsonValue {
	return jsonValueObject{
		Type: inclusiveRangeTypeStr,
		Value: jsonInclusiveRangeValue{
			Start: Prepare(v.Start),
			End:   Prepare(v.End),
			Step:  Prepare(v.Step),
		},
	}
}

func preparePath(x cadence.Path) jsonValue {
	return jsonValueObject{
		Type: pathTypeStr,
		Value: jsonPathValue{
			Domain:     x.Domain.Identifier(),
			Identifier: x.Identifier,
		},
	}
}

func prepareTypeValue(typeValue cadence.TypeValue) jsonValue {
	return jsonValueObject{
		Type: typeTypeStr,
		Value: jsonTypeValue{
			StaticType: prepareType(typeValue.StaticType, typePreparationResults{}),
		},
	}
}

func prepareCapability(capability cadence.Capability) jsonValue {
	if capability.DeprecatedPath != nil {
		panic(fmt.Errorf("path capabilities are no longer supported"))
	}

	return jsonValueObject{
		Type: capabilityTypeStr,
		Value: jsonCapabilityValue{
			ID:         strconv.FormatUint(uint64(capability.ID), 10),
			Address:    capability.Address.HexWithPrefix(),
			BorrowType: prepareType(capability.BorrowType, typePreparationResults{}),
		},
	}
}

func prepareFunction(function cadence.Function) jsonValue {
	return jsonValueObject{
		Type: functionTypeStr,
		Value: jsonFunctionValue{
			FunctionType: prepareType(function.FunctionType, typePreparationResults{}),
		},
	}
}

// typePreparationResults tracks the nominal types already encoded,
// later occurrences are encoded as their type ID
type typePreparationResults map[string]struct{}

func prepareType(typ cadence.Type, results typePreparationResults) jsonValue {
	// A nil type is encoded as the empty string
	if typ == nil {
		return ""
	}

	// Functions without a type hold a nil function type
	if functionType, ok := typ.(*cadence.FunctionType); ok && functionType == nil {
		return ""
	}

	return prepareNonNilType(typ, results)
}

func prepareNonNilType(typ cadence.Type, results typePreparationResults) jsonValue {
	switch typ := typ.(type) {
	case cadence.PrimitiveType:
		return jsonSimpleType{
			Kind: typ.ID(),
		}

	case cadence.TypeID:
		return string(typ)

	case *cadence.OptionalType:
		return jsonUnaryType{
			Kind: "Optional",
			Type: prepareType(typ.Type, results),
		}

	case *cadence.VariableSizedArrayType:
		return jsonUnaryType{
			Kind: "VariableSizedArray",
			Type: prepareType(typ.ElementType, results),
		}

	case *cadence.ConstantSizedArrayType:
		return jsonConstantSizedArrayType{
			Kind: "ConstantSizedArray",
			Type: prepareType(typ.ElementType, results),
			Size: typ.Size,
		}

	case *cadence.DictionaryType:
		return jsonDictionaryType{
			Kind:      "Dictionary",
			KeyType:   prepareType(typ.KeyType, results),
			ValueType: prepareType(typ.ElementType, results),
		}

	case *cadence.InclusiveRangeType:
		return jsonInclusiveRangeType{
			Kind:        "InclusiveRange",
			ElementType: prepareType(typ.ElementType, results),
		}

	case cadence.CompositeType:
		return prepareCompositeType(typ, results)

	case cadence.InterfaceType:
		return prepareInterfaceType(typ, results)

	case *cadence.FunctionType:
		return prepareFunctionType(typ, results)

	case *cadence.ReferenceType:
		return jsonReferenceType{
			Kind:          "Reference",
			Authorization: prepareAuthorization(typ.Authorization),
			Type:          prepareType(typ.Type, results),
		}

	case *cadence.IntersectionType:
		types := make([]jsonValue, 0, len(typ.Types))
		for _, typ := range typ.Types {
			types = append(types, prepareType(typ, results))
		}
		return jsonIntersectionType{
			Kind:   "Intersection",
			Types:  types,
			TypeID: typ.ID(),
		}

	case *cadence.CapabilityType:
		return jsonUnaryType{
			Kind: "Capability",
			Type: prepareType(typ.BorrowType, results),
		}

	default:
		panic(fmt.Errorf("unsupported type: %T, %s", typ, typ.ID()))
	}
}

func prepareCompositeType(typ cadence.CompositeType, results typePreparationResults) jsonValue {
	typeID := typ.ID()

	// Encode recursive and repeated types as their type ID
	if _, ok := results[typeID]; ok {
		return typeID
	}
	results[typeID] = struct{}{}

	var kind string
	var rawType jsonValue = ""

	switch typ := typ.(type) {
	case *cadence.StructType:
		kind = "Struct"
	case *cadence.ResourceType:
		kind = "Resource"
	case *cadence.EventType:
		kind = "Event"
	case *cadence.ContractType:
		kind = "Contract"
	case *cadence.EnumType:
		kind = "Enum"
		rawType = prepareType(typ.RawType, results)
	default:
		panic(fmt.Errorf("unsupported composite type: %T", typ))
	}

	return jsonNominalType{
		Kind:         kind,
		Type:         rawType,
		TypeID:       typeID,
		Fields:       prepareFields(typ.CompositeFields(), results),
		Initializers: prepareInitializers(typ.CompositeInitializers(), results),
	}
}

func prepareInterfaceType(typ cadence.InterfaceType, results typePreparationResults) jsonValue {
	typeID := typ.ID()

	if _, ok := results[typeID]; ok {
		return typeID
	}
	results[typeID] = struct{}{}

	var kind string

	switch typ.(type) {
	case *cadence.StructInterfaceType:
		kind = "StructInterface"
	case *cadence.ResourceInterfaceType:
		kind = "ResourceInterface"
	case *cadence.ContractInterfaceType:
		kind = "ContractInterface"
	default:
		panic(fmt.Errorf("unsupported interface type: %T", typ))
	}

	return jsonNominalType{
		Kind:         kind,
		Type:         "",
		TypeID:       typeID,
		Fields:       prepareFields(typ.InterfaceFields(), results),
		Initializers: prepareInitializers(typ.InterfaceInitializers(), results),
	}
}

func prepareFunctionType(typ *cadence.FunctionType, results typePreparationResults) jsonValue {
	var purity string
	if typ.Purity == cadence.FunctionPurityView {
		purity = "view"
	}

	typeParameters := make([]jsonTypeParameter, 0, len(typ.TypeParameters))
	for _, typeParameter := range typ.TypeParameters {
		typeParameters = append(
			typeParameters,
			jsonTypeParameter{
				Name:      typeParameter.Name,
				TypeBound: prepareType(typeParameter.TypeBound, results),
			},
		)
	}

	return jsonFunctionType{
		Kind:           "Function",
		TypeID:         typ.ID(),
		Purity:         purity,
		TypeParameters: typeParameters,
		Parameters:     prepareParameters(typ.Parameters, results),
		Return:         prepareType(typ.ReturnType, results),
	}
}

func prepareAuthorization(auth cadence.Authorization) jsonAuthorization {
	switch auth := auth.(type) {
	case nil, cadence.Unauthorized:
		return jsonAuthorization{
			Kind: "Unauthorized",
		}

	case cadence.EntitlementMapAuthorization:
		return jsonAuthorization{
			Kind: "EntitlementMapAuthorization",
			Entitlements: []jsonEntitlementTypeID{
				{
					Kind:   "EntitlementMap",
					TypeID: auth.TypeID,
				},
			},
		}

	case cadence.EntitlementSetAuthorization:
		var kind string
		switch auth.Kind {
		case cadence.Conjunction:
			kind = "EntitlementConjunctionSet"
		case cadence.Disjunction:
			kind = "EntitlementDisjunctionSet"
		default:
			panic(errors.NewUnreachableError())
		}

		entitlements := make([]jsonEntitlementTypeID, 0, len(auth.Entitlements))
		for _, entitlement := range auth.Entitlements {
			entitlements = append(
				entitlements,
				jsonEntitlementTypeID{
					Kind:   "Entitlement",
					TypeID: entitlement,
				},
			)
		}

		return jsonAuthorization{
			Kind:         kind,
			Entitlements: entitlements,
		}

	default:
		panic(fmt.Errorf("unsupported authorization: %T", auth))
	}
}

func prepareFields(fieldTypes []cadence.Field, results typePreparationResults) []jsonFieldType {
	fields := make([]jsonFieldType, 0, len(fieldTypes))
	for _, field := range fieldTypes {
		fields = append(
			fields,
			jsonFieldType{
				Id:   field.Identifier,
				Type: prepareType(field.Type, results),
			},
		)
	}
	return fields
}

func prepareParameters(parameterTypes []cadence.Parameter, results typePreparationResults) []jsonParameterType {
	parameters := make([]jsonParameterType, 0, len(parameterTypes))
	for _, parameter := range parameterTypes {
		parameters = append(
			parameters,
			jsonParameterType{
				Label: parameter.Label,
				Id:    parameter.Identifier,
				Type:  prepareType(parameter.Type, results),
			},
		)
	}
	return parameters
}

func prepareInitializers(initializerTypes [][]cadence.Parameter, results typePreparationResults) [][]jsonParameterType {
	initializers := make([][]jsonParameterType, 0, len(initializerTypes))
	for _, parameters := range initializerTypes {
		initializers = append(initializers, prepareParameters(parameters, results))
	}
	return initializers
}
