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
	"encoding/hex"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/onflow/cadence-sdk"
	"github.com/onflow/cadence-sdk/common"
	"github.com/onflow/cadence-sdk/errors"
)

type valueDecoder func(d *Decoder, valueJSON any) cadence.Value

// valueDecoders decode the `value` of an object, by its `type`.
// Void has no value and is not included.
var valueDecoders = map[string]valueDecoder{}

// valueTypes are all value discriminants, sorted, used for suggestions
var valueTypes []string

func init() {
	valueDecoders[optionalTypeStr] = (*Decoder).decodeOptional
	valueDecoders[boolTypeStr] = (*Decoder).decodeBool
	valueDecoders[characterTypeStr] = (*Decoder).decodeCharacter
	valueDecoders[stringTypeStr] = (*Decoder).decodeString
	valueDecoders[addressTypeStr] = (*Decoder).decodeAddress

	valueDecoders[intTypeStr] = bigIntDecoder(intTypeStr, func(i *big.Int) (cadence.Value, error) {
		return cadence.NewIntFromBig(i), nil
	})
	valueDecoders[int128TypeStr] = bigIntDecoder(int128TypeStr, fallible(cadence.NewInt128FromBig))
	valueDecoders[int256TypeStr] = bigIntDecoder(int256TypeStr, fallible(cadence.NewInt256FromBig))
	valueDecoders[uintTypeStr] = bigIntDecoder(uintTypeStr, fallible(cadence.NewUIntFromBig))
	valueDecoders[uint128TypeStr] = bigIntDecoder(uint128TypeStr, fallible(cadence.NewUInt128FromBig))
	valueDecoders[uint256TypeStr] = bigIntDecoder(uint256TypeStr, fallible(cadence.NewUInt256FromBig))

	valueDecoders[int8TypeStr] = func(_ *Decoder, valueJSON any) cadence.Value {
		return cadence.NewInt8(int8(parseInt(int8TypeStr, valueJSON, 8)))
	}
	valueDecoders[int16TypeStr] = func(_ *Decoder, valueJSON any) cadence.Value {
		return cadence.NewInt16(int16(parseInt(int16TypeStr, valueJSON, 16)))
	}
	valueDecoders[int32TypeStr] = func(_ *Decoder, valueJSON any) cadence.Value {
		return cadence.NewInt32(int32(parseInt(int32TypeStr, valueJSON, 32)))
	}
	valueDecoders[int64TypeStr] = func(_ *Decoder, valueJSON any) cadence.Value {
		return cadence.NewInt64(parseInt(int64TypeStr, valueJSON, 64))
	}
	valueDecoders[uint8TypeStr] = func(_ *Decoder, valueJSON any) cadence.Value {
		return cadence.NewUInt8(uint8(parseUint(uint8TypeStr, valueJSON, 8)))
	}
	valueDecoders[uint16TypeStr] = func(_ *Decoder, valueJSON any) cadence.Value {
		return cadence.NewUInt16(uint16(parseUint(uint16TypeStr, valueJSON, 16)))
	}
	valueDecoders[uint32TypeStr] = func(_ *Decoder, valueJSON any) cadence.Value {
		return cadence.NewUInt32(uint32(parseUint(uint32TypeStr, valueJSON, 32)))
	}
	valueDecoders[uint64TypeStr] = func(_ *Decoder, valueJSON any) cadence.Value {
		return cadence.NewUInt64(parseUint(uint64TypeStr, valueJSON, 64))
	}
	valueDecoders[word8TypeStr] = func(_ *Decoder, valueJSON any) cadence.Value {
		return cadence.NewWord8(uint8(parseUint(word8TypeStr, valueJSON, 8)))
	}
	valueDecoders[word16TypeStr] = func(_ *Decoder, valueJSON any) cadence.Value {
		return cadence.NewWord16(uint16(parseUint(word16TypeStr, valueJSON, 16)))
	}
	valueDecoders[word32TypeStr] = func(_ *Decoder, valueJSON any) cadence.Value {
		return cadence.NewWord32(uint32(parseUint(word32TypeStr, valueJSON, 32)))
	}
	valueDecoders[word64TypeStr] = func(_ *Decoder, valueJSON any) cadence.Value {
		return cadence.NewWord64(parseUint(word64TypeStr, valueJSON, 64))
	}

	valueDecoders[fix64TypeStr] = fixedPointDecoder(fix64TypeStr, fallible(cadence.NewFix64))
	valueDecoders[ufix64TypeStr] = fixedPointDecoder(ufix64TypeStr, fallible(cadence.NewUFix64))

	valueDecoders[arrayTypeStr] = (*Decoder).decodeArray
	valueDecoders[dictionaryTypeStr] = (*Decoder).decodeDictionary

	valueDecoders[structTypeStr] = compositeDecoder(func(c composite) cadence.Value {
		return cadence.NewStruct(c.values).
			WithType(cadence.NewStructType(c.location, c.qualifiedIdentifier, c.fields, nil))
	})
	valueDecoders[resourceTypeStr] = compositeDecoder(func(c composite) cadence.Value {
		return cadence.NewResource(c.values).
			WithType(cadence.NewResourceType(c.location, c.qualifiedIdentifier, c.fields, nil))
	})
	valueDecoders[contractTypeStr] = compositeDecoder(func(c composite) cadence.Value {
		return cadence.NewContract(c.values).
			WithType(cadence.NewContractType(c.location, c.qualifiedIdentifier, c.fields, nil))
	})
	valueDecoders[enumTypeStr] = compositeDecoder(func(c composite) cadence.Value {
		return cadence.NewEnum(c.values).
			WithType(cadence.NewEnumType(c.location, c.qualifiedIdentifier, nil, c.fields, nil))
	})
	valueDecoders[eventTypeStr] = (*Decoder).decodeEvent

	valueDecoders[inclusiveRangeTypeStr] = (*Decoder).decodeInclusiveRange
	valueDecoders[pathTypeStr] = (*Decoder).decodePath
	valueDecoders[typeTypeStr] = (*Decoder).decodeTypeValue
	valueDecoders[capabilityTypeStr] = (*Decoder).decodeCapability
	valueDecoders[functionTypeStr] = (*Decoder).decodeFunction

	valueTypes = sortedKeys(valueDecoders, voidTypeStr)
}

// fallible adapts a constructor of a concrete value type to a value constructor
func fallible[In any, T cadence.Value](construct func(In) (T, error)) func(In) (cadence.Value, error) {
	return func(in In) (cadence.Value, error) {
		return construct(in)
	}
}

func (d *Decoder) decodeValue(valueJSON any) cadence.Value {
	obj := toObject(valueJSON)

	typeStr := field(d, obj, typeKey, toString)

	// Void has no value
	if typeStr == voidTypeStr {
		if len(obj) != 1 {
			panic(errors.NewDefaultUserError("invalid additional fields in Void value"))
		}
		return cadence.NewVoid()
	}

	if len(obj) != 2 {
		panic(errors.NewDefaultUserError(
			"expected JSON object with keys `%s` and `%s`",
			typeKey,
			valueKey,
		))
	}

	return field(d, obj, valueKey, func(valueJSON any) cadence.Value {
		decode, ok := valueDecoders[typeStr]
		if !ok {
			panic(errors.NewDefaultUserError(
				"invalid type: %s%s",
				typeStr,
				suggestion(typeStr, valueTypes),
			))
		}

		return decode(d, valueJSON)
	})
}

func (d *Decoder) decodeOptional(valueJSON any) cadence.Value {
	if valueJSON == nil {
		return cadence.NewOptional(nil)
	}

	return cadence.NewOptional(d.decodeValue(valueJSON))
}

// decodeBool also accepts the string booleans of older encoders
func (d *Decoder) decodeBool(valueJSON any) cadence.Value {
	s, ok := valueJSON.(string)
	if !ok {
		return cadence.NewBool(toBool(valueJSON))
	}

	b, err := strconv.ParseBool(strings.ToLower(s))
	if err != nil {
		panic(errors.NewDefaultUserError("invalid Bool: %s", s))
	}

	return cadence.NewBool(b)
}

func (d *Decoder) decodeCharacter(valueJSON any) cadence.Value {
	char, err := cadence.NewCharacter(toString(valueJSON))
	if err != nil {
		panic(errors.NewDefaultUserError("invalid Character: %w", err))
	}
	return char
}

func (d *Decoder) decodeString(valueJSON any) cadence.Value {
	str, err := cadence.NewString(toString(valueJSON))
	if err != nil {
		panic(errors.NewDefaultUserError("invalid String: %w", err))
	}
	return str
}

func (d *Decoder) decodeAddress(valueJSON any) cadence.Value {
	return toAddress(valueJSON)
}

// toAddress decodes a hex address, which must have the 0x prefix
func toAddress(valueJSON any) cadence.Address {
	s := toString(valueJSON)

	hexAddress, ok := strings.CutPrefix(s, common.AddressPrefix)
	if !ok {
		if len(s) < len(common.AddressPrefix) {
			panic(errors.NewDefaultUserError("missing address prefix: `%s`", common.AddressPrefix))
		}

		actualPrefix := s[:len(common.AddressPrefix)]

		// invalid UTF-8 is shown as hex
		if !utf8.ValidString(actualPrefix) {
			panic(errors.NewDefaultUserError(
				"invalid address prefix: (shown as hex) expected %x, got %x",
				common.AddressPrefix,
				actualPrefix,
			))
		}

		panic(errors.NewDefaultUserError(
			"invalid address prefix: expected %s, got %s",
			common.AddressPrefix,
			actualPrefix,
		))
	}

	b, err := hex.DecodeString(hexAddress)
	if err != nil {
		panic(errors.NewDefaultUserError("invalid address: %w", err))
	}

	address, err := cadence.BytesToAddress(b)
	if err != nil {
		panic(errors.NewDefaultUserError("invalid address: %w", err))
	}

	return address
}

func parseInt(typeName string, valueJSON any, bitSize int) int64 {
	i, err := strconv.ParseInt(toString(valueJSON), 10, bitSize)
	if err != nil {
		panic(errors.NewDefaultUserError("invalid %s: %w", typeName, err))
	}
	return i
}

func parseUint(typeName string, valueJSON any, bitSize int) uint64 {
	i, err := strconv.ParseUint(toString(valueJSON), 10, bitSize)
	if err != nil {
		panic(errors.NewDefaultUserError("invalid %s: %w", typeName, err))
	}
	return i
}

func bigIntDecoder(typeName string, construct func(*big.Int) (cadence.Value, error)) valueDecoder {
	return func(_ *Decoder, valueJSON any) cadence.Value {
		s := toString(valueJSON)

		i, ok := new(big.Int).SetString(s, 10)
		if !ok {
			panic(errors.NewDefaultUserError("invalid %s: %s", typeName, s))
		}

		value, err := construct(i)
		if err != nil {
			panic(errors.NewDefaultUserError("invalid %s: %w", typeName, err))
		}

		return value
	}
}

func fixedPointDecoder(typeName string, construct func(string) (cadence.Value, error)) valueDecoder {
	return func(_ *Decoder, valueJSON any) cadence.Value {
		value, err := construct(toString(valueJSON))
		if err != nil {
			panic(errors.NewDefaultUserError("invalid %s: %w", typeName, err))
		}
		return value
	}
}

func (d *Decoder) decodeArray(valueJSON any) cadence.Value {
	return cadence.NewArray(elements(d, valueJSON, d.decodeValue))
}

func (d *Decoder) decodeDictionary(valueJSON any) cadence.Value {
	pairs := elements(d, valueJSON, func(pairJSON any) cadence.KeyValuePair {
		obj := toObject(pairJSON)

		return cadence.KeyValuePair{
			Key:   field(d, obj, keyKey, d.decodeValue),
			Value: field(d, obj, valueKey, d.decodeValue),
		}
	})

	return cadence.NewDictionary(pairs)
}

type compositeTypeID struct {
	typeID              string
	location            common.Location
	qualifiedIdentifier string
}

// composite are the parts shared by all composite values
type composite struct {
	compositeTypeID
	values []cadence.Value
	fields []cadence.Field
}

// builtinCompositeTypeIDs are the composite types declared without a location
var builtinCompositeTypeIDs = map[string]struct{}{
	"PublicKey":          {},
	"HashAlgorithm":      {},
	"SignatureAlgorithm": {},
	"DeploymentResult":   {},
}

func (d *Decoder) decodeCompositeTypeID(valueJSON any) compositeTypeID {
	typeID := toString(valueJSON)

	if typeID != "" && !strings.Contains(typeID, ".") {
		if _, ok := builtinCompositeTypeIDs[typeID]; !ok {
			panic(errors.NewDefaultUserError("invalid type ID for built-in: `%s`", typeID))
		}

		return compositeTypeID{
			typeID:              typeID,
			qualifiedIdentifier: typeID,
		}
	}

	decodeTypeID := common.DecodeTypeID
	if d.locationDecoders != nil {
		decodeTypeID = d.locationDecoders.DecodeTypeID
	}

	location, qualifiedIdentifier, err := decodeTypeID(typeID)
	if err != nil {
		panic(errors.NewDefaultUserError("invalid type ID `%s`: %w", typeID, err))
	}

	return compositeTypeID{
		typeID:              typeID,
		location:            location,
		qualifiedIdentifier: qualifiedIdentifier,
	}
}

func (d *Decoder) decodeComposite(valueJSON any) composite {
	obj := toObject(valueJSON)

	typeID := field(d, obj, idKey, d.decodeCompositeTypeID)

	type namedValue struct {
		name  string
		value cadence.Value
	}

	namedValues := field(d, obj, fieldsKey, func(fieldsJSON any) []namedValue {
		return elements(d, fieldsJSON, func(fieldJSON any) namedValue {
			fieldObj := toObject(fieldJSON)

			return namedValue{
				name:  field(d, fieldObj, nameKey, toString),
				value: field(d, fieldObj, valueKey, d.decodeValue),
			}
		})
	})

	result := composite{
		compositeTypeID: typeID,
		values:          make([]cadence.Value, len(namedValues)),
		fields:          make([]cadence.Field, len(namedValues)),
	}

	for i, entry := range namedValues {
		result.values[i] = entry.value
		result.fields[i] = cadence.NewField(entry.name, entry.value.Type())
	}

	return result
}

func compositeDecoder(construct func(composite) cadence.Value) valueDecoder {
	return func(d *Decoder, valueJSON any) cadence.Value {
		return construct(d.decodeComposite(valueJSON))
	}
}

// decodeEvent decodes an event,
// and converts it using the event registry, if any
func (d *Decoder) decodeEvent(valueJSON any) cadence.Value {
	c := d.decodeComposite(valueJSON)

	event := cadence.NewEvent(c.values).
		WithType(cadence.NewEventType(c.location, c.qualifiedIdentifier, c.fields, nil))

	if d.eventRegistry == nil {
		return event
	}

	typed, err := d.eventRegistry.decode(event)
	if err != nil {
		panic(errors.NewDefaultUserError("invalid event: %w", err))
	}

	return typed
}

func (d *Decoder) decodeInclusiveRange(valueJSON any) cadence.Value {
	obj := toObject(valueJSON)

	start := field(d, obj, startKey, d.decodeValue)
	end := field(d, obj, endKey, d.decodeValue)
	step := field(d, obj, stepKey, d.decodeValue)

	return cadence.NewInclusiveRange(start, end, step).
		WithType(cadence.NewInclusiveRangeType(start.Type()))
}

func (d *Decoder) decodePath(valueJSON any) cadence.Value {
	obj := toObject(valueJSON)

	domain := field(d, obj, domainKey, func(valueJSON any) common.PathDomain {
		return common.PathDomainFromIdentifier(toString(valueJSON))
	})
	identifier := field(d, obj, identifierKey, toString)

	path, err := cadence.NewPath(domain, identifier)
	if err != nil {
		panic(errors.NewDefaultUserError("failed to decode path: %w", err))
	}

	return path
}

func (d *Decoder) decodeTypeValue(valueJSON any) cadence.Value {
	obj := toObject(valueJSON)

	staticType := field(d, obj, staticTypeKey, func(valueJSON any) cadence.Type {
		return d.decodeType(valueJSON, typeDecodingResults{})
	})

	return cadence.NewTypeValue(staticType)
}

func (d *Decoder) decodeCapability(valueJSON any) cadence.Value {
	obj := toObject(valueJSON)

	address := field(d, obj, addressKey, toAddress)
	borrowType := field(d, obj, borrowTypeKey, func(valueJSON any) cadence.Type {
		return d.decodeType(valueJSON, typeDecodingResults{})
	})

	_, hasID := obj[idKey]
	_, hasPath := obj[pathKey]

	switch {
	case d.backwardsCompatible && !hasID:
		path := field(d, obj, pathKey, func(valueJSON any) cadence.Path {
			path, ok := d.decodeValue(valueJSON).(cadence.Path)
			if !ok {
				panic(errors.NewDefaultUserError("invalid capability: missing or invalid path"))
			}
			return path
		})

		return cadence.NewDeprecatedPathCapability(address, path, borrowType)

	case !d.backwardsCompatible && hasPath:
		panic(errors.NewDefaultUserError("invalid capability: path is not supported"))
	}

	id := field(d, obj, idKey, func(valueJSON any) cadence.UInt64 {
		return cadence.NewUInt64(parseUint(uint64TypeStr, valueJSON, 64))
	})

	return cadence.NewCapability(id, address, borrowType)
}

func (d *Decoder) decodeFunction(valueJSON any) cadence.Value {
	obj := toObject(valueJSON)

	functionType := field(d, obj, functionTypeKey, func(valueJSON any) *cadence.FunctionType {
		functionType, ok := d.decodeType(valueJSON, typeDecodingResults{}).(*cadence.FunctionType)
		if !ok {
			panic(errors.NewDefaultUserError("invalid function: invalid function type"))
		}
		return functionType
	})

	return cadence.NewFunction(functionType)
}
