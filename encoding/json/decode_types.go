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
	"github.com/onflow/cadence-sdk"
	"github.com/onflow/cadence-sdk/errors"
)

// typeDecodingResults are the nominal types decoded so far, by type ID.
// Fields of a nominal type may refer to the type itself, by its type ID.
type typeDecodingResults map[string]cadence.Type

type typeDecoder func(d *Decoder, obj jsonObject, results typeDecodingResults) cadence.Type

// typeDecoders decode types by their kind. Primitive types are not included.
var typeDecoders = map[string]typeDecoder{}

// kinds are all type kinds, sorted, used for suggestions
var kinds []string

func init() {
	typeDecoders["Optional"] = wrappingTypeDecoder(typeKey, func(ty cadence.Type) cadence.Type {
		return cadence.NewOptionalType(ty)
	})
	typeDecoders["VariableSizedArray"] = wrappingTypeDecoder(typeKey, func(ty cadence.Type) cadence.Type {
		return cadence.NewVariableSizedArrayType(ty)
	})
	typeDecoders["Capability"] = wrappingTypeDecoder(typeKey, func(ty cadence.Type) cadence.Type {
		return cadence.NewCapabilityType(ty)
	})
	typeDecoders["InclusiveRange"] = wrappingTypeDecoder(elementKey, func(ty cadence.Type) cadence.Type {
		return cadence.NewInclusiveRangeType(ty)
	})

	typeDecoders["ConstantSizedArray"] = (*Decoder).decodeConstantSizedArrayType
	typeDecoders["Dictionary"] = (*Decoder).decodeDictionaryType
	typeDecoders["Function"] = (*Decoder).decodeFunctionType
	typeDecoders["Intersection"] = (*Decoder).decodeIntersectionType
	typeDecoders["Reference"] = (*Decoder).decodeReferenceType

	for _, kind := range []string{
		"Contract",
		"ContractInterface",
		"Enum",
		"Event",
		"Resource",
		"ResourceInterface",
		"Struct",
		"StructInterface",
	} {
		typeDecoders[kind] = nominalTypeDecoder(kind)
	}

	primitiveKinds := make([]string, 0, len(cadence.PrimitiveTypes))
	for _, ty := range cadence.PrimitiveTypes {
		primitiveKinds = append(primitiveKinds, ty.ID())
	}
	kinds = sortedKeys(typeDecoders, primitiveKinds...)
}

func (d *Decoder) decodeType(valueJSON any, results typeDecodingResults) cadence.Type {
	if valueJSON == "" {
		return nil
	}

	if typeID, ok := valueJSON.(string); ok {
		if result, ok := results[typeID]; ok {
			return result
		}

		if d.allowUnstructuredStaticTypes {
			return cadence.TypeID(typeID)
		}
	}

	obj := toObject(valueJSON)
	kind := field(d, obj, kindKey, toString)

	if decode, ok := typeDecoders[kind]; ok {
		return decode(d, obj, results)
	}

	if primitiveType, ok := cadence.PrimitiveTypeFromID(kind); ok {
		return primitiveType
	}

	panic(errors.NewDefaultUserError(
		"invalid kind: %s%s",
		kind,
		suggestion(kind, kinds),
	))
}

// typeField decodes the type in the property key of the object
func (d *Decoder) typeField(obj jsonObject, key string, results typeDecodingResults) cadence.Type {
	return field(d, obj, key, func(valueJSON any) cadence.Type {
		return d.decodeType(valueJSON, results)
	})
}

// wrappingTypeDecoder decodes a type which has a single type argument
func wrappingTypeDecoder(key string, construct func(cadence.Type) cadence.Type) typeDecoder {
	return func(d *Decoder, obj jsonObject, results typeDecodingResults) cadence.Type {
		return construct(d.typeField(obj, key, results))
	}
}

func (d *Decoder) decodeConstantSizedArrayType(obj jsonObject, results typeDecodingResults) cadence.Type {
	size := field(d, obj, sizeKey, toUInt)
	elementType := d.typeField(obj, typeKey, results)

	return cadence.NewConstantSizedArrayType(size, elementType)
}

func (d *Decoder) decodeDictionaryType(obj jsonObject, results typeDecodingResults) cadence.Type {
	keyType := d.typeField(obj, keyKey, results)
	valueType := d.typeField(obj, valueKey, results)

	return cadence.NewDictionaryType(keyType, valueType)
}

func (d *Decoder) decodeIntersectionType(obj jsonObject, results typeDecodingResults) cadence.Type {
	types := field(d, obj, intersectionTypesKey, func(valueJSON any) []cadence.Type {
		return elements(d, valueJSON, func(typeJSON any) cadence.Type {
			return d.decodeType(typeJSON, results)
		})
	})

	return cadence.NewIntersectionType(types)
}

func (d *Decoder) decodeReferenceType(obj jsonObject, results typeDecodingResults) cadence.Type {
	referencedType := d.typeField(obj, typeKey, results)

	// before 1.0.0, references had an authorized flag instead of entitlements
	if d.backwardsCompatible {
		if _, ok := obj[authorizedKey]; ok {
			_ = field(d, obj, authorizedKey, toBool)

			return cadence.NewReferenceType(cadence.UnauthorizedAccess, referencedType)
		}
	}

	authorization := field(d, obj, authorizationKey, d.decodeAuthorization)

	return cadence.NewReferenceType(authorization, referencedType)
}

func (d *Decoder) decodeAuthorization(valueJSON any) cadence.Authorization {
	obj := toObject(valueJSON)

	kind := field(d, obj, kindKey, toString)

	entitlements := func() []string {
		return field(d, obj, entitlementsKey, func(valueJSON any) []string {
			return elements(d, valueJSON, func(entitlementJSON any) string {
				return field(d, toObject(entitlementJSON), typeIDKey, toString)
			})
		})
	}

	switch kind {
	case "Unauthorized":
		return cadence.UnauthorizedAccess

	case "EntitlementMapAuthorization":
		typeIDs := entitlements()
		if len(typeIDs) != 1 {
			panic(errors.NewDefaultUserError(
				"invalid entitlement map authorization: exactly one entitlement type ID expected",
			))
		}
		return cadence.NewEntitlementMapAuthorization(typeIDs[0])

	case "EntitlementConjunctionSet":
		return cadence.NewEntitlementSetAuthorization(entitlements(), cadence.Conjunction)

	case "EntitlementDisjunctionSet":
		return cadence.NewEntitlementSetAuthorization(entitlements(), cadence.Disjunction)
	}

	panic(errors.NewDefaultUserError("invalid kind in authorization: %s", kind))
}

func (d *Decoder) decodeFunctionType(obj jsonObject, results typeDecodingResults) cadence.Type {
	purity := cadence.FunctionPurityImpure
	if optionalField(d, obj, purityKey, toString) == "view" {
		purity = cadence.FunctionPurityView
	}

	typeParameters := optionalField(d, obj, typeParametersKey, func(valueJSON any) []cadence.TypeParameter {
		return elements(d, valueJSON, func(typeParameterJSON any) cadence.TypeParameter {
			typeParameterObj := toObject(typeParameterJSON)

			name := field(d, typeParameterObj, nameKey, toString)
			typeBound := optionalField(d, typeParameterObj, typeBoundKey, func(valueJSON any) cadence.Type {
				return d.decodeType(valueJSON, results)
			})

			return cadence.NewTypeParameter(name, typeBound)
		})
	})

	parameters := field(d, obj, parametersKey, func(valueJSON any) []cadence.Parameter {
		return d.decodeParameters(valueJSON, results)
	})

	returnType := d.typeField(obj, returnKey, results)

	return cadence.NewFunctionType(
		purity,
		typeParameters,
		parameters,
		returnType,
	)
}

func (d *Decoder) decodeParameters(valueJSON any, results typeDecodingResults) []cadence.Parameter {
	return elements(d, valueJSON, func(parameterJSON any) cadence.Parameter {
		obj := toObject(parameterJSON)

		return cadence.NewParameter(
			field(d, obj, labelKey, toString),
			field(d, obj, idKey, toString),
			d.typeField(obj, typeKey, results),
		)
	})
}

// nominalTypeDecoder decodes declared types of the given kind.
// The type is registered in the results before its fields are decoded.
func nominalTypeDecoder(kind string) typeDecoder {
	return func(d *Decoder, obj jsonObject, results typeDecodingResults) cadence.Type {
		initializers := field(d, obj, initializersKey, func(valueJSON any) [][]cadence.Parameter {
			return elements(d, valueJSON, func(parametersJSON any) []cadence.Parameter {
				return d.decodeParameters(parametersJSON, results)
			})
		})

		typeID := field(d, obj, typeIDKey, d.decodeCompositeTypeID)
		location := typeID.location
		identifier := typeID.qualifiedIdentifier

		var result cadence.Type
		var setFields func([]cadence.Field)

		switch kind {
		case "Struct":
			ty := cadence.NewStructType(location, identifier, nil, initializers)
			result, setFields = ty, ty.SetCompositeFields

		case "Resource":
			ty := cadence.NewResourceType(location, identifier, nil, initializers)
			result, setFields = ty, ty.SetCompositeFields

		case "Contract":
			ty := cadence.NewContractType(location, identifier, nil, initializers)
			result, setFields = ty, ty.SetCompositeFields

		case "Event":
			if len(initializers) != 1 {
				panic(errors.NewDefaultUserError(
					"invalid event: exactly one initializer expected, got %d",
					len(initializers),
				))
			}
			ty := cadence.NewEventType(location, identifier, nil, initializers[0])
			result, setFields = ty, ty.SetCompositeFields

		case "Enum":
			rawType := d.typeField(obj, typeKey, results)
			ty := cadence.NewEnumType(location, identifier, rawType, nil, initializers)
			result, setFields = ty, ty.SetCompositeFields

		case "StructInterface":
			ty := cadence.NewStructInterfaceType(location, identifier, nil, initializers)
			result, setFields = ty, ty.SetInterfaceFields

		case "ResourceInterface":
			ty := cadence.NewResourceInterfaceType(location, identifier, nil, initializers)
			result, setFields = ty, ty.SetInterfaceFields

		case "ContractInterface":
			ty := cadence.NewContractInterfaceType(location, identifier, nil, initializers)
			result, setFields = ty, ty.SetInterfaceFields

		default:
			panic(errors.NewUnreachableError())
		}

		results[typeID.typeID] = result

		fields := field(d, obj, fieldsKey, func(valueJSON any) []cadence.Field {
			return elements(d, valueJSON, func(fieldJSON any) cadence.Field {
				fieldObj := toObject(fieldJSON)

				return cadence.NewField(
					field(d, fieldObj, idKey, toString),
					d.typeField(fieldObj, typeKey, results),
				)
			})
		})

		setFields(fields)

		return result
	}
}
