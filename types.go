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
	"fmt"
	"sort"
	"strings"

	"github.com/onflow/cadence-sdk/common"
)

// Type is the static type of a Cadence value,
// known as a kind in the JSON-Cadence interchange format.
type Type interface {
	isType()
	// ID returns the canonical type ID.
	// Two types are equal if their IDs are equal.
	ID() string
	Equal(other Type) bool
}

// TypeID is a type which is only known by its type ID.
// This type should not be used when encoding values,
// and should only be used for decoding values that were encoded
// using an older format of the JSON encoding (<v0.3.0)
type TypeID string

func (TypeID) isType() {}

func (t TypeID) ID() string {
	return string(t)
}

func (t TypeID) Equal(other Type) bool {
	return typesEqual(t, other)
}

// typesEqual compares two types by their canonical IDs
func typesEqual(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID() == b.ID()
}

func typeIDOrEmpty(t Type) string {
	if t == nil {
		return ""
	}
	return t.ID()
}

// PrimitiveType

// PrimitiveType is a type without type arguments,
// e.g. Int or AnyStruct. Its value is its type ID.
type PrimitiveType string

const (
	AnyType                    PrimitiveType = "Any"
	AnyStructType              PrimitiveType = "AnyStruct"
	AnyResourceType            PrimitiveType = "AnyResource"
	HashableStructType         PrimitiveType = "HashableStruct"
	MetaType                   PrimitiveType = "Type"
	VoidType                   PrimitiveType = "Void"
	NeverType                  PrimitiveType = "Never"
	BoolType                   PrimitiveType = "Bool"
	StringType                 PrimitiveType = "String"
	CharacterType              PrimitiveType = "Character"
	BytesType                  PrimitiveType = "Bytes"
	AddressType                PrimitiveType = "Address"
	NumberType                 PrimitiveType = "Number"
	SignedNumberType           PrimitiveType = "SignedNumber"
	IntegerType                PrimitiveType = "Integer"
	SignedIntegerType          PrimitiveType = "SignedInteger"
	FixedPointType             PrimitiveType = "FixedPoint"
	SignedFixedPointType       PrimitiveType = "SignedFixedPoint"
	IntType                    PrimitiveType = "Int"
	Int8Type                   PrimitiveType = "Int8"
	Int16Type                  PrimitiveType = "Int16"
	Int32Type                  PrimitiveType = "Int32"
	Int64Type                  PrimitiveType = "Int64"
	Int128Type                 PrimitiveType = "Int128"
	Int256Type                 PrimitiveType = "Int256"
	UIntType                   PrimitiveType = "UInt"
	UInt8Type                  PrimitiveType = "UInt8"
	UInt16Type                 PrimitiveType = "UInt16"
	UInt32Type                 PrimitiveType = "UInt32"
	UInt64Type                 PrimitiveType = "UInt64"
	UInt128Type                PrimitiveType = "UInt128"
	UInt256Type                PrimitiveType = "UInt256"
	Word8Type                  PrimitiveType = "Word8"
	Word16Type                 PrimitiveType = "Word16"
	Word32Type                 PrimitiveType = "Word32"
	Word64Type                 PrimitiveType = "Word64"
	Fix64Type                  PrimitiveType = "Fix64"
	UFix64Type                 PrimitiveType = "UFix64"
	PathType                   PrimitiveType = "Path"
	CapabilityPathType         PrimitiveType = "CapabilityPath"
	StoragePathType            PrimitiveType = "StoragePath"
	PublicPathType             PrimitiveType = "PublicPath"
	PrivatePathType            PrimitiveType = "PrivatePath"
	AccountType                PrimitiveType = "Account"
	AuthAccountType            PrimitiveType = "AuthAccount"
	PublicAccountType          PrimitiveType = "PublicAccount"
	AuthAccountKeysType        PrimitiveType = "AuthAccount.Keys"
	PublicAccountKeysType      PrimitiveType = "PublicAccount.Keys"
	AuthAccountContractsType   PrimitiveType = "AuthAccount.Contracts"
	PublicAccountContractsType PrimitiveType = "PublicAccount.Contracts"
	DeployedContractType       PrimitiveType = "DeployedContract"
	AccountKeyType             PrimitiveType = "AccountKey"
	BlockType                  PrimitiveType = "Block"
)

// PrimitiveTypes are all primitive types, in declaration order
var PrimitiveTypes = []PrimitiveType{
	AnyType,
	AnyStructType,
	AnyResourceType,
	HashableStructType,
	MetaType,
	VoidType,
	NeverType,
	BoolType,
	StringType,
	CharacterType,
	BytesType,
	AddressType,
	NumberType,
	SignedNumberType,
	IntegerType,
	SignedIntegerType,
	FixedPointType,
	SignedFixedPointType,
	IntType,
	Int8Type,
	Int16Type,
	Int32Type,
	Int64Type,
	Int128Type,
	Int256Type,
	UIntType,
	UInt8Type,
	UInt16Type,
	UInt32Type,
	UInt64Type,
	UInt128Type,
	UInt256Type,
	Word8Type,
	Word16Type,
	Word32Type,
	Word64Type,
	Fix64Type,
	UFix64Type,
	PathType,
	CapabilityPathType,
	StoragePathType,
	PublicPathType,
	PrivatePathType,
	AccountType,
	AuthAccountType,
	PublicAccountType,
	AuthAccountKeysType,
	PublicAccountKeysType,
	AuthAccountContractsType,
	PublicAccountContractsType,
	DeployedContractType,
	AccountKeyType,
	BlockType,
}

var primitiveTypesByID = func() map[string]PrimitiveType {
	types := make(map[string]PrimitiveType, len(PrimitiveTypes))
	for _, ty := range PrimitiveTypes {
		types[string(ty)] = ty
	}
	return types
}()

// PrimitiveTypeFromID returns the primitive type with the given ID, if any
func PrimitiveTypeFromID(id string) (PrimitiveType, bool) {
	ty, ok := primitiveTypesByID[id]
	return ty, ok
}

func (PrimitiveType) isType() {}

func (t PrimitiveType) ID() string {
	return string(t)
}

func (t PrimitiveType) Equal(other Type) bool {
	otherType, ok := other.(PrimitiveType)
	return ok && t == otherType
}

// OptionalType

type OptionalType struct {
	Type Type
}

var _ Type = &OptionalType{}

func NewOptionalType(typ Type) *OptionalType {
	return &OptionalType{Type: typ}
}

func (*OptionalType) isType() {}

func (t *OptionalType) ID() string {
	return fmt.Sprintf("%s?", typeIDOrEmpty(t.Type))
}

func (t *OptionalType) Equal(other Type) bool {
	otherOptional, ok := other.(*OptionalType)
	if !ok {
		return false
	}

	return typesEqual(t.Type, otherOptional.Type)
}

// ArrayType

type ArrayType interface {
	Type
	Element() Type
}

// VariableSizedArrayType

type VariableSizedArrayType struct {
	ElementType Type
}

var _ ArrayType = &VariableSizedArrayType{}

func NewVariableSizedArrayType(elementType Type) *VariableSizedArrayType {
	return &VariableSizedArrayType{ElementType: elementType}
}

func (*VariableSizedArrayType) isType() {}

func (t *VariableSizedArrayType) ID() string {
	return fmt.Sprintf("[%s]", typeIDOrEmpty(t.ElementType))
}

func (t *VariableSizedArrayType) Element() Type {
	return t.ElementType
}

func (t *VariableSizedArrayType) Equal(other Type) bool {
	otherType, ok := other.(*VariableSizedArrayType)
	if !ok {
		return false
	}

	return typesEqual(t.ElementType, otherType.ElementType)
}

// ConstantSizedArrayType

type ConstantSizedArrayType struct {
	ElementType Type
	Size        uint
}

var _ ArrayType = &ConstantSizedArrayType{}

func NewConstantSizedArrayType(size uint, elementType Type) *ConstantSizedArrayType {
	return &ConstantSizedArrayType{
		Size:        size,
		ElementType: elementType,
	}
}

func (*ConstantSizedArrayType) isType() {}

func (t *ConstantSizedArrayType) ID() string {
	return fmt.Sprintf("[%s;%d]", typeIDOrEmpty(t.ElementType), t.Size)
}

func (t *ConstantSizedArrayType) Element() Type {
	return t.ElementType
}

func (t *ConstantSizedArrayType) Equal(other Type) bool {
	otherType, ok := other.(*ConstantSizedArrayType)
	if !ok {
		return false
	}

	return t.Size == otherType.Size &&
		typesEqual(t.ElementType, otherType.ElementType)
}

// DictionaryType

type DictionaryType struct {
	KeyType     Type
	ElementType Type
}

var _ Type = &DictionaryType{}

func NewDictionaryType(keyType Type, elementType Type) *DictionaryType {
	return &DictionaryType{
		KeyType:     keyType,
		ElementType: elementType,
	}
}

func (*DictionaryType) isType() {}

func (t *DictionaryType) ID() string {
	return fmt.Sprintf(
		"{%s:%s}",
		typeIDOrEmpty(t.KeyType),
		typeIDOrEmpty(t.ElementType),
	)
}

func (t *DictionaryType) Equal(other Type) bool {
	otherType, ok := other.(*DictionaryType)
	if !ok {
		return false
	}

	return typesEqual(t.KeyType, otherType.KeyType) &&
		typesEqual(t.ElementType, otherType.ElementType)
}

// Field

type Field struct {
	Type       Type
	Identifier string
}

func NewField(identifier string, typ Type) Field {
	return Field{
		Identifier: identifier,
		Type:       typ,
	}
}

// Parameter

type Parameter struct {
	Type       Type
	Label      string
	Identifier string
}

func NewParameter(
	label string,
	identifier string,
	typ Type,
) Parameter {
	return Parameter{
		Label:      label,
		Identifier: identifier,
		Type:       typ,
	}
}

// TypeParameter

type TypeParameter struct {
	Name      string
	TypeBound Type
}

func NewTypeParameter(
	name string,
	typeBound Type,
) TypeParameter {
	return TypeParameter{
		Name:      name,
		TypeBound: typeBound,
	}
}

// nominalTypeID returns the type ID of a declared type
func nominalTypeID(location common.Location, qualifiedIdentifier string) string {
	if location == nil {
		return qualifiedIdentifier
	}
	return location.TypeID(qualifiedIdentifier)
}

// typeDeclaration is the part common to all declared types
type typeDeclaration struct {
	Location            common.Location
	QualifiedIdentifier string
	Fields              []Field
}

func (*typeDeclaration) isType() {}

func (t *typeDeclaration) ID() string {
	return nominalTypeID(t.Location, t.QualifiedIdentifier)
}

// sameDeclaration reports whether both types are declared
// with the same qualified identifier in the same location.
// Fields are not compared.
func (t *typeDeclaration) sameDeclaration(other *typeDeclaration) bool {
	return common.LocationEquals(t.Location, other.Location) &&
		t.QualifiedIdentifier == other.QualifiedIdentifier
}

// CompositeType

type CompositeType interface {
	Type
	isCompositeType()
	CompositeTypeLocation() common.Location
	CompositeTypeQualifiedIdentifier() string
	CompositeFields() []Field
	SetCompositeFields([]Field)
	CompositeInitializers() [][]Parameter
}

type compositeDeclaration struct {
	typeDeclaration
}

func (*compositeDeclaration) isCompositeType() {}

func (t *compositeDeclaration) CompositeTypeLocation() common.Location {
	return t.Location
}

func (t *compositeDeclaration) CompositeTypeQualifiedIdentifier() string {
	return t.QualifiedIdentifier
}

func (t *compositeDeclaration) CompositeFields() []Field {
	return t.Fields
}

func (t *compositeDeclaration) SetCompositeFields(fields []Field) {
	t.Fields = fields
}

func newCompositeDeclaration(
	location common.Location,
	qualifiedIdentifier string,
	fields []Field,
) compositeDeclaration {
	return compositeDeclaration{
		typeDeclaration: typeDeclaration{
			Location:            location,
			QualifiedIdentifier: qualifiedIdentifier,
			Fields:              fields,
		},
	}
}

// StructType

type StructType struct {
	compositeDeclaration
	Initializers [][]Parameter
}

var _ CompositeType = &StructType{}

func NewStructType(
	location common.Location,
	qualifiedIdentifier string,
	fields []Field,
	initializers [][]Parameter,
) *StructType {
	return &StructType{
		compositeDeclaration: newCompositeDeclaration(location, qualifiedIdentifier, fields),
		Initializers:         initializers,
	}
}

func (t *StructType) CompositeInitializers() [][]Parameter {
	return t.Initializers
}

func (t *StructType) Equal(other Type) bool {
	otherType, ok := other.(*StructType)
	return ok && t.sameDeclaration(&otherType.typeDeclaration)
}

// ResourceType

type ResourceType struct {
	compositeDeclaration
	Initializers [][]Parameter
}

var _ CompositeType = &ResourceType{}

func NewResourceType(
	location common.Location,
	qualifiedIdentifier string,
	fields []Field,
	initializers [][]Parameter,
) *ResourceType {
	return &ResourceType{
		compositeDeclaration: newCompositeDeclaration(location, qualifiedIdentifier, fields),
		Initializers:         initializers,
	}
}

func (t *ResourceType) CompositeInitializers() [][]Parameter {
	return t.Initializers
}

func (t *ResourceType) Equal(other Type) bool {
	otherType, ok := other.(*ResourceType)
	return ok && t.sameDeclaration(&otherType.typeDeclaration)
}

// EventType has exactly one initializer

type EventType struct {
	compositeDeclaration
	Initializer []Parameter
}

var _ CompositeType = &EventType{}

func NewEventType(
	location common.Location,
	qualifiedIdentifier string,
	fields []Field,
	initializer []Parameter,
) *EventType {
	return &EventType{
		compositeDeclaration: newCompositeDeclaration(location, qualifiedIdentifier, fields),
		Initializer:          initializer,
	}
}

func (t *EventType) CompositeInitializers() [][]Parameter {
	return [][]Parameter{t.Initializer}
}

func (t *EventType) Equal(other Type) bool {
	otherType, ok := other.(*EventType)
	return ok && t.sameDeclaration(&otherType.typeDeclaration)
}

// ContractType

type ContractType struct {
	compositeDeclaration
	Initializers [][]Parameter
}

var _ CompositeType = &ContractType{}

func NewContractType(
	location common.Location,
	qualifiedIdentifier string,
	fields []Field,
	initializers [][]Parameter,
) *ContractType {
	return &ContractType{
		compositeDeclaration: newCompositeDeclaration(location, qualifiedIdentifier, fields),
		Initializers:         initializers,
	}
}

func (t *ContractType) CompositeInitializers() [][]Parameter {
	return t.Initializers
}

func (t *ContractType) Equal(other Type) bool {
	otherType, ok := other.(*ContractType)
	return ok && t.sameDeclaration(&otherType.typeDeclaration)
}

// EnumType

type EnumType struct {
	compositeDeclaration
	RawType      Type
	Initializers [][]Parameter
}

var _ CompositeType = &EnumType{}

func NewEnumType(
	location common.Location,
	qualifiedIdentifier string,
	rawType Type,
	fields []Field,
	initializers [][]Parameter,
) *EnumType {
	return &EnumType{
		compositeDeclaration: newCompositeDeclaration(location, qualifiedIdentifier, fields),
		RawType:              rawType,
		Initializers:         initializers,
	}
}

func (t *EnumType) CompositeInitializers() [][]Parameter {
	return t.Initializers
}

func (t *EnumType) Equal(other Type) bool {
	otherType, ok := other.(*EnumType)
	return ok && t.sameDeclaration(&otherType.typeDeclaration)
}

// InterfaceType

type InterfaceType interface {
	Type
	isInterfaceType()
	InterfaceTypeLocation() common.Location
	InterfaceTypeQualifiedIdentifier() string
	InterfaceFields() []Field
	SetInterfaceFields([]Field)
	InterfaceInitializers() [][]Parameter
}

type interfaceDeclaration struct {
	typeDeclaration
	Initializers [][]Parameter
}

func newInterfaceDeclaration(
	location common.Location,
	qualifiedIdentifier string,
	fields []Field,
	initializers [][]Parameter,
) interfaceDeclaration {
	return interfaceDeclaration{
		typeDeclaration: typeDeclaration{
			Location:            location,
			QualifiedIdentifier: qualifiedIdentifier,
			Fields:              fields,
		},
		Initializers: initializers,
	}
}

func (*interfaceDeclaration) isInterfaceType() {}

func (t *interfaceDeclaration) InterfaceTypeLocation() common.Location {
	return t.Location
}

func (t *interfaceDeclaration) InterfaceTypeQualifiedIdentifier() string {
	return t.QualifiedIdentifier
}

func (t *interfaceDeclaration) InterfaceFields() []Field {
	return t.Fields
}

func (t *interfaceDeclaration) SetInterfaceFields(fields []Field) {
	t.Fields = fields
}

func (t *interfaceDeclaration) InterfaceInitializers() [][]Parameter {
	return t.Initializers
}

// StructInterfaceType

type StructInterfaceType struct {
	interfaceDeclaration
}

var _ InterfaceType = &StructInterfaceType{}

func NewStructInterfaceType(
	location common.Location,
	qualifiedIdentifier string,
	fields []Field,
	initializers [][]Parameter,
) *StructInterfaceType {
	return &StructInterfaceType{
		interfaceDeclaration: newInterfaceDeclaration(location, qualifiedIdentifier, fields, initializers),
	}
}

func (t *StructInterfaceType) Equal(other Type) bool {
	otherType, ok := other.(*StructInterfaceType)
	return ok && t.sameDeclaration(&otherType.typeDeclaration)
}

// ResourceInterfaceType

type ResourceInterfaceType struct {
	interfaceDeclaration
}

var _ InterfaceType = &ResourceInterfaceType{}

func NewResourceInterfaceType(
	location common.Location,
	qualifiedIdentifier string,
	fields []Field,
	initializers [][]Parameter,
) *ResourceInterfaceType {
	return &ResourceInterfaceType{
		interfaceDeclaration: newInterfaceDeclaration(location, qualifiedIdentifier, fields, initializers),
	}
}

func (t *ResourceInterfaceType) Equal(other Type) bool {
	otherType, ok := other.(*ResourceInterfaceType)
	return ok && t.sameDeclaration(&otherType.typeDeclaration)
}

// ContractInterfaceType

type ContractInterfaceType struct {
	interfaceDeclaration
}

var _ InterfaceType = &ContractInterfaceType{}

func NewContractInterfaceType(
	location common.Location,
	qualifiedIdentifier string,
	fields []Field,
	initializers [][]Parameter,
) *ContractInterfaceType {
	return &ContractInterfaceType{
		interfaceDeclaration: newInterfaceDeclaration(location, qualifiedIdentifier, fields, initializers),
	}
}

func (t *ContractInterfaceType) Equal(other Type) bool {
	otherType, ok := other.(*ContractInterfaceType)
	return ok && t.sameDeclaration(&otherType.typeDeclaration)
}

// Function

type FunctionPurity int

const (
	FunctionPurityUnspecified FunctionPurity = iota
	FunctionPurityView
)

// FunctionPurityImpure is the purity of functions without a purity annotation
const FunctionPurityImpure = FunctionPurityUnspecified

type FunctionType struct {
	TypeParameters []TypeParameter
	Parameters     []Parameter
	ReturnType     Type
	Purity         FunctionPurity
	// TypeID optionally overrides the structural type ID
	TypeID string
}

var _ Type = &FunctionType{}

func NewFunctionType(
	purity FunctionPurity,
	typeParameters []TypeParameter,
	parameters []Parameter,
	returnType Type,
) *FunctionType {
	return &FunctionType{
		Purity:         purity,
		TypeParameters: typeParameters,
		Parameters:     parameters,
		ReturnType:     returnType,
	}
}

func (*FunctionType) isType() {}

func (t *FunctionType) ID() string {
	if t.TypeID != "" {
		return t.TypeID
	}

	var builder strings.Builder

	if t.Purity == FunctionPurityView {
		builder.WriteString("view ")
	}

	builder.WriteString("fun")

	if len(t.TypeParameters) > 0 {
		builder.WriteByte('<')
		for i, typeParameter := range t.TypeParameters {
			if i > 0 {
				builder.WriteByte(',')
			}
			builder.WriteString(typeParameter.Name)
		}
		builder.WriteByte('>')
	}

	builder.WriteByte('(')
	for i, parameter := range t.Parameters {
		if i > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(typeIDOrEmpty(parameter.Type))
	}
	builder.WriteString("):")

	builder.WriteString(typeIDOrEmpty(t.ReturnType))

	return builder.String()
}

func (t *FunctionType) Equal(other Type) bool {
	otherType, ok := other.(*FunctionType)
	if !ok {
		return false
	}

	if t.Purity != otherType.Purity {
		return false
	}

	// Type parameters

	if len(t.TypeParameters) != len(otherType.TypeParameters) {
		return false
	}

	for i, typeParameter := range t.TypeParameters {
		otherTypeParameter := otherType.TypeParameters[i]

		if !typesEqual(typeParameter.TypeBound, otherTypeParameter.TypeBound) {
			return false
		}
	}

	// Parameters

	if len(t.Parameters) != len(otherType.Parameters) {
		return false
	}

	for i, parameter := range t.Parameters {
		otherParameter := otherType.Parameters[i]
		if !typesEqual(parameter.Type, otherParameter.Type) {
			return false
		}
	}

	return typesEqual(t.ReturnType, otherType.ReturnType)
}

// Authorization

type Authorization interface {
	isAuthorization()
	ID() string
	Equal(auth Authorization) bool
}

type Unauthorized struct{}

var UnauthorizedAccess Authorization = Unauthorized{}

func (Unauthorized) isAuthorization() {}

// ID returns the empty string, unauthorized references have no authorization in their ID
func (Unauthorized) ID() string {
	return ""
}

func (Unauthorized) Equal(other Authorization) bool {
	_, ok := other.(Unauthorized)
	return ok
}

type EntitlementSetKind uint8

const (
	Conjunction EntitlementSetKind = iota
	Disjunction
)

func (k EntitlementSetKind) separator() string {
	if k == Disjunction {
		return "|"
	}
	return ","
}

type EntitlementSetAuthorization struct {
	Entitlements []string
	Kind         EntitlementSetKind
}

var _ Authorization = EntitlementSetAuthorization{}

func NewEntitlementSetAuthorization(
	entitlements []string,
	kind EntitlementSetKind,
) EntitlementSetAuthorization {
	return EntitlementSetAuthorization{
		Entitlements: entitlements,
		Kind:         kind,
	}
}

func (EntitlementSetAuthorization) isAuthorization() {}

// ID returns the sorted entitlements, separated by `,` for conjunctions
// and `|` for disjunctions
func (e EntitlementSetAuthorization) ID() string {
	entitlements := make([]string, len(e.Entitlements))
	copy(entitlements, e.Entitlements)
	sort.Strings(entitlements)

	return strings.Join(entitlements, e.Kind.separator())
}

func (e EntitlementSetAuthorization) Equal(auth Authorization) bool {
	other, ok := auth.(EntitlementSetAuthorization)
	if !ok {
		return false
	}

	return e.Kind == other.Kind &&
		e.ID() == other.ID()
}

type EntitlementMapAuthorization struct {
	TypeID string
}

var _ Authorization = EntitlementMapAuthorization{}

func NewEntitlementMapAuthorization(typeID string) EntitlementMapAuthorization {
	return EntitlementMapAuthorization{
		TypeID: typeID,
	}
}

func (EntitlementMapAuthorization) isAuthorization() {}

func (e EntitlementMapAuthorization) ID() string {
	return e.TypeID
}

func (e EntitlementMapAuthorization) Equal(other Authorization) bool {
	auth, ok := other.(EntitlementMapAuthorization)
	if !ok {
		return false
	}
	return e.TypeID == auth.TypeID
}

// ReferenceType

type ReferenceType struct {
	Type          Type
	Authorization Authorization
}

var _ Type = &ReferenceType{}

func NewReferenceType(
	authorization Authorization,
	typ Type,
) *ReferenceType {
	return &ReferenceType{
		Authorization: authorization,
		Type:          typ,
	}
}

func (*ReferenceType) isType() {}

func (t *ReferenceType) ID() string {
	typeID := typeIDOrEmpty(t.Type)

	if t.Authorization == nil {
		return "&" + typeID
	}

	authorization := t.Authorization.ID()
	if authorization == "" {
		return "&" + typeID
	}

	return fmt.Sprintf("auth(%s)&%s", authorization, typeID)
}

func (t *ReferenceType) Equal(other Type) bool {
	otherType, ok := other.(*ReferenceType)
	if !ok {
		return false
	}

	return t.ID() == otherType.ID()
}

// IntersectionType

type IntersectionType struct {
	Types []Type
	// TypeID optionally overrides the structural type ID
	TypeID string
}

var _ Type = &IntersectionType{}

func NewIntersectionType(types []Type) *IntersectionType {
	return &IntersectionType{
		Types: types,
	}
}

func (*IntersectionType) isType() {}

// ID returns the sorted type IDs of the intersected types, e.g. `{A,B}`
func (t *IntersectionType) ID() string {
	if t.TypeID != "" {
		return t.TypeID
	}

	typeIDs := make([]string, 0, len(t.Types))
	for _, typ := range t.Types {
		typeIDs = append(typeIDs, typeIDOrEmpty(typ))
	}
	sort.Strings(typeIDs)

	return "{" + strings.Join(typeIDs, ",") + "}"
}

func (t *IntersectionType) Equal(other Type) bool {
	otherType, ok := other.(*IntersectionType)
	if !ok {
		return false
	}

	return t.ID() == otherType.ID()
}

// CapabilityType

type CapabilityType struct {
	BorrowType Type
}

var _ Type = &CapabilityType{}

func NewCapabilityType(borrowType Type) *CapabilityType {
	return &CapabilityType{BorrowType: borrowType}
}

func (*CapabilityType) isType() {}

func (t *CapabilityType) ID() string {
	if t.BorrowType == nil {
		return "Capability"
	}
	return fmt.Sprintf("Capability<%s>", t.BorrowType.ID())
}

func (t *CapabilityType) Equal(other Type) bool {
	otherType, ok := other.(*CapabilityType)
	if !ok {
		return false
	}

	return typesEqual(t.BorrowType, otherType.BorrowType)
}

// InclusiveRangeType

type InclusiveRangeType struct {
	ElementType Type
}

var _ Type = &InclusiveRangeType{}

func NewInclusiveRangeType(elementType Type) *InclusiveRangeType {
	return &InclusiveRangeType{
		ElementType: elementType,
	}
}

func (*InclusiveRangeType) isType() {}

func (t *InclusiveRangeType) ID() string {
	return fmt.Sprintf("InclusiveRange<%s>", typeIDOrEmpty(t.ElementType))
}

func (t *InclusiveRangeType) Equal(other Type) bool {
	otherType, ok := other.(*InclusiveRangeType)
	if !ok {
		return false
	}

	return typesEqual(t.ElementType, otherType.ElementType)
}
