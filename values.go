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
	"math/big"
	"strconv"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"

	"github.com/onflow/cadence-sdk/common"
	"github.com/onflow/cadence-sdk/fixedpoint"
	"github.com/onflow/cadence-sdk/format"
)

// Value is the Cadence value hierarchy which is exposed to Go clients.
type Value interface {
	isValue()
	Type() Type
	fmt.Stringer
}

// NumberValue is a value of one of the numeric types
type NumberValue interface {
	Value
	// ToBigInt returns the integer representation of the value.
	// Fixed-point values return their scaled representation.
	ToBigInt() *big.Int
}

// Void

type Void struct{}

var _ Value = Void{}

func NewVoid() Void {
	return Void{}
}

func (Void) isValue() {}

func (Void) Type() Type {
	return VoidType
}

func (Void) String() string {
	return format.Void
}

// Optional

type Optional struct {
	Value Value
}

var _ Value = Optional{}

func NewOptional(value Value) Optional {
	return Optional{Value: value}
}

func (Optional) isValue() {}

func (o Optional) Type() Type {
	if o.Value == nil {
		return NewOptionalType(NeverType)
	}

	return NewOptionalType(o.Value.Type())
}

func (o Optional) String() string {
	if o.Value == nil {
		return format.Nil
	}
	return o.Value.String()
}

// Bool

type Bool bool

var _ Value = Bool(false)

func NewBool(b bool) Bool {
	return Bool(b)
}

func (Bool) isValue() {}

func (Bool) Type() Type {
	return BoolType
}

func (v Bool) String() string {
	return format.Bool(bool(v))
}

// String

type String string

var _ Value = String("")

// NewString returns the normalized (NFC) form of the given string.
// The string must be valid UTF-8.
func NewString(s string) (String, error) {
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("invalid UTF-8 in string: %q", s)
	}
	return String(norm.NFC.String(s)), nil
}

func (String) isValue() {}

func (String) Type() Type {
	return StringType
}

func (v String) String() string {
	return format.String(string(v))
}

// Character

// Character represents a Cadence character, which is a Unicode extended grapheme cluster.
// Hence, use a Go string to be able to hold multiple Unicode code points (Go runes).
// It should consist of exactly one grapheme cluster
type Character string

var _ Value = Character("")

func NewCharacter(s string) (Character, error) {
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("invalid UTF-8 in character: %q", s)
	}
	s = norm.NFC.String(s)
	if uniseg.GraphemeClusterCount(s) != 1 {
		return "", fmt.Errorf("invalid character: expected exactly one grapheme cluster, got %q", s)
	}
	return Character(s), nil
}

func MustNewCharacter(s string) Character {
	char, err := NewCharacter(s)
	if err != nil {
		panic(err)
	}
	return char
}

func (Character) isValue() {}

func (Character) Type() Type {
	return CharacterType
}

func (v Character) String() string {
	return format.String(string(v))
}

// Address

const AddressLength = common.AddressLength

type Address common.Address

var _ Value = Address{}

func NewAddress(b [AddressLength]byte) Address {
	return b
}

// BytesToAddress returns the address for the given bytes,
// left-padded with zeros. More than AddressLength bytes are rejected.
func BytesToAddress(b []byte) (Address, error) {
	address, err := common.BytesToAddress(b)
	if err != nil {
		return Address{}, err
	}
	return Address(address), nil
}

func MustBytesToAddress(b []byte) Address {
	return Address(common.MustBytesToAddress(b))
}

// HexToAddress decodes a hex string, with or without the `0x` prefix
func HexToAddress(h string) (Address, error) {
	address, err := common.HexToAddress(h)
	if err != nil {
		return Address{}, err
	}
	return Address(address), nil
}

func (Address) isValue() {}

func (Address) Type() Type {
	return AddressType
}

func (v Address) Bytes() []byte {
	return v[:]
}

func (v Address) Hex() string {
	return common.Address(v).Hex()
}

func (v Address) HexWithPrefix() string {
	return common.Address(v).HexWithPrefix()
}

func (v Address) String() string {
	return v.HexWithPrefix()
}

// Int

type Int struct {
	Value *big.Int
}

var _ NumberValue = Int{}

func NewInt(i int) Int {
	return Int{big.NewInt(int64(i))}
}

func NewIntFromBig(i *big.Int) Int {
	return Int{i}
}

func (Int) isValue() {}

func (Int) Type() Type {
	return IntType
}

func (v Int) Int() int {
	return int(v.Value.Int64())
}

func (v Int) Big() *big.Int {
	return v.Value
}

func (v Int) ToBigInt() *big.Int {
	return new(big.Int).Set(v.Value)
}

func (v Int) String() string {
	return v.Value.String()
}

// UInt

type UInt struct {
	Value *big.Int
}

var _ NumberValue = UInt{}

func NewUInt(i uint) UInt {
	return UInt{new(big.Int).SetUint64(uint64(i))}
}

func NewUIntFromBig(i *big.Int) (UInt, error) {
	if i.Sign() < 0 {
		return UInt{}, fmt.Errorf("negative input for UInt: %s", i.String())
	}
	return UInt{i}, nil
}

func (UInt) isValue() {}

func (UInt) Type() Type {
	return UIntType
}

func (v UInt) Int() int {
	return int(v.Value.Int64())
}

func (v UInt) Big() *big.Int {
	return v.Value
}

func (v UInt) ToBigInt() *big.Int {
	return new(big.Int).Set(v.Value)
}

func (v UInt) String() string {
	return v.Value.String()
}

// Int128

type Int128 struct {
	Value *big.Int
}

var _ NumberValue = Int128{}

func NewInt128(i int) Int128 {
	return Int128{big.NewInt(int64(i))}
}

func NewInt128FromBig(i *big.Int) (Int128, error) {
	if err := checkBigIntRange("Int128", i, Int128TypeMinIntBig, Int128TypeMaxIntBig); err != nil {
		return Int128{}, err
	}
	return Int128{i}, nil
}

func (Int128) isValue() {}

func (Int128) Type() Type {
	return Int128Type
}

func (v Int128) Int() int {
	return int(v.Value.Int64())
}

func (v Int128) Big() *big.Int {
	return v.Value
}

func (v Int128) ToBigInt() *big.Int {
	return new(big.Int).Set(v.Value)
}

func (v Int128) String() string {
	return v.Value.String()
}

// Int256

type Int256 struct {
	Value *big.Int
}

var _ NumberValue = Int256{}

func NewInt256(i int) Int256 {
	return Int256{big.NewInt(int64(i))}
}

func NewInt256FromBig(i *big.Int) (Int256, error) {
	if err := checkBigIntRange("Int256", i, Int256TypeMinIntBig, Int256TypeMaxIntBig); err != nil {
		return Int256{}, err
	}
	return Int256{i}, nil
}

func (Int256) isValue() {}

func (Int256) Type() Type {
	return Int256Type
}

func (v Int256) Int() int {
	return int(v.Value.Int64())
}

func (v Int256) Big() *big.Int {
	return v.Value
}

func (v Int256) ToBigInt() *big.Int {
	return new(big.Int).Set(v.Value)
}

func (v Int256) String() string {
	return v.Value.String()
}

// UInt128

type UInt128 struct {
	Value *big.Int
}

var _ NumberValue = UInt128{}

func NewUInt128(i uint) UInt128 {
	return UInt128{new(big.Int).SetUint64(uint64(i))}
}

func NewUInt128FromBig(i *big.Int) (UInt128, error) {
	if err := checkBigIntRange("UInt128", i, UInt128TypeMinIntBig, UInt128TypeMaxIntBig); err != nil {
		return UInt128{}, err
	}
	return UInt128{i}, nil
}

func (UInt128) isValue() {}

func (UInt128) Type() Type {
	return UInt128Type
}

func (v UInt128) Int() int {
	return int(v.Value.Int64())
}

func (v UInt128) Big() *big.Int {
	return v.Value
}

func (v UInt128) ToBigInt() *big.Int {
	return new(big.Int).Set(v.Value)
}

func (v UInt128) String() string {
	return v.Value.String()
}

// UInt256

type UInt256 struct {
	Value *big.Int
}

var _ NumberValue = UInt256{}

func NewUInt256(i uint) UInt256 {
	return UInt256{new(big.Int).SetUint64(uint64(i))}
}

func NewUInt256FromBig(i *big.Int) (UInt256, error) {
	if err := checkBigIntRange("UInt256", i, UInt256TypeMinIntBig, UInt256TypeMaxIntBig); err != nil {
		return UInt256{}, err
	}
	return UInt256{i}, nil
}

func (UInt256) isValue() {}

func (UInt256) Type() Type {
	return UInt256Type
}

func (v UInt256) Int() int {
	return int(v.Value.Int64())
}

func (v UInt256) Big() *big.Int {
	return v.Value
}

func (v UInt256) ToBigInt() *big.Int {
	return new(big.Int).Set(v.Value)
}

func (v UInt256) String() string {
	return v.Value.String()
}

// Int8

type Int8 int8

var _ NumberValue = Int8(0)

func NewInt8(v int8) Int8 {
	return Int8(v)
}

func (Int8) isValue() {}

func (Int8) Type() Type {
	return Int8Type
}

func (v Int8) ToBigInt() *big.Int {
	return big.NewInt(int64(v))
}

func (v Int8) String() string {
	return strconv.FormatInt(int64(v), 10)
}

// Int16

type Int16 int16

var _ NumberValue = Int16(0)

func NewInt16(v int16) Int16 {
	return Int16(v)
}

func (Int16) isValue() {}

func (Int16) Type() Type {
	return Int16Type
}

func (v Int16) ToBigInt() *big.Int {
	return big.NewInt(int64(v))
}

func (v Int16) String() string {
	return strconv.FormatInt(int64(v), 10)
}

// Int32

type Int32 int32

var _ NumberValue = Int32(0)

func NewInt32(v int32) Int32 {
	return Int32(v)
}

func (Int32) isValue() {}

func (Int32) Type() Type {
	return Int32Type
}

func (v Int32) ToBigInt() *big.Int {
	return big.NewInt(int64(v))
}

func (v Int32) String() string {
	return strconv.FormatInt(int64(v), 10)
}

// Int64

type Int64 int64

var _ NumberValue = Int64(0)

func NewInt64(v int64) Int64 {
	return Int64(v)
}

func (Int64) isValue() {}

func (Int64) Type() Type {
	return Int64Type
}

func (v Int64) ToBigInt() *big.Int {
	return big.NewInt(int64(v))
}

func (v Int64) String() string {
	return strconv.FormatInt(int64(v), 10)
}

// UInt8

type UInt8 uint8

var _ NumberValue = UInt8(0)

func NewUInt8(v uint8) UInt8 {
	return UInt8(v)
}

func (UInt8) isValue() {}

func (UInt8) Type() Type {
	return UInt8Type
}

func (v UInt8) ToBigInt() *big.Int {
	return new(big.Int).SetUint64(uint64(v))
}

func (v UInt8) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// UInt16

type UInt16 uint16

var _ NumberValue = UInt16(0)

func NewUInt16(v uint16) UInt16 {
	return UInt16(v)
}

func (UInt16) isValue() {}

func (UInt16) Type() Type {
	return UInt16Type
}

func (v UInt16) ToBigInt() *big.Int {
	return new(big.Int).SetUint64(uint64(v))
}

func (v UInt16) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// UInt32

type UInt32 uint32

var _ NumberValue = UInt32(0)

func NewUInt32(v uint32) UInt32 {
	return UInt32(v)
}

func (UInt32) isValue() {}

func (UInt32) Type() Type {
	return UInt32Type
}

func (v UInt32) ToBigInt() *big.Int {
	return new(big.Int).SetUint64(uint64(v))
}

func (v UInt32) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// UInt64

type UInt64 uint64

var _ NumberValue = UInt64(0)

func NewUInt64(v uint64) UInt64 {
	return UInt64(v)
}

func (UInt64) isValue() {}

func (UInt64) Type() Type {
	return UInt64Type
}

func (v UInt64) ToBigInt() *big.Int {
	return new(big.Int).SetUint64(uint64(v))
}

func (v UInt64) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// Word8

type Word8 uint8

var _ NumberValue = Word8(0)

func NewWord8(v uint8) Word8 {
	return Word8(v)
}

func (Word8) isValue() {}

func (Word8) Type() Type {
	return Word8Type
}

func (v Word8) ToBigInt() *big.Int {
	return new(big.Int).SetUint64(uint64(v))
}

func (v Word8) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// Word16

type Word16 uint16

var _ NumberValue = Word16(0)

func NewWord16(v uint16) Word16 {
	return Word16(v)
}

func (Word16) isValue() {}

func (Word16) Type() Type {
	return Word16Type
}

func (v Word16) ToBigInt() *big.Int {
	return new(big.Int).SetUint64(uint64(v))
}

func (v Word16) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// Word32

type Word32 uint32

var _ NumberValue = Word32(0)

func NewWord32(v uint32) Word32 {
	return Word32(v)
}

func (Word32) isValue() {}

func (Word32) Type() Type {
	return Word32Type
}

func (v Word32) ToBigInt() *big.Int {
	return new(big.Int).SetUint64(uint64(v))
}

func (v Word32) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// Word64

type Word64 uint64

var _ NumberValue = Word64(0)

func NewWord64(v uint64) Word64 {
	return Word64(v)
}

func (Word64) isValue() {}

func (Word64) Type() Type {
	return Word64Type
}

func (v Word64) ToBigInt() *big.Int {
	return new(big.Int).SetUint64(uint64(v))
}

func (v Word64) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// Fix64

// Fix64 is a signed fixed-point number with a scale of 8,
// stored as its value multiplied by 10^8
type Fix64 int64

var _ NumberValue = Fix64(0)

// NewFix64 parses a decimal literal, e.g. `-12.5`
func NewFix64(s string) (Fix64, error) {
	v, err := fixedpoint.ParseFix64(s)
	if err != nil {
		return 0, err
	}
	return Fix64(v.Int64()), nil
}

func NewFix64FromParts(negative bool, integer int, fraction uint) (Fix64, error) {
	v, err := fixedpoint.NewFix64(
		negative,
		new(big.Int).SetInt64(int64(integer)),
		new(big.Int).SetUint64(uint64(fraction)),
		fixedpoint.Fix64Scale,
	)
	if err != nil {
		return 0, err
	}
	return Fix64(v.Int64()), nil
}

func (Fix64) isValue() {}

func (Fix64) Type() Type {
	return Fix64Type
}

func (v Fix64) ToBigInt() *big.Int {
	return big.NewInt(int64(v))
}

func (v Fix64) String() string {
	return format.Fix64(int64(v))
}

// UFix64

// UFix64 is an unsigned fixed-point number with a scale of 8
type UFix64 uint64

var _ NumberValue = UFix64(0)

func NewUFix64(s string) (UFix64, error) {
	v, err := fixedpoint.ParseUFix64(s)
	if err != nil {
		return 0, err
	}
	return UFix64(v.Uint64()), nil
}

func NewUFix64FromParts(integer int, fraction uint) (UFix64, error) {
	v, err := fixedpoint.NewUFix64(
		false,
		new(big.Int).SetInt64(int64(integer)),
		new(big.Int).SetUint64(uint64(fraction)),
		fixedpoint.Fix64Scale,
	)
	if err != nil {
		return 0, err
	}
	return UFix64(v.Uint64()), nil
}

func (UFix64) isValue() {}

func (UFix64) Type() Type {
	return UFix64Type
}

func (v UFix64) ToBigInt() *big.Int {
	return new(big.Int).SetUint64(uint64(v))
}

func (v UFix64) String() string {
	return format.UFix64(uint64(v))
}

// Array

type Array struct {
	ArrayType ArrayType
	Values    []Value
}

var _ Value = Array{}

func NewArray(values []Value) Array {
	return Array{Values: values}
}

func (Array) isValue() {}

func (v Array) Type() Type {
	if v.ArrayType == nil {
		return nil
	}
	return v.ArrayType
}

func (v Array) WithType(arrayType ArrayType) Array {
	v.ArrayType = arrayType
	return v
}

func (v Array) String() string {
	values := make([]string, len(v.Values))
	for i, value := range v.Values {
		values[i] = value.String()
	}
	return format.Array(values)
}

// Dictionary

type Dictionary struct {
	DictionaryType *DictionaryType
	Pairs          []KeyValuePair
}

var _ Value = Dictionary{}

func NewDictionary(pairs []KeyValuePair) Dictionary {
	return Dictionary{Pairs: pairs}
}

func (Dictionary) isValue() {}

func (v Dictionary) Type() Type {
	if v.DictionaryType == nil {
		return nil
	}
	return v.DictionaryType
}

func (v Dictionary) WithType(dictionaryType *DictionaryType) Dictionary {
	v.DictionaryType = dictionaryType
	return v
}

func (v Dictionary) String() string {
	pairs := make([]format.DictionaryEntry, len(v.Pairs))
	for i, pair := range v.Pairs {
		pairs[i] = format.DictionaryEntry{
			Key:   pair.Key.String(),
			Value: pair.Value.String(),
		}
	}
	return format.Dictionary(pairs)
}

// KeyValuePair

type KeyValuePair struct {
	Key   Value
	Value Value
}

// Composite

// Composite is a struct, resource, event, contract, or enum value.
// Fields are ordered like the fields of the composite type.
type Composite interface {
	Value
	CompositeType() CompositeType
	FieldValues() []Value
}

// Struct

type Struct struct {
	StructType *StructType
	Fields     []Value
}

var _ Composite = Struct{}

func NewStruct(fields []Value) Struct {
	return Struct{Fields: fields}
}

func (Struct) isValue() {}

func (v Struct) Type() Type {
	if v.StructType == nil {
		return nil
	}
	return v.StructType
}

func (v Struct) WithType(typ *StructType) Struct {
	v.StructType = typ
	return v
}

func (v Struct) CompositeType() CompositeType {
	if v.StructType == nil {
		return nil
	}
	return v.StructType
}

func (v Struct) FieldValues() []Value {
	return v.Fields
}

func (v Struct) String() string {
	return formatComposite(v)
}

// Resource

type Resource struct {
	ResourceType *ResourceType
	Fields       []Value
}

var _ Composite = Resource{}

func NewResource(fields []Value) Resource {
	return Resource{Fields: fields}
}

func (Resource) isValue() {}

func (v Resource) Type() Type {
	if v.ResourceType == nil {
		return nil
	}
	return v.ResourceType
}

func (v Resource) WithType(typ *ResourceType) Resource {
	v.ResourceType = typ
	return v
}

func (v Resource) CompositeType() CompositeType {
	if v.ResourceType == nil {
		return nil
	}
	return v.ResourceType
}

func (v Resource) FieldValues() []Value {
	return v.Fields
}

func (v Resource) String() string {
	return formatComposite(v)
}

// Event

type Event struct {
	EventType *EventType
	Fields    []Value
}

var _ Composite = Event{}

func NewEvent(fields []Value) Event {
	return Event{Fields: fields}
}

func (Event) isValue() {}

func (v Event) Type() Type {
	if v.EventType == nil {
		return nil
	}
	return v.EventType
}

func (v Event) WithType(typ *EventType) Event {
	v.EventType = typ
	return v
}

func (v Event) CompositeType() CompositeType {
	if v.EventType == nil {
		return nil
	}
	return v.EventType
}

func (v Event) FieldValues() []Value {
	return v.Fields
}

func (v Event) String() string {
	return formatComposite(v)
}

// Contract

type Contract struct {
	ContractType *ContractType
	Fields       []Value
}

var _ Composite = Contract{}

func NewContract(fields []Value) Contract {
	return Contract{Fields: fields}
}

func (Contract) isValue() {}

func (v Contract) Type() Type {
	if v.ContractType == nil {
		return nil
	}
	return v.ContractType
}

func (v Contract) WithType(typ *ContractType) Contract {
	v.ContractType = typ
	return v
}

func (v Contract) CompositeType() CompositeType {
	if v.ContractType == nil {
		return nil
	}
	return v.ContractType
}

func (v Contract) FieldValues() []Value {
	return v.Fields
}

func (v Contract) String() string {
	return formatComposite(v)
}

// Enum

type Enum struct {
	EnumType *EnumType
	Fields   []Value
}

var _ Composite = Enum{}

func NewEnum(fields []Value) Enum {
	return Enum{Fields: fields}
}

func (Enum) isValue() {}

func (v Enum) Type() Type {
	if v.EnumType == nil {
		return nil
	}
	return v.EnumType
}

func (v Enum) WithType(typ *EnumType) Enum {
	v.EnumType = typ
	return v
}

func (v Enum) CompositeType() CompositeType {
	if v.EnumType == nil {
		return nil
	}
	return v.EnumType
}

func (v Enum) FieldValues() []Value {
	return v.Fields
}

func (v Enum) String() string {
	return formatComposite(v)
}

func formatComposite(v Composite) string {
	var typeID string
	var fields []Field

	compositeType := v.CompositeType()
	if compositeType != nil {
		typeID = compositeType.ID()
		fields = compositeType.CompositeFields()
	}

	values := v.FieldValues()

	preparedFields := make([]format.CompositeField, 0, len(values))
	for i, value := range values {
		name := strconv.Itoa(i)
		if i < len(fields) {
			name = fields[i].Identifier
		}
		preparedFields = append(
			preparedFields,
			format.CompositeField{
				Name:  name,
				Value: value.String(),
			},
		)
	}

	return format.Composite(typeID, preparedFields)
}

// SearchFieldByName returns the value of the field with the given name,
// or nil if the composite has no such field
func SearchFieldByName(v Composite, fieldName string) Value {
	compositeType := v.CompositeType()
	if compositeType == nil {
		return nil
	}

	values := v.FieldValues()
	for i, field := range compositeType.CompositeFields() {
		if field.Identifier == fieldName && i < len(values) {
			return values[i]
		}
	}
	return nil
}

// FieldsMappedByName returns the field values of the composite, keyed by field name
func FieldsMappedByName(v Composite) map[string]Value {
	compositeType := v.CompositeType()
	if compositeType == nil {
		return nil
	}

	fields := compositeType.CompositeFields()
	values := v.FieldValues()

	fieldsMap := make(map[string]Value, len(fields))
	for i, field := range fields {
		if i >= len(values) {
			break
		}
		fieldsMap[field.Identifier] = values[i]
	}

	return fieldsMap
}

// Path

type Path struct {
	Domain     common.PathDomain
	Identifier string
}

var _ Value = Path{}

func NewPath(domain common.PathDomain, identifier string) (Path, error) {
	if domain == common.PathDomainUnknown {
		return Path{}, fmt.Errorf("invalid path domain: %s", domain)
	}
	return Path{
		Domain:     domain,
		Identifier: identifier,
	}, nil
}

func MustNewPath(domain common.PathDomain, identifier string) Path {
	path, err := NewPath(domain, identifier)
	if err != nil {
		panic(err)
	}
	return path
}

func (Path) isValue() {}

func (v Path) Type() Type {
	switch v.Domain {
	case common.PathDomainStorage:
		return StoragePathType
	case common.PathDomainPrivate:
		return PrivatePathType
	case common.PathDomainPublic:
		return PublicPathType
	}

	return PathType
}

func (v Path) String() string {
	return format.Path(
		v.Domain.Identifier(),
		v.Identifier,
	)
}

// Capability

type Capability struct {
	BorrowType Type
	Address    Address
	ID         UInt64
	// DeprecatedPath is only set for capabilities
	// decoded from the older path-based format
	DeprecatedPath *Path
}

var _ Value = Capability{}

func NewCapability(
	id UInt64,
	address Address,
	borrowType Type,
) Capability {
	return Capability{
		ID:         id,
		Address:    address,
		BorrowType: borrowType,
	}
}

func NewDeprecatedPathCapability(
	address Address,
	path Path,
	borrowType Type,
) Capability {
	return Capability{
		DeprecatedPath: &path,
		Address:        address,
		BorrowType:     borrowType,
	}
}

func (Capability) isValue() {}

func (v Capability) Type() Type {
	return NewCapabilityType(v.BorrowType)
}

func (v Capability) String() string {
	if v.DeprecatedPath != nil {
		return format.DeprecatedPathCapability(
			typeIDOrEmpty(v.BorrowType),
			v.Address.String(),
			v.DeprecatedPath.String(),
		)
	}

	return format.Capability(
		typeIDOrEmpty(v.BorrowType),
		v.Address.String(),
		v.ID.String(),
	)
}

// TypeValue

type TypeValue struct {
	StaticType Type
}

var _ Value = TypeValue{}

func NewTypeValue(staticType Type) TypeValue {
	return TypeValue{
		StaticType: staticType,
	}
}

func (TypeValue) isValue() {}

func (TypeValue) Type() Type {
	return MetaType
}

func (v TypeValue) String() string {
	return format.TypeValue(typeIDOrEmpty(v.StaticType))
}

// Function

type Function struct {
	FunctionType *FunctionType
}

var _ Value = Function{}

func NewFunction(functionType *FunctionType) Function {
	return Function{
		FunctionType: functionType,
	}
}

func (Function) isValue() {}

func (v Function) Type() Type {
	if v.FunctionType == nil {
		return nil
	}
	return v.FunctionType
}

func (v Function) String() string {
	var functionType string
	if v.FunctionType != nil {
		functionType = v.FunctionType.ID()
	}
	return format.Function(functionType)
}

// InclusiveRange

type InclusiveRange struct {
	InclusiveRangeType *InclusiveRangeType
	Start              Value
	End                Value
	Step               Value
}

var _ Value = &InclusiveRange{}

func NewInclusiveRange(start, end, step Value) *InclusiveRange {
	return &InclusiveRange{
		Start: start,
		End:   end,
		Step:  step,
	}
}

func (*InclusiveRange) isValue() {}

func (v *InclusiveRange) Type() Type {
	if v.InclusiveRangeType != nil {
		return v.InclusiveRangeType
	}
	if v.Start == nil {
		return nil
	}
	return NewInclusiveRangeType(v.Start.Type())
}

func (v *InclusiveRange) WithType(typ *InclusiveRangeType) *InclusiveRange {
	v.InclusiveRangeType = typ
	return v
}

func (v *InclusiveRange) String() string {
	return format.InclusiveRange(
		v.Start.String(),
		v.End.String(),
		v.Step.String(),
	)
}
