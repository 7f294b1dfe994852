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
	"math"
	"sort"
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/onflow/cadence-sdk"
	"github.com/onflow/cadence-sdk/common"
	"github.com/onflow/cadence-sdk/errors"
)

// A Decoder decodes JSON-Cadence values and types
type Decoder struct {
	dec *json.Decoder
	// allowUnstructuredStaticTypes accepts static types encoded as their type ID,
	// as produced by format versions before 0.3.0
	allowUnstructuredStaticTypes bool
	// backwardsCompatible accepts encodings of format versions before 1.0.0
	backwardsCompatible bool
	// eventRegistry converts events with a registered type ID into typed events
	eventRegistry    *EventRegistry
	locationDecoders *common.LocationDecoders
	// path of the property currently being decoded, e.g. `.value[1]`
	path []string
}

type Option func(*Decoder)

// WithAllowUnstructuredStaticTypes enables or disables
// the decoding of static types encoded as their type ID (cadence.TypeID)
func WithAllowUnstructuredStaticTypes(allow bool) Option {
	return func(decoder *Decoder) {
		decoder.allowUnstructuredStaticTypes = allow
	}
}

// WithBackwardsCompatibility enables the decoding of older versions of the encoding,
// e.g. path capabilities and authorized references without entitlements
func WithBackwardsCompatibility() Option {
	return func(decoder *Decoder) {
		decoder.backwardsCompatible = true
	}
}

// WithEventRegistry decodes events with a registered type ID into typed events.
// Without a registry, all events are decoded as cadence.Event.
func WithEventRegistry(registry *EventRegistry) Option {
	return func(decoder *Decoder) {
		decoder.eventRegistry = registry
	}
}

// WithLocationDecoders decodes composite type IDs using the given location decoders
func WithLocationDecoders(decoders *common.LocationDecoders) Option {
	return func(decoder *Decoder) {
		decoder.locationDecoders = decoders
	}
}

// Decode returns the Cadence value encoded in b.
//
// It returns an error if b is malformed JSON,
// or does not conform to the JSON-Cadence data interchange format.
func Decode(b []byte, options ...Option) (cadence.Value, error) {
	return NewDecoder(bytes.NewReader(b), options...).Decode()
}

// DecodeType returns the Cadence type encoded in b
func DecodeType(b []byte, options ...Option) (cadence.Type, error) {
	return NewDecoder(bytes.NewReader(b), options...).DecodeType()
}

// DecodeAny decodes a value or a type, depending on the discriminant of the object.
// Objects with a `type` key are decoded as values, objects with a `kind` key as types.
// Already decoded values and types, and objects with neither key,
// are returned unchanged.
func DecodeAny(v any, options ...Option) (any, error) {
	switch v := v.(type) {
	case cadence.Value, cadence.Type:
		return v, nil

	case []byte:
		var decoded any
		if err := json.Unmarshal(v, &decoded); err != nil {
			return nil, errors.NewDefaultUserError("failed to decode JSON: %w", err)
		}
		return DecodeAny(decoded, options...)

	case map[string]any:
		d := NewDecoder(nil, options...)

		var result any
		var decode func()

		if _, ok := v[typeKey]; ok {
			decode = func() {
				result = d.decodeValue(v)
			}
		} else if _, ok := v[kindKey]; ok {
			decode = func() {
				result = d.decodeType(v, typeDecodingResults{})
			}
		} else {
			return v, nil
		}

		if err := d.run(decode); err != nil {
			return nil, err
		}
		return result, nil
	}

	return v, nil
}

// NewDecoder returns a Decoder which reads JSON-Cadence from r
func NewDecoder(r io.Reader, options ...Option) *Decoder {
	d := &Decoder{}

	if r != nil {
		d.dec = json.NewDecoder(r)
	}

	for _, option := range options {
		option(d)
	}

	return d
}

// Decode reads the next JSON-Cadence value
func (d *Decoder) Decode() (cadence.Value, error) {
	obj, err := d.readObject()
	if err != nil {
		return nil, err
	}

	var value cadence.Value
	err = d.run(func() {
		value = d.decodeValue(obj)
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// DecodeType reads the next JSON-Cadence type
func (d *Decoder) DecodeType() (cadence.Type, error) {
	obj, err := d.readObject()
	if err != nil {
		return nil, err
	}

	var ty cadence.Type
	err = d.run(func() {
		ty = d.decodeType(obj, typeDecodingResults{})
	})
	if err != nil {
		return nil, err
	}

	return ty, nil
}

func (d *Decoder) readObject() (map[string]any, error) {
	var obj map[string]any

	if err := d.dec.Decode(&obj); err != nil {
		return nil, errors.NewDefaultUserError("failed to decode JSON: %w", err)
	}

	return obj, nil
}

// run calls f and turns decoding errors raised as panics into a user error,
// which includes the path of the property that failed to decode
func (d *Decoder) run(f func()) (err error) {
	d.path = d.path[:0]

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		cause, ok := r.(error)
		if !ok {
			panic(r)
		}

		message := "failed to decode JSON-Cadence value: %w"
		if len(d.path) > 0 {
			message += " (at " + strings.Join(d.path, "") + ")"
		}

		err = errors.NewDefaultUserError(message, cause)
	}()

	f()

	return nil
}

const (
	typeKey              = "type"
	kindKey              = "kind"
	valueKey             = "value"
	keyKey               = "key"
	nameKey              = "name"
	fieldsKey            = "fields"
	initializersKey      = "initializers"
	idKey                = "id"
	borrowTypeKey        = "borrowType"
	domainKey            = "domain"
	identifierKey        = "identifier"
	staticTypeKey        = "staticType"
	addressKey           = "address"
	pathKey              = "path"
	authorizationKey     = "authorization"
	authorizedKey        = "authorized" // replaced by authorization in 1.0.0
	entitlementsKey      = "entitlements"
	sizeKey              = "size"
	typeIDKey            = "typeID"
	intersectionTypesKey = "types"
	labelKey             = "label"
	parametersKey        = "parameters"
	typeParametersKey    = "typeParameters"
	returnKey            = "return"
	typeBoundKey         = "typeBound"
	purityKey            = "purity"
	functionTypeKey      = "functionType"
	elementKey           = "element"
	startKey             = "start"
	endKey               = "end"
	stepKey              = "step"
)

type jsonObject map[string]any

// at decodes with the given segment appended to the current path
func at[T any](d *Decoder, segment string, f func() T) T {
	d.path = append(d.path, segment)
	result := f()
	d.path = d.path[:len(d.path)-1]
	return result
}

// field decodes the required property key of the object
func field[T any](d *Decoder, obj jsonObject, key string, f func(valueJSON any) T) T {
	valueJSON, ok := obj[key]
	if !ok {
		panic(errors.NewDefaultUserError("missing property: %s", key))
	}

	return at(d, "."+key, func() T {
		return f(valueJSON)
	})
}

// optionalField decodes the property key of the object, if it is present and not null
func optionalField[T any](d *Decoder, obj jsonObject, key string, f func(valueJSON any) T) (result T) {
	if obj[key] == nil {
		return
	}

	return field(d, obj, key, f)
}

// elements decodes each element of the JSON array
func elements[T any](d *Decoder, valueJSON any, f func(elementJSON any) T) []T {
	elementsJSON := toSlice(valueJSON)

	result := make([]T, len(elementsJSON))

	for i, elementJSON := range elementsJSON {
		result[i] = at(d, fmt.Sprintf("[%d]", i), func() T {
			return f(elementJSON)
		})
	}

	return result
}

func toBool(valueJSON any) bool {
	v, ok := valueJSON.(bool)
	if !ok {
		panic(errors.NewDefaultUserError("expected JSON bool, got %s", valueJSON))
	}
	return v
}

func toUInt(valueJSON any) uint {
	v, ok := valueJSON.(float64)
	if !ok {
		panic(errors.NewDefaultUserError("expected JSON number, got %s", valueJSON))
	}
	if v < 0 || v != math.Trunc(v) || v >= math.MaxUint64 {
		panic(errors.NewDefaultUserError("expected non-negative JSON integer, got %v", v))
	}
	return uint(v)
}

func toString(valueJSON any) string {
	v, ok := valueJSON.(string)
	if !ok {
		panic(errors.NewDefaultUserError("expected JSON string, got %s", valueJSON))
	}
	return v
}

func toSlice(valueJSON any) []any {
	v, ok := valueJSON.([]any)
	if !ok {
		panic(errors.NewDefaultUserError("expected JSON array, got %s", valueJSON))
	}
	return v
}

func toObject(valueJSON any) jsonObject {
	v, ok := valueJSON.(map[string]any)
	if !ok {
		panic(errors.NewDefaultUserError("expected JSON object, got %s", valueJSON))
	}
	return v
}

// suggestion returns a hint naming the candidate closest to the given name, if any.
// Candidates must be sorted.
func suggestion(name string, candidates []string) string {
	nameRunes := []rune(name)

	var closest string
	closestDistance := len(name)

	for _, candidate := range candidates {
		distance := levenshtein.DistanceForStrings(
			nameRunes,
			[]rune(candidate),
			levenshtein.DefaultOptions,
		)

		// a candidate which must be replaced entirely is no suggestion
		if distance < closestDistance && distance < len(candidate) {
			closest = candidate
			closestDistance = distance
		}
	}

	if closest == "" {
		return ""
	}

	return fmt.Sprintf(". did you mean `%s`?", closest)
}

func sortedKeys[V any](m map[string]V, extra ...string) []string {
	keys := make([]string, 0, len(m)+len(extra))
	for key := range m {
		keys = append(keys, key)
	}
	keys = append(keys, extra...)
	sort.Strings(keys)
	return keys
}
