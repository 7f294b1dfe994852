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
	"reflect"
)

// DecodeFields decodes the fields of a composite value into a struct.
// Struct fields are matched by their `cadence` tag, e.g.
//
//	type Deposit struct {
//		Amount UFix64   `cadence:"amount"`
//		To     *Address `cadence:"to"`
//	}
//
// Pointer fields receive optionals, slice fields receive arrays.
func DecodeFields(composite Composite, s any) error {
	v := reflect.ValueOf(s)
	if !v.IsValid() || v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("s must be a pointer to a struct")
	}

	v = v.Elem()
	t := v.Type()

	fieldsMap := FieldsMappedByName(composite)

	for i := 0; i < v.NumField(); i++ {
		structField := t.Field(i)

		fieldName := structField.Tag.Get("cadence")
		if fieldName == "" {
			continue
		}

		fieldValue := v.Field(i)
		if !fieldValue.CanSet() {
			return fmt.Errorf("cannot set field %s", structField.Name)
		}

		cadenceValue, ok := fieldsMap[fieldName]
		if !ok || cadenceValue == nil {
			return fmt.Errorf("%s field not found", fieldName)
		}

		decoded, err := decodeFieldValue(fieldValue.Type(), cadenceValue)
		if err != nil {
			return fmt.Errorf("cannot decode field %s: %w", structField.Name, err)
		}

		fieldValue.Set(decoded)
	}

	return nil
}

func decodeFieldValue(target reflect.Type, value Value) (reflect.Value, error) {
	switch target.Kind() {
	case reflect.Pointer:
		optional, ok := value.(Optional)
		if !ok {
			return reflect.Value{}, fmt.Errorf("expected optional, got %s", goTypeName(value))
		}
		if optional.Value == nil {
			return reflect.Zero(target), nil
		}

		inner, err := decodeFieldValue(target.Elem(), optional.Value)
		if err != nil {
			return reflect.Value{}, err
		}

		pointer := reflect.New(target.Elem())
		pointer.Elem().Set(inner)
		return pointer, nil

	case reflect.Slice:
		array, ok := value.(Array)
		if !ok {
			return reflect.Value{}, fmt.Errorf("expected array, got %s", goTypeName(value))
		}

		slice := reflect.MakeSlice(target, 0, len(array.Values))
		for index, element := range array.Values {
			decoded, err := decodeFieldValue(target.Elem(), element)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("element %d: %w", index, err)
			}
			slice = reflect.Append(slice, decoded)
		}
		return slice, nil
	}

	reflectValue := reflect.ValueOf(value)
	if target.Kind() == reflect.Interface {
		if !reflectValue.Type().Implements(target) {
			return reflect.Value{}, fmt.Errorf(
				"cannot convert %s to %s",
				reflectValue.Type(),
				target,
			)
		}
		converted := reflect.New(target).Elem()
		converted.Set(reflectValue)
		return converted, nil
	}

	if !reflectValue.CanConvert(target) {
		return reflect.Value{}, fmt.Errorf(
			"cannot convert %s to %s",
			reflectValue.Type(),
			target,
		)
	}

	return reflectValue.Convert(target), nil
}
