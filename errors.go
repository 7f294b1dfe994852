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

// IncorrectTypeError is returned when a value or type
// is narrowed to a concrete type it is not
type IncorrectTypeError struct {
	Expected string
	Actual   string
}

func (e IncorrectTypeError) Error() string {
	return fmt.Sprintf(
		"incorrect type: expected %s, got %s",
		e.Expected,
		e.Actual,
	)
}

func (IncorrectTypeError) IsUserError() {}

func goTypeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

// As narrows the value to the concrete value type T
func As[T Value](value Value) (T, error) {
	result, ok := value.(T)
	if !ok {
		var empty T
		return empty, IncorrectTypeError{
			Expected: reflect.TypeFor[T]().String(),
			Actual:   goTypeName(value),
		}
	}
	return result, nil
}

// AsType narrows the type to the concrete type T
func AsType[T Type](ty Type) (T, error) {
	result, ok := ty.(T)
	if !ok {
		var empty T
		return empty, IncorrectTypeError{
			Expected: reflect.TypeFor[T]().String(),
			Actual:   goTypeName(ty),
		}
	}
	return result, nil
}
