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

package format

import (
	"fmt"
	"strings"
)

const Void = "()"

const Nil = "nil"

func Bool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func Array(values []string) string {
	var builder strings.Builder
	builder.WriteByte('[')
	for i, value := range values {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(value)
	}
	builder.WriteByte(']')
	return builder.String()
}

type DictionaryEntry struct {
	Key   string
	Value string
}

func Dictionary(pairs []DictionaryEntry) string {
	var builder strings.Builder
	builder.WriteByte('{')
	for i, p := range pairs {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(p.Key)
		builder.WriteString(": ")
		builder.WriteString(p.Value)
	}
	builder.WriteByte('}')
	return builder.String()
}

type CompositeField struct {
	Name  string
	Value string
}

// Composite returns the display form of a composite value,
// e.g. `S.test.Foo(a: 1, b: "x")`
func Composite(typeID string, fields []CompositeField) string {
	var builder strings.Builder
	builder.WriteString(typeID)
	builder.WriteByte('(')

	for i, field := range fields {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(field.Name)
		builder.WriteString(": ")
		builder.WriteString(field.Value)
	}

	builder.WriteByte(')')
	return builder.String()
}

func Path(domain string, identifier string) string {
	return fmt.Sprintf("/%s/%s", domain, identifier)
}

func TypeValue(typeID string) string {
	return fmt.Sprintf("Type<%s>()", typeID)
}

func Function(functionType string) string {
	return fmt.Sprintf("Function(%s)", functionType)
}

func InclusiveRange(start, end, step string) string {
	return fmt.Sprintf("InclusiveRange(start: %s, end: %s, step: %s)", start, end, step)
}
