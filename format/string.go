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
	"strconv"
	"strings"
	"unicode/utf8"
)

// String returns the Cadence string literal for the given string,
// escaping special and non-ASCII characters
func String(s string) string {
	var builder strings.Builder
	builder.Grow(len(s) + 2)

	builder.WriteByte('"')
	for _, r := range s {
		switch r {
		case 0:
			builder.WriteString(`\0`)
		case '\n':
			builder.WriteString(`\n`)
		case '\r':
			builder.WriteString(`\r`)
		case '\t':
			builder.WriteString(`\t`)
		case '"':
			builder.WriteString(`\"`)
		case '\'':
			builder.WriteString(`\'`)
		case '\\':
			builder.WriteString(`\\`)
		default:
			if r < utf8.RuneSelf && strconv.IsPrint(r) {
				builder.WriteRune(r)
			} else {
				builder.WriteString(`\u{`)
				builder.WriteString(strconv.FormatInt(int64(r), 16))
				builder.WriteByte('}')
			}
		}
	}
	builder.WriteByte('"')

	return builder.String()
}
