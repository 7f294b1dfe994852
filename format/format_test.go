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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {

	t.Parallel()

	assert.Equal(t,
		`"test xyz \u{1f496}"`,
		String("test xyz \U0001f496"),
	)

	assert.Equal(t,
		`"Foo \u{a9} bar \u{1d306} baz \u{2603} qux"`,
		// "Foo © bar 𝌆 baz ☃ qux"
		String("\x46\x6F\x6F\x20\xC2\xA9\x20\x62\x61\x72\x20\xF0\x9D\x8C\x86\x20\x62\x61\x7A\x20\xE2\x98\x83\x20\x71\x75\x78"),
	)

	assert.Equal(t, `"\0"`, String("\x00"))
	assert.Equal(t, `"\n"`, String("\n"))
	assert.Equal(t, `"\r"`, String("\r"))
	assert.Equal(t, `"\t"`, String("\t"))
	assert.Equal(t, `"\\"`, String("\\"))
	assert.Equal(t, `"\""`, String(`"`))
}

func TestFix64(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "789.00123010", Fix64(78900123010))
	assert.Equal(t, "1234.05600000", Fix64(123405600000))
	assert.Equal(t, "-12345.00678900", Fix64(-1234500678900))
	assert.Equal(t, "-0.50000000", Fix64(-50000000))
	assert.Equal(t, "0.00000000", Fix64(0))
	assert.Equal(t, "-92233720368.54775808", Fix64(-9223372036854775808))
}

func TestUFix64(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "99999999999.70000000", UFix64(9999999999970000000))
	assert.Equal(t, "184467440737.09551615", UFix64(18446744073709551615))
	assert.Equal(t, "0.00000001", UFix64(1))
}

func TestComposite(t *testing.T) {

	t.Parallel()

	assert.Equal(t,
		`S.test.Foo(a: 1, b: "x")`,
		Composite(
			"S.test.Foo",
			[]CompositeField{
				{Name: "a", Value: "1"},
				{Name: "b", Value: `"x"`},
			},
		),
	)

	assert.Equal(t, "S.test.Empty()", Composite("S.test.Empty", nil))
}

func TestCollections(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "[1, 2]", Array([]string{"1", "2"}))
	assert.Equal(t, "[]", Array(nil))
	assert.Equal(t,
		`{"a": 1, "b": 2}`,
		Dictionary([]DictionaryEntry{
			{Key: `"a"`, Value: "1"},
			{Key: `"b"`, Value: "2"},
		}),
	)
}

func TestCapability(t *testing.T) {

	t.Parallel()

	assert.Equal(t,
		"Capability<&Int>(address: 0x0000000000000001, id: 3)",
		Capability("&Int", "0x0000000000000001", "3"),
	)
	assert.Equal(t,
		"Capability(address: 0x0000000000000001, path: /public/foo)",
		DeprecatedPathCapability("", "0x0000000000000001", "/public/foo"),
	)
}
