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

	"github.com/onflow/cadence-sdk/fixedpoint"
)

// Fix64 formats a Fix64 value scaled by fixedpoint.Fix64Factor,
// always with all fractional digits, e.g. `-0.50000000`
func Fix64(v int64) string {
	if v < 0 {
		// the magnitude of math.MinInt64 does not fit into an int64
		return "-" + UFix64(uint64(-(v + 1))+1)
	}
	return UFix64(uint64(v))
}

// UFix64 formats a UFix64 value scaled by fixedpoint.Fix64Factor
func UFix64(v uint64) string {
	const factor = uint64(fixedpoint.Fix64Factor)

	fractional := strconv.FormatUint(v%factor, 10)

	return strconv.FormatUint(v/factor, 10) +
		"." +
		PadLeft(fractional, '0', fixedpoint.Fix64Scale)
}
