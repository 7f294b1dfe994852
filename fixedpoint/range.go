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

package fixedpoint

import (
	"math"
	"math/big"
)

const Fix64Scale = 8
const Fix64Factor = 100_000_000

// Range is the inclusive range of the scaled values of a fixed-point type
type Range struct {
	Min *big.Int
	Max *big.Int
}

var Fix64Range = Range{
	Min: big.NewInt(math.MinInt64),
	Max: big.NewInt(math.MaxInt64),
}

var UFix64Range = Range{
	Min: new(big.Int),
	Max: new(big.Int).SetUint64(math.MaxUint64),
}

func (r Range) Contains(scaled *big.Int) bool {
	return scaled.Cmp(r.Min) >= 0 &&
		scaled.Cmp(r.Max) <= 0
}

var ten = big.NewInt(10)

func pow10(n uint) *big.Int {
	return new(big.Int).Exp(ten, new(big.Int).SetUint64(uint64(n)), nil)
}

// Rescale combines an unsigned integer part and a fractional part with scale digits
// into a single integer with targetScale digits.
// Fractional digits beyond targetScale are truncated.
func Rescale(
	negative bool,
	integer *big.Int,
	fractional *big.Int,
	scale uint,
	targetScale uint,
) *big.Int {
	result := new(big.Int).Mul(integer, pow10(targetScale))

	scaledFractional := new(big.Int).Set(fractional)
	switch {
	case scale < targetScale:
		scaledFractional.Mul(scaledFractional, pow10(targetScale-scale))
	case scale > targetScale:
		scaledFractional.Quo(scaledFractional, pow10(scale-targetScale))
	}

	result.Add(result, scaledFractional)

	if negative {
		result.Neg(result)
	}

	return result
}
