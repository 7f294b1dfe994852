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
)

var (
	Int128TypeMinIntBig  = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	Int128TypeMaxIntBig  = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	Int256TypeMinIntBig  = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 255))
	Int256TypeMaxIntBig  = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1))
	UInt128TypeMinIntBig = new(big.Int)
	UInt128TypeMaxIntBig = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	UInt256TypeMinIntBig = new(big.Int)
	UInt256TypeMaxIntBig = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
)

func checkBigIntRange(typeName string, i *big.Int, min, max *big.Int) error {
	if i.Cmp(min) < 0 {
		return fmt.Errorf("value exceeds min of %s: %s", typeName, i.String())
	}
	if i.Cmp(max) > 0 {
		return fmt.Errorf("value exceeds max of %s: %s", typeName, i.String())
	}
	return nil
}
