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

package access

import (
	"fmt"

	"github.com/onflow/cadence-sdk/flow"
)

type blockSelectorKind uint8

const (
	latestBlockSelector blockSelectorKind = iota
	blockIDSelector
	blockHeightSelector
)

// BlockSelector selects the block against which a script is executed
// or an account is read
type BlockSelector struct {
	kind   blockSelectorKind
	id     flow.Identifier
	height uint64
}

// LatestBlock selects the latest sealed block
func LatestBlock() BlockSelector {
	return BlockSelector{kind: latestBlockSelector}
}

func AtBlockID(id flow.Identifier) BlockSelector {
	return BlockSelector{
		kind: blockIDSelector,
		id:   id,
	}
}

func AtBlockHeight(height uint64) BlockSelector {
	return BlockSelector{
		kind:   blockHeightSelector,
		height: height,
	}
}

func (s BlockSelector) String() string {
	switch s.kind {
	case blockIDSelector:
		return fmt.Sprintf("block %s", s.id)
	case blockHeightSelector:
		return fmt.Sprintf("block at height %d", s.height)
	default:
		return "latest block"
	}
}
