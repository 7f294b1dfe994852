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
	"fmt"
	"math/big"
	"strings"
)

// InvalidFixedPointError is returned for malformed fixed-point literals
type InvalidFixedPointError struct {
	Literal string
	Reason  string
}

func (e InvalidFixedPointError) Error() string {
	return fmt.Sprintf("invalid fixed-point literal %q: %s", e.Literal, e.Reason)
}

func (InvalidFixedPointError) IsUserError() {}

// OutOfRangeError is returned when a fixed-point value does not fit its type
type OutOfRangeError struct {
	TypeName string
	Literal  string
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("%s value out of range: %s", e.TypeName, e.Literal)
}

func (OutOfRangeError) IsUserError() {}

type literalParts struct {
	negative   bool
	integer    *big.Int
	fractional *big.Int
	scale      uint
}

// parseLiteral splits a decimal literal like `-12.345` into its parts.
// The sign is only allowed in front of the integer part.
func parseLiteral(s string) (literalParts, error) {
	newError := func(reason string) (literalParts, error) {
		return literalParts{}, InvalidFixedPointError{
			Literal: s,
			Reason:  reason,
		}
	}

	integerPart, fractionalPart, ok := strings.Cut(s, ".")
	if !ok {
		return newError("missing decimal point")
	}

	negative := strings.HasPrefix(integerPart, "-")
	if negative {
		integerPart = integerPart[1:]
	}

	if integerPart == "" {
		return newError("missing integer part")
	}
	if fractionalPart == "" {
		return newError("missing fractional part")
	}
	if !isDecimalDigits(integerPart) {
		return newError("invalid integer part")
	}
	if !isDecimalDigits(fractionalPart) {
		return newError("invalid fractional part")
	}

	integer, ok := new(big.Int).SetString(integerPart, 10)
	if !ok {
		return newError("invalid integer part")
	}

	fractional, ok := new(big.Int).SetString(fractionalPart, 10)
	if !ok {
		return newError("invalid fractional part")
	}

	return literalParts{
		negative:   negative,
		integer:    integer,
		fractional: fractional,
		scale:      uint(len(fractionalPart)),
	}, nil
}

func isDecimalDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParseFix64 parses a Fix64 literal, e.g. `-1.5`,
// and returns the value scaled by Fix64Factor.
func ParseFix64(s string) (*big.Int, error) {
	parts, err := parseLiteral(s)
	if err != nil {
		return nil, err
	}

	if parts.scale > Fix64Scale {
		return nil, InvalidFixedPointError{
			Literal: s,
			Reason:  fmt.Sprintf("too many fractional digits, at most %d allowed", Fix64Scale),
		}
	}

	return NewFix64(parts.negative, parts.integer, parts.fractional, parts.scale)
}

// ParseUFix64 parses a UFix64 literal, e.g. `1.5`,
// and returns the value scaled by Fix64Factor.
func ParseUFix64(s string) (*big.Int, error) {
	parts, err := parseLiteral(s)
	if err != nil {
		return nil, err
	}

	if parts.scale > Fix64Scale {
		return nil, InvalidFixedPointError{
			Literal: s,
			Reason:  fmt.Sprintf("too many fractional digits, at most %d allowed", Fix64Scale),
		}
	}

	return NewUFix64(parts.negative, parts.integer, parts.fractional, parts.scale)
}

// NewFix64 returns the scaled Fix64 value of the given parts,
// where fractional has scale digits.
func NewFix64(negative bool, integer, fractional *big.Int, scale uint) (*big.Int, error) {
	return newScaled("Fix64", Fix64Range, negative, integer, fractional, scale)
}

// NewUFix64 returns the scaled UFix64 value of the given parts,
// where fractional has scale digits.
func NewUFix64(negative bool, integer, fractional *big.Int, scale uint) (*big.Int, error) {
	return newScaled("UFix64", UFix64Range, negative, integer, fractional, scale)
}

func newScaled(
	typeName string,
	bounds Range,
	negative bool,
	integer, fractional *big.Int,
	scale uint,
) (*big.Int, error) {
	scaled := Rescale(negative, integer, fractional, scale, Fix64Scale)

	if !bounds.Contains(scaled) {
		return nil, OutOfRangeError{
			TypeName: typeName,
			Literal:  formatParts(negative, integer, fractional, scale),
		}
	}

	return scaled, nil
}

func formatParts(negative bool, integer, fractional *big.Int, scale uint) string {
	sign := ""
	if negative {
		sign = "-"
	}
	fraction := fractional.String()
	if pad := int(scale) - len(fraction); pad > 0 {
		fraction = strings.Repeat("0", pad) + fraction
	}
	return fmt.Sprintf("%s%s.%s", sign, integer, fraction)
}
