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

// Capability formats an ID capability, e.g. `Capability<&Int>(address: 0x1, id: 4)`.
// The borrow type is omitted if it is empty.
func Capability(borrowType string, address string, id string) string {
	return capability(borrowType, address, "id", id)
}

// DeprecatedPathCapability formats a path capability,
// which is only decoded from encodings before 1.0.0
func DeprecatedPathCapability(borrowType string, address string, path string) string {
	return capability(borrowType, address, "path", path)
}

func capability(borrowType string, address string, targetLabel string, target string) string {
	result := "Capability"
	if borrowType != "" {
		result += "<" + borrowType + ">"
	}
	return result + "(address: " + address + ", " + targetLabel + ": " + target + ")"
}
