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

package common

import (
	"fmt"
)

// PathDomain is the domain of a path, e.g. `storage` in `/storage/foo`
type PathDomain uint8

const (
	PathDomainUnknown PathDomain = iota
	PathDomainStorage
	PathDomainPrivate
	PathDomainPublic
)

var AllPathDomains = []PathDomain{
	PathDomainStorage,
	PathDomainPrivate,
	PathDomainPublic,
}

var AllPathDomainsByIdentifier = func() map[string]PathDomain {
	domains := make(map[string]PathDomain, len(AllPathDomains))
	for _, pathDomain := range AllPathDomains {
		domains[pathDomain.Identifier()] = pathDomain
	}
	return domains
}()

// PathDomainFromIdentifier returns the path domain with the given identifier,
// or PathDomainUnknown
func PathDomainFromIdentifier(identifier string) PathDomain {
	return AllPathDomainsByIdentifier[identifier]
}

func (i PathDomain) Identifier() string {
	switch i {
	case PathDomainStorage:
		return "storage"

	case PathDomainPrivate:
		return "private"

	case PathDomainPublic:
		return "public"
	}

	return ""
}

func (i PathDomain) String() string {
	identifier := i.Identifier()
	if identifier == "" {
		return fmt.Sprintf("PathDomain(%d)", uint8(i))
	}
	return identifier
}
