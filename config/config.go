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

package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"

	"github.com/onflow/cadence-sdk"
	"github.com/onflow/cadence-sdk/crypto"
)

const (
	DefaultPath = "flow.json"

	EmulatorAccountName = "emulator-account"

	hexKeyType = "hex"
)

// ServiceAddress is the address of the service account of the emulator
var ServiceAddress = cadence.NewAddress([8]byte{0xf8, 0xd6, 0xe0, 0x58, 0x6b, 0x0a, 0x20, 0xc7})

// Config is the account configuration of a `flow.json` file
type Config struct {
	Accounts map[string]AccountConfig `yaml:"accounts"`
}

// AccountConfig is the configuration of a named account.
// The key is either a hex-encoded private key,
// or an object describing the key.
type AccountConfig struct {
	Address string   `yaml:"address"`
	Key     ast.Node `yaml:"key"`
}

type keyConfig struct {
	Type               string `yaml:"type"`
	Index              uint32 `yaml:"index"`
	SignatureAlgorithm string `yaml:"signatureAlgorithm"`
	HashAlgorithm      string `yaml:"hashAlgorithm"`
	PrivateKey         string `yaml:"privateKey"`
}

// Account is a configured account with a signer for its key
type Account struct {
	Name     string
	Address  cadence.Address
	KeyIndex uint32
	Signer   *crypto.InMemorySigner
}

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return Parse(data)
}

// Parse parses the configuration.
// JSON documents are valid YAML.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("config: failed to parse: %w", err)
	}

	if len(config.Accounts) == 0 {
		return nil, fmt.Errorf("config: missing accounts")
	}

	return &config, nil
}

// AccountNames returns the names of the configured accounts, sorted
func (c *Config) AccountNames() []string {
	names := make([]string, 0, len(c.Accounts))
	for name := range c.Accounts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Account resolves the named account
func (c *Config) Account(name string) (*Account, error) {
	accountConfig, ok := c.Accounts[name]
	if !ok {
		return nil, fmt.Errorf("config: unknown account: %s", name)
	}

	newError := func(format string, args ...any) error {
		return fmt.Errorf("config: account %s: %s", name, fmt.Sprintf(format, args...))
	}

	if accountConfig.Address == "" {
		return nil, newError("missing address")
	}

	address, err := cadence.HexToAddress(accountConfig.Address)
	if err != nil {
		return nil, newError("invalid address: %s", err)
	}

	key, err := parseKey(accountConfig.Key)
	if err != nil {
		return nil, newError("%s", err)
	}

	signatureAlgorithm := crypto.SignatureAlgorithmFromString(key.SignatureAlgorithm)
	if signatureAlgorithm == crypto.UnknownSignatureAlgorithm {
		return nil, newError("unknown signature algorithm: %q", key.SignatureAlgorithm)
	}

	hashAlgorithm := crypto.HashAlgorithmFromString(key.HashAlgorithm)
	if hashAlgorithm == crypto.UnknownHashAlgorithm {
		return nil, newError("unknown hash algorithm: %q", key.HashAlgorithm)
	}

	signer, err := crypto.DecodeInMemorySigner(key.PrivateKey, signatureAlgorithm, hashAlgorithm)
	if err != nil {
		return nil, newError("%s", err)
	}

	return &Account{
		Name:     name,
		Address:  address,
		KeyIndex: key.Index,
		Signer:   signer,
	}, nil
}

func parseKey(node ast.Node) (keyConfig, error) {
	key := keyConfig{
		Type:               hexKeyType,
		SignatureAlgorithm: crypto.ECDSA_P256.String(),
		HashAlgorithm:      crypto.SHA3_256.String(),
	}

	switch node := node.(type) {
	case nil:
		return key, fmt.Errorf("missing key")

	case *ast.StringNode:
		key.PrivateKey = node.Value

	case *ast.MappingNode, *ast.MappingValueNode:
		if err := yaml.NodeToValue(node, &key); err != nil {
			return key, fmt.Errorf("invalid key: %w", err)
		}

	default:
		return key, fmt.Errorf("invalid key: expected string or object, got %s", node.Type())
	}

	if key.Type != hexKeyType {
		return key, fmt.Errorf("unsupported key type: %q", key.Type)
	}

	if key.PrivateKey == "" {
		return key, fmt.Errorf("missing private key")
	}

	return key, nil
}
