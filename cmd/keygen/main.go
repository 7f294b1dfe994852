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

// A utility program that derives an account key from a seed,
// and prints the key in the encoding used to add it to an account.

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/logrusorgru/aurora/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/onflow/cadence-sdk/crypto"
	"github.com/onflow/cadence-sdk/flow"
)

var (
	flagSeed               = flag.String("seed", "", "seed to derive the key from")
	flagSignatureAlgorithm = flag.String("sig-algo", crypto.ECDSA_P256.String(), "signature algorithm")
	flagHashAlgorithm      = flag.String("hash-algo", crypto.SHA3_256.String(), "hash algorithm")
	flagWeight             = flag.Uint("weight", flow.AccountKeyWeightThreshold, "key weight")
	flagShowPrivateKey     = flag.Bool("show-private-key", false, "also print the private key")
)

type keyOutput struct {
	publicKey  []byte
	accountKey *flow.AccountKey
	privateKey []byte
}

func generate(
	seed string,
	signatureAlgorithm string,
	hashAlgorithm string,
	weight uint,
) (*keyOutput, error) {

	signAlgo := crypto.SignatureAlgorithmFromString(signatureAlgorithm)
	if signAlgo == crypto.UnknownSignatureAlgorithm {
		return nil, fmt.Errorf("unknown signature algorithm: %q", signatureAlgorithm)
	}

	hashAlgo := crypto.HashAlgorithmFromString(hashAlgorithm)
	if hashAlgo == crypto.UnknownHashAlgorithm {
		return nil, fmt.Errorf("unknown hash algorithm: %q", hashAlgorithm)
	}

	key, signer, err := flow.AccountKeyFromSeed(seed, signAlgo, hashAlgo)
	if err != nil {
		return nil, err
	}

	key.Weight = uint32(weight)
	if err := key.Validate(); err != nil {
		return nil, err
	}

	return &keyOutput{
		publicKey:  key.PublicKey,
		accountKey: key,
		privateKey: signer.PrivateKey(),
	}, nil
}

func (o *keyOutput) print(w io.Writer, au *aurora.Aurora, showPrivateKey bool) {
	_, _ = fmt.Fprintf(w, "%s %s\n", au.Bold("Public key:"), hex.EncodeToString(o.publicKey))
	_, _ = fmt.Fprintf(w, "%s %s\n", au.Bold("Account key:"), au.Yellow(o.accountKey.Hex()))
	_, _ = fmt.Fprintf(
		w,
		"%s %s, %s, weight %d\n",
		au.Bold("Algorithms:"),
		o.accountKey.SignAlgo,
		o.accountKey.HashAlgo,
		o.accountKey.Weight,
	)

	if showPrivateKey {
		_, _ = fmt.Fprintf(w, "%s %s\n", au.Bold("Private key:"), au.Red(hex.EncodeToString(o.privateKey)))
	}
}

func main() {

	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
	})

	if *flagSeed == "" {
		log.Warn().Msg("no seed given, deriving the key from the empty seed")
	}

	output, err := generate(
		*flagSeed,
		*flagSignatureAlgorithm,
		*flagHashAlgorithm,
		*flagWeight,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to generate key")
	}

	au := aurora.New(aurora.WithColors(true))
	output.print(os.Stdout, au, *flagShowPrivateKey)
}
