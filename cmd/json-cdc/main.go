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

// A utility program that decodes, normalizes and queries JSON-CDC payloads.
//
//	json-cdc decode [-type] [-backwards-compatible] < payload.json
//	json-cdc normalize [-pretty] < payload.json
//	json-cdc query -q <jq query> < payload.json

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/logrusorgru/aurora/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func usage() {
	_, _ = fmt.Fprintf(
		os.Stderr,
		"Usage: json-cdc <decode|normalize|query> [flags] < payload.json\n",
	)
}

func main() {

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
	})

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	colors := isTerminal(os.Stdout)

	cmd := command{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		colors: colors,
		au:     aurora.New(aurora.WithColors(colors)),
	}

	name := os.Args[1]
	args := os.Args[2:]

	var err error

	switch name {
	case "decode":
		err = cmd.decode(args)
	case "normalize":
		err = cmd.normalize(args)
	case "query":
		err = cmd.query(args)
	default:
		usage()
		log.Fatal().Str("command", name).Msg("unsupported command")
	}

	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, cmd.au.Red(err.Error()).Bold())
		os.Exit(1)
	}
}

func isTerminal(file *os.File) bool {
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
