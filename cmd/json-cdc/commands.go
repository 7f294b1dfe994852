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

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/itchyny/gojq"
	"github.com/k0kubun/pp/v3"
	"github.com/logrusorgru/aurora/v4"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/pretty"

	jsoncdc "github.com/onflow/cadence-sdk/encoding/json"
)

type command struct {
	stdin  io.Reader
	stdout io.Writer
	colors bool
	au     *aurora.Aurora
}

func (c command) readInput() ([]byte, error) {
	data, err := io.ReadAll(c.stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

// decode reads a JSON-CDC value or type and prints the decoded Go representation
func (c command) decode(args []string) error {
	flags := flag.NewFlagSet("decode", flag.ContinueOnError)
	decodeType := flags.Bool("type", false, "decode a type instead of a value")
	backwardsCompatible := flags.Bool("backwards-compatible", false, "accept legacy encodings")

	if err := flags.Parse(args); err != nil {
		return err
	}

	data, err := c.readInput()
	if err != nil {
		return err
	}

	var options []jsoncdc.Option
	if *backwardsCompatible {
		options = append(options, jsoncdc.WithBackwardsCompatibility())
	}

	var result any
	if *decodeType {
		result, err = jsoncdc.DecodeType(data, options...)
	} else {
		result, err = jsoncdc.Decode(data, options...)
	}
	if err != nil {
		return err
	}

	log.Debug().Int("bytes", len(data)).Msg("decoded input")

	printer := pp.New()
	printer.SetOutput(c.stdout)
	printer.SetColoringEnabled(c.colors)

	_, err = printer.Println(result)
	return err
}

// normalize decodes a JSON-CDC value and writes its canonical encoding
func (c command) normalize(args []string) error {
	flags := flag.NewFlagSet("normalize", flag.ContinueOnError)
	prettyPrint := flags.Bool("pretty", false, "indent the output")

	if err := flags.Parse(args); err != nil {
		return err
	}

	data, err := c.readInput()
	if err != nil {
		return err
	}

	value, err := jsoncdc.Decode(data)
	if err != nil {
		return err
	}

	encoded, err := jsoncdc.Encode(value)
	if err != nil {
		return err
	}

	return c.writeJSON(encoded, *prettyPrint)
}

// query runs a jq query over a JSON payload,
// and prints each result which is a JSON-CDC value in its Cadence notation
func (c command) query(args []string) error {
	flags := flag.NewFlagSet("query", flag.ContinueOnError)
	source := flags.String("q", ".", "jq query")
	raw := flags.Bool("raw", false, "print results as JSON, without decoding")

	if err := flags.Parse(args); err != nil {
		return err
	}

	query, err := gojq.Parse(*source)
	if err != nil {
		return fmt.Errorf("invalid query: %w", err)
	}

	data, err := c.readInput()
	if err != nil {
		return err
	}

	var input any
	if err := json.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	iter := query.Run(input)
	for {
		result, ok := iter.Next()
		if !ok {
			break
		}

		if err, ok := result.(error); ok {
			return fmt.Errorf("query failed: %w", err)
		}

		encoded, err := json.Marshal(result)
		if err != nil {
			return err
		}

		if *raw {
			if err := c.writeJSON(encoded, false); err != nil {
				return err
			}
			continue
		}

		value, err := jsoncdc.Decode(encoded)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(c.stdout, c.au.BrightYellow(value.String()))
		if err != nil {
			return err
		}
	}

	return nil
}

func (c command) writeJSON(data []byte, prettyPrint bool) error {
	if prettyPrint {
		data = pretty.Pretty(data)
		if c.colors {
			data = pretty.Color(data, nil)
		}
	} else {
		data = append(pretty.Ugly(data), '\n')
	}

	_, err := c.stdout.Write(data)
	return err
}
