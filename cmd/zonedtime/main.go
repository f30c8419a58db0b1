// Copyright 2026 The zonedtime Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// zonedtime converts timezone-aware instants between the binary and literal
// forms of a CQL tuple<timestamp, varchar>. It's handy for inspecting
// values copied out of cqlsh or a packet capture.
//
//	zonedtime encode "('2010-06-30T01:20:47.999+02:00','Europe/Paris')"
//	zonedtime decode 00000008000001298603447f0000000c4575726f70652f5061726973
//	zonedtime normalize "(1277853647999,'Z')"
//	zonedtime now --zone America/New_York
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/pflag"
	"zonedtime.dev/zonedtime"
)

// now is replaced in tests.
var now = time.Now

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var (
		protocolVersion uint8
		zoneID          string
		maxBytes        int
		verbose         bool
		showVersion     bool
	)
	flagSet := pflag.NewFlagSet("zonedtime", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Uint8Var(&protocolVersion, "protocol-version", uint8(zonedtime.ProtocolV4), "native protocol version passed to the primitive codecs")
	flagSet.StringVar(&zoneID, "zone", "UTC", "zone ID used by the now command")
	flagSet.IntVar(&maxBytes, "max-bytes", 0, "reject binary tuples larger than this (0 means no limit)")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log each step to stderr")
	flagSet.BoolVar(&showVersion, "version", false, "print the version and exit")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return nil
	}
	if showVersion {
		fmt.Fprintln(stdout, zonedtime.Version)
		return nil
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	codec, err := zonedtime.NewCodec(zonedtime.ZonedTimeType, zonedtime.WithReadMaxBytes(maxBytes))
	if err != nil {
		return err
	}
	cmd := command{
		codec:   codec,
		version: zonedtime.ProtocolVersion(protocolVersion),
		logger:  logger,
		out:     stdout,
	}

	rest := flagSet.Args()
	if len(rest) == 0 {
		printHelp(stderr, flagSet)
		return errors.New("missing command")
	}
	name, operands := rest[0], rest[1:]
	logger.Debug("running command", "command", name, "protocol_version", cmd.version)
	switch name {
	case "encode":
		return withOperand(name, operands, cmd.encode)
	case "decode":
		return withOperand(name, operands, cmd.decode)
	case "normalize":
		return withOperand(name, operands, cmd.normalize)
	case "now":
		if len(operands) != 0 {
			return fmt.Errorf("now takes no arguments, got %d", len(operands))
		}
		return cmd.now(zoneID)
	}
	return fmt.Errorf("unknown command %q", name)
}

func withOperand(name string, operands []string, do func(string) error) error {
	if len(operands) != 1 {
		return fmt.Errorf("%s takes exactly one argument, got %d", name, len(operands))
	}
	return do(operands[0])
}

type command struct {
	codec   *zonedtime.Codec
	version zonedtime.ProtocolVersion
	logger  *slog.Logger
	out     io.Writer
}

func (c *command) encode(literal string) error {
	value, err := c.codec.Parse(literal)
	if err != nil {
		return err
	}
	c.logValue("parsed literal", value)
	data, err := c.codec.Marshal(value, c.version)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, hexString(data))
	return err
}

func (c *command) decode(text string) error {
	data, err := parseHex(text)
	if err != nil {
		return err
	}
	c.logger.Debug("decoding tuple", "bytes", len(data))
	value, err := c.codec.Unmarshal(data, c.version)
	if err != nil {
		return err
	}
	c.logValue("decoded tuple", value)
	return c.printLiteral(value)
}

func (c *command) normalize(literal string) error {
	value, err := c.codec.Parse(literal)
	if err != nil {
		return err
	}
	c.logValue("parsed literal", value)
	return c.printLiteral(value)
}

func (c *command) now(zoneID string) error {
	zone, err := zonedtime.LoadZone(zoneID)
	if err != nil {
		return err
	}
	value := zonedtime.InstantOf(now(), zone)
	c.logValue("current time", &value)
	return c.printLiteral(&value)
}

func (c *command) printLiteral(value *zonedtime.Instant) error {
	literal, err := c.codec.Format(value)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, literal)
	return err
}

func (c *command) logValue(msg string, value *zonedtime.Instant) {
	if value == nil {
		c.logger.Debug(msg, "value", "NULL")
		return
	}
	c.logger.Debug(msg, "millis", value.Millis(), "zone", value.Zone().ID(), "local", value.Time().Format(time.RFC3339Nano))
}

func hexString(data []byte) string {
	if data == nil {
		return "NULL"
	}
	return hex.EncodeToString(data)
}

func parseHex(text string) ([]byte, error) {
	text = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(text), "0x"), "0X")
	if strings.EqualFold(text, "NULL") {
		return nil, nil
	}
	data, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("invalid hex %q: %w", text, err)
	}
	return data, nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `zonedtime converts tuple<timestamp, varchar> values between forms.

Usage:
  zonedtime [flags] encode LITERAL   print the binary tuple for a literal, as hex
  zonedtime [flags] decode HEX       print the literal for a hex-encoded tuple
  zonedtime [flags] normalize LITERAL
                                     print a literal in canonical form
  zonedtime [flags] now              print the current time in --zone

Flags:
%s`, flagSet.FlagUsages())
}
