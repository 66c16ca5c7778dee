// go-ndef
// Copyright (c) 2025 The go-ndef Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-ndef.
//
// go-ndef is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-ndef is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-ndef; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

// Command ndefdump decodes a raw or hex-encoded NDEF/TLV blob and
// pretty-prints the resulting record chain.
package main

import (
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	ndef "github.com/nfcgo/go-ndef"
	"github.com/nfcgo/go-ndef/ndeflog"
	"github.com/rs/zerolog"
)

type config struct {
	path   *string
	hex    *bool
	tlv    *bool
	debug  *bool
	output *string
}

func parseFlags() *config {
	cfg := &config{
		path:   flag.String("file", "", "path to the blob to decode; reads stdin if empty"),
		hex:    flag.Bool("hex", false, "input is hex-encoded rather than raw bytes"),
		tlv:    flag.Bool("tlv", false, "input is TLV-framed tag memory rather than a bare NDEF message"),
		debug:  flag.Bool("debug", false, "enable debug-level trace output"),
		output: flag.String("log-format", "console", "log output format: console or json"),
	}
	flag.Parse()
	return cfg
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func buildCodec(cfg *config) *ndef.Codec {
	level := zerolog.InfoLevel
	if *cfg.debug {
		level = zerolog.DebugLevel
	}
	var writer io.Writer = os.Stderr
	if *cfg.output != "json" {
		writer = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	logger := zerolog.New(writer).Level(level).With().Timestamp().Logger()
	return ndef.NewCodec(ndef.WithLogger(ndeflog.New(logger)))
}

func decodeInput(codec *ndef.Codec, raw []byte, tlv bool) *ndef.Record {
	if tlv {
		return codec.DecodeTLV(raw)
	}
	return codec.Decode(raw)
}

func printRecord(w io.Writer, r *ndef.Record) {
	fmt.Fprintf(w, "record: tnf=%d rtd=%d flags=%02x type=%q id=%q payload=%d bytes\n",
		r.TNF, r.RTD, r.Flags, r.Type, r.ID, len(r.Payload))
	switch {
	case r.URI != nil:
		fmt.Fprintf(w, "  uri: %s\n", r.URI.URI)
	case r.Text != nil:
		fmt.Fprintf(w, "  text: lang=%q text=%q\n", r.Text.Lang, r.Text.Text)
	case r.SmartPoster != nil:
		sp := r.SmartPoster
		fmt.Fprintf(w, "  smart poster: uri=%s title=%q lang=%q type=%q size=%d act=%d icon=%v\n",
			sp.URI, sp.Title, sp.Lang, sp.Type, sp.Size, sp.Act, sp.Icon != nil)
	}
}

func dump(w io.Writer, cfg *config) error {
	raw, err := readInput(*cfg.path)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if *cfg.hex {
		raw = bytes.TrimSpace(raw)
		decoded := make([]byte, hex.DecodedLen(len(raw)))
		n, err := hex.Decode(decoded, raw)
		if err != nil {
			return fmt.Errorf("decoding hex input: %w", err)
		}
		raw = decoded[:n]
	}

	codec := buildCodec(cfg)
	head := decodeInput(codec, raw, *cfg.tlv)
	if head == nil {
		fmt.Fprintln(w, "no records decoded")
		return nil
	}
	for _, r := range head.Records() {
		printRecord(w, r)
	}
	return nil
}

func main() {
	cfg := parseFlags()
	if err := dump(os.Stdout, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "ndefdump: %v\n", err)
		os.Exit(1)
	}
}
