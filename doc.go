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

/*
Package ndef parses and synthesizes NFC Data Exchange Format (NDEF)
messages as defined by the NFC Forum.

The package covers the binary record codec, the TLV framing used to
store NDEF messages on Type 2/4 tags, and the three well-known Record
Type Definitions: URI ("U"), Text ("T") and Smart Poster ("Sp").

Basic Usage:

	records := ndef.Decode(raw)
	for r := records; r != nil; r = r.Next {
	    switch {
	    case r.Text != nil:
	        fmt.Printf("text: %s (%s)\n", r.Text.Text, r.Text.Lang)
	    case r.URI != nil:
	        fmt.Printf("uri: %s\n", r.URI.URI)
	    }
	}

Tag Storage:

Messages stored on NFC tag memory are wrapped in TLV blocks. DecodeTLV
strips that framing before decoding the message(s) it contains. A
Codec configured with a Logger and LocaleAdapter can be reused across
many decode/encode calls:

	codec := ndef.NewCodec(ndef.WithLogger(myLogger))
	records := codec.DecodeTLV(tagMemory)

Record Construction:

	uri, err := ndef.NewURIRecord("https://example.com")
	text, err := ndef.NewTextRecord("hello", "en", ndef.EncUTF8, nil)
	sp, err := ndef.NewSmartPosterRecord(ndef.SmartPoster{
	    URI:   "https://example.com",
	    Title: "Example",
	    Lang:  "en",
	    Act:   ndef.ActOpen,
	})

Scope:

Chunked records (the CF bit) are detected and skipped with a warning,
never assembled. Supported TNF values are Empty, Well-Known,
Media-Type, Absolute-URI and External; anything else decodes as a
generic record with RTD Unknown. Character-set conversion is limited
to UTF-8 and UTF-16 (LE/BE).

Error Handling:

Decoding never aborts: a record that its typed decoder rejects
downgrades to a generic record with its raw bytes intact, and a
record with a malformed header ends the walk, returning the records
decoded before it. Skipped chunked records and Smart Poster anomalies
are reported to the library's Logger as warnings. Encoding constructors return a non-nil error on invalid
input or overflow; callers must check it.

Concurrency:

The codec performs no I/O and blocks on nothing. The package does not
modify a Record (or the chain reachable through it) after returning it
from Decode or a constructor; the only method that mutates a Record is
ClearFlags. A chain that no caller mutates is safe to share across
goroutines.
*/
package ndef
