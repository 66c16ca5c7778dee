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

package ndef

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TypeU is the well-known type byte string for URI records.
var TypeU = []byte("U")

// uriPrefixes is the NFC Forum URI RTD abbreviation table, indices
// 0-35. Index 0 means "no prefix".
var uriPrefixes = [...]string{
	"", "http://www.", "https://www.", "http://", "https://", "tel:",
	"mailto:", "ftp://anonymous:anonymous@", "ftp://ftp.", "ftps://",
	"sftp://", "smb://", "nfs://", "ftp://", "dav://", "news:",
	"telnet://", "imap:", "rtsp://", "urn:", "pop:", "sip:", "sips:",
	"tftp:", "btspp://", "btl2cap://", "btgoep://", "tcpobex://",
	"irdaobex://", "file://", "urn:epc:id:", "urn:epc:tag:",
	"urn:epc:pat:", "urn:epc:raw:", "urn:epc:", "urn:nfc:",
}

// URIRecord is the decoded well-known URI ("U") RTD: a prefix-table
// identifier byte followed by a UTF-8 tail. It is attached to the
// owning Record via Record.URI.
type URIRecord struct {
	URI string
}

func decodeURIPayload(payload []byte) (string, error) {
	if len(payload) == 0 {
		return "", newDecodeError(KindInvalidURI, fmt.Errorf("empty payload"))
	}
	id := payload[0]
	if int(id) >= len(uriPrefixes) {
		return "", newDecodeError(KindInvalidURI,
			fmt.Errorf("unknown URI prefix identifier %d", id))
	}
	tail := payload[1:]
	if !utf8.Valid(tail) {
		return "", newDecodeError(KindInvalidURI, fmt.Errorf("URI tail is not valid UTF-8"))
	}
	return uriPrefixes[id] + string(tail), nil
}

func decodeURIRecord(span recordSpan) (*Record, error) {
	uri, err := decodeURIPayload(span.payloadBytes())
	if err != nil {
		return nil, err
	}
	r := newRecordFromSpan(span, TNFWellKnown, RTDURI)
	r.URI = &URIRecord{URI: uri}
	return r, nil
}

// encodeURIPayload picks the longest matching prefix (identifier 0 if
// none match) and returns the identifier-byte-plus-tail payload.
func encodeURIPayload(uri string) []byte {
	bestID := 0
	bestLen := 0
	for id, prefix := range uriPrefixes {
		if id == 0 || prefix == "" {
			continue
		}
		if len(prefix) > bestLen && strings.HasPrefix(uri, prefix) {
			bestID = id
			bestLen = len(prefix)
		}
	}
	payload := make([]byte, 0, 1+len(uri)-bestLen)
	payload = append(payload, byte(bestID))
	payload = append(payload, uri[bestLen:]...)
	return payload
}

// NewURIRecord builds a well-known URI record for uri, choosing the
// longest matching abbreviation prefix. MB and ME are both set; a
// caller composing a Smart Poster clears them via ClearFlags.
func NewURIRecord(uri string) (*Record, error) {
	payload := encodeURIPayload(uri)
	raw, err := encodeRecord(encodeHeaderArgs{
		tnf: TNFWellKnown, typ: TypeU, payload: payload, mb: true, me: true,
	})
	if err != nil {
		return nil, err
	}
	span, _, ok := parseHeader(raw)
	if !ok {
		return nil, newEncodeError(KindMalformedHeader, fmt.Errorf("internal: built an unparsable URI record"))
	}
	r := newRecordFromSpan(span, TNFWellKnown, RTDURI)
	r.URI = &URIRecord{URI: uri}
	return r, nil
}
