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

import "bytes"

// Codec splits byte blocks into record chains and reassembles record
// chains back to bytes. Its zero value is not usable; build one with
// NewCodec. A Codec holds no mutable state of its own beyond its
// injected collaborators, so it is safe to share across goroutines.
type Codec struct {
	logger Logger
	locale LocaleAdapter
}

// NewCodec builds a Codec. Without WithLogger, diagnostics go to the
// package-wide default installed by SetLogger (a no-op logger if
// SetLogger was never called). Without WithLocale, the OS environment
// is consulted through SystemLocaleAdapter.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{
		logger: currentDefaultLogger(),
		locale: SystemLocaleAdapter(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type decodeContext struct {
	logger Logger
	locale LocaleAdapter
}

func (c *Codec) ctx() *decodeContext {
	return &decodeContext{logger: c.logger, locale: c.locale}
}

// Decode splits block into a linked chain of records. An empty block
// decodes to a single record with TNF Empty and RTD Unknown. Decoding
// never fails outright: a malformed record stops the walk (any
// records already built are returned), a chunked record is skipped
// with a warning, and a record whose typed decoder rejects it falls
// back to a generic record carrying its raw bytes.
func Decode(block []byte) *Record {
	return NewCodec().Decode(block)
}

// Decode is the Codec method form of the package-level Decode,
// routing warnings through c's Logger and defaults through c's
// LocaleAdapter.
func (c *Codec) Decode(block []byte) *Record {
	return decodeMessage(block, c.ctx())
}

func decodeMessage(block []byte, ctx *decodeContext) *Record {
	if len(block) == 0 {
		return &Record{TNF: TNFEmpty, RTD: RTDUnknown}
	}

	var head *Record
	remaining := block
	for len(remaining) > 0 {
		span, rest, ok := parseHeader(remaining)
		if !ok {
			ctx.logger.Debugf("ndef: block is garbage (lengths don't add up), stopping")
			break
		}
		remaining = rest

		if span.raw[0]&hdrCF != 0 {
			ctx.logger.Warnf("ndef: chunked records are not supported, skipping")
			continue
		}

		head = appendChain(head, decodeRecord(span, ctx))
	}
	return head
}

// decodeRecord dispatches on TNF+type and falls back to a generic
// record if no typed constructor accepts the payload.
func decodeRecord(span recordSpan, ctx *decodeContext) *Record {
	tnf := wireTNF(span.raw[0])
	typ := span.typeBytes()

	if tnf == TNFWellKnown {
		switch {
		case bytes.Equal(typ, TypeU):
			if r, err := decodeURIRecord(span); err == nil {
				return r
			}
		case bytes.Equal(typ, TypeT):
			if r, err := decodeTextRecord(span); err == nil {
				return r
			}
		case bytes.Equal(typ, TypeSp):
			if r, err := decodeSmartPosterRecord(span, ctx); err == nil {
				return r
			} else {
				ctx.logger.Warnf("ndef: %v", err)
			}
		}
	}
	return newRecordFromSpan(span, tnf, RTDUnknown)
}

// DecodeTLV iterates the TLV blocks in buf and decodes every
// NDEF_MESSAGE block it finds, concatenating their record chains in
// order.
func DecodeTLV(buf []byte) *Record {
	return NewCodec().DecodeTLV(buf)
}

// DecodeTLV is the Codec method form of the package-level DecodeTLV.
func (c *Codec) DecodeTLV(buf []byte) *Record {
	var head *Record
	it := buf
	var value []byte
	for {
		tag := TLVNext(&it, &value)
		if tag == 0 {
			break
		}
		if tag == TLVMessage {
			head = appendChain(head, decodeMessage(value, c.ctx()))
		}
	}
	return head
}

// NewMediaRecord builds a TNF=MediaType record for the given media
// type and payload. typ must validate as a non-wildcard media type.
func NewMediaRecord(typ string, payload []byte) (*Record, error) {
	if !ValidMediaTypeString(typ, false) {
		return nil, newEncodeError(KindInvalidMediaType, nil)
	}
	raw, err := encodeRecord(encodeHeaderArgs{
		tnf: TNFMediaType, typ: []byte(typ), payload: payload, mb: true, me: true,
	})
	if err != nil {
		return nil, err
	}
	span, _, ok := parseHeader(raw)
	if !ok {
		return nil, newEncodeError(KindMalformedHeader, nil)
	}
	return newRecordFromSpan(span, TNFMediaType, RTDUnknown), nil
}

// Encode reassembles a record chain back into its wire bytes by
// concatenating each record's Raw in order. Callers are responsible
// for the chain's MB/ME invariants; Decode and the New*Record
// constructors always produce a chain that already satisfies them.
func Encode(head *Record) []byte {
	var buf bytes.Buffer
	for r := head; r != nil; r = r.Next {
		buf.Write(r.Raw)
	}
	return buf.Bytes()
}
