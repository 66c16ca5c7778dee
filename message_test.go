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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEmptyBlock(t *testing.T) {
	t.Parallel()
	// S1
	r := Decode(nil)
	require.NotNil(t, r)
	assert.Equal(t, TNFEmpty, r.TNF)
	assert.Equal(t, RTDUnknown, r.RTD)
	assert.Empty(t, r.Payload)
	assert.Nil(t, r.Next)
}

func TestDecodeTLVSimpleMessage(t *testing.T) {
	t.Parallel()
	// S6: 03 04 91 01 00 78 FE -- one well-known record, type "x", empty payload.
	buf := []byte{0x03, 0x04, 0x91, 0x01, 0x00, 0x78, 0xFE}
	require.Equal(t, 7, TLVCheck(buf))

	r := DecodeTLV(buf)
	require.NotNil(t, r)
	assert.Nil(t, r.Next)
	assert.Equal(t, TNFWellKnown, r.TNF)
	assert.Equal(t, []byte("x"), r.Type)
	assert.Empty(t, r.Payload)
}

func TestDecodeMultiRecordMessagePreservesMBME(t *testing.T) {
	t.Parallel()
	uri, err := NewURIRecord("https://example.com")
	require.NoError(t, err)
	text, err := NewTextRecord("hi", "en", EncUTF8, nil)
	require.NoError(t, err)
	uri.ClearFlags(FlagLast)
	text.ClearFlags(FlagFirst)

	block := append(append([]byte{}, uri.Raw...), text.Raw...)
	head := Decode(block)
	children := head.Records()
	require.Len(t, children, 2)
	assert.True(t, children[0].First())
	assert.False(t, children[0].Last())
	assert.False(t, children[1].First())
	assert.True(t, children[1].Last())
}

func TestDecodeStopsAtMalformedRecord(t *testing.T) {
	t.Parallel()
	uri, err := NewURIRecord("https://example.com")
	require.NoError(t, err)
	garbage := []byte{0xD1, 0xFF} // declares a type length it can't satisfy
	block := append(append([]byte{}, uri.Raw...), garbage...)

	head := Decode(block)
	children := head.Records()
	require.Len(t, children, 1)
	assert.Equal(t, "https://example.com", children[0].URI.URI)
}

func TestDecodeSkipsChunkedRecord(t *testing.T) {
	t.Parallel()
	chunked := []byte{0xB1, 0x01, 0x01, 'X', 0x00} // CF set, MB set, ME clear
	uri, err := NewURIRecord("https://example.com")
	require.NoError(t, err)

	block := append(append([]byte{}, chunked...), uri.Raw...)
	head := Decode(block)
	children := head.Records()
	require.Len(t, children, 1)
	assert.Equal(t, "https://example.com", children[0].URI.URI)
}

func TestEncodeRoundTripsDecodedChain(t *testing.T) {
	t.Parallel()
	uri, err := NewURIRecord("https://example.com")
	require.NoError(t, err)
	text, err := NewTextRecord("hi", "en", EncUTF8, nil)
	require.NoError(t, err)
	uri.ClearFlags(FlagLast)
	text.ClearFlags(FlagFirst)
	uri.Next = text

	wire := Encode(uri)
	decoded := Decode(wire)
	reencoded := Encode(decoded)
	assert.Equal(t, wire, reencoded)

	redecoded := Decode(reencoded)
	children1 := decoded.Records()
	children2 := redecoded.Records()
	require.Len(t, children1, 2)
	require.Len(t, children2, 2)
	for i := range children1 {
		assert.Equal(t, children1[i].Raw, children2[i].Raw)
		assert.Equal(t, children1[i].Flags, children2[i].Flags)
		assert.Equal(t, children1[i].TNF, children2[i].TNF)
	}
}

func TestNewMediaRecord(t *testing.T) {
	t.Parallel()
	r, err := NewMediaRecord("image/png", []byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, TNFMediaType, r.TNF)
	assert.Equal(t, []byte("image/png"), r.Type)
	assert.Equal(t, []byte{1, 2, 3}, r.Payload)
}

func TestNewMediaRecordRejectsInvalidType(t *testing.T) {
	t.Parallel()
	_, err := NewMediaRecord("*/*", []byte{1})
	require.Error(t, err)
	var encErr *EncodeError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, KindInvalidMediaType, encErr.Kind)
}

func TestCodecUsesInjectedLoggerAndLocale(t *testing.T) {
	t.Parallel()
	rec := &capturingLogger{}
	codec := NewCodec(WithLogger(rec), WithLocale(stubLocale{ok: false}))

	chunked := []byte{0xB1, 0x01, 0x01, 'X', 0x00}
	codec.Decode(chunked)
	require.NotEmpty(t, rec.warnings)
}

type capturingLogger struct {
	warnings []string
	debugs   []string
}

func (c *capturingLogger) Debugf(format string, args ...any) {
	c.debugs = append(c.debugs, format)
}

func (c *capturingLogger) Warnf(format string, args ...any) {
	c.warnings = append(c.warnings, format)
}
