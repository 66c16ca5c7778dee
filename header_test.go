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

func TestParseHeaderShortRecord(t *testing.T) {
	t.Parallel()
	// S2's header: D1 01 10 54 ... (MB|ME|SR|TNF=WellKnown, type len 1,
	// payload len 0x10, type "T").
	block := []byte{0xD1, 0x01, 0x10, 0x54,
		0x02, 0x65, 0x6E, 0x6A, 0x6F, 0x6C, 0x6C, 0x61,
		0x2E, 0x77, 0x65, 0x6C, 0x63, 0x6F, 0x6D, 0x65}
	span, rest, ok := parseHeader(block)
	require.True(t, ok)
	assert.Empty(t, rest)
	assert.Equal(t, 1, span.typeLength)
	assert.Equal(t, 0x10, span.payloadLength)
	assert.Equal(t, []byte("T"), span.typeBytes())
	assert.Nil(t, span.idBytes())
}

func TestParseHeaderLongRecord(t *testing.T) {
	t.Parallel()
	payload := make([]byte, 300)
	hdr := byte(TNFMediaType) // MB/ME/SR all clear
	block := []byte{hdr, 0x04, 0x00, 0x00, 0x01, 0x2C}
	block = append(block, []byte("text")...)
	block = append(block, payload...)
	span, rest, ok := parseHeader(block)
	require.True(t, ok)
	assert.Empty(t, rest)
	assert.Equal(t, 300, span.payloadLength)
	assert.Equal(t, []byte("text"), span.typeBytes())
}

func TestParseHeaderTooShort(t *testing.T) {
	t.Parallel()
	_, _, ok := parseHeader([]byte{0xD1, 0x01})
	assert.False(t, ok)
}

func TestParseHeaderDeclaredLengthOverflowsBlock(t *testing.T) {
	t.Parallel()
	// S5: language length 1 but no language byte -- here at the header
	// level, a record claiming a payload larger than what's available.
	block := []byte{0xD1, 0x01, 0x05, 0x54, 0x01}
	_, _, ok := parseHeader(block)
	assert.False(t, ok)
}

func TestParseHeaderPayloadOverflowGuard(t *testing.T) {
	t.Parallel()
	hdr := byte(TNFMediaType) // long form
	block := []byte{hdr, 0x01, 0x80, 0x00, 0x00, 0x00, 't'}
	_, _, ok := parseHeader(block)
	assert.False(t, ok)
}

func TestParseHeaderIDLength(t *testing.T) {
	t.Parallel()
	hdr := byte(TNFWellKnown) | hdrSR | hdrIL
	block := []byte{hdr, 0x01, 0x02, 0x02, 'U', 'i', 'd', 'h', 'i'}
	span, rest, ok := parseHeader(block)
	require.True(t, ok)
	assert.Empty(t, rest)
	assert.Equal(t, []byte("id"), span.idBytes())
	assert.Equal(t, []byte("hi"), span.payloadBytes())
}

func TestEncodeRecordChoosesShortForm(t *testing.T) {
	t.Parallel()
	raw, err := encodeRecord(encodeHeaderArgs{
		tnf: TNFWellKnown, typ: []byte("U"), payload: []byte{0x00}, mb: true, me: true,
	})
	require.NoError(t, err)
	assert.Equal(t, byte(hdrMB|hdrME|hdrSR|byte(TNFWellKnown)), raw[0])
}

func TestEncodeRecordRejectsOversizedType(t *testing.T) {
	t.Parallel()
	_, err := encodeRecord(encodeHeaderArgs{
		typ: make([]byte, 256),
	})
	require.Error(t, err)
	var encErr *EncodeError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, KindEncodeOverflow, encErr.Kind)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()
	raw, err := encodeRecord(encodeHeaderArgs{
		tnf: TNFWellKnown, typ: []byte("U"), id: []byte("x"),
		payload: []byte{0x03, 'f', 'o', 'o'}, mb: true, me: true,
	})
	require.NoError(t, err)

	span, rest, ok := parseHeader(raw)
	require.True(t, ok)
	assert.Empty(t, rest)
	assert.Equal(t, []byte("U"), span.typeBytes())
	assert.Equal(t, []byte("x"), span.idBytes())
	assert.Equal(t, []byte{0x03, 'f', 'o', 'o'}, span.payloadBytes())
}
