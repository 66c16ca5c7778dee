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

import "errors"

// Kind classifies why a decode or encode operation failed.
type Kind int

const (
	// KindMalformedHeader covers insufficient bytes, a length that
	// overflows the declared record span, or a payload length >= 2^31.
	KindMalformedHeader Kind = iota
	// KindUnsupportedChunked marks a record with the CF bit set.
	KindUnsupportedChunked
	// KindInvalidURI covers an unknown URI prefix byte or a non-UTF-8 tail.
	KindInvalidURI
	// KindInvalidText covers a bad language length, non-UTF-8 language,
	// or a UTF-16/UTF-8 transcoding failure.
	KindInvalidText
	// KindInvalidSmartPoster covers a missing or duplicate URI record.
	KindInvalidSmartPoster
	// KindInvalidMediaType covers a media type that fails RFC 2045 grammar.
	KindInvalidMediaType
	// KindEncodeOverflow covers a type longer than 255 bytes or a
	// payload longer than 2^32-1 bytes.
	KindEncodeOverflow
)

func (k Kind) String() string {
	switch k {
	case KindMalformedHeader:
		return "malformed header"
	case KindUnsupportedChunked:
		return "unsupported chunked record"
	case KindInvalidURI:
		return "invalid URI record"
	case KindInvalidText:
		return "invalid text record"
	case KindInvalidSmartPoster:
		return "invalid smart poster"
	case KindInvalidMediaType:
		return "invalid media type"
	case KindEncodeOverflow:
		return "encode overflow"
	default:
		return "unknown"
	}
}

// ErrNoURIRecord and ErrDuplicateURIRecord are the sentinel causes
// behind a KindInvalidSmartPoster DecodeError.
var (
	ErrNoURIRecord        = errors.New("smart poster: missing URI record")
	ErrDuplicateURIRecord = errors.New("smart poster: multiple URI records")
)

// DecodeError reports why decoding a record or message failed.
type DecodeError struct {
	Err  error
	Kind Kind
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Err.Error()
	}
	return e.Kind.String()
}

func (e *DecodeError) Unwrap() error { return e.Err }

func newDecodeError(kind Kind, err error) *DecodeError {
	return &DecodeError{Kind: kind, Err: err}
}

// EncodeError reports why building a record failed.
type EncodeError struct {
	Err  error
	Kind Kind
}

func (e *EncodeError) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Err.Error()
	}
	return e.Kind.String()
}

func (e *EncodeError) Unwrap() error { return e.Err }

func newEncodeError(kind Kind, err error) *EncodeError {
	return &EncodeError{Kind: kind, Err: err}
}
