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

// TNF is the 3-bit Type Name Format field classifying a record's type
// namespace.
type TNF byte

const (
	TNFEmpty TNF = iota
	TNFWellKnown
	TNFMediaType
	TNFAbsoluteURI
	TNFExternal
	// TNFUnknown is the distinguished value unknown wire TNFs (5, 6
	// and 7, i.e. anything above tnfMax) collapse to. It is never written by
	// an encoder.
	TNFUnknown
)

// tnfMax is the highest TNF value this package models explicitly;
// see spec.md §1 Non-goals.
const tnfMax = TNFExternal

// RTD names a well-known Record Type Definition this package
// understands, independent of the raw TNF+type bytes.
type RTD int

const (
	RTDUnknown RTD = iota
	RTDURI
	RTDText
	RTDSmartPoster
)

// Flags marks a record as the first and/or last in its message.
type Flags uint8

const (
	FlagFirst Flags = 1 << iota // MB
	FlagLast                    // ME
)

// Record is the base value every decoded or constructed NDEF record
// carries. Type, ID and Payload are slices into Raw, so copying a
// Record value is cheap but does not deep-copy the wire bytes.
//
// The well-known RTDs attach their decoded fields via the URI, Text
// and SmartPoster pointers, at most one of which is non-nil; this is
// the tagged-union Generic/Uri/Text/SmartPoster variant described by
// the package's design, modeled as optional fields rather than an
// interface hierarchy so a caller can type-switch on RTD and access
// fields directly.
type Record struct {
	Next        *Record
	URI         *URIRecord
	Text        *TextRecord
	SmartPoster *SmartPosterRecord
	Raw         []byte
	Type        []byte
	ID          []byte
	Payload     []byte
	TNF         TNF
	RTD         RTD
	Flags       Flags
}

// First reports whether this is the first record of its message (the
// MB bit).
func (r *Record) First() bool { return r.Flags&FlagFirst != 0 }

// Last reports whether this is the last record of its message (the
// ME bit).
func (r *Record) Last() bool { return r.Flags&FlagLast != 0 }

// ClearFlags clears the given flag bits on both Flags and the backing
// MB/ME bits of Raw[0]. It is used internally while composing a Smart
// Poster's nested message, on records not yet published to a caller;
// see spec.md §9 on re-architecting the "steal" accessors.
func (r *Record) ClearFlags(flags Flags) {
	r.Flags &^= flags
	var wire byte
	if flags&FlagFirst != 0 {
		wire |= hdrMB
	}
	if flags&FlagLast != 0 {
		wire |= hdrME
	}
	if len(r.Raw) > 0 {
		r.Raw[0] &^= wire
	}
}

func newRecordFromSpan(span recordSpan, tnf TNF, rtd RTD) *Record {
	raw := make([]byte, len(span.raw))
	copy(raw, span.raw)

	r := &Record{
		Raw: raw,
		RTD: rtd,
		TNF: tnf,
	}
	if raw[0]&hdrMB != 0 {
		r.Flags |= FlagFirst
	}
	if raw[0]&hdrME != 0 {
		r.Flags |= FlagLast
	}
	if span.typeLength > 0 {
		r.Type = raw[span.typeOffset : span.typeOffset+span.typeLength]
	}
	if span.idLength > 0 {
		idStart := span.typeOffset + span.typeLength
		r.ID = raw[idStart : idStart+span.idLength]
	}
	if span.payloadLength > 0 {
		pStart := span.typeOffset + span.typeLength + span.idLength
		r.Payload = raw[pStart : pStart+span.payloadLength]
	}
	return r
}

func wireTNF(hdr byte) TNF {
	tnf := TNF(hdr & hdrTNF)
	if tnf > tnfMax {
		return TNFUnknown
	}
	return tnf
}

// Records walks the Next chain starting at r and returns it as a
// slice, in wire order. A nil receiver returns nil.
func (r *Record) Records() []*Record {
	var out []*Record
	for cur := r; cur != nil; cur = cur.Next {
		out = append(out, cur)
	}
	return out
}

// appendChain links tail onto the end of the chain rooted at head,
// returning the (possibly new) head.
func appendChain(head, tail *Record) *Record {
	if head == nil {
		return tail
	}
	last := head
	for last.Next != nil {
		last = last.Next
	}
	last.Next = tail
	return head
}
