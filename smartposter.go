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
	"bytes"
	"fmt"
	"sort"
)

// TypeSp is the well-known type byte string for Smart Poster records.
var TypeSp = []byte("Sp")

// Local well-known types nested inside a Smart Poster's payload
// message (spec §4.7, §6 "Smart Poster local types").
var (
	spTypeAct = []byte("act")
	spTypeS   = []byte("s")
	spTypeT   = []byte("t")
)

// Action is the Smart Poster's recommended action (spec §6 "Smart
// Poster local types"). ActDefault means no action record is present.
type Action int

const (
	ActDefault Action = iota
	ActOpen
	ActSave
	ActEdit
)

func actionFromWire(b byte) (Action, bool) {
	switch b {
	case 0:
		return ActOpen, true
	case 1:
		return ActSave, true
	case 2:
		return ActEdit, true
	default:
		return ActDefault, false
	}
}

func actionToWire(a Action) (byte, bool) {
	switch a {
	case ActOpen:
		return 0, true
	case ActSave:
		return 1, true
	case ActEdit:
		return 2, true
	default:
		return 0, false
	}
}

// Icon is a media-typed blob: the payload of the Smart Poster's
// optional icon record plus its validated media type.
type Icon struct {
	Type string
	Data []byte
}

// SmartPoster is the set of arguments NewSmartPosterRecord composes
// into a nested NDEF message. URI is the only required field.
type SmartPoster struct {
	URI   string
	Title string
	Lang  string
	Type  string
	Icon  *Icon
	Size  uint32
	Act   Action
}

// SmartPosterRecord is the decoded well-known Smart Poster ("Sp")
// RTD: a required URI plus the optional title, action, size, type and
// icon recovered from its nested NDEF message. It is attached to the
// owning Record via Record.SmartPoster.
type SmartPosterRecord struct {
	URI   string
	Title string
	Lang  string
	Type  string
	Icon  *Icon
	Size  uint32
	Act   Action
}

// appendSmartPosterChild builds a well-known record of the given
// local type and clears the MB/ME bits joining it to last, mirroring
// ndef_rec_sp_append_well_known in the source this is ported from.
func appendSmartPosterChild(last *Record, typ, payload []byte) (*Record, error) {
	raw, err := encodeRecord(encodeHeaderArgs{
		tnf: TNFWellKnown, typ: typ, payload: payload, mb: true, me: true,
	})
	if err != nil {
		return nil, err
	}
	span, _, ok := parseHeader(raw)
	if !ok {
		return nil, newEncodeError(KindMalformedHeader,
			fmt.Errorf("internal: built an unparsable Smart Poster child record"))
	}
	child := newRecordFromSpan(span, TNFWellKnown, RTDUnknown)
	child.ClearFlags(FlagFirst)
	last.ClearFlags(FlagLast)
	last.Next = child
	return child, nil
}

// NewSmartPosterRecord composes uri, and any of title/action/size/
// type/icon present, into a nested NDEF message wrapped as the
// payload of an outer well-known "Sp" record (spec §4.7 steps 1-7).
func NewSmartPosterRecord(sp SmartPoster) (*Record, error) {
	uriRec, err := NewURIRecord(sp.URI)
	if err != nil {
		return nil, err
	}
	head := uriRec
	last := uriRec
	result := SmartPosterRecord{URI: sp.URI, Size: sp.Size, Act: sp.Act}

	if sp.Title != "" {
		textRec, err := NewTextRecord(sp.Title, sp.Lang, EncUTF8, nil)
		if err != nil {
			return nil, err
		}
		textRec.ClearFlags(FlagFirst)
		last.ClearFlags(FlagLast)
		last.Next = textRec
		last = textRec
		result.Title = textRec.Text.Text
		result.Lang = textRec.Text.Lang
	}

	if sp.Act != ActDefault {
		value, ok := actionToWire(sp.Act)
		if !ok {
			return nil, newEncodeError(KindEncodeOverflow, fmt.Errorf("unknown action %d", sp.Act))
		}
		last, err = appendSmartPosterChild(last, spTypeAct, []byte{value})
		if err != nil {
			return nil, err
		}
	}

	if sp.Size != 0 {
		payload := []byte{
			byte(sp.Size >> 24), byte(sp.Size >> 16), byte(sp.Size >> 8), byte(sp.Size),
		}
		last, err = appendSmartPosterChild(last, spTypeS, payload)
		if err != nil {
			return nil, err
		}
	}

	if sp.Type != "" {
		last, err = appendSmartPosterChild(last, spTypeT, []byte(sp.Type))
		if err != nil {
			return nil, err
		}
		result.Type = sp.Type
	}

	if sp.Icon != nil && ValidMediaTypeString(sp.Icon.Type, false) {
		iconRec, err := NewMediaRecord(sp.Icon.Type, sp.Icon.Data)
		if err != nil {
			return nil, err
		}
		iconRec.ClearFlags(FlagFirst)
		last.ClearFlags(FlagLast)
		last.Next = iconRec
		last = iconRec
		result.Icon = &Icon{Type: sp.Icon.Type, Data: sp.Icon.Data}
	}

	var payload bytes.Buffer
	for r := head; r != nil; r = r.Next {
		payload.Write(r.Raw)
	}

	raw, err := encodeRecord(encodeHeaderArgs{
		tnf: TNFWellKnown, typ: TypeSp, payload: payload.Bytes(), mb: true, me: true,
	})
	if err != nil {
		return nil, err
	}
	span, _, ok := parseHeader(raw)
	if !ok {
		return nil, newEncodeError(KindMalformedHeader,
			fmt.Errorf("internal: built an unparsable Smart Poster record"))
	}
	rec := newRecordFromSpan(span, TNFWellKnown, RTDSmartPoster)
	rec.SmartPoster = &result
	return rec, nil
}

// decodeSmartPosterRecord re-parses span's payload as a nested NDEF
// message and classifies its children per spec §4.7. It fails the
// containing record only on a missing or duplicate URI record; every
// other anomaly is tolerated. An unsupported action byte or an unknown
// child type is logged as a warning; a malformed or repeated act, s or
// t child, or a media child that is not a usable icon, is ignored
// without a log message.
func decodeSmartPosterRecord(span recordSpan, ctx *decodeContext) (*Record, error) {
	content := decodeMessage(span.payloadBytes(), ctx)
	children := content.Records()

	var uris []*Record
	var titles []*Record
	var actionRec, sizeRec, typeRec, iconRec *Record

	for _, child := range children {
		switch {
		case child.RTD == RTDURI:
			uris = append(uris, child)
		case child.RTD == RTDText:
			titles = append(titles, child)
		case child.TNF == TNFMediaType:
			if iconRec == nil && len(child.Payload) > 0 &&
				ValidMediaType(child.Type, false) &&
				(bytes.HasPrefix(child.Type, []byte("image/")) ||
					bytes.HasPrefix(child.Type, []byte("video/"))) {
				iconRec = child
			}
		case child.TNF == TNFWellKnown:
			switch {
			case bytes.Equal(child.Type, spTypeAct):
				if actionRec == nil && len(child.Payload) == 1 {
					if _, ok := actionFromWire(child.Payload[0]); ok {
						actionRec = child
					} else {
						ctx.logger.Warnf("ndef: unsupported smart poster action %d", child.Payload[0])
					}
				}
			case bytes.Equal(child.Type, spTypeS):
				if sizeRec == nil && len(child.Payload) == 4 {
					sizeRec = child
				}
			case bytes.Equal(child.Type, spTypeT):
				if typeRec == nil && ValidMediaType(child.Payload, false) {
					typeRec = child
				}
			default:
				ctx.logger.Warnf("ndef: unsupported smart poster record %q", string(child.Type))
			}
		default:
			ctx.logger.Warnf("ndef: unsupported smart poster record")
		}
	}

	if len(uris) == 0 {
		ctx.logger.Warnf("ndef: smart poster is missing a URI record")
		return nil, newDecodeError(KindInvalidSmartPoster, ErrNoURIRecord)
	}
	if len(uris) > 1 {
		ctx.logger.Warnf("ndef: smart poster contains multiple URI records")
		return nil, newDecodeError(KindInvalidSmartPoster, ErrDuplicateURIRecord)
	}

	result := SmartPosterRecord{URI: uris[0].URI.URI}

	if len(titles) > 0 {
		if ctx.locale != nil {
			if lang, ok := ctx.locale.SystemLanguage(); ok {
				sort.SliceStable(titles, func(i, j int) bool {
					return textLangCompare(titles, titles[i], titles[j], lang) < 0
				})
			}
		}
		result.Title = titles[0].Text.Text
		result.Lang = titles[0].Text.Lang
	}

	if actionRec != nil {
		act, _ := actionFromWire(actionRec.Payload[0])
		result.Act = act
	}

	if sizeRec != nil {
		p := sizeRec.Payload
		result.Size = uint32(p[0])<<24 | uint32(p[1])<<16 | uint32(p[2])<<8 | uint32(p[3])
	}

	if typeRec != nil {
		result.Type = string(typeRec.Payload)
	}

	if iconRec != nil {
		data := make([]byte, len(iconRec.Payload))
		copy(data, iconRec.Payload)
		result.Icon = &Icon{Type: string(iconRec.Type), Data: data}
	}

	rec := newRecordFromSpan(span, TNFWellKnown, RTDSmartPoster)
	rec.SmartPoster = &result
	return rec, nil
}
