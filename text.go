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

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// TypeT is the well-known type byte string for Text records.
var TypeT = []byte("T")

const (
	statusLangLenMask = 0x3F
	statusEncUTF16    = 0x80
)

// TextEncoding selects the wire encoding NewTextRecord uses for the
// text portion of a Text record's payload.
type TextEncoding int

const (
	EncUTF8 TextEncoding = iota
	EncUTF16BE
	EncUTF16LE
)

// LangMatch is the result of comparing a TextRecord's language tag
// against a query Language; bits are OR'd together.
type LangMatch int

const (
	LangMatchNone      LangMatch = 0x00
	LangMatchTerritory LangMatch = 0x01
	LangMatchLanguage  LangMatch = 0x02
	LangMatchFull      LangMatch = LangMatchLanguage | LangMatchTerritory
)

// TextRecord is the decoded well-known Text ("T") RTD.
type TextRecord struct {
	Lang string
	Text string
}

// decodeUTF16 decodes through unicode.BOMOverride, which strips a
// leading BOM and picks the matching endianness; without a BOM the
// BOM-less big-endian fallback decoder is used (per the NFC Forum Text RTD's "UTF-16 Byte Order" rule).
func decodeUTF16(text []byte) (string, error) {
	fallback := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	out, _, err := transform.Bytes(unicode.BOMOverride(fallback), text)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func encodeUTF16(text string, enc TextEncoding) ([]byte, error) {
	var e *unicode.Encoding
	switch enc {
	case EncUTF16BE:
		e = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case EncUTF16LE:
		e = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	default:
		return nil, fmt.Errorf("not a UTF-16 encoding: %d", enc)
	}
	out, _, err := transform.Bytes(e.NewEncoder(), []byte(text))
	return out, err
}

func decodeTextPayload(payload []byte) (lang, text string, err error) {
	if len(payload) == 0 {
		return "", "", newDecodeError(KindInvalidText, fmt.Errorf("empty payload"))
	}
	status := payload[0]
	langLen := int(status & statusLangLenMask)
	if langLen >= len(payload) {
		return "", "", newDecodeError(KindInvalidText,
			fmt.Errorf("language length %d does not fit in payload of %d bytes", langLen, len(payload)))
	}
	langBytes := payload[1 : 1+langLen]
	if langLen > 0 && !utf8.Valid(langBytes) {
		return "", "", newDecodeError(KindInvalidText, fmt.Errorf("language tag is not valid UTF-8"))
	}

	textBytes := payload[1+langLen:]
	if status&statusEncUTF16 != 0 {
		text, err = decodeUTF16(textBytes)
		if err != nil {
			return "", "", newDecodeError(KindInvalidText, fmt.Errorf("decoding UTF-16 text: %w", err))
		}
	} else if len(textBytes) == 0 {
		text = ""
	} else if utf8.Valid(textBytes) {
		text = string(textBytes)
	} else {
		return "", "", newDecodeError(KindInvalidText, fmt.Errorf("text is not valid UTF-8"))
	}
	return string(langBytes), text, nil
}

func decodeTextRecord(span recordSpan) (*Record, error) {
	lang, text, err := decodeTextPayload(span.payloadBytes())
	if err != nil {
		return nil, err
	}
	r := newRecordFromSpan(span, TNFWellKnown, RTDText)
	r.Text = &TextRecord{Lang: lang, Text: text}
	return r, nil
}

func buildTextPayload(text, lang string, enc TextEncoding) ([]byte, error) {
	if len(lang) > statusLangLenMask {
		return nil, newEncodeError(KindEncodeOverflow,
			fmt.Errorf("language tag %q exceeds %d bytes", lang, statusLangLenMask))
	}
	status := byte(len(lang)) & statusLangLenMask
	if enc != EncUTF8 {
		status |= statusEncUTF16
	}

	var encoded []byte
	var err error
	switch enc {
	case EncUTF8:
		encoded = []byte(text)
	case EncUTF16BE, EncUTF16LE:
		encoded, err = encodeUTF16(text, enc)
	default:
		err = fmt.Errorf("unknown text encoding %d", enc)
	}
	if err != nil {
		return nil, newEncodeError(KindInvalidText, fmt.Errorf("encoding text: %w", err))
	}

	payload := make([]byte, 0, 1+len(lang)+len(encoded))
	payload = append(payload, status)
	payload = append(payload, lang...)
	payload = append(payload, encoded...)
	return payload, nil
}

// NewTextRecord builds a well-known Text record. If lang is empty,
// locale's system language is used (falling back to "en" if locale is
// nil or has none); if text is empty, an empty text body is encoded.
func NewTextRecord(text, lang string, enc TextEncoding, locale LocaleAdapter) (*Record, error) {
	if lang == "" {
		if locale != nil {
			if sysLang, ok := locale.SystemLanguage(); ok {
				lang = sysLang.Language
				if sysLang.Territory != "" {
					lang = sysLang.Language + "-" + sysLang.Territory
				}
			}
		}
		if lang == "" {
			lang = "en"
		}
	}

	payload, err := buildTextPayload(text, lang, enc)
	if err != nil {
		return nil, err
	}
	raw, err := encodeRecord(encodeHeaderArgs{
		tnf: TNFWellKnown, typ: TypeT, payload: payload, mb: true, me: true,
	})
	if err != nil {
		return nil, err
	}
	span, _, ok := parseHeader(raw)
	if !ok {
		return nil, newEncodeError(KindMalformedHeader, fmt.Errorf("internal: built an unparsable Text record"))
	}
	r := newRecordFromSpan(span, TNFWellKnown, RTDText)
	r.Text = &TextRecord{Lang: lang, Text: text}
	return r, nil
}

// LangMatch compares t's language tag against query, splitting t's
// tag on "-" and case-insensitively comparing each half independently.
func (t *TextRecord) LangMatch(query Language) LangMatch {
	if t == nil || query.Language == "" {
		return LangMatchNone
	}
	var match LangMatch
	lang, territory, hasTerritory := strings.Cut(t.Lang, "-")
	if hasTerritory {
		if strings.EqualFold(lang, query.Language) {
			match |= LangMatchLanguage
		}
		if query.Territory != "" && strings.EqualFold(territory, query.Territory) {
			match |= LangMatchTerritory
		}
	} else if strings.EqualFold(t.Lang, query.Language) {
		match |= LangMatchLanguage
	}
	return match
}

// textLangCompare orders records by descending match quality against
// query, breaking ties by the order in which they appear in chain
// (the record reachable first via Next comes first).
func textLangCompare(chain []*Record, a, b *Record, query Language) int {
	ma := a.Text.LangMatch(query)
	mb := b.Text.LangMatch(query)
	if ma != mb {
		return int(mb) - int(ma)
	}
	for _, r := range chain {
		if r == a {
			return -1
		}
		if r == b {
			return 1
		}
	}
	return 0
}
