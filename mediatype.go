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

// tokenChars is a 128-bit set (as four uint32 words) of RFC 2045
// §5.1 "tchar": printable US-ASCII excluding SPACE, CTLs and
// tspecials ()<>@,;:\"/[]?=.
var tokenChars = [4]uint32{
	0x00000000, //                                  control chars
	0x03ff6cfa, //  !"#$%&'()*+,-./0123456789:;<=>?
	0xc7fffffe, // @ABCDEFGHIJKLMNOPQRSTUVWXYZ[\]^_
	0x7fffffff, // `abcdefghijklmnopqrstuvwxyz{|}~
}

func isTokenChar(c byte) bool {
	if c >= 0x80 {
		return false
	}
	return tokenChars[c/32]&(1<<(c%32)) != 0
}

// ValidMediaType reports whether typ is a well-formed RFC 2045 media
// type: "token/token", or "*", "*/*" or "token/*" when wildcard is
// true. It fails on an empty type, a missing or misplaced '/', a
// non-token character, or a wildcard appearing while wildcard is
// false.
func ValidMediaType(typ []byte, wildcard bool) bool {
	n := len(typ)
	if n == 0 {
		return false
	}

	if typ[0] == '*' {
		if !wildcard {
			return false
		}
		return n == 1 || (n == 3 && typ[1] == '/' && typ[2] == '*')
	}

	i := 0
	for i < n && isTokenChar(typ[i]) {
		i++
	}
	if i == 0 || i >= n || typ[i] != '/' {
		return false
	}
	i++
	if i >= n {
		return false
	}
	if typ[i] == '*' {
		return wildcard && i+1 == n
	}

	start := i
	for i < n && isTokenChar(typ[i]) {
		i++
	}
	return i > start && i == n
}

// ValidMediaTypeString is ValidMediaType for a string argument.
func ValidMediaTypeString(typ string, wildcard bool) bool {
	return ValidMediaType([]byte(typ), wildcard)
}
