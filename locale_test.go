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
)

func TestParseLocale(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		locale   string
		wantLang Language
		wantOK   bool
	}{
		{"posix C", "C", Language{}, false},
		{"posix POSIX", "POSIX", Language{}, false},
		{"empty", "", Language{}, false},
		{"language and territory with codeset", "en_US.UTF-8", Language{Language: "en", Territory: "US"}, true},
		{"modifier suffix", "fi_FI@euro", Language{Language: "fi", Territory: "FI"}, true},
		{"language only", "de", Language{Language: "de"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseLocale(tt.locale)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantLang.Language, got.Language)
				assert.Equal(t, tt.wantLang.Territory, got.Territory)
			}
		})
	}
}
