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
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Language is the parsed language/territory pair supplied by a
// LocaleAdapter, mirroring the host collaborator described in the
// Smart Poster and Text RTD title-selection logic.
type Language struct {
	Language  string
	Territory string // empty if the host locale carries no territory
}

// LocaleAdapter is the host collaborator consumed for Text record
// defaults and Smart Poster title selection. It is intentionally
// external to the codec: the library never queries the OS directly
// except through the default implementation returned by
// SystemLocaleAdapter.
type LocaleAdapter interface {
	// SystemLocale returns the raw locale string, e.g. "en_US.UTF-8",
	// "fi@euro" or "C". The second return is false if unknown.
	SystemLocale() (string, bool)
	// SystemLanguage returns the parsed language/territory pair. "C"
	// and the empty locale return false.
	SystemLanguage() (Language, bool)
}

// ParseLocale strips ".CODESET" and "@MODIFIER" suffixes and splits
// the remainder on "_" into language/territory, per POSIX locale
// naming. "C", "POSIX" and the empty string carry no language.
func ParseLocale(locale string) (Language, bool) {
	s := locale
	if at := strings.IndexByte(s, '@'); at >= 0 {
		s = s[:at]
	}
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		s = s[:dot]
	}
	if s == "" || s == "C" || s == "POSIX" {
		return Language{}, false
	}

	bcp47 := strings.ReplaceAll(s, "_", "-")
	tag, err := language.Parse(bcp47)
	if err != nil {
		parts := strings.SplitN(s, "_", 2)
		lang := Language{Language: parts[0]}
		if len(parts) == 2 {
			lang.Territory = parts[1]
		}
		return lang, lang.Language != ""
	}

	base, _ := tag.Base()
	region, regionConf := tag.Region()
	lang := Language{Language: base.String()}
	if regionConf == language.Exact {
		lang.Territory = region.String()
	}
	return lang, lang.Language != ""
}

type osLocaleAdapter struct{}

// SystemLocaleAdapter returns a LocaleAdapter backed by the process's
// environment (LC_ALL, then LC_MESSAGES, then LANG), parsed with
// ParseLocale.
func SystemLocaleAdapter() LocaleAdapter { return osLocaleAdapter{} }

func (osLocaleAdapter) rawLocale() (string, bool) {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" {
			return v, true
		}
	}
	return "", false
}

func (a osLocaleAdapter) SystemLocale() (string, bool) {
	return a.rawLocale()
}

func (a osLocaleAdapter) SystemLanguage() (Language, bool) {
	raw, ok := a.rawLocale()
	if !ok {
		return Language{}, false
	}
	return ParseLocale(raw)
}
