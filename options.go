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

// Option is a functional option for configuring a Codec, following
// the same construction idiom the teacher uses for its Device type.
type Option func(*Codec)

// WithLogger overrides the Codec's diagnostic sink. Without this
// option a Codec uses the package-wide default installed by SetLogger.
func WithLogger(logger Logger) Option {
	return func(c *Codec) {
		if logger == nil {
			logger = nopLogger{}
		}
		c.logger = logger
	}
}

// WithLocale overrides the Codec's LocaleAdapter, consulted for Text
// record defaults and Smart Poster title selection. Without this
// option a Codec uses SystemLocaleAdapter.
func WithLocale(locale LocaleAdapter) Option {
	return func(c *Codec) {
		c.locale = locale
	}
}
