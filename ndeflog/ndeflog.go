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

// Package ndeflog adapts a github.com/rs/zerolog.Logger to the
// ndef.Logger interface, for callers who want the codec's warnings
// and debug traces folded into their existing structured logs instead
// of the package's zero-dependency no-op default.
package ndeflog

import "github.com/rs/zerolog"

// Adapter wraps a zerolog.Logger so it satisfies ndef.Logger.
type Adapter struct {
	log zerolog.Logger
}

// New builds an Adapter around log. The zero value of log (an
// unconfigured zerolog.Logger writes to nothing) is valid but useless;
// callers almost always want a logger built with zerolog.New.
func New(log zerolog.Logger) *Adapter {
	return &Adapter{log: log}
}

// Debugf logs a debug-level message through the wrapped zerolog.Logger.
func (a *Adapter) Debugf(format string, args ...any) {
	a.log.Debug().Msgf(format, args...)
}

// Warnf logs a warning-level message through the wrapped zerolog.Logger.
func (a *Adapter) Warnf(format string, args ...any) {
	a.log.Warn().Msgf(format, args...)
}
