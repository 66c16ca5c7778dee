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

func TestWithLoggerOverridesDefault(t *testing.T) {
	t.Parallel()
	logger := &capturingLogger{}
	codec := NewCodec(WithLogger(logger))
	assert.Same(t, Logger(logger), codec.logger)
}

func TestWithLoggerNilFallsBackToNop(t *testing.T) {
	t.Parallel()
	codec := NewCodec(WithLogger(nil))
	_, isNop := codec.logger.(nopLogger)
	assert.True(t, isNop)
}

func TestWithLocaleOverridesDefault(t *testing.T) {
	t.Parallel()
	locale := stubLocale{lang: Language{Language: "en"}, ok: true}
	codec := NewCodec(WithLocale(locale))
	require.NotNil(t, codec.locale)
	got, ok := codec.locale.SystemLanguage()
	assert.True(t, ok)
	assert.Equal(t, "en", got.Language)
}
