// PlayDeck Core
// Copyright (c) 2026 The PlayDeck Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of PlayDeck Core.
//
// PlayDeck Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PlayDeck Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with PlayDeck Core.  If not, see <http://www.gnu.org/licenses/>.

package steam

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameLaunchURI(t *testing.T) {
	t.Parallel()

	t.Run("native_app_uses_run", func(t *testing.T) {
		t.Parallel()

		g := Game{AppID: 440, Name: "Team Fortress 2"}
		assert.Equal(t, "steam://run/440", g.LaunchURI())
	})

	t.Run("shortcut_uses_rungameid_with_bpid", func(t *testing.T) {
		t.Parallel()

		// BPID = (shortcut ID << 32) | 0x02000000
		g := Game{AppID: 1, Name: "Shortcut", IsShortcut: true}
		assert.Equal(t, "steam://rungameid/4328521728", g.LaunchURI())
	})

	t.Run("zero_id_shortcut_still_builds_uri", func(t *testing.T) {
		t.Parallel()

		g := Game{Name: "Old Shortcut", IsShortcut: true}
		assert.Equal(t, "steam://rungameid/33554432", g.LaunchURI())
	})
}
