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

// Package steam discovers installed Steam games by reading the client's
// on-disk manifests: libraryfolders.vdf for install libraries,
// appmanifest_*.acf for native apps, and the binary shortcuts.vdf for
// non-Steam games the user added manually.
package steam

import (
	"errors"
	"strconv"
)

// ErrNotFound reports that no Steam installation exists at the checked root.
// Callers treat it as "client not installed" rather than a real failure.
var ErrNotFound = errors.New("steam installation not found")

// Game is one installed Steam app or shortcut.
type Game struct {
	// Name is the display name from the manifest.
	Name string
	// InstallPath is the absolute install directory for native apps, or
	// the target executable for shortcuts. It is taken from the manifest
	// as-is and may not exist on disk.
	InstallPath string
	// AppID is the Steam app ID for native apps. For shortcuts it is the
	// local CRC-derived ID from shortcuts.vdf: unique only per machine,
	// possibly 0, and in a separate namespace from native IDs.
	AppID uint64
	// IsShortcut marks non-Steam games added via "Add a Non-Steam Game".
	IsShortcut bool
}

// LaunchURI returns the steam:// URI that launches this game.
//
// Shortcuts have no store-side app ID, so Steam launches them through a
// 64-bit "Big Picture ID" instead: the local shortcut ID shifted into the
// high dword with the shortcut flag set in the low dword.
func (g Game) LaunchURI() string {
	if g.IsShortcut {
		bpid := g.AppID<<32 | 0x02000000
		return "steam://rungameid/" + strconv.FormatUint(bpid, 10)
	}
	return "steam://run/" + strconv.FormatUint(g.AppID, 10)
}
