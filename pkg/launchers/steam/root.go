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
	"path/filepath"

	"github.com/PlayDeckProject/playdeck-core/pkg/platforms"
)

// DefaultRoot returns the default Steam root directory for the given
// platform facts. It performs no filesystem I/O; the caller decides what to
// do when the path does not exist. ok is false on unsupported platforms or
// when the facts are missing the directories the platform needs.
//
// On Linux ~/.steam/steam is preferred: Steam maintains it as a symlink to
// the real install location, so it covers both native and .local/share
// installs. Callers with unusual setups pass an explicit root instead.
func DefaultRoot(facts platforms.Facts) (string, bool) {
	switch facts.OS {
	case platforms.OSDarwin:
		if facts.Home == "" {
			return "", false
		}
		return filepath.Join(facts.Home, "Library", "Application Support", "Steam"), true
	case platforms.OSLinux:
		if facts.Home == "" {
			return "", false
		}
		return filepath.Join(facts.Home, ".steam", "steam"), true
	case platforms.OSWindows:
		return `C:\Program Files (x86)\Steam`, true
	default:
		return "", false
	}
}
