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
	"os"
	"path/filepath"

	"github.com/PlayDeckProject/playdeck-core/internal/vdfbinary"
	"github.com/rs/zerolog/log"
)

// FindShortcutsPaths returns the shortcuts.vdf path of every Steam user
// profile under the root that has one. A missing userdata directory just
// means no user has added shortcuts.
func FindShortcutsPaths(root string) []string {
	userdataDir := filepath.Join(root, "userdata")

	userDirs, err := os.ReadDir(userdataDir)
	if err != nil {
		log.Debug().Err(err).Str("path", userdataDir).Msg("no Steam userdata directory")
		return nil
	}

	var paths []string
	for _, userDir := range userDirs {
		if !userDir.IsDir() {
			continue
		}
		path := filepath.Join(userdataDir, userDir.Name(), "config", "shortcuts.vdf")
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}
	return paths
}

// ScanShortcuts discovers the non-Steam shortcut games of every user profile
// under the Steam root. Unreadable files are skipped; a root with no
// shortcuts yields an empty result. Shortcut entries keep whatever local ID
// shortcuts.vdf stored for them, which is not comparable to native app IDs.
func ScanShortcuts(root string) []Game {
	var games []Game

	for _, path := range FindShortcutsPaths(root) {
		//nolint:gosec // Safe: reads Steam config files
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("failed to read shortcuts.vdf")
			continue
		}

		shortcuts := vdfbinary.ParseShortcuts(data)
		log.Debug().Str("path", path).Int("count", len(shortcuts)).Msg("parsed shortcuts")

		for _, s := range shortcuts {
			games = append(games, Game{
				AppID:       uint64(s.AppID),
				Name:        s.AppName,
				InstallPath: s.Exe,
				IsShortcut:  true,
			})
		}
	}

	return games
}
