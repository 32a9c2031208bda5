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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// DiscoverGames returns every native Steam game installed under the given
// root, across all of its install libraries.
//
// A missing root or library index means the client is not installed there
// and fails with ErrNotFound; an index that exists but cannot be read is a
// real problem and fails with the offending path. Everything below that is
// best-effort: empty library directories contribute nothing and corrupt
// manifests are skipped, so one bad file never hides the rest.
//
// Games are deduplicated by app ID, first occurrence winning in library
// order (libraries in index order, manifests in filename order), which keeps
// results stable across runs against the same filesystem state.
func DiscoverGames(root string) ([]Game, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, root)
	}

	indexPath := filepath.Join(root, "steamapps", "libraryfolders.vdf")
	contents, err := os.ReadFile(indexPath) //nolint:gosec // Safe: reads Steam config files
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, indexPath)
		}
		return nil, fmt.Errorf("reading library index %s: %w", indexPath, err)
	}

	seen := make(map[uint64]struct{})
	var games []Game
	for _, dir := range ParseLibraryFolders(string(contents), root) {
		for _, g := range readGamesFromLibrary(dir) {
			if _, dup := seen[g.AppID]; dup {
				continue
			}
			seen[g.AppID] = struct{}{}
			games = append(games, g)
		}
	}

	log.Debug().Str("root", root).Int("count", len(games)).Msg("Steam discovery complete")
	return games, nil
}

// readGamesFromLibrary parses every appmanifest_*.acf in one steamapps
// directory, non-recursively. os.ReadDir returns entries sorted by filename,
// which fixes the within-library discovery order.
func readGamesFromLibrary(steamAppsDir string) []Game {
	entries, err := os.ReadDir(steamAppsDir)
	if err != nil {
		log.Debug().Err(err).Str("path", steamAppsDir).Msg("skipping unreadable library")
		return nil
	}

	var games []Game
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() ||
			!strings.HasPrefix(name, "appmanifest_") ||
			!strings.HasSuffix(name, ".acf") {
			continue
		}
		if g, ok := ReadAppManifest(filepath.Join(steamAppsDir, name)); ok {
			games = append(games, g)
		}
	}
	return games
}
