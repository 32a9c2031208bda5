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
	"slices"
	"strings"
)

// ParseLibraryFolders extracts the steamapps directories of every install
// library listed in a libraryfolders.vdf. The root's own steamapps directory
// is always the first entry, whether or not the index also lists it, and the
// output preserves the index's line order with duplicates removed.
//
// The index is a nested brace-delimited key/value text format, but only
// "path" lines matter here, so this is a line scan rather than a full tree
// parse: a tree parser would lose the file's ordering, and the scan shrugs
// off nested braces, blank lines, and unknown keys by ignoring them.
func ParseLibraryFolders(contents, root string) []string {
	paths := []string{filepath.Join(root, "steamapps")}

	for line := range strings.Lines(contents) {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, `"path"`) {
			continue
		}
		value, ok := quotedToken(trimmed, 1)
		if !ok || value == "" {
			continue
		}
		libPath := filepath.Join(value, "steamapps")
		if !slices.Contains(paths, libPath) {
			paths = append(paths, libPath)
		}
	}

	return paths
}
