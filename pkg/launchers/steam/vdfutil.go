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

import "strings"

// normalizeVDFKeys recursively lowercases all keys in a map[string]any tree.
// Valve's VDF format is case-insensitive, but Go maps use exact string
// matching. This normalizes keys at parse time so all lookups can use
// lowercase consistently.
func normalizeVDFKeys(m map[string]any) map[string]any {
	result := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			v = normalizeVDFKeys(nested)
		}
		result[strings.ToLower(k)] = v
	}
	return result
}

// quotedToken returns the nth (0-indexed) double-quoted token on a line.
// VDF text lines hold keys and values as adjacent quoted strings:
//
//	"path"		"/mnt/games"
func quotedToken(line string, n int) (string, bool) {
	rest := line
	for i := 0; ; i++ {
		open := strings.IndexByte(rest, '"')
		if open < 0 {
			return "", false
		}
		rest = rest[open+1:]
		closing := strings.IndexByte(rest, '"')
		if closing < 0 {
			return "", false
		}
		if i == n {
			return rest[:closing], true
		}
		rest = rest[closing+1:]
	}
}
