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

package vdfbinary

import "strings"

// Shortcut is one non-Steam game entry from shortcuts.vdf. The AppID is a
// local CRC-derived identifier Steam generates from the name and exe path;
// it has no meaning outside this machine and may be 0 in older files.
type Shortcut struct {
	AppName string
	Exe     string
	AppID   uint32
}

// ParseShortcuts decodes a shortcuts.vdf buffer into its shortcut entries.
//
// The top level is scanned forward for map-start bytes, which tolerates the
// container wrapper bytes the file starts and ends with. Per-game entries
// are the maps keyed by an index ("0", "1", ...); any map whose key does not
// start with a digit is a wrapper and its children are picked up by the same
// scan. Entries without an AppName are dropped.
//
// Malformed input never produces an error, only missing or partial records.
func ParseShortcuts(data []byte) []Shortcut {
	var shortcuts []Shortcut

	pos := 0
	for pos < len(data) {
		if data[pos] != tagMap {
			pos++
			continue
		}
		pos++

		key := readCString(data, &pos)
		if key == "" || key[0] < '0' || key[0] > '9' {
			continue
		}

		if s, ok := readShortcut(data, &pos); ok {
			shortcuts = append(shortcuts, s)
		}
	}

	return shortcuts
}

// readShortcut consumes one per-game map and accumulates the fields we care
// about. Every other field is still read so the cursor advances by the right
// payload width for its tag.
func readShortcut(data []byte, pos *int) (Shortcut, bool) {
	var s Shortcut

	for {
		f, ok := readField(data, pos)
		if !ok {
			break
		}

		switch f.Tag {
		case tagMap:
			// Nested maps like "tags" carry nothing we need.
			skipMap(data, pos)
		case tagInt32:
			if strings.EqualFold(f.Name, "appid") {
				s.AppID = f.Num
			}
		case tagString:
			switch {
			case strings.EqualFold(f.Name, "appname"):
				s.AppName = f.Str
			case strings.EqualFold(f.Name, "exe"):
				s.Exe = f.Str
			}
		}
	}

	if s.AppName == "" {
		return Shortcut{}, false
	}
	return s, true
}

// skipMap consumes fields until the matching end tag, recursing into any
// nested maps along the way.
func skipMap(data []byte, pos *int) {
	for {
		f, ok := readField(data, pos)
		if !ok {
			return
		}
		if f.Tag == tagMap {
			skipMap(data, pos)
		}
	}
}
