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

// Package vdfbinary decodes Valve's binary VDF format as found in
// shortcuts.vdf.
//
// The format is a stream of typed fields with no length prefixes, so it has
// to be walked byte by byte: a one-byte type tag, a null-terminated field
// name, then a tag-dependent payload. There is no checksum, which means a
// malformed buffer cannot be detected, only tolerated. The decoder never
// fails; worst case it reads past intended boundaries and produces partial
// records.
package vdfbinary

import "encoding/binary"

// Type tags used by the binary VDF format.
const (
	tagMap    byte = 0x00
	tagString byte = 0x01
	tagInt32  byte = 0x02
	tagByte   byte = 0x03
	tagColor  byte = 0x04
	tagUint64 byte = 0x05
	tagEndMap byte = 0x08
)

// field is one decoded entry of a binary VDF map. Only the payload slot
// matching Tag is meaningful.
type field struct {
	Name string
	Str  string
	Num  uint32
	Tag  byte
}

// readCString reads a null-terminated string at *pos and advances the cursor
// past the terminator. A missing terminator consumes the rest of the buffer.
func readCString(data []byte, pos *int) string {
	start := *pos
	for *pos < len(data) && data[*pos] != 0x00 {
		*pos++
	}
	s := string(data[start:*pos])
	if *pos < len(data) {
		*pos++
	}
	return s
}

// readUint32 reads a 4-byte little-endian value, returning 0 when the buffer
// is too short.
func readUint32(data []byte, pos *int) uint32 {
	if *pos+4 > len(data) {
		*pos = len(data)
		return 0
	}
	v := binary.LittleEndian.Uint32(data[*pos:])
	*pos += 4
	return v
}

// readField decodes the field at *pos and advances the cursor past its
// payload. ok is false at a map-end tag or the end of the buffer; both are
// ordinary outcomes here, not errors.
//
// Unknown tags are advanced past as if they carried a 1-byte payload. This
// is a best-effort heuristic: there is no public specification for the
// format, so an unknown tag with a wider payload will desynchronize the
// cursor for the remainder of the current entry.
func readField(data []byte, pos *int) (field, bool) {
	if *pos >= len(data) {
		return field{}, false
	}

	tag := data[*pos]
	if tag == tagEndMap {
		*pos++
		return field{}, false
	}
	*pos++

	f := field{Tag: tag, Name: readCString(data, pos)}

	switch tag {
	case tagMap:
		// Nested map: the caller keeps reading fields until the
		// matching end tag. No payload of its own.
	case tagString:
		f.Str = readCString(data, pos)
	case tagInt32:
		f.Num = readUint32(data, pos)
	case tagByte:
		skip(data, pos, 1)
	case tagColor:
		skip(data, pos, 4)
	case tagUint64:
		skip(data, pos, 8)
	default:
		skip(data, pos, 1)
	}

	return f, true
}

func skip(data []byte, pos *int, n int) {
	*pos += n
	if *pos > len(data) {
		*pos = len(data)
	}
}
