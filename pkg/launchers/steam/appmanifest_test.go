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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dotaManifest = `"AppState"
{
	"appid"		"570"
	"Universe"		"1"
	"name"		"Dota 2"
	"StateFlags"		"4"
	"installdir"		"dota 2 beta"
}`

func TestParseAppManifest(t *testing.T) {
	t.Parallel()

	t.Run("complete_manifest", func(t *testing.T) {
		t.Parallel()

		g, ok := ParseAppManifest(dotaManifest, "/fake/steamapps")
		require.True(t, ok)
		assert.Equal(t, uint64(570), g.AppID)
		assert.Equal(t, "Dota 2", g.Name)
		assert.Equal(t, filepath.Join("/fake/steamapps", "common", "dota 2 beta"), g.InstallPath)
		assert.False(t, g.IsShortcut)
	})

	t.Run("keys_matched_case_insensitively", func(t *testing.T) {
		t.Parallel()

		manifest := `"AppState"
{
	"AppID"		"730"
	"Name"		"Counter-Strike 2"
	"InstallDir"		"Counter-Strike Global Offensive"
}`
		g, ok := ParseAppManifest(manifest, "/fake/steamapps")
		require.True(t, ok)
		assert.Equal(t, uint64(730), g.AppID)
	})

	t.Run("non_numeric_appid_skipped", func(t *testing.T) {
		t.Parallel()

		manifest := `"AppState"
{
	"appid"		"not_a_number"
	"name"		"Broken"
	"installdir"		"broken"
}`
		_, ok := ParseAppManifest(manifest, "/fake/steamapps")
		assert.False(t, ok)
	})

	t.Run("missing_required_keys_skipped", func(t *testing.T) {
		t.Parallel()

		for name, manifest := range map[string]string{
			"no_appid":      "\"AppState\"\n{\n\t\"name\"\t\"X\"\n\t\"installdir\"\t\"x\"\n}",
			"no_name":       "\"AppState\"\n{\n\t\"appid\"\t\"1\"\n\t\"installdir\"\t\"x\"\n}",
			"no_installdir": "\"AppState\"\n{\n\t\"appid\"\t\"1\"\n\t\"name\"\t\"X\"\n}",
			"no_appstate":   "\"Other\"\n{\n\t\"appid\"\t\"1\"\n\t\"name\"\t\"X\"\n\t\"installdir\"\t\"x\"\n}",
		} {
			_, ok := ParseAppManifest(manifest, "/fake/steamapps")
			assert.False(t, ok, name)
		}
	})

	t.Run("garbage_text_skipped", func(t *testing.T) {
		t.Parallel()

		_, ok := ParseAppManifest("}{ not an acf file", "/fake/steamapps")
		assert.False(t, ok)
	})
}

func TestReadAppManifest(t *testing.T) {
	t.Parallel()

	t.Run("reads_from_disk", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "appmanifest_570.acf")
		require.NoError(t, os.WriteFile(path, []byte(dotaManifest), 0o600))

		g, ok := ReadAppManifest(path)
		require.True(t, ok)
		assert.Equal(t, "Dota 2", g.Name)
		assert.Equal(t, filepath.Join(dir, "common", "dota 2 beta"), g.InstallPath)
	})

	t.Run("missing_file_skipped", func(t *testing.T) {
		t.Parallel()

		_, ok := ReadAppManifest(filepath.Join(t.TempDir(), "appmanifest_1.acf"))
		assert.False(t, ok)
	})
}
