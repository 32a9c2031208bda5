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

package explorer

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PlayDeckProject/playdeck-core/pkg/platforms"
)

func TestReadDir(t *testing.T) {
	t.Parallel()

	t.Run("missing_directory_is_an_error", func(t *testing.T) {
		t.Parallel()

		e := NewWithFs(afero.NewMemMapFs(), platforms.OSLinux)
		_, err := e.ReadDir("/no/such/path")
		assert.Error(t, err)
	})

	t.Run("hides_dotfiles", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/games/.hidden", []byte{}, 0o600))
		require.NoError(t, afero.WriteFile(fs, "/games/visible.txt", []byte{}, 0o600))
		require.NoError(t, fs.MkdirAll("/games/.config", 0o750))

		e := NewWithFs(fs, platforms.OSLinux)
		entries, err := e.ReadDir("/games")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "visible.txt", entries[0].Name)
	})

	t.Run("sorts_dirs_first_then_case_insensitive", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/games/Alpha.txt", []byte{}, 0o600))
		require.NoError(t, afero.WriteFile(fs, "/games/beta.txt", []byte{}, 0o600))
		require.NoError(t, fs.MkdirAll("/games/zeta", 0o750))
		require.NoError(t, fs.MkdirAll("/games/Mods", 0o750))

		e := NewWithFs(fs, platforms.OSLinux)
		entries, err := e.ReadDir("/games")
		require.NoError(t, err)
		require.Len(t, entries, 4)

		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			names = append(names, entry.Name)
		}
		assert.Equal(t, []string{"Mods", "zeta", "Alpha.txt", "beta.txt"}, names)
	})

	t.Run("unix_executable_bit", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/games/run.sh", []byte{}, 0o755))
		require.NoError(t, afero.WriteFile(fs, "/games/readme.md", []byte{}, 0o644))

		e := NewWithFs(fs, platforms.OSLinux)
		entries, err := e.ReadDir("/games")
		require.NoError(t, err)
		require.Len(t, entries, 2)

		byName := map[string]DirEntry{}
		for _, entry := range entries {
			byName[entry.Name] = entry
		}
		assert.False(t, byName["readme.md"].IsExecutable)
		assert.True(t, byName["run.sh"].IsExecutable)
	})

	t.Run("windows_exe_extension", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/games/Game.EXE", []byte{}, 0o644))
		require.NoError(t, afero.WriteFile(fs, "/games/game.dll", []byte{}, 0o644))

		e := NewWithFs(fs, platforms.OSWindows)
		entries, err := e.ReadDir("/games")
		require.NoError(t, err)
		require.Len(t, entries, 2)

		byName := map[string]DirEntry{}
		for _, entry := range entries {
			byName[entry.Name] = entry
		}
		assert.True(t, byName["Game.EXE"].IsExecutable)
		assert.False(t, byName["game.dll"].IsExecutable)
	})

	t.Run("app_bundle_flag", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("/Applications/Aseprite.app", 0o750))
		require.NoError(t, fs.MkdirAll("/Applications/Utilities", 0o750))
		require.NoError(t, afero.WriteFile(fs, "/Applications/notes.app", []byte{}, 0o644))

		e := NewWithFs(fs, platforms.OSDarwin)
		entries, err := e.ReadDir("/Applications")
		require.NoError(t, err)

		byName := map[string]DirEntry{}
		for _, entry := range entries {
			byName[entry.Name] = entry
		}
		assert.True(t, byName["Aseprite.app"].IsAppBundle)
		assert.False(t, byName["Utilities"].IsAppBundle)
		// A plain file named *.app is not a bundle.
		assert.False(t, byName["notes.app"].IsAppBundle)
	})
}

func TestBookmarks(t *testing.T) {
	t.Parallel()

	t.Run("filters_to_existing_paths", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("/home/deck", 0o750))
		require.NoError(t, fs.MkdirAll("/home/deck/Games", 0o750))
		require.NoError(t, fs.MkdirAll("/opt", 0o750))

		e := NewWithFs(fs, platforms.OSLinux)
		got := e.Bookmarks(platforms.Facts{OS: platforms.OSLinux, Home: "/home/deck"})

		labels := make([]string, 0, len(got))
		for _, b := range got {
			labels = append(labels, b.Label)
		}
		assert.Equal(t, []string{"Home", "Games", "/opt"}, labels)
	})

	t.Run("darwin_applications_first", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("/Applications", 0o750))
		require.NoError(t, fs.MkdirAll("/Users/dana/Downloads", 0o750))

		e := NewWithFs(fs, platforms.OSDarwin)
		got := e.Bookmarks(platforms.Facts{OS: platforms.OSDarwin, Home: "/Users/dana"})

		require.NotEmpty(t, got)
		assert.Equal(t, "Applications", got[0].Label)
		assert.Equal(t, "/Applications", got[0].Path)
	})

	t.Run("unknown_platform_has_none", func(t *testing.T) {
		t.Parallel()

		e := NewWithFs(afero.NewMemMapFs(), "plan9")
		assert.Empty(t, e.Bookmarks(platforms.Facts{OS: "plan9"}))
	})
}
