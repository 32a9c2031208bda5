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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	t.Run("writes_defaults_when_missing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfg, err := NewConfig(dir, BaseDefaults)
		require.NoError(t, err)

		assert.FileExists(t, filepath.Join(dir, CfgFile))
		assert.Equal(t, filepath.Join(dir, CfgFile), cfg.Path())
		assert.Empty(t, cfg.SteamRoot())
		assert.False(t, cfg.DebugLogging())
	})

	t.Run("loads_existing_file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		contents := `
config_schema = 1
debug_logging = true

[scanners]
steam_root = "/custom/steam"
epic_manifest_dir = "/custom/epic"
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, CfgFile), []byte(contents), 0o600))

		cfg, err := NewConfig(dir, BaseDefaults)
		require.NoError(t, err)
		assert.Equal(t, "/custom/steam", cfg.SteamRoot())
		assert.Equal(t, "/custom/epic", cfg.EpicManifestDir())
		assert.True(t, cfg.DebugLogging())
	})

	t.Run("rejects_schema_mismatch", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		contents := "config_schema = 99\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, CfgFile), []byte(contents), 0o600))

		_, err := NewConfig(dir, BaseDefaults)
		assert.Error(t, err)
	})

	t.Run("rejects_invalid_toml", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, CfgFile), []byte("{{{"), 0o600))

		_, err := NewConfig(dir, BaseDefaults)
		assert.Error(t, err)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	cfg.SetSteamRoot("/library/steam")
	cfg.SetDebugLogging(true)
	require.NoError(t, cfg.Save())

	reloaded, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)
	assert.Equal(t, "/library/steam", reloaded.SteamRoot())
	assert.True(t, reloaded.DebugLogging())
}

func TestDerivedPaths(t *testing.T) {
	t.Parallel()

	t.Run("library_file_defaults_beside_config", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfg, err := NewConfig(dir, BaseDefaults)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "custom_games.json"), cfg.LibraryFile())
	})

	t.Run("explicit_paths_win", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		contents := `
config_schema = 1
library_file = "/data/games.json"
log_dir = "/var/log/playdeck"
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, CfgFile), []byte(contents), 0o600))

		cfg, err := NewConfig(dir, BaseDefaults)
		require.NoError(t, err)
		assert.Equal(t, "/data/games.json", cfg.LibraryFile())
		assert.Equal(t, "/var/log/playdeck", cfg.LogDir())
	})
}
