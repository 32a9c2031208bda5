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

// Package epic discovers installed Epic Games Launcher games from the
// launcher's per-item JSON manifests.
package epic

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PlayDeckProject/playdeck-core/pkg/platforms"
	"github.com/rs/zerolog/log"
)

// Game is one installed Epic game.
type Game struct {
	// AppName is the stable identifier from the manifest.
	AppName string
	// DisplayName is the human-readable title.
	DisplayName string
	// InstallLocation is the absolute install directory from the
	// manifest; it may not exist on disk.
	InstallLocation string
	// CatalogNamespace and CatalogItemID identify the game in Epic's
	// catalog and are needed for the launch URI.
	CatalogNamespace string
	CatalogItemID    string
	// CoverImage is a best-effort local cover art path, or empty.
	CoverImage string
}

// AppID is the catalog-scoped identifier used for deduplication, combining
// namespace and catalog item ID with the app name.
func (g Game) AppID() string {
	return g.CatalogNamespace + ":" + g.CatalogItemID + ":" + g.AppName
}

// LaunchURI returns the Epic Games Launcher URI for this game.
func (g Game) LaunchURI() string {
	return fmt.Sprintf(
		"com.epicgames.launcher://apps/%s%%3A%s%%3A%s?action=launch&silent=true",
		g.CatalogNamespace, g.CatalogItemID, g.AppName)
}

// manifest is the subset of the .item schema this package reads. Epic's
// boolean flags keep their Hungarian "b" prefix on disk; encoding/json
// matches the names case-insensitively, which covers the casing drift seen
// across launcher versions.
type manifest struct {
	AppName             string `json:"AppName"`
	DisplayName         string `json:"DisplayName"`
	InstallLocation     string `json:"InstallLocation"`
	CatalogNamespace    string `json:"CatalogNamespace"`
	CatalogItemID       string `json:"CatalogItemId"`
	IsApplication       bool   `json:"bIsApplication"`
	IsExecutable        bool   `json:"bIsExecutable"`
	IsIncompleteInstall bool   `json:"bIsIncompleteInstall"`
}

// DefaultManifestDir returns the launcher's manifest directory for the given
// platform facts, without touching the filesystem. ok is false on platforms
// the launcher does not support (it has no Linux client).
func DefaultManifestDir(facts platforms.Facts) (string, bool) {
	switch facts.OS {
	case platforms.OSDarwin:
		if facts.Home == "" {
			return "", false
		}
		return filepath.Join(facts.Home,
			"Library", "Application Support", "Epic", "EpicGamesLauncher", "Data", "Manifests"), true
	case platforms.OSWindows:
		programData := facts.ProgramData
		if programData == "" {
			programData = `C:\ProgramData`
		}
		return filepath.Join(programData, "Epic", "EpicGamesLauncher", "Data", "Manifests"), true
	default:
		return "", false
	}
}

// DiscoverGames parses every .item manifest in manifestDir.
//
// An absent directory means the launcher is not installed and yields an
// empty result with no error. Individual manifests are skipped silently when
// they fail to parse, are missing identity fields, or fail the launcher's
// own filter flags: an entry counts only when it is an application, is
// executable, and is not a partially-completed install.
func DiscoverGames(manifestDir string) ([]Game, error) {
	entries, err := os.ReadDir(manifestDir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("path", manifestDir).Msg("Epic manifest directory not found")
			return nil, nil
		}
		return nil, fmt.Errorf("reading Epic manifest directory %s: %w", manifestDir, err)
	}

	var games []Game
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".item") {
			continue
		}
		if g, ok := parseManifest(filepath.Join(manifestDir, entry.Name())); ok {
			games = append(games, g)
		}
	}

	log.Debug().Str("dir", manifestDir).Int("count", len(games)).Msg("Epic discovery complete")
	return games, nil
}

// parseManifest reads one .item file; ok is false when the entry should be
// skipped.
func parseManifest(path string) (Game, bool) {
	//nolint:gosec // Safe: reads Epic manifest files
	contents, err := os.ReadFile(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("failed to read Epic manifest")
		return Game{}, false
	}

	var m manifest
	if err := json.Unmarshal(contents, &m); err != nil {
		log.Debug().Err(err).Str("path", path).Msg("invalid Epic manifest JSON")
		return Game{}, false
	}

	if !m.IsApplication || !m.IsExecutable || m.IsIncompleteInstall {
		return Game{}, false
	}
	if m.AppName == "" || m.DisplayName == "" || m.InstallLocation == "" {
		return Game{}, false
	}

	return Game{
		AppName:          m.AppName,
		DisplayName:      m.DisplayName,
		InstallLocation:  m.InstallLocation,
		CatalogNamespace: m.CatalogNamespace,
		CatalogItemID:    m.CatalogItemID,
		CoverImage:       findCoverImage(m.InstallLocation),
	}, true
}

// coverExtensions are the raster formats accepted as cover art.
var coverExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
}

// findCoverImage scans one level of the install directory for the first
// image file. Best-effort: any failure or absence returns "".
func findCoverImage(installDir string) string {
	entries, err := os.ReadDir(installDir)
	if err != nil {
		return ""
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := coverExtensions[ext]; ok {
			return filepath.Join(installDir, entry.Name())
		}
	}
	return ""
}
