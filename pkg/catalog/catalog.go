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

// Package catalog assembles the normalized list of installed games from
// every configured source.
package catalog

import (
	"errors"
	"strconv"

	"github.com/PlayDeckProject/playdeck-core/pkg/launchers/epic"
	"github.com/PlayDeckProject/playdeck-core/pkg/launchers/steam"
	"github.com/PlayDeckProject/playdeck-core/pkg/library"
	"github.com/PlayDeckProject/playdeck-core/pkg/platforms"
	"github.com/rs/zerolog/log"
)

// Source identifies which client a catalog entry came from.
type Source string

// Known sources.
const (
	SourceSteam  Source = "steam"
	SourceEpic   Source = "epic"
	SourceCustom Source = "custom"
)

// Game is the normalized, source-tagged record returned to callers. Records
// are fresh value objects built on every discovery pass; once returned they
// have no connection to the manifests they came from.
type Game struct {
	// AppID is scoped to the source: decimal app ID for Steam (native and
	// shortcut IDs live in separate namespaces, split by IsShortcut), a
	// namespace:catalogID:appName composite for Epic, a UUID for custom
	// games.
	AppID string
	// Name is never empty; records without one are dropped upstream.
	Name string
	// InstallPath is absolute but not verified to exist.
	InstallPath string
	// CoverImage is best-effort local cover art, or empty.
	CoverImage string
	// LaunchURI launches the game through its client, or is empty for
	// custom games launched directly from InstallPath.
	LaunchURI string
	Source    Source
	// IsShortcut is true only for non-Steam games added to Steam.
	IsShortcut bool
}

// Options configures one discovery pass. Zero values mean "resolve from
// platform facts", so tests can point every source at a fixture directory.
type Options struct {
	// Facts describes the host; zero value resolves to the current host.
	Facts platforms.Facts
	// SteamRoot overrides the default Steam root directory.
	SteamRoot string
	// EpicManifestDir overrides the default Epic manifest directory.
	EpicManifestDir string
	// Library is the optional store of user-added custom games.
	Library *library.Store
}

// Result is the outcome of a discovery pass. Errors carries per-source hard
// failures (a client present but unreadable at the top); a failing source
// never blocks the others, and an uninstalled client contributes nothing at
// all.
type Result struct {
	Games  []Game
	Errors []error
}

// Discover runs every source and merges the records. Within each source
// namespace, entries are deduplicated by AppID with the first occurrence
// winning, in a fixed source order (Steam native, Steam shortcuts, Epic,
// custom), so output is stable across runs against the same filesystem.
func Discover(opts Options) Result {
	facts := opts.Facts
	if facts.OS == "" {
		facts = platforms.Current()
	}

	var res Result

	res.scanSteam(opts.SteamRoot, facts)
	res.scanEpic(opts.EpicManifestDir, facts)
	res.addCustom(opts.Library)

	log.Debug().Int("games", len(res.Games)).Int("errors", len(res.Errors)).
		Msg("catalog discovery complete")
	return res
}

func (r *Result) scanSteam(root string, facts platforms.Facts) {
	if root == "" {
		var ok bool
		root, ok = steam.DefaultRoot(facts)
		if !ok {
			return
		}
	}

	games, err := steam.DiscoverGames(root)
	switch {
	case errors.Is(err, steam.ErrNotFound):
		// Client not installed. Indistinguishable from "no games" by
		// design; the command layer owns that tradeoff.
		log.Debug().Str("root", root).Msg("Steam not installed")
	case err != nil:
		r.Errors = append(r.Errors, err)
	default:
		seen := make(map[string]struct{}, len(games))
		for _, g := range games {
			r.add(fromSteam(g), seen)
		}
	}

	seen := make(map[string]struct{})
	for _, g := range steam.ScanShortcuts(root) {
		r.add(fromSteam(g), seen)
	}
}

func (r *Result) scanEpic(manifestDir string, facts platforms.Facts) {
	if manifestDir == "" {
		var ok bool
		manifestDir, ok = epic.DefaultManifestDir(facts)
		if !ok {
			return
		}
	}

	games, err := epic.DiscoverGames(manifestDir)
	if err != nil {
		r.Errors = append(r.Errors, err)
		return
	}

	seen := make(map[string]struct{}, len(games))
	for _, g := range games {
		r.add(fromEpic(g), seen)
	}
}

func (r *Result) addCustom(lib *library.Store) {
	if lib == nil {
		return
	}
	for _, g := range lib.Games() {
		if g.Title == "" {
			continue
		}
		r.Games = append(r.Games, Game{
			AppID:       g.ID,
			Name:        g.Title,
			InstallPath: g.Executable,
			CoverImage:  g.CoverImage,
			Source:      SourceCustom,
		})
	}
}

// add appends a record unless its name is empty or its AppID was already
// seen in the same namespace.
func (r *Result) add(g Game, seen map[string]struct{}) {
	if g.Name == "" {
		return
	}
	if _, dup := seen[g.AppID]; dup {
		return
	}
	seen[g.AppID] = struct{}{}
	r.Games = append(r.Games, g)
}

func fromSteam(g steam.Game) Game {
	return Game{
		AppID:       strconv.FormatUint(g.AppID, 10),
		Name:        g.Name,
		InstallPath: g.InstallPath,
		LaunchURI:   g.LaunchURI(),
		Source:      SourceSteam,
		IsShortcut:  g.IsShortcut,
	}
}

func fromEpic(g epic.Game) Game {
	return Game{
		AppID:       g.AppID(),
		Name:        g.DisplayName,
		InstallPath: g.InstallLocation,
		CoverImage:  g.CoverImage,
		LaunchURI:   g.LaunchURI(),
		Source:      SourceEpic,
	}
}
