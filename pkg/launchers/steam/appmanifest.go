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
	"strconv"
	"strings"

	"github.com/andygrunwald/vdf"
	"github.com/rs/zerolog/log"
)

// ParseAppManifest parses the text of one appmanifest_*.acf file into a
// Game. steamAppsDir is the directory the manifest was found in; the
// manifest only stores the install directory's name, so the full path is
// built against that directory's "common" subdirectory.
//
// ok is false when the manifest is missing any of appid, name, or
// installdir, when appid is not numeric, or when the text does not parse.
// A corrupt manifest for one app must not block discovery of the rest, so
// none of those conditions are errors.
func ParseAppManifest(contents, steamAppsDir string) (Game, bool) {
	p := vdf.NewParser(strings.NewReader(contents))
	m, err := p.Parse()
	if err != nil {
		log.Debug().Err(err).Msg("failed to parse app manifest")
		return Game{}, false
	}
	m = normalizeVDFKeys(m)

	appState, ok := m["appstate"].(map[string]any)
	if !ok {
		return Game{}, false
	}

	appIDStr, ok := appState["appid"].(string)
	if !ok {
		return Game{}, false
	}
	appID, err := strconv.ParseUint(appIDStr, 10, 64)
	if err != nil {
		log.Debug().Str("appid", appIDStr).Msg("non-numeric appid in manifest")
		return Game{}, false
	}

	name, ok := appState["name"].(string)
	if !ok || name == "" {
		return Game{}, false
	}

	installDir, ok := appState["installdir"].(string)
	if !ok || installDir == "" {
		return Game{}, false
	}

	return Game{
		AppID:       appID,
		Name:        name,
		InstallPath: filepath.Join(steamAppsDir, "common", installDir),
	}, true
}

// ReadAppManifest reads and parses a single manifest file.
func ReadAppManifest(path string) (Game, bool) {
	//nolint:gosec // Safe: reads Steam manifest files
	contents, err := os.ReadFile(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("failed to read app manifest")
		return Game{}, false
	}
	return ParseAppManifest(string(contents), filepath.Dir(path))
}
