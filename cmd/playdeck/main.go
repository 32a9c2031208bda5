/*
PlayDeck Core
Copyright (c) 2026 The PlayDeck Project Contributors.

This file is part of PlayDeck Core.

PlayDeck Core is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

PlayDeck Core is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with PlayDeck Core.  If not, see <http://www.gnu.org/licenses/>.
*/

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/PlayDeckProject/playdeck-core/pkg/catalog"
	"github.com/PlayDeckProject/playdeck-core/pkg/config"
	"github.com/PlayDeckProject/playdeck-core/pkg/helpers"
	"github.com/PlayDeckProject/playdeck-core/pkg/launcher"
	"github.com/PlayDeckProject/playdeck-core/pkg/library"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	jsonOut := flag.Bool(
		"json",
		false,
		"print the catalog as JSON",
	)
	launchID := flag.String(
		"launch",
		"",
		"launch the game with the given app ID",
	)
	steamRoot := flag.String(
		"steam-root",
		"",
		"override the Steam install root",
	)
	epicDir := flag.String(
		"epic-dir",
		"",
		"override the Epic manifest directory",
	)
	debug := flag.Bool(
		"debug",
		false,
		"enable debug logging",
	)
	flag.Parse()

	configDir, err := os.UserConfigDir()
	if err != nil {
		return fmt.Errorf("resolving config directory: %w", err)
	}

	cfg, err := config.NewConfig(filepath.Join(configDir, "playdeck"), config.BaseDefaults)
	if err != nil {
		return err
	}

	err = helpers.InitLogging(cfg.LogDir(), *debug || cfg.DebugLogging(), nil)
	if err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}

	lib, err := library.Load(afero.NewOsFs(), cfg.LibraryFile())
	if err != nil {
		return err
	}

	opts := catalog.Options{
		SteamRoot:       cfg.SteamRoot(),
		EpicManifestDir: cfg.EpicManifestDir(),
		Library:         lib,
	}
	if *steamRoot != "" {
		opts.SteamRoot = *steamRoot
	}
	if *epicDir != "" {
		opts.EpicManifestDir = *epicDir
	}

	res := catalog.Discover(opts)
	for _, scanErr := range res.Errors {
		log.Warn().Err(scanErr).Msg("source scan failed")
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %s\n", scanErr)
	}

	if *launchID != "" {
		return launchGame(res.Games, *launchID)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res.Games); err != nil {
			return fmt.Errorf("encoding catalog: %w", err)
		}
		return nil
	}

	for _, g := range res.Games {
		tag := string(g.Source)
		if g.IsShortcut {
			tag = "steam shortcut"
		}
		fmt.Printf("%-12s  %-40s  %s\n", tag, g.Name, g.AppID)
	}
	return nil
}

func launchGame(games []catalog.Game, appID string) error {
	for _, g := range games {
		if g.AppID != appID {
			continue
		}
		return launcher.New().Launch(context.Background(), g)
	}
	return fmt.Errorf("no game with app ID %s", appID)
}
