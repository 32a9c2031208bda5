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

// Package launcher starts games: client-backed games through their launch
// URI and the OS default handler, custom games by spawning the executable
// directly. All launches are fire-and-forget; the clients own the processes
// they start.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/PlayDeckProject/playdeck-core/pkg/catalog"
	"github.com/PlayDeckProject/playdeck-core/pkg/helpers/command"
	"github.com/PlayDeckProject/playdeck-core/pkg/platforms"
	"github.com/rs/zerolog/log"
)

// Errors reported by launching.
var (
	ErrExecutableNotFound  = errors.New("executable not found")
	ErrUnsupportedPlatform = errors.New("no URI handler for this platform")
	ErrNothingToLaunch     = errors.New("game has no launch URI or executable")
)

// Launcher dispatches launch requests for the current platform.
type Launcher struct {
	cmd command.Executor
	os  string
}

// New creates a launcher for the running host.
func New() *Launcher {
	return &Launcher{cmd: &command.RealExecutor{}, os: runtime.GOOS}
}

// NewWithExecutor creates a launcher with a custom OS tag and command
// executor. This is useful for testing.
func NewWithExecutor(osTag string, cmd command.Executor) *Launcher {
	return &Launcher{cmd: cmd, os: osTag}
}

// Launch starts a catalog entry: by URI when the source client handles the
// launch, otherwise by spawning its executable.
func (l *Launcher) Launch(ctx context.Context, game catalog.Game) error {
	switch {
	case game.LaunchURI != "":
		return l.OpenURI(ctx, game.LaunchURI)
	case game.InstallPath != "":
		return l.SpawnExecutable(ctx, game.InstallPath)
	default:
		return ErrNothingToLaunch
	}
}

// OpenURI hands a URI to the platform's default handler.
func (l *Launcher) OpenURI(ctx context.Context, uri string) error {
	log.Info().Str("uri", uri).Msg("opening launch URI")

	var err error
	switch l.os {
	case platforms.OSDarwin:
		err = l.cmd.Start(ctx, "open", uri)
	case platforms.OSLinux:
		err = l.cmd.Start(ctx, "xdg-open", uri)
	case platforms.OSWindows:
		err = l.cmd.Start(ctx, "cmd", "/C", "start", "", uri)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedPlatform, l.os)
	}
	if err != nil {
		return fmt.Errorf("opening URI %s: %w", uri, err)
	}
	return nil
}

// SpawnExecutable starts the game at path directly. On macOS a .app bundle
// directory is handed to the system open command, which delegates to
// launchd; everything else is spawned as a plain process.
func (l *Launcher) SpawnExecutable(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err != nil {
		log.Warn().Str("path", path).Msg("executable not found")
		return fmt.Errorf("%w: %s", ErrExecutableNotFound, path)
	}

	if l.os == platforms.OSDarwin && strings.HasSuffix(path, ".app") {
		log.Info().Str("path", path).Msg("launching app bundle")
		if err := l.cmd.Start(ctx, "open", path); err != nil {
			return fmt.Errorf("opening app bundle %s: %w", path, err)
		}
		return nil
	}

	log.Info().Str("path", path).Msg("spawning executable")
	if err := l.cmd.Start(ctx, path); err != nil {
		return fmt.Errorf("spawning %s: %w", path, err)
	}
	return nil
}

// ResolveProcessName returns the process name the OS will report for the
// given executable path. For macOS .app bundles this is the binary inside
// Contents/MacOS, falling back to the bundle name without the extension;
// for plain executables it is simply the file name.
func ResolveProcessName(exePath string) string {
	if !strings.HasSuffix(exePath, ".app") {
		return filepath.Base(exePath)
	}

	entries, err := os.ReadDir(filepath.Join(exePath, "Contents", "MacOS"))
	if err == nil {
		for _, entry := range entries {
			name := entry.Name()
			if !strings.HasPrefix(name, ".") && !entry.IsDir() {
				return name
			}
		}
	}

	return strings.TrimSuffix(filepath.Base(exePath), ".app")
}
