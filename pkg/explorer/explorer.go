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

// Package explorer is the file browser backend used when picking an
// executable for a custom game. It lists directories with game-relevant
// metadata and suggests platform starting locations.
package explorer

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/PlayDeckProject/playdeck-core/pkg/platforms"
)

// DirEntry is one listed file or directory.
type DirEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	// IsDir follows symlinks, so macOS .app bundles report true.
	IsDir bool `json:"is_dir"`
	// IsExecutable is true for Unix executables (any 0o111 bit) and
	// Windows .exe files.
	IsExecutable bool `json:"is_executable"`
	// IsAppBundle is true for directories ending in ".app".
	IsAppBundle bool `json:"is_app_bundle"`
}

// Bookmark is a suggested starting location for browsing.
type Bookmark struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Explorer lists directories on the given filesystem, interpreting
// executable bits per the given OS tag.
type Explorer struct {
	fs afero.Fs
	os string
}

// New creates an explorer over the host filesystem.
func New(osTag string) *Explorer {
	return &Explorer{fs: afero.NewOsFs(), os: osTag}
}

// NewWithFs creates an explorer over an arbitrary filesystem. This is
// useful for testing.
func NewWithFs(fs afero.Fs, osTag string) *Explorer {
	return &Explorer{fs: fs, os: osTag}
}

// ReadDir lists the entries of path, hiding dot-files and sorting
// directories first, then case-insensitively by name. Entries whose
// metadata cannot be read are skipped.
func (e *Explorer) ReadDir(path string) ([]DirEntry, error) {
	infos, err := afero.ReadDir(e.fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", path, err)
	}

	entries := make([]DirEntry, 0, len(infos))
	for _, info := range infos {
		name := info.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		full := filepath.Join(path, name)
		// afero.ReadDir lstats; stat again so symlinked bundles report
		// as directories.
		meta, err := e.fs.Stat(full)
		if err != nil {
			continue
		}

		isDir := meta.IsDir()
		entries = append(entries, DirEntry{
			Name:         name,
			Path:         full,
			IsDir:        isDir,
			IsExecutable: !isDir && e.isExecutable(name, uint32(meta.Mode())),
			IsAppBundle:  isDir && strings.HasSuffix(name, ".app"),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})

	return entries, nil
}

func (e *Explorer) isExecutable(name string, mode uint32) bool {
	if e.os == platforms.OSWindows {
		return strings.EqualFold(filepath.Ext(name), ".exe")
	}
	return mode&0o111 != 0
}

// Bookmarks returns the starting locations for the host platform,
// filtered to those that exist.
func (e *Explorer) Bookmarks(facts platforms.Facts) []Bookmark {
	var candidates []Bookmark

	switch facts.OS {
	case platforms.OSDarwin:
		candidates = []Bookmark{
			{Label: "Applications", Path: "/Applications"},
			{Label: "Home", Path: facts.Home},
			{Label: "~/Applications", Path: filepath.Join(facts.Home, "Applications")},
			{Label: "Downloads", Path: filepath.Join(facts.Home, "Downloads")},
			{Label: "Desktop", Path: filepath.Join(facts.Home, "Desktop")},
		}
	case platforms.OSLinux:
		candidates = []Bookmark{
			{Label: "Home", Path: facts.Home},
			{Label: "Games", Path: filepath.Join(facts.Home, "Games")},
			{Label: "Downloads", Path: filepath.Join(facts.Home, "Downloads")},
			{Label: "/usr/games", Path: "/usr/games"},
			{Label: "/usr/local/games", Path: "/usr/local/games"},
			{Label: "/opt", Path: "/opt"},
		}
	case platforms.OSWindows:
		candidates = []Bookmark{
			{Label: "Program Files", Path: `C:\Program Files`},
			{Label: "Program Files (x86)", Path: `C:\Program Files (x86)`},
			{Label: "Local AppData", Path: facts.LocalAppData},
			{Label: "Home", Path: facts.Home},
			{Label: "Desktop", Path: filepath.Join(facts.Home, "Desktop")},
			{Label: "Downloads", Path: filepath.Join(facts.Home, "Downloads")},
		}
	}

	bookmarks := make([]Bookmark, 0, len(candidates))
	for _, b := range candidates {
		if b.Path == "" {
			continue
		}
		if ok, err := afero.Exists(e.fs, b.Path); err == nil && ok {
			bookmarks = append(bookmarks, b)
		}
	}
	return bookmarks
}
