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

// Package library is the JSON-backed store of user-added custom games:
// titles the user registered by hand that no launcher knows about.
package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// ErrGameNotFound reports an unknown game ID.
var ErrGameNotFound = errors.New("game not found in library")

// CustomGame is one user-added entry.
type CustomGame struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"       validate:"required"`
	Executable string   `json:"executable"  validate:"required"`
	CoverImage string   `json:"cover_image,omitempty"`
	Notes      string   `json:"notes,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

// NewCustomGame builds an entry with a fresh UUID.
func NewCustomGame(title, executable string) CustomGame {
	return CustomGame{
		ID:         uuid.NewString(),
		Title:      title,
		Executable: executable,
	}
}

// Store holds the custom game collection and persists it to a JSON file on
// every mutation. It runs on an afero filesystem so tests use MemMapFs.
// Store is not safe for concurrent use; callers serialize access.
type Store struct {
	fs       afero.Fs
	validate *validator.Validate
	path     string
	games    []CustomGame
}

// Load reads the library at path, starting empty when the file does not
// exist yet.
func Load(fs afero.Fs, path string) (*Store, error) {
	s := &Store{
		fs:       fs,
		path:     path,
		validate: validator.New(),
	}

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, fmt.Errorf("checking library file %s: %w", path, err)
	}
	if !exists {
		log.Info().Str("path", path).Msg("no library file found, starting empty")
		return s, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading library file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &s.games); err != nil {
		return nil, fmt.Errorf("decoding library file %s: %w", path, err)
	}

	log.Info().Str("path", path).Int("count", len(s.games)).Msg("library loaded")
	return s, nil
}

// Games returns the current entries in insertion order.
func (s *Store) Games() []CustomGame {
	return s.games
}

// Get returns the entry with the given ID.
func (s *Store) Get(id string) (CustomGame, bool) {
	for _, g := range s.games {
		if g.ID == id {
			return g, true
		}
	}
	return CustomGame{}, false
}

// Add validates and appends a game, assigning an ID when it has none, and
// persists the collection.
func (s *Store) Add(game CustomGame) (CustomGame, error) {
	if game.ID == "" {
		game.ID = uuid.NewString()
	}
	if err := s.validate.Struct(&game); err != nil {
		return CustomGame{}, fmt.Errorf("invalid custom game: %w", err)
	}

	s.games = append(s.games, game)
	if err := s.persist(); err != nil {
		s.games = s.games[:len(s.games)-1]
		return CustomGame{}, err
	}

	log.Info().Str("title", game.Title).Str("id", game.ID).Msg("added game to library")
	return game, nil
}

// Remove deletes the entry with the given ID and persists the collection.
func (s *Store) Remove(id string) (CustomGame, error) {
	idx := s.index(id)
	if idx < 0 {
		return CustomGame{}, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}

	removed := s.games[idx]
	s.games = append(s.games[:idx], s.games[idx+1:]...)
	if err := s.persist(); err != nil {
		return CustomGame{}, err
	}

	log.Info().Str("title", removed.Title).Str("id", removed.ID).Msg("removed game from library")
	return removed, nil
}

// Update replaces the entry matching the given game's ID and persists the
// collection.
func (s *Store) Update(game CustomGame) (CustomGame, error) {
	idx := s.index(game.ID)
	if idx < 0 {
		return CustomGame{}, fmt.Errorf("%w: %s", ErrGameNotFound, game.ID)
	}
	if err := s.validate.Struct(&game); err != nil {
		return CustomGame{}, fmt.Errorf("invalid custom game: %w", err)
	}

	s.games[idx] = game
	if err := s.persist(); err != nil {
		return CustomGame{}, err
	}
	return game, nil
}

func (s *Store) index(id string) int {
	for i, g := range s.games {
		if g.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persist() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating library directory %s: %w", dir, err)
		}
	}

	data, err := json.MarshalIndent(s.games, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding library: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing library file %s: %w", s.path, err)
	}
	return nil
}
