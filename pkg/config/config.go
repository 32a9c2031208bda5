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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

const (
	SchemaVersion = 1
	CfgEnv        = "PLAYDECK_CFG"
	CfgFile       = "config.toml"
)

// Values is everything stored in the config file.
type Values struct {
	Scanners     Scanners `toml:"scanners,omitempty"`
	LibraryFile  string   `toml:"library_file,omitempty"`
	LogDir       string   `toml:"log_dir,omitempty"`
	ConfigSchema int      `toml:"config_schema"`
	DebugLogging bool     `toml:"debug_logging"`
}

// Scanners overrides the auto-detected client install locations. Empty
// fields mean detect per platform.
type Scanners struct {
	SteamRoot       string `toml:"steam_root,omitempty"`
	EpicManifestDir string `toml:"epic_manifest_dir,omitempty"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
}

// Instance is a loaded config file with safe concurrent access.
type Instance struct {
	cfgPath  string
	vals     Values
	defaults Values
	mu       sync.RWMutex
}

// NewConfig loads the config file under configDir, writing the defaults
// to disk first when no file exists yet. The CfgEnv environment variable
// overrides the file path.
//
//nolint:gocritic // config struct copied for immutability
func NewConfig(configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := Instance{
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		err := os.MkdirAll(filepath.Dir(cfgPath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		err = cfg.Save()
		if err != nil {
			return nil, err
		}
	}

	err := cfg.Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := os.ReadFile(c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then unmarshal file values on top.
	// This ensures fields not present in the file retain their default values.
	newVals := c.defaults
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return errors.New("schema version mismatch")
	}

	c.vals = newVals
	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	c.vals.ConfigSchema = SchemaVersion

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(c.cfgPath, data, 0o600)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Path returns the resolved config file path.
func (c *Instance) Path() string {
	return c.cfgPath
}

func (c *Instance) SteamRoot() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Scanners.SteamRoot
}

func (c *Instance) SetSteamRoot(root string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Scanners.SteamRoot = root
}

func (c *Instance) EpicManifestDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Scanners.EpicManifestDir
}

func (c *Instance) SetEpicManifestDir(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Scanners.EpicManifestDir = dir
}

// LibraryFile returns the custom games library path, defaulting to
// custom_games.json next to the config file.
func (c *Instance) LibraryFile() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.LibraryFile != "" {
		return c.vals.LibraryFile
	}
	return filepath.Join(filepath.Dir(c.cfgPath), "custom_games.json")
}

// LogDir returns the log directory, defaulting to the config directory.
func (c *Instance) LogDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.LogDir != "" {
		return c.vals.LogDir
	}
	return filepath.Dir(c.cfgPath)
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
}
