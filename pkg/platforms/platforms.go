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

// Package platforms describes the host environment to the launcher
// integrations.
//
// Path resolution for each launcher is a pure function of a Facts value, so
// the platform branching lives in one place and every resolver is testable
// on any host. Facts carries no filesystem state; existence checks belong to
// the callers that consume the resolved paths.
package platforms

import (
	"os"
	"runtime"

	"github.com/adrg/xdg"
)

// OS tags as reported by runtime.GOOS.
const (
	OSLinux   = "linux"
	OSDarwin  = "darwin"
	OSWindows = "windows"
)

// Facts is the environment input for default-path resolution.
type Facts struct {
	// OS is the runtime.GOOS-style platform tag.
	OS string
	// Home is the user's home directory.
	Home string
	// LocalAppData is Windows %LOCALAPPDATA%, empty elsewhere.
	LocalAppData string
	// ProgramData is Windows %PROGRAMDATA%, empty elsewhere.
	ProgramData string
	// DataHome is the XDG data directory (~/.local/share on Linux).
	DataHome string
}

// Current gathers facts for the running host.
func Current() Facts {
	home, err := os.UserHomeDir()
	if err != nil {
		home = xdg.Home
	}
	return Facts{
		OS:           runtime.GOOS,
		Home:         home,
		LocalAppData: os.Getenv("LOCALAPPDATA"),
		ProgramData:  os.Getenv("PROGRAMDATA"),
		DataHome:     xdg.DataHome,
	}
}
