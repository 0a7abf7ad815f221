// Rofi Apps
// Copyright (c) 2026 The Rofi Apps Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Rofi Apps.
//
// Rofi Apps is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Rofi Apps is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Rofi Apps.  If not, see <http://www.gnu.org/licenses/>.

package helpers

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rofi-apps/rofi-apps/pkg/config"
)

// ExeDir returns the directory of the running binary, or "" if it can't be
// found.
func ExeDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}

	return filepath.Dir(exe)
}

// ConfigCandidates returns the config search paths in priority order:
// user config dir, system-wide dir, then a fallback next to the binary.
func ConfigCandidates() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, config.AppName, config.CfgFile),
		filepath.Join("/usr/share", config.AppName, config.CfgFile),
		filepath.Join(ExeDir(), config.CfgFile),
	}
}

// DataDirs returns the application entry roots in walk priority order.
// Entries found in earlier roots shadow same-named entries in later ones.
func DataDirs() []string {
	return []string{
		filepath.Join(xdg.DataHome, "applications"),
		"/usr/local/share/applications",
		"/usr/share/applications",
	}
}
