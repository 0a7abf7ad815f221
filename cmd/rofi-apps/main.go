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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rofi-apps/rofi-apps/pkg/config"
	"github.com/rofi-apps/rofi-apps/pkg/helpers"
	"github.com/rofi-apps/rofi-apps/pkg/menu"
	"github.com/rofi-apps/rofi-apps/pkg/scanner"
	"github.com/spf13/afero"
)

func main() {
	if err := run(); err != nil {
		// Diagnostics never touch stdout, rofi owns it.
		_, _ = fmt.Fprintf(os.Stderr, "[!] %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	pinEntries := flag.Bool(
		"pin",
		false,
		"route entries matching pinned rules to the top of the listing",
	)
	applyRenames := flag.Bool(
		"rename",
		false,
		"apply custom rename rules from the config",
	)
	configPath := flag.String(
		"config",
		"",
		"load config from a specific path instead of searching",
	)
	debugLogging := flag.Bool(
		"debug",
		false,
		"also write debug logs to the state directory",
	)
	showVersion := flag.Bool(
		"version",
		false,
		"print version and exit",
	)
	flag.Parse()

	if *showVersion {
		_, _ = fmt.Fprintf(os.Stderr, "%s v%s\n", config.AppName, config.AppVersion)
		return nil
	}

	if err := helpers.InitLogging(*debugLogging); err != nil {
		return err
	}

	fsys := afero.NewOsFs()

	cfgPath := *configPath
	if cfgPath == "" {
		var err error
		cfgPath, err = config.FindPath(fsys, helpers.ConfigCandidates())
		if err != nil {
			return err
		}
	}

	cfg, err := config.Load(fsys, cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	entries := scanner.Scan(fsys, cfg, helpers.DataDirs(), scanner.Options{
		Collation:    helpers.CollationTag(),
		PinEntries:   *pinEntries,
		ApplyRenames: *applyRenames,
	})

	return menu.Write(os.Stdout, entries)
}
