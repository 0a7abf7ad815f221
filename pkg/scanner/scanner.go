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

// Package scanner walks the application directories and builds the final
// entry listing.
package scanner

import (
	"os"
	"sort"

	"github.com/rofi-apps/rofi-apps/pkg/config"
	"github.com/rofi-apps/rofi-apps/pkg/desktop"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Options controls the optional pipeline behaviors. The zero value matches
// the historical pipeline: pinned and customs rules are loaded but not
// routed, and entries sort under the root collation.
type Options struct {
	Collation    language.Tag
	PinEntries   bool
	ApplyRenames bool
}

type pinnedEntry struct {
	entry *desktop.Entry
	index int
}

// Scan walks roots in order, filters out hidden, blacklisted and duplicate
// entries and returns the final listing: pinned entries first in pin-rule
// order, then the general set sorted by locale collation of display names.
// Per-file failures are logged and skipped; a missing root is not an error.
func Scan(fsys afero.Fs, cfg *config.Instance, roots []string, opts Options) []*desktop.Entry {
	var pinned []pinnedEntry
	var general []*desktop.Entry
	seen := make(map[string]struct{})

	for _, root := range roots {
		if exists, _ := afero.DirExists(fsys, root); !exists {
			continue
		}

		err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				log.Warn().Msgf("error walking %s: %s", path, err)
				return nil
			}
			if info.IsDir() {
				return nil
			}

			entry, err := desktop.Parse(fsys, path)
			if err != nil {
				log.Warn().Msgf("skipping %s: %s", path, err)
				return nil
			}

			if entry.NoDisplay() {
				return nil
			}
			if entry.Blacklisted(cfg) {
				return nil
			}

			// First seen filename wins, so earlier roots shadow later ones.
			if _, dup := seen[entry.Filename()]; dup {
				return nil
			}
			seen[entry.Filename()] = struct{}{}

			pinIndex := -1
			if opts.PinEntries {
				pinIndex = entry.PinIndex(cfg)
			}
			if opts.ApplyRenames {
				if rename := entry.CustomName(cfg); rename != "" {
					entry.SetCustomName(rename)
				}
			}

			if pinIndex >= 0 {
				pinned = append(pinned, pinnedEntry{entry: entry, index: pinIndex})
			} else {
				general = append(general, entry)
			}
			return nil
		})
		if err != nil {
			log.Warn().Msgf("failed to walk %s: %s", root, err)
		}
	}

	// Pin-rule order defines priority; ties keep discovery order.
	sort.SliceStable(pinned, func(i, j int) bool {
		return pinned[i].index < pinned[j].index
	})

	collator := collate.New(opts.Collation)
	sort.SliceStable(general, func(i, j int) bool {
		return collator.CompareString(general[i].Name(), general[j].Name()) < 0
	})

	entries := make([]*desktop.Entry, 0, len(pinned)+len(general))
	for _, p := range pinned {
		entries = append(entries, p.entry)
	}
	return append(entries, general...)
}
