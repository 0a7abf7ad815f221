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

// Package desktop parses freedesktop .desktop files into entries and
// evaluates rule matches against them.
package desktop

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rofi-apps/rofi-apps/pkg/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

const mainSection = "Desktop Entry"

// Entry is one resolved application descriptor. Immutable after Parse
// except for the custom name override.
type Entry struct {
	path       string
	name       string
	customName string
	exec       string
	icon       string
	noDisplay  bool
}

// Parse reads the file at path and resolves it into an Entry. The file must
// be a valid .desktop application entry: an INI document with a
// [Desktop Entry] section, Type=Application and a non-empty Name. Anything
// else is a per-file error the caller is expected to skip.
func Parse(fsys afero.Fs, path string) (*Entry, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read desktop entry: %w", err)
	}

	// Desktop entries only allow full-line # comments, so inline comment
	// parsing would mangle Exec values.
	file, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse desktop entry: %w", err)
	}

	section, err := file.GetSection(mainSection)
	if err != nil {
		return nil, errors.New("missing [Desktop Entry] section")
	}

	if entryType := section.Key("Type").String(); entryType != "Application" {
		return nil, fmt.Errorf("not an application entry: type %q", entryType)
	}

	name := section.Key("Name").String()
	if name == "" {
		return nil, errors.New("desktop entry has no Name")
	}

	return &Entry{
		path:      path,
		name:      name,
		exec:      section.Key("Exec").String(),
		icon:      resolveIcon(path, section.Key("Icon").String()),
		noDisplay: section.Key("NoDisplay").MustBool(false),
	}, nil
}

// resolveIcon turns the raw Icon value into either an absolute file path or
// a bare icon theme name. Anything else is treated as no icon.
func resolveIcon(path, icon string) string {
	if icon == "" {
		return ""
	}
	if filepath.IsAbs(icon) {
		return icon
	}
	if strings.ContainsRune(icon, filepath.Separator) {
		log.Warn().Msgf("unresolvable icon reference %q in %s", icon, filepath.Base(path))
		return ""
	}
	return icon
}

// Path returns the absolute path of the source .desktop file.
func (e *Entry) Path() string {
	return e.path
}

// Filename returns the basename of the source file. It is the entry's
// identity for deduplication across the search roots.
func (e *Entry) Filename() string {
	return filepath.Base(e.path)
}

// NoDisplay reports whether the entry asks to be hidden from menus.
func (e *Entry) NoDisplay() bool {
	return e.noDisplay
}

// Name returns the custom override name when one has been set, otherwise
// the declared display name.
func (e *Entry) Name() string {
	if e.customName != "" {
		return e.customName
	}
	return e.name
}

// SetCustomName overrides the displayed name.
func (e *Entry) SetCustomName(name string) {
	e.customName = name
}

// Exec returns the entry's command line.
func (e *Entry) Exec() string {
	return e.exec
}

// Icon returns the resolved icon reference: an absolute file path, a themed
// icon name, or "" when the entry has no usable icon.
func (e *Entry) Icon() string {
	return e.icon
}

// Blacklisted reports whether any blacklist rule matches this entry.
func (e *Entry) Blacklisted(cfg *config.Instance) bool {
	for i := range cfg.Blacklist {
		if cfg.Blacklist[i].Match(e.Name(), e.exec) {
			return true
		}
	}
	return false
}

// PinIndex returns the index of the first pinned rule matching this entry,
// or -1 when the entry is not pinned. Rule order defines pin priority.
func (e *Entry) PinIndex(cfg *config.Instance) int {
	for i := range cfg.Pinned {
		if cfg.Pinned[i].Match(e.Name(), e.exec) {
			return i
		}
	}
	return -1
}

// CustomName returns the rename value of the first customs rule matching
// this entry, or "" when none match.
func (e *Entry) CustomName(cfg *config.Instance) string {
	for i := range cfg.Customs {
		if cfg.Customs[i].Match(e.Name(), e.exec) {
			return cfg.Customs[i].Rename
		}
	}
	return ""
}
