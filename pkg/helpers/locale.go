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
	"strings"

	"golang.org/x/text/language"
)

// CollationTag derives the collation language from the locale environment,
// checking LC_ALL, LC_COLLATE then LANG. Unset, C and POSIX locales fall
// back to the root collation. The tag is passed to the sort explicitly so
// no process-global locale state is touched.
func CollationTag() language.Tag {
	for _, name := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
		if value := os.Getenv(name); value != "" {
			return localeTag(value)
		}
	}
	return language.Und
}

// localeTag parses a POSIX locale string like "de_DE.UTF-8@euro" into a
// language tag. Anything unparseable maps to the root collation.
func localeTag(value string) language.Tag {
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	if value == "" || value == "C" || value == "POSIX" {
		return language.Und
	}

	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}
