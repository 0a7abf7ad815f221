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

// Package menu renders entries in the rofi extended script-mode protocol.
package menu

import (
	"fmt"
	"io"

	"github.com/rofi-apps/rofi-apps/pkg/desktop"
)

// Write emits one script-mode record per entry: the display name, then the
// icon and info metadata fields behind a null separator. A missing icon
// renders as an empty field.
func Write(w io.Writer, entries []*desktop.Entry) error {
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		_, err := fmt.Fprintf(w, "%s\x00icon\x1f%s\x1finfo\x1f%s\n",
			entry.Name(), entry.Icon(), entry.Path())
		if err != nil {
			return fmt.Errorf("failed to write entry: %w", err)
		}
	}
	return nil
}
